package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Классификация без экрана и справочные таблицы
	api.GET("/risk", h.classifyPoint)
	api.GET("/risk/levels", h.listRiskLevels)
	api.GET("/overlays", h.getOverlays)
	api.GET("/overlays/geojson", h.getOverlaysGeoJSON)
	api.GET("/content", h.getContent)

	// Экраны анализа: ключ нужен только если задан API_KEYS
	views := api.Group("/views")
	if h.cfg.AuthEnabled() {
		views.Use(APIKeyAuthMiddleware(h.cfg, h.logger))
	}
	{
		views.POST("", h.mountView)
		views.GET("/:id", h.getView)
		views.DELETE("/:id", h.unmountView)
		views.GET("/:id/map", h.getMapSpec)
		views.POST("/:id/click", h.clickMap)
		views.POST("/:id/drag", h.dragMarker)
		views.PUT("/:id/coordinate", h.enterCoordinate)
		views.POST("/:id/gps", h.applyGeolocation)
		views.PUT("/:id/viewport", h.setViewport)
		views.PUT("/:id/layers/:layer", h.setLayerVisibility)
		views.POST("/:id/compute", h.computeRisk)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
