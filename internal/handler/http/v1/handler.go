package v1

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/geo_risk_system/internal/config"
	"github.com/shenikar/geo_risk_system/internal/content"
	"github.com/shenikar/geo_risk_system/internal/models"
	"github.com/shenikar/geo_risk_system/internal/overlay"
	"github.com/shenikar/geo_risk_system/internal/risk"
	"github.com/shenikar/geo_risk_system/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	viewService service.ViewService
	content     content.Content
	logger      *logrus.Logger
	validate    *validator.Validate
	cfg         *config.Config
}

func NewHandler(viewService service.ViewService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		viewService: viewService,
		content:     content.Default(),
		logger:      logger,
		validate:    validator.New(),
		cfg:         cfg,
	}
}

// @Summary Classify a point
// @Description Classify earthquake risk of a coordinate without creating a view
// @Tags Risk
// @Accept json
// @Produce json
// @Param latitude query number true "Latitude"
// @Param longitude query number true "Longitude"
// @Success 200 {object} AssessmentResponse
// @Failure 400 {object} map[string]string "Missing or invalid coordinates"
// @Router /risk [get]
func (h *Handler) classifyPoint(c *gin.Context) {
	var query RiskQuery
	log := h.logger.WithField("method", "classifyPoint")

	if err := c.ShouldBindQuery(&query); err != nil {
		log.WithError(err).Warn("Failed to bind query")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}

	if err := h.validate.Struct(query); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	point := models.Coordinate{Latitude: *query.Latitude, Longitude: *query.Longitude}
	assessment := h.viewService.Classify(c.Request.Context(), point)
	c.JSON(http.StatusOK, ModelToAssessmentResponse(assessment))
}

// @Summary List risk levels
// @Description Get display attributes of every risk level in ascending order of danger
// @Tags Risk
// @Produce json
// @Success 200 {array} risk.LevelDisplay
// @Router /risk/levels [get]
func (h *Handler) listRiskLevels(c *gin.Context) {
	c.JSON(http.StatusOK, risk.Displays())
}

// @Summary Get overlay dataset
// @Description Get fault line, boundary, soil zones, acceleration zone and historical events
// @Tags Overlays
// @Produce json
// @Success 200 {object} models.GeoOverlayDataset
// @Router /overlays [get]
func (h *Handler) getOverlays(c *gin.Context) {
	c.JSON(http.StatusOK, h.viewService.Dataset())
}

// @Summary Get overlay dataset as GeoJSON
// @Description Get the overlay dataset as a GeoJSON FeatureCollection
// @Tags Overlays
// @Produce json
// @Success 200 {object} map[string]interface{} "GeoJSON FeatureCollection"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /overlays/geojson [get]
func (h *Handler) getOverlaysGeoJSON(c *gin.Context) {
	log := h.logger.WithField("method", "getOverlaysGeoJSON")

	collection, err := overlay.FeatureCollection(h.viewService.Dataset())
	if err != nil {
		log.WithError(err).Error("Failed to encode overlays")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	data, err := json.Marshal(collection)
	if err != nil {
		log.WithError(err).Error("Failed to marshal overlays")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Data(http.StatusOK, "application/geo+json", data)
}

// @Summary Get dashboard content
// @Description Get overview, education and methodology texts
// @Tags Content
// @Produce json
// @Success 200 {object} content.Content
// @Router /content [get]
func (h *Handler) getContent(c *gin.Context) {
	c.JSON(http.StatusOK, h.content)
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
