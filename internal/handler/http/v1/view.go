package v1

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/geo_risk_system/internal/mapview"
	"github.com/shenikar/geo_risk_system/internal/models"
	"github.com/shenikar/geo_risk_system/internal/service"
	"github.com/sirupsen/logrus"
)

// @Summary Mount an analysis view
// @Description Create a view at the default coordinate and mount its map
// @Tags Views
// @Produce json
// @Security ApiKeyAuth
// @Success 201 {object} ViewResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /views [post]
func (h *Handler) mountView(c *gin.Context) {
	log := h.logger.WithField("method", "mountView")

	view, err := h.viewService.MountView(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to mount view in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToViewResponse(view))
}

// @Summary Get view by ID
// @Description Get the current coordinate, last assessment and map state of a view
// @Tags Views
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "View ID"
// @Success 200 {object} ViewResponse
// @Failure 400 {object} map[string]string "Invalid view ID"
// @Failure 404 {object} map[string]string "View not found"
// @Router /views/{id} [get]
func (h *Handler) getView(c *gin.Context) {
	id, ok := h.viewID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getView").WithField("id", id)

	view, err := h.viewService.GetView(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToViewResponse(view))
}

// @Summary Unmount a view
// @Description Release the map of a view and forget it
// @Tags Views
// @Security ApiKeyAuth
// @Param id path string true "View ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid view ID"
// @Failure 404 {object} map[string]string "View not found"
// @Router /views/{id} [delete]
func (h *Handler) unmountView(c *gin.Context) {
	id, ok := h.viewID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "unmountView").WithField("id", id)

	if err := h.viewService.UnmountView(c.Request.Context(), id); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get map description
// @Description Get the declarative map description (tiles, layers, marker) for the map widget
// @Tags Views
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "View ID"
// @Success 200 {object} mapview.MapSpec
// @Failure 400 {object} map[string]string "Invalid view ID"
// @Failure 404 {object} map[string]string "View not found"
// @Router /views/{id}/map [get]
func (h *Handler) getMapSpec(c *gin.Context) {
	id, ok := h.viewID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getMapSpec").WithField("id", id)

	spec, err := h.viewService.MapSpec(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, spec)
}

// @Summary Click on the map
// @Description Move the marker to the clicked point. The coordinate is rounded to 5 decimals
// @Tags Views
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "View ID"
// @Param point body CoordinateRequest true "Clicked point"
// @Success 200 {object} ViewResponse
// @Failure 400 {object} map[string]string "Invalid view ID or request body"
// @Failure 404 {object} map[string]string "View not found"
// @Router /views/{id}/click [post]
func (h *Handler) clickMap(c *gin.Context) {
	h.handleMapPoint(c, "clickMap", h.viewService.SelectPoint)
}

// @Summary Release the marker
// @Description Report the position where the marker was dropped. The coordinate is rounded to 5 decimals
// @Tags Views
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "View ID"
// @Param point body CoordinateRequest true "Drop position"
// @Success 200 {object} ViewResponse
// @Failure 400 {object} map[string]string "Invalid view ID or request body"
// @Failure 404 {object} map[string]string "View not found"
// @Router /views/{id}/drag [post]
func (h *Handler) dragMarker(c *gin.Context) {
	h.handleMapPoint(c, "dragMarker", h.viewService.DragMarker)
}

type mapPointFunc func(ctx context.Context, id uuid.UUID, point models.Coordinate) (*models.View, error)

func (h *Handler) handleMapPoint(c *gin.Context, method string, apply mapPointFunc) {
	id, ok := h.viewID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", method).WithField("id", id)

	var input CoordinateRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	view, err := apply(c.Request.Context(), id, DTOToCoordinate(input))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToViewResponse(view))
}

// @Summary Enter coordinates manually
// @Description Apply the text of the latitude and/or longitude input. Unparsable text becomes 0
// @Tags Views
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "View ID"
// @Param coordinate body ManualCoordinateRequest true "Input text"
// @Success 200 {object} ViewResponse
// @Failure 400 {object} map[string]string "Invalid view ID or request body"
// @Failure 404 {object} map[string]string "View not found"
// @Router /views/{id}/coordinate [put]
func (h *Handler) enterCoordinate(c *gin.Context) {
	id, ok := h.viewID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "enterCoordinate").WithField("id", id)

	var input ManualCoordinateRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	view, err := h.viewService.EnterCoordinate(c.Request.Context(), id, input.Latitude, input.Longitude)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToViewResponse(view))
}

// @Summary Apply device geolocation
// @Description Apply a one-shot geolocation result. A failed lookup leaves the view unchanged
// @Tags Views
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "View ID"
// @Param fix body GeolocationRequest true "Geolocation result"
// @Success 200 {object} ViewResponse
// @Failure 400 {object} map[string]string "Invalid view ID or request body"
// @Failure 404 {object} map[string]string "View not found"
// @Router /views/{id}/gps [post]
func (h *Handler) applyGeolocation(c *gin.Context) {
	id, ok := h.viewID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "applyGeolocation").WithField("id", id)

	var input GeolocationRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	view, err := h.viewService.ApplyGeolocation(c.Request.Context(), id, DTOToGeolocationFix(input))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToViewResponse(view))
}

// @Summary Pan and zoom the map
// @Description Record the map center and zoom. The analysed coordinate does not change
// @Tags Views
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "View ID"
// @Param viewport body ViewportRequest true "Map center and zoom"
// @Success 200 {object} ViewResponse
// @Failure 400 {object} map[string]string "Invalid view ID or request body"
// @Failure 404 {object} map[string]string "View not found"
// @Router /views/{id}/viewport [put]
func (h *Handler) setViewport(c *gin.Context) {
	id, ok := h.viewID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "setViewport").WithField("id", id)

	var input ViewportRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	center := models.Coordinate{Latitude: *input.Latitude, Longitude: *input.Longitude}
	view, err := h.viewService.SetViewport(c.Request.Context(), id, center, *input.Zoom)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToViewResponse(view))
}

// @Summary Toggle an overlay group
// @Description Show or hide one overlay group: boundary, fault, soil, pga or history
// @Tags Views
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "View ID"
// @Param layer path string true "Layer ID"
// @Param visibility body LayerVisibilityRequest true "Visibility"
// @Success 200 {object} ViewResponse
// @Failure 400 {object} map[string]string "Invalid view ID, layer or request body"
// @Failure 404 {object} map[string]string "View not found"
// @Router /views/{id}/layers/{layer} [put]
func (h *Handler) setLayerVisibility(c *gin.Context) {
	id, ok := h.viewID(c)
	if !ok {
		return
	}
	layer := c.Param("layer")
	log := h.logger.WithField("method", "setLayerVisibility").WithField("id", id).WithField("layer", layer)

	var input LayerVisibilityRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	view, err := h.viewService.SetLayerVisibility(c.Request.Context(), id, layer, *input.Visible)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToViewResponse(view))
}

// @Summary Compute risk
// @Description Classify the current coordinate of the view and replace its last assessment
// @Tags Views
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "View ID"
// @Success 200 {object} AssessmentResponse
// @Failure 400 {object} map[string]string "Invalid view ID"
// @Failure 404 {object} map[string]string "View not found"
// @Router /views/{id}/compute [post]
func (h *Handler) computeRisk(c *gin.Context) {
	id, ok := h.viewID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "computeRisk").WithField("id", id)

	assessment, err := h.viewService.ComputeRisk(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToAssessmentResponse(*assessment))
}

func (h *Handler) viewID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid view ID"})
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) bindJSON(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// respondError переводит ошибку сервиса в HTTP-ответ
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, service.ErrViewNotFound):
		log.WithError(err).Warn("View not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "view not found"})
	case errors.Is(err, mapview.ErrUnknownLayer):
		log.WithError(err).Warn("Unknown layer")
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown layer"})
	default:
		log.WithError(err).Error("View operation failed in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
