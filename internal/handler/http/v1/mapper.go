package v1

import (
	"github.com/shenikar/geo_risk_system/internal/models"
	"github.com/shenikar/geo_risk_system/internal/risk"
)

// ModelToAssessmentResponse дополняет оценку атрибутами отображения уровня
func ModelToAssessmentResponse(model models.RiskAssessment) *AssessmentResponse {
	display := risk.Display(model.Level)
	return &AssessmentResponse{
		Level:                  model.Level.String(),
		Label:                  display.Label,
		Tone:                   display.Tone,
		Icon:                   display.Icon,
		BadgeColor:             display.Badge,
		Score:                  model.Score,
		PeakGroundAcceleration: model.PeakGroundAcceleration,
		SoilVelocityVs30:       model.SoilVelocityVs30,
		FaultDistance:          model.FaultDistance,
		Lithology:              model.Lithology,
		Recommendation:         model.Recommendation,
	}
}

// ModelToViewResponse преобразует состояние экрана в DTO для ответа
func ModelToViewResponse(model *models.View) *ViewResponse {
	resp := &ViewResponse{
		ID:           model.ID,
		Latitude:     model.Coordinate.Latitude,
		Longitude:    model.Coordinate.Longitude,
		AssessedAt:   model.AssessedAt,
		Layers:       model.Layers,
		Zoom:         model.Zoom,
		MountedAt:    model.MountedAt,
		LastActiveAt: model.LastActiveAt,
	}
	if model.Assessment != nil {
		resp.Assessment = ModelToAssessmentResponse(*model.Assessment)
	}
	return resp
}

// DTOToCoordinate преобразует провалидированный запрос в координату
func DTOToCoordinate(dto CoordinateRequest) models.Coordinate {
	return models.Coordinate{Latitude: *dto.Latitude, Longitude: *dto.Longitude}
}

// DTOToGeolocationFix преобразует ответ браузера в результат геолокации
func DTOToGeolocationFix(dto GeolocationRequest) models.GeolocationFix {
	return models.GeolocationFix{
		Latitude:  dto.Latitude,
		Longitude: dto.Longitude,
		Error:     dto.Error,
	}
}
