package v1

import (
	"time"

	"github.com/google/uuid"
)

// RiskQuery параметры запроса классификации точки
// @Description Параметры запроса классификации точки
type RiskQuery struct {
	Latitude  *float64 `form:"latitude" validate:"required"`
	Longitude *float64 `form:"longitude" validate:"required"`
}

// CoordinateRequest DTO для клика по карте и отпускания маркера
// @Description DTO для клика по карте и отпускания маркера
type CoordinateRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required"`
	Longitude *float64 `json:"longitude" validate:"required"`
}

// ManualCoordinateRequest DTO для ручного ввода. Значения передаются как текст поля ввода
// @Description DTO для ручного ввода координат
type ManualCoordinateRequest struct {
	Latitude  *string `json:"latitude" validate:"required_without=Longitude"`
	Longitude *string `json:"longitude" validate:"required_without=Latitude"`
}

// GeolocationRequest DTO с результатом геолокации устройства
// @Description DTO с результатом геолокации устройства
type GeolocationRequest struct {
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Error     string   `json:"error,omitempty" validate:"omitempty,oneof=permission_denied position_unavailable timeout unsupported"`
}

// ViewportRequest DTO для панорамирования и масштаба.
// Границы Zoom совпадают с mapview.MinZoom и mapview.MaxZoom
// @Description DTO для панорамирования и масштаба
type ViewportRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required"`
	Longitude *float64 `json:"longitude" validate:"required"`
	Zoom      *int     `json:"zoom" validate:"required,min=0,max=19"`
}

// LayerVisibilityRequest DTO для переключения слоя
// @Description DTO для переключения слоя
type LayerVisibilityRequest struct {
	Visible *bool `json:"visible" validate:"required"`
}

// AssessmentResponse DTO с результатом оценки риска и атрибутами карточки
// @Description DTO с результатом оценки риска
type AssessmentResponse struct {
	Level                  string  `json:"level"`
	Label                  string  `json:"label"`
	Tone                   string  `json:"tone"`
	Icon                   string  `json:"icon"`
	BadgeColor             string  `json:"badge_color"`
	Score                  float64 `json:"score"`
	PeakGroundAcceleration string  `json:"peak_ground_acceleration"`
	SoilVelocityVs30       string  `json:"soil_velocity_vs30"`
	FaultDistance          string  `json:"fault_distance"`
	Lithology              string  `json:"lithology"`
	Recommendation         string  `json:"recommendation"`
}

// ViewResponse DTO с состоянием экрана анализа
// @Description DTO с состоянием экрана анализа
type ViewResponse struct {
	ID           uuid.UUID           `json:"id"`
	Latitude     float64             `json:"latitude"`
	Longitude    float64             `json:"longitude"`
	Assessment   *AssessmentResponse `json:"assessment,omitempty"`
	AssessedAt   *time.Time          `json:"assessed_at,omitempty"`
	Layers       map[string]bool     `json:"layers"`
	Zoom         int                 `json:"zoom"`
	MountedAt    time.Time           `json:"mounted_at"`
	LastActiveAt time.Time           `json:"last_active_at"`
}
