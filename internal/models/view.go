package models

import (
	"time"

	"github.com/google/uuid"
)

// View - состояние одного смонтированного экрана анализа
type View struct {
	ID           uuid.UUID       `json:"id"`
	Coordinate   Coordinate      `json:"coordinate"`
	Assessment   *RiskAssessment `json:"assessment,omitempty"`
	AssessedAt   *time.Time      `json:"assessed_at,omitempty"`
	Layers       map[string]bool `json:"layers"`
	Zoom         int             `json:"zoom"`
	MountedAt    time.Time       `json:"mounted_at"`
	LastActiveAt time.Time       `json:"last_active_at"`
}

// Clone возвращает копию, не разделяющую с оригиналом map и указатели
func (v *View) Clone() *View {
	out := *v
	if v.Assessment != nil {
		a := *v.Assessment
		out.Assessment = &a
	}
	if v.AssessedAt != nil {
		t := *v.AssessedAt
		out.AssessedAt = &t
	}
	out.Layers = make(map[string]bool, len(v.Layers))
	for k, visible := range v.Layers {
		out.Layers[k] = visible
	}
	return &out
}

// GeolocationFix - результат одноразового запроса геолокации устройства
type GeolocationFix struct {
	Latitude  *float64
	Longitude *float64
	// Error - код отказа браузера (permission_denied, position_unavailable, timeout)
	Error string
}

// Failed сообщает, что запрос геолокации не дал координат
func (f GeolocationFix) Failed() bool {
	return f.Error != "" || f.Latitude == nil || f.Longitude == nil
}
