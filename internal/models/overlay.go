package models

// CircleZone - круговая зона с радиусом в метрах
type CircleZone struct {
	Center       Coordinate `json:"center"`
	RadiusMeters float64    `json:"radius_meters"`
}

// SoilZones - разбиение участка по жесткости грунта (Vs30)
type SoilZones struct {
	Soft Ring `json:"soft"`
	Hard Ring `json:"hard"`
}

// HistoricalEvent - отметка исторического землетрясения
type HistoricalEvent struct {
	Location      Coordinate `json:"location"`
	Label         string     `json:"label"`
	DisplayRadius float64    `json:"display_radius"`
}

// GeoOverlayDataset - статичный набор слоев карты исследуемого участка.
// Создается один раз при старте и дальше только читается
type GeoOverlayDataset struct {
	FaultLine              []Coordinate      `json:"fault_line"`
	AdministrativeBoundary []Coordinate      `json:"administrative_boundary"`
	SoilZones              SoilZones         `json:"soil_zones"`
	AccelerationZone       CircleZone        `json:"acceleration_zone"`
	HistoricalEvents       []HistoricalEvent `json:"historical_events"`
}

// Clone возвращает глубокую копию набора
func (d GeoOverlayDataset) Clone() GeoOverlayDataset {
	out := d
	out.FaultLine = append([]Coordinate(nil), d.FaultLine...)
	out.AdministrativeBoundary = append([]Coordinate(nil), d.AdministrativeBoundary...)
	out.SoilZones.Soft = append(Ring(nil), d.SoilZones.Soft...)
	out.SoilZones.Hard = append(Ring(nil), d.SoilZones.Hard...)
	out.HistoricalEvents = append([]HistoricalEvent(nil), d.HistoricalEvents...)
	return out
}
