package mapview

import "github.com/shenikar/geo_risk_system/internal/models"

const (
	markerPopup = "Lokasi Anda / Titik Analisis"

	// DefaultTileURL - подложка OpenStreetMap
	DefaultTileURL         = "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png"
	DefaultTileAttribution = `&copy; <a href="https://www.openstreetmap.org/copyright">OpenStreetMap</a>`
)

var layerNames = map[LayerID]string{
	LayerBoundary:     "Batas Wilayah Jawa Barat",
	LayerFault:        "Patahan Aktif (Sesar Lembang)",
	LayerSoil:         "Vs30 (Kondisi Tanah)",
	LayerAcceleration: "Distribusi PGA",
	LayerHistory:      "Kegempaan Historis",
}

// buildLayer собирает фигуры одной группы из набора слоев
func buildLayer(id LayerID, ds *models.GeoOverlayDataset) []Shape {
	switch id {
	case LayerBoundary:
		return []Shape{{
			Kind:    ShapePolyline,
			Points:  append([]models.Coordinate(nil), ds.AdministrativeBoundary...),
			Style:   Style{Color: "#3b82f6", Weight: 3, Opacity: 0.6, DashArray: "10, 10"},
			Tooltip: "Batas Administrasi Jawa Barat",
		}}
	case LayerFault:
		return []Shape{{
			Kind:    ShapePolyline,
			Points:  append([]models.Coordinate(nil), ds.FaultLine...),
			Style:   Style{Color: "#ef4444", Weight: 5, Opacity: 0.8, DashArray: "10"},
			Tooltip: "Jalur Sesar Lembang (Aktif)",
			Popup:   "Sesar Lembang - Potensi Mag: 6.8 Mw",
		}}
	case LayerSoil:
		return []Shape{
			{
				Kind:    ShapePolygon,
				Points:  ds.SoilZones.Soft.Closed(),
				Style:   Style{Color: "#f97316", FillColor: "#f97316", Weight: 1, FillOpacity: 0.4},
				Tooltip: "Zona Vs30 Rendah (Tanah Lunak)",
			},
			{
				Kind:    ShapePolygon,
				Points:  ds.SoilZones.Hard.Closed(),
				Style:   Style{Color: "#22c55e", FillColor: "#22c55e", Weight: 1, FillOpacity: 0.4},
				Tooltip: "Zona Vs30 Tinggi (Tanah Keras)",
			},
		}
	case LayerAcceleration:
		center := ds.AccelerationZone.Center
		return []Shape{{
			Kind:    ShapeCircle,
			Center:  &center,
			Radius:  ds.AccelerationZone.RadiusMeters,
			Style:   Style{Color: "#8b5cf6", FillColor: "#8b5cf6", Weight: 0, FillOpacity: 0.3},
			Tooltip: "Zona PGA Tinggi (> 0.5g)",
		}}
	case LayerHistory:
		shapes := make([]Shape, 0, len(ds.HistoricalEvents))
		for _, ev := range ds.HistoricalEvents {
			loc := ev.Location
			shapes = append(shapes, Shape{
				Kind:    ShapeCircleMarker,
				Center:  &loc,
				Radius:  ev.DisplayRadius,
				Style:   Style{Color: "#1e293b", FillColor: "#ef4444", Weight: 2, FillOpacity: 1},
				Tooltip: ev.Label,
			})
		}
		return shapes
	}
	return nil
}
