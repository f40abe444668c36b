package overlay

import (
	"fmt"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"

	"github.com/shenikar/geo_risk_system/internal/models"
)

// Значения свойства "layer" у признаков GeoJSON
const (
	FeatureLayerFault    = "fault"
	FeatureLayerBoundary = "boundary"
	FeatureLayerSoil     = "soil"
	FeatureLayerPGA      = "pga"
	FeatureLayerHistory  = "history"
)

// FeatureCollection выгружает набор слоев в GeoJSON (порядок координат [lon, lat]).
// Кольца полигонов замыкаются, круговая зона выгружается точкой с radius_meters
func FeatureCollection(ds models.GeoOverlayDataset) (*geojson.FeatureCollection, error) {
	fc := &geojson.FeatureCollection{}
	bounds := geom.NewBounds(geom.XY)

	add := func(id string, g geom.T, props map[string]interface{}) {
		bounds.Extend(g)
		fc.Features = append(fc.Features, &geojson.Feature{
			ID:         id,
			Geometry:   g,
			Properties: props,
		})
	}

	fault, err := lineString(ds.FaultLine)
	if err != nil {
		return nil, fmt.Errorf("fault line: %w", err)
	}
	add("fault", fault, map[string]interface{}{
		"layer": FeatureLayerFault,
		"kind":  "fault_trace",
	})

	boundary, err := lineString(ds.AdministrativeBoundary)
	if err != nil {
		return nil, fmt.Errorf("administrative boundary: %w", err)
	}
	add("boundary", boundary, map[string]interface{}{
		"layer": FeatureLayerBoundary,
		"kind":  "administrative_boundary",
	})

	zones := []struct {
		id   string
		ring models.Ring
	}{
		{"soil-soft", ds.SoilZones.Soft},
		{"soil-hard", ds.SoilZones.Hard},
	}
	for _, z := range zones {
		poly, err := polygon(z.ring)
		if err != nil {
			return nil, fmt.Errorf("soil zone %s: %w", z.id, err)
		}
		add(z.id, poly, map[string]interface{}{
			"layer": FeatureLayerSoil,
			"kind":  z.id[len("soil-"):],
		})
	}

	add("pga", point(ds.AccelerationZone.Center), map[string]interface{}{
		"layer":         FeatureLayerPGA,
		"kind":          "circle",
		"radius_meters": ds.AccelerationZone.RadiusMeters,
	})

	for i, ev := range ds.HistoricalEvents {
		add(fmt.Sprintf("event-%d", i+1), point(ev.Location), map[string]interface{}{
			"layer":          FeatureLayerHistory,
			"kind":           "historical_event",
			"label":          ev.Label,
			"display_radius": ev.DisplayRadius,
		})
	}

	if !bounds.IsEmpty() {
		fc.BBox = bounds
	}
	return fc, nil
}

func flatCoords(coords []models.Coordinate) []float64 {
	flat := make([]float64, 0, len(coords)*2)
	for _, c := range coords {
		flat = append(flat, c.Longitude, c.Latitude)
	}
	return flat
}

func lineString(coords []models.Coordinate) (*geom.LineString, error) {
	if len(coords) < 2 {
		return nil, fmt.Errorf("line needs at least 2 points, got %d", len(coords))
	}
	return geom.NewLineStringFlat(geom.XY, flatCoords(coords)), nil
}

func polygon(ring models.Ring) (*geom.Polygon, error) {
	if len(ring) < 3 {
		return nil, fmt.Errorf("polygon needs at least 3 points, got %d", len(ring))
	}
	flat := flatCoords(ring.Closed())
	return geom.NewPolygonFlat(geom.XY, flat, []int{len(flat)}), nil
}

func point(c models.Coordinate) *geom.Point {
	return geom.NewPointFlat(geom.XY, []float64{c.Longitude, c.Latitude})
}
