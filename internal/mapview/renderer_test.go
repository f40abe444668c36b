package mapview

import (
	"context"
	"testing"

	"github.com/shenikar/geo_risk_system/internal/models"
	"github.com/shenikar/geo_risk_system/internal/overlay"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cisarua = models.Coordinate{Latitude: -6.79, Longitude: 107.56}

// newTestRenderer создает карту и собирает все вызовы обратного вызова
func newTestRenderer(t *testing.T) (*Renderer, *[]models.Coordinate) {
	t.Helper()
	ds := overlay.Default()
	var calls []models.Coordinate

	r, err := New(context.Background(), Options{
		Initial: cisarua,
		Dataset: &ds,
		Zoom:    DefaultZoom,
		OnCoordinateChange: func(c models.Coordinate) {
			calls = append(calls, c)
		},
	})
	require.NoError(t, err)
	return r, &calls
}

func TestNew_InitialState(t *testing.T) {
	r, calls := newTestRenderer(t)

	spec, err := r.Spec()
	require.NoError(t, err)

	assert.Equal(t, cisarua, spec.Center)
	assert.Equal(t, DefaultZoom, spec.Zoom)
	assert.Equal(t, DefaultTileURL, spec.Tiles.URL)
	assert.Equal(t, cisarua, spec.Marker.Position)
	assert.True(t, spec.Marker.Draggable)
	assert.True(t, spec.Marker.PopupOpen)
	assert.Equal(t, "Lokasi Anda / Titik Analisis", spec.Marker.Popup)

	require.Len(t, spec.Layers, 5)
	for i, layer := range spec.Layers {
		assert.Equal(t, Layers[i], layer.ID)
		assert.True(t, layer.Visible, "layer %s must start visible", layer.ID)
		assert.NotEmpty(t, layer.Shapes)
	}
	assert.Empty(t, *calls, "construction must not report coordinate changes")
}

func TestNew_LayerContents(t *testing.T) {
	r, _ := newTestRenderer(t)
	spec, err := r.Spec()
	require.NoError(t, err)

	byID := make(map[LayerID]LayerSpec)
	for _, l := range spec.Layers {
		byID[l.ID] = l
	}

	fault := byID[LayerFault].Shapes[0]
	assert.Equal(t, ShapePolyline, fault.Kind)
	assert.Equal(t, "10", fault.Style.DashArray)
	assert.Contains(t, fault.Popup, "6.8 Mw")

	soil := byID[LayerSoil].Shapes
	require.Len(t, soil, 2)
	assert.Equal(t, ShapePolygon, soil[0].Kind)
	require.Len(t, soil[0].Points, 5)
	assert.Equal(t, soil[0].Points[0], soil[0].Points[4])
	assert.NotEqual(t, soil[0].Style.FillColor, soil[1].Style.FillColor)

	pga := byID[LayerAcceleration].Shapes[0]
	assert.Equal(t, ShapeCircle, pga.Kind)
	assert.Equal(t, 1500.0, pga.Radius)
	assert.Contains(t, pga.Tooltip, "0.5g")

	history := byID[LayerHistory].Shapes
	require.Len(t, history, 2)
	assert.Equal(t, 6.0, history[0].Radius)
	assert.Equal(t, "Gempa 2011 (M 3.3)", history[0].Tooltip)
}

func TestNew_RequiresDataset(t *testing.T) {
	_, err := New(context.Background(), Options{Initial: cisarua})
	assert.ErrorIs(t, err, ErrNoDataset)
}

func TestNew_AbandonedContext(t *testing.T) {
	ds := overlay.Default()
	ctx, cancel := context.WithCancel(context.Background())
	built := 0

	_, err := New(ctx, Options{
		Dataset: &ds,
		buildHook: func(LayerID) {
			built++
			if built == 2 {
				cancel()
			}
		},
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 2, built)
}

func TestClick_ReportsRoundedCoordinateOnce(t *testing.T) {
	r, calls := newTestRenderer(t)

	require.NoError(t, r.Click(models.Coordinate{Latitude: -6.80, Longitude: 107.50}))

	require.Len(t, *calls, 1)
	assert.Equal(t, models.Coordinate{Latitude: -6.8, Longitude: 107.5}, (*calls)[0])

	marker, err := r.Marker()
	require.NoError(t, err)
	assert.Equal(t, (*calls)[0], marker)
}

func TestClick_RoundsToFiveDecimals(t *testing.T) {
	r, calls := newTestRenderer(t)

	require.NoError(t, r.Click(models.Coordinate{Latitude: -6.800004, Longitude: 107.500006}))

	require.Len(t, *calls, 1)
	assert.Equal(t, models.Coordinate{Latitude: -6.8, Longitude: 107.50001}, (*calls)[0])
}

func TestDragEnd_ReportsReleasedPosition(t *testing.T) {
	r, calls := newTestRenderer(t)

	require.NoError(t, r.DragEnd(models.Coordinate{Latitude: -6.81234, Longitude: 107.61234}))

	require.Len(t, *calls, 1)
	assert.Equal(t, models.Coordinate{Latitude: -6.81234, Longitude: 107.61234}, (*calls)[0])
}

func TestSetCoordinate_RecentersKeepingZoom(t *testing.T) {
	r, calls := newTestRenderer(t)
	require.NoError(t, r.SetViewport(cisarua, 13))

	gps := models.Coordinate{Latitude: -6.9, Longitude: 107.6}
	require.NoError(t, r.SetCoordinate(gps))

	spec, err := r.Spec()
	require.NoError(t, err)
	assert.Equal(t, gps, spec.Center)
	assert.Equal(t, gps, spec.Marker.Position)
	assert.Equal(t, 13, spec.Zoom)
	assert.Empty(t, *calls, "external updates are not reported back")
}

func TestSetViewport_ClampsZoom(t *testing.T) {
	r, _ := newTestRenderer(t)

	require.NoError(t, r.SetViewport(cisarua, 40))
	zoom, err := r.Zoom()
	require.NoError(t, err)
	assert.Equal(t, MaxZoom, zoom)

	require.NoError(t, r.SetViewport(cisarua, -3))
	zoom, err = r.Zoom()
	require.NoError(t, err)
	assert.Equal(t, MinZoom, zoom)
}

func TestSetLayerVisible_IsolatedToggle(t *testing.T) {
	r, _ := newTestRenderer(t)

	require.NoError(t, r.SetLayerVisible(LayerSoil, false))

	visibility, err := r.LayerVisibility()
	require.NoError(t, err)
	assert.False(t, visibility[LayerSoil])
	for _, id := range Layers {
		if id != LayerSoil {
			assert.True(t, visibility[id], "layer %s must stay visible", id)
		}
	}

	require.NoError(t, r.SetLayerVisible(LayerSoil, true))
	visibility, err = r.LayerVisibility()
	require.NoError(t, err)
	assert.True(t, visibility[LayerSoil])
}

func TestSetLayerVisible_UnknownLayer(t *testing.T) {
	r, _ := newTestRenderer(t)

	err := r.SetLayerVisible("seismic", false)
	assert.ErrorIs(t, err, ErrUnknownLayer)
}

func TestSpec_ReturnsCopy(t *testing.T) {
	r, _ := newTestRenderer(t)

	spec, err := r.Spec()
	require.NoError(t, err)
	spec.Layers[0].Shapes[0].Points[0].Latitude = 0
	spec.Layers[3].Shapes[0].Center.Latitude = 0

	again, err := r.Spec()
	require.NoError(t, err)
	assert.NotEqual(t, 0.0, again.Layers[0].Shapes[0].Points[0].Latitude)
	assert.Equal(t, -6.805, again.Layers[3].Shapes[0].Center.Latitude)
}

func TestRelease(t *testing.T) {
	r, calls := newTestRenderer(t)

	r.Release()
	r.Release()

	assert.True(t, r.Released())
	assert.ErrorIs(t, r.Click(cisarua), ErrReleased)
	assert.ErrorIs(t, r.SetCoordinate(cisarua), ErrReleased)
	assert.ErrorIs(t, r.SetLayerVisible(LayerFault, false), ErrReleased)
	_, err := r.Spec()
	assert.ErrorIs(t, err, ErrReleased)
	assert.Empty(t, *calls)
}

func TestParseLayerID(t *testing.T) {
	id, err := ParseLayerID("pga")
	require.NoError(t, err)
	assert.Equal(t, LayerAcceleration, id)

	_, err = ParseLayerID("PGA")
	assert.ErrorIs(t, err, ErrUnknownLayer)
}
