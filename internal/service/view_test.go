package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/geo_risk_system/internal/config"
	"github.com/shenikar/geo_risk_system/internal/mapview"
	"github.com/shenikar/geo_risk_system/internal/models"
	"github.com/shenikar/geo_risk_system/internal/overlay"
	"github.com/shenikar/geo_risk_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

// newTestViewService - вспомогательная функция для создания инстанса сервиса с моками.
func newTestViewService(t *testing.T) (*viewService, *mocks.MockRiskClassifier, *mocks.MockMetricsRecorder, *testClock) {
	ctrl := gomock.NewController(t)
	classifierMock := mocks.NewMockRiskClassifier(ctrl)
	metricsMock := mocks.NewMockMetricsRecorder(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		DefaultLatitude:  -6.79,
		DefaultLongitude: 107.56,
		DefaultZoom:      9,
	}

	clock := &testClock{now: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)}
	svc := NewViewService(classifierMock, overlay.Default(), metricsMock, logger, cfg).(*viewService)
	svc.now = clock.Now
	return svc, classifierMock, metricsMock, clock
}

func mountTestView(t *testing.T, svc *viewService, metricsMock *mocks.MockMetricsRecorder) *models.View {
	t.Helper()
	metricsMock.EXPECT().SetMountedViews(len(svc.views) + 1).Times(1)
	view, err := svc.MountView(context.Background())
	require.NoError(t, err)
	return view
}

func TestMountView_Defaults(t *testing.T) {
	svc, _, metricsMock, clock := newTestViewService(t)

	view := mountTestView(t, svc, metricsMock)

	assert.NotEqual(t, uuid.Nil, view.ID)
	assert.Equal(t, models.Coordinate{Latitude: -6.79, Longitude: 107.56}, view.Coordinate)
	assert.Nil(t, view.Assessment)
	assert.Nil(t, view.AssessedAt)
	assert.Equal(t, 9, view.Zoom)
	assert.Equal(t, clock.now, view.MountedAt)
	require.Len(t, view.Layers, len(mapview.Layers))
	for _, id := range mapview.Layers {
		assert.True(t, view.Layers[string(id)], "layer %s", id)
	}

	spec, err := svc.MapSpec(context.Background(), view.ID)
	require.NoError(t, err)
	assert.Equal(t, view.Coordinate, spec.Marker.Position)
	assert.Equal(t, view.Coordinate, spec.Center)
}

func TestMountView_CancelledContext(t *testing.T) {
	svc, _, metricsMock, _ := newTestViewService(t)
	metricsMock.EXPECT().SetMountedViews(gomock.Any()).Times(0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	view, err := svc.MountView(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, view)
	assert.Empty(t, svc.views)
}

func TestSelectPoint_RoundsAndMovesMarker(t *testing.T) {
	svc, classifierMock, metricsMock, _ := newTestViewService(t)
	view := mountTestView(t, svc, metricsMock)
	classifierMock.EXPECT().Classify(gomock.Any()).Times(0) // Выбор точки не запускает расчет

	updated, err := svc.SelectPoint(context.Background(), view.ID, models.Coordinate{Latitude: -6.812345678, Longitude: 107.6543219})
	require.NoError(t, err)

	expected := models.Coordinate{Latitude: -6.81235, Longitude: 107.65432}
	assert.Equal(t, expected, updated.Coordinate)

	spec, err := svc.MapSpec(context.Background(), view.ID)
	require.NoError(t, err)
	assert.Equal(t, expected, spec.Marker.Position)
	assert.Equal(t, expected, spec.Center)
}

func TestDragMarker_Rounds(t *testing.T) {
	svc, _, metricsMock, _ := newTestViewService(t)
	view := mountTestView(t, svc, metricsMock)

	updated, err := svc.DragMarker(context.Background(), view.ID, models.Coordinate{Latitude: -6.7512345, Longitude: 107.48999})
	require.NoError(t, err)
	assert.Equal(t, models.Coordinate{Latitude: -6.75123, Longitude: 107.48999}, updated.Coordinate)
}

func TestEnterCoordinate(t *testing.T) {
	text := func(s string) *string { return &s }

	tests := []struct {
		name      string
		latitude  *string
		longitude *string
		expected  models.Coordinate
	}{
		{
			name:     "только широта",
			latitude: text("-6.75"),
			expected: models.Coordinate{Latitude: -6.75, Longitude: 107.56},
		},
		{
			name:      "обе координаты с округлением",
			latitude:  text(" -6.123456 "),
			longitude: text("107.654321"),
			expected:  models.Coordinate{Latitude: -6.12346, Longitude: 107.65432},
		},
		{
			name:      "нечисловой ввод становится нулем",
			latitude:  text("abc"),
			longitude: text(""),
			expected:  models.Coordinate{Latitude: 0, Longitude: 0},
		},
		{
			name:      "берется число в начале текста",
			latitude:  text("-6.8abc"),
			longitude: text("1e"),
			expected:  models.Coordinate{Latitude: -6.8, Longitude: 1},
		},
		{
			name:      "шестнадцатеричная запись и подчеркивания не разбираются",
			latitude:  text("0x1p3"),
			longitude: text("1_0"),
			expected:  models.Coordinate{Latitude: 0, Longitude: 1},
		},
		{
			name:     "NaN становится нулем",
			latitude: text("NaN"),
			expected: models.Coordinate{Latitude: 0, Longitude: 107.56},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, metricsMock, _ := newTestViewService(t)
			view := mountTestView(t, svc, metricsMock)

			updated, err := svc.EnterCoordinate(context.Background(), view.ID, tt.latitude, tt.longitude)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, updated.Coordinate)

			spec, err := svc.MapSpec(context.Background(), view.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, spec.Marker.Position)
			assert.Equal(t, tt.expected, spec.Center)
			assert.Equal(t, 9, spec.Zoom)
		})
	}
}

func TestApplyGeolocation(t *testing.T) {
	lat, lon := -6.8123456, 107.5012345

	t.Run("успешный ответ", func(t *testing.T) {
		svc, _, metricsMock, _ := newTestViewService(t)
		view := mountTestView(t, svc, metricsMock)

		updated, err := svc.ApplyGeolocation(context.Background(), view.ID, models.GeolocationFix{Latitude: &lat, Longitude: &lon})
		require.NoError(t, err)
		assert.Equal(t, models.Coordinate{Latitude: -6.81235, Longitude: 107.50123}, updated.Coordinate)
	})

	t.Run("отказ игнорируется", func(t *testing.T) {
		svc, _, metricsMock, clock := newTestViewService(t)
		view := mountTestView(t, svc, metricsMock)
		clock.now = clock.now.Add(time.Minute)

		updated, err := svc.ApplyGeolocation(context.Background(), view.ID, models.GeolocationFix{Error: "permission_denied"})
		require.NoError(t, err)
		assert.Equal(t, view.Coordinate, updated.Coordinate)
		assert.Equal(t, view.LastActiveAt, updated.LastActiveAt)
	})
}

func TestComputeRisk_StoresAssessment(t *testing.T) {
	svc, classifierMock, metricsMock, clock := newTestViewService(t)
	view := mountTestView(t, svc, metricsMock)
	expected := models.RiskAssessment{Level: models.RiskHigh, Score: 8.5, Recommendation: "test"}

	classifierMock.EXPECT().
		Classify(models.Coordinate{Latitude: -6.79, Longitude: 107.56}).
		Return(expected).
		Times(1)
	metricsMock.EXPECT().ObserveAssessment(models.RiskHigh).Times(1)

	clock.now = clock.now.Add(time.Second)
	assessment, err := svc.ComputeRisk(context.Background(), view.ID)
	require.NoError(t, err)
	assert.Equal(t, expected, *assessment)

	stored, err := svc.GetView(context.Background(), view.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.Assessment)
	assert.Equal(t, expected, *stored.Assessment)
	require.NotNil(t, stored.AssessedAt)
	assert.Equal(t, clock.now, *stored.AssessedAt)
}

func TestComputeRisk_AssessmentIsStaleUntilRecomputed(t *testing.T) {
	svc, classifierMock, metricsMock, _ := newTestViewService(t)
	view := mountTestView(t, svc, metricsMock)
	first := models.RiskAssessment{Level: models.RiskHigh}
	second := models.RiskAssessment{Level: models.RiskLow}

	gomock.InOrder(
		classifierMock.EXPECT().Classify(models.Coordinate{Latitude: -6.79, Longitude: 107.56}).Return(first),
		classifierMock.EXPECT().Classify(models.Coordinate{Latitude: -6.69, Longitude: 107.76}).Return(second),
	)
	metricsMock.EXPECT().ObserveAssessment(gomock.Any()).Times(2)

	_, err := svc.ComputeRisk(context.Background(), view.ID)
	require.NoError(t, err)

	moved, err := svc.SelectPoint(context.Background(), view.ID, models.Coordinate{Latitude: -6.69, Longitude: 107.76})
	require.NoError(t, err)
	require.NotNil(t, moved.Assessment)
	assert.Equal(t, models.RiskHigh, moved.Assessment.Level) // Прошлая оценка остается до нового расчета

	assessment, err := svc.ComputeRisk(context.Background(), view.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RiskLow, assessment.Level)
}

func TestViewOperations_NotFound(t *testing.T) {
	svc, _, _, _ := newTestViewService(t)
	ctx := context.Background()
	id := uuid.New()

	_, err := svc.GetView(ctx, id)
	assert.ErrorIs(t, err, ErrViewNotFound)

	_, err = svc.SelectPoint(ctx, id, models.Coordinate{})
	assert.ErrorIs(t, err, ErrViewNotFound)

	_, err = svc.ComputeRisk(ctx, id)
	assert.ErrorIs(t, err, ErrViewNotFound)

	_, err = svc.MapSpec(ctx, id)
	assert.ErrorIs(t, err, ErrViewNotFound)

	err = svc.UnmountView(ctx, id)
	assert.ErrorIs(t, err, ErrViewNotFound)
}

func TestSetLayerVisibility(t *testing.T) {
	svc, _, metricsMock, _ := newTestViewService(t)
	view := mountTestView(t, svc, metricsMock)

	updated, err := svc.SetLayerVisibility(context.Background(), view.ID, "soil", false)
	require.NoError(t, err)
	assert.False(t, updated.Layers["soil"])
	assert.True(t, updated.Layers["fault"])

	_, err = svc.SetLayerVisibility(context.Background(), view.ID, "rivers", false)
	assert.ErrorIs(t, err, mapview.ErrUnknownLayer)
}

func TestSetViewport_ClampsZoom(t *testing.T) {
	svc, _, metricsMock, _ := newTestViewService(t)
	view := mountTestView(t, svc, metricsMock)
	center := models.Coordinate{Latitude: -6.8, Longitude: 107.5}

	updated, err := svc.SetViewport(context.Background(), view.ID, center, 25)
	require.NoError(t, err)
	assert.Equal(t, mapview.MaxZoom, updated.Zoom)
	assert.Equal(t, view.Coordinate, updated.Coordinate) // Панорамирование не меняет точку анализа

	spec, err := svc.MapSpec(context.Background(), view.ID)
	require.NoError(t, err)
	assert.Equal(t, center, spec.Center)
}

func TestUnmountView(t *testing.T) {
	svc, _, metricsMock, _ := newTestViewService(t)
	view := mountTestView(t, svc, metricsMock)
	renderer := svc.views[view.ID].renderer

	metricsMock.EXPECT().SetMountedViews(0).Times(1)
	require.NoError(t, svc.UnmountView(context.Background(), view.ID))

	assert.True(t, renderer.Released())
	_, err := svc.GetView(context.Background(), view.ID)
	assert.ErrorIs(t, err, ErrViewNotFound)
}

func TestUnmountIdle(t *testing.T) {
	svc, _, metricsMock, clock := newTestViewService(t)
	stale := mountTestView(t, svc, metricsMock)

	clock.now = clock.now.Add(20 * time.Minute)
	fresh := mountTestView(t, svc, metricsMock)

	clock.now = clock.now.Add(15 * time.Minute)
	metricsMock.EXPECT().SetMountedViews(1).Times(1)

	count, err := svc.UnmountIdle(context.Background(), 30*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	_, err = svc.GetView(context.Background(), stale.ID)
	assert.ErrorIs(t, err, ErrViewNotFound)
	_, err = svc.GetView(context.Background(), fresh.ID)
	assert.NoError(t, err)
}

func TestUnmountIdle_CancelledContext(t *testing.T) {
	svc, _, metricsMock, clock := newTestViewService(t)
	mountTestView(t, svc, metricsMock)
	clock.now = clock.now.Add(time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	count, err := svc.UnmountIdle(ctx, time.Minute)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, 0, count)
	assert.Len(t, svc.views, 1)
}

func TestClassify_ObservesLevel(t *testing.T) {
	svc, classifierMock, metricsMock, _ := newTestViewService(t)
	point := models.Coordinate{Latitude: -6.9, Longitude: 107.56}

	classifierMock.EXPECT().Classify(point).Return(models.RiskAssessment{Level: models.RiskModerate}).Times(1)
	metricsMock.EXPECT().ObserveAssessment(models.RiskModerate).Times(1)

	assessment := svc.Classify(context.Background(), point)
	assert.Equal(t, models.RiskModerate, assessment.Level)
}

func TestDataset_ReturnsCopy(t *testing.T) {
	svc, _, _, _ := newTestViewService(t)

	ds := svc.Dataset()
	ds.FaultLine[0] = models.Coordinate{}
	ds.HistoricalEvents[0].Label = "changed"

	fresh := svc.Dataset()
	assert.Equal(t, overlay.Default(), fresh)
}

func TestViewSnapshot_IsDetached(t *testing.T) {
	svc, _, metricsMock, _ := newTestViewService(t)
	view := mountTestView(t, svc, metricsMock)

	view.Layers["fault"] = false
	view.Coordinate = models.Coordinate{}

	stored, err := svc.GetView(context.Background(), view.ID)
	require.NoError(t, err)
	assert.True(t, stored.Layers["fault"])
	assert.Equal(t, models.Coordinate{Latitude: -6.79, Longitude: 107.56}, stored.Coordinate)
}

func TestParseCoordinateInput(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
		ok       bool
	}{
		{"-6.79", -6.79, true},
		{" 107.56 ", 107.56, true},
		{"", 0, false},
		{"1e400", 0, false},
		{"Inf", 0, false},
		{"abc", 0, false},
		{"-6,79", -6, true},
		{"-6.8abc", -6.8, true},
		{"1e", 1, true},
		{"0x1p3", 0, true},
		{"1_0", 1, true},
		{".5", 0.5, true},
		{"+107.56e0", 107.56, true},
	}

	for _, tt := range tests {
		value, ok := ParseCoordinateInput(tt.input)
		assert.Equal(t, tt.expected, value, "input %q", tt.input)
		assert.Equal(t, tt.ok, ok, "input %q", tt.input)
	}
}
