package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/geo_risk_system/internal/config"
	"github.com/shenikar/geo_risk_system/internal/mapview"
	"github.com/shenikar/geo_risk_system/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=view.go -destination=mocks/view_mock.go -package=mocks

var ErrViewNotFound = errors.New("view not found")

// RiskClassifier определяет контракт классификатора риска
type RiskClassifier interface {
	Classify(point models.Coordinate) models.RiskAssessment
}

// MetricsRecorder определяет контракт для метрик экранов анализа
type MetricsRecorder interface {
	ObserveAssessment(level models.RiskLevel)
	SetMountedViews(n int)
}

// ViewService определяет контракт экрана анализа: текущая координата,
// последняя оценка риска и карта, смонтированная для экрана
type ViewService interface {
	MountView(ctx context.Context) (*models.View, error)
	UnmountView(ctx context.Context, id uuid.UUID) error
	GetView(ctx context.Context, id uuid.UUID) (*models.View, error)
	SelectPoint(ctx context.Context, id uuid.UUID, point models.Coordinate) (*models.View, error)
	DragMarker(ctx context.Context, id uuid.UUID, point models.Coordinate) (*models.View, error)
	EnterCoordinate(ctx context.Context, id uuid.UUID, latitude, longitude *string) (*models.View, error)
	ApplyGeolocation(ctx context.Context, id uuid.UUID, fix models.GeolocationFix) (*models.View, error)
	ComputeRisk(ctx context.Context, id uuid.UUID) (*models.RiskAssessment, error)
	SetLayerVisibility(ctx context.Context, id uuid.UUID, layer string, visible bool) (*models.View, error)
	SetViewport(ctx context.Context, id uuid.UUID, center models.Coordinate, zoom int) (*models.View, error)
	MapSpec(ctx context.Context, id uuid.UUID) (*mapview.MapSpec, error)
	Classify(ctx context.Context, point models.Coordinate) models.RiskAssessment
	Dataset() models.GeoOverlayDataset
	UnmountIdle(ctx context.Context, idleFor time.Duration) (int, error)
}

type viewEntry struct {
	view     *models.View
	surface  *mapview.Surface
	renderer *mapview.Renderer
}

// Все изменения экранов выполняются под одним мьютексом: писатель всегда один
type viewService struct {
	mu         sync.Mutex
	views      map[uuid.UUID]*viewEntry
	classifier RiskClassifier
	dataset    models.GeoOverlayDataset
	metrics    MetricsRecorder
	logger     *logrus.Logger
	cfg        *config.Config
	now        func() time.Time
}

func NewViewService(classifier RiskClassifier, dataset models.GeoOverlayDataset, metrics MetricsRecorder, logger *logrus.Logger, cfg *config.Config) ViewService {
	return &viewService{
		views:      make(map[uuid.UUID]*viewEntry),
		classifier: classifier,
		dataset:    dataset.Clone(),
		metrics:    metrics,
		logger:     logger,
		cfg:        cfg,
		now:        time.Now,
	}
}

// MountView создает экран в точке по умолчанию и монтирует для него карту
func (s *viewService) MountView(ctx context.Context) (*models.View, error) {
	now := s.now()
	start := models.Coordinate{Latitude: s.cfg.DefaultLatitude, Longitude: s.cfg.DefaultLongitude}
	view := &models.View{
		ID:           uuid.New(),
		Coordinate:   start,
		MountedAt:    now,
		LastActiveAt: now,
	}
	log := s.logger.WithFields(logrus.Fields{
		"service": "view",
		"method":  "MountView",
		"view_id": view.ID,
	})

	entry := &viewEntry{view: view, surface: mapview.NewSurface()}
	dataset := s.dataset.Clone()
	renderer, err := entry.surface.Mount(ctx, mapview.Options{
		Initial: start,
		Dataset: &dataset,
		Zoom:    s.cfg.DefaultZoom,
		Tiles:   mapview.TileLayer{URL: s.cfg.TileURL, Attribution: s.cfg.TileAttribution},
		// Вызывается синхронно из Click/DragEnd, пока s.mu удерживается вызывающим методом
		OnCoordinateChange: func(c models.Coordinate) {
			view.Coordinate = c
		},
	})
	if err != nil {
		log.WithError(err).Error("Failed to mount map")
		return nil, fmt.Errorf("service: could not mount map: %w", err)
	}
	entry.renderer = renderer

	s.mu.Lock()
	defer s.mu.Unlock()
	s.views[view.ID] = entry
	s.metrics.SetMountedViews(len(s.views))

	log.WithField("renderer_id", renderer.ID()).Info("View mounted")
	return s.snapshot(entry)
}

// UnmountView освобождает карту и забывает экран
func (s *viewService) UnmountView(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.lookup(id); err != nil {
		return err
	}
	s.unmountLocked(id)
	s.logger.WithFields(logrus.Fields{
		"service": "view",
		"method":  "UnmountView",
		"view_id": id,
	}).Info("View unmounted")
	return nil
}

func (s *viewService) GetView(ctx context.Context, id uuid.UUID) (*models.View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	s.touch(entry)
	return s.snapshot(entry)
}

// SelectPoint обрабатывает клик по карте
func (s *viewService) SelectPoint(ctx context.Context, id uuid.UUID, point models.Coordinate) (*models.View, error) {
	return s.reportFromMap(id, "SelectPoint", point, (*mapview.Renderer).Click)
}

// DragMarker обрабатывает отпускание маркера
func (s *viewService) DragMarker(ctx context.Context, id uuid.UUID, point models.Coordinate) (*models.View, error) {
	return s.reportFromMap(id, "DragMarker", point, (*mapview.Renderer).DragEnd)
}

// reportFromMap передает событие карте; карта сообщает координату через
// обратный вызов, после чего карта выравнивается по координате экрана
func (s *viewService) reportFromMap(id uuid.UUID, method string, point models.Coordinate, event func(*mapview.Renderer, models.Coordinate) error) (*models.View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	log := s.logger.WithFields(logrus.Fields{
		"service": "view",
		"method":  method,
		"view_id": id,
	})

	if err := event(entry.renderer, point); err != nil {
		log.WithError(err).Error("Map rejected interaction")
		return nil, fmt.Errorf("service: could not apply map interaction: %w", err)
	}
	if err := entry.renderer.SetCoordinate(entry.view.Coordinate); err != nil {
		return nil, fmt.Errorf("service: could not sync map: %w", err)
	}
	s.touch(entry)

	log.WithField("coordinate", entry.view.Coordinate).Debug("Coordinate selected on map")
	return s.snapshot(entry)
}

// EnterCoordinate применяет ручной ввод. Переданное поле, которое не удалось
// разобрать, становится 0; nil означает, что поле не менялось
func (s *viewService) EnterCoordinate(ctx context.Context, id uuid.UUID, latitude, longitude *string) (*models.View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	log := s.logger.WithFields(logrus.Fields{
		"service": "view",
		"method":  "EnterCoordinate",
		"view_id": id,
	})

	point := entry.view.Coordinate
	if latitude != nil {
		value, ok := ParseCoordinateInput(*latitude)
		if !ok {
			log.WithField("input", *latitude).Warn("Unparsable latitude input, using 0")
		}
		point.Latitude = value
	}
	if longitude != nil {
		value, ok := ParseCoordinateInput(*longitude)
		if !ok {
			log.WithField("input", *longitude).Warn("Unparsable longitude input, using 0")
		}
		point.Longitude = value
	}

	if err := s.moveExternally(entry, point.Rounded()); err != nil {
		return nil, err
	}
	return s.snapshot(entry)
}

// ApplyGeolocation применяет результат запроса геолокации. Отказ или ошибка
// устройства молча игнорируются: состояние экрана не меняется
func (s *viewService) ApplyGeolocation(ctx context.Context, id uuid.UUID, fix models.GeolocationFix) (*models.View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	log := s.logger.WithFields(logrus.Fields{
		"service": "view",
		"method":  "ApplyGeolocation",
		"view_id": id,
	})

	if fix.Failed() {
		log.WithField("geolocation_error", fix.Error).Debug("Geolocation failed, ignoring")
		return s.snapshot(entry)
	}

	point := models.Coordinate{Latitude: *fix.Latitude, Longitude: *fix.Longitude}.Rounded()
	if err := s.moveExternally(entry, point); err != nil {
		return nil, err
	}
	log.WithField("coordinate", point).Info("Geolocation applied")
	return s.snapshot(entry)
}

// ComputeRisk классифицирует текущую координату экрана и заменяет прошлую оценку
func (s *viewService) ComputeRisk(ctx context.Context, id uuid.UUID) (*models.RiskAssessment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	assessment := s.classifier.Classify(entry.view.Coordinate)
	at := s.now()
	entry.view.Assessment = &assessment
	entry.view.AssessedAt = &at
	s.touch(entry)
	s.metrics.ObserveAssessment(assessment.Level)

	s.logger.WithFields(logrus.Fields{
		"service":    "view",
		"method":     "ComputeRisk",
		"view_id":    id,
		"coordinate": entry.view.Coordinate,
		"level":      assessment.Level.String(),
	}).Info("Risk computed")

	result := assessment
	return &result, nil
}

func (s *viewService) SetLayerVisibility(ctx context.Context, id uuid.UUID, layer string, visible bool) (*models.View, error) {
	layerID, err := mapview.ParseLayerID(layer)
	if err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	if err := entry.renderer.SetLayerVisible(layerID, visible); err != nil {
		return nil, fmt.Errorf("service: could not toggle layer: %w", err)
	}
	s.touch(entry)
	return s.snapshot(entry)
}

// SetViewport фиксирует панорамирование и масштаб карты
func (s *viewService) SetViewport(ctx context.Context, id uuid.UUID, center models.Coordinate, zoom int) (*models.View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	if err := entry.renderer.SetViewport(center, zoom); err != nil {
		return nil, fmt.Errorf("service: could not set viewport: %w", err)
	}
	s.touch(entry)
	return s.snapshot(entry)
}

func (s *viewService) MapSpec(ctx context.Context, id uuid.UUID) (*mapview.MapSpec, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	spec, err := entry.renderer.Spec()
	if err != nil {
		return nil, fmt.Errorf("service: could not describe map: %w", err)
	}
	s.touch(entry)
	return &spec, nil
}

// Classify классифицирует точку без привязки к экрану
func (s *viewService) Classify(ctx context.Context, point models.Coordinate) models.RiskAssessment {
	assessment := s.classifier.Classify(point)
	s.metrics.ObserveAssessment(assessment.Level)
	return assessment
}

func (s *viewService) Dataset() models.GeoOverlayDataset {
	return s.dataset.Clone()
}

// UnmountIdle освобождает экраны, к которым не обращались дольше idleFor
func (s *viewService) UnmountIdle(ctx context.Context, idleFor time.Duration) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-idleFor)
	count := 0
	for id, entry := range s.views {
		if err := ctx.Err(); err != nil {
			return count, err
		}
		if entry.view.LastActiveAt.Before(cutoff) {
			s.unmountLocked(id)
			count++
		}
	}
	return count, nil
}

// leadingDecimal - самое длинное десятичное число в начале строки поля ввода
var leadingDecimal = regexp.MustCompile(`^\s*[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ParseCoordinateInput берет десятичное число из начала текста поля ввода, остаток
// игнорируется ("-6.8abc" дает -6.8). Если числа нет или оно не конечно, возвращает 0 и false
func ParseCoordinateInput(text string) (float64, bool) {
	match := leadingDecimal.FindString(text)
	if match == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(match), 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}
	return value, true
}

func (s *viewService) lookup(id uuid.UUID) (*viewEntry, error) {
	entry, ok := s.views[id]
	if !ok {
		return nil, fmt.Errorf("service: view %s: %w", id, ErrViewNotFound)
	}
	return entry, nil
}

// moveExternally меняет координату экрана и переносит маркер без обратного вызова
func (s *viewService) moveExternally(entry *viewEntry, point models.Coordinate) error {
	if err := entry.renderer.SetCoordinate(point); err != nil {
		return fmt.Errorf("service: could not move marker: %w", err)
	}
	entry.view.Coordinate = point
	s.touch(entry)
	return nil
}

func (s *viewService) unmountLocked(id uuid.UUID) {
	entry := s.views[id]
	delete(s.views, id)
	entry.surface.Unmount()
	s.metrics.SetMountedViews(len(s.views))
}

func (s *viewService) touch(entry *viewEntry) {
	entry.view.LastActiveAt = s.now()
}

// snapshot возвращает копию состояния экрана вместе с видимостью слоев и масштабом
func (s *viewService) snapshot(entry *viewEntry) (*models.View, error) {
	visibility, err := entry.renderer.LayerVisibility()
	if err != nil {
		return nil, fmt.Errorf("service: could not read map state: %w", err)
	}
	zoom, err := entry.renderer.Zoom()
	if err != nil {
		return nil, fmt.Errorf("service: could not read map state: %w", err)
	}

	entry.view.Layers = make(map[string]bool, len(visibility))
	for layer, visible := range visibility {
		entry.view.Layers[string(layer)] = visible
	}
	entry.view.Zoom = zoom
	return entry.view.Clone(), nil
}
