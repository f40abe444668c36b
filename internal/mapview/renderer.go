// Package mapview описывает интерактивную карту точки анализа: подложку, пять
// переключаемых групп слоев и перетаскиваемый маркер.
//
// Renderer ничего не рисует сам: он хранит состояние карты, выдает декларативное
// описание (MapSpec) для виджета в браузере и сообщает об изменении координаты
// через OnCoordinateChange. Классификацию риска карта не запускает.
package mapview

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/shenikar/geo_risk_system/internal/models"
)

const (
	MinZoom     = 0
	MaxZoom     = 19
	DefaultZoom = 9
)

var (
	ErrReleased     = errors.New("map renderer released")
	ErrUnknownLayer = errors.New("unknown map layer")
	ErrNoDataset    = errors.New("overlay dataset is required")
)

// CoordinateChangeFunc вызывается синхронно в горутине вызывающего,
// без удержания блокировок карты
type CoordinateChangeFunc func(models.Coordinate)

// Options - параметры создания карты
type Options struct {
	Initial            models.Coordinate
	Dataset            *models.GeoOverlayDataset
	OnCoordinateChange CoordinateChangeFunc
	Zoom               int
	Tiles              TileLayer

	// buildHook вызывается перед сборкой каждой группы (для тестов)
	buildHook func(LayerID)
}

type layerGroup struct {
	id      LayerID
	name    string
	visible bool
	shapes  []Shape
}

// Renderer - экземпляр карты, привязанный к одной поверхности отображения
type Renderer struct {
	mu       sync.Mutex
	id       uuid.UUID
	center   models.Coordinate
	marker   models.Coordinate
	zoom     int
	tiles    TileLayer
	groups   []*layerGroup
	onChange CoordinateChangeFunc
	released bool
}

// New создает карту. Сборка слоев прерывается, если ctx отменен
func New(ctx context.Context, opts Options) (*Renderer, error) {
	if opts.Dataset == nil {
		return nil, ErrNoDataset
	}
	tiles := opts.Tiles
	if tiles.URL == "" {
		tiles = TileLayer{URL: DefaultTileURL, Attribution: DefaultTileAttribution}
	}

	r := &Renderer{
		id:       uuid.New(),
		center:   opts.Initial,
		marker:   opts.Initial,
		zoom:     clampZoom(opts.Zoom),
		tiles:    tiles,
		onChange: opts.OnCoordinateChange,
		groups:   make([]*layerGroup, 0, len(Layers)),
	}

	for _, id := range Layers {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("map initialization abandoned: %w", err)
		}
		if opts.buildHook != nil {
			opts.buildHook(id)
		}
		r.groups = append(r.groups, &layerGroup{
			id:      id,
			name:    layerNames[id],
			visible: true,
			shapes:  buildLayer(id, opts.Dataset),
		})
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("map initialization abandoned: %w", err)
	}
	return r, nil
}

func (r *Renderer) ID() uuid.UUID {
	return r.id
}

// Click переносит маркер в точку клика и сообщает округленную координату
func (r *Renderer) Click(at models.Coordinate) error {
	return r.moveMarkerAndNotify(at)
}

// DragEnd сообщает позицию, в которой маркер отпустили
func (r *Renderer) DragEnd(at models.Coordinate) error {
	return r.moveMarkerAndNotify(at)
}

func (r *Renderer) moveMarkerAndNotify(at models.Coordinate) error {
	rounded := at.Rounded()

	r.mu.Lock()
	if r.released {
		r.mu.Unlock()
		return ErrReleased
	}
	r.marker = rounded
	notify := r.onChange
	r.mu.Unlock()

	if notify != nil {
		notify(rounded)
	}
	return nil
}

// SetCoordinate применяет внешнее изменение (GPS, ручной ввод): маркер и центр
// переносятся в точку, масштаб сохраняется, обратный вызов не выполняется
func (r *Renderer) SetCoordinate(c models.Coordinate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.released {
		return ErrReleased
	}
	r.marker = c
	r.center = c
	return nil
}

// SetViewport фиксирует панорамирование и масштаб, выполненные пользователем
func (r *Renderer) SetViewport(center models.Coordinate, zoom int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.released {
		return ErrReleased
	}
	r.center = center
	r.zoom = clampZoom(zoom)
	return nil
}

// SetLayerVisible показывает или скрывает одну группу, не трогая остальные
func (r *Renderer) SetLayerVisible(id LayerID, visible bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.released {
		return ErrReleased
	}
	for _, g := range r.groups {
		if g.id == id {
			g.visible = visible
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownLayer, id)
}

// LayerVisibility возвращает видимость всех групп
func (r *Renderer) LayerVisibility() (map[LayerID]bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.released {
		return nil, ErrReleased
	}
	out := make(map[LayerID]bool, len(r.groups))
	for _, g := range r.groups {
		out[g.id] = g.visible
	}
	return out, nil
}

func (r *Renderer) Marker() (models.Coordinate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.released {
		return models.Coordinate{}, ErrReleased
	}
	return r.marker, nil
}

func (r *Renderer) Center() (models.Coordinate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.released {
		return models.Coordinate{}, ErrReleased
	}
	return r.center, nil
}

func (r *Renderer) Zoom() (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.released {
		return 0, ErrReleased
	}
	return r.zoom, nil
}

// Spec возвращает копию текущего описания карты
func (r *Renderer) Spec() (MapSpec, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.released {
		return MapSpec{}, ErrReleased
	}

	layers := make([]LayerSpec, 0, len(r.groups))
	for _, g := range r.groups {
		shapes := make([]Shape, len(g.shapes))
		for i, s := range g.shapes {
			shapes[i] = s.clone()
		}
		layers = append(layers, LayerSpec{ID: g.id, Name: g.name, Visible: g.visible, Shapes: shapes})
	}

	return MapSpec{
		ID:     r.id.String(),
		Center: r.center,
		Zoom:   r.zoom,
		Tiles:  r.tiles,
		Layers: layers,
		Marker: MarkerSpec{
			Position:  r.marker,
			Draggable: true,
			Popup:     markerPopup,
			PopupOpen: true,
		},
	}, nil
}

// Release освобождает карту. Повторный вызов ничего не делает
func (r *Renderer) Release() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.released {
		return
	}
	r.released = true
	r.groups = nil
	r.onChange = nil
}

func (r *Renderer) Released() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.released
}

// ParseLayerID проверяет имя группы слоев
func ParseLayerID(s string) (LayerID, error) {
	for _, id := range Layers {
		if string(id) == s {
			return id, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownLayer, s)
}

func clampZoom(z int) int {
	switch {
	case z < MinZoom:
		return MinZoom
	case z > MaxZoom:
		return MaxZoom
	}
	return z
}
