package mapview

import "github.com/shenikar/geo_risk_system/internal/models"

// LayerID - идентификатор переключаемой группы слоев
type LayerID string

const (
	LayerBoundary     LayerID = "boundary"
	LayerFault        LayerID = "fault"
	LayerSoil         LayerID = "soil"
	LayerAcceleration LayerID = "pga"
	LayerHistory      LayerID = "history"
)

// Layers - порядок групп в переключателе слоев
var Layers = [...]LayerID{LayerBoundary, LayerFault, LayerSoil, LayerAcceleration, LayerHistory}

// ShapeKind - тип фигуры для виджета карты
type ShapeKind string

const (
	ShapePolyline     ShapeKind = "polyline"
	ShapePolygon      ShapeKind = "polygon"
	ShapeCircle       ShapeKind = "circle"
	ShapeCircleMarker ShapeKind = "circle_marker"
)

// Style - параметры отрисовки фигуры
type Style struct {
	Color       string  `json:"color"`
	FillColor   string  `json:"fill_color,omitempty"`
	Weight      float64 `json:"weight"`
	Opacity     float64 `json:"opacity,omitempty"`
	FillOpacity float64 `json:"fill_opacity,omitempty"`
	DashArray   string  `json:"dash_array,omitempty"`
}

// Shape - одна фигура слоя. Для circle радиус в метрах, для circle_marker в пикселях
type Shape struct {
	Kind    ShapeKind           `json:"kind"`
	Points  []models.Coordinate `json:"points,omitempty"`
	Center  *models.Coordinate  `json:"center,omitempty"`
	Radius  float64             `json:"radius,omitempty"`
	Style   Style               `json:"style"`
	Tooltip string              `json:"tooltip,omitempty"`
	Popup   string              `json:"popup,omitempty"`
}

// LayerSpec - группа слоев с текущей видимостью
type LayerSpec struct {
	ID      LayerID `json:"id"`
	Name    string  `json:"name"`
	Visible bool    `json:"visible"`
	Shapes  []Shape `json:"shapes"`
}

// TileLayer - подложка карты
type TileLayer struct {
	URL         string `json:"url"`
	Attribution string `json:"attribution"`
}

// MarkerSpec - перетаскиваемый маркер точки анализа
type MarkerSpec struct {
	Position  models.Coordinate `json:"position"`
	Draggable bool              `json:"draggable"`
	Popup     string            `json:"popup"`
	PopupOpen bool              `json:"popup_open"`
}

// MapSpec - декларативное описание карты для виджета в браузере
type MapSpec struct {
	ID     string            `json:"id"`
	Center models.Coordinate `json:"center"`
	Zoom   int               `json:"zoom"`
	Tiles  TileLayer         `json:"tiles"`
	Layers []LayerSpec       `json:"layers"`
	Marker MarkerSpec        `json:"marker"`
}

func (s Shape) clone() Shape {
	out := s
	if s.Points != nil {
		out.Points = append([]models.Coordinate(nil), s.Points...)
	}
	if s.Center != nil {
		c := *s.Center
		out.Center = &c
	}
	return out
}
