package models

import "math"

// CoordinatePrecision - количество знаков после запятой, до которого округляются координаты
// при выборе точки на карте, вводе вручную и по GPS
const CoordinatePrecision = 5

// Coordinate - географическая точка в градусах WGS 84
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Rounded возвращает координату, округленную до CoordinatePrecision знаков
func (c Coordinate) Rounded() Coordinate {
	return Coordinate{
		Latitude:  RoundCoordinateValue(c.Latitude),
		Longitude: RoundCoordinateValue(c.Longitude),
	}
}

// SquaredDistance возвращает квадрат расстояния в градусах без проекции
func (c Coordinate) SquaredDistance(other Coordinate) float64 {
	dLat := c.Latitude - other.Latitude
	dLon := c.Longitude - other.Longitude
	// явные преобразования запрещают компилятору объединять выражение в FMA
	return float64(dLat*dLat) + float64(dLon*dLon)
}

// RoundCoordinateValue округляет одно значение широты или долготы
func RoundCoordinateValue(v float64) float64 {
	scale := math.Pow10(CoordinatePrecision)
	return math.Round(v*scale) / scale
}

// Ring - замкнутый контур полигона. Первая и последняя точки могут не совпадать
type Ring []Coordinate

// Closed возвращает копию контура, у которой последняя точка совпадает с первой
func (r Ring) Closed() []Coordinate {
	out := make([]Coordinate, len(r), len(r)+1)
	copy(out, r)
	if len(out) > 0 && out[0] != out[len(out)-1] {
		out = append(out, out[0])
	}
	return out
}
