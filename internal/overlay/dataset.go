// Package overlay содержит статичные слои карты исследуемого участка
// (Кечаматан Чисаруа, Западная Ява) и их выгрузку в GeoJSON.
package overlay

import "github.com/shenikar/geo_risk_system/internal/models"

// Default возвращает набор слоев. Каждый вызов строит новое значение,
// поэтому изменение результата не влияет на других потребителей
func Default() models.GeoOverlayDataset {
	return models.GeoOverlayDataset{
		// Сесар Лембанг
		FaultLine: []models.Coordinate{
			{Latitude: -6.80, Longitude: 107.45},
			{Latitude: -6.81, Longitude: 107.70},
		},
		// Граница провинции Западная Ява
		AdministrativeBoundary: []models.Coordinate{
			{Latitude: -5.9, Longitude: 106.7},
			{Latitude: -6.2, Longitude: 106.6},
			{Latitude: -6.6, Longitude: 106.4},
			{Latitude: -7.0, Longitude: 106.4},
			{Latitude: -7.4, Longitude: 106.5},
			{Latitude: -7.7, Longitude: 107.0},
			{Latitude: -7.8, Longitude: 108.0},
			{Latitude: -7.7, Longitude: 108.6},
			{Latitude: -7.3, Longitude: 108.8},
			{Latitude: -6.7, Longitude: 108.9},
			{Latitude: -6.3, Longitude: 108.2},
			{Latitude: -6.1, Longitude: 107.8},
			{Latitude: -5.9, Longitude: 107.2},
			{Latitude: -5.9, Longitude: 106.7},
		},
		SoilZones: models.SoilZones{
			Soft: models.Ring{
				{Latitude: -6.78, Longitude: 107.55},
				{Latitude: -6.78, Longitude: 107.58},
				{Latitude: -6.80, Longitude: 107.58},
				{Latitude: -6.80, Longitude: 107.55},
			},
			Hard: models.Ring{
				{Latitude: -6.80, Longitude: 107.55},
				{Latitude: -6.82, Longitude: 107.58},
				{Latitude: -6.82, Longitude: 107.52},
				{Latitude: -6.80, Longitude: 107.52},
			},
		},
		AccelerationZone: models.CircleZone{
			Center:       models.Coordinate{Latitude: -6.805, Longitude: 107.575},
			RadiusMeters: 1500,
		},
		HistoricalEvents: []models.HistoricalEvent{
			{Location: models.Coordinate{Latitude: -6.785, Longitude: 107.565}, Label: "Gempa 2011 (M 3.3)", DisplayRadius: 6},
			{Location: models.Coordinate{Latitude: -6.795, Longitude: 107.595}, Label: "Gempa 2017 (M 4.1)", DisplayRadius: 8},
		},
	}
}
