// Package risk классифицирует точку по уровню сейсмического риска.
//
// Классификация учебная: квадрат расстояния в градусах от опорной точки
// сравнивается с двумя порогами, каждому уровню соответствует фиксированный профиль.
package risk

import (
	"math"

	"github.com/shenikar/geo_risk_system/internal/models"
)

// Profiles - фиксированная оценка для каждого уровня. Отдельное поле на уровень,
// чтобы пропущенный уровень был виден при компиляции
type Profiles struct {
	Low      models.RiskAssessment
	Moderate models.RiskAssessment
	High     models.RiskAssessment
}

// Config - неизменяемые параметры классификатора
type Config struct {
	Reference models.Coordinate
	// HighBelow - d² строго меньше порога дает HIGH
	HighBelow float64
	// ModerateBelow - d² строго меньше порога (и не HIGH) дает MODERATE
	ModerateBelow float64
	Profiles      Profiles
}

// DefaultConfig возвращает параметры для Кечаматана Чисаруа (опорная точка -6.79, 107.56)
func DefaultConfig() Config {
	return Config{
		Reference:     models.Coordinate{Latitude: -6.79, Longitude: 107.56},
		HighBelow:     0.01,
		ModerateBelow: 0.05,
		Profiles: Profiles{
			High: models.RiskAssessment{
				Level:                  models.RiskHigh,
				Score:                  8.5,
				PeakGroundAcceleration: "0.65 g",
				SoilVelocityVs30:       "180 m/s (Tanah Lunak)",
				FaultDistance:          "2.1 km (Sesar Lembang)",
				Lithology:              "Qvu (Batuan Gunungapi Muda)",
				Recommendation:         "Konstruksi bangunan wajib tahan gempa standar SNI 1726:2019. Waspada likuifaksi.",
			},
			Moderate: models.RiskAssessment{
				Level:                  models.RiskModerate,
				Score:                  5.2,
				PeakGroundAcceleration: "0.35 g",
				SoilVelocityVs30:       "360 m/s (Tanah Sedang)",
				FaultDistance:          "8.5 km (Sesar Lembang)",
				Lithology:              "Ql (Endapan Danau)",
				Recommendation:         "Periksa struktur bangunan. Siapkan jalur evakuasi.",
			},
			Low: models.RiskAssessment{
				Level:                  models.RiskLow,
				Score:                  2.1,
				PeakGroundAcceleration: "0.15 g",
				SoilVelocityVs30:       "760 m/s (Batuan Keras)",
				FaultDistance:          "> 15 km",
				Lithology:              "Tmb (Formasi Batuan Tua)",
				Recommendation:         "Wilayah relatif stabil, tetap waspada gempa megathrust.",
			},
		},
	}
}

// Classifier - чистая функция координата -> оценка риска
type Classifier struct {
	cfg Config
}

func NewClassifier(cfg Config) *Classifier {
	return &Classifier{cfg: cfg}
}

// Reference возвращает опорную точку исследуемого участка
func (c *Classifier) Reference() models.Coordinate {
	return c.cfg.Reference
}

// SquaredDistance возвращает d² от опорной точки без округления
func (c *Classifier) SquaredDistance(point models.Coordinate) float64 {
	return point.SquaredDistance(c.cfg.Reference)
}

// Level определяет уровень риска. На границе порога выбирается менее опасный уровень.
// Точка считается лежащей на границе, если d² отличается от порога не больше,
// чем погрешность представления координат во float64
func (c *Classifier) Level(point models.Coordinate) models.RiskLevel {
	d2 := c.SquaredDistance(point)
	tolerance := c.distanceError(point)
	switch {
	case d2 < c.cfg.HighBelow-tolerance:
		return models.RiskHigh
	case d2 < c.cfg.ModerateBelow-tolerance:
		return models.RiskModerate
	default:
		// сюда же попадают NaN и бесконечности
		return models.RiskLow
	}
}

// distanceError оценивает сверху ошибку d²: каждая разность координат
// ошибается не больше чем на ulp большего из операндов
func (c *Classifier) distanceError(point models.Coordinate) float64 {
	ref := c.cfg.Reference
	dLat := math.Abs(point.Latitude - ref.Latitude)
	dLon := math.Abs(point.Longitude - ref.Longitude)
	return 2 * (dLat*ulp(point.Latitude, ref.Latitude) + dLon*ulp(point.Longitude, ref.Longitude))
}

func ulp(a, b float64) float64 {
	x := math.Max(math.Abs(a), math.Abs(b))
	return math.Nextafter(x, math.Inf(1)) - x
}

// Classify возвращает оценку для точки. Диапазоны широты и долготы не проверяются
func (c *Classifier) Classify(point models.Coordinate) models.RiskAssessment {
	switch c.Level(point) {
	case models.RiskHigh:
		return c.cfg.Profiles.High
	case models.RiskModerate:
		return c.cfg.Profiles.Moderate
	default:
		return c.cfg.Profiles.Low
	}
}
