package models

import "fmt"

// RiskLevel - упорядоченная категория риска, большее значение опаснее
type RiskLevel int

const (
	RiskLow RiskLevel = iota
	RiskModerate
	RiskHigh
)

// RiskLevels перечисляет все уровни по возрастанию опасности
var RiskLevels = [...]RiskLevel{RiskLow, RiskModerate, RiskHigh}

var riskLevelNames = [...]string{
	RiskLow:      "LOW",
	RiskModerate: "MODERATE",
	RiskHigh:     "HIGH",
}

func (l RiskLevel) Valid() bool {
	return l >= RiskLow && l <= RiskHigh
}

func (l RiskLevel) String() string {
	if !l.Valid() {
		return fmt.Sprintf("RiskLevel(%d)", int(l))
	}
	return riskLevelNames[l]
}

// MarshalText кодирует уровень строкой, чтобы в JSON был "HIGH", а не 2
func (l RiskLevel) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("unknown risk level %d", int(l))
	}
	return []byte(riskLevelNames[l]), nil
}

func (l *RiskLevel) UnmarshalText(text []byte) error {
	level, err := ParseRiskLevel(string(text))
	if err != nil {
		return err
	}
	*l = level
	return nil
}

// ParseRiskLevel разбирает строковое имя уровня
func ParseRiskLevel(s string) (RiskLevel, error) {
	for _, level := range RiskLevels {
		if riskLevelNames[level] == s {
			return level, nil
		}
	}
	return RiskLow, fmt.Errorf("unknown risk level %q", s)
}

// RiskAssessment - результат классификации точки. Не хранит исходную координату
type RiskAssessment struct {
	Level                  RiskLevel `json:"level"`
	Score                  float64   `json:"score"`
	PeakGroundAcceleration string    `json:"peak_ground_acceleration"`
	SoilVelocityVs30       string    `json:"soil_velocity_vs30"`
	FaultDistance          string    `json:"fault_distance"`
	Lithology              string    `json:"lithology"`
	Recommendation         string    `json:"recommendation"`
}
