package risk

import "github.com/shenikar/geo_risk_system/internal/models"

// LevelDisplay - атрибуты отображения карточки результата
type LevelDisplay struct {
	Level models.RiskLevel `json:"level"`
	Label string           `json:"label"`
	Tone  string           `json:"tone"`
	Icon  string           `json:"icon"`
	Badge string           `json:"badge_color"`
}

var levelDisplays = [...]LevelDisplay{
	models.RiskLow: {
		Level: models.RiskLow,
		Label: "RENDAH",
		Tone:  "emerald",
		Icon:  "shield-check",
		Badge: "#059669",
	},
	models.RiskModerate: {
		Level: models.RiskModerate,
		Label: "SEDANG",
		Tone:  "amber",
		Icon:  "shield",
		Badge: "#d97706",
	},
	models.RiskHigh: {
		Level: models.RiskHigh,
		Label: "TINGGI",
		Tone:  "red",
		Icon:  "shield-alert",
		Badge: "#dc2626",
	},
}

// Display возвращает атрибуты уровня. Для неизвестного уровня - нейтральная карточка
func Display(level models.RiskLevel) LevelDisplay {
	if !level.Valid() {
		return LevelDisplay{Level: level, Label: level.String(), Tone: "slate", Icon: "shield", Badge: "#475569"}
	}
	return levelDisplays[level]
}

// Displays возвращает таблицу для всех уровней по возрастанию опасности
func Displays() []LevelDisplay {
	out := make([]LevelDisplay, 0, len(models.RiskLevels))
	for _, level := range models.RiskLevels {
		out = append(out, levelDisplays[level])
	}
	return out
}
