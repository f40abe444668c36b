package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shenikar/geo_risk_system/internal/mapview"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	HTTPPort        string        `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"json"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`

	// Map Config
	TileURL          string  `env:"TILE_URL"`
	TileAttribution  string  `env:"TILE_ATTRIBUTION"`
	DefaultLatitude  float64 `env:"DEFAULT_LATITUDE" envDefault:"-6.79"`
	DefaultLongitude float64 `env:"DEFAULT_LONGITUDE" envDefault:"107.56"`
	DefaultZoom      int     `env:"DEFAULT_ZOOM" envDefault:"9"`

	// View Config
	ViewIdleTimeout  time.Duration `env:"VIEW_IDLE_TIMEOUT" envDefault:"30m"`
	ViewReapInterval time.Duration `env:"VIEW_REAP_INTERVAL" envDefault:"1m"`

	// API Keys для экранов анализа, пусто - без аутентификации
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &Config{
		HTTPPort:         getEnv("HTTP_PORT", "8080"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		LogFormat:        getEnv("LOG_FORMAT", "json"),
		ShutdownTimeout:  getEnvAsDuration("SHUTDOWN_TIMEOUT", 5*time.Second),
		TileURL:          getEnv("TILE_URL", mapview.DefaultTileURL),
		TileAttribution:  getEnv("TILE_ATTRIBUTION", mapview.DefaultTileAttribution),
		DefaultLatitude:  getEnvAsFloat("DEFAULT_LATITUDE", -6.79),
		DefaultLongitude: getEnvAsFloat("DEFAULT_LONGITUDE", 107.56),
		DefaultZoom:      getEnvAsInt("DEFAULT_ZOOM", mapview.DefaultZoom),
		ViewIdleTimeout:  getEnvAsDuration("VIEW_IDLE_TIMEOUT", 30*time.Minute),
		ViewReapInterval: getEnvAsDuration("VIEW_REAP_INTERVAL", time.Minute),
		APIKeys:          getEnvAsList("API_KEYS"),
	}

	if cfg.DefaultZoom < mapview.MinZoom || cfg.DefaultZoom > mapview.MaxZoom {
		return nil, fmt.Errorf("DEFAULT_ZOOM must be between %d and %d, got %d", mapview.MinZoom, mapview.MaxZoom, cfg.DefaultZoom)
	}
	if cfg.ViewIdleTimeout <= 0 {
		return nil, fmt.Errorf("VIEW_IDLE_TIMEOUT must be positive, got %s", cfg.ViewIdleTimeout)
	}
	if cfg.ViewReapInterval <= 0 {
		return nil, fmt.Errorf("VIEW_REAP_INTERVAL must be positive, got %s", cfg.ViewReapInterval)
	}

	return cfg, nil
}

// AuthEnabled сообщает, настроены ли API-ключи
func (c *Config) AuthEnabled() bool {
	return len(c.APIKeys) > 0
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloat возвращает значение переменной окружения как float64 или значение по умолчанию
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}

// getEnvAsList разбирает список через запятую, пустые элементы отбрасываются
func getEnvAsList(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
