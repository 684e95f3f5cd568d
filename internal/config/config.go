package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Incident data boundary
	HistoryCSVPath  string `env:"HISTORY_CSV_PATH" envDefault:"crime_history.csv"`
	RealtimeCSVPath string `env:"REALTIME_CSV_PATH" envDefault:"crime_realtime.csv"`

	// Simulation Config
	SimInterval        time.Duration `env:"SIM_INTERVAL" envDefault:"5m"`
	SimSeed            int64         `env:"SIM_SEED" envDefault:"0"`
	MaxActiveIncidents int           `env:"MAX_ACTIVE_INCIDENTS" envDefault:"100"`

	// Bounding region for randomly placed incidents (Chennai area)
	RegionLatMin float64 `env:"REGION_LAT_MIN" envDefault:"12.8"`
	RegionLatMax float64 `env:"REGION_LAT_MAX" envDefault:"13.2"`
	RegionLonMin float64 `env:"REGION_LON_MIN" envDefault:"80.1"`
	RegionLonMax float64 `env:"REGION_LON_MAX" envDefault:"80.3"`

	// External collaborators
	NominatimURL      string        `env:"NOMINATIM_URL" envDefault:"https://nominatim.openstreetmap.org"`
	OSRMURL           string        `env:"OSRM_URL" envDefault:"http://router.project-osrm.org"`
	ExternalTimeout   time.Duration `env:"EXTERNAL_TIMEOUT" envDefault:"5s"`
	RouteAlternatives int           `env:"ROUTE_ALTERNATIVES" envDefault:"3"`

	// Stats Config
	StatsTimeWindowMinutes int `env:"STATS_TIME_WINDOW_MINUTES" envDefault:"60"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:            os.Getenv("DATABASE_URL"),
		HTTPPort:               getEnv("HTTP_PORT", "8080"),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
		RedisAddr:              getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:              os.Getenv("REDIS_PASSWORD"),
		RedisDB:                getEnvAsInt("REDIS_DB", 0),
		HistoryCSVPath:         getEnv("HISTORY_CSV_PATH", "crime_history.csv"),
		RealtimeCSVPath:        getEnv("REALTIME_CSV_PATH", "crime_realtime.csv"),
		SimInterval:            getEnvAsDuration("SIM_INTERVAL", 5*time.Minute),
		SimSeed:                getEnvAsInt64("SIM_SEED", 0),
		MaxActiveIncidents:     getEnvAsInt("MAX_ACTIVE_INCIDENTS", 100),
		RegionLatMin:           getEnvAsFloat("REGION_LAT_MIN", 12.8),
		RegionLatMax:           getEnvAsFloat("REGION_LAT_MAX", 13.2),
		RegionLonMin:           getEnvAsFloat("REGION_LON_MIN", 80.1),
		RegionLonMax:           getEnvAsFloat("REGION_LON_MAX", 80.3),
		NominatimURL:           getEnv("NOMINATIM_URL", "https://nominatim.openstreetmap.org"),
		OSRMURL:                getEnv("OSRM_URL", "http://router.project-osrm.org"),
		ExternalTimeout:        getEnvAsDuration("EXTERNAL_TIMEOUT", 5*time.Second),
		RouteAlternatives:      getEnvAsInt("ROUTE_ALTERNATIVES", 3),
		StatsTimeWindowMinutes: getEnvAsInt("STATS_TIME_WINDOW_MINUTES", 60),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	return cfg, nil
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

// getEnvAsInt64 возвращает значение переменной окружения как int64 или значение по умолчанию
func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloat возвращает значение переменной окружения как float64 или значение по умолчанию
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
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
