package config

import (
	"os"
	"path/filepath"
	"strconv"
)

// Config 应用配置
type Config struct {
	Env          string
	Port         string
	SiteName     string
	PlacesPath   string
	HotelsPath   string
	UsersPath    string
	DefaultAlpha float64
}

// Load 加载配置
func Load() *Config {
	dataDir := getEnv("DATA_DIR", "data")

	alpha, err := strconv.ParseFloat(getEnv("DEFAULT_ALPHA", "0.5"), 64)
	if err != nil || alpha < 0 || alpha > 1 {
		alpha = 0.5
	}

	return &Config{
		Env:          getEnv("APP_ENV", "development"),
		Port:         getEnv("PORT", "5006"),
		SiteName:     getEnv("SITE_NAME", "TripMate"),
		PlacesPath:   filepath.Join(dataDir, getEnv("PLACES_FILE", "Final Dataset.csv")),
		HotelsPath:   filepath.Join(dataDir, getEnv("HOTELS_FILE", "Hotels.csv")),
		UsersPath:    filepath.Join(dataDir, getEnv("USERS_FILE", "User.csv")),
		DefaultAlpha: alpha,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
