package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "5006", cfg.Port)
	assert.Equal(t, "TripMate", cfg.SiteName)
	assert.Equal(t, filepath.Join("data", "Final Dataset.csv"), cfg.PlacesPath)
	assert.Equal(t, filepath.Join("data", "Hotels.csv"), cfg.HotelsPath)
	assert.Equal(t, filepath.Join("data", "User.csv"), cfg.UsersPath)
	assert.Equal(t, 0.5, cfg.DefaultAlpha)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("PORT", "8080")
	t.Setenv("DATA_DIR", "/srv/data")
	t.Setenv("PLACES_FILE", "places.csv")
	t.Setenv("DEFAULT_ALPHA", "0.8")

	cfg := Load()

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, filepath.Join("/srv/data", "places.csv"), cfg.PlacesPath)
	assert.Equal(t, 0.8, cfg.DefaultAlpha)
}

func TestLoad_InvalidAlphaFallsBack(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"非数字", "abc"},
		{"超出上界", "1.5"},
		{"负值", "-0.1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DEFAULT_ALPHA", tt.value)
			assert.Equal(t, 0.5, Load().DefaultAlpha)
		})
	}
}
