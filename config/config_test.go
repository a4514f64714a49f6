package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, ":5000", cfg.Addr)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.AllowedOrigins)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 2, cfg.MinPlayers)
	assert.Equal(t, 8, cfg.MaxPlayers)
	assert.Equal(t, 25, cfg.SoloGridSize)
	assert.Equal(t, 15, cfg.MultiplayerGridSize)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("MIN_PLAYERS", "1")
	t.Setenv("MAX_PLAYERS", "bogus")

	cfg := Load()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, 1, cfg.MinPlayers)
	// Unparseable numbers fall back to the default.
	assert.Equal(t, 8, cfg.MaxPlayers)
}
