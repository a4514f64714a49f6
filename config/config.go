// Package config loads server settings from the environment, with a .env
// file honored in development.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr           string
	AllowedOrigins []string
	LogLevel       string

	WordsFile string
	DBPath    string

	MinPlayers int
	MaxPlayers int

	// Grid sizes are policy, not constants: the solo board is larger than
	// the grid used to visualize multiplayer boards.
	SoloGridSize        int
	MultiplayerGridSize int
}

// Load reads the environment. Every value has a workable default; nothing
// here is fatal.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Addr:                ":" + getEnv("PORT", "5000"),
		AllowedOrigins:      splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		WordsFile:           getEnv("WORDS_FILE", "./words.txt"),
		DBPath:              getEnv("DB_PATH", "./data/sessions.db"),
		MinPlayers:          getEnvInt("MIN_PLAYERS", 2),
		MaxPlayers:          getEnvInt("MAX_PLAYERS", 8),
		SoloGridSize:        getEnvInt("SOLO_GRID_SIZE", 25),
		MultiplayerGridSize: getEnvInt("MULTIPLAYER_GRID_SIZE", 15),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
