package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"gourmetquest/analytics"
)

// Config holds the server settings read from the environment.
type Config struct {
	DatasetPath    string
	Port           string
	AllowedOrigins []string

	// Logging
	Env      string
	LogLevel string

	// Dashboard presets
	TopCuisinesDefault   int
	MinRestaurantEntries int
}

var defaultOrigins = []string{"http://localhost:3000", "http://localhost:5173", "http://localhost:5174"}

// Load reads an optional .env file and then the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DatasetPath:          env("DATASET_PATH", "dataset/zomato.csv"),
		Port:                 env("PORT", "3003"),
		AllowedOrigins:       envList("ALLOWED_ORIGINS", defaultOrigins),
		Env:                  env("APP_ENV", "development"),
		LogLevel:             env("LOG_LEVEL", "info"),
		TopCuisinesDefault:   envInt("TOP_CUISINES_DEFAULT", analytics.DefaultTopCuisines),
		MinRestaurantEntries: envInt("MIN_RESTAURANT_ENTRIES", analytics.MinRestaurantEntries),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects a missing dataset path, an out-of-range port and
// non-positive dashboard presets.
func (c *Config) Validate() error {
	if c.DatasetPath == "" {
		return errors.New("dataset path is required")
	}

	port, err := strconv.Atoi(c.Port)
	if err != nil || port <= 0 || port > 65535 {
		return errors.New("port must be a number between 1 and 65535")
	}

	if c.TopCuisinesDefault <= 0 {
		return errors.New("default cuisine selection size must be positive")
	}

	if c.MinRestaurantEntries <= 0 {
		return errors.New("minimum restaurant entries must be positive")
	}

	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// env returns the value of key, or def when it is unset or empty.
func env(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

// envInt falls back to def when key is unset or not an integer.
func envInt(key string, def int) int {
	n, err := strconv.Atoi(env(key, ""))
	if err != nil {
		return def
	}
	return n
}

// envList splits a comma-separated value, ignoring blank items.
func envList(key string, def []string) []string {
	var out []string
	for _, v := range strings.Split(env(key, ""), ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
