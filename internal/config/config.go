package config

import (
	"os"
	"time"
)

// Config carries everything the services need from the environment.
// It is loaded once in main and injected; no package reads os.Getenv
// after startup.
type Config struct {
	Port            string
	GoogleAPIKey    string
	RedisAddr       string
	RestaurantsFile string
	HTTPTimeout     time.Duration
}

func Load() *Config {
	cfg := &Config{
		Port:            os.Getenv("PORT"),
		GoogleAPIKey:    os.Getenv("GOOGLE_PLACES_API_KEY"),
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		RestaurantsFile: os.Getenv("RESTAURANTS_FILE"),
		HTTPTimeout:     15 * time.Second,
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.RestaurantsFile == "" {
		cfg.RestaurantsFile = "resources/data/restaurants.json"
	}

	return cfg
}

// MaskedAPIKey returns a short preview safe to expose on the
// diagnostics endpoint.
func (c *Config) MaskedAPIKey() string {
	if c.GoogleAPIKey == "" {
		return "not configured"
	}
	if len(c.GoogleAPIKey) <= 6 {
		return "..."
	}
	return c.GoogleAPIKey[:6] + "..."
}
