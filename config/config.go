package config

import (
	"os"
	"strings"
	"time"
)

// Config holds the startup configuration read from the environment.
// Secret keys may be overridden per session after startup.
type Config struct {
	Port          string
	ModelProvider string // "cohere" or "gemini"
	ModelAPIKey   string
	ModelName     string
	VideoAPIKey   string
	CorpusTTL     time.Duration
	WarmCache     bool
}

// FromEnv builds a Config from environment variables, applying defaults
// for anything unset. godotenv loading happens in main before this.
func FromEnv() Config {
	cfg := Config{
		Port:          getEnvOrDefault("PORT", "8080"),
		ModelProvider: strings.ToLower(getEnvOrDefault("MODEL_PROVIDER", "cohere")),
		ModelAPIKey:   strings.TrimSpace(os.Getenv("MODEL_API_KEY")),
		ModelName:     strings.TrimSpace(os.Getenv("MODEL_NAME")),
		VideoAPIKey:   strings.TrimSpace(os.Getenv("VIDEO_API_KEY")),
		CorpusTTL:     CorpusTTL,
		WarmCache:     strings.EqualFold(os.Getenv("WARM_CACHE"), "true"),
	}

	if v := strings.TrimSpace(os.Getenv("CORPUS_TTL")); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.CorpusTTL = d
		}
	}
	return cfg
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
