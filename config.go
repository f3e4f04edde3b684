package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// config is read once at startup from the environment, after .env is loaded.
type config struct {
	Port               string
	DBURL              string // optional; empty runs the API without persistence
	OpenAIBaseURL      string
	OpenAIModel        string
	OpenAITimeout      time.Duration
	CORSAllowedOrigins []string
}

const (
	defaultPort          = "3000"
	defaultOpenAIBaseURL = "https://api.openai.com"
	defaultOpenAIModel   = "gpt-4o-mini"
	defaultOpenAITimeout = 30 * time.Second
)

// loadConfig loads .env (a missing file is fine) and reads the settings.
func loadConfig() (config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := config{
		Port:               envOr("PORT", defaultPort),
		DBURL:              os.Getenv("DB_URL"),
		OpenAIBaseURL:      strings.TrimSuffix(envOr("OPENAI_BASE_URL", defaultOpenAIBaseURL), "/"),
		OpenAIModel:        envOr("OPENAI_MODEL", defaultOpenAIModel),
		OpenAITimeout:      defaultOpenAITimeout,
		CORSAllowedOrigins: splitList(envOr("CORS_ALLOWED_ORIGINS", "*")),
	}

	if s := os.Getenv("OPENAI_TIMEOUT"); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil || d <= 0 {
			return config{}, fmt.Errorf("OPENAI_TIMEOUT must be a positive duration like 30s, got %q", s)
		}
		cfg.OpenAITimeout = d
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// splitList parses a comma-separated env value, dropping empty entries.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
