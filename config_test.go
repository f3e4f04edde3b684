package main

import (
	"slices"
	"testing"
	"time"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "DB_URL", "OPENAI_BASE_URL", "OPENAI_MODEL", "OPENAI_TIMEOUT", "CORS_ALLOWED_ORIGINS"} {
		t.Setenv(k, "")
	}

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Port != "3000" {
		t.Errorf("expected port 3000, got %q", cfg.Port)
	}
	if cfg.DBURL != "" {
		t.Errorf("expected empty DB URL, got %q", cfg.DBURL)
	}
	if cfg.OpenAIBaseURL != "https://api.openai.com" || cfg.OpenAIModel != "gpt-4o-mini" {
		t.Errorf("unexpected OpenAI defaults: %q %q", cfg.OpenAIBaseURL, cfg.OpenAIModel)
	}
	if cfg.OpenAITimeout != 30*time.Second {
		t.Errorf("expected 30s timeout, got %v", cfg.OpenAITimeout)
	}
	if !slices.Equal(cfg.CORSAllowedOrigins, []string{"*"}) {
		t.Errorf("expected [*] origins, got %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("OPENAI_BASE_URL", "http://localhost:9999/")
	t.Setenv("OPENAI_TIMEOUT", "5s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("expected port 8080, got %q", cfg.Port)
	}
	if cfg.OpenAIBaseURL != "http://localhost:9999" {
		t.Errorf("expected trailing slash trimmed, got %q", cfg.OpenAIBaseURL)
	}
	if cfg.OpenAITimeout != 5*time.Second {
		t.Errorf("expected 5s timeout, got %v", cfg.OpenAITimeout)
	}
	want := []string{"https://a.example", "https://b.example"}
	if !slices.Equal(cfg.CORSAllowedOrigins, want) {
		t.Errorf("expected %v, got %v", want, cfg.CORSAllowedOrigins)
	}
}

func TestLoadConfig_BadTimeout(t *testing.T) {
	for _, v := range []string{"soon", "-1s", "0s"} {
		t.Setenv("OPENAI_TIMEOUT", v)
		if _, err := loadConfig(); err == nil {
			t.Errorf("OPENAI_TIMEOUT=%q: expected error", v)
		}
	}
}
