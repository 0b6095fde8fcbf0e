package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port: got %q", cfg.Port)
	}
	if cfg.GinMode != "release" {
		t.Errorf("GinMode: got %q", cfg.GinMode)
	}
	if cfg.APIBasePath != "/api" {
		t.Errorf("APIBasePath: got %q", cfg.APIBasePath)
	}
	if cfg.DBDriver != DriverSQLite || cfg.DBPath != "news.db" {
		t.Errorf("database defaults: %q %q", cfg.DBDriver, cfg.DBPath)
	}
	if cfg.ReadTimeout != 15*time.Second {
		t.Errorf("ReadTimeout: got %v", cfg.ReadTimeout)
	}
	if cfg.OTEL.Enabled {
		t.Errorf("tracing should be off by default")
	}
}

func TestLoadOverridesAndNormalization(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("GIN_MODE", "weird")
	t.Setenv("LOG_LEVEL", "WARNING")
	t.Setenv("API_BASE_PATH", "v2/api/")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("READ_TIMEOUT", "3s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "9999" {
		t.Errorf("Port: got %q", cfg.Port)
	}
	if cfg.GinMode != "release" {
		t.Errorf("unknown GIN_MODE should normalize to release, got %q", cfg.GinMode)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LOG_LEVEL warning should normalize to warn, got %q", cfg.LogLevel)
	}
	if cfg.APIBasePath != "/v2/api" {
		t.Errorf("base path normalization: got %q", cfg.APIBasePath)
	}
	if len(cfg.CORS.AllowedOrigins) != 2 || cfg.CORS.AllowedOrigins[1] != "https://b.example" {
		t.Errorf("CORS origins: got %v", cfg.CORS.AllowedOrigins)
	}
	if cfg.ReadTimeout != 3*time.Second {
		t.Errorf("ReadTimeout: got %v", cfg.ReadTimeout)
	}
}

func TestLoadValidation(t *testing.T) {
	t.Run("bad log level", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "verbose")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for bad LOG_LEVEL")
		}
	})
	t.Run("postgres needs url", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "postgres")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for missing DATABASE_URL")
		}
	})
	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "oracle")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for unknown DB_DRIVER")
		}
	})
	t.Run("sampler ratio range", func(t *testing.T) {
		t.Setenv("OTEL_TRACES_SAMPLER_ARG", "1.5")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for sampler ratio > 1")
		}
	})
}

func TestNormalizeBasePath(t *testing.T) {
	cases := map[string]string{
		"":        "/",
		"/":       "/",
		"api":     "/api",
		"/api":    "/api",
		"/api/":   "/api",
		"v1/api/": "/v1/api",
	}
	for in, want := range cases {
		if got := normalizeBasePath(in); got != want {
			t.Errorf("normalizeBasePath(%q) = %q, want %q", in, got, want)
		}
	}
}
