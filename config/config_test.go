package config

import (
	"reflect"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.HTTP.Address != "localhost:8082" {
		t.Fatalf("unexpected default address %q", cfg.HTTP.Address)
	}
	if cfg.HTTP.Path != "/api" {
		t.Fatalf("unexpected default path %q", cfg.HTTP.Path)
	}
	if cfg.HTTP.Version != "1.0" {
		t.Fatalf("unexpected default version %q", cfg.HTTP.Version)
	}
	if cfg.HTTP.CORS.Enabled {
		t.Fatal("CORS must be disabled by default")
	}
	if cfg.DB.Path != "postgresql://localhost:5432/postgres" {
		t.Fatalf("unexpected default db path %q", cfg.DB.Path)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Fatalf("unexpected log defaults %q/%q", cfg.Log.Level, cfg.Log.Format)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("HTTP_ADDRESS", "0.0.0.0:9090")
	t.Setenv("API_PATH", "/query")
	t.Setenv("API_VERSION", "2.1")
	t.Setenv("DB_PATH", "postgresql://db.internal:5432/metrics")
	t.Setenv("CORS_ENABLED", "true")
	t.Setenv("CORS_ORIGINS", "https://a.example.com;https://b.example.com")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.HTTP.Address != "0.0.0.0:9090" {
		t.Fatalf("unexpected address %q", cfg.HTTP.Address)
	}
	if cfg.HTTP.Path != "/query" || cfg.HTTP.Version != "2.1" {
		t.Fatalf("unexpected prefix parts %q/%q", cfg.HTTP.Path, cfg.HTTP.Version)
	}
	if cfg.DB.Path != "postgresql://db.internal:5432/metrics" {
		t.Fatalf("unexpected db path %q", cfg.DB.Path)
	}
	if !cfg.HTTP.CORS.Enabled {
		t.Fatal("expected CORS to be enabled")
	}
	wantOrigins := []string{"https://a.example.com", "https://b.example.com"}
	if !reflect.DeepEqual(cfg.HTTP.CORS.Origins, wantOrigins) {
		t.Fatalf("unexpected origins %v", cfg.HTTP.CORS.Origins)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Fatalf("unexpected log config %q/%q", cfg.Log.Level, cfg.Log.Format)
	}
}
