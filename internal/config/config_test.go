package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		_ = os.Unsetenv("STAGE1_HTTP_PORT")
		_ = os.Unsetenv("STAGE1_ENV")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.App.Environment != "development" {
			t.Errorf("Expected default environment development, got %s", cfg.App.Environment)
		}
		if cfg.App.ServiceName != "stage1-api" {
			t.Errorf("Expected default service name stage1-api, got %s", cfg.App.ServiceName)
		}
		if cfg.HTTP.Port != 8000 {
			t.Errorf("Expected default port 8000, got %d", cfg.HTTP.Port)
		}
		if cfg.HTTP.ShutdownTimeout != 25*time.Second {
			t.Errorf("Expected default shutdown timeout 25s, got %s", cfg.HTTP.ShutdownTimeout)
		}
	})

	t.Run("Env Overrides", func(t *testing.T) {
		t.Setenv("STAGE1_ENV", "production")
		t.Setenv("STAGE1_HTTP_PORT", "9090")
		t.Setenv("STAGE1_HTTP_READ_TIMEOUT", "2s")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.App.Environment != "production" {
			t.Errorf("Expected environment production, got %s", cfg.App.Environment)
		}
		if cfg.HTTP.Port != 9090 {
			t.Errorf("Expected port 9090, got %d", cfg.HTTP.Port)
		}
		if cfg.HTTP.ReadTimeout != 2*time.Second {
			t.Errorf("Expected read timeout 2s, got %s", cfg.HTTP.ReadTimeout)
		}
	})

	t.Run("Invalid Value", func(t *testing.T) {
		t.Setenv("STAGE1_HTTP_PORT", "not-a-port")

		if _, err := Load(); err == nil {
			t.Fatal("expected error for invalid port")
		}
	})
}
