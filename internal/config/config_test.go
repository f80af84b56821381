package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.AppEnv != EnvDev {
		t.Fatalf("app env = %q", cfg.AppEnv)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("http addr = %q", cfg.HTTPAddr)
	}
	if cfg.VLRBaseURL != "https://www.vlr.gg" {
		t.Fatalf("base url = %q", cfg.VLRBaseURL)
	}
	if cfg.VLRMinGap != time.Second {
		t.Fatalf("min gap = %v", cfg.VLRMinGap)
	}
	if cfg.DetailLimit != 0 {
		t.Fatalf("detail limit = %d", cfg.DetailLimit)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("VLR_BASE_URL", "http://localhost:9999/")
	t.Setenv("VLR_MIN_GAP", "2500ms")
	t.Setenv("DETAIL_LIMIT", "5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.AppEnv != EnvProd {
		t.Fatalf("app env = %q", cfg.AppEnv)
	}
	if cfg.VLRBaseURL != "http://localhost:9999" {
		t.Fatalf("base url = %q, want trailing slash stripped", cfg.VLRBaseURL)
	}
	if cfg.VLRMinGap != 2500*time.Millisecond {
		t.Fatalf("min gap = %v", cfg.VLRMinGap)
	}
	if cfg.DetailLimit != 5 {
		t.Fatalf("detail limit = %d", cfg.DetailLimit)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"APP_ENV":      "production",
		"VLR_MIN_GAP":  "-1s",
		"DETAIL_LIMIT": "-2",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			if _, err := Load(); err == nil {
				t.Fatalf("Load() accepted %s=%q", key, value)
			}
		})
	}
}
