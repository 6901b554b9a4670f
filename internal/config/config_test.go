package config

import (
	"os"
	"testing"
	"time"
)

func TestGetEnvWithDefault(t *testing.T) {
	const key = "TEST_KIOSK_PORT"

	_ = os.Unsetenv(key)
	if got := getEnv(key, "5000"); got != "5000" {
		t.Fatalf("getEnv(%q) = %q, want default", key, got)
	}

	t.Setenv(key, "8080")
	if got := getEnv(key, "5000"); got != "8080" {
		t.Fatalf("getEnv(%q) = %q, want env value", key, got)
	}
}

func TestGetIntAndDurationFallBackOnGarbage(t *testing.T) {
	t.Setenv("TEST_KIOSK_MAX", "not-a-number")
	if got := getInt("TEST_KIOSK_MAX", 120); got != 120 {
		t.Fatalf("getInt garbage = %d, want default", got)
	}

	t.Setenv("TEST_KIOSK_REFRESH", "soon")
	if got := getDuration("TEST_KIOSK_REFRESH", 5*time.Minute); got != 5*time.Minute {
		t.Fatalf("getDuration garbage = %s, want default", got)
	}

	t.Setenv("TEST_KIOSK_REFRESH", "90s")
	if got := getDuration("TEST_KIOSK_REFRESH", 5*time.Minute); got != 90*time.Second {
		t.Fatalf("getDuration = %s, want 90s", got)
	}
}

func TestLoadReadsCredentials(t *testing.T) {
	t.Setenv("NEWSAPI_KEY", "na")
	t.Setenv("GNEWS_KEY", "gn")
	t.Setenv("RAPIDAPI_KEY", "rk")
	t.Setenv("RAPIDAPI_HOST", "rh.example.com")
	t.Setenv("KIOSK_DATA_DIR", t.TempDir())

	cfg := Load()
	if cfg.NewsAPIKey != "na" || cfg.GNewsKey != "gn" {
		t.Fatalf("news credentials not loaded: %+v", cfg)
	}
	if cfg.RapidAPIKey != "rk" || cfg.RapidAPIHost != "rh.example.com" {
		t.Fatalf("rapidapi key+host not loaded: %+v", cfg)
	}
	if cfg.CacheFile == "" || cfg.StateFile == "" || cfg.MapFile == "" {
		t.Fatalf("data file paths not derived: %+v", cfg)
	}
}
