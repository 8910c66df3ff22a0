package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("USE_FAKE_DATA", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.WeatherInterval != 5*time.Minute {
		t.Errorf("WeatherInterval = %s, want 5m", cfg.WeatherInterval)
	}
	if cfg.DisplayInterval != time.Minute {
		t.Errorf("DisplayInterval = %s, want 1m", cfg.DisplayInterval)
	}
	if cfg.UTCOffset != -5*time.Hour {
		t.Errorf("UTCOffset = %s, want -5h", cfg.UTCOffset)
	}
	if cfg.MatrixWidth != 64 || cfg.MatrixHeight != 32 {
		t.Errorf("matrix = %dx%d, want 64x32", cfg.MatrixWidth, cfg.MatrixHeight)
	}
}

func TestLoadRequiresAPIKeyWithoutFakeData(t *testing.T) {
	t.Setenv("USE_FAKE_DATA", "false")
	t.Setenv("OPENWEATHER_API_KEY", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected an error when no API key and fake data disabled")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("USE_FAKE_DATA", "true")
	t.Setenv("WEATHER_UPDATE_INTERVAL", "10m")
	t.Setenv("UTC_OFFSET_HOURS", "2")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.WeatherInterval != 10*time.Minute {
		t.Errorf("WeatherInterval = %s, want 10m", cfg.WeatherInterval)
	}
	if cfg.UTCOffset != 2*time.Hour {
		t.Errorf("UTCOffset = %s, want 2h", cfg.UTCOffset)
	}
}

func TestLoadRejectsBadDuration(t *testing.T) {
	t.Setenv("USE_FAKE_DATA", "true")
	t.Setenv("WEATHER_UPDATE_INTERVAL", "not-a-duration")

	if _, err := Load(); err == nil {
		t.Fatal("expected an error for a malformed interval")
	}
}
