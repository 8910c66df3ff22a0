package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/openmatrix/ledweather/internal/logger"
)

// AppConfig is the immutable process configuration, fixed at startup and
// passed into constructors.
type AppConfig struct {
	OpenWeatherAPIKey string
	Latitude          float64
	Longitude         float64

	// WeatherInterval controls the fetch cadence, DisplayInterval the redraw
	// cadence, TickInterval the scheduling granularity.
	WeatherInterval time.Duration
	DisplayInterval time.Duration
	TickInterval    time.Duration

	// UTCOffset is applied to the wall clock for the on-panel time.
	UTCOffset time.Duration

	MatrixWidth  int
	MatrixHeight int

	// UseFakeData selects the canned fixture provider instead of the network.
	UseFakeData bool

	// History store retention.
	StoreMaxHistory int
	StoreMaxAge     time.Duration

	// Optional MQTT telemetry; disabled when Broker is empty.
	MQTTBroker   string
	MQTTClientID string
	MQTTTopic    string

	Port string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		logger.Info("config: no .env file found: %v", err)
	}

	cfg := &AppConfig{}

	cfg.OpenWeatherAPIKey = os.Getenv("OPENWEATHER_API_KEY")

	var err error
	if cfg.Latitude, err = getenvFloat("WEATHER_LAT", 37.2135); err != nil {
		return nil, err
	}
	if cfg.Longitude, err = getenvFloat("WEATHER_LON", -80.0374); err != nil {
		return nil, err
	}

	if cfg.WeatherInterval, err = getenvDuration("WEATHER_UPDATE_INTERVAL", "5m"); err != nil {
		return nil, err
	}
	if cfg.DisplayInterval, err = getenvDuration("DISPLAY_UPDATE_INTERVAL", "1m"); err != nil {
		return nil, err
	}
	if cfg.TickInterval, err = getenvDuration("TICK_INTERVAL", "1s"); err != nil {
		return nil, err
	}

	offsetHours := getenvInt("UTC_OFFSET_HOURS", -5)
	cfg.UTCOffset = time.Duration(offsetHours) * time.Hour

	cfg.MatrixWidth = getenvInt("MATRIX_WIDTH", 64)
	cfg.MatrixHeight = getenvInt("MATRIX_HEIGHT", 32)

	cfg.UseFakeData = getenvBool("USE_FAKE_DATA", false)

	cfg.StoreMaxHistory = getenvInt("STORE_MAX_HISTORY", 96)
	if cfg.StoreMaxAge, err = getenvDuration("STORE_MAX_AGE", "24h"); err != nil {
		return nil, err
	}

	cfg.MQTTBroker = os.Getenv("MQTT_BROKER")
	cfg.MQTTClientID = getenvDefault("MQTT_CLIENT_ID", "ledweather")
	cfg.MQTTTopic = getenvDefault("MQTT_TOPIC", "ledweather/reading")

	cfg.Port = getenvDefault("PORT", "8080")

	if !cfg.UseFakeData && cfg.OpenWeatherAPIKey == "" {
		return nil, fmt.Errorf("OPENWEATHER_API_KEY is required unless USE_FAKE_DATA is set")
	}

	// A redraw cadence slower than the fetch cadence means the panel shows
	// stale or "Loading" state longer than necessary. Documented assumption,
	// not enforced.
	if cfg.DisplayInterval > cfg.WeatherInterval {
		logger.Warn("config: DISPLAY_UPDATE_INTERVAL (%s) exceeds WEATHER_UPDATE_INTERVAL (%s)",
			cfg.DisplayInterval, cfg.WeatherInterval)
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

func getenvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getenvFloat(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}

func getenvDuration(key, def string) (time.Duration, error) {
	v := getenvDefault(key, def)
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
