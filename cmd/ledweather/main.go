package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "github.com/openmatrix/ledweather/internal/api/http"
	"github.com/openmatrix/ledweather/internal/config"
	"github.com/openmatrix/ledweather/internal/display"
	"github.com/openmatrix/ledweather/internal/logger"
	"github.com/openmatrix/ledweather/internal/mqtt"
	"github.com/openmatrix/ledweather/internal/render"
	"github.com/openmatrix/ledweather/internal/scheduler"
	"github.com/openmatrix/ledweather/internal/store"
	"github.com/openmatrix/ledweather/internal/weather"
	"github.com/openmatrix/ledweather/internal/weather/providers"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config: %v", err)
		os.Exit(1)
	}

	// Weather source: canned fixture in test mode, OpenWeather otherwise.
	var provider weather.Provider
	if cfg.UseFakeData {
		logger.Info("using fake weather data")
		provider = providers.NewFakeProvider()
	} else {
		httpClient := &http.Client{Timeout: 30 * time.Second}
		provider = providers.NewOpenWeatherProvider(httpClient, cfg.OpenWeatherAPIKey, cfg.Latitude, cfg.Longitude)
	}

	// Panel surface and composer.
	geo := render.DefaultGeometry()
	geo.Width = cfg.MatrixWidth
	geo.Height = cfg.MatrixHeight
	fb := display.NewFramebuffer(geo.Width, geo.Height)
	composer := render.NewComposer(geo)

	clock := weather.SystemClock{Offset: cfg.UTCOffset}

	// Reading history with configured retention.
	memStore := store.NewMemoryStore(cfg.StoreMaxHistory, cfg.StoreMaxAge)

	// Control loop: the only owner of the current reading.
	loop := scheduler.NewLoop(
		scheduler.New(cfg.WeatherInterval, cfg.DisplayInterval),
		provider,
		clock,
		composer,
		fb,
		cfg.TickInterval,
	)

	// Optional MQTT telemetry.
	var publisher *mqtt.Publisher
	if cfg.MQTTBroker != "" {
		publisher, err = mqtt.NewPublisher(mqtt.Config{
			Broker:   cfg.MQTTBroker,
			ClientID: cfg.MQTTClientID,
			Topic:    cfg.MQTTTopic,
		})
		if err != nil {
			logger.Error("failed to connect MQTT publisher: %v", err)
			os.Exit(1)
		}
		defer publisher.Close()
	}

	loop.OnReading = func(r weather.Reading) {
		memStore.Save(r)
		if publisher != nil {
			publisher.Publish(r)
		}
	}

	// Periodic history pruning.
	cron := gocron.NewScheduler(time.UTC)
	if _, err := cron.Every(1).Hour().Do(func() {
		if dropped := memStore.Prune(); dropped > 0 {
			logger.Debug("store: pruned %d expired readings", dropped)
		}
	}); err != nil {
		logger.Error("failed to schedule store pruning: %v", err)
		os.Exit(1)
	}
	cron.StartAsync()
	defer cron.Stop()

	// Status API.
	app := fiber.New(fiber.Config{
		AppName:               "ledweather",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})
	app.Use(fiberlogger.New())
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "ledweather",
		})
	})
	httpapi.RegisterRoutes(app, memStore, fb)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			logger.Error("fiber server stopped: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The control loop blocks until a termination signal arrives.
	loop.Run(ctx)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Error("error during shutdown: %v", err)
	}
}
