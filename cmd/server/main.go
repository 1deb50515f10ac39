package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/caffeinepub/my-goals-2026/internal/capture"
	"github.com/caffeinepub/my-goals-2026/internal/config"
	"github.com/caffeinepub/my-goals-2026/internal/database"
	"github.com/caffeinepub/my-goals-2026/internal/handlers"
	"github.com/caffeinepub/my-goals-2026/internal/log"
	"github.com/caffeinepub/my-goals-2026/internal/routes"
	"github.com/caffeinepub/my-goals-2026/internal/storage"
	"github.com/caffeinepub/my-goals-2026/internal/summary"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger := log.New(log.Config{Component: "server"})
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	if err := database.Connect(cfg); err != nil {
		logger.Error("database connect failed", "error", err)
		os.Exit(1)
	}
	if err := database.Migrate(); err != nil {
		logger.Error("database migrate failed", "error", err)
		os.Exit(1)
	}

	store := storage.New(database.DB, logger.WithComponent("storage"))

	summarySvc := summary.New(store, handlers.Events, logger.WithComponent("summary"))
	// Baseline the detector before any intent can arrive: already-complete
	// months must not re-fire their celebration after a restart.
	summarySvc.Seed()

	camera := capture.NewRemoteCamera()
	flow := capture.NewFlow(capture.Config{
		CountdownFrom:  cfg.CountdownFrom,
		CountdownTick:  cfg.CountdownTick,
		RetryInterval:  cfg.CaptureRetry,
		CaptureTimeout: cfg.CaptureTimeout,
		StartWindow:    cfg.CameraStartWindow,
		FacingMode:     cfg.FacingMode,
	}, camera, capture.PolaroidCompositor{}, store, handlers.Events, logger.WithComponent("capture"))

	handlers.Setup(store, summarySvc, flow, camera, logger.WithComponent("http"))

	app := fiber.New(fiber.Config{
		AppName:   "my-goals-2026",
		BodyLimit: 10 * 1024 * 1024,
	})
	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(cors.New())
	routes.Setup(app)

	go func() {
		logger.Info("server listening", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	// Release any live camera flow before shutting the listener down.
	flow.Close()
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Error("server shutdown error", "error", err)
	}
}
