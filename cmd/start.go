package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"backlog-manager/core/config"
	"backlog-manager/core/database"
	"backlog-manager/core/loader"
	"backlog-manager/core/logger"
	"backlog-manager/core/middleware/auth"
	"backlog-manager/core/middleware/rayid"
	"backlog-manager/core/storage"

	"backlog-manager/feature/backlog"
	"backlog-manager/feature/backlog/models"
	"backlog-manager/feature/backlog/steam"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "backlog-manager/docs/swagger"
)

// @title Backlog Manager API
// @version 1.0
// @description API for tracking a personal game backlog.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the backlog manager server",
	Long:  `Starts the HTTP server and the periodic Steam sync worker.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to Database
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to connect to database", zap.Error(err))
		}
		if err := database.Migrate(db, &models.User{}, &models.Game{}, &models.UserGame{}); err != nil {
			logg.Fatal("Failed to migrate schema", zap.Error(err))
		}

		// The catalog depends on the database rejecting duplicate app
		// ids; refuse to start without that index.
		if ok, err := database.HasUniqueIndex(db, "games", "steam_id"); err != nil {
			logg.Fatal("Failed to inspect schema", zap.Error(err))
		} else if !ok {
			logg.Fatal("games.steam_id is missing its unique index")
		}

		// 4. Initialize Storage (only needed for the artwork mirror)
		var store storage.Client
		if cfg.Sync.MirrorArtwork {
			store, err = storage.NewClient(cfg.Storage)
			if err != nil {
				logg.Fatal("Failed to create storage client", zap.Error(err))
			}
		}

		// 5. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We log our own startup message
		})

		// 6. Initialize Feature Loader
		steamClient := steam.NewClient(cfg.Steam)
		feature := backlog.NewFeature(db, steamClient, store, cfg.Storage.Bucket, logg, cfg.Sync)

		mgr := loader.NewManager()
		mgr.Register(feature)

		// Middleware Registration
		// RayID must be first to trace everything
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 7. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 8. Start periodic sync worker
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go runSyncWorker(ctx, feature.Service(), logg, cfg.Sync.IntervalMinutes)

		// 9. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(cfg.Server.Addr()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 10. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		cancel()
		_ = app.Shutdown()
	},
}

// runSyncWorker performs one pass at boot, then one per interval, until the
// context is cancelled.
func runSyncWorker(ctx context.Context, service *backlog.Service, logg *zap.Logger, intervalMinutes int) {
	if intervalMinutes <= 0 {
		intervalMinutes = 60
	}

	logg.Info("Starting sync worker", zap.Int("interval_minutes", intervalMinutes))

	runOnce := func() {
		report, err := service.RunSync(ctx)
		if err != nil {
			logg.Error("Sync pass failed", zap.Error(err))
			return
		}
		logg.Info("Sync pass completed",
			zap.Int("succeeded", report.Succeeded),
			zap.Int("failed", report.Failed),
		)
	}

	runOnce()

	ticker := time.NewTicker(time.Duration(intervalMinutes) * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			runOnce()
		case <-ctx.Done():
			logg.Info("Sync worker stopped")
			return
		}
	}
}

func init() {
	RootCmd.AddCommand(startCmd)
}
