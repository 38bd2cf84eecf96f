package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"backlog-manager/core/config"
	"backlog-manager/core/database"
	"backlog-manager/core/logger"
	"backlog-manager/core/storage"
	"backlog-manager/feature/backlog"
	"backlog-manager/feature/backlog/models"
	"backlog-manager/feature/backlog/steam"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the sync command
	isolateFailures bool
	legacyDates     bool
)

// syncCmd runs a single sync pass and prints the outcome.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Run one Steam sync pass over all eligible users",
	Long: `Fetches every tracked user's Steam library and reconciles it into
the local catalog and ledger.

By default the pass aborts on the first user failure (legacy behavior).

Examples:
  # Abort on first failure
  backlog-manager sync

  # Isolate per-user failures and report each outcome
  backlog-manager sync --isolate

  # Re-stamp start/acquisition dates on every pass (legacy date policy)
  backlog-manager sync --legacy-dates`,
	RunE: runSyncPass,
}

func init() {
	syncCmd.Flags().BoolVar(&isolateFailures, "isolate", false, "Continue past per-user failures and report each outcome")
	syncCmd.Flags().BoolVar(&legacyDates, "legacy-dates", false, "Re-stamp start/acquisition dates on every pass")

	RootCmd.AddCommand(syncCmd)
}

func runSyncPass(cmd *cobra.Command, args []string) error {
	// Cancel between users on Ctrl-C instead of killing mid-write
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Flags override the configured policies
	if isolateFailures {
		cfg.Sync.AbortOnFirstFailure = false
	}
	if legacyDates {
		cfg.Sync.PreserveDates = false
	}

	// Initialize logger
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	l.Info("Starting sync pass",
		zap.Bool("abort_on_first_failure", cfg.Sync.AbortOnFirstFailure),
		zap.Bool("preserve_dates", cfg.Sync.PreserveDates),
	)

	// Connect to database
	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.Migrate(db, &models.User{}, &models.Game{}, &models.UserGame{}); err != nil {
		return err
	}
	if ok, err := database.HasUniqueIndex(db, "games", "steam_id"); err != nil {
		return fmt.Errorf("failed to inspect schema: %w", err)
	} else if !ok {
		return fmt.Errorf("games.steam_id is missing its unique index")
	}

	// Optional artwork mirror
	var mirror *backlog.ArtworkMirror
	if cfg.Sync.MirrorArtwork {
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to connect to storage: %w", err)
		}
		mirror = backlog.NewArtworkMirror(client, cfg.Storage.Bucket, l)
		if err := mirror.EnsureBucket(ctx); err != nil {
			return fmt.Errorf("failed to prepare artwork bucket: %w", err)
		}
	}

	syncer := backlog.NewSyncer(db, steam.NewClient(cfg.Steam), l, cfg.Sync, mirror)

	report, err := syncer.Run(ctx)
	if err != nil {
		return fmt.Errorf("sync pass failed: %w", err)
	}

	printSyncReport(l, report)
	return nil
}

// printSyncReport prints a formatted pass report using the logger.
func printSyncReport(l *zap.Logger, report *backlog.Report) {
	l.Info("Sync report",
		zap.Int("users", len(report.Users)),
		zap.Int("succeeded", report.Succeeded),
		zap.Int("failed", report.Failed),
	)

	for _, user := range report.Users {
		if user.Error != "" {
			l.Warn("User failed",
				zap.Uint("user_id", user.UserID),
				zap.String("steam_id", user.SteamID),
				zap.String("reason", user.Error),
			)
			continue
		}
		l.Info("User synced",
			zap.Uint("user_id", user.UserID),
			zap.String("steam_id", user.SteamID),
			zap.Int("games", user.Games),
		)
	}
}
