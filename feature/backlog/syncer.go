package backlog

import (
	"context"
	"fmt"

	"backlog-manager/feature/backlog/errs"
	"backlog-manager/feature/backlog/models"
	"backlog-manager/feature/backlog/steam"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UserResult is the outcome of one user's sync within a pass.
type UserResult struct {
	// UserID is the local user id.
	UserID uint `json:"user_id"`
	// SteamID is the user's external id at the remote service.
	SteamID string `json:"steam_id"`
	// Games is the number of owned games reconciled.
	Games int `json:"games"`
	// Error is the failure reason, empty on success.
	Error string `json:"error,omitempty"`
}

// Report aggregates per-user outcomes of a pass. In abort mode a failed
// pass propagates its first error instead of a report.
type Report struct {
	// Users lists per-user outcomes in processing order.
	Users []UserResult `json:"users"`
	// Succeeded counts users whose sync completed.
	Succeeded int `json:"succeeded"`
	// Failed counts users whose sync failed.
	Failed int `json:"failed"`
}

// Syncer drives one fetch-and-reconcile pass over all eligible users.
// A pass is a sequential, single-threaded loop; the only shared mutable
// resource is the database, and every write is an idempotent per-row
// upsert, so an interrupted pass converges on re-run.
type Syncer struct {
	db      *gorm.DB
	client  steam.Client
	catalog *Catalog
	ledger  *Ledger
	mirror  *ArtworkMirror
	logger  *zap.Logger
	abort   bool
}

// NewSyncer creates a syncer. mirror may be nil to disable artwork
// mirroring.
func NewSyncer(db *gorm.DB, client steam.Client, logger *zap.Logger, cfg Config, mirror *ArtworkMirror) *Syncer {
	return &Syncer{
		db:      db,
		client:  client,
		catalog: NewCatalog(db),
		ledger:  NewLedger(db, cfg.PreserveDates),
		mirror:  mirror,
		logger:  logger,
		abort:   cfg.AbortOnFirstFailure,
	}
}

// Run executes one sync pass. Users without a Steam id are skipped with no
// network call. Cancellation is honored between users, never mid-user, so
// committed writes stay consistent per row.
//
// In abort mode the first user failure stops the pass and propagates;
// earlier users' writes remain. In isolate mode every user is attempted
// and the report lists each outcome.
func (s *Syncer) Run(ctx context.Context) (*Report, error) {
	var users []models.User
	err := s.db.WithContext(ctx).
		Where("steam_id IS NOT NULL AND steam_id <> ''").
		Order("id").
		Find(&users).Error
	if err != nil {
		return nil, errs.New(errs.KindStorage, errs.StageResolve, fmt.Errorf("failed to load users: %w", err))
	}

	s.logger.Info("Starting sync pass", zap.Int("eligible_users", len(users)))

	report := &Report{}
	for _, user := range users {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		steamID := *user.SteamID
		result := UserResult{UserID: user.ID, SteamID: steamID}

		count, err := s.syncUser(ctx, user.ID, steamID)
		result.Games = count
		if err != nil {
			err = errs.WithUser(err, user.ID)
			if s.abort {
				return nil, err
			}
			result.Error = err.Error()
			report.Failed++
			s.logger.Warn("User sync failed", zap.Uint("user_id", user.ID), zap.Error(err))
		} else {
			report.Succeeded++
		}

		report.Users = append(report.Users, result)
	}

	s.logger.Info("Sync pass finished",
		zap.Int("succeeded", report.Succeeded),
		zap.Int("failed", report.Failed),
	)

	return report, nil
}

// syncUser fetches one user's library and reconciles every returned game
// into the catalog and ledger. It returns the number of games processed.
func (s *Syncer) syncUser(ctx context.Context, userID uint, steamID string) (int, error) {
	games, err := s.client.GetOwnedGames(ctx, steamID)
	if err != nil {
		return 0, err
	}

	l := s.logger.With(zap.Uint("user_id", userID), zap.String("steam_id", steamID))
	l.Debug("Fetched owned games", zap.Int("count", len(games)))

	for _, game := range games {
		gameID, err := s.catalog.ResolveOrCreate(ctx, game.AppID, game.Name)
		if err != nil {
			return 0, err
		}

		if err := s.ledger.UpsertPlayState(ctx, userID, gameID, game.PlaytimeForever); err != nil {
			return 0, err
		}

		// Artwork mirroring is best-effort: a failed copy never fails
		// the pass.
		if s.mirror != nil {
			if err := s.mirror.Mirror(ctx, game); err != nil {
				l.Warn("Artwork mirror failed",
					zap.Int64("appid", game.AppID),
					zap.Error(err),
				)
			}
		}
	}

	return len(games), nil
}
