package backlog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"backlog-manager/feature/backlog/errs"
	"backlog-manager/feature/backlog/models"

	"gorm.io/gorm"
)

// Ledger is the per-(user, game) play-state table. Upserts are idempotent
// per key: replaying a pass over unchanged remote data leaves row counts
// and values untouched (under the date-preserving policy).
type Ledger struct {
	db            *gorm.DB
	preserveDates bool
	now           func() time.Time
}

// NewLedger creates a ledger over the given database. preserveDates picks
// the date policy described on Config.PreserveDates.
func NewLedger(db *gorm.DB, preserveDates bool) *Ledger {
	return &Ledger{db: db, preserveDates: preserveDates, now: time.Now}
}

// UpsertPlayState derives the play state from observed playtime and
// inserts or updates the record for (userID, gameID). Only the columns the
// sync engine owns are written: play_state, platform, start_date,
// acquisition_date. BeatDate belongs to outside collaborators and is never
// touched.
func (l *Ledger) UpsertPlayState(ctx context.Context, userID, gameID uint, playtimeMinutes int64) error {
	state := models.DerivePlayState(playtimeMinutes)
	now := l.now().Unix()

	var existing models.UserGame
	err := l.db.WithContext(ctx).
		Where("user_id = ? AND game_id = ?", userID, gameID).
		First(&existing).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		record := models.UserGame{
			UserID:          userID,
			GameID:          gameID,
			PlayState:       state,
			Platform:        models.PlatformSteam,
			AcquisitionDate: now,
		}
		if state == models.PlayStateUnfinished {
			record.StartDate = &now
		}
		if err := l.db.WithContext(ctx).Create(&record).Error; err != nil {
			return errs.New(errs.KindStorage, errs.StageUpsert, fmt.Errorf("failed to insert user game: %w", err))
		}
		return nil
	}
	if err != nil {
		return errs.New(errs.KindStorage, errs.StageUpsert, fmt.Errorf("failed to load user game: %w", err))
	}

	updates := map[string]any{
		"play_state": state,
		"platform":   models.PlatformSteam,
	}

	if l.preserveDates {
		// Start date is written once, on the unplayed to unfinished
		// transition, and survives later passes even if playtime drops
		// back to zero. Acquisition date was stamped at insert.
		if state == models.PlayStateUnfinished && existing.StartDate == nil {
			updates["start_date"] = now
		}
	} else {
		// Legacy policy: both dates track the latest pass.
		updates["acquisition_date"] = now
		if state == models.PlayStateUnfinished {
			updates["start_date"] = now
		} else {
			updates["start_date"] = nil
		}
	}

	err = l.db.WithContext(ctx).
		Model(&models.UserGame{}).
		Where("id = ?", existing.ID).
		Updates(updates).Error
	if err != nil {
		return errs.New(errs.KindStorage, errs.StageUpsert, fmt.Errorf("failed to update user game: %w", err))
	}

	return nil
}
