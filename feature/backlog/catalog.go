package backlog

import (
	"context"
	"errors"
	"fmt"

	"backlog-manager/feature/backlog/errs"
	"backlog-manager/feature/backlog/models"

	"gorm.io/gorm"
)

// GameKey identifies a catalog entry either by Steam app id or, for games
// the remote service does not know, by exact name. Name matching is
// byte-exact: differently cased or spaced names are distinct games.
type GameKey struct {
	appID *int64
	name  string
}

// ByAppID keys a lookup on the Steam app id.
func ByAppID(appID int64) GameKey {
	return GameKey{appID: &appID}
}

// ByName keys a lookup on the exact game name.
func ByName(name string) GameKey {
	return GameKey{name: name}
}

// Catalog is the global, cross-user table of known games. Uniqueness per
// Steam app id is enforced by the database's unique index on
// games.steam_id, so concurrent create-on-miss cannot produce duplicate
// rows.
type Catalog struct {
	db *gorm.DB
}

// NewCatalog creates a catalog over the given database.
func NewCatalog(db *gorm.DB) *Catalog {
	return &Catalog{db: db}
}

// Resolve looks up a catalog entry by key. A miss is reported as a
// not-found kind error, the expected negative result of the lookup step.
func (c *Catalog) Resolve(ctx context.Context, key GameKey) (*models.Game, error) {
	var game models.Game
	q := c.db.WithContext(ctx)
	if key.appID != nil {
		q = q.Where("steam_id = ?", *key.appID)
	} else {
		// BINARY forces a byte-exact match; MySQL's default collation
		// would otherwise fold case
		q = q.Where("steam_id IS NULL AND BINARY name = ?", key.name)
	}

	if err := q.First(&game).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.Newf(errs.KindNotFound, errs.StageResolve, "game not in catalog")
		}
		return nil, errs.New(errs.KindStorage, errs.StageResolve, fmt.Errorf("catalog lookup failed: %w", err))
	}

	return &game, nil
}

// ResolveOrCreate returns the catalog id for the given app id, creating the
// entry on first observation. On a hit the stored name is kept as-is; the
// remote name is informational only. The not-found signal of the lookup
// step never escapes this method.
func (c *Catalog) ResolveOrCreate(ctx context.Context, appID int64, name string) (uint, error) {
	game, err := c.Resolve(ctx, ByAppID(appID))
	if err == nil {
		return game.ID, nil
	}
	if !errs.IsKind(err, errs.KindNotFound) {
		return 0, err
	}

	created := models.Game{Name: name, SteamID: &appID}
	if createErr := c.db.WithContext(ctx).Create(&created).Error; createErr != nil {
		// A concurrent pass may have created the row between our lookup
		// and insert; the unique index rejects the duplicate, so resolve
		// again before reporting failure.
		game, retryErr := c.Resolve(ctx, ByAppID(appID))
		if retryErr == nil {
			return game.ID, nil
		}
		return 0, errs.New(errs.KindStorage, errs.StageResolve, fmt.Errorf("failed to insert game %d: %w", appID, createErr))
	}

	return created.ID, nil
}
