// Package database manages the MySQL connection and schema for the backlog.
//
// It wraps GORM connection setup (DSN construction, pool limits, ping with
// timeout), auto-migration of the domain models, and a small schema
// inspector used to assert invariants the sync engine depends on.
//
// # Schema Invariant
//
// The game catalog requires a unique index on games.steam_id: duplicate
// catalog rows for the same Steam app id are prevented by the database, not
// by an application-level check-then-insert. HasUniqueIndex lets callers
// verify that index exists before running a sync pass.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	err = database.Migrate(db, &models.User{}, &models.Game{}, &models.UserGame{})
//	ok, err := database.HasUniqueIndex(db, "games", "steam_id")
package database
