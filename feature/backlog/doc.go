// Package backlog implements the game backlog ledger and its sync engine.
//
// The engine reconciles each tracked user's Steam library into a local
// catalog: the Catalog deduplicates games across users and passes (keyed by
// Steam app id, with exact-name fallback for games the remote service does
// not know), and the Ledger idempotently upserts per-(user, game) play
// state derived from observed playtime. The Syncer drives one pass over
// all users with a Steam id, either aborting on the first failure or
// isolating per-user failures into a Report, depending on configuration.
//
// Local-only facts survive syncing: a beat date set by another collaborator
// is never cleared, and under the date-preserving policy a start date is
// written exactly once, on the unplayed to unfinished transition.
//
// The optional ArtworkMirror copies game icons into object storage as a
// best-effort side task of the pass.
package backlog
