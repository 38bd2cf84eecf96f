package models

import "time"

// PlayState summarizes a user's progress on a game.
type PlayState string

const (
	// PlayStateUnplayed means no recorded playtime.
	PlayStateUnplayed PlayState = "unplayed"
	// PlayStateUnfinished means the game has been started but not beaten.
	PlayStateUnfinished PlayState = "unfinished"
	// PlayStateBeaten means the game was completed. The sync engine never
	// derives this state; it is set by outside collaborators and must
	// survive sync passes.
	PlayStateBeaten PlayState = "beaten"
)

// PlatformSteam tags ledger records written by the Steam sync engine.
const PlatformSteam = "steam"

// DerivePlayState maps observed total playtime to a play state. Remote
// playtime can only prove a game was started, never that it was beaten.
func DerivePlayState(playtimeMinutes int64) PlayState {
	if playtimeMinutes > 0 {
		return PlayStateUnfinished
	}
	return PlayStateUnplayed
}

// User is a tracked account. Users are created through signup; the sync
// engine only reads them. A user without a SteamID is never synced.
type User struct {
	ID        uint      `gorm:"column:id;primaryKey" json:"id"`
	Username  string    `gorm:"column:username;size:64;uniqueIndex:idx_users_username" json:"username"`
	SteamID   *string   `gorm:"column:steam_id;size:32" json:"steam_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName overrides the table name.
func (User) TableName() string {
	return "users"
}

// Game is a global catalog entry, not owned by any single user. At most
// one row exists per distinct non-null SteamID; the unique index is the
// enforcement point, not an application-level check.
type Game struct {
	ID      uint   `gorm:"column:id;primaryKey" json:"id"`
	Name    string `gorm:"column:name;size:255" json:"name"`
	SteamID *int64 `gorm:"column:steam_id;uniqueIndex:idx_games_steam_id" json:"steam_id,omitempty"`
}

// TableName overrides the table name.
func (Game) TableName() string {
	return "games"
}

// UserGame is the per-(user, game) play-state record. Dates are stored as
// epoch seconds. BeatDate is written by outside collaborators only; the
// sync engine must never clear it.
type UserGame struct {
	ID              uint      `gorm:"column:id;primaryKey" json:"id"`
	UserID          uint      `gorm:"column:user_id;uniqueIndex:idx_user_games_user_game" json:"user_id"`
	GameID          uint      `gorm:"column:game_id;uniqueIndex:idx_user_games_user_game" json:"game_id"`
	PlayState       PlayState `gorm:"column:play_state;type:varchar(16)" json:"play_state"`
	Platform        string    `gorm:"column:platform;size:16" json:"platform"`
	AcquisitionDate int64     `gorm:"column:acquisition_date" json:"acquisition_date"`
	StartDate       *int64    `gorm:"column:start_date" json:"start_date,omitempty"`
	BeatDate        *int64    `gorm:"column:beat_date" json:"beat_date,omitempty"`
}

// TableName overrides the table name.
func (UserGame) TableName() string {
	return "user_games"
}
