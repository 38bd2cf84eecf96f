package backlog

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"backlog-manager/feature/backlog/errs"
	"backlog-manager/feature/backlog/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UserLog is a user's backlog as rendered by the log endpoint.
type UserLog struct {
	Username string   `json:"username"`
	Games    []string `json:"games"`
}

// Service bundles the backlog operations exposed over HTTP.
type Service struct {
	db     *gorm.DB
	syncer *Syncer
	logger *zap.Logger
}

// NewService creates a backlog service.
func NewService(db *gorm.DB, syncer *Syncer, logger *zap.Logger) *Service {
	return &Service{db: db, syncer: syncer, logger: logger}
}

// GetUserLog returns the game names tracked for a user, looked up by id or
// by username.
func (s *Service) GetUserLog(ctx context.Context, identifier string) (*UserLog, error) {
	user, err := s.getUserByIDOrName(ctx, identifier)
	if err != nil {
		return nil, err
	}

	var names []string
	err = s.db.WithContext(ctx).
		Table("user_games").
		Joins("JOIN games ON games.id = user_games.game_id").
		Where("user_games.user_id = ?", user.ID).
		Order("games.name").
		Pluck("games.name", &names).Error
	if err != nil {
		return nil, errs.New(errs.KindStorage, errs.StageResolve, fmt.Errorf("failed to load user games: %w", err))
	}

	return &UserLog{Username: user.Username, Games: names}, nil
}

// SignupUser creates a tracked user. steamID may be empty; such users are
// never synced.
func (s *Service) SignupUser(ctx context.Context, username, steamID string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, errs.Newf(errs.KindConfig, errs.StageResolve, "username is required")
	}

	user := models.User{Username: username}
	if steamID = strings.TrimSpace(steamID); steamID != "" {
		user.SteamID = &steamID
	}

	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, errs.New(errs.KindStorage, errs.StageResolve, fmt.Errorf("failed to create user: %w", err))
	}

	s.logger.Info("User signed up",
		zap.Uint("user_id", user.ID),
		zap.String("username", user.Username),
	)

	return &user, nil
}

// RunSync executes one sync pass.
func (s *Service) RunSync(ctx context.Context) (*Report, error) {
	return s.syncer.Run(ctx)
}

func (s *Service) getUserByIDOrName(ctx context.Context, identifier string) (*models.User, error) {
	var user models.User
	q := s.db.WithContext(ctx)

	if id, err := strconv.ParseUint(identifier, 10, 64); err == nil {
		q = q.Where("id = ?", id)
	} else {
		q = q.Where("username = ?", identifier)
	}

	if err := q.First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.Newf(errs.KindNotFound, errs.StageResolve, "user %q not found", identifier)
		}
		return nil, errs.New(errs.KindStorage, errs.StageResolve, fmt.Errorf("failed to load user: %w", err))
	}

	return &user, nil
}
