package backlog

import (
	"backlog-manager/core/storage"
	"backlog-manager/feature/backlog/steam"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature wires the backlog service into the feature loader.
type Feature struct {
	service *Service
}

// NewFeature assembles the backlog feature. store may be nil when artwork
// mirroring is disabled.
func NewFeature(db *gorm.DB, client steam.Client, store storage.Client, bucket string, logger *zap.Logger, cfg Config) *Feature {
	var mirror *ArtworkMirror
	if cfg.MirrorArtwork && store != nil {
		mirror = NewArtworkMirror(store, bucket, logger)
	}

	syncer := NewSyncer(db, client, logger, cfg, mirror)
	return &Feature{service: NewService(db, syncer, logger)}
}

// Name returns the feature name.
func (f *Feature) Name() string {
	return "backlog"
}

// IsEnabled reports whether the feature should be loaded.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the backlog routes.
func (f *Feature) Load(app fiber.Router) error {
	NewHandler(f.service).RegisterRoutes(app)
	return nil
}

// Service exposes the backlog service for callers outside the HTTP
// surface, such as the periodic sync worker.
func (f *Feature) Service() *Service {
	return f.service
}
