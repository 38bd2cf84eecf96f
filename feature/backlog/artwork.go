package backlog

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"backlog-manager/core/storage"
	"backlog-manager/feature/backlog/errs"
	"backlog-manager/feature/backlog/steam"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// defaultMediaBaseURL is where Steam serves app icon images.
const defaultMediaBaseURL = "https://media.steampowered.com"

// ArtworkMirror copies game icon images into object storage so the view
// layer can serve them without hitting Steam's CDN. Objects already
// present are skipped, making the mirror as idempotent as the rest of the
// pass.
type ArtworkMirror struct {
	store        storage.Client
	bucket       string
	logger       *zap.Logger
	httpClient   *http.Client
	mediaBaseURL string
}

// NewArtworkMirror creates a mirror writing into the given bucket.
func NewArtworkMirror(store storage.Client, bucket string, logger *zap.Logger) *ArtworkMirror {
	return &ArtworkMirror{
		store:        store,
		bucket:       bucket,
		logger:       logger,
		httpClient:   &http.Client{Timeout: 15 * time.Second},
		mediaBaseURL: defaultMediaBaseURL,
	}
}

// EnsureBucket creates the artwork bucket if it does not exist yet.
func (m *ArtworkMirror) EnsureBucket(ctx context.Context) error {
	exists, err := m.store.BucketExists(ctx, m.bucket)
	if err != nil {
		return errs.New(errs.KindStorage, errs.StageMirror, fmt.Errorf("failed to check bucket: %w", err))
	}
	if exists {
		return nil
	}
	if err := m.store.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{}); err != nil {
		return errs.New(errs.KindStorage, errs.StageMirror, fmt.Errorf("failed to create bucket: %w", err))
	}
	m.logger.Info("Created artwork bucket", zap.String("bucket", m.bucket))
	return nil
}

// Mirror copies the icon image of one owned game into storage. Games
// without an icon hash are skipped.
func (m *ArtworkMirror) Mirror(ctx context.Context, game steam.OwnedGame) error {
	if game.ImgIconURL == "" {
		return nil
	}

	objectName := fmt.Sprintf("artwork/%d/icon.jpg", game.AppID)

	// Already mirrored on an earlier pass
	if _, err := m.store.StatObject(ctx, m.bucket, objectName, minio.StatObjectOptions{}); err == nil {
		return nil
	}

	imageURL := fmt.Sprintf("%s/steamcommunity/public/images/apps/%d/%s.jpg",
		m.mediaBaseURL, game.AppID, game.ImgIconURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return errs.New(errs.KindTransport, errs.StageMirror, fmt.Errorf("failed to create request: %w", err))
	}

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return errs.New(errs.KindTransport, errs.StageMirror, fmt.Errorf("failed to download icon: %w", err))
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return errs.Newf(errs.KindTransport, errs.StageMirror, "icon download returned %d", resp.StatusCode)
	}

	// Buffer the image so the upload knows its exact size
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return errs.New(errs.KindTransport, errs.StageMirror, fmt.Errorf("failed to read icon: %w", err))
	}

	_, err = m.store.PutObject(ctx, m.bucket, objectName,
		bytes.NewReader(buf.Bytes()), int64(buf.Len()),
		minio.PutObjectOptions{ContentType: "image/jpeg"})
	if err != nil {
		return errs.New(errs.KindStorage, errs.StageMirror, fmt.Errorf("failed to store icon: %w", err))
	}

	m.logger.Debug("Mirrored artwork",
		zap.Int64("appid", game.AppID),
		zap.String("object", objectName),
	)

	return nil
}
