package steam

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"backlog-manager/feature/backlog/errs"
)

// OwnedGame is one entry of the GetOwnedGames response. Only AppID, Name
// and PlaytimeForever drive the sync engine; the icon hash additionally
// feeds the artwork mirror and the remaining fields are passed through
// untouched.
type OwnedGame struct {
	AppID                    int64  `json:"appid"`
	Name                     string `json:"name"`
	ImgIconURL               string `json:"img_icon_url"`
	ImgLogoURL               string `json:"img_logo_url"`
	HasCommunityVisibleStats *bool  `json:"has_community_visible_stats,omitempty"`
	PlaytimeForever          int64  `json:"playtime_forever"`
	Playtime2Weeks           *int64 `json:"playtime_2weeks,omitempty"`
}

type ownedGamesResponse struct {
	Response struct {
		GameCount int64       `json:"game_count"`
		Games     []OwnedGame `json:"games"`
	} `json:"response"`
}

// Client fetches a user's owned games from the remote library service.
type Client interface {
	// GetOwnedGames performs one live request for the given Steam id.
	// No caching, no pagination.
	GetOwnedGames(ctx context.Context, steamID string) ([]OwnedGame, error)
}

// HTTPClient is the Steam Web API implementation of Client. The underlying
// http.Client is shared across requests and carries an explicit timeout so
// one unresponsive call cannot stall a pass indefinitely.
type HTTPClient struct {
	cfg        Config
	httpClient *http.Client
}

// NewClient creates a Steam Web API client from the configuration.
func NewClient(cfg Config) *HTTPClient {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 15
	}
	return &HTTPClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(timeout) * time.Second,
		},
	}
}

// GetOwnedGames calls IPlayerService/GetOwnedGames with appinfo included.
func (c *HTTPClient) GetOwnedGames(ctx context.Context, steamID string) ([]OwnedGame, error) {
	if c.cfg.APIKey == "" {
		return nil, errs.Newf(errs.KindConfig, errs.StageFetch, "steam api key is not configured")
	}

	endpoint := fmt.Sprintf(
		"%s/IPlayerService/GetOwnedGames/v0001/?key=%s&steamid=%s&include_appinfo=1&format=json",
		strings.TrimSuffix(c.cfg.BaseURL, "/"),
		url.QueryEscape(c.cfg.APIKey),
		url.QueryEscape(steamID),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errs.New(errs.KindTransport, errs.StageFetch, fmt.Errorf("failed to create request: %w", err))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errs.New(errs.KindTransport, errs.StageFetch, fmt.Errorf("request to steam failed: %w", err))
	}
	defer func() {
		// Drain and close to keep the connection reusable
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, errs.Newf(errs.KindTransport, errs.StageFetch,
			"steam returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload ownedGamesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errs.New(errs.KindParse, errs.StageFetch, fmt.Errorf("failed to decode steam response: %w", err))
	}

	return payload.Response.Games, nil
}
