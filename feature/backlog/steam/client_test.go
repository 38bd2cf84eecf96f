package steam_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"backlog-manager/feature/backlog/errs"
	"backlog-manager/feature/backlog/steam"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ownedGamesBody = `{
	"response": {
		"game_count": 2,
		"games": [
			{
				"appid": 10,
				"name": "Title-X",
				"img_icon_url": "aabbcc",
				"img_logo_url": "ddeeff",
				"has_community_visible_stats": true,
				"playtime_forever": 120,
				"playtime_2weeks": 30
			},
			{
				"appid": 20,
				"name": "Title-Y",
				"img_icon_url": "",
				"img_logo_url": "",
				"playtime_forever": 0
			}
		]
	}
}`

func TestGetOwnedGames(t *testing.T) {
	t.Run("ParsesResponse", func(t *testing.T) {
		var gotPath, gotQuery string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotQuery = r.URL.RawQuery
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(ownedGamesBody))
		}))
		defer srv.Close()

		client := steam.NewClient(steam.Config{APIKey: "KEY", BaseURL: srv.URL})
		games, err := client.GetOwnedGames(context.Background(), "76561198000000000")
		require.NoError(t, err)

		assert.Equal(t, "/IPlayerService/GetOwnedGames/v0001/", gotPath)
		assert.Contains(t, gotQuery, "key=KEY")
		assert.Contains(t, gotQuery, "steamid=76561198000000000")
		assert.Contains(t, gotQuery, "include_appinfo=1")
		assert.Contains(t, gotQuery, "format=json")

		require.Len(t, games, 2)
		assert.Equal(t, int64(10), games[0].AppID)
		assert.Equal(t, "Title-X", games[0].Name)
		assert.Equal(t, int64(120), games[0].PlaytimeForever)
		assert.Equal(t, "aabbcc", games[0].ImgIconURL)
		require.NotNil(t, games[0].Playtime2Weeks)
		assert.Equal(t, int64(30), *games[0].Playtime2Weeks)

		assert.Equal(t, int64(0), games[1].PlaytimeForever)
		assert.Nil(t, games[1].Playtime2Weeks)
	})

	t.Run("MissingKeyIsConfigError", func(t *testing.T) {
		client := steam.NewClient(steam.Config{BaseURL: "http://localhost:1"})
		games, err := client.GetOwnedGames(context.Background(), "123")
		assert.Nil(t, games)
		assert.True(t, errs.IsKind(err, errs.KindConfig))
	})

	t.Run("ConnectionErrorIsTransport", func(t *testing.T) {
		// Closed server to force a connection failure
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		client := steam.NewClient(steam.Config{APIKey: "KEY", BaseURL: srv.URL})
		_, err := client.GetOwnedGames(context.Background(), "123")
		assert.True(t, errs.IsKind(err, errs.KindTransport))
	})

	t.Run("Non200IsTransport", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "forbidden", http.StatusForbidden)
		}))
		defer srv.Close()

		client := steam.NewClient(steam.Config{APIKey: "KEY", BaseURL: srv.URL})
		_, err := client.GetOwnedGames(context.Background(), "123")
		assert.True(t, errs.IsKind(err, errs.KindTransport))
		assert.Contains(t, err.Error(), "403")
	})

	t.Run("BadJSONIsParse", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html>not json</html>"))
		}))
		defer srv.Close()

		client := steam.NewClient(steam.Config{APIKey: "KEY", BaseURL: srv.URL})
		_, err := client.GetOwnedGames(context.Background(), "123")
		assert.True(t, errs.IsKind(err, errs.KindParse))
	})
}
