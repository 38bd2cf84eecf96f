package rayid_test

import (
	"net/http/httptest"
	"testing"

	"backlog-manager/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRayID(t *testing.T) {
	app := fiber.New()
	app.Use(rayid.New())

	var seen string
	app.Get("/", func(c *fiber.Ctx) error {
		seen, _ = c.Locals("ray_id").(string)
		return c.SendString("ok")
	})

	t.Run("GeneratesID", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)

		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, resp.Header.Get(rayid.HeaderName))
	})

	t.Run("HonorsIncomingID", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(rayid.HeaderName, "upstream-id")

		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, "upstream-id", seen)
		assert.Equal(t, "upstream-id", resp.Header.Get(rayid.HeaderName))
	})
}
