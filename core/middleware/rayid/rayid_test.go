package rayid_test

import (
	"net/http/httptest"
	"testing"

	"roundest/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp() *fiber.App {
	app := fiber.New()
	app.Use(rayid.New())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(rayid.FromCtx(c))
	})
	return app
}

func TestRayID(t *testing.T) {
	t.Run("Generated", func(t *testing.T) {
		resp, err := newApp().Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)

		rid := resp.Header.Get(rayid.HeaderName)
		_, parseErr := uuid.Parse(rid)
		assert.NoError(t, parseErr)
	})

	t.Run("Propagated", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(rayid.HeaderName, "upstream-123")

		resp, err := newApp().Test(req)
		require.NoError(t, err)
		assert.Equal(t, "upstream-123", resp.Header.Get(rayid.HeaderName))
	})
}
