package loader_test

import (
	"errors"
	"net/http/httptest"
	"testing"

	"roundest/core/loader"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFeature struct {
	name    string
	enabled bool
	err     error
}

func (s stubFeature) Name() string    { return s.name }
func (s stubFeature) IsEnabled() bool { return s.enabled }
func (s stubFeature) Load(app fiber.Router) error {
	if s.err != nil {
		return s.err
	}
	app.Get("/"+s.name, func(c *fiber.Ctx) error { return c.SendString(s.name) })
	return nil
}

func TestManager_LoadAll(t *testing.T) {
	app := fiber.New()
	mgr := loader.NewManager()
	mgr.Register(stubFeature{name: "ranking", enabled: true})
	mgr.Register(stubFeature{name: "disabled", enabled: false})

	require.NoError(t, mgr.LoadAll(app))
	assert.Equal(t, []string{"ranking"}, mgr.Loaded())

	resp, err := app.Test(httptest.NewRequest("GET", "/ranking", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/disabled", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestManager_LoadErrors(t *testing.T) {
	t.Run("Duplicate", func(t *testing.T) {
		mgr := loader.NewManager()
		mgr.Register(stubFeature{name: "a", enabled: true})
		mgr.Register(stubFeature{name: "a", enabled: true})
		assert.EqualError(t, mgr.LoadAll(fiber.New()), `feature "a" registered twice`)
	})

	t.Run("LoadFails", func(t *testing.T) {
		mgr := loader.NewManager()
		mgr.Register(stubFeature{name: "b", enabled: true, err: errors.New("boom")})
		err := mgr.LoadAll(fiber.New())
		assert.ErrorContains(t, err, "boom")
	})
}
