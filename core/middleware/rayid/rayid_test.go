package rayid_test

import (
	"net/http/httptest"
	"testing"

	"github.com/rubbishhaha/vocab/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRayID(t *testing.T) {
	t.Run("GeneratesID", func(t *testing.T) {
		app := fiber.New()
		app.Use(rayid.New())

		var got string
		app.Get("/", func(c *fiber.Ctx) error {
			got, _ = c.Locals("ray_id").(string)
			return c.SendStatus(fiber.StatusOK)
		})

		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))

		require.NoError(t, err)
		assert.NotEmpty(t, got)
		assert.Equal(t, got, resp.Header.Get(rayid.Header))
	})

	t.Run("HonorsIncomingID", func(t *testing.T) {
		app := fiber.New()
		app.Use(rayid.New())
		app.Get("/", func(c *fiber.Ctx) error {
			return c.SendStatus(fiber.StatusOK)
		})

		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(rayid.Header, "upstream-id")
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, "upstream-id", resp.Header.Get(rayid.Header))
	})
}
