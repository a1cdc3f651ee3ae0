package vocab

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rubbishhaha/vocab/core/blobstore"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// memStore is an in-memory blobstore.Store for handler tests.
type memStore struct {
	data map[string][]byte
}

func (m *memStore) Get(_ context.Context, key string) ([]byte, error) {
	data, ok := m.data[key]
	if !ok {
		return nil, blobstore.ErrNotFound
	}
	return data, nil
}

func (m *memStore) Put(_ context.Context, key string, data []byte) error {
	m.data[key] = data
	return nil
}

func setupTestApp(t *testing.T) (*fiber.App, *memStore) {
	app := fiber.New()
	store := &memStore{data: map[string][]byte{}}
	handler := NewHandler(NewService(store, zap.NewNop()))
	handler.RegisterRoutes(app)
	return app, store
}

func TestHandleGetWords(t *testing.T) {
	t.Run("NoData", func(t *testing.T) {
		app, _ := setupTestApp(t)

		resp, err := app.Test(httptest.NewRequest("GET", "/vocab", nil))

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("ReturnsStoredBlob", func(t *testing.T) {
		app, store := setupTestApp(t)
		store.data[BlobKey] = []byte(`{"hola":{"seen":3}}`)

		resp, err := app.Test(httptest.NewRequest("GET", "/vocab", nil))

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		body, _ := io.ReadAll(resp.Body)
		assert.JSONEq(t, `{"hola":{"seen":3}}`, string(body))
	})
}

func TestHandlePutWords(t *testing.T) {
	t.Run("StoresBlob", func(t *testing.T) {
		app, store := setupTestApp(t)

		req := httptest.NewRequest("PUT", "/vocab", strings.NewReader(`{"hola":{"seen":3}}`))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
		assert.JSONEq(t, `{"hola":{"seen":3}}`, string(store.data[BlobKey]))
	})

	t.Run("RejectsInvalidJSON", func(t *testing.T) {
		app, _ := setupTestApp(t)

		req := httptest.NewRequest("PUT", "/vocab", strings.NewReader("{broken"))
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.NotEmpty(t, body["error"])
	})
}
