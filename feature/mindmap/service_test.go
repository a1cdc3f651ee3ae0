package mindmap

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/rubbishhaha/vocab/core/blobstore"
	"github.com/rubbishhaha/vocab/feature/mindmap/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// memStore is an in-memory blobstore.Store for service tests.
type memStore struct {
	data map[string][]byte
	err  error
}

func newMemStore() *memStore {
	return &memStore{data: map[string][]byte{}}
}

func (m *memStore) Get(_ context.Context, key string) ([]byte, error) {
	if m.err != nil {
		return nil, m.err
	}
	data, ok := m.data[key]
	if !ok {
		return nil, blobstore.ErrNotFound
	}
	return data, nil
}

func (m *memStore) Put(_ context.Context, key string, data []byte) error {
	if m.err != nil {
		return m.err
	}
	m.data[key] = data
	return nil
}

func setupService(t *testing.T) (*Service, *memStore) {
	store := newMemStore()
	svc := NewService(store, zap.NewNop())
	svc.now = func() time.Time { return time.UnixMilli(9_000_000) }
	return svc, store
}

func storedSnapshot(t *testing.T, store *memStore) *models.Snapshot {
	data, ok := store.data[SnapshotKey]
	require.True(t, ok, "no snapshot persisted")
	var snap models.Snapshot
	require.NoError(t, json.Unmarshal(data, &snap))
	return &snap
}

func TestService_Current(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		svc, _ := setupService(t)

		_, err := svc.Current(context.Background())
		assert.ErrorIs(t, err, ErrNoData)
	})

	t.Run("Stored", func(t *testing.T) {
		svc, store := setupService(t)
		store.data[SnapshotKey] = []byte(`{"root":{"id":"root"},"timestamp":42}`)

		snap, err := svc.Current(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(42), snap.Timestamp)
	})

	t.Run("CorruptStored", func(t *testing.T) {
		svc, store := setupService(t)
		store.data[SnapshotKey] = []byte("not json")

		_, err := svc.Current(context.Background())
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNoData)
	})
}

func TestService_Sync(t *testing.T) {
	t.Run("NothingAnywhere", func(t *testing.T) {
		svc, _ := setupService(t)

		_, err := svc.Sync(context.Background(), nil)
		assert.ErrorIs(t, err, ErrNoData)
	})

	t.Run("FirstSyncAdoptsClientSnapshot", func(t *testing.T) {
		svc, store := setupService(t)
		local := &models.Snapshot{Root: &models.Node{ID: "root"}, Timestamp: 100}

		result, err := svc.Sync(context.Background(), local)
		require.NoError(t, err)
		// Adopted verbatim, reconciler bypassed.
		assert.Equal(t, int64(100), result.Timestamp)
		assert.Equal(t, int64(100), storedSnapshot(t, store).Timestamp)
	})

	t.Run("EmptyPushReturnsStored", func(t *testing.T) {
		svc, store := setupService(t)
		store.data[SnapshotKey] = []byte(`{"root":{"id":"root"},"timestamp":42}`)

		result, err := svc.Sync(context.Background(), nil)
		require.NoError(t, err)
		assert.Equal(t, int64(42), result.Timestamp)
	})

	t.Run("BothPresentMergesAndPersists", func(t *testing.T) {
		svc, store := setupService(t)
		store.data[SnapshotKey] = []byte(`{"root":{"id":"root","children":[{"id":"a"}]},"timestamp":1000}`)

		local := &models.Snapshot{
			Root: &models.Node{ID: "root", Children: []*models.Node{
				{ID: "a"}, {ID: "b"},
			}},
			Timestamp: 2000,
		}

		result, err := svc.Sync(context.Background(), local)
		require.NoError(t, err)

		require.Len(t, result.Root.Children, 2)
		// Output timestamp is the reconciliation time, not either input's.
		assert.Equal(t, int64(9_000_000), result.Timestamp)
		assert.Equal(t, int64(9_000_000), storedSnapshot(t, store).Timestamp)
	})

	t.Run("StoreFaultSurfaces", func(t *testing.T) {
		svc, store := setupService(t)
		store.err = errors.New("storage down")

		_, err := svc.Sync(context.Background(), &models.Snapshot{Root: &models.Node{ID: "root"}})
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNoData)
	})
}
