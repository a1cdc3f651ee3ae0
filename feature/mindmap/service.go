package mindmap

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rubbishhaha/vocab/core/blobstore"
	"github.com/rubbishhaha/vocab/feature/mindmap/merge"
	"github.com/rubbishhaha/vocab/feature/mindmap/models"

	"go.uber.org/zap"
)

// SnapshotKey is the fixed blob store key the mind-map snapshot lives under.
const SnapshotKey = "mindmap/snapshot.json"

// ErrNoData signals that neither the client nor the store provided a
// snapshot. It is a client-input condition, not a server fault.
var ErrNoData = errors.New("mindmap: no data")

// Service implements the snapshot sync cycle around the store.
//
// The fetch-merge-store sequence is not atomic: two pushes racing on the
// same key can lose one side's merge. Acceptable for a single-user client.
type Service struct {
	store  blobstore.Store
	logger *zap.Logger
	now    func() time.Time
}

// NewService creates a new sync service.
func NewService(store blobstore.Store, logger *zap.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// Current returns the currently persisted snapshot without merging or
// mutating anything. ErrNoData when nothing has been synced yet.
func (s *Service) Current(ctx context.Context) (*models.Snapshot, error) {
	data, err := s.store.Get(ctx, SnapshotKey)
	if err != nil {
		if errors.Is(err, blobstore.ErrNotFound) {
			return nil, ErrNoData
		}
		return nil, err
	}

	var snap models.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode stored snapshot: %w", err)
	}
	return &snap, nil
}

// Sync runs one fetch-merge-store cycle for a client push.
//
// Both sides present: reconcile and persist the merged snapshot. Only one
// side present: adopt it verbatim (persisting when it came from the
// client). Neither present: ErrNoData.
func (s *Service) Sync(ctx context.Context, local *models.Snapshot) (*models.Snapshot, error) {
	remote, err := s.Current(ctx)
	if err != nil && !errors.Is(err, ErrNoData) {
		return nil, err
	}

	var result *models.Snapshot
	switch {
	case remote == nil && local == nil:
		return nil, ErrNoData
	case local == nil:
		// Nothing pushed; the stored snapshot is already current.
		return remote, nil
	case remote == nil:
		s.logger.Info("First sync, adopting client snapshot",
			zap.Int64("timestamp", local.Timestamp))
		result = local
	default:
		result = merge.Reconcile(remote, local, s.now())
		s.logger.Info("Merged snapshots",
			zap.Int64("remote_ts", remote.Timestamp),
			zap.Int64("local_ts", local.Timestamp),
			zap.Int("tombstones", len(result.Tombstones)))
	}

	data, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := s.store.Put(ctx, SnapshotKey, data); err != nil {
		return nil, err
	}

	return result, nil
}
