package vocab

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/rubbishhaha/vocab/core/blobstore"

	"go.uber.org/zap"
)

// BlobKey is the fixed blob store key the word list lives under.
const BlobKey = "vocab/words.json"

// ErrNoData signals that no word list has been stored yet.
var ErrNoData = errors.New("vocab: no data")

// ErrInvalidJSON rejects payloads that are not valid JSON.
var ErrInvalidJSON = errors.New("vocab: payload is not valid JSON")

// Service stores and retrieves the word-tracking blob. The blob is opaque
// to the server: the client decides its shape, the server only guarantees
// it is JSON.
type Service struct {
	store  blobstore.Store
	logger *zap.Logger
}

// NewService creates a new vocab service.
func NewService(store blobstore.Store, logger *zap.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Words returns the stored word list blob.
func (s *Service) Words(ctx context.Context) ([]byte, error) {
	data, err := s.store.Get(ctx, BlobKey)
	if err != nil {
		if errors.Is(err, blobstore.ErrNotFound) {
			return nil, ErrNoData
		}
		return nil, err
	}
	return data, nil
}

// SaveWords validates and stores the word list blob wholesale.
func (s *Service) SaveWords(ctx context.Context, data []byte) error {
	if !json.Valid(data) {
		return ErrInvalidJSON
	}
	return s.store.Put(ctx, BlobKey, data)
}
