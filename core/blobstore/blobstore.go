package blobstore

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key has no stored value.
var ErrNotFound = errors.New("blobstore: key not found")

// Store is a minimal keyed blob store. Each logical document lives under
// one well-known key; the stored bytes use the same JSON schema as the wire.
type Store interface {
	// Get returns the blob stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Put stores the blob under key, replacing any previous value.
	Put(ctx context.Context, key string, data []byte) error
}
