// Package blobstore provides the keyed blob persistence used by the sync
// and vocab features.
//
// Each logical document is one serialized JSON blob stored under one fixed
// key; there is no separate storage encoding. Two backends implement the
// Store interface:
//
//   - MinioStore: one object per key in an S3/MinIO bucket (default).
//   - GormStore: a blobs key/value table in MySQL, selected by config.
//
// Both backends return ErrNotFound for an absent key so callers can
// distinguish "no prior sync" from a real storage fault.
//
// Note that Get-then-Put cycles performed by callers are not atomic: two
// concurrent syncs against the same key can race and lose an update. The
// stores themselves make no compare-and-swap guarantee.
package blobstore
