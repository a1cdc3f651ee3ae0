package blobstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Blob is the database row backing one stored key.
type Blob struct {
	Key       string `gorm:"primaryKey;size:191"`
	Value     []byte `gorm:"type:longblob"`
	UpdatedAt time.Time
}

// TableName maps the model to the blobs table.
func (Blob) TableName() string {
	return "blobs"
}

// GormStore persists blobs in a key/value table via GORM.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a blob store backed by the database.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Migrate creates the blobs table if it does not exist yet.
func (s *GormStore) Migrate() error {
	if err := s.db.AutoMigrate(&Blob{}); err != nil {
		return fmt.Errorf("failed to migrate blobs table: %w", err)
	}
	return nil
}

// Get returns the blob stored under key.
func (s *GormStore) Get(ctx context.Context, key string) ([]byte, error) {
	var row Blob
	err := s.db.WithContext(ctx).First(&row, "`key` = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load blob %s: %w", key, err)
	}
	return row.Value, nil
}

// Put stores the blob under key, replacing any previous row.
func (s *GormStore) Put(ctx context.Context, key string, data []byte) error {
	row := Blob{Key: key, Value: data, UpdatedAt: time.Now()}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to store blob %s: %w", key, err)
	}
	return nil
}
