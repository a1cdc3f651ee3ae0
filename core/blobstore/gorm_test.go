package blobstore

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestGormStore_Get(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		db, mock := setupMockDB(t)

		rows := sqlmock.NewRows([]string{"key", "value", "updated_at"}).
			AddRow("mindmap/snapshot.json", []byte(`{"timestamp":1}`), time.Now())
		mock.ExpectQuery("SELECT \\* FROM `blobs`").WillReturnRows(rows)

		store := NewGormStore(db)
		data, err := store.Get(context.Background(), "mindmap/snapshot.json")

		require.NoError(t, err)
		assert.JSONEq(t, `{"timestamp":1}`, string(data))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NotFound", func(t *testing.T) {
		db, mock := setupMockDB(t)

		mock.ExpectQuery("SELECT \\* FROM `blobs`").
			WillReturnRows(sqlmock.NewRows([]string{"key", "value", "updated_at"}))

		store := NewGormStore(db)
		_, err := store.Get(context.Background(), "missing")

		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestGormStore_Put(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `blobs`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	store := NewGormStore(db)
	err := store.Put(context.Background(), "vocab/words.json", []byte("{}"))

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
