package storage

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/qrkitchen/qr-kitchen/internal/db/models"
)

func newStorage(t *testing.T) (*Storage, *time.Time) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	s, err := New(db)
	require.NoError(t, err)

	clock := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return clock }

	return s, &clock
}

func TestStorage(t *testing.T) {
	s, _ := newStorage(t)

	val, err := s.Get("qrHistory:a")
	require.NoError(t, err)
	assert.Nil(t, val, "missing keys read as nil without error")

	require.NoError(t, s.Set("qrHistory:a", []byte(`[{"id":1}]`), 0))
	val, err = s.Get("qrHistory:a")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":1}]`), val)

	require.NoError(t, s.Set("qrHistory:a", []byte(`[]`), 0))
	val, err = s.Get("qrHistory:a")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), val)

	require.NoError(t, s.Delete("qrHistory:a"))
	require.NoError(t, s.Delete("qrHistory:a"))
	val, err = s.Get("qrHistory:a")
	require.NoError(t, err)
	assert.Nil(t, val)
}

func TestStorageIgnoresEmpty(t *testing.T) {
	s, _ := newStorage(t)

	require.NoError(t, s.Set("", []byte("v"), 0))
	require.NoError(t, s.Set("k", nil, 0))
	require.NoError(t, s.Delete(""))

	val, err := s.Get("")
	require.NoError(t, err)
	assert.Nil(t, val)

	var count int64
	require.NoError(t, s.db.Model(&models.Record{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestStorageExpiry(t *testing.T) {
	s, clock := newStorage(t)

	require.NoError(t, s.Set("qrSession:a", []byte("{}"), time.Minute))
	require.NoError(t, s.Set("qrHistory:a", []byte("[]"), 0))

	*clock = clock.Add(2 * time.Minute)

	val, err := s.Get("qrSession:a")
	require.NoError(t, err)
	assert.Nil(t, val)

	require.NoError(t, s.Close())

	var count int64
	require.NoError(t, s.db.Model(&models.Record{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	require.NoError(t, s.Reset())
	require.NoError(t, s.db.Model(&models.Record{}).Count(&count).Error)
	assert.Zero(t, count)
}
