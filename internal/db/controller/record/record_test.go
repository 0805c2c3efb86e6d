package record

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/qrkitchen/qr-kitchen/internal/db/models"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	// every pooled connection would get its own in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(&models.Record{})
	require.NoError(t, err, "failed to migrate test database")

	return db
}

var now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func TestGet(t *testing.T) {
	db := setupTestDB(t)

	_, err := Set(db, "qrHistory:a", []byte(`[]`), 0, now)
	require.NoError(t, err)
	_, err = Set(db, "qrSession:a", []byte(`{}`), time.Minute, now)
	require.NoError(t, err)

	testCases := []struct {
		name          string
		dbParam       *gorm.DB
		key           string
		at            time.Time
		expectedError error
		expectedValue []byte
	}{
		{name: "nil database", key: "x", at: now, expectedError: ErrDBNil},
		{name: "empty key", dbParam: db, at: now, expectedError: ErrRecordKeyEmpty},
		{name: "not found", dbParam: db, key: "qrHistory:b", at: now, expectedError: ErrRecordNotFound},
		{name: "no expiry", dbParam: db, key: "qrHistory:a", at: now.Add(24 * time.Hour), expectedValue: []byte(`[]`)},
		{name: "before expiry", dbParam: db, key: "qrSession:a", at: now.Add(30 * time.Second), expectedValue: []byte(`{}`)},
		{name: "expired", dbParam: db, key: "qrSession:a", at: now.Add(time.Minute), expectedError: ErrRecordNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec, err := Get(tc.dbParam, tc.key, tc.at)
			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				assert.Nil(t, rec)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expectedValue, rec.Value)
		})
	}
}

func TestSetReplaces(t *testing.T) {
	db := setupTestDB(t)

	_, err := Set(db, "k", []byte("one"), time.Second, now)
	require.NoError(t, err)
	_, err = Set(db, "k", []byte("two"), 0, now.Add(time.Hour))
	require.NoError(t, err)

	rec, err := Get(db, "k", now.Add(2*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, []byte("two"), rec.Value)
	assert.Zero(t, rec.ExpiresAt)

	var count int64
	require.NoError(t, db.Model(&models.Record{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	_, err = Set(db, "", []byte("x"), 0, now)
	require.ErrorIs(t, err, ErrRecordKeyEmpty)
	_, err = Set(nil, "k", nil, 0, now)
	require.ErrorIs(t, err, ErrDBNil)
}

func TestDelete(t *testing.T) {
	db := setupTestDB(t)

	_, err := Set(db, "k", []byte("v"), 0, now)
	require.NoError(t, err)

	require.NoError(t, Delete(db, "k"))
	require.NoError(t, Delete(db, "k"), "missing keys are not an error")

	_, err = Get(db, "k", now)
	require.ErrorIs(t, err, ErrRecordNotFound)

	require.ErrorIs(t, Delete(db, ""), ErrRecordKeyEmpty)
	require.ErrorIs(t, Delete(nil, "k"), ErrDBNil)
}

func TestPurgeAndReset(t *testing.T) {
	db := setupTestDB(t)

	for key, ttl := range map[string]time.Duration{
		"qrHistory:a": 0,
		"qrSession:a": time.Minute,
		"qrSession:b": time.Hour,
	} {
		_, err := Set(db, key, []byte("v"), ttl, now)
		require.NoError(t, err)
	}

	later := now.Add(2 * time.Minute)

	purged, err := Purge(db, later)
	require.NoError(t, err)
	assert.Equal(t, int64(1), purged)

	_, err = Get(db, "qrSession:a", now)
	require.ErrorIs(t, err, ErrRecordNotFound, "purged rows are gone even for an earlier clock")

	for _, key := range []string{"qrHistory:a", "qrSession:b"} {
		_, err = Get(db, key, later)
		require.NoError(t, err, key)
	}

	require.NoError(t, Reset(db))

	_, err = Get(db, "qrHistory:a", later)
	require.ErrorIs(t, err, ErrRecordNotFound)
}
