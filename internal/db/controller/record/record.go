// Package record provides CRUD operations for the key/value records backing the studio store.
package record

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/qrkitchen/qr-kitchen/internal/db/models"
)

const (
	keyQueryPattern     = "name = ?"
	expiredQueryPattern = "expires_at <> 0 AND expires_at <= ?"
)

var (
	// ErrRecordNotFound is returned when a record is not found or has expired.
	ErrRecordNotFound = errors.New("record not found")
	// ErrRecordKeyEmpty is returned when a record key is empty.
	ErrRecordKeyEmpty = errors.New("record key cannot be empty")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Get retrieves a live record by its key.
func Get(db *gorm.DB, key string, now time.Time) (*models.Record, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if key == "" {
		return nil, ErrRecordKeyEmpty
	}

	var rec models.Record
	result := db.Where(keyQueryPattern, key).First(&rec)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, result.Error
	}

	if rec.Expired(now) {
		return nil, ErrRecordNotFound
	}

	return &rec, nil
}

// Set creates or replaces the record stored under key. A zero ttl stores
// the record without expiry.
func Set(db *gorm.DB, key string, value []byte, ttl time.Duration, now time.Time) (*models.Record, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if key == "" {
		return nil, ErrRecordKeyEmpty
	}

	rec := &models.Record{
		Name:      key,
		Value:     value,
		UpdatedAt: now,
	}
	if ttl > 0 {
		rec.ExpiresAt = now.Add(ttl).Unix()
	}

	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "expires_at", "updated_at"}),
	}).Create(rec)
	if result.Error != nil {
		return nil, result.Error
	}

	return rec, nil
}

// Delete removes the record stored under key. Deleting a missing key is not an error.
func Delete(db *gorm.DB, key string) error {
	if db == nil {
		return ErrDBNil
	}
	if key == "" {
		return ErrRecordKeyEmpty
	}

	return db.Where(keyQueryPattern, key).Delete(&models.Record{}).Error
}

// Purge deletes expired records and returns how many were removed.
func Purge(db *gorm.DB, now time.Time) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	result := db.Where(expiredQueryPattern, now.Unix()).Delete(&models.Record{})

	return result.RowsAffected, result.Error
}

// Reset deletes every record.
func Reset(db *gorm.DB) error {
	if db == nil {
		return ErrDBNil
	}

	return db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Record{}).Error
}
