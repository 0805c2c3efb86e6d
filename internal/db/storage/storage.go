// Package storage adapts the application database to fiber.Storage so the
// studio store can live in the same database as everything else.
package storage

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/qrkitchen/qr-kitchen/internal/db/controller/record"
	"github.com/qrkitchen/qr-kitchen/internal/db/models"
)

// Storage is a fiber.Storage backed by gorm.
type Storage struct {
	db  *gorm.DB
	now func() time.Time
}

var _ fiber.Storage = (*Storage)(nil)

// New migrates the record table and returns the storage.
func New(db *gorm.DB) (*Storage, error) {
	if db == nil {
		return nil, record.ErrDBNil
	}

	if err := db.AutoMigrate(&models.Record{}); err != nil {
		return nil, err
	}

	return &Storage{db: db, now: time.Now}, nil
}

// Get returns the value stored under key, or nil when there is none.
func (s *Storage) Get(key string) ([]byte, error) {
	if key == "" {
		return nil, nil
	}

	rec, err := record.Get(s.db, key, s.now())
	if errors.Is(err, record.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return rec.Value, nil
}

// Set stores val under key. A zero exp means no expiration.
func (s *Storage) Set(key string, val []byte, exp time.Duration) error {
	if key == "" || len(val) == 0 {
		return nil
	}

	_, err := record.Set(s.db, key, val, exp, s.now())

	return err
}

// Delete removes key.
func (s *Storage) Delete(key string) error {
	if key == "" {
		return nil
	}

	return record.Delete(s.db, key)
}

// Reset removes every key.
func (s *Storage) Reset() error {
	return record.Reset(s.db)
}

// Close drops expired records. The connection belongs to the caller.
func (s *Storage) Close() error {
	_, err := record.Purge(s.db, s.now())

	return err
}
