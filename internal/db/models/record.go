// Package models contains database model definitions.
package models

import "time"

// Record is one entry of the studio key/value store. Session snapshots and
// per client history lists are kept under Name.
type Record struct {
	ID        uint64 `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex;size:191"`
	Value     []byte
	ExpiresAt int64 `gorm:"index"`
	UpdatedAt time.Time
}

// Expired reports whether the record carries an expiry that lies before now.
func (r *Record) Expired(now time.Time) bool {
	return r.ExpiresAt != 0 && r.ExpiresAt <= now.Unix()
}
