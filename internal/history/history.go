// Package history keeps the per-client creation history, newest first and
// capped, persisted as one JSON list under a single storage key.
package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/qrkitchen/qr-kitchen/internal/content"
	"github.com/qrkitchen/qr-kitchen/internal/design"
)

// DefaultLimit is the number of entries kept when no limit is configured.
const DefaultLimit = 20

// ErrNotFound is returned for unknown entry ids.
var ErrNotFound = errors.New("history entry not found")

// Entry is one saved code.
type Entry struct {
	ID             int64           `json:"id"`
	Timestamp      time.Time       `json:"timestamp"`
	ActiveType     content.Kind    `json:"activeType"`
	DataValues     content.Values  `json:"dataValues"`
	Design         design.Design   `json:"design"`
	Gradient       design.Gradient `json:"gradient"`
	CustomEyeColor bool            `json:"customEyeColor"`
	Summary        string          `json:"summary"`
}

// NewEntry captures kind, values and style. Id and timestamp are assigned on save.
func NewEntry(kind content.Kind, values content.Values, style design.Style) Entry {
	return Entry{
		ActiveType:     kind,
		DataValues:     values,
		Design:         style.Design.Clone(),
		Gradient:       style.Gradient,
		CustomEyeColor: style.CustomEye,
		Summary:        content.Summary(kind, values),
	}
}

// Style returns the style stored in the entry.
func (e Entry) Style() design.Style {
	return design.Style{Design: e.Design.Clone(), Gradient: e.Gradient, CustomEye: e.CustomEyeColor}
}

// Key returns the storage key of a client's history.
func Key(prefix, clientID string) string {
	return prefix + ":" + clientID
}

// Store is the history of one client.
type Store struct {
	mu      sync.Mutex
	storage fiber.Storage
	key     string
	limit   int
	entries []Entry
	lastID  int64
	now     func() time.Time
}

// Open loads the history stored under key. Unreadable data is logged and
// treated as an empty history.
func Open(storage fiber.Storage, key string, limit int) *Store {
	if limit <= 0 {
		limit = DefaultLimit
	}

	s := &Store{
		storage: storage,
		key:     key,
		limit:   limit,
		now:     time.Now,
	}

	raw, err := storage.Get(key)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to read history, starting empty")

		return s
	}

	if len(raw) == 0 {
		return s
	}

	if err = json.Unmarshal(raw, &s.entries); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to decode history, starting empty")

		s.entries = nil

		return s
	}

	if len(s.entries) > limit {
		s.entries = s.entries[:limit]
	}

	for _, e := range s.entries {
		s.lastID = max(s.lastID, e.ID)
	}

	return s
}

// Entries returns a copy of the entries, newest first.
func (s *Store) Entries() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Entry, len(s.entries))
	copy(out, s.entries)

	return out
}

// Len returns the number of entries.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.entries)
}

// Get returns the entry with the given id.
func (s *Store) Get(id int64) (Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.entries {
		if e.ID == id {
			return e, nil
		}
	}

	return Entry{}, ErrNotFound
}

// Save stamps e with a fresh id and the current time, prepends it and drops
// the oldest entries beyond the limit. Ids are epoch milliseconds, bumped when
// needed so they stay strictly increasing.
func (s *Store) Save(e Entry) (Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()

	e.ID = max(now.UnixMilli(), s.lastID+1)
	e.Timestamp = now.UTC()
	s.lastID = e.ID

	entries := make([]Entry, 0, min(len(s.entries)+1, s.limit))
	entries = append(entries, e)
	entries = append(entries, s.entries...)

	if len(entries) > s.limit {
		entries = entries[:s.limit]
	}

	s.entries = entries

	return e, s.persist()
}

// Delete removes one entry keeping the order of the others.
func (s *Store) Delete(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]Entry, 0, len(s.entries))
	for _, e := range s.entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}

	if len(kept) == len(s.entries) {
		return ErrNotFound
	}

	s.entries = kept

	return s.persist()
}

// Clear removes every entry and the storage key.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = nil

	if err := s.storage.Delete(s.key); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}

	return nil
}

func (s *Store) persist() error {
	raw, err := json.Marshal(s.entries)
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}

	if err = s.storage.Set(s.key, raw, 0); err != nil {
		return fmt.Errorf("write history: %w", err)
	}

	return nil
}
