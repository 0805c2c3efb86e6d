// Package session issues the long-lived client ids that address studio
// sessions, using fiber's session store on the configured storage backend.
package session

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"

	"github.com/qrkitchen/qr-kitchen/internal/config"
)

const issuedKey = "issued"

// Store hands out client ids.
type Store struct {
	store *session.Store
}

// New creates the client id store on top of storage.
func New(storage fiber.Storage, cookie config.Cookie) *Store {
	if storage == nil {
		panic("storage is nil")
	}

	return &Store{
		store: session.New(session.Config{
			Storage:        storage,
			Expiration:     cookie.MaxAge,
			KeyLookup:      "cookie:" + cookie.Name,
			CookieSecure:   cookie.Secure,
			CookieHTTPOnly: true,
			CookieSameSite: "Lax",
			KeyGenerator:   uuid.NewString,
		}),
	}
}

// ClientID returns the id of the requesting client. Unknown clients get a
// fresh id, which is saved and sent back as cookie.
func (s *Store) ClientID(c *fiber.Ctx) (string, error) {
	sess, err := s.store.Get(c)
	if err != nil {
		return "", err
	}

	id := sess.ID()

	if sess.Fresh() {
		sess.Set(issuedKey, time.Now().UTC().Format(time.RFC3339))

		if err = sess.Save(); err != nil {
			return "", err
		}
	}

	return id, nil
}
