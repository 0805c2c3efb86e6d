package client

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/qrkitchen/qr-kitchen/internal/web/handler"
)

// IDSource yields the client id of a request.
type IDSource interface {
	ClientID(c *fiber.Ctx) (string, error)
}

// Skipped are path prefixes served without a client id.
var Skipped = []string{"/static", "/metrics", "/checkalive"}

// New returns the client identification middleware.
func New(src IDSource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if IsSkipped(c) {
			return c.Next()
		}

		id, err := src.ClientID(c)
		if err != nil {
			log.Error().Err(err).Msg("failed to identify client")

			return fiber.ErrInternalServerError
		}

		c.Locals(handler.ClientLocal, id)

		return c.Next()
	}
}

// IsSkipped checks if the current request needs no client id.
func IsSkipped(c *fiber.Ctx) bool {
	originalURL := strings.ToLower(c.OriginalURL())

	for _, prefix := range Skipped {
		if strings.HasPrefix(originalURL, prefix) {
			return true
		}
	}

	return false
}
