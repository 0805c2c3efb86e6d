package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/qrkitchen/qr-kitchen/internal/config"
	"github.com/qrkitchen/qr-kitchen/internal/studio"
)

// Service is the interface for a web handler service.
type Service interface {
	Init(app *fiber.App, cfg *config.Config, reg *studio.Registry) error
}
