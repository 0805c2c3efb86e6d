package handler

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"github.com/qrkitchen/qr-kitchen/internal/content"
	"github.com/qrkitchen/qr-kitchen/internal/design"
	"github.com/qrkitchen/qr-kitchen/internal/history"
	"github.com/qrkitchen/qr-kitchen/internal/portable"
	"github.com/qrkitchen/qr-kitchen/internal/render"
	"github.com/qrkitchen/qr-kitchen/internal/studio"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: fiber.StatusOK},
		{name: "fiber error", err: fiber.ErrUnsupportedMediaType, want: fiber.StatusUnsupportedMediaType},
		{name: "invalid action", err: fmt.Errorf("%w: bad", studio.ErrInvalid), want: fiber.StatusBadRequest},
		{name: "invalid config", err: portable.ErrInvalidConfig, want: fiber.StatusBadRequest},
		{name: "unknown kind", err: content.ErrUnknownKind, want: fiber.StatusBadRequest},
		{name: "invalid style", err: design.ErrInvalidStyle, want: fiber.StatusBadRequest},
		{name: "bad extension", err: render.ErrUnsupportedExtension, want: fiber.StatusBadRequest},
		{name: "unknown history id", err: history.ErrNotFound, want: fiber.StatusNotFound},
		{name: "unknown template", err: design.ErrTemplateNotFound, want: fiber.StatusNotFound},
		{name: "not scanning", err: studio.ErrNotScanning, want: fiber.StatusConflict},
		{name: "nothing scanned", err: studio.ErrNothingScanned, want: fiber.StatusConflict},
		{name: "nothing rendered", err: render.ErrNoInstance, want: fiber.StatusConflict},
		{name: "storage", err: errors.New("disk full"), want: fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Status(tt.err))
		})
	}
}
