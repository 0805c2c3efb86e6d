package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/qrkitchen/qr-kitchen/internal/content"
	"github.com/qrkitchen/qr-kitchen/internal/design"
	"github.com/qrkitchen/qr-kitchen/internal/history"
	"github.com/qrkitchen/qr-kitchen/internal/render"
	"github.com/qrkitchen/qr-kitchen/internal/studio"
)

// ErrNoClient is returned when the client middleware did not run.
var ErrNoClient = errors.New("no client id on request")

// Studio returns the studio session of the requesting client.
func Studio(c *fiber.Ctx, reg *studio.Registry) (*studio.Session, error) {
	id, ok := c.Locals(ClientLocal).(string)
	if !ok || id == "" {
		return nil, ErrNoClient
	}

	return reg.Get(id), nil
}

// Status maps a studio error to an HTTP status code.
func Status(err error) int {
	var fiberErr *fiber.Error

	switch {
	case err == nil:
		return fiber.StatusOK
	case errors.As(err, &fiberErr):
		return fiberErr.Code
	case studio.IsInvalid(err),
		errors.Is(err, content.ErrUnknownKind),
		errors.Is(err, design.ErrInvalidStyle),
		errors.Is(err, render.ErrUnsupportedExtension):
		return fiber.StatusBadRequest
	case errors.Is(err, history.ErrNotFound),
		errors.Is(err, design.ErrTemplateNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, studio.ErrNotScanning),
		errors.Is(err, studio.ErrNothingScanned),
		errors.Is(err, studio.ErrFramesUnsupported),
		errors.Is(err, render.ErrNoInstance),
		errors.Is(err, render.ErrEmptyData):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// WantsHTML reports whether the request came from a plain HTML form rather
// than the API client.
func WantsHTML(c *fiber.Ctx) bool {
	return c.Accepts(fiber.MIMEApplicationJSON, fiber.MIMETextHTML) == fiber.MIMETextHTML
}

// Reply answers a studio action. Form posts are redirected back to the page
// they came from, since the outcome shows up there as notification or alert.
// API calls get the resulting state, with the error attached on failure.
func Reply(c *fiber.Ctx, sess *studio.Session, err error) error {
	status := Status(err)

	if err != nil {
		ev := log.Debug()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error()
		}

		ev.Err(err).Str("client", sess.ID()).Str("path", c.Path()).Msg("studio action failed")
	}

	if WantsHTML(c) {
		back := c.Get(fiber.HeaderReferer)
		if back == "" {
			back = "/" + string(sess.State().View)
		}

		return c.Redirect(back, fiber.StatusSeeOther)
	}

	if err != nil {
		return c.Status(status).JSON(fiber.Map{
			"error": err.Error(),
			"state": sess.State(),
		})
	}

	return c.JSON(sess.State())
}
