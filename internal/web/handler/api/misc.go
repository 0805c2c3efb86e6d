package api

import (
	"bytes"

	"github.com/gofiber/fiber/v2"

	"github.com/qrkitchen/qr-kitchen/internal/render"
	"github.com/qrkitchen/qr-kitchen/internal/studio"
	"github.com/qrkitchen/qr-kitchen/internal/web/handler"
)

// PostDarkMode flips the theme. A body with "enabled" sets it instead.
func (s *Service) PostDarkMode(c *fiber.Ctx) error {
	return s.run(c, func(*studio.Session) (studio.Action, error) {
		req := new(toggleRequest)

		if len(c.Body()) > 0 {
			if err := parse(c, req); err != nil {
				return nil, err
			}
		}

		return studio.ToggleDarkMode{Enabled: req.Enabled}, nil
	})
}

// PostAlertAck closes the blocking alert.
func (s *Service) PostAlertAck(c *fiber.Ctx) error {
	return s.dispatch(c, studio.AckAlert{})
}

// GetDownload saves the code to the history and returns the export image.
func (s *Service) GetDownload(c *fiber.Ctx) error {
	sess, err := handler.Studio(c, s.reg)
	if err != nil {
		return err
	}

	ext, err := render.ParseExtension(c.Params("ext"))
	if err != nil {
		return handler.Reply(c, sess, err)
	}

	var buf bytes.Buffer
	if err = sess.Dispatch(studio.Download{Ext: ext, W: &buf}); err != nil {
		return handler.Reply(c, sess, err)
	}

	c.Attachment(ext.FileName())
	c.Set(fiber.HeaderContentType, ext.ContentType())

	return c.Send(buf.Bytes())
}
