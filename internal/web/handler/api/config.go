package api

import (
	"bytes"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/qrkitchen/qr-kitchen/internal/portable"
	"github.com/qrkitchen/qr-kitchen/internal/studio"
	"github.com/qrkitchen/qr-kitchen/internal/web/handler"
)

// GetConfig downloads the portable design file.
func (s *Service) GetConfig(c *fiber.Ctx) error {
	sess, err := handler.Studio(c, s.reg)
	if err != nil {
		return err
	}

	var (
		buf bytes.Buffer
		now = time.Now()
	)

	if err = sess.Dispatch(studio.ExportConfig{W: &buf, At: now}); err != nil {
		return handler.Reply(c, sess, err)
	}

	c.Attachment(portable.FileName(now))

	return c.Send(buf.Bytes())
}

// PostConfig imports a portable design file, either as uploaded file named
// "config" or as raw JSON body.
func (s *Service) PostConfig(c *fiber.Ctx) error {
	return s.run(c, func(*studio.Session) (studio.Action, error) {
		raw, err := upload(c, "config")
		if err != nil {
			return nil, err
		}

		return studio.ImportConfig{Raw: raw}, nil
	})
}
