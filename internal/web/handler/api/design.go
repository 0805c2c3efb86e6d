package api

import (
	"encoding/base64"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gofiber/fiber/v2"

	"github.com/qrkitchen/qr-kitchen/internal/design"
	"github.com/qrkitchen/qr-kitchen/internal/studio"
)

// GetTemplates lists the template catalog.
func (s *Service) GetTemplates(c *fiber.Ctx) error {
	return c.JSON(design.Catalog())
}

// PutDesign merges the posted fields into the design.
func (s *Service) PutDesign(c *fiber.Ctx) error {
	return s.run(c, func(sess *studio.Session) (studio.Action, error) {
		next := sess.State().Design.Clone()
		if err := parse(c, &next); err != nil {
			return nil, err
		}

		return studio.SetDesign{Design: next}, nil
	})
}

// PutGradient merges the posted fields into the gradient.
func (s *Service) PutGradient(c *fiber.Ctx) error {
	return s.run(c, func(sess *studio.Session) (studio.Action, error) {
		next := sess.State().Gradient
		if err := parse(c, &next); err != nil {
			return nil, err
		}

		return studio.SetGradient{Gradient: next}, nil
	})
}

// PutCustomEye switches independent corner colors on or off.
func (s *Service) PutCustomEye(c *fiber.Ctx) error {
	return s.run(c, func(*studio.Session) (studio.Action, error) {
		req := new(toggleRequest)
		if err := parse(c, req); err != nil {
			return nil, err
		}

		if req.Enabled == nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "enabled is required")
		}

		return studio.SetCustomEye{Enabled: *req.Enabled}, nil
	})
}

// PostLogo embeds a logo. It takes an uploaded image file named "logo" or a
// JSON body carrying a data URI.
func (s *Service) PostLogo(c *fiber.Ctx) error {
	return s.run(c, func(*studio.Session) (studio.Action, error) {
		if c.Is("json") {
			req := new(logoRequest)
			if err := parse(c, req); err != nil {
				return nil, err
			}

			return studio.SetLogo{DataURI: req.DataURI}, nil
		}

		raw, err := upload(c, "logo")
		if err != nil {
			return nil, err
		}

		uri, err := dataURI(raw)
		if err != nil {
			return nil, err
		}

		return studio.SetLogo{DataURI: uri}, nil
	})
}

// DeleteLogo drops the embedded logo.
func (s *Service) DeleteLogo(c *fiber.Ctx) error {
	return s.dispatch(c, studio.RemoveLogo{})
}

// PostTemplate applies a catalog template.
func (s *Service) PostTemplate(c *fiber.Ctx) error {
	return s.run(c, func(*studio.Session) (studio.Action, error) {
		req := new(templateRequest)
		if err := parse(c, req); err != nil {
			return nil, err
		}

		return studio.ApplyTemplate{Category: req.Category, Template: req.Name}, nil
	})
}

// dataURI encodes an uploaded image the way a browser file reader does.
func dataURI(raw []byte) (string, error) {
	mime := mimetype.Detect(raw)
	if !strings.HasPrefix(mime.String(), "image/") {
		return "", fiber.NewError(fiber.StatusUnsupportedMediaType, "logo must be an image, got "+mime.String())
	}

	return "data:" + mime.String() + ";base64," + base64.StdEncoding.EncodeToString(raw), nil
}
