package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/qrkitchen/qr-kitchen/internal/content"
	"github.com/qrkitchen/qr-kitchen/internal/studio"
)

// GetKinds lists the content kinds in menu order.
func (s *Service) GetKinds(c *fiber.Ctx) error {
	return c.JSON(content.Kinds())
}

// PutKind switches the active kind.
func (s *Service) PutKind(c *fiber.Ctx) error {
	return s.run(c, func(*studio.Session) (studio.Action, error) {
		req := new(kindRequest)
		if err := parse(c, req); err != nil {
			return nil, err
		}

		return studio.SetKind{Kind: content.Kind(req.Kind)}, nil
	})
}

// PutValues merges the posted fields into the content values. Fields left
// out keep their current value.
func (s *Service) PutValues(c *fiber.Ctx) error {
	return s.run(c, func(sess *studio.Session) (studio.Action, error) {
		values := sess.State().Values
		if err := parse(c, &values); err != nil {
			return nil, err
		}

		return studio.SetValues{Values: values}, nil
	})
}
