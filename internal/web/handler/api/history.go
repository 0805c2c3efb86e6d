package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/qrkitchen/qr-kitchen/internal/studio"
)

func historyID(c *fiber.Ctx) (int64, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid history id")
	}

	return int64(id), nil
}

// PostHistory saves the current code to the history.
func (s *Service) PostHistory(c *fiber.Ctx) error {
	return s.dispatch(c, studio.SaveHistory{})
}

// PostRestore loads a history entry into the editor.
func (s *Service) PostRestore(c *fiber.Ctx) error {
	return s.run(c, func(*studio.Session) (studio.Action, error) {
		id, err := historyID(c)
		if err != nil {
			return nil, err
		}

		return studio.RestoreHistory{ID: id}, nil
	})
}

// DeleteHistoryEntry removes one history entry.
func (s *Service) DeleteHistoryEntry(c *fiber.Ctx) error {
	return s.run(c, func(*studio.Session) (studio.Action, error) {
		id, err := historyID(c)
		if err != nil {
			return nil, err
		}

		return studio.DeleteHistory{ID: id}, nil
	})
}

// DeleteHistory clears the history.
func (s *Service) DeleteHistory(c *fiber.Ctx) error {
	return s.dispatch(c, studio.ClearHistory{})
}
