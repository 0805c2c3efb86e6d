package api

import (
	"bytes"
	"image"
	_ "image/gif"  // frame formats
	_ "image/jpeg" // frame formats
	_ "image/png"  // frame formats

	"github.com/gofiber/fiber/v2"

	"github.com/qrkitchen/qr-kitchen/internal/studio"
)

// PostView switches the top level view.
func (s *Service) PostView(c *fiber.Ctx) error {
	return s.run(c, func(*studio.Session) (studio.Action, error) {
		req := new(viewRequest)
		if err := parse(c, req); err != nil {
			return nil, err
		}

		return studio.Navigate{View: studio.View(req.View)}, nil
	})
}

// PostFrame feeds one camera frame to the running scan session. The frame
// is an uploaded file named "frame" or the raw image body.
func (s *Service) PostFrame(c *fiber.Ctx) error {
	return s.run(c, func(*studio.Session) (studio.Action, error) {
		raw, err := upload(c, "frame")
		if err != nil {
			return nil, err
		}

		frame, _, err := image.Decode(bytes.NewReader(raw))
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "undecodable frame: "+err.Error())
		}

		return studio.ScanFrame{Frame: frame}, nil
	})
}

// PostRebuild loads the scanned content into the editor.
func (s *Service) PostRebuild(c *fiber.Ctx) error {
	return s.dispatch(c, studio.RebuildFromScan{})
}

// PostDismiss discards the scanned content and scans again.
func (s *Service) PostDismiss(c *fiber.Ctx) error {
	return s.dispatch(c, studio.DismissScan{})
}

// PostTorch switches the camera torch.
func (s *Service) PostTorch(c *fiber.Ctx) error {
	return s.dispatch(c, studio.ToggleTorch{})
}

// PostClipboard confirms that the client copied the scanned text.
func (s *Service) PostClipboard(c *fiber.Ctx) error {
	return s.dispatch(c, studio.Notify{Message: studio.MsgCopiedToClipboard})
}
