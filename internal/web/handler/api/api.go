// Package api exposes the studio actions as a JSON API. Every route works on
// the studio session of the requesting client and answers with its state.
package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/qrkitchen/qr-kitchen/internal/config"
	"github.com/qrkitchen/qr-kitchen/internal/studio"
	"github.com/qrkitchen/qr-kitchen/internal/web/handler"
)

const (
	// Path is the mount point of the API.
	Path = handler.RootPath + "api"
)

// Service is the API handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	reg *studio.Registry
}

// Handler is the API handler.
var Handler = Service{}

// Init initializes the API handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, reg *studio.Registry) error {
	if app == nil || cfg == nil || reg == nil {
		return errors.New(handler.ErrNilACRFatalLogMsg)
	}

	s.cfg = cfg
	s.reg = reg

	app.Route(Path, func(router fiber.Router) {
		router.Get("/state", s.GetState)
		router.Get("/kinds", s.GetKinds)
		router.Get("/templates", s.GetTemplates)

		router.Put("/kind", s.PutKind)
		router.Put("/values", s.PutValues)
		router.Put("/design", s.PutDesign)
		router.Put("/gradient", s.PutGradient)
		router.Put("/custom-eye", s.PutCustomEye)
		router.Post("/logo", s.PostLogo)
		router.Delete("/logo", s.DeleteLogo)
		router.Post("/templates/apply", s.PostTemplate)

		router.Post("/history", s.PostHistory)
		router.Post("/history/:id/restore", s.PostRestore)
		router.Delete("/history/:id", s.DeleteHistoryEntry)
		router.Delete("/history", s.DeleteHistory)

		router.Get("/config", s.GetConfig)
		router.Post("/config", s.PostConfig)

		router.Post("/view", s.PostView)
		router.Post("/scan/frame", s.PostFrame)
		router.Post("/scan/rebuild", s.PostRebuild)
		router.Post("/scan/dismiss", s.PostDismiss)
		router.Post("/scan/torch", s.PostTorch)
		router.Post("/clipboard", s.PostClipboard)

		router.Post("/dark-mode", s.PostDarkMode)
		router.Post("/alert/ack", s.PostAlertAck)
		router.Get("/download/:ext", s.GetDownload)
	})

	return nil
}

// dispatch runs one action on the client's studio and replies with the outcome.
func (s *Service) dispatch(c *fiber.Ctx, a studio.Action) error {
	return s.run(c, func(*studio.Session) (studio.Action, error) {
		return a, nil
	})
}

// run builds an action from the request and dispatches it. Errors raised
// while building it are answered like dispatch errors, with the state.
func (s *Service) run(c *fiber.Ctx, build func(sess *studio.Session) (studio.Action, error)) error {
	sess, err := handler.Studio(c, s.reg)
	if err != nil {
		return err
	}

	a, err := build(sess)
	if err != nil {
		return handler.Reply(c, sess, err)
	}

	return handler.Reply(c, sess, sess.Dispatch(a))
}

// GetState returns the studio state.
func (s *Service) GetState(c *fiber.Ctx) error {
	sess, err := handler.Studio(c, s.reg)
	if err != nil {
		return err
	}

	return c.JSON(sess.State())
}
