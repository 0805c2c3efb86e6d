// Package page renders the four studio screens and the live preview image.
package page

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/qrkitchen/qr-kitchen/internal/config"
	"github.com/qrkitchen/qr-kitchen/internal/content"
	"github.com/qrkitchen/qr-kitchen/internal/design"
	"github.com/qrkitchen/qr-kitchen/internal/render"
	"github.com/qrkitchen/qr-kitchen/internal/studio"
	"github.com/qrkitchen/qr-kitchen/internal/web/handler"
	"github.com/qrkitchen/qr-kitchen/internal/web/navigation"
)

const (
	// PreviewPath serves the current preview image.
	PreviewPath = handler.RootPath + "preview.png"
)

var titles = map[studio.View]string{
	studio.ViewHome:     "Create",
	studio.ViewScan:     "Scan",
	studio.ViewHistory:  "History",
	studio.ViewSettings: "Settings",
}

// Service is the page handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	reg *studio.Registry
}

// Handler is the page handler.
var Handler = Service{}

// Init initializes the page handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, reg *studio.Registry) error {
	if app == nil || cfg == nil || reg == nil {
		return errors.New(handler.ErrNilACRFatalLogMsg)
	}

	s.cfg = cfg
	s.reg = reg

	app.Get(handler.RootPath, func(c *fiber.Ctx) error {
		return c.Redirect(Path(studio.ViewHome))
	})

	for view := range titles {
		app.Get(Path(view), s.show(view))
	}

	app.Get(PreviewPath, s.Preview)

	return nil
}

// Path returns the page path of view.
func Path(view studio.View) string {
	return handler.RootPath + string(view)
}

// Template returns the template name of view.
func Template(view studio.View) string {
	return string(view) + "/" + string(view)
}

func (s *Service) show(view studio.View) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := handler.Studio(c, s.reg)
		if err != nil {
			return err
		}

		if err = sess.Dispatch(studio.Navigate{View: view}); err != nil {
			return err
		}

		// a failed camera start sends the client back home
		st := sess.State()
		if st.View != view {
			return c.Redirect(Path(st.View), fiber.StatusSeeOther)
		}

		nav := navigation.NewContext(titles[view], string(view)).
			WithBadge(string(studio.ViewHistory), len(st.History))

		return c.Render(Template(view), fiber.Map{
			"Title":        s.cfg.Title,
			"Nav":          nav,
			"State":        st,
			"Notification": st.Notification(),
			"Kinds":        content.Kinds(),
			"Catalog":      design.Catalog(),
			"ScanFPS":      s.cfg.Studio.Scanner.FPS,
			"ScanWidth":    s.cfg.Studio.Scanner.RegionWidth,
			"ScanHeight":   s.cfg.Studio.Scanner.RegionHeight,
		}, handler.BaseLayout)
	}
}

// Preview serves the preview image of the client.
func (s *Service) Preview(c *fiber.Ctx) error {
	sess, err := handler.Studio(c, s.reg)
	if err != nil {
		return err
	}

	img, version := sess.Frame().Image()
	if img == nil {
		return fiber.NewError(fiber.StatusNotFound, render.ErrNoInstance.Error())
	}

	c.Set(fiber.HeaderCacheControl, "no-store")
	c.Set(fiber.HeaderETag, strconv.FormatUint(version, 10))
	c.Type(string(render.PNG))

	return c.Send(img)
}
