// Package daemon wires configuration, database, storage and the web service
// into the running server.
package daemon

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/qrkitchen/qr-kitchen/internal/config"
	"github.com/qrkitchen/qr-kitchen/internal/render"
	"github.com/qrkitchen/qr-kitchen/internal/scan"
	"github.com/qrkitchen/qr-kitchen/internal/studio"
	"github.com/qrkitchen/qr-kitchen/internal/web"
)

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	webService *web.Service
	registry   *studio.Registry
	storage    fiber.Storage
}

// sweepsPerIdleTimeout is how often per idle timeout the registry looks for
// idle sessions.
const sweepsPerIdleTimeout = 4

// Start starts the Daemon's web service and blocks until it stopped.
func (d *Daemon) Start() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go d.webService.WaitShutdown()
	go d.registry.Run(ctx, max(d.cfg.Studio.IdleTimeout/sweepsPerIdleTimeout, time.Second))

	err := d.webService.Start(fmt.Sprintf(":%d", d.cfg.Webserver.Port))

	if cerr := d.storage.Close(); cerr != nil {
		log.Error().Err(cerr).Msg("failed to close storage")
	}

	return err
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) (*Daemon, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	db, err := OpenDB(&cfg.DB)
	if err != nil {
		return nil, err
	}

	storage, err := OpenStorage(cfg, db)
	if err != nil {
		return nil, err
	}

	reg := studio.NewRegistry(StudioConfig(&cfg.Studio), studio.Deps{
		Library: render.Styled{},
		Scanner: scan.FrameFactory{Torch: cfg.Studio.Scanner.Torch},
		Storage: storage,
	})

	log.Info().
		Str("engine", cfg.DB.GormEngine).
		Str("store", cfg.Store.Backend).
		Int("port", cfg.Webserver.Port).
		Msg("daemon ready")

	return &Daemon{
		cfg:        cfg,
		webService: web.New(cfg, reg, storage),
		registry:   reg,
		storage:    storage,
	}, nil
}

// StudioConfig maps the [Studio] section onto the session settings.
func StudioConfig(c *config.Studio) studio.Config {
	return studio.Config{
		PreviewSize:     c.PreviewSize,
		ExportSize:      c.ExportSize,
		HistoryLimit:    c.HistoryLimit,
		HistoryKey:      c.HistoryKey,
		SessionKey:      c.SessionKey,
		NotificationTTL: c.NotificationTTL,
		IdleTTL:         c.IdleTimeout,
		Facing:          scan.Facing(c.Scanner.Facing),
		Scan: scan.Options{
			FPS:    c.Scanner.FPS,
			Region: image.Pt(c.Scanner.RegionWidth, c.Scanner.RegionHeight),
		},
	}
}
