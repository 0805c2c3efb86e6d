package render

import (
	"io"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/qrkitchen/qr-kitchen/internal/design"
)

// Preview keeps exactly one live instance for a surface. The first Render
// constructs and attaches it, later calls update it in place.
type Preview struct {
	mu          sync.Mutex
	lib         Library
	surface     Surface
	instance    Instance
	previewSize int
	exportSize  int
}

// NewPreview creates a preview adapter drawing onto surface.
func NewPreview(lib Library, surface Surface, previewSize, exportSize int) *Preview {
	return &Preview{
		lib:         lib,
		surface:     surface,
		previewSize: previewSize,
		exportSize:  exportSize,
	}
}

// Render shows opts on the surface at preview size.
func (p *Preview) Render(opts design.Options) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	opts.Width, opts.Height = p.previewSize, p.previewSize

	if p.instance != nil {
		return p.instance.Update(opts)
	}

	instance, err := p.lib.New(opts)
	if err != nil {
		return err
	}

	if err = instance.Append(p.surface); err != nil {
		return err
	}

	p.instance = instance

	return nil
}

// Export switches the live instance to export size, writes the file and
// switches back to preview size, also when writing failed.
func (p *Preview) Export(w io.Writer, ext Extension) error {
	if _, err := ParseExtension(string(ext)); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.instance == nil {
		return ErrNoInstance
	}

	opts := p.instance.Options()
	opts.Width, opts.Height = p.exportSize, p.exportSize

	if err := p.instance.Update(opts); err != nil {
		return err
	}

	downloadErr := p.instance.Download(w, ext)

	opts.Width, opts.Height = p.previewSize, p.previewSize
	if err := p.instance.Update(opts); err != nil {
		log.Error().Err(err).Msg("failed to restore preview size after export")

		if downloadErr == nil {
			return err
		}
	}

	return downloadErr
}

// Rendered reports whether an instance exists.
func (p *Preview) Rendered() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.instance != nil
}
