package render

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/qrkitchen/qr-kitchen/internal/design"
	"github.com/qrkitchen/qr-kitchen/internal/metrics"
)

// Styled is the built-in library. It encodes with go-qrcode and draws the
// modules itself so dot shapes, corner styles, gradients and logos apply.
type Styled struct{}

// New implements Library.
func (Styled) New(opts design.Options) (Instance, error) {
	s := &styledInstance{}
	if err := s.set(opts); err != nil {
		return nil, err
	}

	return s, nil
}

type styledInstance struct {
	mu      sync.Mutex
	opts    design.Options
	bitmap  [][]bool
	surface Surface
}

func recoveryLevel(l design.Level) qrcode.RecoveryLevel {
	switch l {
	case design.LevelL:
		return qrcode.Low
	case design.LevelM:
		return qrcode.Medium
	case design.LevelQ:
		return qrcode.High
	default:
		return qrcode.Highest
	}
}

// encode builds the module matrix without quiet zone.
func encode(data string, level design.Level) ([][]bool, error) {
	if data == "" {
		return nil, ErrEmptyData
	}

	q, err := qrcode.New(data, recoveryLevel(level))
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}

	q.DisableBorder = true

	return q.Bitmap(), nil
}

// set swaps in new options, re-encoding only when the payload changed.
// On error the previous options stay in effect.
func (s *styledInstance) set(opts design.Options) error {
	bitmap := s.bitmap
	if bitmap == nil || opts.Data != s.opts.Data || opts.QROptions.ErrorCorrectionLevel != s.opts.QROptions.ErrorCorrectionLevel {
		var err error
		if bitmap, err = encode(opts.Data, opts.QROptions.ErrorCorrectionLevel); err != nil {
			return err
		}
	}

	if _, err := layout(bitmap, opts); err != nil {
		return err
	}

	s.opts, s.bitmap = opts, bitmap

	return nil
}

func (s *styledInstance) show() error {
	if s.surface == nil {
		return nil
	}

	var buf bytes.Buffer
	if err := s.write(&buf, PNG); err != nil {
		metrics.RenderFailures.WithLabelValues("preview").Inc()

		return err
	}

	metrics.Renders.WithLabelValues("preview").Inc()

	return s.surface.Show(buf.Bytes())
}

func (s *styledInstance) write(w io.Writer, ext Extension) error {
	p, err := layout(s.bitmap, s.opts)
	if err != nil {
		return err
	}

	if ext == SVG {
		return writeSVG(w, p, s.opts)
	}

	return writePNG(w, p, s.opts)
}

// Update implements Instance.
func (s *styledInstance) Update(opts design.Options) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.set(opts); err != nil {
		return err
	}

	return s.show()
}

// Append implements Instance.
func (s *styledInstance) Append(surface Surface) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.surface = surface

	return s.show()
}

// Download implements Instance.
func (s *styledInstance) Download(w io.Writer, ext Extension) error {
	if _, err := ParseExtension(string(ext)); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.write(w, ext); err != nil {
		metrics.RenderFailures.WithLabelValues(string(ext)).Inc()

		return err
	}

	metrics.Renders.WithLabelValues(string(ext)).Inc()

	return nil
}

// Options implements Instance.
func (s *styledInstance) Options() design.Options {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.opts
}
