package scan

import (
	"context"
	"image"
	"image/draw"
	"sync"
	"time"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
)

// Decode reads the first code in img.
func Decode(img image.Image) (string, error) {
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", err
	}

	result, err := qrcode.NewQRCodeReader().Decode(bmp, map[gozxing.DecodeHintType]interface{}{
		gozxing.DecodeHintType_TRY_HARDER: true,
	})
	if err != nil {
		return "", ErrNoCode
	}

	return result.GetText(), nil
}

// FrameFactory creates FrameSessions.
type FrameFactory struct {
	// Torch advertises a torch on the sessions it creates.
	Torch bool
}

// New implements Factory.
func (f FrameFactory) New() Session {
	return &FrameSession{torch: f.Torch, now: time.Now}
}

// FrameSession decodes frames that a client uploads.
type FrameSession struct {
	mu        sync.Mutex
	running   bool
	torch     bool
	torchOn   bool
	facing    Facing
	opts      Options
	last      time.Time
	onDecoded func(string)
	onError   func(error)
	stopCtx   func() bool
	now       func() time.Time
}

// Start implements Session. The session stops by itself when ctx is done.
func (s *FrameSession) Start(ctx context.Context, facing Facing, opts Options, onDecoded func(string), onError func(error)) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return ErrAlreadyRunning
	}

	s.running = true
	s.facing = facing
	s.opts = opts
	s.last = time.Time{}
	s.onDecoded = onDecoded
	s.onError = onError
	s.stopCtx = context.AfterFunc(ctx, func() { _ = s.Stop() })

	return nil
}

// Stop implements Session. Stopping a stopped session is a no-op.
func (s *FrameSession) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.halt()

	return nil
}

func (s *FrameSession) halt() {
	if !s.running {
		return
	}

	s.running = false
	s.torchOn = false

	if s.stopCtx != nil {
		s.stopCtx()
		s.stopCtx = nil
	}
}

// Running implements Session.
func (s *FrameSession) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.running
}

// Capabilities implements Session.
func (s *FrameSession) Capabilities() Capabilities {
	return Capabilities{Torch: s.torch}
}

// SetTorch implements Session.
func (s *FrameSession) SetTorch(on bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.torch {
		return ErrTorchUnsupported
	}

	if !s.running {
		return ErrNotRunning
	}

	s.torchOn = on

	return nil
}

// Feed decodes one frame. Frames arriving faster than the configured rate are
// dropped. The first decoded code stops the session before it is reported.
func (s *FrameSession) Feed(frame image.Image) error {
	s.mu.Lock()

	if !s.running {
		s.mu.Unlock()

		return ErrNotRunning
	}

	now := s.now()
	if s.opts.FPS > 0 && !s.last.IsZero() && now.Sub(s.last) < time.Second/time.Duration(s.opts.FPS) {
		s.mu.Unlock()

		return nil
	}

	s.last = now
	region := s.opts.Region
	s.mu.Unlock()

	text, err := Decode(crop(frame, region))

	s.mu.Lock()

	if err != nil {
		onError := s.onError
		s.mu.Unlock()

		if onError != nil {
			onError(err)
		}

		return nil
	}

	if !s.running {
		s.mu.Unlock()

		return nil
	}

	onDecoded := s.onDecoded
	s.halt()
	s.mu.Unlock()

	if onDecoded != nil {
		onDecoded(text)
	}

	return nil
}

type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

// crop cuts the centered region out of frames that are larger than it.
func crop(frame image.Image, region image.Point) image.Image {
	b := frame.Bounds()
	if region.X <= 0 || region.Y <= 0 || (b.Dx() <= region.X && b.Dy() <= region.Y) {
		return frame
	}

	w, h := min(region.X, b.Dx()), min(region.Y, b.Dy())
	x0 := b.Min.X + (b.Dx()-w)/2
	y0 := b.Min.Y + (b.Dy()-h)/2
	r := image.Rect(x0, y0, x0+w, y0+h)

	if si, ok := frame.(subImager); ok {
		return si.SubImage(r)
	}

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), frame, r.Min, draw.Src)

	return dst
}
