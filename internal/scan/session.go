package scan

import (
	"context"
	"errors"
	"image"
)

// Facing selects the camera.
type Facing string

const (
	// FacingEnvironment is the rear camera.
	FacingEnvironment Facing = "environment"
	// FacingUser is the front camera.
	FacingUser Facing = "user"
)

var (
	// ErrAlreadyRunning is returned when starting a running session.
	ErrAlreadyRunning = errors.New("scan session already running")
	// ErrNotRunning is returned when feeding or configuring a stopped session.
	ErrNotRunning = errors.New("scan session not running")
	// ErrTorchUnsupported is returned when the device has no torch.
	ErrTorchUnsupported = errors.New("torch not supported")
	// ErrNoCode is returned when a frame holds no readable code.
	ErrNoCode = errors.New("no code found")
)

// Options tunes a session.
type Options struct {
	// FPS caps how many frames per second are decoded.
	FPS int
	// Region is the centered scan box; frames larger than it are cropped.
	Region image.Point
}

// Capabilities of the running device.
type Capabilities struct {
	Torch bool `json:"torch"`
}

// Session is one camera acquisition. It decodes until the first code is
// found, reports it once and stops.
type Session interface {
	Start(ctx context.Context, facing Facing, opts Options, onDecoded func(text string), onError func(err error)) error
	Stop() error
	Running() bool
	Capabilities() Capabilities
	SetTorch(on bool) error
}

// FrameSink accepts frames pushed by a client.
type FrameSink interface {
	Feed(frame image.Image) error
}

// Factory creates sessions.
type Factory interface {
	New() Session
}
