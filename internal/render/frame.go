package render

import "sync"

// Frame is an in-memory surface holding the latest preview image.
type Frame struct {
	mu      sync.RWMutex
	image   []byte
	version uint64
}

// Show stores the image and bumps the version.
func (f *Frame) Show(png []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.image = png
	f.version++

	return nil
}

// Image returns the latest image and its version; version 0 means nothing was shown.
func (f *Frame) Image() ([]byte, uint64) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return f.image, f.version
}
