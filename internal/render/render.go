// Package render draws styled codes. It wraps the symbol encoder behind a
// small construct/update/append/download contract and keeps one live instance
// per preview surface.
package render

import (
	"errors"
	"fmt"
	"io"

	"github.com/qrkitchen/qr-kitchen/internal/design"
)

// Extension is an export file format.
type Extension string

const (
	// PNG exports a raster image.
	PNG Extension = "png"
	// SVG exports a vector image.
	SVG Extension = "svg"

	// ExportName is the base name of downloaded images.
	ExportName = "qr-kitchen-code"
)

var (
	// ErrUnsupportedExtension is returned for export formats other than png and svg.
	ErrUnsupportedExtension = errors.New("unsupported export extension")
	// ErrNoInstance is returned when exporting before anything was rendered.
	ErrNoInstance = errors.New("nothing rendered yet")
	// ErrEmptyData is returned when there is no payload to encode.
	ErrEmptyData = errors.New("no data to encode")
	// ErrCanvasTooSmall is returned when the margin leaves no room for the symbol.
	ErrCanvasTooSmall = errors.New("canvas too small for margin")
)

// ParseExtension validates an export extension.
func ParseExtension(s string) (Extension, error) {
	switch Extension(s) {
	case PNG, SVG:
		return Extension(s), nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnsupportedExtension, s)
}

// ContentType returns the MIME type of the extension.
func (e Extension) ContentType() string {
	if e == SVG {
		return "image/svg+xml"
	}

	return "image/png"
}

// FileName returns the download name for the extension.
func (e Extension) FileName() string {
	return ExportName + "." + string(e)
}

// Surface displays preview images.
type Surface interface {
	Show(png []byte) error
}

// Instance is a live rendering of one code.
type Instance interface {
	// Update replaces the options and redraws the attached surface.
	Update(opts design.Options) error
	// Append attaches the instance to a surface and draws onto it.
	Append(s Surface) error
	// Download writes the current rendering in the given format.
	Download(w io.Writer, ext Extension) error
	// Options returns the options currently in effect.
	Options() design.Options
}

// Library constructs instances.
type Library interface {
	New(opts design.Options) (Instance, error)
}
