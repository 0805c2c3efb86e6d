// Package design holds the visual styling model of a code: dot and corner
// shapes, colors, gradient overlay, embedded logo and the template presets
// that bulk-apply a subset of those fields.
package design

// DotType is the shape of the data modules.
type DotType string

// Dot shapes.
const (
	DotSquare        DotType = "square"
	DotDots          DotType = "dots"
	DotRounded       DotType = "rounded"
	DotExtraRounded  DotType = "extra-rounded"
	DotClassy        DotType = "classy"
	DotClassyRounded DotType = "classy-rounded"
)

// CornerSquareType is the shape of the three finder frames.
type CornerSquareType string

// Corner square shapes.
const (
	CornerSquareSquare       CornerSquareType = "square"
	CornerSquareDot          CornerSquareType = "dot"
	CornerSquareExtraRounded CornerSquareType = "extra-rounded"
)

// CornerDotType is the shape of the finder centers.
type CornerDotType string

// Corner dot shapes.
const (
	CornerDotSquare CornerDotType = "square"
	CornerDotDot    CornerDotType = "dot"
)

// Level is the error correction level.
type Level string

// Error correction levels, roughly 7, 15, 25 and 30 percent recovery.
const (
	LevelL Level = "L"
	LevelM Level = "M"
	LevelQ Level = "Q"
	LevelH Level = "H"
)

// DotsOptions styles the data modules.
type DotsOptions struct {
	Type  DotType `json:"type"  validate:"required,oneof=square dots rounded extra-rounded classy classy-rounded"`
	Color string  `json:"color" validate:"required,hexcolor"`
}

// BackgroundOptions styles the canvas.
type BackgroundOptions struct {
	Color string `json:"color" validate:"required,hexcolor"`
}

// CornersSquareOptions styles the finder frames.
type CornersSquareOptions struct {
	Type  CornerSquareType `json:"type"  validate:"required,oneof=square dot extra-rounded"`
	Color string           `json:"color" validate:"required,hexcolor"`
}

// CornersDotOptions styles the finder centers.
type CornersDotOptions struct {
	Type  CornerDotType `json:"type"  validate:"required,oneof=square dot"`
	Color string        `json:"color" validate:"required,hexcolor"`
}

// QROptions carries symbol level settings.
type QROptions struct {
	ErrorCorrectionLevel Level `json:"errorCorrectionLevel" validate:"required,oneof=L M Q H"`
}

// Design is the full set of visual styling parameters. Width and Height are
// stored for file compatibility only; preview and export sizes come from the
// renderer configuration.
type Design struct {
	Width                int                  `json:"width"  validate:"gte=0"`
	Height               int                  `json:"height" validate:"gte=0"`
	Margin               int                  `json:"margin" validate:"gte=0,lte=500"`
	Image                *string              `json:"image"  validate:"omitempty,datauri"`
	DotsOptions          DotsOptions          `json:"dotsOptions"`
	BackgroundOptions    BackgroundOptions    `json:"backgroundOptions"`
	CornersSquareOptions CornersSquareOptions `json:"cornersSquareOptions"`
	CornersDotOptions    CornersDotOptions    `json:"cornersDotOptions"`
	QROptions            QROptions            `json:"qrOptions"`
}

// Default returns the design a fresh studio starts with.
func Default() Design {
	return Design{
		Width:                1000,
		Height:               1000,
		Margin:               20,
		DotsOptions:          DotsOptions{Type: DotSquare, Color: "#000000"},
		BackgroundOptions:    BackgroundOptions{Color: "#ffffff"},
		CornersSquareOptions: CornersSquareOptions{Type: CornerSquareSquare, Color: "#000000"},
		CornersDotOptions:    CornersDotOptions{Type: CornerDotSquare, Color: "#000000"},
		QROptions:            QROptions{ErrorCorrectionLevel: LevelH},
	}
}

// HasImage reports whether a logo is embedded.
func (d Design) HasImage() bool {
	return d.Image != nil && *d.Image != ""
}

// ImageData returns the embedded logo or the empty string.
func (d Design) ImageData() string {
	if d.Image == nil {
		return ""
	}

	return *d.Image
}

// Clone returns a deep copy; the image pointer is not shared.
func (d Design) Clone() Design {
	if d.Image != nil {
		img := *d.Image
		d.Image = &img
	}

	return d
}

// GradientType is the geometry of the dot gradient.
type GradientType string

// Gradient geometries.
const (
	GradientLinear GradientType = "linear"
	GradientRadial GradientType = "radial"
)

// Gradient overlays the dot color with a two-stop gradient when enabled.
type Gradient struct {
	Enabled bool         `json:"enabled"`
	Type    GradientType `json:"type" validate:"required,oneof=linear radial"`
	C1      string       `json:"c1"   validate:"required,hexcolor"`
	C2      string       `json:"c2"   validate:"required,hexcolor"`
}

// DefaultGradient returns the gradient a fresh studio starts with.
func DefaultGradient() Gradient {
	return Gradient{
		Enabled: false,
		Type:    GradientLinear,
		C1:      "#4F46E5",
		C2:      "#EC4899",
	}
}

// Style bundles everything that decides how a code looks.
type Style struct {
	Design    Design   `json:"design"`
	Gradient  Gradient `json:"gradient"`
	CustomEye bool     `json:"customEyeColor"`
}

// DefaultStyle returns the default design and gradient without custom eye colors.
func DefaultStyle() Style {
	return Style{
		Design:   Default(),
		Gradient: DefaultGradient(),
	}
}
