package design

const (
	// ImageMargin is the padding around an embedded logo in pixels.
	ImageMargin = 8
	// ImageSize is the share of the symbol covered by an embedded logo.
	ImageSize = 0.4
	// CrossOriginAnonymous is the only cross origin mode logos are loaded with.
	CrossOriginAnonymous = "anonymous"
)

// ColorStop is one stop of a gradient fill.
type ColorStop struct {
	Offset float64 `json:"offset"`
	Color  string  `json:"color"`
}

// GradientFill is a resolved gradient for the dot layer.
type GradientFill struct {
	Type       GradientType `json:"type"`
	Rotation   float64      `json:"rotation"`
	ColorStops []ColorStop  `json:"colorStops"`
}

// DotsFill is the resolved dot layer. Exactly one of Color and Gradient is set.
type DotsFill struct {
	Type     DotType       `json:"type"`
	Color    string        `json:"color,omitempty"`
	Gradient *GradientFill `json:"gradient,omitempty"`
}

// CornerSquareFill is the resolved finder frame layer.
type CornerSquareFill struct {
	Type  CornerSquareType `json:"type"`
	Color string           `json:"color"`
}

// CornerDotFill is the resolved finder center layer.
type CornerDotFill struct {
	Type  CornerDotType `json:"type"`
	Color string        `json:"color"`
}

// ImageOptions controls how an embedded logo is placed.
type ImageOptions struct {
	CrossOrigin string  `json:"crossOrigin"`
	Margin      int     `json:"margin"`
	ImageSize   float64 `json:"imageSize"`
}

// Options is everything a renderer needs to draw one code.
type Options struct {
	Width                int               `json:"width"`
	Height               int               `json:"height"`
	Data                 string            `json:"data"`
	Image                string            `json:"image,omitempty"`
	Margin               int               `json:"margin"`
	QROptions            QROptions         `json:"qrOptions"`
	ImageOptions         ImageOptions      `json:"imageOptions"`
	DotsOptions          DotsFill          `json:"dotsOptions"`
	BackgroundOptions    BackgroundOptions `json:"backgroundOptions"`
	CornersSquareOptions CornerSquareFill  `json:"cornersSquareOptions"`
	CornersDotOptions    CornerDotFill     `json:"cornersDotOptions"`
}

// Resolve turns a style into renderer options for the given payload and edge size.
//
// The body color is the first gradient stop when the gradient is enabled and
// the dot color otherwise. Corners inherit the body color unless custom eye
// colors are set, and they never receive a gradient.
func Resolve(s Style, data string, size int) Options {
	d := s.Design

	body := d.DotsOptions.Color
	if s.Gradient.Enabled {
		body = s.Gradient.C1
	}

	squareColor, dotColor := body, body
	if s.CustomEye {
		squareColor = d.CornersSquareOptions.Color
		dotColor = d.CornersDotOptions.Color
	}

	dots := DotsFill{Type: d.DotsOptions.Type}
	if s.Gradient.Enabled {
		dots.Gradient = &GradientFill{
			Type:     s.Gradient.Type,
			Rotation: 0,
			ColorStops: []ColorStop{
				{Offset: 0, Color: s.Gradient.C1},
				{Offset: 1, Color: s.Gradient.C2},
			},
		}
	} else {
		dots.Color = d.DotsOptions.Color
	}

	return Options{
		Width:     size,
		Height:    size,
		Data:      data,
		Image:     d.ImageData(),
		Margin:    d.Margin,
		QROptions: d.QROptions,
		ImageOptions: ImageOptions{
			CrossOrigin: CrossOriginAnonymous,
			Margin:      ImageMargin,
			ImageSize:   ImageSize,
		},
		DotsOptions:          dots,
		BackgroundOptions:    d.BackgroundOptions,
		CornersSquareOptions: CornerSquareFill{Type: d.CornersSquareOptions.Type, Color: squareColor},
		CornersDotOptions:    CornerDotFill{Type: d.CornersDotOptions.Type, Color: dotColor},
	}
}
