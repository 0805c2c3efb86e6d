package render

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/qrkitchen/qr-kitchen/internal/design"
)

// parseColor reads #rgb, #rgba, #rrggbb and #rrggbbaa.
func parseColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(s, "#")

	if len(hex) == 3 || len(hex) == 4 {
		var b strings.Builder
		for _, r := range hex {
			b.WriteRune(r)
			b.WriteRune(r)
		}

		hex = b.String()
	}

	alpha := uint8(math.MaxUint8)

	switch len(hex) {
	case 6:
	case 8:
		a, err := strconv.ParseUint(hex[6:], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
		}

		alpha = uint8(a)
		hex = hex[:6]
	default:
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}

	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}

	r, g, b := c.RGB255()

	return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}

// paint yields the color of a layer at a pixel.
type paint func(x, y float64) color.NRGBA

func solid(c color.NRGBA) paint {
	return func(_, _ float64) color.NRGBA { return c }
}

// gradientPaint interpolates between the first and last stop. Linear runs
// left to right across the symbol, radial runs from the symbol center outwards.
func gradientPaint(g *design.GradientFill, p *plan) (paint, error) {
	if len(g.ColorStops) == 0 {
		return nil, fmt.Errorf("gradient without color stops")
	}

	from, err := parseColor(g.ColorStops[0].Color)
	if err != nil {
		return nil, err
	}

	to, err := parseColor(g.ColorStops[len(g.ColorStops)-1].Color)
	if err != nil {
		return nil, err
	}

	c1 := colorful.Color{R: float64(from.R) / 255, G: float64(from.G) / 255, B: float64(from.B) / 255}
	c2 := colorful.Color{R: float64(to.R) / 255, G: float64(to.G) / 255, B: float64(to.B) / 255}

	cx, cy := p.origin+p.extent/2, p.origin+p.extent/2

	return func(x, y float64) color.NRGBA {
		var t float64

		if g.Type == design.GradientRadial {
			t = math.Hypot(x-cx, y-cy) / (p.extent / 2)
		} else {
			t = (x - p.origin) / p.extent
		}

		t = math.Max(0, math.Min(1, t))
		r, gg, b := c1.BlendRgb(c2, t).Clamped().RGB255()
		a := float64(from.A) + (float64(to.A)-float64(from.A))*t

		return color.NRGBA{R: r, G: gg, B: b, A: uint8(math.Round(a))}
	}, nil
}
