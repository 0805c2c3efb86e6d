package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/rs/zerolog/log"

	"github.com/qrkitchen/qr-kitchen/internal/design"
)

// rasterize paints the plan onto a new image.
func rasterize(p *plan, opts design.Options) (*image.NRGBA, error) {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))

	bg, err := parseColor(opts.BackgroundOptions.Color)
	if err != nil {
		return nil, err
	}

	draw.Draw(img, img.Bounds(), &image.Uniform{C: bg}, image.Point{}, draw.Src)

	paints := make(map[layer]paint, 3)

	if g := opts.DotsOptions.Gradient; g != nil {
		if paints[layerDots], err = gradientPaint(g, p); err != nil {
			return nil, err
		}
	} else {
		c, err := parseColor(opts.DotsOptions.Color)
		if err != nil {
			return nil, err
		}

		paints[layerDots] = solid(c)
	}

	for l, hex := range map[layer]string{
		layerCornerSquare: opts.CornersSquareOptions.Color,
		layerCornerDot:    opts.CornersDotOptions.Color,
	} {
		c, err := parseColor(hex)
		if err != nil {
			return nil, err
		}

		paints[l] = solid(c)
	}

	for _, s := range p.shapes {
		fill := paints[s.layer]
		b := s.outer

		x0, y0 := int(math.Floor(b.x)), int(math.Floor(b.y))
		x1, y1 := int(math.Ceil(b.x+b.w)), int(math.Ceil(b.y+b.h))

		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				cx, cy := float64(x)+0.5, float64(y)+0.5
				if !s.contains(cx, cy) {
					continue
				}

				blend(img, x, y, fill(cx, cy))
			}
		}
	}

	if p.logo != nil {
		if err := drawLogo(img, *p.logo, opts.Image); err != nil {
			log.Warn().Err(err).Msg("skipping logo in raster output")
		}
	}

	return img, nil
}

func blend(img *image.NRGBA, x, y int, c color.NRGBA) {
	if !(image.Point{X: x, Y: y}.In(img.Bounds())) {
		return
	}

	if c.A == math.MaxUint8 {
		img.SetNRGBA(x, y, c)

		return
	}

	draw.Draw(img, image.Rect(x, y, x+1, y+1), &image.Uniform{C: c}, image.Point{}, draw.Over)
}

func writePNG(w io.Writer, p *plan, opts design.Options) error {
	img, err := rasterize(p, opts)
	if err != nil {
		return err
	}

	return png.Encode(w, img)
}
