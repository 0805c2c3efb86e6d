package render

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/qrkitchen/qr-kitchen/internal/design"
)

const dotsGradientID = "dots-gradient"

func num(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

func attr(s string) string {
	var buf bytes.Buffer

	_ = xml.EscapeText(&buf, []byte(s))

	return buf.String()
}

// writePath appends the outline of b as a closed subpath.
func writePath(sb *strings.Builder, b box) {
	r := b.radius()

	rad := func(c corner) float64 {
		if b.corners&c != 0 {
			return r
		}

		return 0
	}

	tl, tr, br, bl := rad(cornerTL), rad(cornerTR), rad(cornerBR), rad(cornerBL)
	arc := func(radius, x, y float64) {
		if radius > 0 {
			fmt.Fprintf(sb, "A%s %s 0 0 1 %s %s", num(radius), num(radius), num(x), num(y))
		}
	}

	fmt.Fprintf(sb, "M%s %s", num(b.x+tl), num(b.y))
	fmt.Fprintf(sb, "H%s", num(b.x+b.w-tr))
	arc(tr, b.x+b.w, b.y+tr)
	fmt.Fprintf(sb, "V%s", num(b.y+b.h-br))
	arc(br, b.x+b.w-br, b.y+b.h)
	fmt.Fprintf(sb, "H%s", num(b.x+bl))
	arc(bl, b.x, b.y+b.h-bl)
	fmt.Fprintf(sb, "V%s", num(b.y+tl))
	arc(tl, b.x+tl, b.y)
	sb.WriteString("Z")
}

func layerPath(p *plan, l layer) string {
	var sb strings.Builder

	for _, s := range p.shapes {
		if s.layer != l {
			continue
		}

		writePath(&sb, s.outer)

		if s.hole != nil {
			writePath(&sb, *s.hole)
		}
	}

	return sb.String()
}

func writeGradient(w io.Writer, g *design.GradientFill, p *plan) {
	var stops strings.Builder
	for _, s := range g.ColorStops {
		fmt.Fprintf(&stops, `<stop offset="%s" stop-color="%s"/>`, num(s.Offset), attr(s.Color))
	}

	if g.Type == design.GradientRadial {
		c := p.origin + p.extent/2
		fmt.Fprintf(w, `<radialGradient id="%s" gradientUnits="userSpaceOnUse" cx="%s" cy="%s" r="%s">%s</radialGradient>`,
			dotsGradientID, num(c), num(c), num(p.extent/2), stops.String())

		return
	}

	fmt.Fprintf(w, `<linearGradient id="%s" gradientUnits="userSpaceOnUse" x1="%s" y1="%s" x2="%s" y2="%s">%s</linearGradient>`,
		dotsGradientID, num(p.origin), num(p.origin), num(p.origin+p.extent), num(p.origin), stops.String())
}

// writeSVG emits the plan as a standalone SVG document.
func writeSVG(w io.Writer, p *plan, opts design.Options) error {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" width="%d" height="%d" viewBox="0 0 %d %d">`,
		p.width, p.height, p.width, p.height)

	dotsFill := attr(opts.DotsOptions.Color)
	if g := opts.DotsOptions.Gradient; g != nil {
		buf.WriteString("<defs>")
		writeGradient(&buf, g, p)
		buf.WriteString("</defs>")

		dotsFill = "url(#" + dotsGradientID + ")"
	}

	fmt.Fprintf(&buf, `<rect x="0" y="0" width="%d" height="%d" fill="%s"/>`,
		p.width, p.height, attr(opts.BackgroundOptions.Color))
	fmt.Fprintf(&buf, `<path d="%s" fill="%s"/>`, layerPath(p, layerDots), dotsFill)
	fmt.Fprintf(&buf, `<path d="%s" fill="%s" fill-rule="evenodd"/>`,
		layerPath(p, layerCornerSquare), attr(opts.CornersSquareOptions.Color))
	fmt.Fprintf(&buf, `<path d="%s" fill="%s"/>`, layerPath(p, layerCornerDot), attr(opts.CornersDotOptions.Color))

	if p.logo != nil {
		fmt.Fprintf(&buf, `<image href="%s" xlink:href="%s" x="%s" y="%s" width="%s" height="%s" preserveAspectRatio="xMidYMid meet" crossorigin="%s"/>`,
			attr(opts.Image), attr(opts.Image), num(p.logo.x), num(p.logo.y), num(p.logo.w), num(p.logo.h),
			attr(opts.ImageOptions.CrossOrigin))
	}

	buf.WriteString("</svg>")

	_, err := w.Write(buf.Bytes())

	return err
}
