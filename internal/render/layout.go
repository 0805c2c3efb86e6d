package render

import (
	"math"

	"github.com/qrkitchen/qr-kitchen/internal/design"
)

// finderSize is the edge of a finder pattern in modules.
const finderSize = 7

type corner uint8

const (
	cornerTL corner = 1 << iota
	cornerTR
	cornerBR
	cornerBL

	cornerAll = cornerTL | cornerTR | cornerBR | cornerBL
)

type layer int

const (
	layerDots layer = iota
	layerCornerSquare
	layerCornerDot
)

// box is a rectangle whose masked corners are rounded with radius r.
type box struct {
	x, y, w, h float64
	r          float64
	corners    corner
}

func (b box) radius() float64 {
	return math.Min(b.r, math.Min(b.w, b.h)/2)
}

// contains tests the pixel center (px, py).
func (b box) contains(px, py float64) bool {
	if px < b.x || py < b.y || px > b.x+b.w || py > b.y+b.h {
		return false
	}

	r := b.radius()
	if r <= 0 || b.corners == 0 {
		return true
	}

	var cx, cy float64

	switch {
	case b.corners&cornerTL != 0 && px < b.x+r && py < b.y+r:
		cx, cy = b.x+r, b.y+r
	case b.corners&cornerTR != 0 && px > b.x+b.w-r && py < b.y+r:
		cx, cy = b.x+b.w-r, b.y+r
	case b.corners&cornerBR != 0 && px > b.x+b.w-r && py > b.y+b.h-r:
		cx, cy = b.x+b.w-r, b.y+b.h-r
	case b.corners&cornerBL != 0 && px < b.x+r && py > b.y+b.h-r:
		cx, cy = b.x+r, b.y+b.h-r
	default:
		return true
	}

	return math.Hypot(px-cx, py-cy) <= r
}

// shape is a filled box with an optional hole.
type shape struct {
	layer layer
	outer box
	hole  *box
}

func (s shape) contains(px, py float64) bool {
	if !s.outer.contains(px, py) {
		return false
	}

	return s.hole == nil || !s.hole.contains(px, py)
}

// plan is the geometry of one rendering, shared by the raster and vector emitters.
type plan struct {
	width, height int
	origin        float64
	extent        float64
	module        float64
	shapes        []shape
	logo          *box
}

// layout places every module of the bitmap onto a canvas of the given options.
func layout(bitmap [][]bool, opts design.Options) (*plan, error) {
	n := len(bitmap)
	if n == 0 {
		return nil, ErrEmptyData
	}

	edge := math.Min(float64(opts.Width), float64(opts.Height))

	inner := edge - 2*float64(opts.Margin)
	if inner <= 0 {
		return nil, ErrCanvasTooSmall
	}

	module := math.Floor(inner / float64(n))
	if module < 1 {
		module = inner / float64(n)
	}

	extent := module * float64(n)
	origin := math.Floor((edge - extent) / 2)

	p := &plan{
		width:  opts.Width,
		height: opts.Height,
		origin: origin,
		extent: extent,
		module: module,
	}

	var hidden *box

	if opts.Image != "" && opts.ImageOptions.ImageSize > 0 {
		side := extent * opts.ImageOptions.ImageSize
		p.logo = &box{x: origin + (extent-side)/2, y: origin + (extent-side)/2, w: side, h: side}

		m := float64(opts.ImageOptions.Margin)
		hidden = &box{x: p.logo.x - m, y: p.logo.y - m, w: side + 2*m, h: side + 2*m}
	}

	dark := func(row, col int) bool {
		if row < 0 || col < 0 || row >= n || col >= n {
			return false
		}

		return bitmap[row][col] && !isFinder(row, col, n)
	}

	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			if !dark(row, col) {
				continue
			}

			x, y := origin+float64(col)*module, origin+float64(row)*module
			if hidden != nil && overlaps(*hidden, x, y, module) {
				continue
			}

			p.shapes = append(p.shapes, shape{
				layer: layerDots,
				outer: dotBox(opts.DotsOptions.Type, x, y, module, neighbours{
					top:    dark(row-1, col),
					right:  dark(row, col+1),
					bottom: dark(row+1, col),
					left:   dark(row, col-1),
				}),
			})
		}
	}

	for _, at := range [][2]int{{0, 0}, {0, n - finderSize}, {n - finderSize, 0}} {
		x := origin + float64(at[1])*module
		y := origin + float64(at[0])*module
		p.shapes = append(p.shapes, cornerSquare(opts.CornersSquareOptions.Type, x, y, module))
		p.shapes = append(p.shapes, cornerDot(opts.CornersDotOptions.Type, x+2*module, y+2*module, module))
	}

	return p, nil
}

func isFinder(row, col, n int) bool {
	top, left := row < finderSize, col < finderSize
	bottom, right := row >= n-finderSize, col >= n-finderSize

	return (top && left) || (top && right) || (bottom && left)
}

func overlaps(b box, x, y, size float64) bool {
	return x < b.x+b.w && x+size > b.x && y < b.y+b.h && y+size > b.y
}

type neighbours struct {
	top, right, bottom, left bool
}

// open returns the corners whose two adjacent sides have no dark neighbour.
func (n neighbours) open() corner {
	var c corner

	if !n.top && !n.left {
		c |= cornerTL
	}

	if !n.top && !n.right {
		c |= cornerTR
	}

	if !n.bottom && !n.right {
		c |= cornerBR
	}

	if !n.bottom && !n.left {
		c |= cornerBL
	}

	return c
}

func dotBox(t design.DotType, x, y, s float64, n neighbours) box {
	b := box{x: x, y: y, w: s, h: s}

	switch t {
	case design.DotDots:
		b.r, b.corners = s/2, cornerAll
	case design.DotRounded:
		b.r, b.corners = s/4, n.open()
	case design.DotExtraRounded:
		b.r, b.corners = s/2, n.open()
	case design.DotClassy:
		b.r, b.corners = s/2, n.open()&(cornerTL|cornerBR)
	case design.DotClassyRounded:
		b.r, b.corners = s/2, cornerTL|cornerBR
	case design.DotSquare:
	}

	return b
}

func cornerSquare(t design.CornerSquareType, x, y, s float64) shape {
	outer := box{x: x, y: y, w: 7 * s, h: 7 * s, corners: cornerAll}
	hole := box{x: x + s, y: y + s, w: 5 * s, h: 5 * s, corners: cornerAll}

	switch t {
	case design.CornerSquareDot:
		outer.r, hole.r = 3.5*s, 2.5*s
	case design.CornerSquareExtraRounded:
		outer.r, hole.r = 2.5*s, 1.5*s
	case design.CornerSquareSquare:
	}

	return shape{layer: layerCornerSquare, outer: outer, hole: &hole}
}

func cornerDot(t design.CornerDotType, x, y, s float64) shape {
	b := box{x: x, y: y, w: 3 * s, h: 3 * s, corners: cornerAll}
	if t == design.CornerDotDot {
		b.r = 1.5 * s
	}

	return shape{layer: layerCornerDot, outer: b}
}
