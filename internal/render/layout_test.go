package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qrkitchen/qr-kitchen/internal/design"
)

func TestBoxContains(t *testing.T) {
	square := box{x: 0, y: 0, w: 10, h: 10}
	circle := box{x: 0, y: 0, w: 10, h: 10, r: 5, corners: cornerAll}

	tests := []struct {
		name   string
		b      box
		x, y   float64
		inside bool
	}{
		{"square center", square, 5, 5, true},
		{"square corner", square, 0.5, 0.5, true},
		{"square outside", square, 11, 5, false},
		{"circle center", circle, 5, 5, true},
		{"circle corner", circle, 0.5, 0.5, false},
		{"circle edge midpoint", circle, 5, 0.5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.inside, tt.b.contains(tt.x, tt.y))
		})
	}
}

func TestNeighboursOpen(t *testing.T) {
	assert.Equal(t, cornerAll, neighbours{}.open())
	assert.Equal(t, cornerBR|cornerBL, neighbours{top: true}.open())
	assert.Equal(t, corner(0), neighbours{top: true, bottom: true}.open()&(cornerTL|cornerBR))
}

func TestLayout(t *testing.T) {
	bitmap, err := encode("https://example.com", design.LevelH)
	require.NoError(t, err)

	opts := design.Resolve(design.DefaultStyle(), "https://example.com", 300)

	p, err := layout(bitmap, opts)
	require.NoError(t, err)

	n := float64(len(bitmap))
	assert.Equal(t, float64(int((300-40)/n)), p.module)
	assert.Equal(t, p.module*n, p.extent)
	assert.GreaterOrEqual(t, p.origin, 20.0)
	assert.Nil(t, p.logo)

	counts := map[layer]int{}
	for _, s := range p.shapes {
		counts[s.layer]++
	}

	assert.Equal(t, 3, counts[layerCornerSquare])
	assert.Equal(t, 3, counts[layerCornerDot])
	assert.Positive(t, counts[layerDots])
}

func TestLayoutLogoHidesDots(t *testing.T) {
	bitmap, err := encode("https://example.com", design.LevelH)
	require.NoError(t, err)

	opts := design.Resolve(design.DefaultStyle(), "https://example.com", 300)
	plain, err := layout(bitmap, opts)
	require.NoError(t, err)

	opts.Image = "data:image/png;base64,AAAA"
	withLogo, err := layout(bitmap, opts)
	require.NoError(t, err)

	require.NotNil(t, withLogo.logo)
	assert.InDelta(t, withLogo.extent*design.ImageSize, withLogo.logo.w, 0.001)
	assert.Less(t, len(withLogo.shapes), len(plain.shapes))
}

func TestLayoutMarginTooLarge(t *testing.T) {
	bitmap, err := encode("x", design.LevelL)
	require.NoError(t, err)

	opts := design.Resolve(design.DefaultStyle(), "x", 100)
	opts.Margin = 50

	_, err = layout(bitmap, opts)
	assert.ErrorIs(t, err, ErrCanvasTooSmall)
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    [4]uint8
		wantErr bool
	}{
		{"#000000", [4]uint8{0, 0, 0, 255}, false},
		{"#fff", [4]uint8{255, 255, 255, 255}, false},
		{"#4F46E5", [4]uint8{0x4f, 0x46, 0xe5, 255}, false},
		{"#ff000080", [4]uint8{255, 0, 0, 0x80}, false},
		{"red", [4]uint8{}, true},
		{"#12345", [4]uint8{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := parseColor(tt.in)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, [4]uint8{c.R, c.G, c.B, c.A})
		})
	}
}
