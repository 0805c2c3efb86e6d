package design

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name            string
		mutate          func(s *Style)
		wantDotColor    string
		wantGradient    bool
		wantSquareColor string
		wantDotEyeColor string
	}{
		{
			name:            "flat colors inherit body",
			mutate:          func(s *Style) { s.Design.DotsOptions.Color = "#111111" },
			wantDotColor:    "#111111",
			wantSquareColor: "#111111",
			wantDotEyeColor: "#111111",
		},
		{
			name: "gradient body color is first stop",
			mutate: func(s *Style) {
				s.Design.DotsOptions.Color = "#111111"
				s.Gradient = Gradient{Enabled: true, Type: GradientRadial, C1: "#aaaaaa", C2: "#bbbbbb"}
			},
			wantGradient:    true,
			wantSquareColor: "#aaaaaa",
			wantDotEyeColor: "#aaaaaa",
		},
		{
			name: "custom eye overrides gradient body",
			mutate: func(s *Style) {
				s.Gradient = Gradient{Enabled: true, Type: GradientLinear, C1: "#aaaaaa", C2: "#bbbbbb"}
				s.CustomEye = true
				s.Design.CornersSquareOptions.Color = "#ff0000"
				s.Design.CornersDotOptions.Color = "#00ff00"
			},
			wantGradient:    true,
			wantSquareColor: "#ff0000",
			wantDotEyeColor: "#00ff00",
		},
		{
			name: "corner colors ignored without custom eye",
			mutate: func(s *Style) {
				s.Design.DotsOptions.Color = "#222222"
				s.Design.CornersSquareOptions.Color = "#ff0000"
				s.Design.CornersDotOptions.Color = "#00ff00"
			},
			wantDotColor:    "#222222",
			wantSquareColor: "#222222",
			wantDotEyeColor: "#222222",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultStyle()
			tt.mutate(&s)

			opts := Resolve(s, "payload", 300)

			assert.Equal(t, 300, opts.Width)
			assert.Equal(t, 300, opts.Height)
			assert.Equal(t, "payload", opts.Data)
			assert.Equal(t, tt.wantSquareColor, opts.CornersSquareOptions.Color)
			assert.Equal(t, tt.wantDotEyeColor, opts.CornersDotOptions.Color)

			if tt.wantGradient {
				require.NotNil(t, opts.DotsOptions.Gradient)
				assert.Empty(t, opts.DotsOptions.Color)
				assert.Equal(t, s.Gradient.Type, opts.DotsOptions.Gradient.Type)
				assert.Zero(t, opts.DotsOptions.Gradient.Rotation)
				assert.Equal(t, []ColorStop{
					{Offset: 0, Color: s.Gradient.C1},
					{Offset: 1, Color: s.Gradient.C2},
				}, opts.DotsOptions.Gradient.ColorStops)
			} else {
				assert.Nil(t, opts.DotsOptions.Gradient)
				assert.Equal(t, tt.wantDotColor, opts.DotsOptions.Color)
			}
		})
	}
}

func TestResolve_ImageAndFixedImageOptions(t *testing.T) {
	s := DefaultStyle()
	logo := "data:image/png;base64,AAAA"
	s.Design.Image = &logo

	opts := Resolve(s, "x", 2000)

	assert.Equal(t, logo, opts.Image)
	assert.Equal(t, ImageOptions{CrossOrigin: "anonymous", Margin: 8, ImageSize: 0.4}, opts.ImageOptions)
	assert.Equal(t, LevelH, opts.QROptions.ErrorCorrectionLevel)
	assert.Equal(t, 20, opts.Margin)
}

func TestDesign_Clone(t *testing.T) {
	logo := "data:image/png;base64,AAAA"
	d := Default()
	d.Image = &logo

	c := d.Clone()
	*c.Image = "changed"

	assert.Equal(t, "data:image/png;base64,AAAA", d.ImageData())
	assert.True(t, d.HasImage())
	assert.False(t, Default().HasImage())
}
