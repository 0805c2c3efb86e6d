package render

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/makiuchi-d/gozxing"
	zxqrcode "github.com/makiuchi-d/gozxing/qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qrkitchen/qr-kitchen/internal/design"
)

func decodePNG(t *testing.T, raw []byte) string {
	t.Helper()

	img, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)

	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	require.NoError(t, err)

	result, err := zxqrcode.NewQRCodeReader().Decode(bmp, nil)
	require.NoError(t, err)

	return result.GetText()
}

func TestStyledPNGRoundTrip(t *testing.T) {
	const data = "WIFI:T:WPA;S:Kitchen;P:secret;;"

	opts := design.Resolve(design.DefaultStyle(), data, 400)
	opts.Margin = 40

	instance, err := Styled{}.New(opts)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, instance.Download(&buf, PNG))

	assert.Equal(t, data, decodePNG(t, buf.Bytes()))
}

func TestStyledAppendShowsPreview(t *testing.T) {
	instance, err := Styled{}.New(design.Resolve(design.DefaultStyle(), "hello", 300))
	require.NoError(t, err)

	var frame Frame
	require.NoError(t, instance.Append(&frame))

	img, version := frame.Image()
	assert.Equal(t, uint64(1), version)

	decoded, err := png.Decode(bytes.NewReader(img))
	require.NoError(t, err)
	assert.Equal(t, 300, decoded.Bounds().Dx())

	opts := instance.Options()
	opts.Data = "hello again"
	require.NoError(t, instance.Update(opts))

	_, version = frame.Image()
	assert.Equal(t, uint64(2), version)
}

func TestStyledSVG(t *testing.T) {
	style := design.DefaultStyle()
	style.Gradient.Enabled = true
	style.Design.DotsOptions.Type = design.DotDots
	logo := "data:image/png;base64,AAAA"
	style.Design.Image = &logo

	instance, err := Styled{}.New(design.Resolve(style, "https://example.com", 300))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, instance.Download(&buf, SVG))

	svg := buf.String()
	assert.True(t, strings.HasPrefix(svg, "<svg "))
	assert.Contains(t, svg, `<linearGradient id="dots-gradient"`)
	assert.Contains(t, svg, `stop-color="#4F46E5"`)
	assert.Contains(t, svg, `fill="url(#dots-gradient)"`)
	assert.Contains(t, svg, `href="data:image/png;base64,AAAA"`)
	assert.Contains(t, svg, `crossorigin="anonymous"`)
}

func TestStyledRadialGradient(t *testing.T) {
	style := design.DefaultStyle()
	style.Gradient.Enabled = true
	style.Gradient.Type = design.GradientRadial

	instance, err := Styled{}.New(design.Resolve(style, "x", 300))
	require.NoError(t, err)

	var svg, raster bytes.Buffer
	require.NoError(t, instance.Download(&svg, SVG))
	require.NoError(t, instance.Download(&raster, PNG))

	assert.Contains(t, svg.String(), "<radialGradient")
	assert.NotZero(t, raster.Len())
}

func TestStyledErrors(t *testing.T) {
	_, err := Styled{}.New(design.Resolve(design.DefaultStyle(), "", 300))
	assert.ErrorIs(t, err, ErrEmptyData)

	instance, err := Styled{}.New(design.Resolve(design.DefaultStyle(), "ok", 300))
	require.NoError(t, err)

	bad := instance.Options()
	bad.Data = strings.Repeat("x", 5000)
	assert.Error(t, instance.Update(bad))
	assert.Equal(t, "ok", instance.Options().Data, "failed update keeps previous options")

	assert.ErrorIs(t, instance.Download(&bytes.Buffer{}, "gif"), ErrUnsupportedExtension)
}

func TestRecoveryLevelRoundTrip(t *testing.T) {
	for _, level := range []design.Level{design.LevelL, design.LevelM, design.LevelQ, design.LevelH} {
		t.Run(string(level), func(t *testing.T) {
			style := design.DefaultStyle()
			style.Design.QROptions.ErrorCorrectionLevel = level

			opts := design.Resolve(style, "level test", 400)
			opts.Margin = 40

			instance, err := Styled{}.New(opts)
			require.NoError(t, err)

			var buf bytes.Buffer
			require.NoError(t, instance.Download(&buf, PNG))
			assert.Equal(t, "level test", decodePNG(t, buf.Bytes()))
		})
	}
}
