package render

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"  // decode gif logos
	_ "image/jpeg" // decode jpeg logos
	"math"
	"net/url"
	"strings"

	xdraw "golang.org/x/image/draw"
)

// decodeDataURI returns the payload of a data URI.
func decodeDataURI(uri string) ([]byte, error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return nil, fmt.Errorf("not a data uri")
	}

	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, fmt.Errorf("data uri without payload")
	}

	if strings.HasSuffix(meta, ";base64") {
		return base64.StdEncoding.DecodeString(payload)
	}

	s, err := url.PathUnescape(payload)
	if err != nil {
		return nil, err
	}

	return []byte(s), nil
}

// drawLogo scales the logo into the box keeping its aspect ratio.
func drawLogo(dst *image.NRGBA, b box, uri string) error {
	raw, err := decodeDataURI(uri)
	if err != nil {
		return err
	}

	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("decode logo: %w", err)
	}

	sb := src.Bounds()
	if sb.Dx() == 0 || sb.Dy() == 0 {
		return fmt.Errorf("empty logo")
	}

	scale := math.Min(b.w/float64(sb.Dx()), b.h/float64(sb.Dy()))
	w, h := float64(sb.Dx())*scale, float64(sb.Dy())*scale
	x, y := b.x+(b.w-w)/2, b.y+(b.h-h)/2

	target := image.Rect(int(math.Round(x)), int(math.Round(y)), int(math.Round(x+w)), int(math.Round(y+h)))
	xdraw.CatmullRom.Scale(dst, target, src, sb, draw.Over, nil)

	return nil
}
