// Package scan turns decoded code text back into studio content and runs the
// decode sessions that stand in for a camera.
package scan

import (
	"regexp"
	"strings"

	"github.com/qrkitchen/qr-kitchen/internal/content"
)

var (
	ssidPattern       = regexp.MustCompile(`S:([^;]+);`)
	passwordPattern   = regexp.MustCompile(`P:([^;]+);`)
	encryptionPattern = regexp.MustCompile(`T:([^;]+);`)
)

// Result is the classified content of a scan. Only the field matching Kind is set.
type Result struct {
	Kind content.Kind  `json:"kind"`
	URL  string        `json:"url,omitempty"`
	Text string        `json:"text,omitempty"`
	WiFi *content.WiFi `json:"wifi,omitempty"`
}

// Classify maps raw decoded text onto url, wifi or text. Other kinds are not
// recognised and end up as text.
func Classify(raw string) Result {
	switch {
	case strings.HasPrefix(raw, "http://"), strings.HasPrefix(raw, "https://"):
		return Result{Kind: content.KindURL, URL: raw}
	case strings.HasPrefix(raw, "WIFI:"):
		wifi := content.WiFi{
			SSID:       firstGroup(ssidPattern, raw),
			Password:   firstGroup(passwordPattern, raw),
			Encryption: content.Encryption(firstGroup(encryptionPattern, raw)),
		}
		if wifi.Encryption == "" {
			wifi.Encryption = content.EncryptionWPA
		}

		return Result{Kind: content.KindWiFi, WiFi: &wifi}
	default:
		return Result{Kind: content.KindText, Text: raw}
	}
}

func firstGroup(re *regexp.Regexp, s string) string {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return ""
	}

	return m[1]
}

// ApplyTo returns v with the classified field replaced. Other variants are kept.
func (r Result) ApplyTo(v content.Values) content.Values {
	switch r.Kind {
	case content.KindURL:
		v.URL = r.URL
	case content.KindWiFi:
		if r.WiFi != nil {
			v.WiFi = *r.WiFi
		}
	default:
		v.Text = r.Text
	}

	return v
}
