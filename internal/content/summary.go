package content

import (
	"strings"
	"unicode/utf16"
)

// summaryTextLimit counts UTF-16 code units, the way browsers measure strings.
const summaryTextLimit = 20

// Summary returns the short human readable label shown in the history list.
func Summary(kind Kind, v Values) string {
	switch kind {
	case KindURL:
		return v.URL
	case KindText:
		return truncateUTF16(v.Text, summaryTextLimit)
	case KindWiFi:
		return "WiFi: " + v.WiFi.SSID
	case KindWhatsApp:
		return "WA: " + v.WhatsApp.Phone
	default:
		return strings.ToUpper(string(kind))
	}
}

// truncateUTF16 keeps the first limit UTF-16 code units of s and appends
// "..." when anything was cut. A surrogate pair cut in half becomes U+FFFD.
func truncateUTF16(s string, limit int) string {
	units := utf16.Encode([]rune(s))
	if len(units) <= limit {
		return s
	}

	return string(utf16.Decode(units[:limit])) + "..."
}
