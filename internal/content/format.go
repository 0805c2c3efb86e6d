package content

import (
	"strings"
)

const upperHex = "0123456789ABCDEF"

// Format returns the payload string for the given kind. It is pure and total:
// missing fields yield a syntactically valid but empty payload.
func Format(kind Kind, v Values) string {
	switch kind {
	case KindURL:
		return v.URL
	case KindText:
		return v.Text
	case KindWiFi:
		return "WIFI:T:" + string(v.WiFi.Encryption) + ";S:" + v.WiFi.SSID + ";P:" + v.WiFi.Password + ";;"
	case KindVCard:
		c := v.VCard

		return strings.Join([]string{
			"BEGIN:VCARD",
			"VERSION:3.0",
			"N:" + c.LastName + ";" + c.FirstName,
			"FN:" + c.FirstName + " " + c.LastName,
			"ORG:" + c.Org,
			"TITLE:" + c.Title,
			"TEL:" + c.Phone,
			"EMAIL:" + c.Email,
			"END:VCARD",
		}, "\n")
	case KindEmail:
		return "mailto:" + v.Email.Address +
			"?subject=" + EncodeURIComponent(v.Email.Subject) +
			"&body=" + EncodeURIComponent(v.Email.Body)
	case KindSMS:
		return "smsto:" + v.SMS.Phone + ":" + v.SMS.Message
	case KindWhatsApp:
		return "https://wa.me/" + v.WhatsApp.Phone + "?text=" + EncodeURIComponent(v.WhatsApp.Message)
	case KindPhone:
		return "tel:" + v.Phone
	case KindLocation:
		return "http://maps.google.com/maps?q=" + v.Location.Lat + "," + v.Location.Long
	default:
		return ""
	}
}

// EncodeURIComponent percent-encodes s the way browsers do for URI components:
// letters, digits and -_.!~*'() stay as they are, every other UTF-8 byte is escaped.
// net/url has no equivalent, QueryEscape turns spaces into '+'.
func EncodeURIComponent(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}

		b.WriteByte('%')
		b.WriteByte(upperHex[c>>4])
		b.WriteByte(upperHex[c&0x0f])
	}

	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}

	return strings.IndexByte("-_.!~*'()", c) >= 0
}
