package content

import (
	"errors"
	"fmt"
)

// Kind identifies one of the structured content types a code can encode.
type Kind string

const (
	// KindURL encodes a web address.
	KindURL Kind = "url"
	// KindText encodes free-form text.
	KindText Kind = "text"
	// KindWiFi encodes network credentials.
	KindWiFi Kind = "wifi"
	// KindWhatsApp encodes a wa.me chat link.
	KindWhatsApp Kind = "whatsapp"
	// KindPhone encodes a tel: link.
	KindPhone Kind = "phone"
	// KindVCard encodes a contact card.
	KindVCard Kind = "vcard"
	// KindEmail encodes a mailto: link.
	KindEmail Kind = "email"
	// KindSMS encodes an smsto: link.
	KindSMS Kind = "sms"
	// KindLocation encodes a maps link.
	KindLocation Kind = "location"
)

// ErrUnknownKind is returned when a kind name is not one of the supported kinds.
var ErrUnknownKind = errors.New("unknown content kind")

// KindInfo describes a kind for menus.
type KindInfo struct {
	ID    Kind   `json:"id"`
	Label string `json:"label"`
}

var kinds = []KindInfo{
	{ID: KindURL, Label: "URL"},
	{ID: KindText, Label: "Text"},
	{ID: KindWiFi, Label: "WiFi"},
	{ID: KindWhatsApp, Label: "WhatsApp"},
	{ID: KindPhone, Label: "Call"},
	{ID: KindVCard, Label: "vCard"},
	{ID: KindEmail, Label: "Email"},
	{ID: KindSMS, Label: "SMS"},
	{ID: KindLocation, Label: "Location"},
}

// Kinds returns all kinds in menu order.
func Kinds() []KindInfo {
	out := make([]KindInfo, len(kinds))
	copy(out, kinds)

	return out
}

// ParseKind validates a kind name.
func ParseKind(s string) (Kind, error) {
	for _, k := range kinds {
		if string(k.ID) == s {
			return k.ID, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Valid reports whether k is a supported kind.
func (k Kind) Valid() bool {
	_, err := ParseKind(string(k))
	return err == nil
}

// Label returns the menu label of the kind, or the raw name when unknown.
func (k Kind) Label() string {
	for _, info := range kinds {
		if info.ID == k {
			return info.Label
		}
	}

	return string(k)
}
