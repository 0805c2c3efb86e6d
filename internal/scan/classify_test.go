package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qrkitchen/qr-kitchen/internal/content"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Result
	}{
		{
			name: "https url",
			raw:  "https://example.com/a?b=c",
			want: Result{Kind: content.KindURL, URL: "https://example.com/a?b=c"},
		},
		{
			name: "http url",
			raw:  "http://example.com",
			want: Result{Kind: content.KindURL, URL: "http://example.com"},
		},
		{
			name: "open network with empty password",
			raw:  "WIFI:T:nopass;S:Guest;P:;;",
			want: Result{Kind: content.KindWiFi, WiFi: &content.WiFi{SSID: "Guest", Encryption: content.EncryptionNone}},
		},
		{
			name: "wifi without type defaults to WPA",
			raw:  "WIFI:S:Home;P:pw;;",
			want: Result{Kind: content.KindWiFi, WiFi: &content.WiFi{SSID: "Home", Password: "pw", Encryption: content.EncryptionWPA}},
		},
		{
			name: "mailto is text",
			raw:  "mailto:a@b.c?subject=x",
			want: Result{Kind: content.KindText, Text: "mailto:a@b.c?subject=x"},
		},
		{
			name: "tel is text",
			raw:  "tel:+4912345",
			want: Result{Kind: content.KindText, Text: "tel:+4912345"},
		},
		{
			name: "scheme is case sensitive",
			raw:  "HTTPS://EXAMPLE.COM",
			want: Result{Kind: content.KindText, Text: "HTTPS://EXAMPLE.COM"},
		},
		{
			name: "empty",
			raw:  "",
			want: Result{Kind: content.KindText},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.raw))
		})
	}
}

func TestWiFiRoundTrip(t *testing.T) {
	tests := []content.WiFi{
		{SSID: "Kitchen", Password: "s3cret", Encryption: content.EncryptionWPA},
		{SSID: "Cafe Guest", Password: "pa ss", Encryption: content.EncryptionWEP},
		{SSID: "Open", Encryption: content.EncryptionNone},
	}

	for _, wifi := range tests {
		t.Run(wifi.SSID, func(t *testing.T) {
			v := content.DefaultValues()
			v.WiFi = wifi

			got := Classify(content.Format(content.KindWiFi, v))
			require.Equal(t, content.KindWiFi, got.Kind)
			assert.Equal(t, wifi, *got.WiFi)
		})
	}
}

func TestApplyToKeepsOtherVariants(t *testing.T) {
	v := content.DefaultValues()
	v.Email.Address = "chef@example.com"
	v.Text = "keep me"

	got := Classify("https://scanned.example").ApplyTo(v)
	assert.Equal(t, "https://scanned.example", got.URL)
	assert.Equal(t, "keep me", got.Text)
	assert.Equal(t, "chef@example.com", got.Email.Address)

	got = Classify("just words").ApplyTo(v)
	assert.Equal(t, "just words", got.Text)
	assert.Equal(t, "https://google.com", got.URL)

	got = Classify("WIFI:T:WEP;S:Net;P:abc;;").ApplyTo(v)
	assert.Equal(t, content.WiFi{SSID: "Net", Password: "abc", Encryption: content.EncryptionWEP}, got.WiFi)
	assert.Equal(t, "keep me", got.Text)
}
