package content

// Encryption is the WiFi authentication type.
type Encryption string

const (
	// EncryptionWPA is WPA/WPA2 personal.
	EncryptionWPA Encryption = "WPA"
	// EncryptionWEP is legacy WEP.
	EncryptionWEP Encryption = "WEP"
	// EncryptionNone marks an open network.
	EncryptionNone Encryption = "nopass"
)

// WiFi holds network credentials.
type WiFi struct {
	SSID       string     `json:"ssid"`
	Password   string     `json:"password"`
	Encryption Encryption `json:"encryption" validate:"omitempty,oneof=WPA WEP nopass"`
}

// VCard holds contact card fields.
type VCard struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Org       string `json:"org"`
	Title     string `json:"title"`
}

// Email holds a mail draft.
type Email struct {
	Address string `json:"address"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Message is a phone number with a text, used by SMS and WhatsApp.
type Message struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// Location is a latitude/longitude pair kept as entered.
type Location struct {
	Lat  string `json:"lat"`
	Long string `json:"long"`
}

// Values keeps the fields of every kind at once, so switching the active kind
// never loses what was typed for another one.
type Values struct {
	URL      string   `json:"url"`
	Text     string   `json:"text"`
	WiFi     WiFi     `json:"wifi"`
	VCard    VCard    `json:"vcard"`
	Email    Email    `json:"email"`
	SMS      Message  `json:"sms"`
	WhatsApp Message  `json:"whatsapp"`
	Phone    string   `json:"phone"`
	Location Location `json:"location"`
}

// DefaultValues returns the values a fresh studio starts with.
func DefaultValues() Values {
	return Values{
		URL:  "https://google.com",
		Text: "Hello World",
		WiFi: WiFi{Encryption: EncryptionWPA},
	}
}
