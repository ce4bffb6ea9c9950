// Package domain defines the core serial models: fixed-length alphanumeric serials
// and named serial groups persisted for later retrieval and export.
package domain

// Serial is an opaque 10-character token drawn from Alphabet.
// Serials carry no identity beyond their content and are not guaranteed unique.
type Serial string

const (
	// SerialLength is the number of characters in every generated serial.
	SerialLength = 10

	// Alphabet holds the 62 characters a serial may contain: [A-Za-z0-9].
	Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// Validate checks the serial length and that every character belongs to Alphabet.
func (s Serial) Validate() error {
	if len(s) != SerialLength {
		return ErrInvalidSerial
	}
	for i := 0; i < len(s); i++ {
		if !isAlphanumeric(s[i]) {
			return ErrInvalidSerial
		}
	}
	return nil
}

// String returns the serial as a plain string.
func (s Serial) String() string {
	return string(s)
}

// SerialsToStrings converts serials to their string form, preserving order.
func SerialsToStrings(serials []Serial) []string {
	out := make([]string, 0, len(serials))
	for _, s := range serials {
		out = append(out, string(s))
	}
	return out
}

// StringsToSerials converts raw strings to serials, preserving order.
func StringsToSerials(values []string) []Serial {
	out := make([]Serial, 0, len(values))
	for _, v := range values {
		out = append(out, Serial(v))
	}
	return out
}

func isAlphanumeric(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9')
}
