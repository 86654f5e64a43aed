package berio

import "encoding/base64"

// ToBase64 is the standard-alphabet base64 encoding of data, used for test
// ergonomics and for the CLI/HTTP surfaces that carry BER bytes as text.
func ToBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// FromBase64 decodes a base64 string back into the raw bytes a decoder
// expects; callers typically hand the result straight to ber.Decode.
func FromBase64(s string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(s)
}
