package berio

import "fmt"

// EncodeLength returns the BER length octets for a content of n bytes,
// using the short form for n < 128 and the minimal long form otherwise.
// The indefinite form (0x80) is never produced.
func EncodeLength(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("berio: negative length %d", n)
	}
	if n < 0x80 {
		return []byte{byte(n)}, nil
	}

	// Minimal big-endian byte count for n.
	var content []byte
	v := n
	for v > 0 {
		content = append([]byte{byte(v & 0xFF)}, content...)
		v >>= 8
	}
	if len(content) > 127 {
		return nil, fmt.Errorf("berio: length %d needs more than 127 length octets", n)
	}
	out := make([]byte, 0, 1+len(content))
	out = append(out, 0x80|byte(len(content)))
	out = append(out, content...)
	return out, nil
}

// DecodeLength parses the length octets at the start of data, returning
// the content length and the number of octets consumed. The indefinite
// form is rejected: this system only ever decodes definite-length BER.
func DecodeLength(data []byte) (length int, consumed int, err error) {
	if len(data) == 0 {
		return 0, 0, fmt.Errorf("berio: truncated input decoding length octet")
	}

	first := data[0]
	if first < 0x80 {
		return int(first), 1, nil
	}
	if first == 0x80 {
		return 0, 0, fmt.Errorf("berio: indefinite-length form is not supported")
	}

	n := int(first & 0x7F)
	if n > 127 {
		return 0, 0, fmt.Errorf("berio: invalid long-form length count %d", n)
	}
	if len(data) < 1+n {
		return 0, 0, fmt.Errorf("berio: truncated input decoding long-form length")
	}

	length = 0
	for i := 0; i < n; i++ {
		b := data[1+i]
		if length > (1<<31-1-int(b))>>8 {
			return 0, 0, fmt.Errorf("berio: length overflow")
		}
		length = length<<8 | int(b)
	}
	return length, 1 + n, nil
}
