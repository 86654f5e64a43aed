package ber

import (
	"fmt"
	"time"

	"github.com/keetanet/asn1ber/internal/berio"
	"github.com/keetanet/asn1ber/internal/bigint"
	"github.com/keetanet/asn1ber/oid"
)

// maxDepth bounds recursion into constructed types to prevent stack
// blow-up on a hostile or malformed tree.
const maxDepth = 256

// Encode renders v as definite-length BER bytes.
func Encode(v Value) ([]byte, error) {
	return encodeValue(v, 0, "$")
}

func encodeValue(v Value, depth int, path string) ([]byte, error) {
	if depth > maxDepth {
		return nil, newEncodeErr(ErrDepthExceeded, path, "recursion depth exceeds %d", maxDepth)
	}

	switch v.Kind {
	case KindBool:
		return wrap(berio.Tag{Class: berio.ClassUniversal, Number: TagBool}, encodeBool(v.Bool))
	case KindInteger:
		if v.Integer == nil {
			return nil, newEncodeErr(ErrUnsupportedHostType, path, "nil integer")
		}
		return wrap(berio.Tag{Class: berio.ClassUniversal, Number: TagInteger}, bigint.ToBuffer(v.Integer))
	case KindBitString:
		return wrap(berio.Tag{Class: berio.ClassUniversal, Number: TagBitString}, encodeBitString(v.BitString))
	case KindOctetString:
		return wrap(berio.Tag{Class: berio.ClassUniversal, Number: TagOctetString}, v.OctetString)
	case KindNull:
		return wrap(berio.Tag{Class: berio.ClassUniversal, Number: TagNull}, nil)
	case KindOid:
		content, err := oid.Encode(v.Oid)
		if err != nil {
			return nil, newEncodeErr(ErrOidUnknownName, path, "%v", err)
		}
		return wrap(berio.Tag{Class: berio.ClassUniversal, Number: TagOid}, content)
	case KindUtf8String:
		return wrap(berio.Tag{Class: berio.ClassUniversal, Number: TagUtf8String}, []byte(v.String))
	case KindPrintableString:
		content, err := encodePrintable(v.String, path)
		if err != nil {
			return nil, err
		}
		return wrap(berio.Tag{Class: berio.ClassUniversal, Number: TagPrintableString}, content)
	case KindIa5String:
		content, err := encodeIa5(v.String, path)
		if err != nil {
			return nil, err
		}
		return wrap(berio.Tag{Class: berio.ClassUniversal, Number: TagIa5String}, content)
	case KindUtcTime:
		content, err := encodeUtcTime(v.Time, path)
		if err != nil {
			return nil, err
		}
		return wrap(berio.Tag{Class: berio.ClassUniversal, Number: TagUtcTime}, content)
	case KindGeneralizedTime:
		return wrap(berio.Tag{Class: berio.ClassUniversal, Number: TagGeneralizedTime}, encodeGeneralizedTime(v.Time))
	case KindSequence:
		content, err := encodeItems(v.Sequence, depth, path)
		if err != nil {
			return nil, err
		}
		return wrap(berio.Tag{Class: berio.ClassUniversal, Constructed: true, Number: TagSequence}, content)
	case KindSet:
		content, err := encodeItems(v.Set, depth, path)
		if err != nil {
			return nil, err
		}
		return wrap(berio.Tag{Class: berio.ClassUniversal, Constructed: true, Number: TagSet}, content)
	case KindContextTag:
		return encodeContextTag(v.ContextTag, depth, path)
	default:
		return nil, newEncodeErr(ErrUnsupportedHostType, path, "unknown Value kind %v", v.Kind)
	}
}

func wrap(tag berio.Tag, content []byte) ([]byte, error) {
	tagByte, err := tag.Encode()
	if err != nil {
		return nil, err
	}
	lenBytes, err := berio.EncodeLength(len(content))
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, 1+len(lenBytes)+len(content))
	out = append(out, tagByte)
	out = append(out, lenBytes...)
	out = append(out, content...)
	return out, nil
}

func encodeBool(b bool) []byte {
	if b {
		return []byte{0xFF}
	}
	return []byte{0x00}
}

func encodeBitString(bs BitStringValue) []byte {
	out := make([]byte, 0, 1+len(bs.Payload))
	out = append(out, bs.UnusedBits)
	out = append(out, bs.Payload...)
	return out
}

func isPrintableChar(r rune) bool {
	switch {
	case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		return true
	}
	switch r {
	case ' ', '\'', '(', ')', '+', ',', '-', '.', '/', ':', '=', '?':
		return true
	}
	return false
}

func encodePrintable(s string, path string) ([]byte, error) {
	for _, r := range s {
		if !isPrintableChar(r) {
			return nil, newEncodeErr(ErrStringCharsetViolation, path, "character %q is not in the PrintableString set", r)
		}
	}
	return []byte(s), nil
}

func encodeIa5(s string, path string) ([]byte, error) {
	for _, r := range s {
		if r > 127 {
			return nil, newEncodeErr(ErrStringCharsetViolation, path, "character %q is not 7-bit ASCII", r)
		}
	}
	return []byte(s), nil
}

func encodeUtcTime(t time.Time, path string) ([]byte, error) {
	u := t.UTC()
	year := u.Year()
	if year < 1950 || year > 2049 {
		return nil, newEncodeErr(ErrDateOutOfRange, path, "year %d is outside the UTCTime range 1950-2049", year)
	}

	yy := year % 100
	s := fmt.Sprintf("%02d%02d%02d%02d%02d%02dZ", yy, int(u.Month()), u.Day(), u.Hour(), u.Minute(), u.Second())
	return []byte(s), nil
}

func encodeGeneralizedTime(t time.Time) []byte {
	u := t.UTC()
	ms := u.Nanosecond() / int(time.Millisecond)
	s := fmt.Sprintf("%04d%02d%02d%02d%02d%02d.%03dZ",
		u.Year(), int(u.Month()), u.Day(), u.Hour(), u.Minute(), u.Second(), ms)
	return []byte(s)
}

func encodeItems(items []Value, depth int, path string) ([]byte, error) {
	var out []byte
	for i, item := range items {
		enc, err := encodeValue(item, depth+1, fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		out = append(out, enc...)
	}
	return out, nil
}

func encodeContextTag(ct ContextTag, depth int, path string) ([]byte, error) {
	tag := berio.Tag{Class: berio.ClassContext, Number: byte(ct.Number)}

	switch ct.Kind {
	case Explicit:
		tag.Constructed = true
		if ct.Inner == nil {
			return nil, newEncodeErr(ErrUnsupportedHostType, path, "explicit context tag missing inner value")
		}
		inner, err := encodeValue(*ct.Inner, depth+1, path+".contains")
		if err != nil {
			return nil, err
		}
		return wrap(tag, inner)
	case Implicit:
		tag.Constructed = false
		return wrap(tag, ct.Raw)
	default:
		return nil, newEncodeErr(ErrUnsupportedHostType, path, "unknown context tag kind")
	}
}
