package ber

import (
	"strconv"
	"time"

	"github.com/keetanet/asn1ber/internal/berio"
	"github.com/keetanet/asn1ber/internal/bigint"
	"github.com/keetanet/asn1ber/oid"
)

// Decode parses a single definite-length BER object from data. Trailing
// bytes after the top-level object are a hard error.
func Decode(data []byte) (Value, error) {
	v, consumed, err := decodeValue(data, 0, 0)
	if err != nil {
		return Value{}, err
	}
	if consumed != len(data) {
		return Value{}, newDecodeErr(ErrTrailingBytes, consumed, "%d trailing byte(s) after top-level object", len(data)-consumed)
	}
	return v, nil
}

// decodeValue parses one TLV starting at data[0], returning the value and
// the total number of bytes consumed (tag + length + content).
func decodeValue(data []byte, offset int, depth int) (Value, int, error) {
	if depth > maxDepth {
		return Value{}, 0, newDecodeErr(ErrDepthExceeded, offset, "recursion depth exceeds %d", maxDepth)
	}

	tag, tagLen, err := berio.DecodeTag(data)
	if err != nil {
		return Value{}, 0, newDecodeErr(ErrTruncatedInput, offset, "%v", err)
	}

	length, lenLen, err := berio.DecodeLength(data[tagLen:])
	if err != nil {
		return Value{}, 0, newDecodeErr(ErrLengthOverflow, offset+tagLen, "%v", err)
	}

	contentStart := tagLen + lenLen
	contentEnd := contentStart + length
	if contentEnd > len(data) {
		return Value{}, 0, newDecodeErr(ErrTruncatedInput, offset+contentStart, "content of length %d exceeds remaining input", length)
	}
	content := data[contentStart:contentEnd]

	v, err := decodeContent(tag, content, offset+contentStart, depth)
	if err != nil {
		return Value{}, 0, err
	}
	return v, contentEnd, nil
}

func decodeContent(tag berio.Tag, content []byte, offset int, depth int) (Value, error) {
	if tag.Class == berio.ClassContext {
		return decodeContextTag(tag, content, offset, depth)
	}

	switch tag.Number {
	case TagBool:
		return decodeBool(content, offset)
	case TagInteger:
		return Value{Kind: KindInteger, Integer: bigint.FromBuffer(content)}, nil
	case TagBitString:
		return decodeBitString(content, offset)
	case TagOctetString:
		return Value{Kind: KindOctetString, OctetString: append([]byte(nil), content...)}, nil
	case TagNull:
		return Value{Kind: KindNull}, nil
	case TagOid:
		name, err := oid.Decode(content)
		if err != nil {
			return Value{}, newDecodeErr(ErrOidMalformed, offset, "%v", err)
		}
		return Value{Kind: KindOid, Oid: name}, nil
	case TagUtf8String, TagBmpString, TagGeneralString, TagT61String:
		// Restricted tags beyond the ones this codec emits are tolerated
		// on decode and surfaced as Utf8String content, matching the
		// asymmetric read/write behavior of the reference implementation.
		return Value{Kind: KindUtf8String, String: string(content)}, nil
	case TagPrintableString:
		return Value{Kind: KindPrintableString, String: string(content)}, nil
	case TagIa5String:
		return Value{Kind: KindIa5String, String: string(content)}, nil
	case TagUtcTime:
		t, err := decodeUtcTime(content, offset)
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: KindUtcTime, Time: t}, nil
	case TagGeneralizedTime:
		t, err := decodeGeneralizedTime(content, offset)
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: KindGeneralizedTime, Time: t}, nil
	case TagSequence:
		items, err := decodeItems(content, offset, depth)
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: KindSequence, Sequence: items}, nil
	case TagSet:
		items, err := decodeItems(content, offset, depth)
		if err != nil {
			return Value{}, err
		}
		if err := validateSetShape(items, offset); err != nil {
			return Value{}, err
		}
		return Value{Kind: KindSet, Set: items}, nil
	default:
		return Value{}, newDecodeErr(ErrUnknownTag, offset, "unknown universal tag number %d", tag.Number)
	}
}

func decodeBool(content []byte, offset int) (Value, error) {
	if len(content) != 1 {
		return Value{}, newDecodeErr(ErrTruncatedInput, offset, "BOOLEAN content must be exactly one byte, got %d", len(content))
	}
	return Value{Kind: KindBool, Bool: content[0] != 0x00}, nil
}

func decodeBitString(content []byte, offset int) (Value, error) {
	if len(content) == 0 {
		return Value{}, newDecodeErr(ErrTruncatedInput, offset, "BIT STRING content is empty, missing unused-bits octet")
	}
	unused := content[0]
	if unused > 7 {
		return Value{}, newDecodeErr(ErrTruncatedInput, offset, "unused-bits count %d exceeds 7", unused)
	}
	payload := append([]byte(nil), content[1:]...)
	return Value{Kind: KindBitString, BitString: BitStringValue{UnusedBits: unused, Payload: payload}}, nil
}

func decodeItems(content []byte, offset int, depth int) ([]Value, error) {
	var items []Value
	pos := 0
	for pos < len(content) {
		v, consumed, err := decodeValue(content[pos:], offset+pos, depth+1)
		if err != nil {
			return nil, err
		}
		items = append(items, v)
		pos += consumed
	}
	return items, nil
}

// validateSetShape enforces the single shape KeetaNet's wire format uses
// for Set: exactly one contained Sequence of exactly two elements, an Oid
// followed by a string.
func validateSetShape(items []Value, offset int) error {
	if len(items) != 1 || items[0].Kind != KindSequence {
		return newDecodeErr(ErrSetShapeUnsupported, offset, "Set must contain exactly one Sequence")
	}
	seq := items[0].Sequence
	if len(seq) != 2 || seq[0].Kind != KindOid || !isStringKind(seq[1].Kind) {
		return newDecodeErr(ErrSetShapeUnsupported, offset, "Set's Sequence must be [Oid, string]")
	}
	return nil
}

func isStringKind(k Kind) bool {
	return k == KindUtf8String || k == KindPrintableString || k == KindIa5String
}

func decodeContextTag(tag berio.Tag, content []byte, offset int, depth int) (Value, error) {
	ct := ContextTag{Number: int(tag.Number)}

	if tag.Constructed {
		ct.Kind = Explicit
		inner, consumed, err := decodeValue(content, offset, depth+1)
		if err != nil {
			return Value{}, err
		}
		if consumed != len(content) {
			return Value{}, newDecodeErr(ErrTrailingBytes, offset+consumed, "explicit context tag content has %d trailing byte(s)", len(content)-consumed)
		}
		ct.Inner = &inner
	} else {
		ct.Kind = Implicit
		ct.Raw = append([]byte(nil), content...)
	}

	return Value{Kind: KindContextTag, ContextTag: ct}, nil
}

func decodeUtcTime(content []byte, offset int) (time.Time, error) {
	s := string(content)

	// Parsed by hand rather than through time.Parse's "06" reference-year
	// heuristic, which splits 2-digit years at 69/00 instead of the
	// 50/00 split this wire format uses (yy 50-99 -> 1950-1999, yy 00-49
	// -> 2000-2049).
	if len(s) != 13 {
		return time.Time{}, newDecodeErr(ErrDateOutOfRange, offset, "malformed UTCTime %q: expected 13 characters", s)
	}

	t, err := time.Parse("0102150405Z", s[2:])
	if err != nil {
		return time.Time{}, newDecodeErr(ErrDateOutOfRange, offset, "malformed UTCTime %q: %v", s, err)
	}

	yy, err := strconv.Atoi(s[0:2])
	if err != nil {
		return time.Time{}, newDecodeErr(ErrDateOutOfRange, offset, "malformed UTCTime %q: bad year digits", s)
	}

	year := yy + 2000
	if yy >= 50 {
		year = yy + 1900
	}
	return time.Date(year, t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC), nil
}

func decodeGeneralizedTime(content []byte, offset int) (time.Time, error) {
	s := string(content)

	// Tolerate both the millisecond form this codec always emits and the
	// whole-second form some source revisions emitted instead.
	for _, layout := range []string{"20060102150405.000Z", "20060102150405Z"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, newDecodeErr(ErrDateOutOfRange, offset, "malformed GeneralizedTime %q", s)
}
