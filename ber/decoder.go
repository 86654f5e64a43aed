package ber

import (
	"math/big"
	"time"

	"github.com/keetanet/asn1ber/internal/berio"
)

// Decoder is a lazy façade over a parsed BER tree: it owns the original
// bytes (and, transitively, the parsed Value), and offers typed
// accessors that each fail with ErrTypeMismatch when the root variant
// does not match. Accessors are idempotent and safe to call from
// multiple goroutines concurrently, since a Decoder is never mutated
// after construction.
type Decoder struct {
	raw []byte
	val Value
}

// NewDecoder parses raw BER bytes into a handle.
func NewDecoder(raw []byte) (*Decoder, error) {
	v, err := Decode(raw)
	if err != nil {
		return nil, err
	}
	return &Decoder{raw: append([]byte(nil), raw...), val: v}, nil
}

// NewDecoderFromBase64 is NewDecoder fed by a base64-encoded string.
func NewDecoderFromBase64(s string) (*Decoder, error) {
	raw, err := berio.FromBase64(s)
	if err != nil {
		return nil, err
	}
	return NewDecoder(raw)
}

// Value returns the parsed tree backing this handle.
func (d *Decoder) Value() Value { return d.val }

// Bytes returns the original bytes this handle was constructed from.
func (d *Decoder) Bytes() []byte { return append([]byte(nil), d.raw...) }

func (d *Decoder) mismatch(want Kind) error {
	return &Error{Kind: ErrTypeMismatch, Message: kindName(want) + " requested on a value of a different kind"}
}

func (d *Decoder) IntoBool() (bool, error) {
	if d.val.Kind != KindBool {
		return false, d.mismatch(KindBool)
	}
	return d.val.Bool, nil
}

// IntoInteger widens the decoded Integer into a native int64, failing
// with ErrIntegerOverflow if it doesn't fit.
func (d *Decoder) IntoInteger() (int64, error) {
	if d.val.Kind != KindInteger {
		return 0, d.mismatch(KindInteger)
	}
	if !d.val.Integer.IsInt64() {
		return 0, &Error{Kind: ErrIntegerOverflow, Message: "value does not fit in a 64-bit signed integer"}
	}
	return d.val.Integer.Int64(), nil
}

func (d *Decoder) IntoBigInt() (*big.Int, error) {
	if d.val.Kind != KindInteger {
		return nil, d.mismatch(KindInteger)
	}
	return new(big.Int).Set(d.val.Integer), nil
}

func (d *Decoder) IntoString() (string, error) {
	switch d.val.Kind {
	case KindUtf8String, KindPrintableString, KindIa5String:
		return d.val.String, nil
	default:
		return "", d.mismatch(KindUtf8String)
	}
}

func (d *Decoder) IntoDate() (time.Time, error) {
	switch d.val.Kind {
	case KindUtcTime, KindGeneralizedTime:
		return d.val.Time, nil
	default:
		return time.Time{}, d.mismatch(KindUtcTime)
	}
}

func (d *Decoder) IntoBuffer() ([]byte, error) {
	if d.val.Kind != KindOctetString {
		return nil, d.mismatch(KindOctetString)
	}
	return append([]byte(nil), d.val.OctetString...), nil
}

func (d *Decoder) IntoOid() (string, error) {
	if d.val.Kind != KindOid {
		return "", d.mismatch(KindOid)
	}
	return d.val.Oid, nil
}

func (d *Decoder) IntoSet() ([]Value, error) {
	if d.val.Kind != KindSet {
		return nil, d.mismatch(KindSet)
	}
	return d.val.Set, nil
}

func (d *Decoder) IntoBitString() (BitStringValue, error) {
	if d.val.Kind != KindBitString {
		return BitStringValue{}, d.mismatch(KindBitString)
	}
	return d.val.BitString, nil
}

func (d *Decoder) IntoContextTag() (ContextTag, error) {
	if d.val.Kind != KindContextTag {
		return ContextTag{}, d.mismatch(KindContextTag)
	}
	return d.val.ContextTag, nil
}

func (d *Decoder) IntoArray() ([]Value, error) {
	if d.val.Kind != KindSequence {
		return nil, d.mismatch(KindSequence)
	}
	return d.val.Sequence, nil
}

func kindName(k Kind) string {
	switch k {
	case KindBool:
		return "Bool"
	case KindInteger:
		return "Integer"
	case KindBitString:
		return "BitString"
	case KindOctetString:
		return "OctetString"
	case KindNull:
		return "Null"
	case KindOid:
		return "Oid"
	case KindUtf8String, KindPrintableString, KindIa5String:
		return "String"
	case KindUtcTime, KindGeneralizedTime:
		return "Date"
	case KindSequence:
		return "Sequence"
	case KindSet:
		return "Set"
	case KindContextTag:
		return "ContextTag"
	default:
		return "Unknown"
	}
}
