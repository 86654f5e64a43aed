// Package ber implements the ASN.1 BER value model together with its
// encoder and decoder: Value is the tagged sum every supported shape is
// expressed as, Encode/Decode convert it to and from wire bytes, and
// Decoder is a lazy façade over a parsed tree.
//
// Dynamic dispatch over the host-language tagged objects is reified here
// as a Go sum type (Value, discriminated by Kind) plus an explicit switch
// in both Encode and Decode, rather than reflection.
package ber

import (
	"math/big"
	"time"
)

// Kind discriminates the variant a Value carries.
type Kind int

const (
	KindBool Kind = iota
	KindInteger
	KindBitString
	KindOctetString
	KindNull
	KindOid
	KindUtf8String
	KindPrintableString
	KindIa5String
	KindUtcTime
	KindGeneralizedTime
	KindSequence
	KindSet
	KindContextTag
)

// Universal tag numbers. ContextTag and the constructed bit are not part
// of this table since they depend on the per-value Constructed/Kind
// fields, not a fixed universal number.
const (
	TagBool            = 0x01
	TagInteger         = 0x02
	TagBitString       = 0x03
	TagOctetString     = 0x04
	TagNull            = 0x05
	TagOid             = 0x06
	TagUtf8String      = 0x0C
	TagNumericString   = 0x12
	TagPrintableString = 0x13
	TagT61String       = 0x14
	TagIa5String       = 0x16
	TagUtcTime         = 0x17
	TagGeneralizedTime = 0x18
	TagGeneralString   = 0x1B
	TagBmpString       = 0x1E
	TagSequence        = 0x10
	TagSet             = 0x11
)

// ContextKind distinguishes implicit from explicit context tagging.
type ContextKind int

const (
	Implicit ContextKind = iota
	Explicit
)

// ContextTag carries a context-specific tagged value: either raw opaque
// content bytes (Implicit) or a boxed child Value (Explicit). Modeling it
// as this small enum-like struct means the encoder never needs reflection
// to figure out what "contains: any" actually held.
type ContextTag struct {
	Number int // 0-30
	Kind   ContextKind

	// Raw holds the opaque primitive content when Kind == Implicit.
	Raw []byte
	// Inner holds the boxed child value when Kind == Explicit.
	Inner *Value
}

// BitStringValue is a BIT STRING payload: Payload is the content octets
// and UnusedBits (0-7) is the count of unused trailing bits in the final
// octet.
type BitStringValue struct {
	UnusedBits byte
	Payload    []byte
}

// Value is the tagged sum every ASN.1 shape this codec understands is
// expressed as. Exactly one of the typed fields is meaningful, selected
// by Kind; Value trees are immutable once constructed.
type Value struct {
	Kind Kind

	Bool       bool
	Integer    *big.Int
	BitString  BitStringValue
	OctetString []byte
	// Oid holds the OID in whatever form the adapter gave it: a symbolic
	// name, or an already-dotted string. The encoder resolves it via
	// package oid.
	Oid string
	String      string
	Time        time.Time
	Sequence    []Value
	Set         []Value
	ContextTag  ContextTag
}

// Bool constructs a Bool value.
func Bool(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// Integer constructs an Integer value from an arbitrary-precision int.
func Integer(n *big.Int) Value { return Value{Kind: KindInteger, Integer: n} }

// IntegerFromInt64 widens a native integer losslessly into an Integer value.
func IntegerFromInt64(n int64) Value { return Integer(big.NewInt(n)) }

// BitStringVal constructs a BitString value.
func BitStringVal(unusedBits byte, payload []byte) Value {
	return Value{Kind: KindBitString, BitString: BitStringValue{UnusedBits: unusedBits, Payload: payload}}
}

// OctetStringVal constructs an OctetString value.
func OctetStringVal(payload []byte) Value {
	return Value{Kind: KindOctetString, OctetString: payload}
}

// Null constructs a Null value.
func Null() Value { return Value{Kind: KindNull} }

// OidVal constructs an Oid value from a symbolic name or dotted string.
func OidVal(name string) Value { return Value{Kind: KindOid, Oid: name} }

// Utf8StringVal constructs a Utf8String value.
func Utf8StringVal(s string) Value { return Value{Kind: KindUtf8String, String: s} }

// PrintableStringVal constructs a PrintableString value.
func PrintableStringVal(s string) Value { return Value{Kind: KindPrintableString, String: s} }

// Ia5StringVal constructs an Ia5String value.
func Ia5StringVal(s string) Value { return Value{Kind: KindIa5String, String: s} }

// UtcTimeVal constructs a UtcTime value.
func UtcTimeVal(t time.Time) Value { return Value{Kind: KindUtcTime, Time: t} }

// GeneralizedTimeVal constructs a GeneralizedTime value.
func GeneralizedTimeVal(t time.Time) Value { return Value{Kind: KindGeneralizedTime, Time: t} }

// SequenceVal constructs a Sequence value.
func SequenceVal(items []Value) Value { return Value{Kind: KindSequence, Sequence: items} }

// SetVal constructs a Set value.
func SetVal(items []Value) Value { return Value{Kind: KindSet, Set: items} }

// ContextTagVal constructs a ContextTag value.
func ContextTagVal(ct ContextTag) Value { return Value{Kind: KindContextTag, ContextTag: ct} }
