// Package asn1value adapts idiomatic Go host values onto the ber.Value
// tagged sum and back, including canonical-form inference for strings,
// dates and integers that the wire format leaves ambiguous.
//
// The host side is represented with ordinary Go values (bool, the
// built-in integer kinds, *big.Int, []byte, string, time.Time, []any,
// nil) plus six small tagged-object structs for shapes BER can carry
// that a bare Go value can't: Oid, Set, BitString, ContextTag, an
// explicit String-kind override, and an explicit Date-kind override.
package asn1value

import "github.com/keetanet/asn1ber/ber"

// Oid is the tagged-object counterpart of `{type:'oid', oid:name}`.
type Oid struct {
	Name string
}

// Set is the tagged-object counterpart of
// `{type:'set', name:Oid, value:string}`.
type Set struct {
	Name  string
	Value string
}

// BitString is the tagged-object counterpart of
// `{type:'bitstring', value:bytes, unusedBits?:0..7}`.
type BitString struct {
	Value      []byte
	UnusedBits byte
}

// ContextTagKind mirrors ber.ContextKind at the host-value layer.
type ContextTagKind string

const (
	KindImplicit ContextTagKind = "implicit"
	KindExplicit ContextTagKind = "explicit"
)

// ContextTag is the tagged-object counterpart of
// `{type:'context', value:N, kind?:..., contains:X}`. Kind defaults to
// Explicit when empty.
type ContextTag struct {
	Number   int
	Kind     ContextTagKind
	Contains any
}

// StringKind selects one of the three string tags, bypassing narrowing
// inference.
type StringKind string

const (
	StringPrintable StringKind = "printable"
	StringIa5       StringKind = "ia5"
	StringUtf8      StringKind = "utf8"
)

// String is the tagged-object counterpart of
// `{type:'string', kind:..., value:string}`.
type String struct {
	Kind  StringKind
	Value string
}

// DateKind selects UtcTime or GeneralizedTime explicitly, or falls back
// to the normal inference rule when Default (or empty).
type DateKind string

const (
	DateUtc     DateKind = "utc"
	DateGeneral DateKind = "general"
	DateDefault DateKind = "default"
)

// Date is the tagged-object counterpart of
// `{type:'date', kind?:..., date:timestamp}`.
type Date struct {
	Kind DateKind
	When any // time.Time
}

// undefinedSentinel is the host-side stand-in for "undefined", distinct
// from plain nil (which always maps to Null). Use the Undefined value,
// never this type directly.
type undefinedSentinel struct{}

// Undefined is the sentinel host value for "undefined": it is rejected
// with ErrUndefinedRejected, or elided entirely from a containing array
// when the caller opts in via allowUndefined.
var Undefined = undefinedSentinel{}

// ToValue adapts a host value into a ber.Value using canonical-form
// inference. Undefined is rejected unless allowUndefined is set, in which
// case Undefined array elements are elided; a top-level Undefined (or one
// inside a context tag) is rejected with ErrUndefinedRejected even then.
func ToValue(host any, allowUndefined bool) (ber.Value, error) {
	v, elided, err := toValue(host, allowUndefined, "$")
	if err != nil {
		return ber.Value{}, err
	}
	if elided {
		return ber.Value{}, newAdapterErr(ber.ErrUndefinedRejected, "$", "top-level value is undefined and has nothing to elide into")
	}
	return v, nil
}

// FromValue adapts a decoded ber.Value back into a host value.
func FromValue(v ber.Value) (any, error) {
	return fromValue(v)
}
