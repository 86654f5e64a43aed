package asn1value

import (
	"math/big"
	"strconv"
	"time"

	"github.com/keetanet/asn1ber/ber"
	"github.com/keetanet/asn1ber/internal/berio"
)

// toValue is the recursive host -> ber.Value conversion. The bool return
// reports whether host was Undefined and got elided (allowUndefined was
// set and there was nowhere meaningful to put it but a containing array).
func toValue(host any, allowUndefined bool, path string) (ber.Value, bool, error) {
	switch h := host.(type) {
	case nil:
		return ber.Null(), false, nil
	case undefinedSentinel:
		if !allowUndefined {
			return ber.Value{}, false, newAdapterErr(ber.ErrUndefinedRejected, path, "undefined value is not allowed")
		}
		return ber.Value{}, true, nil
	case bool:
		return ber.Bool(h), false, nil
	case int:
		return ber.IntegerFromInt64(int64(h)), false, nil
	case int8:
		return ber.IntegerFromInt64(int64(h)), false, nil
	case int16:
		return ber.IntegerFromInt64(int64(h)), false, nil
	case int32:
		return ber.IntegerFromInt64(int64(h)), false, nil
	case int64:
		return ber.IntegerFromInt64(h), false, nil
	case uint:
		return ber.Integer(new(big.Int).SetUint64(uint64(h))), false, nil
	case uint8:
		return ber.IntegerFromInt64(int64(h)), false, nil
	case uint16:
		return ber.IntegerFromInt64(int64(h)), false, nil
	case uint32:
		return ber.IntegerFromInt64(int64(h)), false, nil
	case uint64:
		return ber.Integer(new(big.Int).SetUint64(h)), false, nil
	case *big.Int:
		return ber.Integer(new(big.Int).Set(h)), false, nil
	case []byte:
		return ber.OctetStringVal(h), false, nil
	case time.Time:
		return inferDate(h), false, nil
	case string:
		return narrowString(h), false, nil
	case []any:
		items := make([]ber.Value, 0, len(h))
		for i, el := range h {
			ev, elided, err := toValue(el, allowUndefined, arrayPath(path, i))
			if err != nil {
				return ber.Value{}, false, err
			}
			if elided {
				continue
			}
			items = append(items, ev)
		}
		return ber.SequenceVal(items), false, nil
	case Oid:
		return ber.OidVal(h.Name), false, nil
	case Set:
		valueVal, _, err := toValue(h.Value, false, path+".value")
		if err != nil {
			return ber.Value{}, false, err
		}
		inner := ber.SequenceVal([]ber.Value{ber.OidVal(h.Name), valueVal})
		return ber.SetVal([]ber.Value{inner}), false, nil
	case BitString:
		return ber.BitStringVal(h.UnusedBits, h.Value), false, nil
	case ContextTag:
		return contextTagToValue(h, allowUndefined, path)
	case String:
		switch h.Kind {
		case StringPrintable:
			return ber.PrintableStringVal(h.Value), false, nil
		case StringIa5:
			return ber.Ia5StringVal(h.Value), false, nil
		case StringUtf8:
			return ber.Utf8StringVal(h.Value), false, nil
		default:
			return ber.Value{}, false, newAdapterErr(ber.ErrUnknownTaggedType, path, "unknown string kind %q", h.Kind)
		}
	case Date:
		t, ok := h.When.(time.Time)
		if !ok {
			return ber.Value{}, false, newAdapterErr(ber.ErrUnsupportedHostType, path, "date tagged object requires a time.Time")
		}
		switch h.Kind {
		case DateUtc:
			return ber.UtcTimeVal(t), false, nil
		case DateGeneral:
			return ber.GeneralizedTimeVal(t), false, nil
		case DateDefault, "":
			return inferDate(t), false, nil
		default:
			return ber.Value{}, false, newAdapterErr(ber.ErrUnknownTaggedType, path, "unknown date kind %q", h.Kind)
		}
	default:
		return ber.Value{}, false, newAdapterErr(ber.ErrUnsupportedHostType, path, "host value of type %T matches no adapter rule", host)
	}
}

func arrayPath(path string, i int) string {
	return path + "[" + strconv.Itoa(i) + "]"
}

// inferDate applies §4.7's timestamp canonical-form rule: whole seconds
// in the UTCTime range become UtcTime, everything else becomes
// GeneralizedTime truncated to millisecond precision.
func inferDate(t time.Time) ber.Value {
	u := t.UTC()
	if u.Nanosecond() == 0 && u.Year() >= 1950 && u.Year() <= 2049 {
		return ber.UtcTimeVal(u)
	}
	ms := u.Nanosecond() / int(time.Millisecond)
	truncated := time.Date(u.Year(), u.Month(), u.Day(), u.Hour(), u.Minute(), u.Second(), ms*int(time.Millisecond), time.UTC)
	return ber.GeneralizedTimeVal(truncated)
}

// narrowString chooses the narrowest legal string tag for a plain host
// string: PrintableString, then Ia5String, then Utf8String.
func narrowString(s string) ber.Value {
	allPrintable := true
	allAscii := true
	for _, r := range s {
		if !isPrintableRune(r) {
			allPrintable = false
		}
		if r > 127 {
			allAscii = false
		}
	}
	switch {
	case allPrintable:
		return ber.PrintableStringVal(s)
	case allAscii:
		return ber.Ia5StringVal(s)
	default:
		return ber.Utf8StringVal(s)
	}
}

func isPrintableRune(r rune) bool {
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

func contextTagToValue(h ContextTag, allowUndefined bool, path string) (ber.Value, bool, error) {
	kind := h.Kind
	if kind == "" {
		kind = KindExplicit
	}

	ct := ber.ContextTag{Number: h.Number}

	switch kind {
	case KindExplicit:
		ct.Kind = ber.Explicit
		inner, elided, err := toValue(h.Contains, allowUndefined, path+".contains")
		if err != nil {
			return ber.Value{}, false, err
		}
		if elided {
			return ber.Value{}, false, newAdapterErr(ber.ErrUndefinedRejected, path, "explicit context tag cannot contain an elided value")
		}
		ct.Inner = &inner
	case KindImplicit:
		ct.Kind = ber.Implicit
		raw, err := implicitContent(h.Contains, path)
		if err != nil {
			return ber.Value{}, false, err
		}
		ct.Raw = raw
	default:
		return ber.Value{}, false, newAdapterErr(ber.ErrUnknownTaggedType, path, "unknown context tag kind %q", kind)
	}

	return ber.ContextTagVal(ct), false, nil
}

// implicitContent resolves the `contains` payload of an Implicit context
// tag: a byte buffer is used as-is, while a primitive is encoded and
// then stripped down to its content octets only (no tag or length),
// since an implicit tag replaces the underlying tag entirely.
func implicitContent(contains any, path string) ([]byte, error) {
	if raw, ok := contains.([]byte); ok {
		return raw, nil
	}

	inner, elided, err := toValue(contains, false, path+".contains")
	if err != nil {
		return nil, err
	}
	if elided {
		return nil, newAdapterErr(ber.ErrUndefinedRejected, path, "implicit context tag cannot contain an elided value")
	}

	full, err := ber.Encode(inner)
	if err != nil {
		return nil, err
	}
	_, tagLen, err := berio.DecodeTag(full)
	if err != nil {
		return nil, err
	}
	_, lenLen, err := berio.DecodeLength(full[tagLen:])
	if err != nil {
		return nil, err
	}
	return full[tagLen+lenLen:], nil
}
