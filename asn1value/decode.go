package asn1value

import (
	"math/big"

	"github.com/keetanet/asn1ber/ber"
)

// fromValue is the inverse of toValue: it produces tagged objects only
// where lossless round-trip requires them, per §4.7.
func fromValue(v ber.Value) (any, error) {
	switch v.Kind {
	case ber.KindBool:
		return v.Bool, nil
	case ber.KindInteger:
		return new(big.Int).Set(v.Integer), nil
	case ber.KindBitString:
		return BitString{Value: v.BitString.Payload, UnusedBits: v.BitString.UnusedBits}, nil
	case ber.KindOctetString:
		return append([]byte(nil), v.OctetString...), nil
	case ber.KindNull:
		return nil, nil
	case ber.KindOid:
		return Oid{Name: v.Oid}, nil
	case ber.KindUtf8String, ber.KindPrintableString, ber.KindIa5String:
		return v.String, nil
	case ber.KindUtcTime, ber.KindGeneralizedTime:
		return v.Time, nil
	case ber.KindSequence:
		items := make([]any, 0, len(v.Sequence))
		for _, el := range v.Sequence {
			hv, err := fromValue(el)
			if err != nil {
				return nil, err
			}
			items = append(items, hv)
		}
		return items, nil
	case ber.KindSet:
		return setFromValue(v)
	case ber.KindContextTag:
		return contextTagFromValue(v.ContextTag)
	default:
		return nil, newAdapterErr(ber.ErrUnsupportedHostType, "$", "decoded value of kind %v has no host representation", v.Kind)
	}
}

// setFromValue reconstructs the Set tagged object from the single
// [Oid, string] Sequence the decoder already validated the Set's shape
// down to.
func setFromValue(v ber.Value) (any, error) {
	if len(v.Set) != 1 || v.Set[0].Kind != ber.KindSequence || len(v.Set[0].Sequence) != 2 {
		return nil, newAdapterErr(ber.ErrSetShapeUnsupported, "$", "decoded Set does not have the [Oid, string] shape")
	}
	seq := v.Set[0].Sequence
	name, value := seq[0], seq[1]
	if name.Kind != ber.KindOid {
		return nil, newAdapterErr(ber.ErrSetShapeUnsupported, "$", "decoded Set's first element is not an Oid")
	}
	return Set{Name: name.Oid, Value: value.String}, nil
}

func contextTagFromValue(ct ber.ContextTag) (any, error) {
	switch ct.Kind {
	case ber.Explicit:
		var contains any
		if ct.Inner != nil {
			inner, err := fromValue(*ct.Inner)
			if err != nil {
				return nil, err
			}
			contains = inner
		}
		return ContextTag{Number: ct.Number, Kind: KindExplicit, Contains: contains}, nil
	case ber.Implicit:
		return ContextTag{Number: ct.Number, Kind: KindImplicit, Contains: append([]byte(nil), ct.Raw...)}, nil
	default:
		return nil, newAdapterErr(ber.ErrUnknownTaggedType, "$", "unknown context tag kind")
	}
}
