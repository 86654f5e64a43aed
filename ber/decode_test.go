package ber_test

import (
	"testing"

	"github.com/keetanet/asn1ber/ber"
)

func TestDecodeSeedScenarios(t *testing.T) {
	tests := []struct {
		name  string
		bytes []byte
		kind  ber.Kind
	}{
		{"true", []byte{0x01, 0x01, 0xFF}, ber.KindBool},
		{"42", []byte{0x02, 0x01, 0x2A}, ber.KindInteger},
		{"printable test", []byte{0x13, 0x04, 0x74, 0x65, 0x73, 0x74}, ber.KindPrintableString},
		{"oid sha256", []byte{0x06, 0x09, 0x60, 0x86, 0x48, 0x01, 0x65, 0x03, 0x04, 0x02, 0x01}, ber.KindOid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ber.Decode(tt.bytes)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if v.Kind != tt.kind {
				t.Errorf("got kind %v, want %v", v.Kind, tt.kind)
			}
		})
	}
}

func TestDecodeTrue(t *testing.T) {
	v, err := ber.Decode([]byte{0x01, 0x01, 0xFF})
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !v.Bool {
		t.Error("expected true")
	}
}

func TestDecodeBoolAcceptsAnyNonZero(t *testing.T) {
	v, err := ber.Decode([]byte{0x01, 0x01, 0x01})
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !v.Bool {
		t.Error("expected true for any non-zero byte")
	}
}

func TestDecodeOidSymbolic(t *testing.T) {
	v, err := ber.Decode([]byte{0x06, 0x09, 0x60, 0x86, 0x48, 0x01, 0x65, 0x03, 0x04, 0x02, 0x01})
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if v.Oid != "sha256" {
		t.Errorf("got %q, want sha256", v.Oid)
	}
}

func TestDecodeSetShape(t *testing.T) {
	data := []byte{0x31, 0x0D, 0x30, 0x0B, 0x06, 0x03, 0x55, 0x04, 0x03, 0x13, 0x04, 0x74, 0x65, 0x73, 0x74}
	v, err := ber.Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if v.Kind != ber.KindSet || len(v.Set) != 1 {
		t.Fatalf("unexpected shape: %+v", v)
	}
	seq := v.Set[0].Sequence
	if len(seq) != 2 || seq[0].Oid != "commonName" || seq[1].String != "test" {
		t.Errorf("unexpected set contents: %+v", seq)
	}
}

func TestDecodeSetShapeUnsupported(t *testing.T) {
	// Two oids inside the Sequence, not [Oid, string].
	seq, err := ber.Encode(ber.SequenceVal([]ber.Value{ber.OidVal("sha256"), ber.OidVal("ecdsa")}))
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	data := append([]byte{0x31, byte(len(seq))}, seq...)

	if _, err := ber.Decode(data); err == nil {
		t.Fatal("expected SetShapeUnsupported error")
	}
}

func TestDecodeTrailingBytesError(t *testing.T) {
	_, err := ber.Decode([]byte{0x01, 0x01, 0xFF, 0x00})
	if err == nil {
		t.Fatal("expected trailing bytes error")
	}
}

func TestDecodeExplicitContextTag(t *testing.T) {
	v, err := ber.Decode([]byte{0xA3, 0x03, 0x02, 0x01, 0x2A})
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if v.Kind != ber.KindContextTag || v.ContextTag.Number != 3 || v.ContextTag.Kind != ber.Explicit {
		t.Fatalf("unexpected context tag: %+v", v.ContextTag)
	}
	if v.ContextTag.Inner == nil || v.ContextTag.Inner.Integer.Int64() != 42 {
		t.Fatalf("unexpected inner value: %+v", v.ContextTag.Inner)
	}
}

func TestDecodeImplicitContextTag(t *testing.T) {
	v, err := ber.Decode([]byte{0x83, 0x02, 0xAA, 0xBB})
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if v.ContextTag.Kind != ber.Implicit || len(v.ContextTag.Raw) != 2 {
		t.Fatalf("unexpected context tag: %+v", v.ContextTag)
	}
}

// Negative test from §8: decoding arbitrary ASCII text as a BER string
// must raise a typed error (the first byte 'N' = 0x4E decodes as a
// primitive application-class tag 14, and the next byte 'e' = 0x65
// claims 101 content bytes, more than the input holds, so decoding fails
// with a truncated-input error).
func TestDecodeArbitraryTextFails(t *testing.T) {
	_, err := ber.Decode([]byte("Never gonna give you up"))
	if err == nil {
		t.Fatal("expected a typed decode error")
	}
	var berErr *ber.Error
	if !asBerError(err, &berErr) {
		t.Fatalf("expected *ber.Error, got %T: %v", err, err)
	}
}

func asBerError(err error, target **ber.Error) bool {
	if e, ok := err.(*ber.Error); ok {
		*target = e
		return true
	}
	return false
}

func TestDecodeTruncatedInput(t *testing.T) {
	_, err := ber.Decode([]byte{0x02})
	if err == nil {
		t.Fatal("expected truncated input error")
	}
}

func TestRoundTripAllSeeds(t *testing.T) {
	values := []ber.Value{
		ber.Bool(true),
		ber.Bool(false),
		ber.IntegerFromInt64(42),
		ber.IntegerFromInt64(-0xFFFF),
		ber.PrintableStringVal("test"),
		ber.Ia5StringVal("Test_"),
		ber.Utf8StringVal("Tesᄳ"),
		ber.OidVal("sha256"),
	}

	for _, v := range values {
		enc, err := ber.Encode(v)
		if err != nil {
			t.Fatalf("Encode failed: %v", err)
		}
		got, err := ber.Decode(enc)
		if err != nil {
			t.Fatalf("Decode failed: %v", err)
		}
		reenc, err := ber.Encode(got)
		if err != nil {
			t.Fatalf("re-Encode failed: %v", err)
		}
		if string(reenc) != string(enc) {
			t.Errorf("round trip mismatch for %+v: %x != %x", v, reenc, enc)
		}
	}
}
