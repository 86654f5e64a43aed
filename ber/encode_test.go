package ber_test

import (
	"bytes"
	"math/big"
	"testing"
	"time"

	"github.com/keetanet/asn1ber/ber"
)

func TestSeedScenarios(t *testing.T) {
	tests := []struct {
		name string
		v    ber.Value
		want []byte
	}{
		{"true", ber.Bool(true), []byte{0x01, 0x01, 0xFF}},
		{"false", ber.Bool(false), []byte{0x01, 0x01, 0x00}},
		{"42", ber.IntegerFromInt64(42), []byte{0x02, 0x01, 0x2A}},
		{"-0xFFFF", ber.IntegerFromInt64(-0xFFFF), []byte{0x02, 0x03, 0xFF, 0x00, 0x01}},
		{"0x80", ber.IntegerFromInt64(0x80), []byte{0x02, 0x02, 0x00, 0x80}},
		{"printable test", ber.PrintableStringVal("test"), []byte{0x13, 0x04, 0x74, 0x65, 0x73, 0x74}},
		{"ia5 Test_", ber.Ia5StringVal("Test_"), []byte{0x16, 0x05, 0x54, 0x65, 0x73, 0x74, 0x5F}},
		{"utf8 Tesᄳ", ber.Utf8StringVal("Tesᄳ"), []byte{0x0C, 0x06, 0x54, 0x65, 0x73, 0xE1, 0x84, 0xB3}},
		{"oid sha256", ber.OidVal("sha256"), []byte{0x06, 0x09, 0x60, 0x86, 0x48, 0x01, 0x65, 0x03, 0x04, 0x02, 0x01}},
		{
			"set commonName/test",
			ber.SetVal([]ber.Value{ber.SequenceVal([]ber.Value{ber.OidVal("commonName"), ber.PrintableStringVal("test")})}),
			[]byte{0x31, 0x0D, 0x30, 0x0B, 0x06, 0x03, 0x55, 0x04, 0x03, 0x13, 0x04, 0x74, 0x65, 0x73, 0x74},
		},
		{
			"explicit context tag 3 containing 42",
			ber.ContextTagVal(ber.ContextTag{Number: 3, Kind: ber.Explicit, Inner: intVal(42)}),
			[]byte{0xA3, 0x03, 0x02, 0x01, 0x2A},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ber.Encode(tt.v)
			if err != nil {
				t.Fatalf("Encode failed: %v", err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("got %x, want %x", got, tt.want)
			}
		})
	}
}

func intVal(n int64) *ber.Value {
	v := ber.IntegerFromInt64(n)
	return &v
}

func TestEncodeBigIntSeed(t *testing.T) {
	n, ok := new(big.Int).SetString("10203040506070809", 16)
	if !ok {
		t.Fatal("bad literal")
	}
	got, err := ber.Encode(ber.Integer(n))
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	want := []byte{0x02, 0x09, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09}
	if !bytes.Equal(got, want) {
		t.Errorf("got %x, want %x", got, want)
	}

	gotNeg, err := ber.Encode(ber.Integer(new(big.Int).Neg(n)))
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	wantNeg := []byte{0x02, 0x09, 0xFE, 0xFD, 0xFC, 0xFB, 0xFA, 0xF9, 0xF8, 0xF7, 0xF7}
	if !bytes.Equal(gotNeg, wantNeg) {
		t.Errorf("got %x, want %x", gotNeg, wantNeg)
	}
}

func TestEncodeUtcTimeSeed(t *testing.T) {
	ts := time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)
	got, err := ber.Encode(ber.UtcTimeVal(ts))
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	want := []byte{0x17, 0x0D, 0x37, 0x30, 0x30, 0x31, 0x30, 0x31, 0x30, 0x30, 0x30, 0x30, 0x30, 0x30, 0x5A}
	if !bytes.Equal(got, want) {
		t.Errorf("got %x, want %x", got, want)
	}
}

func TestEncodePrintableCharsetViolation(t *testing.T) {
	_, err := ber.Encode(ber.PrintableStringVal("has_underscore"))
	if err == nil {
		t.Fatal("expected error encoding underscore as PrintableString")
	}
}

func TestEncodeDateOutOfRangeForUtcTime(t *testing.T) {
	ts := time.Date(2050, 1, 1, 0, 0, 0, 0, time.UTC)
	_, err := ber.Encode(ber.UtcTimeVal(ts))
	if err == nil {
		t.Fatal("expected error encoding year 2050 as UTCTime")
	}
}

func TestEncodeDepthExceeded(t *testing.T) {
	v := ber.IntegerFromInt64(1)
	for i := 0; i < 300; i++ {
		v = ber.SequenceVal([]ber.Value{v})
	}
	_, err := ber.Encode(v)
	if err == nil {
		t.Fatal("expected depth-exceeded error")
	}
}
