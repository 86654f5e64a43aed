package bigint_test

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/keetanet/asn1ber/internal/bigint"
)

func TestToBufferSeedScenarios(t *testing.T) {
	tests := []struct {
		name string
		n    *big.Int
		want []byte
	}{
		{"42", big.NewInt(42), []byte{0x2A}},
		{"-0xFFFF", big.NewInt(-0xFFFF), []byte{0xFF, 0x00, 0x01}},
		{"0x80", big.NewInt(0x80), []byte{0x00, 0x80}},
		{"zero", big.NewInt(0), []byte{0x00}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := bigint.ToBuffer(tt.n)
			if !bytes.Equal(got, tt.want) {
				t.Errorf("ToBuffer(%v) = %x, want %x", tt.n, got, tt.want)
			}
		})
	}
}

func TestToBufferBigValueAndNegation(t *testing.T) {
	n, ok := new(big.Int).SetString("10203040506070809", 16)
	if !ok {
		t.Fatal("bad test literal")
	}

	want := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09}
	got := bigint.ToBuffer(n)
	if !bytes.Equal(got, want) {
		t.Errorf("ToBuffer(n) = %x, want %x", got, want)
	}

	wantNeg := []byte{0xFE, 0xFD, 0xFC, 0xFB, 0xFA, 0xF9, 0xF8, 0xF7, 0xF7}
	gotNeg := bigint.ToBuffer(new(big.Int).Neg(n))
	if !bytes.Equal(gotNeg, wantNeg) {
		t.Errorf("ToBuffer(-n) = %x, want %x", gotNeg, wantNeg)
	}
}

func TestFromBufferInverse(t *testing.T) {
	tests := []*big.Int{
		big.NewInt(0),
		big.NewInt(1),
		big.NewInt(-1),
		big.NewInt(42),
		big.NewInt(-0xFFFF),
		big.NewInt(0x80),
		new(big.Int).Lsh(big.NewInt(1), 300),
		new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 300)),
	}

	for _, n := range tests {
		buf := bigint.ToBuffer(n)
		got := bigint.FromBuffer(buf)
		if got.Cmp(n) != 0 {
			t.Errorf("FromBuffer(ToBuffer(%v)) = %v", n, got)
		}
	}
}

func TestToBufferMinimality(t *testing.T) {
	// A buffer produced by ToBuffer must already be minimal: re-encoding
	// FromBuffer's result must reproduce the exact same bytes.
	for _, n := range []int64{0, 1, -1, 127, 128, -128, -129, 255, -255, 65535, -65535} {
		buf := bigint.ToBuffer(big.NewInt(n))
		roundTrip := bigint.ToBuffer(bigint.FromBuffer(buf))
		if !bytes.Equal(buf, roundTrip) {
			t.Errorf("n=%d: buf=%x not stable under FromBuffer/ToBuffer, got %x", n, buf, roundTrip)
		}
	}
}
