package berio_test

import (
	"testing"

	"github.com/keetanet/asn1ber/internal/berio"
)

func TestTagEncode(t *testing.T) {
	tests := []struct {
		name string
		tag  berio.Tag
		want byte
	}{
		{"universal integer", berio.Tag{Class: berio.ClassUniversal, Constructed: false, Number: 2}, 0x02},
		{"universal sequence", berio.Tag{Class: berio.ClassUniversal, Constructed: true, Number: 0x10}, 0x30},
		{"context explicit 3", berio.Tag{Class: berio.ClassContext, Constructed: true, Number: 3}, 0xA3},
		{"context implicit 3", berio.Tag{Class: berio.ClassContext, Constructed: false, Number: 3}, 0x83},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.tag.Encode()
			if err != nil {
				t.Fatalf("Encode failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %#x, want %#x", got, tt.want)
			}
		})
	}
}

func TestTagEncodeRejectsHighNumber(t *testing.T) {
	_, err := berio.Tag{Number: 31}.Encode()
	if err == nil {
		t.Fatal("expected error for tag number 31")
	}
}

func TestDecodeTagRoundTrip(t *testing.T) {
	tag := berio.Tag{Class: berio.ClassContext, Constructed: true, Number: 5}
	b, err := tag.Encode()
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	got, n, err := berio.DecodeTag([]byte{b, 0xFF})
	if err != nil {
		t.Fatalf("DecodeTag failed: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 consumed byte, got %d", n)
	}
	if got != tag {
		t.Errorf("got %+v, want %+v", got, tag)
	}
}

func TestDecodeTagTruncated(t *testing.T) {
	_, _, err := berio.DecodeTag(nil)
	if err == nil {
		t.Fatal("expected error on empty input")
	}
}

func TestDecodeTagHighFormRejected(t *testing.T) {
	_, _, err := berio.DecodeTag([]byte{0x1F})
	if err == nil {
		t.Fatal("expected error for high tag-number form")
	}
}
