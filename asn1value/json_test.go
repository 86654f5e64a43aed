package asn1value_test

import (
	"testing"

	"github.com/keetanet/asn1ber/asn1value"
)

func TestFromJSONPlainValues(t *testing.T) {
	host, err := asn1value.FromJSON([]byte(`"test"`))
	if err != nil {
		t.Fatalf("FromJSON failed: %v", err)
	}
	if s, ok := host.(string); !ok || s != "test" {
		t.Errorf("unexpected result: %+v", host)
	}
}

func TestFromJSONTaggedOid(t *testing.T) {
	host, err := asn1value.FromJSON([]byte(`{"type":"oid","oid":"sha256"}`))
	if err != nil {
		t.Fatalf("FromJSON failed: %v", err)
	}
	oid, ok := host.(asn1value.Oid)
	if !ok || oid.Name != "sha256" {
		t.Errorf("unexpected result: %+v", host)
	}
}

func TestFromJSONTaggedSet(t *testing.T) {
	host, err := asn1value.FromJSON([]byte(`{"type":"set","name":"commonName","value":"test"}`))
	if err != nil {
		t.Fatalf("FromJSON failed: %v", err)
	}
	set, ok := host.(asn1value.Set)
	if !ok || set.Name != "commonName" || set.Value != "test" {
		t.Errorf("unexpected result: %+v", host)
	}
}

func TestFromJSONUnknownTypeFails(t *testing.T) {
	_, err := asn1value.FromJSON([]byte(`{"type":"bogus"}`))
	if err == nil {
		t.Fatal("expected an error for an unknown tagged type")
	}
}

func TestFromJSONMissingTypeFails(t *testing.T) {
	_, err := asn1value.FromJSON([]byte(`{"foo":"bar"}`))
	if err == nil {
		t.Fatal("expected an error for an object missing a type discriminator")
	}
}

func TestToJSONRoundTripOid(t *testing.T) {
	data, err := asn1value.ToJSON(asn1value.Oid{Name: "sha256"})
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	host, err := asn1value.FromJSON(data)
	if err != nil {
		t.Fatalf("FromJSON failed: %v", err)
	}
	oid, ok := host.(asn1value.Oid)
	if !ok || oid.Name != "sha256" {
		t.Errorf("unexpected round trip result: %+v", host)
	}
}

func TestToJSONArray(t *testing.T) {
	data, err := asn1value.ToJSON([]any{"a", "b"})
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	host, err := asn1value.FromJSON(data)
	if err != nil {
		t.Fatalf("FromJSON failed: %v", err)
	}
	arr, ok := host.([]any)
	if !ok || len(arr) != 2 {
		t.Errorf("unexpected round trip result: %+v", host)
	}
}
