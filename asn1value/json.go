package asn1value

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/big"
	"time"
)

// FromJSON parses a JSON document into a host value of the shape
// ToValue accepts: JSON null/bool/number/string/array map onto their
// plain Go counterparts (numbers become *big.Int, since the wire model
// is arbitrary-precision), and a JSON object carrying a "type" field
// maps onto the matching tagged struct per §6's discriminator list.
func FromJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("asn1value: invalid JSON: %w", err)
	}
	return fromJSONValue(raw)
}

func fromJSONValue(raw any) (any, error) {
	switch r := raw.(type) {
	case nil:
		return nil, nil
	case bool:
		return r, nil
	case json.Number:
		n, ok := new(big.Int).SetString(r.String(), 10)
		if !ok {
			return nil, fmt.Errorf("asn1value: %q is not an integer", r.String())
		}
		return n, nil
	case string:
		return r, nil
	case []any:
		out := make([]any, 0, len(r))
		for _, el := range r {
			hv, err := fromJSONValue(el)
			if err != nil {
				return nil, err
			}
			out = append(out, hv)
		}
		return out, nil
	case map[string]any:
		return fromJSONObject(r)
	default:
		return nil, fmt.Errorf("asn1value: unsupported JSON value %T", raw)
	}
}

func fromJSONObject(m map[string]any) (any, error) {
	typ, _ := m["type"].(string)
	switch typ {
	case "oid":
		name, _ := m["oid"].(string)
		return Oid{Name: name}, nil
	case "set":
		name, _ := m["name"].(string)
		value, _ := m["value"].(string)
		return Set{Name: name, Value: value}, nil
	case "bitstring":
		payload, err := decodeJSONBytes(m["value"])
		if err != nil {
			return nil, err
		}
		unused, _ := m["unusedBits"].(json.Number)
		n, _ := unused.Int64()
		return BitString{Value: payload, UnusedBits: byte(n)}, nil
	case "context":
		numJSON, _ := m["value"].(json.Number)
		num, _ := numJSON.Int64()
		kind := ContextTagKind(stringOr(m["kind"], string(KindExplicit)))
		containsRaw, ok := m["contains"]
		var contains any
		if ok {
			hv, err := fromJSONValue(containsRaw)
			if err != nil {
				return nil, err
			}
			contains = hv
		}
		return ContextTag{Number: int(num), Kind: kind, Contains: contains}, nil
	case "string":
		kind := StringKind(stringOr(m["kind"], ""))
		value, _ := m["value"].(string)
		return String{Kind: kind, Value: value}, nil
	case "date":
		kind := DateKind(stringOr(m["kind"], string(DateDefault)))
		dateStr, _ := m["date"].(string)
		t, err := time.Parse(time.RFC3339Nano, dateStr)
		if err != nil {
			return nil, fmt.Errorf("asn1value: invalid date %q: %w", dateStr, err)
		}
		return Date{Kind: kind, When: t}, nil
	case "":
		return nil, fmt.Errorf("asn1value: JSON object missing a \"type\" discriminator")
	default:
		return nil, fmt.Errorf("asn1value: unknown tagged type %q", typ)
	}
}

func stringOr(v any, def string) string {
	if s, ok := v.(string); ok {
		return s
	}
	return def
}

func decodeJSONBytes(v any) ([]byte, error) {
	s, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("asn1value: expected a base64 string for byte payload")
	}
	return base64.StdEncoding.DecodeString(s)
}

// ToJSON serializes a host value (as produced by FromValue) back into
// JSON, emitting tagged objects with the §6 "type" discriminators.
func ToJSON(host any) ([]byte, error) {
	v, err := toJSONValue(host)
	if err != nil {
		return nil, err
	}
	return json.Marshal(v)
}

func toJSONValue(host any) (any, error) {
	switch h := host.(type) {
	case nil:
		return nil, nil
	case bool, string:
		return h, nil
	case *big.Int:
		return h.String(), nil
	case []byte:
		return base64.StdEncoding.EncodeToString(h), nil
	case time.Time:
		return h.UTC().Format(time.RFC3339Nano), nil
	case []any:
		out := make([]any, 0, len(h))
		for _, el := range h {
			jv, err := toJSONValue(el)
			if err != nil {
				return nil, err
			}
			out = append(out, jv)
		}
		return out, nil
	case Oid:
		return map[string]any{"type": "oid", "oid": h.Name}, nil
	case Set:
		return map[string]any{"type": "set", "name": h.Name, "value": h.Value}, nil
	case BitString:
		return map[string]any{
			"type":       "bitstring",
			"value":      base64.StdEncoding.EncodeToString(h.Value),
			"unusedBits": h.UnusedBits,
		}, nil
	case ContextTag:
		contains, err := toJSONValue(h.Contains)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"type":     "context",
			"value":    h.Number,
			"kind":     string(h.Kind),
			"contains": contains,
		}, nil
	case String:
		return map[string]any{"type": "string", "kind": string(h.Kind), "value": h.Value}, nil
	case Date:
		t, _ := h.When.(time.Time)
		return map[string]any{"type": "date", "kind": string(h.Kind), "date": t.UTC().Format(time.RFC3339Nano)}, nil
	default:
		return nil, fmt.Errorf("asn1value: host value of type %T has no JSON representation", host)
	}
}
