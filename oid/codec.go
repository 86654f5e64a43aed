package oid

import (
	"fmt"
	"strconv"
	"strings"
)

// Encode turns a symbolic name (resolved against the table) or an
// already-dotted OID string into its BER base-128 content bytes.
//
// A name not present in the table and containing no '.' is rejected: the
// caller almost certainly mistyped an alias rather than meaning to encode
// a literal one-arc OID.
func Encode(name string) ([]byte, error) {
	dotted := name
	if resolved, ok := lookupName(name); ok {
		dotted = resolved
	} else if !strings.Contains(name, ".") {
		return nil, fmt.Errorf("oid: unknown symbolic name %q", name)
	}

	arcs, err := parseDotted(dotted)
	if err != nil {
		return nil, fmt.Errorf("oid: %w", err)
	}
	return encodeArcs(arcs)
}

// Decode parses BER base-128 content bytes back to a dotted OID, then
// resolves that dotted form against the symbolic table: if a name maps
// to it, the symbolic name is returned, otherwise the dotted string.
func Decode(content []byte) (string, error) {
	arcs, err := decodeArcs(content)
	if err != nil {
		return "", fmt.Errorf("oid: malformed OID content: %w", err)
	}

	dotted := dottedString(arcs)
	if name, ok := lookupDotted(dotted); ok {
		return name, nil
	}
	return dotted, nil
}

func parseDotted(dotted string) ([]int64, error) {
	parts := strings.Split(dotted, ".")
	if len(parts) < 2 {
		return nil, fmt.Errorf("dotted OID %q needs at least two arcs", dotted)
	}

	arcs := make([]int64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseInt(p, 10, 64)
		if err != nil || v < 0 {
			return nil, fmt.Errorf("invalid arc %q in %q", p, dotted)
		}
		arcs[i] = v
	}

	if arcs[0] < 0 || arcs[0] > 2 {
		return nil, fmt.Errorf("first arc must be 0, 1, or 2, got %d", arcs[0])
	}
	if arcs[0] < 2 && arcs[1] >= 40 {
		return nil, fmt.Errorf("second arc must be < 40 when first arc is %d, got %d", arcs[0], arcs[1])
	}
	return arcs, nil
}

func dottedString(arcs []int64) string {
	parts := make([]string, len(arcs))
	for i, a := range arcs {
		parts[i] = strconv.FormatInt(a, 10)
	}
	return strings.Join(parts, ".")
}

func encodeArcs(arcs []int64) ([]byte, error) {
	first := arcs[0]*40 + arcs[1]

	var out []byte
	out = append(out, encodeSubidentifier(first)...)
	for _, arc := range arcs[2:] {
		out = append(out, encodeSubidentifier(arc)...)
	}
	return out, nil
}

// encodeSubidentifier base-128-encodes one arc, big-endian, with the
// continuation bit (0x80) set on every byte but the last.
func encodeSubidentifier(v int64) []byte {
	if v == 0 {
		return []byte{0x00}
	}

	var groups []byte
	for v > 0 {
		groups = append([]byte{byte(v & 0x7F)}, groups...)
		v >>= 7
	}
	for i := 0; i < len(groups)-1; i++ {
		groups[i] |= 0x80
	}
	return groups
}

func decodeArcs(content []byte) ([]int64, error) {
	if len(content) == 0 {
		return nil, fmt.Errorf("empty OID content")
	}

	subids, err := decodeSubidentifiers(content)
	if err != nil {
		return nil, err
	}

	first := subids[0]
	var arc0, arc1 int64
	switch {
	case first < 40:
		arc0, arc1 = 0, first
	case first < 80:
		arc0, arc1 = 1, first-40
	default:
		arc0, arc1 = 2, first-80
	}

	arcs := make([]int64, 0, len(subids)+1)
	arcs = append(arcs, arc0, arc1)
	arcs = append(arcs, subids[1:]...)
	return arcs, nil
}

func decodeSubidentifiers(content []byte) ([]int64, error) {
	var result []int64
	var cur int64
	haveByte := false

	for _, b := range content {
		cur = cur<<7 | int64(b&0x7F)
		haveByte = true
		if b&0x80 == 0 {
			result = append(result, cur)
			cur = 0
			haveByte = false
		}
	}
	if haveByte {
		return nil, fmt.Errorf("truncated base-128 group")
	}
	if len(result) == 0 {
		return nil, fmt.Errorf("no subidentifiers decoded")
	}
	return result, nil
}
