// Package oid implements the symbolic-name <-> dotted-OID alias table and
// the dotted-OID <-> base-128 BER codec for object identifiers.
//
// The built-in table is the fixed 13-entry set KeetaNet relies on, with
// a Register extension point for callers who want to add their own
// aliases without touching the built-ins.
package oid

import "sync"

// builtin is the process-wide immutable symbolic-name -> dotted-OID
// table. It is never mutated after init.
var builtin = map[string]string{
	"sha256":           "2.16.840.1.101.3.4.2.1",
	"sha3-256":         "2.16.840.1.101.3.4.2.8",
	"sha3-256WithEcDSA": "2.16.840.1.101.3.4.3.10",
	"sha256WithEcDSA":  "1.2.840.10045.4.3.2",
	"ecdsa":            "1.2.840.10045.2.1",
	"ed25519":          "1.3.101.112",
	"secp256k1":        "1.3.132.0.10",
	"account":          "2.23.42.2.7.11",
	"serialNumber":     "2.5.4.5",
	"member":           "2.5.4.31",
	"commonName":       "2.5.4.3",
	"hash":             "1.3.6.1.4.1.8301.3.2.2.1.1",
	"hashData":         "2.16.840.1.101.3.3.1.3",
}

var (
	extraMu      sync.RWMutex
	extraByName  = map[string]string{}
	extraByDotted = map[string]string{}
)

var builtinByDotted = reverse(builtin)

func reverse(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for name, dotted := range m {
		out[dotted] = name
	}
	return out
}

// Register adds an additional symbolic-name alias for a dotted OID. It
// never touches the built-in table; registering a name that collides
// with a built-in is a no-op for lookups (the built-in always wins).
func Register(name, dotted string) {
	extraMu.Lock()
	defer extraMu.Unlock()
	extraByName[name] = dotted
	extraByDotted[dotted] = name
}

// lookupName resolves a symbolic name to its dotted form, consulting the
// built-in table first and then any registered extras.
func lookupName(name string) (dotted string, ok bool) {
	if dotted, ok = builtin[name]; ok {
		return dotted, true
	}
	extraMu.RLock()
	defer extraMu.RUnlock()
	dotted, ok = extraByName[name]
	return dotted, ok
}

// lookupDotted resolves a dotted OID back to its symbolic name, if any is
// known for it.
func lookupDotted(dotted string) (name string, ok bool) {
	if name, ok = builtinByDotted[dotted]; ok {
		return name, true
	}
	extraMu.RLock()
	defer extraMu.RUnlock()
	name, ok = extraByDotted[dotted]
	return name, ok
}

// Entry describes one row of the combined (built-in + registered) table,
// used by the CLI's "oid list" command.
type Entry struct {
	Name   string
	Dotted string
}

// All returns every known symbolic-name/dotted-OID pair, built-ins first.
func All() []Entry {
	entries := make([]Entry, 0, len(builtin))
	for name, dotted := range builtin {
		entries = append(entries, Entry{Name: name, Dotted: dotted})
	}
	extraMu.RLock()
	defer extraMu.RUnlock()
	for name, dotted := range extraByName {
		entries = append(entries, Entry{Name: name, Dotted: dotted})
	}
	return entries
}
