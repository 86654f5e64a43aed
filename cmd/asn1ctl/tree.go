package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/keetanet/asn1ber/ber"
)

// tagName returns the display name printTree uses for a decoded node,
// matching dumpasn1-style output (universal tag keyword, or "[N]" for a
// context-specific tag).
func tagName(v ber.Value) string {
	if v.Kind == ber.KindContextTag {
		return fmt.Sprintf("[%d]", v.ContextTag.Number)
	}
	switch v.Kind {
	case ber.KindBool:
		return "BOOLEAN"
	case ber.KindInteger:
		return "INTEGER"
	case ber.KindBitString:
		return "BIT STRING"
	case ber.KindOctetString:
		return "OCTET STRING"
	case ber.KindNull:
		return "NULL"
	case ber.KindOid:
		return "OBJECT IDENTIFIER"
	case ber.KindUtf8String:
		return "UTF8String"
	case ber.KindPrintableString:
		return "PrintableString"
	case ber.KindIa5String:
		return "IA5String"
	case ber.KindUtcTime:
		return "UTCTime"
	case ber.KindGeneralizedTime:
		return "GeneralizedTime"
	case ber.KindSequence:
		return "SEQUENCE"
	case ber.KindSet:
		return "SET"
	default:
		return "[UNKNOWN]"
	}
}

func previewContent(v ber.Value) string {
	switch v.Kind {
	case ber.KindBool:
		return fmt.Sprintf("%v", v.Bool)
	case ber.KindInteger:
		return v.Integer.String()
	case ber.KindBitString:
		preview := hex.EncodeToString(v.BitString.Payload[:min(8, len(v.BitString.Payload))])
		suffix := ""
		if len(v.BitString.Payload) > 8 {
			suffix = "…"
		}
		return fmt.Sprintf("(%d unused bit) %s%s", v.BitString.UnusedBits, preview, suffix)
	case ber.KindOctetString:
		preview := strings.ToUpper(hex.EncodeToString(v.OctetString[:min(16, len(v.OctetString))]))
		suffix := ""
		if len(v.OctetString) > 16 {
			suffix = "…"
		}
		return fmt.Sprintf("(%d byte) %s%s", len(v.OctetString), preview, suffix)
	case ber.KindOid:
		return v.Oid
	case ber.KindUtf8String, ber.KindPrintableString, ber.KindIa5String:
		s := v.String
		if len(s) > 64 {
			s = s[:64] + "…"
		}
		return s
	case ber.KindUtcTime, ber.KindGeneralizedTime:
		return v.Time.Format("2006-01-02 15:04:05 MST")
	case ber.KindSequence:
		return fmt.Sprintf("(%d elem)", len(v.Sequence))
	case ber.KindSet:
		return fmt.Sprintf("(%d elem)", len(v.Set))
	case ber.KindContextTag:
		if v.ContextTag.Kind == ber.Explicit {
			return ""
		}
		preview := strings.ToUpper(hex.EncodeToString(v.ContextTag.Raw[:min(16, len(v.ContextTag.Raw))]))
		return fmt.Sprintf("(%d byte) %s", len(v.ContextTag.Raw), preview)
	default:
		return ""
	}
}

func children(v ber.Value) []ber.Value {
	switch v.Kind {
	case ber.KindSequence:
		return v.Sequence
	case ber.KindSet:
		return v.Set
	case ber.KindContextTag:
		if v.ContextTag.Kind == ber.Explicit && v.ContextTag.Inner != nil {
			return []ber.Value{*v.ContextTag.Inner}
		}
	}
	return nil
}

// printTree renders v in the indented tree format of the debug printer
// this is generalized from, writing to sb.
func printTree(sb *strings.Builder, v ber.Value, indent string, isLast bool) {
	prefix := indent
	if indent != "" {
		if isLast {
			prefix += "└─ "
		} else {
			prefix += "├─ "
		}
	} else {
		prefix = "* "
	}

	content := previewContent(v)
	if content != "" {
		fmt.Fprintf(sb, "%s%s %s\n", prefix, tagName(v), content)
	} else {
		fmt.Fprintf(sb, "%s%s\n", prefix, tagName(v))
	}

	kids := children(v)
	if len(kids) == 0 {
		return
	}
	newIndent := indent
	if indent != "" {
		if isLast {
			newIndent += "   "
		} else {
			newIndent += "│  "
		}
	}
	for i, child := range kids {
		printTree(sb, child, newIndent, i == len(kids)-1)
	}
}
