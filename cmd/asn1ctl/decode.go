package main

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/keetanet/asn1ber/asn1value"
	"github.com/keetanet/asn1ber/ber"
	"github.com/spf13/cobra"
)

type decodeFlags struct {
	input  string
	output string
	format string // "base64" or "hex"
	tree   bool
}

func newDecodeCmd() *cobra.Command {
	flags := &decodeFlags{}

	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode BER bytes into a JSON host value",
		Example: `  echo "130474657374" | asn1ctl decode --format hex
  asn1ctl decode --in cert.hex --format hex --tree`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(flags)
		},
	}

	cmd.Flags().StringVarP(&flags.input, "in", "i", "-", "input file (encoded BER), - for stdin")
	cmd.Flags().StringVarP(&flags.output, "out", "o", "-", "output file, - for stdout")
	cmd.Flags().StringVar(&flags.format, "format", "base64", "input encoding: base64 or hex")
	cmd.Flags().BoolVar(&flags.tree, "tree", false, "pretty-print the parsed structure instead of JSON")

	return cmd
}

func runDecode(flags *decodeFlags) error {
	raw, err := readInput(flags.input)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	text := strings.TrimSpace(string(raw))

	var data []byte
	switch flags.format {
	case "hex":
		data, err = hex.DecodeString(text)
	case "base64":
		data, err = base64.StdEncoding.DecodeString(text)
	default:
		return fmt.Errorf("unknown input format %q, want base64 or hex", flags.format)
	}
	if err != nil {
		return fmt.Errorf("decoding %s input: %w", flags.format, err)
	}

	val, err := ber.Decode(data)
	if err != nil {
		return err
	}

	if flags.tree {
		var sb strings.Builder
		printTree(&sb, val, "", true)
		return writeOutput(flags.output, []byte(sb.String()))
	}

	host, err := asn1value.FromValue(val)
	if err != nil {
		return err
	}
	out, err := asn1value.ToJSON(host)
	if err != nil {
		return err
	}
	return writeOutput(flags.output, append(out, '\n'))
}
