package main

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"github.com/keetanet/asn1ber/asn1value"
	"github.com/keetanet/asn1ber/ber"
	"github.com/spf13/cobra"
)

type encodeFlags struct {
	input          string
	output         string
	format         string // "base64" or "hex"
	allowUndefined bool
}

func newEncodeCmd() *cobra.Command {
	flags := &encodeFlags{}

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode a JSON host value into BER bytes",
		Example: `  # Encode a plain string
  echo '"test"' | asn1ctl encode

  # Encode a tagged OID object
  echo '{"type":"oid","oid":"sha256"}' | asn1ctl encode --format hex`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(flags)
		},
	}

	cmd.Flags().StringVarP(&flags.input, "in", "i", "-", "input file (JSON host value), - for stdin")
	cmd.Flags().StringVarP(&flags.output, "out", "o", "-", "output file, - for stdout")
	cmd.Flags().StringVar(&flags.format, "format", "base64", "output encoding: base64 or hex")
	cmd.Flags().BoolVar(&flags.allowUndefined, "allow-undefined", false, "elide undefined array elements instead of rejecting them")

	return cmd
}

func runEncode(flags *encodeFlags) error {
	data, err := readInput(flags.input)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	host, err := asn1value.FromJSON(data)
	if err != nil {
		return err
	}

	val, err := asn1value.ToValue(host, flags.allowUndefined)
	if err != nil {
		return err
	}

	encoded, err := ber.Encode(val)
	if err != nil {
		return err
	}

	var out string
	switch flags.format {
	case "hex":
		out = hex.EncodeToString(encoded)
	case "base64":
		out = base64.StdEncoding.EncodeToString(encoded)
	default:
		return fmt.Errorf("unknown output format %q, want base64 or hex", flags.format)
	}

	return writeOutput(flags.output, []byte(out+"\n"))
}
