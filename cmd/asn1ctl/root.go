package main

import "github.com/spf13/cobra"

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "asn1ctl",
		Short: "KeetaNet ASN.1 BER codec CLI",
		Long:  `Encode host values to BER, decode BER back to host values, and inspect the symbolic OID table.`,
	}

	rootCmd.AddCommand(
		newEncodeCmd(),
		newDecodeCmd(),
		newOidCmd(),
		newServeCmd(),
		newVersionCmd(),
	)

	return rootCmd
}
