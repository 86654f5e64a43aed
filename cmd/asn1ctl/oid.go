package main

import (
	"fmt"
	"sort"

	"github.com/keetanet/asn1ber/oid"
	"github.com/spf13/cobra"
)

func newOidCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "oid",
		Short: "Inspect the symbolic OID table",
	}
	cmd.AddCommand(newOidListCmd(), newOidLookupCmd())
	return cmd
}

func newOidListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every known symbolic name and its dotted OID",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := oid.All()
			sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
			for _, e := range entries {
				fmt.Printf("%-20s %s\n", e.Name, e.Dotted)
			}
			return nil
		},
	}
}

func newOidLookupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <name-or-dotted>",
		Short: "Encode a symbolic name or dotted OID and print both forms",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := oid.Encode(args[0])
			if err != nil {
				return err
			}
			name, err := oid.Decode(content)
			if err != nil {
				return err
			}
			fmt.Printf("input:  %s\n", args[0])
			fmt.Printf("result: %s\n", name)
			return nil
		},
	}
}
