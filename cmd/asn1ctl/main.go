// Command asn1ctl exercises the asn1ber codec from the command line:
// encode JSON host values to BER, decode BER back to JSON, look up
// symbolic OIDs, and run the debug HTTP server.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
