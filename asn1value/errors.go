package asn1value

import (
	"fmt"

	"github.com/keetanet/asn1ber/ber"
)

func newAdapterErr(kind ber.ErrorKind, path string, format string, args ...any) *ber.Error {
	return &ber.Error{Kind: kind, Message: fmt.Sprintf(format, args...), Path: path}
}
