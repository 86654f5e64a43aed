package ber

import "fmt"

// ErrorKind enumerates the typed error taxonomy of §4.6/§7.
type ErrorKind string

const (
	ErrTruncatedInput       ErrorKind = "TruncatedInput"
	ErrLengthOverflow       ErrorKind = "LengthOverflow"
	ErrTrailingBytes        ErrorKind = "TrailingBytes"
	ErrUnknownTag           ErrorKind = "UnknownTag"
	ErrIntegerOverflow      ErrorKind = "IntegerOverflow"
	ErrOidMalformed         ErrorKind = "OidMalformed"
	ErrOidUnknownName       ErrorKind = "OidUnknownName"
	ErrStringCharsetViolation ErrorKind = "StringCharsetViolation"
	ErrDateOutOfRange       ErrorKind = "DateOutOfRange"
	ErrSetShapeUnsupported  ErrorKind = "SetShapeUnsupported"
	ErrTypeMismatch         ErrorKind = "TypeMismatch"
	ErrUndefinedRejected    ErrorKind = "UndefinedRejected"
	ErrUnknownTaggedType    ErrorKind = "UnknownTaggedType"
	ErrDepthExceeded        ErrorKind = "DepthExceeded"
	ErrUnsupportedHostType  ErrorKind = "UnsupportedHostType"
)

// Error is the single error type every codec failure surfaces as. Offset
// is the byte position at which a decode failure occurred, when known;
// Path is the tagged-object key path for an encode failure, when known.
type Error struct {
	Kind    ErrorKind
	Message string
	Offset  int
	Path    string
}

func (e *Error) Error() string {
	switch {
	case e.Path != "":
		return fmt.Sprintf("ber: %s at %s: %s", e.Kind, e.Path, e.Message)
	case e.Offset != 0:
		return fmt.Sprintf("ber: %s at offset %d: %s", e.Kind, e.Offset, e.Message)
	default:
		return fmt.Sprintf("ber: %s: %s", e.Kind, e.Message)
	}
}

func newDecodeErr(kind ErrorKind, offset int, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Offset: offset}
}

func newEncodeErr(kind ErrorKind, path string, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Path: path}
}
