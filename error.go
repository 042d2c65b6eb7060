// Copyright (c) 2026 The coinuri developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coinuri

// ErrorKind identifies a kind of error.
type ErrorKind string

// These constants are used to identify a specific ErrorKind.
const (
	// ErrInvalidSyntax is returned when the input is structurally
	// malformed, such as missing a scheme prefix, containing more than
	// one question mark, or containing a parameter without a separator.
	ErrInvalidSyntax = ErrorKind("ErrInvalidSyntax")

	// ErrUnsupportedScheme is returned when the URI scheme is not
	// claimed by any registered coin type, or does not match the coin
	// type the caller restricted parsing to.
	ErrUnsupportedScheme = ErrorKind("ErrUnsupportedScheme")

	// ErrInvalidAddress is returned when the address part of the URI
	// fails validation under every candidate coin type.
	ErrInvalidAddress = ErrorKind("ErrInvalidAddress")

	// ErrDuplicateField is returned when the same field name occurs
	// more than once, regardless of whether the values are equal.
	ErrDuplicateField = ErrorKind("ErrDuplicateField")

	// ErrRequiredFieldUnknown is returned when a req- prefixed field is
	// not understood.  An unrecognized required directive makes the true
	// intent of the URI unknowable, so it is fatal even when the value
	// is well formed.
	ErrRequiredFieldUnknown = ErrorKind("ErrRequiredFieldUnknown")

	// ErrInvalidAmount is returned when the amount field is not a valid
	// decimal number for the resolved coin type.
	ErrInvalidAmount = ErrorKind("ErrInvalidAmount")

	// ErrAmountTooPrecise is returned when the amount field has more
	// decimal places than the atomic unit of the resolved coin type can
	// represent.
	ErrAmountTooPrecise = ErrorKind("ErrAmountTooPrecise")

	// ErrNegativeAmount is returned when the amount field is negative.
	ErrNegativeAmount = ErrorKind("ErrNegativeAmount")

	// ErrAmbiguousCurrency is returned when an amount field is present
	// but no coin type could be resolved to decode it, which happens
	// when the URI has no address and the caller did not supply a coin
	// type.
	ErrAmbiguousCurrency = ErrorKind("ErrAmbiguousCurrency")

	// ErrMissingDestination is returned when the URI names neither a
	// spendable address nor a payment request URL.
	ErrMissingDestination = ErrorKind("ErrMissingDestination")

	// ErrInvalidArgument is returned from the build path when it is
	// invoked with arguments that can never produce a valid URI, such
	// as a nil address or a negative amount.
	ErrInvalidArgument = ErrorKind("ErrInvalidArgument")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies a payment URI parsing or building error.  It has full
// support for errors.Is and errors.As, so the caller can ascertain the
// specific reason for the error by checking the underlying error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// uriError creates an Error given a set of arguments.
func uriError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
