// Package errs defines the error taxonomy shared by every package in this
// module. Every failure is a precondition violation; none are recoverable by
// retrying the same call.
package errs

import (
	"fmt"

	"github.com/pkg/errors"
)

const (
	errInvalidEncoding  = "invalid encoding"
	errNotOnCurve       = "not on curve"
	errNonResidue       = "not a quadratic residue"
	errZeroInverse      = "modular inverse of zero"
	errScalarOutOfRange = "scalar out of range"
	errBadDomainTag     = "invalid pedersen domain tag"
	errTypeMismatch     = "unsupported hash input type"
)

var (
	// ErrInvalidEncoding indicates a compressed point or byte buffer with the
	// wrong length or unknown flag bits.
	ErrInvalidEncoding = errors.New(errInvalidEncoding)

	// ErrNotOnCurve indicates decompressed coordinates that do not satisfy
	// the curve equation.
	ErrNotOnCurve = errors.New(errNotOnCurve)

	// ErrNonResidue indicates a square root was requested of a value with no
	// square root in the field.
	ErrNonResidue = errors.New(errNonResidue)

	// ErrZeroInverse indicates a modular inverse of zero was requested.
	ErrZeroInverse = errors.New(errZeroInverse)

	// ErrScalarOutOfRange indicates a scalar outside the range an API
	// demands, e.g. pedersen.HashScalars or eddsa key parsing.
	ErrScalarOutOfRange = errors.New(errScalarOutOfRange)

	// ErrBadDomainTag indicates a Pedersen basepoint name longer than 28
	// bytes, or a sequence number above 16 bits.
	ErrBadDomainTag = errors.New(errBadDomainTag)

	// ErrTypeMismatch indicates a heterogeneous hash input of an
	// unsupported kind.
	ErrTypeMismatch = errors.New(errTypeMismatch)
)

// Wrap prefixes err with a caller-supplied context string, the way
// internal.NewError composes a prefix with an underlying error.
func Wrap(prefix string, err error) error {
	return fmt.Errorf("%s: %w", prefix, err)
}
