// Error values for the ilang type system.

package types

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArity reports a compound type constructed from too few
	// members: products and functions need at least two members and one
	// parameter respectively, sums need at least one member.
	ErrInvalidArity = errors.New("invalid compound type arity")

	// ErrUnknownEncoding reports a string encoding outside the
	// recognized set.
	ErrUnknownEncoding = errors.New("unknown string encoding")

	// ErrDuplicateType reports an attempted insert whose mangled name is
	// already bound to a live node. It indicates a naming-scheme
	// collision, never a normal interning hit.
	ErrDuplicateType = errors.New("duplicate mangled type name")
)

func errInvalidArity(family string, got, want int) error {
	return fmt.Errorf("%w: %s type needs at least %d member(s), got %d", ErrInvalidArity, family, want, got)
}

func errUnknownEncoding(encoding StringEncoding) error {
	return fmt.Errorf("%w: %d", ErrUnknownEncoding, int(encoding))
}

func errDuplicateType(mangled string) error {
	return fmt.Errorf("%w: %q", ErrDuplicateType, mangled)
}
