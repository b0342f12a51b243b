// Basic type representation for the ilang type system.
// This module provides the interned type node that all type operations share.

package types

// ====== Core Type Representation ======

// Type is the interned representation of a single ilang type.
//
// Two Types denote the same type if and only if they are the same
// allocation. Structural equality is enforced once, at construction time,
// by the interning tables in TypeData; afterwards handle comparison is the
// only comparison callers should perform.
type Type struct {
	// base is the immediate ancestor of the type within the same TypeData.
	// The Infinity sentinel is its own base; no other cycle exists.
	base *Type

	// str is the type name as it appears in source code, e.g. "Natural32"
	// or "Natural -> Integer".
	str string

	// mangled is the type name as it appears in binaries. It is the sole
	// canonicalization and ordering key for a type; it never aliases
	// between two live nodes of one TypeData.
	mangled string

	// types holds the inner types of the type.
	//
	// Empty for atomic types. For a sum type it is the deduplicated member
	// set in mangled-name order; for a product type it is the member tuple
	// in caller order; for a function type it is the parameter list in
	// order followed by the result type.
	types []*Type
}

// Handle is a stable, non-owning reference to an interned type node.
// A Handle stays valid for the remaining life of the TypeData that issued
// it; the store never removes entries. A nil Handle signals a query miss.
type Handle = *Type

// Base returns the immediate ancestor of the type. The Infinity sentinel
// returns itself.
func (t *Type) Base() Handle { return t.base }

// String returns the type name as it would appear in code.
func (t *Type) String() string {
	if t == nil {
		return "<nil>"
	}

	return t.str
}

// Mangled returns the type name as it would appear in binaries.
func (t *Type) Mangled() string { return t.mangled }

// Types returns the inner types of the type. Callers must not modify the
// returned slice.
func (t *Type) Types() []Handle { return t.types }

// ====== String Encodings ======

// StringEncoding identifies a refined string type's character encoding.
type StringEncoding int

const (
	EncodingAscii StringEncoding = iota
	EncodingUtf8
)

// String returns the string representation of a StringEncoding.
func (e StringEncoding) String() string {
	switch e {
	case EncodingAscii:
		return "ascii"
	case EncodingUtf8:
		return "utf8"
	default:
		return "invalid"
	}
}
