// Refinement hierarchy queries for the ilang type system.
// This module classifies handles by family and walks base-type chains.

package types

// isInfinityType reports whether t is the Infinity sentinel, recognized by
// its self-loop rather than by its name. Name formats carry no semantic
// weight anywhere in the hierarchy.
func isInfinityType(t Handle) bool { return t != nil && t.base == t }

// HasBaseType reports whether candidate is an ancestor of t. Infinity
// refines everything, so it is an ancestor of every type; the walk always
// terminates because Infinity is the unique self-loop.
func HasBaseType(t, candidate Handle) bool {
	for {
		switch {
		case isInfinityType(candidate) || t.base == candidate:
			return true
		case isInfinityType(t.base):
			return false
		default:
			t = t.base
		}
	}
}

// IsRootType reports whether t sits directly below the Infinity sentinel.
func IsRootType(t Handle) bool { return isInfinityType(t.base) }

// IsRefinedType reports whether t is strictly below a root, i.e. neither
// the Infinity sentinel nor a root itself.
func IsRefinedType(t Handle) bool {
	return !isInfinityType(t) && !IsRootType(t)
}

// IsCompoundType reports whether t was built from inner types.
func IsCompoundType(t Handle) bool { return len(t.types) > 0 }

// ====== Family Predicates ======

// The family predicates classify a handle by ancestry walk against the
// store's bootstrap root handles. They never inspect mangled-name
// characters, so classification stays correct however names are formatted.

// refinesRoot reports whether t is root or refines root.
func refinesRoot(t, root Handle) bool {
	return t == root || HasBaseType(t, root)
}

// IsInfinityType reports whether t is the Infinity sentinel of d.
func IsInfinityType(d *TypeData, t Handle) bool { return t == d.infinityType }

// IsUnitType reports whether t is the unit type or a refinement of it.
func IsUnitType(d *TypeData, t Handle) bool { return refinesRoot(t, d.unitType) }

// IsTypeType reports whether t is the type of types or a refinement of it.
func IsTypeType(d *TypeData, t Handle) bool { return refinesRoot(t, d.typeType) }

// IsPartialType reports whether t is a placeholder type.
func IsPartialType(d *TypeData, t Handle) bool { return refinesRoot(t, d.partialType) }

// IsFunctionType reports whether t is a function type.
func IsFunctionType(d *TypeData, t Handle) bool { return refinesRoot(t, d.functionType) }

// IsStringType reports whether t is a string type.
func IsStringType(d *TypeData, t Handle) bool { return refinesRoot(t, d.stringType) }

// IsNumberType reports whether t is in the numeric refinement chain.
func IsNumberType(d *TypeData, t Handle) bool { return refinesRoot(t, d.numberType) }

// IsComplexType reports whether t is a complex number type.
func IsComplexType(d *TypeData, t Handle) bool {
	return refinesRoot(t, d.numericRoots[NumericComplex])
}

// IsImaginaryType reports whether t is an imaginary number type.
func IsImaginaryType(d *TypeData, t Handle) bool {
	return refinesRoot(t, d.numericRoots[NumericImaginary])
}

// IsRealType reports whether t is a real number type.
func IsRealType(d *TypeData, t Handle) bool {
	return refinesRoot(t, d.numericRoots[NumericReal])
}

// IsRationalType reports whether t is a rational number type.
func IsRationalType(d *TypeData, t Handle) bool {
	return refinesRoot(t, d.numericRoots[NumericRational])
}

// IsIntegerType reports whether t is an integer type.
func IsIntegerType(d *TypeData, t Handle) bool {
	return refinesRoot(t, d.numericRoots[NumericInteger])
}

// IsNaturalType reports whether t is a natural number type.
func IsNaturalType(d *TypeData, t Handle) bool {
	return refinesRoot(t, d.numericRoots[NumericNatural])
}

// IsBooleanType reports whether t is a boolean type.
func IsBooleanType(d *TypeData, t Handle) bool {
	return refinesRoot(t, d.numericRoots[NumericBoolean])
}

// IsSumType reports whether t is an interned sum type. Sums and products
// both root at Infinity, so membership in the interning table is the
// distinguishing fact.
func IsSumType(d *TypeData, t Handle) bool {
	return t != nil && d.sumTypes[t.mangled] == t
}

// IsProductType reports whether t is an interned product type.
func IsProductType(d *TypeData, t Handle) bool {
	return t != nil && d.productTypes[t.mangled] == t
}

// ====== Common Ancestors ======

// FindCommonType returns the most refined type that both a and b refine
// (taking refinement as reflexive, so FindCommonType(t, t) is t and a type
// is common with any of its refinements). Unrelated types meet at the
// Infinity sentinel; the walk is total because every base chain terminates
// there.
func FindCommonType(a, b Handle) Handle {
	if a == b {
		return a
	}

	ancestors := make(map[Handle]bool)
	for t := a; ; t = t.base {
		ancestors[t] = true

		if isInfinityType(t) {
			break
		}
	}

	for t := b; ; t = t.base {
		if ancestors[t] {
			return t
		}

		if isInfinityType(t) {
			break
		}
	}

	// Unreachable: Infinity is in every ancestor set.
	return nil
}
