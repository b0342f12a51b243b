// Type store implementation for the ilang type system.
// This module owns every type node and the per-family interning tables.

package types

import (
	"strconv"
)

// ====== Numeric Families ======

// NumericKind identifies one family in the numeric refinement chain.
type NumericKind int

const (
	NumericBoolean NumericKind = iota
	NumericNatural
	NumericInteger
	NumericRational
	NumericReal
	NumericImaginary
	NumericComplex

	numNumericKinds
)

// numericFamilies maps each NumericKind to its display name and mangled
// prefix. Sized members of a family append the bit count to both.
var numericFamilies = [numNumericKinds]struct {
	name    string
	mangled string
}{
	NumericBoolean:   {"Boolean", "b"},
	NumericNatural:   {"Natural", "n"},
	NumericInteger:   {"Integer", "z"},
	NumericRational:  {"Rational", "q"},
	NumericReal:      {"Real", "r"},
	NumericImaginary: {"Imaginary", "i"},
	NumericComplex:   {"Complex", "c"},
}

// ====== Type Store ======

// TypeData is the append-only universe of interned types.
//
// TypeData should be treated as an opaque aggregate and only ever be used
// through the accompanying Find*/Get* functions:
//
//	// possible insertion; always yields a handle
//	data, result := GetNaturalType(data, 32)
//
//	// just a query; can yield nil
//	other := FindNaturalType(data, 16)
//
// Get* functions take ownership of their argument and return the evolved
// store; callers must not retain or reuse the pre-call value. This verbose
// expression of state keeps every type-table transition explicit and
// observable, which matters for interoperability with runtimes that embed
// the type system across a language boundary.
//
// Find* functions and all hierarchy predicates read the store without
// mutating it and are safe for unrestricted concurrent use against a store
// that is not being extended. Concurrent Get* calls are not supported; a
// store extended from two goroutines must be serialized by its owner. No
// merge of divergently extended stores is provided.
type TypeData struct {
	// storage owns every node ever created. It only grows, so handles
	// issued from any snapshot stay valid for the life of the store.
	storage []*Type

	infinityType Handle
	partialType  Handle
	typeType     Handle
	unitType     Handle
	stringType   Handle
	numberType   Handle
	functionType Handle

	numericRoots  [numNumericKinds]Handle
	sizedNumerics [numNumericKinds]map[uint32]Handle

	encodedStrings map[StringEncoding]Handle

	// Compound interning tables, keyed by canonical (mangled) name.
	// Function types bucket by parameter tuple first, then result.
	sumTypes      map[string]Handle
	productTypes  map[string]Handle
	functionTypes map[string]map[string]Handle

	// partials logs placeholder types in creation order. Placeholders are
	// never deduplicated; each stands for a distinct unresolved site.
	partials []Handle

	// Persistent name indexes, updated on every insert. byMangled doubles
	// as the uniqueness guard for canonical names.
	byString  map[string]Handle
	byMangled map[string]Handle
}

// Len reports how many nodes the store currently owns.
func (d *TypeData) Len() int { return len(d.storage) }

// NumPartialTypes reports how many placeholder types have been issued.
func (d *TypeData) NumPartialTypes() int { return len(d.partials) }

// add appends t to the arena and both name indexes. Callers must have
// verified that t's mangled name is unused; on a display-name collision the
// earliest binding is kept, since only the mangled name is an identity key.
func (d *TypeData) add(t *Type) Handle {
	d.storage = append(d.storage, t)
	d.byMangled[t.mangled] = t

	if _, taken := d.byString[t.str]; !taken {
		d.byString[t.str] = t
	}

	return t
}

// NewTypeData creates a store pre-populated with every root type. No node
// exists before this point; every later type is created at most once per
// canonical identity and lives for the remaining life of the store.
func NewTypeData() *TypeData {
	d := &TypeData{
		encodedStrings: make(map[StringEncoding]Handle),
		sumTypes:       make(map[string]Handle),
		productTypes:   make(map[string]Handle),
		functionTypes:  make(map[string]map[string]Handle),
		byString:       make(map[string]Handle),
		byMangled:      make(map[string]Handle),
	}

	for kind := range d.sizedNumerics {
		d.sizedNumerics[kind] = make(map[uint32]Handle)
	}

	// The Infinity sentinel is the unique self-loop terminating every
	// ancestry walk.
	inf := &Type{str: "Infinity", mangled: "??"}
	inf.base = inf
	d.infinityType = d.add(inf)

	newType := func(str, mangled string, base Handle) Handle {
		return d.add(&Type{base: base, str: str, mangled: mangled})
	}

	d.partialType = newType("Partial", "_?", inf)
	d.typeType = newType("Type", "t?", inf)
	d.unitType = newType("Unit", "u0", inf)
	d.stringType = newType("String", "s?", inf)
	d.numberType = newType("Number", "w?", inf)
	d.functionType = newType("Function", "f?", inf)

	complexT := newType("Complex", "c?", d.numberType)
	imaginaryT := newType("Imaginary", "i?", complexT)
	realT := newType("Real", "r?", complexT)
	rationalT := newType("Rational", "q?", realT)
	integerT := newType("Integer", "z?", rationalT)
	naturalT := newType("Natural", "n?", integerT)
	booleanT := newType("Boolean", "b?", naturalT)

	d.numericRoots = [numNumericKinds]Handle{
		NumericBoolean:   booleanT,
		NumericNatural:   naturalT,
		NumericInteger:   integerT,
		NumericRational:  rationalT,
		NumericReal:      realT,
		NumericImaginary: imaginaryT,
		NumericComplex:   complexT,
	}

	return d
}

// ====== Root Type Queries ======

// FindInfinityType returns the Infinity sentinel.
func FindInfinityType(d *TypeData) Handle { return d.infinityType }

// FindTypeType returns the type of types.
func FindTypeType(d *TypeData) Handle { return d.typeType }

// FindUnitType returns the unit type.
func FindUnitType(d *TypeData) Handle { return d.unitType }

// FindNumberType returns the root Number type.
func FindNumberType(d *TypeData) Handle { return d.numberType }

// GetInfinityType returns the Infinity sentinel.
func GetInfinityType(d *TypeData) (*TypeData, Handle) { return d, d.infinityType }

// GetTypeType returns the type of types.
func GetTypeType(d *TypeData) (*TypeData, Handle) { return d, d.typeType }

// GetUnitType returns the unit type.
func GetUnitType(d *TypeData) (*TypeData, Handle) { return d, d.unitType }

// GetNumberType returns the root Number type.
func GetNumberType(d *TypeData) (*TypeData, Handle) { return d, d.numberType }

// ====== Numeric Type Queries ======

// findNumericType implements Find for every numeric family. A bit count of
// zero names the family's canonical unsized root.
func findNumericType(d *TypeData, kind NumericKind, numBits uint32) Handle {
	if numBits == 0 {
		return d.numericRoots[kind]
	}

	return d.sizedNumerics[kind][numBits]
}

// getNumericType implements Get for every numeric family.
func getNumericType(d *TypeData, kind NumericKind, numBits uint32) (*TypeData, Handle) {
	if t := findNumericType(d, kind, numBits); t != nil {
		return d, t
	}

	family := numericFamilies[kind]
	bits := strconv.FormatUint(uint64(numBits), 10)

	t := d.add(&Type{
		base:    d.numericRoots[kind],
		str:     family.name + bits,
		mangled: family.mangled + bits,
	})
	d.sizedNumerics[kind][numBits] = t

	return d, t
}

// FindBooleanType returns the Boolean type with the given bit count, the
// root Boolean type when numBits is zero, or nil on a miss.
func FindBooleanType(d *TypeData, numBits uint32) Handle {
	return findNumericType(d, NumericBoolean, numBits)
}

// FindNaturalType returns the Natural type with the given bit count, the
// root Natural type when numBits is zero, or nil on a miss.
func FindNaturalType(d *TypeData, numBits uint32) Handle {
	return findNumericType(d, NumericNatural, numBits)
}

// FindIntegerType returns the Integer type with the given bit count, the
// root Integer type when numBits is zero, or nil on a miss.
func FindIntegerType(d *TypeData, numBits uint32) Handle {
	return findNumericType(d, NumericInteger, numBits)
}

// FindRationalType returns the Rational type with the given bit count, the
// root Rational type when numBits is zero, or nil on a miss.
func FindRationalType(d *TypeData, numBits uint32) Handle {
	return findNumericType(d, NumericRational, numBits)
}

// FindRealType returns the Real type with the given bit count, the root
// Real type when numBits is zero, or nil on a miss.
func FindRealType(d *TypeData, numBits uint32) Handle {
	return findNumericType(d, NumericReal, numBits)
}

// FindImaginaryType returns the Imaginary type with the given bit count,
// the root Imaginary type when numBits is zero, or nil on a miss.
func FindImaginaryType(d *TypeData, numBits uint32) Handle {
	return findNumericType(d, NumericImaginary, numBits)
}

// FindComplexType returns the Complex type with the given bit count, the
// root Complex type when numBits is zero, or nil on a miss.
func FindComplexType(d *TypeData, numBits uint32) Handle {
	return findNumericType(d, NumericComplex, numBits)
}

// GetBooleanType returns the Boolean type with the given bit count,
// creating it if absent. A bit count of zero names the root Boolean type.
func GetBooleanType(d *TypeData, numBits uint32) (*TypeData, Handle) {
	return getNumericType(d, NumericBoolean, numBits)
}

// GetNaturalType returns the Natural type with the given bit count,
// creating it if absent. A bit count of zero names the root Natural type.
func GetNaturalType(d *TypeData, numBits uint32) (*TypeData, Handle) {
	return getNumericType(d, NumericNatural, numBits)
}

// GetIntegerType returns the Integer type with the given bit count,
// creating it if absent. A bit count of zero names the root Integer type.
func GetIntegerType(d *TypeData, numBits uint32) (*TypeData, Handle) {
	return getNumericType(d, NumericInteger, numBits)
}

// GetRationalType returns the Rational type with the given bit count,
// creating it if absent. A bit count of zero names the root Rational type.
func GetRationalType(d *TypeData, numBits uint32) (*TypeData, Handle) {
	return getNumericType(d, NumericRational, numBits)
}

// GetRealType returns the Real type with the given bit count, creating it
// if absent. A bit count of zero names the root Real type.
func GetRealType(d *TypeData, numBits uint32) (*TypeData, Handle) {
	return getNumericType(d, NumericReal, numBits)
}

// GetImaginaryType returns the Imaginary type with the given bit count,
// creating it if absent. A bit count of zero names the root Imaginary type.
func GetImaginaryType(d *TypeData, numBits uint32) (*TypeData, Handle) {
	return getNumericType(d, NumericImaginary, numBits)
}

// GetComplexType returns the Complex type with the given bit count,
// creating it if absent. A bit count of zero names the root Complex type.
func GetComplexType(d *TypeData, numBits uint32) (*TypeData, Handle) {
	return getNumericType(d, NumericComplex, numBits)
}

// ====== String Type Queries ======

// FindStringType returns the string type with the given encoding, the root
// String type when encoding is nil, or nil on a miss.
func FindStringType(d *TypeData, encoding *StringEncoding) Handle {
	if encoding == nil {
		return d.stringType
	}

	return d.encodedStrings[*encoding]
}

// GetStringType returns the string type with the given encoding, creating
// it if absent. A nil encoding names the root String type. An encoding
// outside the recognized set reports ErrUnknownEncoding and leaves the
// store untouched.
func GetStringType(d *TypeData, encoding *StringEncoding) (*TypeData, Handle, error) {
	if t := FindStringType(d, encoding); t != nil {
		return d, t, nil
	}

	var str, mangled string

	switch *encoding {
	case EncodingAscii:
		str, mangled = "AsciiString", "sa8"
	case EncodingUtf8:
		str, mangled = "Utf8String", "su8"
	default:
		return d, nil, errUnknownEncoding(*encoding)
	}

	t := d.add(&Type{base: d.stringType, str: str, mangled: mangled})
	d.encodedStrings[*encoding] = t

	return d, t, nil
}

// ====== Name Lookup ======

// FindTypeByString returns the unique type whose display name matches str
// exactly, or nil on a miss.
func FindTypeByString(d *TypeData, str string) Handle {
	return d.byString[str]
}

// FindTypeByMangled returns the unique type whose mangled name matches
// mangled exactly, or nil on a miss.
func FindTypeByMangled(d *TypeData, mangled string) Handle {
	return d.byMangled[mangled]
}
