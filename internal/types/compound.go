// Compound type construction for the ilang type system.
// This module provides sum, product, function, and placeholder types.

package types

import (
	"sort"
	"strconv"
	"strings"
)

// ====== Sum Types ======

// canonicalSumMembers returns the member list deduplicated and sorted by
// mangled name. Mangled names are the only ordering key; sorting by node
// address would make canonical naming depend on allocation order.
func canonicalSumMembers(members []Handle) []Handle {
	sorted := make([]Handle, len(members))
	copy(sorted, members)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].mangled < sorted[j].mangled
	})

	unique := sorted[:0]
	for _, m := range sorted {
		if len(unique) == 0 || unique[len(unique)-1] != m {
			unique = append(unique, m)
		}
	}

	return unique
}

// compoundNames builds the mangled and display names of a compound type
// from its member list.
func compoundNames(prefix string, members []Handle, displaySep string) (mangled, str string) {
	var m, s strings.Builder

	m.WriteString(prefix)
	m.WriteString(strconv.Itoa(len(members)))

	for i, member := range members {
		m.WriteString(member.mangled)

		if i > 0 {
			s.WriteString(displaySep)
		}
		s.WriteString(member.str)
	}

	return m.String(), s.String()
}

// FindSumType returns the interned sum of the given members, or nil on a
// miss. Members are deduplicated and ordered by mangled name first, so any
// permutation of the same set names the same type. A single distinct member
// is its own sum; an empty member list always misses.
func FindSumType(d *TypeData, members []Handle) Handle {
	unique := canonicalSumMembers(members)

	switch len(unique) {
	case 0:
		return nil
	case 1:
		return unique[0]
	}

	mangled, _ := compoundNames("u", unique, "")

	return d.sumTypes[mangled]
}

// GetSumType returns the sum of the given members, creating it if absent.
// Members are deduplicated and ordered by mangled name, so GetSumType is
// order-insensitive. A single distinct member collapses to that member's
// handle; an empty member list reports ErrInvalidArity.
func GetSumType(d *TypeData, members []Handle) (*TypeData, Handle, error) {
	unique := canonicalSumMembers(members)

	switch len(unique) {
	case 0:
		return d, nil, errInvalidArity("sum", len(members), 1)
	case 1:
		return d, unique[0], nil
	}

	mangled, str := compoundNames("u", unique, " | ")

	if t := d.sumTypes[mangled]; t != nil {
		return d, t, nil
	}
	if prior := d.byMangled[mangled]; prior != nil {
		return d, nil, errDuplicateType(mangled)
	}

	t := d.add(&Type{
		base:    d.infinityType,
		str:     str,
		mangled: mangled,
		types:   unique,
	})
	d.sumTypes[mangled] = t

	return d, t, nil
}

// ====== Product Types ======

// FindProductType returns the interned product of the given members in the
// given order, or nil on a miss. Member order is significant; products of
// fewer than two members do not exist.
func FindProductType(d *TypeData, members []Handle) Handle {
	if len(members) < 2 {
		return nil
	}

	mangled, _ := compoundNames("p", members, "")

	return d.productTypes[mangled]
}

// GetProductType returns the product of the given members, creating it if
// absent. Member order is preserved and significant, unlike sums. Fewer
// than two members reports ErrInvalidArity.
func GetProductType(d *TypeData, members []Handle) (*TypeData, Handle, error) {
	if len(members) < 2 {
		return d, nil, errInvalidArity("product", len(members), 2)
	}

	mangled, str := compoundNames("p", members, " * ")

	if t := d.productTypes[mangled]; t != nil {
		return d, t, nil
	}
	if prior := d.byMangled[mangled]; prior != nil {
		return d, nil, errDuplicateType(mangled)
	}

	inner := make([]Handle, len(members))
	copy(inner, members)

	t := d.add(&Type{
		base:    d.infinityType,
		str:     str,
		mangled: mangled,
		types:   inner,
	})
	d.productTypes[mangled] = t

	return d, t, nil
}

// ====== Function Types ======

// functionParamsKey builds the parameter-tuple bucket key of the function
// interning table.
func functionParamsKey(params []Handle) string {
	mangles := make([]string, len(params))
	for i, p := range params {
		mangles[i] = p.mangled
	}

	return strings.Join(mangles, ",")
}

// FindFunctionType returns the interned function type with the given
// parameters and result, or nil on a miss. A nil result names the root
// Function type. Two function types differing only in result are distinct
// entries sharing one parameter-tuple bucket.
func FindFunctionType(d *TypeData, params []Handle, result Handle) Handle {
	if result == nil {
		return d.functionType
	}

	bucket := d.functionTypes[functionParamsKey(params)]
	if bucket == nil {
		return nil
	}

	return bucket[result.mangled]
}

// GetFunctionType returns the function type with the given parameters and
// result, creating it if absent. Parameters are significant in order; the
// component list holds them in order followed by the result. An empty
// parameter list reports ErrInvalidArity (nullary functions are modeled as
// Unit -> R), as does a nil result.
func GetFunctionType(d *TypeData, params []Handle, result Handle) (*TypeData, Handle, error) {
	if len(params) < 1 || result == nil {
		return d, nil, errInvalidArity("function", len(params), 1)
	}

	paramsKey := functionParamsKey(params)

	if bucket := d.functionTypes[paramsKey]; bucket != nil {
		if t := bucket[result.mangled]; t != nil {
			return d, t, nil
		}
	}

	var m, s strings.Builder

	m.WriteString("f")
	m.WriteString(strconv.Itoa(len(params)))
	m.WriteString(result.mangled)

	for i, p := range params {
		m.WriteString(p.mangled)

		if i > 0 {
			s.WriteString(" -> ")
		}
		s.WriteString(p.str)
	}

	s.WriteString(" -> ")
	s.WriteString(result.str)

	mangled := m.String()

	if prior := d.byMangled[mangled]; prior != nil {
		return d, nil, errDuplicateType(mangled)
	}

	inner := make([]Handle, 0, len(params)+1)
	inner = append(inner, params...)
	inner = append(inner, result)

	t := d.add(&Type{
		base:    d.functionType,
		str:     s.String(),
		mangled: mangled,
		types:   inner,
	})

	bucket := d.functionTypes[paramsKey]
	if bucket == nil {
		bucket = make(map[string]Handle)
		d.functionTypes[paramsKey] = bucket
	}
	bucket[result.mangled] = t

	return d, t, nil
}

// ====== Placeholder Types ======

// FindPartialType returns the placeholder type created with the given id,
// the root Partial type when id is nil, or nil when the id was never
// issued. An out-of-range id is a miss, not an error.
func FindPartialType(d *TypeData, id *uint32) Handle {
	if id == nil {
		return d.partialType
	}

	if int(*id) >= len(d.partials) {
		return nil
	}

	return d.partials[*id]
}

// GetPartialType always creates a fresh placeholder type; placeholders are
// never deduplicated, since each call site stands for a distinct unresolved
// obligation. The new node is named after its creation index and can be
// retrieved again with FindPartialType.
func GetPartialType(d *TypeData) (*TypeData, Handle) {
	id := strconv.Itoa(len(d.partials))

	t := d.add(&Type{
		base:    d.partialType,
		str:     "Partial" + id,
		mangled: "_" + id,
	})
	d.partials = append(d.partials, t)

	return d, t
}
