// Tests for the type store: bootstrap, interning, and name lookup.

package types

import (
	"errors"
	"testing"
)

func TestBootstrapRoots(t *testing.T) {
	d := NewTypeData()

	t.Run("Infinity is the unique self-loop", func(t *testing.T) {
		inf := FindInfinityType(d)
		if inf == nil {
			t.Fatal("missing Infinity sentinel")
		}
		if inf.Base() != inf {
			t.Error("Infinity must be its own base")
		}
	})

	t.Run("roots sit directly below Infinity", func(t *testing.T) {
		inf := FindInfinityType(d)
		roots := map[string]Handle{
			"Unit":     FindUnitType(d),
			"Type":     FindTypeType(d),
			"Number":   FindNumberType(d),
			"String":   FindStringType(d, nil),
			"Function": FindFunctionType(d, nil, nil),
			"Partial":  FindPartialType(d, nil),
		}
		for name, root := range roots {
			if root == nil {
				t.Fatalf("missing %s root", name)
			}
			if root.Base() != inf {
				t.Errorf("%s root is based on %v, want Infinity", name, root.Base())
			}
			if root.String() != name {
				t.Errorf("%s root display name = %q", name, root.String())
			}
		}
	})

	t.Run("numeric chain order", func(t *testing.T) {
		chain := []Handle{
			FindBooleanType(d, 0),
			FindNaturalType(d, 0),
			FindIntegerType(d, 0),
			FindRationalType(d, 0),
			FindRealType(d, 0),
			FindComplexType(d, 0),
			FindNumberType(d),
		}
		for i := 0; i < len(chain)-1; i++ {
			if chain[i].Base() != chain[i+1] {
				t.Errorf("%s is based on %s, want %s",
					chain[i], chain[i].Base(), chain[i+1])
			}
		}

		if img := FindImaginaryType(d, 0); img.Base() != FindComplexType(d, 0) {
			t.Errorf("Imaginary is based on %s, want Complex", img.Base())
		}
	})
}

func TestSizedNumericTypes(t *testing.T) {
	d := NewTypeData()

	t.Run("zero bits resolves to the family root", func(t *testing.T) {
		d2, root := GetIntegerType(d, 0)
		d = d2
		if root != FindIntegerType(d, 0) {
			t.Error("GetIntegerType(0) should return the root Integer handle")
		}
	})

	t.Run("sized type is created below its family root", func(t *testing.T) {
		d2, z32 := GetIntegerType(d, 32)
		d = d2
		if z32 == FindIntegerType(d, 0) {
			t.Fatal("sized Integer must be distinct from the root")
		}
		if z32.Base() != FindIntegerType(d, 0) {
			t.Errorf("Integer32 is based on %s, want Integer", z32.Base())
		}
		if z32.Mangled() != "z32" {
			t.Errorf("Integer32 mangled = %q, want %q", z32.Mangled(), "z32")
		}
		if z32.String() != "Integer32" {
			t.Errorf("Integer32 display = %q", z32.String())
		}
	})

	t.Run("get is idempotent", func(t *testing.T) {
		d2, first := GetIntegerType(d, 32)
		before := d2.Len()
		d3, second := GetIntegerType(d2, 32)
		d = d3

		if first != second {
			t.Error("repeated GetIntegerType(32) returned distinct handles")
		}
		if d.Len() != before {
			t.Errorf("repeated get grew the store from %d to %d nodes", before, d.Len())
		}
	})

	t.Run("find never allocates", func(t *testing.T) {
		before := d.Len()
		if got := FindNaturalType(d, 64); got != nil {
			t.Errorf("FindNaturalType(64) = %s, want miss", got)
		}
		if d.Len() != before {
			t.Error("a find query changed the store")
		}
	})

	t.Run("every family interns independently", func(t *testing.T) {
		var handles []Handle
		gets := []func(*TypeData, uint32) (*TypeData, Handle){
			GetBooleanType, GetNaturalType, GetIntegerType, GetRationalType,
			GetRealType, GetImaginaryType, GetComplexType,
		}
		for _, get := range gets {
			var h Handle
			d, h = get(d, 16)
			handles = append(handles, h)
		}
		for i := 0; i < len(handles); i++ {
			for j := i + 1; j < len(handles); j++ {
				if handles[i] == handles[j] {
					t.Errorf("families %d and %d share a 16-bit handle", i, j)
				}
			}
		}
	})
}

func TestStringTypes(t *testing.T) {
	d := NewTypeData()

	t.Run("nil encoding resolves to the root", func(t *testing.T) {
		d2, root, err := GetStringType(d, nil)
		if err != nil {
			t.Fatalf("GetStringType(nil) failed: %v", err)
		}
		d = d2
		if root != FindStringType(d, nil) {
			t.Error("GetStringType(nil) should return the root String handle")
		}
	})

	t.Run("encoded strings refine the root", func(t *testing.T) {
		cases := []struct {
			encoding StringEncoding
			str      string
			mangled  string
		}{
			{EncodingAscii, "AsciiString", "sa8"},
			{EncodingUtf8, "Utf8String", "su8"},
		}
		for _, c := range cases {
			enc := c.encoding
			d2, got, err := GetStringType(d, &enc)
			if err != nil {
				t.Fatalf("GetStringType(%v) failed: %v", enc, err)
			}
			d = d2
			if got.String() != c.str || got.Mangled() != c.mangled {
				t.Errorf("encoded string = %q/%q, want %q/%q",
					got.String(), got.Mangled(), c.str, c.mangled)
			}
			if got.Base() != FindStringType(d, nil) {
				t.Errorf("%s is based on %s, want String", got, got.Base())
			}

			d2, again, err := GetStringType(d, &enc)
			if err != nil {
				t.Fatalf("repeated GetStringType(%v) failed: %v", enc, err)
			}
			d = d2
			if again != got {
				t.Errorf("repeated GetStringType(%v) returned a distinct handle", enc)
			}
		}
	})

	t.Run("unknown encoding is rejected atomically", func(t *testing.T) {
		bad := StringEncoding(42)
		before := d.Len()
		d2, got, err := GetStringType(d, &bad)
		d = d2
		if !errors.Is(err, ErrUnknownEncoding) {
			t.Errorf("err = %v, want ErrUnknownEncoding", err)
		}
		if got != nil {
			t.Errorf("failed get still returned handle %s", got)
		}
		if d.Len() != before {
			t.Error("failed get left an entry in the store")
		}
	})
}

func TestNameLookupRoundTrip(t *testing.T) {
	d := NewTypeData()

	enc := EncodingUtf8
	var a, b, f, p Handle
	var err error

	d, a = GetNaturalType(d, 8)
	d, b = GetIntegerType(d, 64)
	d, _, err = GetStringType(d, &enc)
	if err != nil {
		t.Fatalf("GetStringType: %v", err)
	}
	d, f, err = GetFunctionType(d, []Handle{a, b}, b)
	if err != nil {
		t.Fatalf("GetFunctionType: %v", err)
	}
	d, p = GetPartialType(d)

	handles := []Handle{a, b, f, p, FindUnitType(d), FindInfinityType(d)}
	for _, h := range handles {
		if got := FindTypeByMangled(d, h.Mangled()); got != h {
			t.Errorf("FindTypeByMangled(%q) = %v, want %s", h.Mangled(), got, h)
		}
		if got := FindTypeByString(d, h.String()); got != h {
			t.Errorf("FindTypeByString(%q) = %v, want %s", h.String(), got, h)
		}
	}

	if got := FindTypeByMangled(d, "no-such-type"); got != nil {
		t.Errorf("FindTypeByMangled on unknown name = %s, want miss", got)
	}
	if got := FindTypeByString(d, "NoSuchType"); got != nil {
		t.Errorf("FindTypeByString on unknown name = %s, want miss", got)
	}
}
