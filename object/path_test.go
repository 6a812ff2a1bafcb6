package object

import "testing"

// TestPath_Key checks the canonical rendering: dotted child indexes, "root"
// for the empty base, and a "/property" suffix when one is addressed.
func TestPath_Key(t *testing.T) {
	cases := []struct {
		path Path
		want string
	}{
		{Path{}, "root"},
		{Path{Property: "color"}, "root/color"},
		{Path{Base: BasePath{1, 0}}, "1.0"},
		{Path{Base: BasePath{1, 0}, Property: "color"}, "1.0/color"},
	}
	for _, tc := range cases {
		if got := tc.path.Key(); got != tc.want {
			t.Errorf("Key(%v) = %q; want %q", tc.path, got, tc.want)
		}
	}
}

// TestPath_Compare checks the parent-before-child ordering used when
// bindings are applied.
func TestPath_Compare(t *testing.T) {
	ordered := []Path{
		{},
		{Property: "color"},
		{Base: BasePath{0}},
		{Base: BasePath{0, 1}},
		{Base: BasePath{1}},
		{Base: BasePath{1}, Property: "row"},
	}
	for i := 0; i < len(ordered)-1; i++ {
		if c := ordered[i].Compare(ordered[i+1]); c >= 0 {
			t.Errorf("Compare(%v, %v) = %d; want < 0", ordered[i], ordered[i+1], c)
		}
		if c := ordered[i+1].Compare(ordered[i]); c <= 0 {
			t.Errorf("Compare(%v, %v) = %d; want > 0", ordered[i+1], ordered[i], c)
		}
	}
	if c := (Path{Base: BasePath{2}}).Compare(Path{Base: BasePath{2}}); c != 0 {
		t.Errorf("Compare of equal paths = %d; want 0", c)
	}
}

// TestBasePath_Child ensures Child extends a fresh slice instead of sharing
// backing storage with the parent path.
func TestBasePath_Child(t *testing.T) {
	base := BasePath{1}
	a := base.Child(0)
	b := base.Child(2)
	if a[1] != 0 || b[1] != 2 {
		t.Fatalf("Child results overlap: %v %v", a, b)
	}
}
