package delta

import (
	"github.com/avoronkov/gridmdl/action"
	"github.com/avoronkov/gridmdl/object"
)

// OrderDiff checks for differences in the arrangement of points. Matching
// monochrome silhouettes contribute nothing. Objects with non-trivial
// internal structure are incomparable; otherwise each axis whose extents
// differ charges 2 and proposes a generator rescale sized to the left
// object's extent ("f" for rows, "p" for columns).
func OrderDiff(left, right *object.Object) (int, Transform) {
	dist := 0
	transform := Transform{}
	if len(left.ColorRank()) == 1 && len(right.ColorRank()) == 1 {
		// A monochrome, matching silhouette means no internal positioning differences
		if left.SilhouetteEqual(right) {
			return dist, transform
		}
	}

	// Without a matching silhouette, only an ordered transformation works here
	if left.Order() != 1 || right.Order() != 1 {
		return MaxDist, transform
	}
	lh, lw := left.Shape()
	rh, rw := right.Shape()
	axes := []struct {
		l, r   int
		scaler action.Code
	}{
		{lh, rh, action.VScale},
		{lw, rw, action.HScale},
	}
	for _, ax := range axes {
		if ax.l != ax.r {
			transform[ax.scaler] = ax.l - 1
			dist += 2
		}
	}

	return dist, transform
}

// ColorDiff charges 2 and proposes a repaint to the right's color when both
// sides are monochrome in different colors; differing multi-color sets are
// incomparable.
func ColorDiff(left, right *object.Object) (int, Transform) {
	dist := 0
	transform := Transform{}
	c1, c2 := left.Colors(), right.Colors()
	if !intsEqual(c1, c2) {
		// Color remapping is a basic transform
		if len(c1) == 1 && len(c2) == 1 {
			transform[action.Paint] = c2[0]
			dist += 2
		} else {
			// Partial or multiple remapping is not
			dist = MaxDist
		}
	}

	return dist, transform
}

// TranslationDiff scores the anchor displacement: equal anchors are free; a
// move to the origin charges 1 ("z"); a single-axis move onto zero charges
// 1 ("j" with the axis); anything else charges 2 and carries the raw offset
// under RowOffset ("w") or the column key "s".
func TranslationDiff(left, right *object.Object) (int, Transform) {
	dist := 0
	transform := Transform{}
	r1, c1 := left.Loc()
	r2, c2 := right.Loc()
	switch {
	case r1 == r2 && c1 == c2:
		// Already aligned
	case r2 == 0 && c2 == 0:
		dist++
		transform[action.Zero] = 0
	case r2 != r1:
		// Justifying a single dimension is also special
		if r2 == 0 {
			dist++
			transform[action.Justify] = 0
		} else {
			dist += 2
			transform[RowOffset] = r2 - r1
		}
	case c2 != c1:
		if c2 == 0 {
			dist++
			transform[action.Justify] = 1
		} else {
			dist += 2
			transform[action.Scale] = c2 - c1
		}
	}

	return dist, transform
}

// intsEqual compares two sorted int slices.
func intsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
