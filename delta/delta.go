package delta

import (
	"fmt"

	"github.com/avoronkov/gridmdl/object"
)

// ObjectDelta is a scored, directed comparison left → right: a non-negative
// distance plus the transform arguments that explain the difference.
type ObjectDelta struct {
	Left, Right *object.Object
	Dist        int
	Transform   Transform
}

// New folds the given comparisons (DefaultComparisons when none are passed)
// over the pair. Partial distances sum with MaxDist dominating; partial
// transforms merge with later comparisons overwriting earlier keys.
func New(left, right *object.Object, comparisons ...Comparison) *ObjectDelta {
	if len(comparisons) == 0 {
		comparisons = DefaultComparisons()
	}
	d := &ObjectDelta{Left: left, Right: right, Transform: Transform{}}
	for _, compare := range comparisons {
		dist, partial := compare(left, right)
		d.Dist += dist
		for code, arg := range partial {
			d.Transform[code] = arg
		}
	}
	if d.Dist > MaxDist {
		d.Dist = MaxDist
	}

	return d
}

// Comparable reports whether the pair is explainable under the comparisons.
func (d *ObjectDelta) Comparable() bool { return d.Dist < MaxDist }

// String renders the delta compactly for logs.
func (d *ObjectDelta) String() string {
	return fmt.Sprintf("Delta(%d: %v | %v -> %v)", d.Dist, d.Transform, d.Left, d.Right)
}

// FindClosest linearly scans the inventory for the minimum-distance delta to
// obj, first encountered winning ties. A negative threshold disables the
// cutoff; otherwise nil is returned when the best distance exceeds it.
// Complexity: O(len(inventory) · cells).
func FindClosest(obj *object.Object, inventory []*object.Object, threshold int) *ObjectDelta {
	if len(inventory) == 0 {
		return nil
	}
	match := New(obj, inventory[0])
	for _, source := range inventory[1:] {
		if d := New(obj, source); d.Dist < match.Dist {
			match = d
		}
	}
	if threshold >= 0 && match.Dist > threshold {
		return nil
	}

	return match
}
