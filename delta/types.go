// Package delta defines the comparison plugin contract and the distance
// sentinel for object matching.
package delta

import (
	"github.com/avoronkov/gridmdl/action"
	"github.com/avoronkov/gridmdl/object"
)

// MaxDist marks a pair of objects as incomparable under the current
// comparison list. Any comparison returning it dominates the total.
const MaxDist = 10000

// RowOffset carries a raw row displacement inside a Transform. It is not a
// registered action code; the paired column displacement reuses the Scale
// code "s". The two never collide with a real Scale entry because a raw
// displacement and a generator rescale are mutually exclusive proposals.
const RowOffset action.Code = "w"

// Transform maps an action code to the single integer argument that, when
// replayed, helps turn the left object into the right one.
type Transform map[action.Code]int

// Clone copies a transform map.
func (t Transform) Clone() Transform {
	out := make(Transform, len(t))
	for k, v := range t {
		out[k] = v
	}

	return out
}

// Comparison inspects a (left, right) pair and returns a partial distance
// plus the partial transform arguments explaining it.
type Comparison func(left, right *object.Object) (int, Transform)

// DefaultComparisons returns the standard ordered comparison list:
// arrangement, color, then position.
func DefaultComparisons() []Comparison {
	return []Comparison{OrderDiff, ColorDiff, TranslationDiff}
}
