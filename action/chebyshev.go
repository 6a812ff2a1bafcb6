package action

import (
	"github.com/avoronkov/gridmdl/object"
)

// ChebyshevVector returns the signed per-axis offset of minimal magnitude
// that would bring a's bounding box into contact with b's. A component is
// zero when the boxes already overlap on that axis; positive values move a
// down/right. The vector is antisymmetric: ChebyshevVector(a, b) ==
// -ChebyshevVector(b, a).
// Complexity: O(cells) for the shape lookups, O(1) afterwards.
func ChebyshevVector(a, b *object.Object) [2]int {
	ah, aw := a.Shape()
	bh, bw := b.Shape()

	return [2]int{
		axisGap(a.Row(), ah, b.Row(), bh),
		axisGap(a.Col(), aw, b.Col(), bw),
	}
}

// axisGap measures the signed empty span between two intervals; 0 when they
// intersect or touch.
func axisGap(aStart, aLen, bStart, bLen int) int {
	aEnd := aStart + aLen - 1
	bEnd := bStart + bLen - 1
	switch {
	case aEnd < bStart:
		return bStart - aEnd - 1
	case bEnd < aStart:
		return bEnd - aStart + 1
	default:
		return 0
	}
}
