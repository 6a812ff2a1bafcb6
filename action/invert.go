package action

import (
	"github.com/avoronkov/gridmdl/object"
)

// paintInv succeeds only when both sides are strictly monochrome and their
// colors differ; the argument is the right side's color.
func paintInv(left, right *object.Object) []int {
	lr, rr := left.ColorRank(), right.ColorRank()
	if len(lr) == 1 && len(rr) == 1 && lr[0].Color != rr[0].Color {
		return []int{rr[0].Color}
	}

	return nil
}

// translateInv returns the literal displacement, or nothing when the
// locations already match.
func translateInv(left, right *object.Object) []int {
	if left.Row() == right.Row() && left.Col() == right.Col() {
		return nil
	}

	return []int{right.Row() - left.Row(), right.Col() - left.Col()}
}

// colorRankEqual compares the full color histograms.
func colorRankEqual(left, right *object.Object) bool {
	lr, rr := left.ColorRank(), right.ColorRank()
	if len(lr) != len(rr) {
		return false
	}
	for i := range lr {
		if lr[i] != rr[i] {
			return false
		}
	}

	return true
}

// orthogonalInv tries all eight reflection×rotation poses in fixed order
// after anchor-normalizing both sides, returning the first exact match.
// Single cells, mismatched sizes, or mismatched color histograms are
// immediately non-invertible.
func orthogonalInv(left, right *object.Object) []int {
	if right.Size() == 1 || left.Size() != right.Size() || !colorRankEqual(left, right) {
		return nil
	}
	l, r := zero(left), zero(right)
	if l.Equal(r) {
		return nil
	}
	reflections := []struct {
		oArg  int
		apply func(*object.Object) *object.Object
	}{
		{0, func(o *object.Object) *object.Object { return o.Copy() }},
		{1, vflip},
		{2, hflip},
	}
	for _, refl := range reflections {
		reflected := refl.apply(l)
		if reflected.Equal(r) {
			return []int{refl.oArg, 0}
		}
		for ct := 1; ct <= 3; ct++ {
			if rotate(reflected, ct).Equal(r) {
				return []int{refl.oArg, ct}
			}
		}
	}

	return nil
}

// scaleInv derives per-axis generator values from the left object's cell
// size, failing on incommensurate shapes and skipping axes already equal.
func scaleInv(left, right *object.Object) []int {
	if !left.Generating() && !right.Generating() {
		return nil
	}
	lh, lw := left.Shape()
	rh, rw := right.Shape()
	axes := []struct {
		code string
		l, r int
	}{
		{"V", lh, rh},
		{"H", lw, rw},
	}
	args := make([]int, 0, 2)
	for _, ax := range axes {
		if ax.l == ax.r {
			args = append(args, 0)
			continue
		}
		cell := ax.l / (left.Code(ax.code) + 1)
		if cell == 0 || ax.r%cell != 0 {
			// Incommensurate shapes
			return nil
		}
		args = append(args, ax.r/cell)
	}
	if args[0] == 0 && args[1] == 0 {
		return nil
	}

	return args
}

// Rearg normalizers: translate a general action's arguments into a
// specialization's space.

func paintRearg(_ *object.Object, args []int) ([]int, bool) {
	return args[:1], true
}

func verticalRearg(_ *object.Object, args []int) ([]int, bool) {
	if args[1] != 0 {
		return nil, false
	}

	return []int{args[0]}, true
}

func horizontalRearg(_ *object.Object, args []int) ([]int, bool) {
	if args[0] != 0 {
		return nil, false
	}

	return []int{args[1]}, true
}

func tileRearg(o *object.Object, args []int) ([]int, bool) {
	h, w := o.Shape()
	if args[0]%h != 0 || args[1]%w != 0 {
		return nil, false
	}

	return []int{args[0] / h, args[1] / w}, true
}

func vtileRearg(o *object.Object, args []int) ([]int, bool) {
	t, ok := tileRearg(o, args)
	if !ok {
		return nil, false
	}

	return []int{t[0]}, true
}

func htileRearg(o *object.Object, args []int) ([]int, bool) {
	t, ok := tileRearg(o, args)
	if !ok {
		return nil, false
	}

	return []int{t[1]}, true
}

func justifyRearg(o *object.Object, args []int) ([]int, bool) {
	switch {
	case args[0] == -o.Row():
		return []int{0}, true
	case args[1] == -o.Col():
		return []int{1}, true
	default:
		return nil, false
	}
}

func zeroRearg(o *object.Object, args []int) ([]int, bool) {
	if args[0] == -o.Row() && args[1] == -o.Col() {
		return []int{}, true
	}

	return nil, false
}
