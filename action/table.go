package action

import (
	"github.com/avoronkov/gridmdl/object"
)

// Default builds the standard registry. Construct it once at startup and
// share it by reference; the table is never mutated afterwards.
func Default() Table {
	t := Table{}
	add := func(a Action) { t[a.Code] = a }

	add(Action{Code: Identity, act: func(o *object.Object, _ []int) *object.Object {
		return o.Copy()
	}})

	// Color
	add(Action{Code: Paint, Dimension: "Color", NArgs: 1,
		act: func(o *object.Object, a []int) *object.Object { return paint(o, a[0]) },
		inv: paintInv, rearg: paintRearg})

	// Location
	add(Action{Code: Translate, Dimension: "Length", NArgs: 2,
		act: func(o *object.Object, a []int) *object.Object { return translate(o, a[0], a[1]) },
		inv: translateInv})
	add(Action{Code: Vertical, Dimension: "Length", NArgs: 1,
		act:   func(o *object.Object, a []int) *object.Object { return translate(o, a[0], 0) },
		rearg: verticalRearg})
	add(Action{Code: Horizontal, Dimension: "Length", NArgs: 1,
		act:   func(o *object.Object, a []int) *object.Object { return translate(o, 0, a[0]) },
		rearg: horizontalRearg})
	add(Action{Code: Tile, Dimension: "Length", NArgs: 2,
		act:   func(o *object.Object, a []int) *object.Object { return tile(o, a[0], a[1]) },
		rearg: tileRearg})
	add(Action{Code: VTile, Dimension: "Length", NArgs: 1,
		act:   func(o *object.Object, a []int) *object.Object { return tile(o, a[0], 0) },
		rearg: vtileRearg})
	add(Action{Code: HTile, Dimension: "Length", NArgs: 1,
		act:   func(o *object.Object, a []int) *object.Object { return tile(o, 0, a[0]) },
		rearg: htileRearg})
	add(Action{Code: Justify, Dimension: "Length", NArgs: 1,
		act:   func(o *object.Object, a []int) *object.Object { return justify(o, a[0]) },
		rearg: justifyRearg})
	add(Action{Code: Zero, Dimension: "Length", NArgs: 0,
		act:   func(o *object.Object, _ []int) *object.Object { return zero(o) },
		rearg: zeroRearg})

	// Orientation
	add(Action{Code: Orthogonal, NArgs: 2,
		act: func(o *object.Object, a []int) *object.Object { return orthogonal(o, a[0], a[1]) },
		inv: orthogonalInv})
	add(Action{Code: Rotate, NArgs: 1,
		act: func(o *object.Object, a []int) *object.Object { return rotate(o, a[0]) },
		inv: orthogonalInv})
	add(Action{Code: Flip, NArgs: 1,
		act: func(o *object.Object, a []int) *object.Object { return flip(o, a[0]) },
		inv: orthogonalInv})
	add(Action{Code: HFlip, NArgs: 0,
		act: func(o *object.Object, _ []int) *object.Object { return hflip(o) },
		inv: orthogonalInv})
	add(Action{Code: VFlip, NArgs: 0,
		act: func(o *object.Object, _ []int) *object.Object { return vflip(o) },
		inv: orthogonalInv})

	// Deformation
	add(Action{Code: Scale, NArgs: 2,
		act: func(o *object.Object, a []int) *object.Object { return scale(o, a[0], a[1]) },
		inv: scaleInv})
	add(Action{Code: VScale, NArgs: 1,
		act: func(o *object.Object, a []int) *object.Object { return scale(o, a[0], 0) },
		inv: scaleInv})
	add(Action{Code: HScale, NArgs: 1,
		act: func(o *object.Object, a []int) *object.Object { return scale(o, 0, a[0]) },
		inv: scaleInv})

	// Pairwise: the secondary object supplies the parameters.
	add(Action{Code: Resize, NArgs: 1, Pairwise: true, pact: resize, inv: scaleInv})
	add(Action{Code: Adjoin, NArgs: 1, Pairwise: true, pact: adjoin})
	add(Action{Code: Align, NArgs: 1, Pairwise: true, pact: align})

	// Compounds: fixed macros with zero free arguments.
	add(Action{Code: VFlipHinge, NArgs: 0,
		act: func(o *object.Object, _ []int) *object.Object { return vflipHinge(o) }})
	add(Action{Code: VFlipTile, NArgs: 0,
		act: func(o *object.Object, _ []int) *object.Object { return vflipTile(o) }})
	add(Action{Code: HFlipHinge, NArgs: 0,
		act: func(o *object.Object, _ []int) *object.Object { return hflipHinge(o) }})
	add(Action{Code: HFlipTile, NArgs: 0,
		act: func(o *object.Object, _ []int) *object.Object { return hflipTile(o) }})
	add(Action{Code: RotTile, NArgs: 0,
		act: func(o *object.Object, _ []int) *object.Object { return rotTile(o) }})

	return t
}
