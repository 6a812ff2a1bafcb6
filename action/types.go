// Package action defines the transform codes, the Action descriptor, and
// the immutable code-keyed registry Table.
package action

import (
	"sort"

	"github.com/avoronkov/gridmdl/object"
)

// Code identifies a transform by a single character. The empty code is the
// identity.
type Code string

// The closed transform vocabulary.
const (
	Identity Code = ""
	// Color
	Paint Code = "c"
	// Location
	Translate  Code = "t"
	Vertical   Code = "v"
	Horizontal Code = "h"
	Tile       Code = "T"
	VTile      Code = "V"
	HTile      Code = "H"
	Justify    Code = "j"
	Zero       Code = "z"
	// Orientation
	Orthogonal Code = "o"
	Rotate     Code = "r"
	Flip       Code = "+"
	HFlip      Code = "|"
	VFlip      Code = "_"
	// Deformation
	Scale  Code = "s"
	VScale Code = "f" // flatten
	HScale Code = "p" // pinch
	// Pairwise
	Resize Code = "S"
	Adjoin Code = "A"
	Align  Code = "L"
	// Compound
	VFlipHinge Code = "m"
	VFlipTile  Code = "M"
	HFlipHinge Code = "e"
	HFlipTile  Code = "E"
	RotTile    Code = "O"
)

// Action is a stateless transform descriptor. Act never mutates its input;
// Inv returns the argument slice reproducing right from left, or an empty
// slice when no single application of this Action does so; Rearg converts
// a more general Action's arguments into this Action's parameter space.
type Action struct {
	Code      Code
	Dimension string
	NArgs     int
	Pairwise  bool

	act   func(o *object.Object, args []int) *object.Object
	pact  func(o, secondary *object.Object) *object.Object
	inv   func(left, right *object.Object) []int
	rearg func(o *object.Object, args []int) ([]int, bool)
}

// Act applies the transform with up to NArgs integer arguments; missing
// arguments default to zero. Pairwise actions return an unchanged copy here.
func (a Action) Act(o *object.Object, args ...int) *object.Object {
	if a.act == nil {
		return o.Copy()
	}
	buf := make([]int, a.NArgs)
	copy(buf, args)

	return a.act(o, buf)
}

// ActPair applies a pairwise transform using the secondary object as the
// source of parameters. Non-pairwise actions return an unchanged copy.
func (a Action) ActPair(o, secondary *object.Object) *object.Object {
	if a.pact == nil {
		return o.Copy()
	}

	return a.pact(o, secondary)
}

// Inv attempts to invert the action between left and right. An empty result
// means no single-step transform was found; it is not an error.
func (a Action) Inv(left, right *object.Object) []int {
	if a.inv == nil {
		return nil
	}

	return a.inv(left, right)
}

// Rearg normalizes arguments of the generalizing action into this action's
// reduced space; ok is false when they are not expressible.
func (a Action) Rearg(o *object.Object, args ...int) ([]int, bool) {
	if a.rearg == nil {
		return args, true
	}

	return a.rearg(o, args)
}

// Table is the immutable code→Action registry. Build it once with Default
// and pass it by reference; never mutate it after construction.
type Table map[Code]Action

// Get looks up an action by code.
func (t Table) Get(code Code) (Action, bool) {
	a, ok := t[code]

	return a, ok
}

// Codes returns every registered code in sorted order.
func (t Table) Codes() []Code {
	out := make([]Code, 0, len(t))
	for code := range t {
		out = append(out, code)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
