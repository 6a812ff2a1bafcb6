package object

import (
	"fmt"
	"sort"
)

// Object is a node in a shape tree: either a leaf cell with a color, or a
// container whose grid is composited from its children. The anchor (row, col)
// positions the node relative to its parent. Objects are immutable by
// convention; all mutators return fresh copies.
type Object struct {
	row, col int
	color    int
	children []*Object
	codes    Codes // non-nil iff the object carries a generator
	finished bool

	grid Grid // cached materialization, content-only (independent of anchor)
}

// New constructs an Object anchored at (row, col) with the given color.
// Containers typically use NullColor and derive their appearance from
// children supplied via WithChildren.
func New(row, col, color int, opts ...Option) *Object {
	o := &Object{row: row, col: col, color: color}
	for _, opt := range opts {
		opt(o)
	}

	return o
}

// FromGrid builds an Object from a raw grid anchored at the origin:
// a single colored cell becomes a leaf, anything larger becomes a container
// with one Dot child per non-transparent cell, in row-major order.
// Returns ErrEmptyGrid, ErrRaggedGrid or ErrColorRange on invalid input.
// Complexity: O(W×H).
func FromGrid(g Grid) (*Object, error) {
	return FromGridAt(g, 0, 0, NullColor)
}

// FromGridAt is FromGrid with an explicit anchor and container color.
func FromGridAt(g Grid, row, col, color int) (*Object, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if g.Rows() == 1 && g.Cols() == 1 && g[0][0] != NullColor {
		return New(row, col, g[0][0]), nil
	}
	var kids []*Object
	for r := range g {
		for c := range g[r] {
			if v := g[r][c]; v != NullColor {
				kids = append(kids, New(r, c, v))
			}
		}
	}

	return New(row, col, color, WithChildren(kids...)), nil
}

// Row returns the row of the anchor.
func (o *Object) Row() int { return o.row }

// Col returns the column of the anchor.
func (o *Object) Col() int { return o.col }

// Loc returns the anchor as (row, col).
func (o *Object) Loc() (int, int) { return o.row, o.col }

// Color returns the stored color; NullColor for containers that derive
// their appearance purely from children.
func (o *Object) Color() int { return o.color }

// Children returns the ordered child list. The slice is shared; callers
// must treat it as read-only and use ReplaceChild to derive variants.
func (o *Object) Children() []*Object { return o.children }

// Codes returns a copy of the generator parameterization, nil when the
// object carries no generator.
func (o *Object) Codes() Codes { return o.codes.Clone() }

// Code returns the value of one generator code, 0 when absent.
func (o *Object) Code(key string) int {
	if o.codes == nil {
		return 0
	}

	return o.codes[key]
}

// Generating reports whether the object carries a generator.
func (o *Object) Generating() bool { return o.codes != nil }

// Finished reports whether the object was already decomposed once.
func (o *Object) Finished() bool { return o.finished }

// materialize computes (and caches) the content grid: children composited
// over a NullColor canvas in order, then tiled by the generator codes.
func (o *Object) materialize() Grid {
	if o.grid != nil {
		return o.grid
	}
	var base Grid
	if len(o.children) == 0 {
		base = Grid{{o.color}}
	} else {
		h, w := 0, 0
		for _, k := range o.children {
			kg := k.materialize()
			if e := k.row + kg.Rows(); e > h {
				h = e
			}
			if e := k.col + kg.Cols(); e > w {
				w = e
			}
		}
		base = make(Grid, h)
		for r := range base {
			base[r] = make([]int, w)
			for c := range base[r] {
				base[r][c] = NullColor
			}
		}
		for _, k := range o.children {
			kg := k.materialize()
			for r := range kg {
				for c := range kg[r] {
					if v := kg[r][c]; v != NullColor {
						base[k.row+r][k.col+c] = v
					}
				}
			}
		}
	}
	vf := (o.Code("R") + 1) * (o.Code("V") + 1)
	hf := (o.Code("C") + 1) * (o.Code("H") + 1)
	o.grid = base.Tile(vf, hf)

	return o.grid
}

// Grid returns a copy of the materialized grid.
func (o *Object) Grid() Grid { return o.materialize().Clone() }

// Shape returns the materialized dimensions as (rows, cols).
func (o *Object) Shape() (int, int) {
	g := o.materialize()

	return g.Rows(), g.Cols()
}

// Size counts the occupied (non-transparent) cells.
func (o *Object) Size() int {
	g := o.materialize()
	ct := 0
	for r := range g {
		for c := range g[r] {
			if g[r][c] != NullColor {
				ct++
			}
		}
	}

	return ct
}

// Points maps each occupied cell, relative to the grid origin, to its color.
func (o *Object) Points() map[Point]int {
	g := o.materialize()
	pts := make(map[Point]int)
	for r := range g {
		for c := range g[r] {
			if v := g[r][c]; v != NullColor {
				pts[Point{Row: r, Col: c}] = v
			}
		}
	}

	return pts
}

// ColorRank returns the colors present, most frequent first (ties broken by
// smaller color value), excluding transparent cells.
func (o *Object) ColorRank() []ColorCount {
	g := o.materialize()
	counts := make(map[int]int)
	for r := range g {
		for c := range g[r] {
			if v := g[r][c]; v != NullColor {
				counts[v]++
			}
		}
	}
	rank := make([]ColorCount, 0, len(counts))
	for color, ct := range counts {
		rank = append(rank, ColorCount{Color: color, Count: ct})
	}
	sort.Slice(rank, func(i, j int) bool {
		if rank[i].Count != rank[j].Count {
			return rank[i].Count > rank[j].Count
		}

		return rank[i].Color < rank[j].Color
	})

	return rank
}

// Colors returns the distinct colors present, ascending.
func (o *Object) Colors() []int {
	rank := o.ColorRank()
	out := make([]int, len(rank))
	for i, cc := range rank {
		out[i] = cc.Color
	}
	sort.Ints(out)

	return out
}

// Order measures internal regularity: 1.0 iff the bounding box is filled by
// a single color, otherwise the dominant color's share of the box.
func (o *Object) Order() float64 {
	g := o.materialize()
	total := g.Rows() * g.Cols()
	rank := o.ColorRank()
	if len(rank) == 1 && rank[0].Count == total {
		return 1.0
	}
	if len(rank) == 0 {
		return 0
	}

	return float64(rank[0].Count) / float64(total)
}

// Equal reports structural equality: anchors match and materialized grids
// are cell-identical.
func (o *Object) Equal(other *Object) bool {
	if other == nil {
		return false
	}

	return o.row == other.row && o.col == other.col &&
		o.materialize().Equal(other.materialize())
}

// SilhouetteEqual reports whether both objects occupy exactly the same cell
// positions (colors ignored) within equal-sized boxes.
func (o *Object) SilhouetteEqual(other *Object) bool {
	a, b := o.materialize(), other.materialize()
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	for r := range a {
		for c := range a[r] {
			if (a[r][c] != NullColor) != (b[r][c] != NullColor) {
				return false
			}
		}
	}

	return true
}

// nonzeroCodeCount counts generator codes with positive values.
func (o *Object) nonzeroCodeCount() int {
	n := 0
	for _, v := range o.codes {
		if v > 0 {
			n++
		}
	}

	return n
}

// Props is the description-length cost of this representation: a lone cell
// costs DotProps; anything else costs NonDotProps plus 2 per active
// generator code plus the cost of every child.
func (o *Object) Props() int {
	n := o.nonzeroCodeCount()
	if len(o.children) == 0 && n == 0 {
		return DotProps
	}
	p := NonDotProps + 2*n
	for _, k := range o.children {
		p += k.Props()
	}

	return p
}

// Copy returns a shallow copy (children shared, cache retained).
func (o *Object) Copy() *Object {
	cp := *o

	return &cp
}

// At returns a copy re-anchored at (row, col).
func (o *Object) At(row, col int) *Object {
	cp := *o
	cp.row, cp.col = row, col

	return &cp
}

// Recolor returns a deep copy with every cell painted the given color.
func (o *Object) Recolor(color int) *Object {
	cp := *o
	cp.color = color
	cp.grid = nil
	if len(o.children) > 0 {
		kids := make([]*Object, len(o.children))
		for i, k := range o.children {
			kids[i] = k.Recolor(color)
		}
		cp.children = kids
	}

	return &cp
}

// Recode returns a copy with the given generator codes (map copied).
func (o *Object) Recode(codes Codes) *Object {
	cp := *o
	cp.codes = codes.Clone()
	cp.grid = nil

	return &cp
}

// ReplaceChild returns a copy with one child slot substituted.
func (o *Object) ReplaceChild(idx int, kid *Object) *Object {
	cp := *o
	cp.children = append([]*Object(nil), o.children...)
	cp.children[idx] = kid
	cp.grid = nil

	return &cp
}

// Spawn returns a shallow rebuild with its own child slice, preserving
// anchor, color, codes, and the finished flag.
func (o *Object) Spawn() *Object {
	cp := *o
	cp.children = append([]*Object(nil), o.children...)
	cp.grid = nil

	return &cp
}

// Finish returns a copy marked as decomposed.
func (o *Object) Finish() *Object {
	cp := *o
	cp.finished = true

	return &cp
}

// Flatten returns the minimal recursive materialization: children are
// flattened and single-child wrappers without generators collapse into the
// child, folding anchors together.
func (o *Object) Flatten() *Object {
	if len(o.children) == 0 {
		return o.Copy()
	}
	kids := make([]*Object, len(o.children))
	for i, k := range o.children {
		kids[i] = k.Flatten()
	}
	if len(kids) == 1 && !o.Generating() {
		m := *kids[0]
		m.row += o.row
		m.col += o.col
		m.finished = m.finished || o.finished

		return &m
	}
	cp := *o
	cp.children = kids
	cp.grid = nil

	return &cp
}

// Nodes returns the object and all descendants, preorder.
func (o *Object) Nodes() []*Object {
	out := []*Object{o}
	for _, k := range o.children {
		out = append(out, k.Nodes()...)
	}

	return out
}

// Category names the shape class: Dot (single cell), Line (1-wide generated
// run), Rect (generated block), Pattern (generated container), Cluster
// (monochrome container), or Cell (mixed container).
func (o *Object) Category() string {
	if len(o.children) == 0 {
		if o.nonzeroCodeCount() == 0 {
			return "Dot"
		}
		h, w := o.Shape()
		if h == 1 || w == 1 {
			return "Line"
		}

		return "Rect"
	}
	if o.nonzeroCodeCount() > 0 {
		return "Pattern"
	}
	if len(o.ColorRank()) <= 1 {
		return "Cluster"
	}

	return "Cell"
}

// String renders a compact identity like Rect(9x9)@(0,0,0).
func (o *Object) String() string {
	h, w := o.Shape()

	return fmt.Sprintf("%s(%dx%d)@(%d,%d,%d)", o.Category(), h, w, o.row, o.col, o.color)
}
