package board

import (
	"github.com/avoronkov/gridmdl/object"
)

// allSteps enumerates the 8-connected neighborhood: orthogonal steps first,
// then diagonals.
var allSteps = [8][2]int{
	{1, 0}, {0, 1}, {-1, 0}, {0, -1},
	{1, 1}, {-1, 1}, {-1, -1}, {1, -1},
}

// cell is one occupied grid position with its color.
type cell struct {
	row, col, color int
}

// components groups the cells of g accepted by keep into 8-connected
// groups, in row-major discovery order. When sameColor is set, adjacency
// additionally requires equal colors.
// Complexity: O(W×H×8), memory O(W×H), the same BFS sweep used for island
// detection on raw grids.
func components(g object.Grid, keep func(v int) bool, sameColor bool) [][]cell {
	h, w := g.Rows(), g.Cols()
	seen := make([]bool, h*w)
	var comps [][]cell
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			if !keep(g[r][c]) || seen[r*w+c] {
				continue
			}
			// BFS to collect the component
			queue := []cell{{r, c, g[r][c]}}
			seen[r*w+c] = true
			var comp []cell
			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				comp = append(comp, u)
				for _, d := range allSteps {
					vr, vc := u.row+d[0], u.col+d[1]
					if vr < 0 || vr >= h || vc < 0 || vc >= w {
						continue
					}
					if !keep(g[vr][vc]) || seen[vr*w+vc] {
						continue
					}
					if sameColor && g[vr][vc] != u.color {
						continue
					}
					seen[vr*w+vc] = true
					queue = append(queue, cell{vr, vc, g[vr][vc]})
				}
			}
			comps = append(comps, comp)
		}
	}

	return comps
}

// cluster rebuilds a cell group as an Object anchored at its bounding-box
// corner: a lone cell becomes a Dot, anything larger a container of Dots.
func cluster(cells []cell) *object.Object {
	if len(cells) == 1 {
		return object.New(cells[0].row, cells[0].col, cells[0].color)
	}
	minR, minC := cells[0].row, cells[0].col
	for _, cl := range cells[1:] {
		if cl.row < minR {
			minR = cl.row
		}
		if cl.col < minC {
			minC = cl.col
		}
	}
	kids := make([]*object.Object, len(cells))
	for i, cl := range cells {
		kids[i] = object.New(cl.row-minR, cl.col-minC, cl.color)
	}

	return object.New(minR, minC, object.NullColor, object.WithChildren(kids...))
}

// MakeBase re-expresses a fully occupied container as its dominant-color
// base rectangle plus the remaining cells grouped into connected clusters;
// a solid monochrome container collapses straight into a generator leaf.
type MakeBase struct{}

// Name identifies the process in logs.
func (MakeBase) Name() string { return "MakeBase" }

// Test accepts unfinished, non-generating containers without transparent
// holes.
func (MakeBase) Test(o *object.Object) bool {
	if o.Finished() || o.Generating() || len(o.Children()) == 0 {
		return false
	}
	h, w := o.Shape()

	return o.Size() == h*w
}

// Run produces the base-rectangle candidate, or nil when nothing simplifies.
func (MakeBase) Run(o *object.Object) *object.Object {
	g := o.Grid()
	rank := o.ColorRank()
	if len(rank) == 0 {
		return nil
	}
	h, w := g.Rows(), g.Cols()
	if len(rank) == 1 {
		// Solid block: one generator leaf replaces every cell.
		codes := object.Codes{}
		if h > 1 {
			codes["R"] = h - 1
		}
		if w > 1 {
			codes["C"] = w - 1
		}
		if len(codes) == 0 {
			return object.New(o.Row(), o.Col(), rank[0].Color)
		}

		return object.New(o.Row(), o.Col(), rank[0].Color, object.WithCodes(codes))
	}

	bg := rank[0].Color
	codes := object.Codes{}
	if h > 1 {
		codes["R"] = h - 1
	}
	if w > 1 {
		codes["C"] = w - 1
	}
	base := object.New(0, 0, bg, object.WithCodes(codes))
	kids := []*object.Object{base}
	for _, comp := range components(g, func(v int) bool { return v != bg && v != object.NullColor }, false) {
		kids = append(kids, cluster(comp))
	}

	return object.New(o.Row(), o.Col(), o.Color(),
		object.WithChildren(kids...), object.AsFinished())
}

// ConnectObjects regroups a container's cells into same-color connected
// clusters.
type ConnectObjects struct{}

// Name identifies the process in logs.
func (ConnectObjects) Name() string { return "ConnectObjects" }

// Test accepts unfinished, non-generating containers with several children.
func (ConnectObjects) Test(o *object.Object) bool {
	return !o.Finished() && !o.Generating() && len(o.Children()) > 1
}

// Run produces the clustered candidate, or nil when grouping gains nothing.
func (ConnectObjects) Run(o *object.Object) *object.Object {
	comps := components(o.Grid(), func(v int) bool { return v != object.NullColor }, true)
	if len(comps) < 2 || len(comps) >= len(o.Children()) {
		return nil
	}
	kids := make([]*object.Object, len(comps))
	for i, comp := range comps {
		kids[i] = cluster(comp)
	}

	return object.New(o.Row(), o.Col(), o.Color(),
		object.WithChildren(kids...), object.AsFinished())
}

// SeparateColor splits a container into two layers: the dominant color and
// everything else.
type SeparateColor struct{}

// Name identifies the process in logs.
func (SeparateColor) Name() string { return "SeparateColor" }

// Test accepts unfinished, non-generating, multi-color containers.
func (SeparateColor) Test(o *object.Object) bool {
	return !o.Finished() && !o.Generating() &&
		len(o.Children()) > 0 && len(o.Colors()) > 1
}

// Run produces the two-layer candidate.
func (SeparateColor) Run(o *object.Object) *object.Object {
	g := o.Grid()
	bg := o.ColorRank()[0].Color
	var bgCells, restCells []cell
	for r := range g {
		for c := range g[r] {
			switch v := g[r][c]; {
			case v == object.NullColor:
			case v == bg:
				bgCells = append(bgCells, cell{r, c, v})
			default:
				restCells = append(restCells, cell{r, c, v})
			}
		}
	}
	if len(bgCells) == 0 || len(restCells) == 0 {
		return nil
	}

	return object.New(o.Row(), o.Col(), o.Color(),
		object.WithChildren(cluster(bgCells), cluster(restCells)),
		object.AsFinished())
}
