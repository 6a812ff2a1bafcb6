package object

// Grid is a rectangular 2D array of color values, row-major.
type Grid [][]int

// Rows returns the number of rows.
func (g Grid) Rows() int { return len(g) }

// Cols returns the number of columns, 0 for an empty grid.
func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}

	return len(g[0])
}

// Validate checks that the grid is non-empty, rectangular, and that every
// cell value lies in [0, NColors).
// Complexity: O(W×H).
func (g Grid) Validate() error {
	if len(g) == 0 || len(g[0]) == 0 {
		return ErrEmptyGrid
	}
	w := len(g[0])
	for _, row := range g {
		if len(row) != w {
			return ErrRaggedGrid
		}
		for _, v := range row {
			if v < 0 || v >= NColors {
				return ErrColorRange
			}
		}
	}

	return nil
}

// Clone deep-copies the grid.
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for i, row := range g {
		out[i] = make([]int, len(row))
		copy(out[i], row)
	}

	return out
}

// Equal reports whether two grids have identical dimensions and cells.
func (g Grid) Equal(other Grid) bool {
	if g.Rows() != other.Rows() || g.Cols() != other.Cols() {
		return false
	}
	for r := range g {
		for c := range g[r] {
			if g[r][c] != other[r][c] {
				return false
			}
		}
	}

	return true
}

// Rot90 returns the grid rotated one quarter turn counter-clockwise:
// out[i][j] = g[j][cols-1-i].
func (g Grid) Rot90() Grid {
	h, w := g.Rows(), g.Cols()
	out := make(Grid, w)
	for i := 0; i < w; i++ {
		out[i] = make([]int, h)
		for j := 0; j < h; j++ {
			out[i][j] = g[j][w-1-i]
		}
	}

	return out
}

// Flip mirrors the grid: axis 0 reverses row order (flip over the
// horizontal midline), axis 1 reverses column order.
func (g Grid) Flip(axis int) Grid {
	h, w := g.Rows(), g.Cols()
	out := make(Grid, h)
	for r := 0; r < h; r++ {
		out[r] = make([]int, w)
		for c := 0; c < w; c++ {
			if axis == 0 {
				out[r][c] = g[h-1-r][c]
			} else {
				out[r][c] = g[r][w-1-c]
			}
		}
	}

	return out
}

// Tile repeats the grid vf times vertically and hf times horizontally.
// Factors below 1 are treated as 1.
func (g Grid) Tile(vf, hf int) Grid {
	if vf < 1 {
		vf = 1
	}
	if hf < 1 {
		hf = 1
	}
	if vf == 1 && hf == 1 {
		return g.Clone()
	}
	h, w := g.Rows(), g.Cols()
	out := make(Grid, h*vf)
	for r := range out {
		out[r] = make([]int, w*hf)
		for c := range out[r] {
			out[r][c] = g[r%h][c%w]
		}
	}

	return out
}
