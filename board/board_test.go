package board_test

import (
	"testing"

	"github.com/avoronkov/gridmdl/board"
	"github.com/avoronkov/gridmdl/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// linesGrid builds a 9×9 black board with four separated horizontal runs,
// one per color 1..4, occupying columns 1..7 of rows 1, 3, 5 and 7.
func linesGrid() [][]int {
	grid := make([][]int, 9)
	for r := range grid {
		grid[r] = make([]int, 9)
	}
	for i, color := range []int{1, 2, 3, 4} {
		row := 2*i + 1
		for c := 1; c <= 7; c++ {
			grid[row][c] = color
		}
	}

	return grid
}

// TestNew_Validation ensures grid intake rejects empty, ragged, out-of-range
// and oversized boards with the matching sentinel.
func TestNew_Validation(t *testing.T) {
	_, err := board.New(nil)
	assert.ErrorIs(t, err, board.ErrEmptyGrid)

	_, err = board.New([][]int{{1, 2}, {3}})
	assert.ErrorIs(t, err, board.ErrRaggedGrid)

	_, err = board.New([][]int{{object.NColors}})
	assert.ErrorIs(t, err, board.ErrColorRange)

	tall := make([][]int, object.MaxRows+1)
	for r := range tall {
		tall[r] = []int{0}
	}
	_, err = board.New(tall)
	assert.ErrorIs(t, err, board.ErrGridTooLarge)
}

// TestNew_SeedRepresentation verifies the literal cell-by-cell seed: one Dot
// child per cell before any decomposition runs.
func TestNew_SeedRepresentation(t *testing.T) {
	b, err := board.New([][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)

	rep := b.Rep()
	assert.Len(t, rep.Children(), 4)
	assert.Equal(t, 6, rep.Props())
}

// TestDecompose_SolidBlock compresses a solid 3×3 board into a single
// generated rectangle.
func TestDecompose_SolidBlock(t *testing.T) {
	b, err := board.New([][]int{
		{3, 3, 3},
		{3, 3, 3},
		{3, 3, 3},
	})
	require.NoError(t, err)
	require.Equal(t, 11, b.Rep().Props(), "seed: container plus nine dots")

	b.Decompose(0, 0)

	rep := b.Rep()
	assert.Empty(t, rep.Children())
	assert.Equal(t, "Rect", rep.Category())
	assert.Equal(t, 3, rep.Color())
	assert.Equal(t, 2, rep.Code("R"))
	assert.Equal(t, 2, rep.Code("C"))
	assert.Equal(t, 6, rep.Props())

	h, w := rep.Shape()
	assert.Equal(t, 9, h*w, "the compressed form still covers the board")
}

// TestDecompose_LinesScene runs the full search on the four-line board and
// checks the terminal representation: a generated background rectangle plus
// one generated line per color, five top-level children in total.
func TestDecompose_LinesScene(t *testing.T) {
	b, err := board.New(linesGrid())
	require.NoError(t, err)
	require.Equal(t, 83, b.Rep().Props(), "seed: container plus 81 dots")

	b.Decompose(0, 0)

	rep := b.Rep()
	assert.Equal(t, 24, rep.Props())
	kids := rep.Children()
	require.Len(t, kids, 5)

	base := kids[0]
	h, w := base.Shape()
	assert.Equal(t, 9, h)
	assert.Equal(t, 9, w)
	assert.Equal(t, 0, base.Color())
	assert.Equal(t, "Rect", base.Category())

	for i, line := range kids[1:] {
		assert.Equal(t, "Line", line.Category(), "child %d", i+1)
		assert.Equal(t, i+1, line.Color(), "child %d", i+1)
		assert.Equal(t, 2*i+1, line.Row(), "child %d", i+1)
		assert.Equal(t, 1, line.Col(), "child %d", i+1)
		lh, lw := line.Shape()
		assert.Equal(t, 1, lh)
		assert.Equal(t, 7, lw)
	}

	// The compressed tree still renders the original board.
	assert.Equal(t, object.Grid(linesGrid()), rep.Grid())
}

// TestDecompose_NeverRegresses verifies the monotonic incumbent: re-running
// the search cannot worsen the representation.
func TestDecompose_NeverRegresses(t *testing.T) {
	b, err := board.New(linesGrid())
	require.NoError(t, err)

	b.Decompose(1, 3)
	mid := b.Rep().Props()
	assert.LessOrEqual(t, mid, 83)

	b.Decompose(0, 0)
	assert.LessOrEqual(t, b.Rep().Props(), mid)
}

// TestDecompose_BatchConvergence verifies that small and large batches both
// improve on the seed, and a larger batch explores at least as far within
// the same number of rounds.
func TestDecompose_BatchConvergence(t *testing.T) {
	small, err := board.New(linesGrid())
	require.NoError(t, err)
	large, err := board.New(linesGrid())
	require.NoError(t, err)

	small.Decompose(1, 10)
	large.Decompose(10, 10)

	assert.Less(t, small.Rep().Props(), 83)
	assert.Less(t, large.Rep().Props(), 83)
	assert.LessOrEqual(t, large.Rep().Props(), small.Rep().Props())
}

// TestDecompose_CustomProcesses verifies the strategy list is pluggable: an
// empty list leaves the seed representation untouched.
func TestDecompose_CustomProcesses(t *testing.T) {
	b, err := board.New([][]int{{1, 1}, {1, 1}}, board.WithProcesses())
	require.NoError(t, err)

	before := b.Rep().Props()
	b.Decompose(0, 0)
	assert.Equal(t, before, b.Rep().Props())
}
