package board_test

import (
	"testing"

	"github.com/avoronkov/gridmdl/board"
	"github.com/avoronkov/gridmdl/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fromGrid(t *testing.T, g object.Grid) *object.Object {
	t.Helper()
	obj, err := object.FromGrid(g)
	require.NoError(t, err)

	return obj
}

// TestMakeBase_Guard verifies the occupancy guard: holes, leaves, and
// generators are all rejected.
func TestMakeBase_Guard(t *testing.T) {
	mb := board.MakeBase{}

	holed := fromGrid(t, object.Grid{{1, object.NullColor}, {object.NullColor, 1}})
	assert.False(t, mb.Test(holed), "transparent holes block base extraction")

	full := fromGrid(t, object.Grid{{1, 2}, {3, 4}})
	assert.True(t, mb.Test(full))
	assert.False(t, mb.Test(full.Finish()), "finished objects are not reprocessed")

	gen := object.New(0, 0, 1, object.WithCodes(object.Codes{"R": 1}))
	assert.False(t, mb.Test(gen), "already generated shapes stay put")
}

// TestMakeBase_Solid collapses a monochrome container straight into a
// generated rectangle leaf.
func TestMakeBase_Solid(t *testing.T) {
	obj := fromGrid(t, object.Grid{{5, 5}, {5, 5}})

	got := board.MakeBase{}.Run(obj)
	require.NotNil(t, got)
	assert.Empty(t, got.Children())
	assert.Equal(t, 5, got.Color())
	assert.Equal(t, 1, got.Code("R"))
	assert.Equal(t, 1, got.Code("C"))
}

// TestMakeBase_BaseAndClusters re-expresses a plus shape on its background:
// the dominant color becomes a generated base rectangle, the four leftover
// corners become separate clusters.
func TestMakeBase_BaseAndClusters(t *testing.T) {
	obj := fromGrid(t, object.Grid{
		{0, 1, 0},
		{1, 1, 1},
		{0, 1, 0},
	})

	got := board.MakeBase{}.Run(obj)
	require.NotNil(t, got)
	assert.True(t, got.Finished())

	kids := got.Children()
	require.Len(t, kids, 5, "base plus four corner clusters")
	assert.Equal(t, 1, kids[0].Color(), "the plus is the dominant color")
	assert.Equal(t, 2, kids[0].Code("R"))
	assert.Equal(t, 2, kids[0].Code("C"))
	for _, corner := range kids[1:] {
		assert.Equal(t, "Dot", corner.Category())
		assert.Equal(t, 0, corner.Color())
	}
	assert.Equal(t, obj.Grid(), got.Grid(), "re-expression preserves appearance")
}

// TestConnectObjects_Groups merges same-color neighbors into clusters and
// declines when grouping gains nothing.
func TestConnectObjects_Groups(t *testing.T) {
	co := board.ConnectObjects{}

	obj := fromGrid(t, object.Grid{
		{1, object.NullColor, 2},
		{1, object.NullColor, 2},
	})
	require.True(t, co.Test(obj))

	got := co.Run(obj)
	require.NotNil(t, got)
	assert.True(t, got.Finished())
	kids := got.Children()
	require.Len(t, kids, 2)
	assert.Equal(t, 0, kids[0].Row())
	assert.Equal(t, 0, kids[0].Col())
	assert.Equal(t, 2, kids[1].Col())

	single := fromGrid(t, object.Grid{{1, 1}})
	assert.Nil(t, co.Run(single), "one component cannot improve on itself")

	dots := fromGrid(t, object.Grid{{1, 2}})
	assert.Nil(t, co.Run(dots), "as many components as children gains nothing")
}

// TestSeparateColor_Layers splits mixed content into a dominant-color layer
// and a remainder layer.
func TestSeparateColor_Layers(t *testing.T) {
	sc := board.SeparateColor{}

	mono := fromGrid(t, object.Grid{{3, 3}})
	assert.False(t, sc.Test(mono), "nothing to separate in one color")

	obj := fromGrid(t, object.Grid{
		{1, 1, 2},
		{1, 1, 2},
	})
	require.True(t, sc.Test(obj))

	got := sc.Run(obj)
	require.NotNil(t, got)
	assert.True(t, got.Finished())
	kids := got.Children()
	require.Len(t, kids, 2)
	assert.Equal(t, []int{1}, kids[0].Colors())
	assert.Equal(t, []int{2}, kids[1].Colors())
	assert.Equal(t, obj.Grid(), got.Grid(), "layers composite back to the original")
}
