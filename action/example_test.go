package action_test

import (
	"fmt"

	"github.com/avoronkov/gridmdl/action"
	"github.com/avoronkov/gridmdl/object"
)

// ExampleAction_Act demonstrates applying a transform from the registry and
// recovering its arguments by inversion.
func ExampleAction_Act() {
	table := action.Default()
	translate, _ := table.Get(action.Translate)

	dot := object.New(1, 2, 4)
	moved := translate.Act(dot, 2, 2)

	fmt.Println(moved)
	fmt.Println(translate.Inv(dot, moved))

	// Output:
	// Dot(1x1)@(3,4,4)
	// [2 2]
}

// ExampleAction_ActPair demonstrates a pairwise transform: the secondary
// object supplies the parameters, here the gap to close.
func ExampleAction_ActPair() {
	table := action.Default()
	adjoin, _ := table.Get(action.Adjoin)

	mover := object.New(0, 0, 1)
	target := object.New(6, 0, 2)

	fmt.Println(adjoin.ActPair(mover, target))

	// Output:
	// Dot(1x1)@(5,0,1)
}
