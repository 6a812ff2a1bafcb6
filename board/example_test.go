package board_test

import (
	"fmt"

	"github.com/avoronkov/gridmdl/board"
)

// ExampleBoard_Decompose demonstrates compressing a solid board: nine literal
// cells collapse into one generated rectangle.
func ExampleBoard_Decompose() {
	b, _ := board.New([][]int{
		{7, 7, 7},
		{7, 7, 7},
		{7, 7, 7},
	})

	fmt.Println("before:", b.Rep().Props())
	b.Decompose(0, 0)
	fmt.Println("after:", b.Rep().Props())
	fmt.Println(b.Rep())

	// Output:
	// before: 11
	// after: 6
	// Rect(3x3)@(0,0,7)
}
