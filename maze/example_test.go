package maze_test

import (
	"fmt"

	"github.com/katalvlaran/ratmaze/maze"
)

// ExampleNewGrid builds a 3×3 maze with a wall and a mud patch and prints the
// moves available from the center cell.
func ExampleNewGrid() {
	g, _ := maze.NewGrid(3, 3,
		maze.WithWall(4, 1),
		maze.WithMud(4, 5, 3),
	)
	nbrs, _ := g.Neighbors(4)
	for _, v := range nbrs {
		w, _ := g.Weight(4, v)
		row, col := maze.Coordinate(v, g.Width())
		fmt.Printf("%d (%d,%d) cost %d\n", v, row, col, w)
	}

	// Output:
	// 3 (1,0) cost 1
	// 5 (1,2) cost 3
	// 7 (2,1) cost 1
}

// ExampleFromRepresentation shows that PyRat's two maze encodings yield the
// same Graph behavior.
func ExampleFromRepresentation() {
	dict := map[int]map[int]int{0: {1: 2}, 1: {0: 2}}
	matrix := [][]int{{0, 2}, {2, 0}}

	a, _ := maze.FromRepresentation(2, 1, dict)
	b, _ := maze.FromRepresentation(2, 1, matrix)
	wa, _ := a.Weight(0, 1)
	wb, _ := b.Weight(0, 1)
	fmt.Printf("%T %d, %T %d\n", a, wa, b, wb)

	// Output:
	// *maze.Sparse 2, *maze.Dense 2
}
