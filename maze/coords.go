package maze

// Coordinate converts a vertex to its (row, col) cell position.
// Complexity: O(1).
func Coordinate(v Vertex, width int) (row, col int) {
	return int(v) / width, int(v) % width
}

// Index converts a (row, col) cell position to its vertex.
// Complexity: O(1).
func Index(row, col, width int) Vertex {
	return Vertex(row*width + col)
}

// InBounds reports whether (row, col) lies inside a width×height maze.
func InBounds(row, col, width, height int) bool {
	return row >= 0 && row < height && col >= 0 && col < width
}

// Manhattan returns |Δrow| + |Δcol| between two vertices.
// On a 4-connected maze with weights ≥ 1 it never overestimates the true
// travel cost, which makes it an admissible A* heuristic.
func Manhattan(a, b Vertex, width int) int {
	ar, ac := Coordinate(a, width)
	br, bc := Coordinate(b, width)

	return abs(ar-br) + abs(ac-bc)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

// inRange reports whether v is a valid cell index for a width×height maze.
func inRange(v Vertex, width, height int) bool {
	return v >= 0 && int(v) < width*height
}
