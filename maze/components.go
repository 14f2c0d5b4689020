package maze

import (
	"fmt"
	"sort"
)

// Components partitions g into connected components, reading every edge as
// undirected. Each component is sorted ascending; components are ordered by
// their smallest vertex.
//
// Time:   O(V + E).
// Memory: O(V + E) for the undirected view and output.
func Components(g Graph) ([][]Vertex, error) {
	// undirected view: PyRat mazes are symmetric, but one-way edges must
	// still join their endpoints
	undirected := make(map[Vertex][]Vertex)
	for _, u := range g.Vertices() {
		nbrs, err := g.Neighbors(u)
		if err != nil {
			return nil, err
		}
		for _, v := range nbrs {
			undirected[u] = append(undirected[u], v)
			undirected[v] = append(undirected[v], u)
		}
	}

	seen := make(map[Vertex]bool, len(g.Vertices()))
	var comps [][]Vertex
	for _, start := range g.Vertices() {
		if seen[start] {
			continue
		}
		seen[start] = true
		queue := []Vertex{start}
		for qi := 0; qi < len(queue); qi++ {
			for _, v := range undirected[queue[qi]] {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		sort.Slice(queue, func(i, j int) bool { return queue[i] < queue[j] })
		comps = append(comps, queue)
	}

	return comps, nil
}

// Reachable returns the set of vertices reachable from src following edge
// direction (src included).
// Complexity: O(V + E).
func Reachable(g Graph, src Vertex) (map[Vertex]bool, error) {
	if !g.Has(src) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidVertex, src)
	}
	seen := map[Vertex]bool{src: true}
	queue := []Vertex{src}
	for qi := 0; qi < len(queue); qi++ {
		nbrs, err := g.Neighbors(queue[qi])
		if err != nil {
			return nil, err
		}
		for _, v := range nbrs {
			if !seen[v] {
				seen[v] = true
				queue = append(queue, v)
			}
		}
	}

	return seen, nil
}
