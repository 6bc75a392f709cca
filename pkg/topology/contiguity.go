// Package topology answers connectivity questions about edge selections.
package topology

import "edgewise/pkg/geometry"

// Contiguous reports whether the edges form a single connected component
// under the shared-endpoint relation. A single edge is trivially
// contiguous. Callers must not pass an empty slice; it answers true
// rather than panicking.
//
// The traversal walks an adjacency index keyed by vertex identifier, so
// coincident but distinct vertices never join two edges.
func Contiguous(edges []geometry.Edge) bool {
	if len(edges) <= 1 {
		return true
	}

	// Index: vertex -> edges touching it
	byVertex := make(map[geometry.VertexID][]int, len(edges)*2)
	for i, e := range edges {
		byVertex[e.StartID] = append(byVertex[e.StartID], i)
		byVertex[e.EndID] = append(byVertex[e.EndID], i)
	}

	visited := make(map[int]bool, len(edges))
	stack := []int{0}

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[current] {
			continue
		}
		visited[current] = true

		e := edges[current]
		for _, v := range []geometry.VertexID{e.StartID, e.EndID} {
			for _, neighbor := range byVertex[v] {
				if !visited[neighbor] {
					stack = append(stack, neighbor)
				}
			}
		}
	}

	return len(visited) == len(edges)
}
