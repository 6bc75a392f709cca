package topology

import (
	"testing"

	"edgewise/pkg/geometry"
)

func edge(a, b geometry.VertexID, pa, pb geometry.Vector3) geometry.Edge {
	return geometry.NewEdge(a, b, pa, pb)
}

func TestContiguousSingleEdge(t *testing.T) {
	edges := []geometry.Edge{
		edge(0, 1, geometry.NewVector3(0, 0, 0), geometry.NewVector3(1, 0, 0)),
	}

	if !Contiguous(edges) {
		t.Error("a single edge is trivially contiguous")
	}
}

func TestContiguousChain(t *testing.T) {
	edges := []geometry.Edge{
		edge(0, 1, geometry.NewVector3(0, 0, 0), geometry.NewVector3(1, 0, 0)),
		edge(1, 2, geometry.NewVector3(1, 0, 0), geometry.NewVector3(1, 1, 0)),
		edge(2, 3, geometry.NewVector3(1, 1, 0), geometry.NewVector3(1, 1, 1)),
	}

	if !Contiguous(edges) {
		t.Error("a connected chain should be contiguous")
	}
}

func TestContiguousTriangle(t *testing.T) {
	edges := []geometry.Edge{
		edge(0, 1, geometry.NewVector3(0, 0, 0), geometry.NewVector3(3, 0, 0)),
		edge(1, 2, geometry.NewVector3(3, 0, 0), geometry.NewVector3(0, 4, 0)),
		edge(2, 0, geometry.NewVector3(0, 4, 0), geometry.NewVector3(0, 0, 0)),
	}

	if !Contiguous(edges) {
		t.Error("a closed triangle should be contiguous")
	}
}

func TestContiguousBranch(t *testing.T) {
	// Three edges fanning out from one shared vertex.
	origin := geometry.NewVector3(0, 0, 0)
	edges := []geometry.Edge{
		edge(0, 1, origin, geometry.NewVector3(1, 0, 0)),
		edge(0, 2, origin, geometry.NewVector3(0, 1, 0)),
		edge(0, 3, origin, geometry.NewVector3(0, 0, 1)),
	}

	if !Contiguous(edges) {
		t.Error("a branching fan around one vertex should be contiguous")
	}
}

func TestNotContiguousDisjoint(t *testing.T) {
	edges := []geometry.Edge{
		edge(0, 1, geometry.NewVector3(0, 0, 0), geometry.NewVector3(1, 0, 0)),
		edge(2, 3, geometry.NewVector3(5, 5, 5), geometry.NewVector3(6, 5, 5)),
	}

	if Contiguous(edges) {
		t.Error("two disjoint edges should not be contiguous")
	}
}

func TestNotContiguousTwoComponents(t *testing.T) {
	edges := []geometry.Edge{
		edge(0, 1, geometry.NewVector3(0, 0, 0), geometry.NewVector3(1, 0, 0)),
		edge(1, 2, geometry.NewVector3(1, 0, 0), geometry.NewVector3(2, 0, 0)),
		edge(5, 6, geometry.NewVector3(9, 0, 0), geometry.NewVector3(9, 1, 0)),
		edge(6, 7, geometry.NewVector3(9, 1, 0), geometry.NewVector3(9, 2, 0)),
	}

	if Contiguous(edges) {
		t.Error("two separate chains should not be contiguous")
	}
}

func TestNotContiguousCoincidentVertices(t *testing.T) {
	// Endpoints touch in space but carry different identities.
	meet := geometry.NewVector3(1, 0, 0)
	edges := []geometry.Edge{
		edge(0, 1, geometry.NewVector3(0, 0, 0), meet),
		edge(2, 3, meet, geometry.NewVector3(2, 0, 0)),
	}

	if Contiguous(edges) {
		t.Error("coincident but distinct vertices must not connect edges")
	}
}
