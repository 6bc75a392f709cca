// Package parse turns the coordinate literals accepted by the CLI and
// GUI front ends into core geometry values.
//
// A vertex is written "x,y,z" and an edge "x1,y1,z1:x2,y2,z2". The
// front ends act as the host here, so they also decide vertex identity:
// within one selection, identical coordinate literals name the same
// vertex, which is what makes edge chains expressible from flags.
package parse

import (
	"fmt"
	"strconv"
	"strings"

	"edgewise/pkg/geometry"
)

// Vector parses a "x,y,z" coordinate literal
func Vector(s string) (geometry.Vector3, error) {
	fields := strings.Split(strings.TrimSpace(s), ",")
	if len(fields) != 3 {
		return geometry.Vector3{}, fmt.Errorf("invalid point %q: expected x,y,z", s)
	}

	var coords [3]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return geometry.Vector3{}, fmt.Errorf("invalid point %q: %w", s, err)
		}
		coords[i] = v
	}

	return geometry.NewVector3(coords[0], coords[1], coords[2]), nil
}

// Vectors parses a list of "x,y,z" literals
func Vectors(literals []string) ([]geometry.Vector3, error) {
	verts := make([]geometry.Vector3, 0, len(literals))
	for _, s := range literals {
		v, err := Vector(s)
		if err != nil {
			return nil, err
		}
		verts = append(verts, v)
	}
	return verts, nil
}

// EdgeSet builds edges from "x1,y1,z1:x2,y2,z2" literals, assigning
// vertex identifiers so that equal endpoint literals within the set
// share identity.
type EdgeSet struct {
	ids   map[string]geometry.VertexID
	edges []geometry.Edge
}

// NewEdgeSet creates an empty edge set
func NewEdgeSet() *EdgeSet {
	return &EdgeSet{ids: make(map[string]geometry.VertexID)}
}

// Add parses one edge literal and appends it to the set
func (s *EdgeSet) Add(literal string) error {
	parts := strings.Split(literal, ":")
	if len(parts) != 2 {
		return fmt.Errorf("invalid edge %q: expected x1,y1,z1:x2,y2,z2", literal)
	}

	start, err := Vector(parts[0])
	if err != nil {
		return fmt.Errorf("invalid edge %q: %w", literal, err)
	}
	end, err := Vector(parts[1])
	if err != nil {
		return fmt.Errorf("invalid edge %q: %w", literal, err)
	}

	s.edges = append(s.edges, geometry.NewEdge(
		s.vertexID(parts[0]), s.vertexID(parts[1]), start, end))
	return nil
}

// Edges parses all literals into a fresh set and returns the edges
func Edges(literals []string) ([]geometry.Edge, error) {
	set := NewEdgeSet()
	for _, literal := range literals {
		if err := set.Add(literal); err != nil {
			return nil, err
		}
	}
	return set.Result(), nil
}

// Result returns the edges accumulated so far
func (s *EdgeSet) Result() []geometry.Edge {
	return s.edges
}

func (s *EdgeSet) vertexID(literal string) geometry.VertexID {
	key := canonical(literal)
	if id, ok := s.ids[key]; ok {
		return id
	}
	id := geometry.VertexID(len(s.ids))
	s.ids[key] = id
	return id
}

func canonical(literal string) string {
	fields := strings.Split(literal, ",")
	for i, f := range fields {
		fields[i] = strings.TrimSpace(f)
	}
	return strings.Join(fields, ",")
}
