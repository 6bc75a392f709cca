package geometry

// VertexID is the host's stable identifier for a mesh vertex. Adjacency
// between edges is decided by identifier, never by coordinate equality:
// two vertices at the same position are still distinct vertices.
type VertexID int

// Edge is a selected mesh edge: two endpoint identifiers with their
// world-space positions cached at selection time. The (Start, End) order
// is whatever the host enumerated; it is preserved because the angle
// measurement is defined on the Start→End direction.
type Edge struct {
	StartID VertexID
	EndID   VertexID
	Start   Vector3
	End     Vector3
}

// NewEdge creates an edge from two identified endpoints
func NewEdge(startID, endID VertexID, start, end Vector3) Edge {
	return Edge{StartID: startID, EndID: endID, Start: start, End: end}
}

// Length returns the Euclidean length of the edge
func (e Edge) Length() float64 {
	return e.Start.Distance(e.End)
}

// Vector returns the Start→End direction vector
func (e Edge) Vector() Vector3 {
	return e.End.Sub(e.Start)
}

// SharesEndpoint reports whether two edges have a common endpoint,
// compared by vertex identifier
func (e Edge) SharesEndpoint(other Edge) bool {
	return e.StartID == other.StartID || e.StartID == other.EndID ||
		e.EndID == other.StartID || e.EndID == other.EndID
}
