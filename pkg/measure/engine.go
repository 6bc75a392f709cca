// Package measure computes raw measurements over selected geometry.
// All results are in the canonical base unit (meters); display
// conversion is the caller's job.
package measure

import (
	"fmt"
	"math"

	"edgewise/pkg/geometry"
)

// ComputationError reports degenerate geometry that makes a measurement
// mathematically undefined, e.g. a zero-length edge in an angle
// calculation.
type ComputationError struct {
	Reason string
}

func (e *ComputationError) Error() string {
	return "computation failed: " + e.Reason
}

// VertexDistance returns the Euclidean distance between two points.
// It is symmetric and zero iff the points coincide exactly.
func VertexDistance(v1, v2 geometry.Vector3) float64 {
	return v1.Distance(v2)
}

// EdgeLength returns the Euclidean length of a single edge
func EdgeLength(e geometry.Edge) float64 {
	return e.Length()
}

// SummedLength returns the total length of a set of edges. Contiguity
// is a selection-validity rule enforced by the classifier before this
// is called; the sum itself does not depend on it.
func SummedLength(edges []geometry.Edge) float64 {
	total := 0.0
	for _, e := range edges {
		total += e.Length()
	}
	return total
}

// AnglePair holds the angle between two edges and its complement to a
// full turn, both in degrees. Inside + Outside == 360.
type AnglePair struct {
	Inside  float64
	Outside float64
}

// AngleBetween measures the unsigned angle between the Start→End
// vectors of two edges. The result depends on the endpoint order the
// host supplied for each edge; no orientation normalization is applied.
// A zero-length edge makes the angle undefined and yields a
// ComputationError instead of NaN.
func AngleBetween(e1, e2 geometry.Edge) (AnglePair, error) {
	v1 := e1.Vector()
	v2 := e2.Vector()
	if v1.Length() == 0 || v2.Length() == 0 {
		return AnglePair{}, &ComputationError{
			Reason: "angle is undefined for a zero-length edge",
		}
	}

	inside := v1.AngleTo(v2) * 180.0 / math.Pi
	return AnglePair{Inside: inside, Outside: 360.0 - inside}, nil
}

// AxisDistance returns the absolute difference between a point and the
// reference cursor along one world axis.
func AxisDistance(point, cursor geometry.Vector3, axis geometry.Axis) float64 {
	return math.Abs(point.Component(axis) - cursor.Component(axis))
}

// FormatVector renders a point for diagnostic output
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
