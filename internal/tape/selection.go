package tape

import (
	"edgewise/pkg/geometry"
	"edgewise/pkg/measure"
	"edgewise/pkg/topology"
	"edgewise/pkg/units"
)

// Mode is the host's active selection mode
type Mode int

const (
	ModeNone Mode = iota
	ModeVertex
	ModeEdge
)

// String returns the mode name
func (m Mode) String() string {
	switch m {
	case ModeVertex:
		return "vertex"
	case ModeEdge:
		return "edge"
	}
	return "none"
}

// Selection is a read-only snapshot of the host's edit state for one
// measurement request. Vertices are already flattened into one
// world-space list; edges carry stable endpoint identifiers.
type Selection struct {
	Mode     Mode
	Vertices []geometry.Vector3
	Edges    []geometry.Edge
	Cursor   geometry.Vector3
	Units    units.System
}

// Result is a completed measurement: the raw base-unit value(s) and the
// display text with unit conversion already applied.
type Result struct {
	Display string
	Value   float64
	Angles  *measure.AnglePair
}

// Measure runs the mode-driven measurement: distance between two
// vertices in vertex mode, single-edge length or contiguous-group
// length in edge mode. Anything else is a validation error.
func Measure(sel Selection) (Result, error) {
	switch sel.Mode {
	case ModeVertex:
		if len(sel.Vertices) != 2 {
			return Result{}, &CardinalityError{Message: "select exactly two vertices"}
		}
		d := measure.VertexDistance(sel.Vertices[0], sel.Vertices[1])
		return lengthResult(d, sel.Units), nil

	case ModeEdge:
		switch {
		case len(sel.Edges) == 1:
			return lengthResult(measure.EdgeLength(sel.Edges[0]), sel.Units), nil
		case len(sel.Edges) > 1 && topology.Contiguous(sel.Edges):
			return lengthResult(measure.SummedLength(sel.Edges), sel.Units), nil
		case len(sel.Edges) > 1:
			return Result{}, &TopologyError{Message: "edges must form a contiguous group"}
		default:
			return Result{}, &CardinalityError{Message: "select a single edge or contiguous edge group"}
		}

	default:
		return Result{}, &ModeError{Message: "use vertex or edge mode"}
	}
}

// MeasureAngle measures the inside/outside angle between exactly two
// selected edges. It is independent of the active selection mode.
func MeasureAngle(sel Selection) (Result, error) {
	if len(sel.Edges) != 2 {
		return Result{}, &CardinalityError{Message: "select exactly two edges"}
	}
	angles, err := measure.AngleBetween(sel.Edges[0], sel.Edges[1])
	if err != nil {
		return Result{}, err
	}
	return Result{
		Display: units.FormatAngles(angles.Inside, angles.Outside),
		Angles:  &angles,
	}, nil
}

// MeasureAxisDistance measures the distance between exactly one
// selected vertex and the reference cursor along one world axis.
func MeasureAxisDistance(sel Selection, axis geometry.Axis) (Result, error) {
	if len(sel.Vertices) != 1 {
		return Result{}, &CardinalityError{Message: "select exactly one vertex"}
	}
	d := measure.AxisDistance(sel.Vertices[0], sel.Cursor, axis)
	return Result{
		Display: units.FormatAxisLength(axis, d, sel.Units),
		Value:   d,
	}, nil
}

func lengthResult(raw float64, system units.System) Result {
	return Result{
		Display: units.FormatLength(raw, system),
		Value:   raw,
	}
}
