package tape

import (
	"testing"

	"edgewise/pkg/geometry"
	"edgewise/pkg/units"
)

func vertexPair() Selection {
	return Selection{
		Mode:     ModeVertex,
		Vertices: []geometry.Vector3{v(0, 0, 0), v(3, 4, 0)},
		Units:    units.Metric,
	}
}

func TestSessionRecordsResult(t *testing.T) {
	var s Session

	if _, err := s.Measure(vertexPair()); err != nil {
		t.Fatalf("Measure returned error: %v", err)
	}
	if s.Result != "5.00 m" {
		t.Errorf("Result = %q, want \"5.00 m\"", s.Result)
	}
	if s.LastMode != ModeVertex {
		t.Errorf("LastMode = %v, want vertex", s.LastMode)
	}
}

func TestSessionKeepsResultOnFailure(t *testing.T) {
	var s Session
	if _, err := s.Measure(vertexPair()); err != nil {
		t.Fatalf("Measure returned error: %v", err)
	}

	// Same mode, broken selection: the old result stays displayed.
	bad := vertexPair()
	bad.Vertices = bad.Vertices[:1]
	if _, err := s.Measure(bad); err == nil {
		t.Fatal("expected a validation error")
	}
	if s.Result != "5.00 m" {
		t.Errorf("Result = %q, want previous \"5.00 m\"", s.Result)
	}
}

func TestSessionClearsResultOnModeChange(t *testing.T) {
	var s Session
	if _, err := s.Measure(vertexPair()); err != nil {
		t.Fatalf("Measure returned error: %v", err)
	}

	// Switching to edge mode with an empty selection fails, but the
	// stale vertex-mode result is cleared by the mode change.
	if _, err := s.Measure(Selection{Mode: ModeEdge}); err == nil {
		t.Fatal("expected a validation error")
	}
	if s.Result != "" {
		t.Errorf("Result = %q, want cleared", s.Result)
	}
	if s.LastMode != ModeEdge {
		t.Errorf("LastMode = %v, want edge", s.LastMode)
	}
}

func TestSessionReset(t *testing.T) {
	var s Session
	if _, err := s.Measure(vertexPair()); err != nil {
		t.Fatalf("Measure returned error: %v", err)
	}

	s.Reset()
	if s.Result != "" || s.LastMode != ModeNone {
		t.Errorf("Reset left state: %+v", s)
	}
}

func TestSessionAngleAndAxisUpdateResult(t *testing.T) {
	var s Session
	origin := v(0, 0, 0)

	angleSel := Selection{
		Edges: []geometry.Edge{
			geometry.NewEdge(0, 1, origin, v(1, 0, 0)),
			geometry.NewEdge(0, 2, origin, v(0, 1, 0)),
		},
	}
	if _, err := s.MeasureAngle(angleSel); err != nil {
		t.Fatalf("MeasureAngle returned error: %v", err)
	}
	if s.Result != "90.00° | 270.00°" {
		t.Errorf("Result = %q after angle measurement", s.Result)
	}

	axisSel := Selection{
		Vertices: []geometry.Vector3{v(5, 0, 0)},
		Cursor:   origin,
		Units:    units.Metric,
	}
	if _, err := s.MeasureAxisDistance(axisSel, geometry.AxisX); err != nil {
		t.Fatalf("MeasureAxisDistance returned error: %v", err)
	}
	if s.Result != "X: 5.00 m" {
		t.Errorf("Result = %q after axis measurement", s.Result)
	}
}
