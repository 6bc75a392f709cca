package tape

import "edgewise/pkg/geometry"

// Session is the per-panel display state owned by the caller: the last
// shown result text and the mode it was produced under. The core stays
// stateless; callers pass the session into each request.
//
// A mode change clears the stale result. A failed measurement leaves
// the previous result untouched.
type Session struct {
	LastMode Mode
	Result   string
}

// Observe records the active mode, clearing the displayed result when
// the mode changed since the last request.
func (s *Session) Observe(mode Mode) {
	if s.LastMode != mode {
		s.LastMode = mode
		s.Result = ""
	}
}

// Reset clears the session, as when the host re-enters edit mode.
func (s *Session) Reset() {
	s.LastMode = ModeNone
	s.Result = ""
}

// Measure runs the mode-driven measurement and updates the displayed
// result on success.
func (s *Session) Measure(sel Selection) (Result, error) {
	s.Observe(sel.Mode)
	res, err := Measure(sel)
	if err != nil {
		return Result{}, err
	}
	s.Result = res.Display
	return res, nil
}

// MeasureAngle runs the two-edge angle measurement and updates the
// displayed result on success.
func (s *Session) MeasureAngle(sel Selection) (Result, error) {
	res, err := MeasureAngle(sel)
	if err != nil {
		return Result{}, err
	}
	s.Result = res.Display
	return res, nil
}

// MeasureAxisDistance runs the cursor axis-distance measurement and
// updates the displayed result on success.
func (s *Session) MeasureAxisDistance(sel Selection, axis geometry.Axis) (Result, error) {
	res, err := MeasureAxisDistance(sel, axis)
	if err != nil {
		return Result{}, err
	}
	s.Result = res.Display
	return res, nil
}
