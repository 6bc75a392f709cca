package tape

// CardinalityError reports a selection with the wrong number of
// vertices or edges for the requested measurement.
type CardinalityError struct {
	Message string
}

func (e *CardinalityError) Error() string {
	return "invalid selection: " + e.Message
}

// TopologyError reports a multi-edge selection that does not form a
// single contiguous group.
type TopologyError struct {
	Message string
}

func (e *TopologyError) Error() string {
	return "invalid selection: " + e.Message
}

// ModeError reports that no recognized selection mode is active.
type ModeError struct {
	Message string
}

func (e *ModeError) Error() string {
	return "invalid selection mode: " + e.Message
}
