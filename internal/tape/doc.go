// Package tape classifies a geometry selection and dispatches it to the
// right measurement.
//
// The host hands over a read-only snapshot of its edit state (selection
// mode, selected vertices and edges, cursor, unit system); tape
// validates the snapshot's shape, runs the measurement and formats the
// display text. Every failure is a typed, user-recoverable error value.
package tape
