// Package units converts raw lengths from the canonical base unit
// (meters) into the configured display unit. Conversion happens exactly
// once, when a result is formatted; all geometric math stays in meters.
package units

import (
	"fmt"

	"edgewise/pkg/geometry"
)

// FeetPerMeter is the fixed conversion factor for imperial display.
// It is a display approximation, not a round-trippable constant.
const FeetPerMeter = 3.28084

// System selects the display unit system
type System int

const (
	Metric System = iota
	Imperial
)

// String returns the system name
func (s System) String() string {
	if s == Imperial {
		return "imperial"
	}
	return "metric"
}

// Convert maps a length in meters to the display unit
func Convert(value float64, system System) float64 {
	if system == Imperial {
		return value * FeetPerMeter
	}
	return value
}

// Symbol returns the display unit symbol
func Symbol(system System) string {
	if system == Imperial {
		return "ft"
	}
	return "m"
}

// FormatLength renders a raw length as "12.34 m" / "40.48 ft"
func FormatLength(value float64, system System) string {
	return fmt.Sprintf("%.2f %s", Convert(value, system), Symbol(system))
}

// FormatAngles renders an inside/outside angle pair in degrees
func FormatAngles(inside, outside float64) string {
	return fmt.Sprintf("%.2f° | %.2f°", inside, outside)
}

// FormatAxisLength renders an axis-aligned length as "X: 5.00 m"
func FormatAxisLength(axis geometry.Axis, value float64, system System) string {
	return fmt.Sprintf("%s: %.2f %s", axis, Convert(value, system), Symbol(system))
}
