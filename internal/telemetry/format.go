// Package telemetry turns raw vessel telemetry numbers into the
// human-readable labels used by prompts, fallbacks, and log metadata.
package telemetry

import (
	"fmt"
	"math"
)

var compassPoints = []string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// FormatHeading renders a heading in degrees as "{deg}° {POINT}" using the
// nearest of the eight 45°-spaced compass points. Degrees outside [0,360)
// wrap via modulo. A nil heading means the helm is holding steady.
func FormatHeading(headingDeg *float64) string {
	if headingDeg == nil {
		return "steady course"
	}
	wrapped := math.Mod(math.Mod(*headingDeg, 360)+360, 360)
	idx := int(math.Round(wrapped/45)) % len(compassPoints)
	return fmt.Sprintf("%.0f° %s", wrapped, compassPoints[idx])
}

// FormatDrift renders cross-track drift in points with the side of the
// plotted line. Anything under one point reads as centerline.
func FormatDrift(drift *float64) string {
	if drift == nil {
		return "centerline"
	}
	magnitude := math.Abs(*drift)
	if magnitude < 1 {
		return "centerline"
	}
	side := "port"
	if *drift > 0 {
		side = "starboard"
	}
	return fmt.Sprintf("%.0f pt %s", magnitude, side)
}

// FormatEfficiency renders a 0..1 efficiency ratio as a percentage label,
// or an empty string when the metric is absent.
func FormatEfficiency(efficiency *float64) string {
	if efficiency == nil {
		return ""
	}
	return fmt.Sprintf("Efficiency %.0f%%", *efficiency*100)
}
