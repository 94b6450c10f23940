package layout

import "math"

// All cumulative widths in this package go through the same rounding rule:
// round-half-up per measured advance, tracking added after rounding. Using a
// different rule in any one consumer (wrap, pill sizing, truncation
// remeasurement, packing) shifts glyphs visibly against each other.

func PixelRound(x float64) int {
	return int(math.Floor(x + 0.5))
}

// StringWidth measures s with the face's native whole-string advance.
func StringWidth(face Face, s string) int {
	if s == "" {
		return 0
	}
	return PixelRound(face.TextWidth(s))
}

// TrackedWidth measures s the way the tracked draw path advances its cursor:
// every rune contributes its rounded advance plus the tracking delta. The
// result equals the cursor displacement after drawing the final rune.
func TrackedWidth(face Face, s string, tracking int) int {
	w := 0
	for _, r := range s {
		w += PixelRound(face.TextWidth(string(r))) + tracking
	}
	return w
}

// measuredWidth dispatches between the tracked and native measurement paths.
func measuredWidth(face Face, s string, tracking *int) int {
	if tracking != nil {
		return TrackedWidth(face, s, *tracking)
	}
	return StringWidth(face, s)
}
