// Package physics provides collision detection and distance utilities.
package physics

import "math"

// Distance calculates the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// Gap returns the distance between the edges of two circles.
// Negative when the circles overlap.
func Gap(x1, y1, r1, x2, y2, r2 float64) float64 {
	return Distance(x1, y1, x2, y2) - r1 - r2
}

// Touching reports whether the edge gap between two circles is below epsilon.
// This is the hit test used for both projectile hits and player contact.
func Touching(x1, y1, r1, x2, y2, r2, epsilon float64) bool {
	return Gap(x1, y1, r1, x2, y2, r2) < epsilon
}

// Heading returns the unit vector pointing from (fromX, fromY) to (toX, toY).
// A zero-length heading points right.
func Heading(fromX, fromY, toX, toY float64) (float64, float64) {
	angle := math.Atan2(toY-fromY, toX-fromX)
	return math.Cos(angle), math.Sin(angle)
}
