package vmath

import "math"

// Magnitude returns the Euclidean length of (x, y)
func Magnitude(x, y float64) float64 {
	return math.Sqrt(x*x + y*y)
}

// Distance returns the Euclidean distance between two points
func Distance(x1, y1, x2, y2 float64) float64 {
	return Magnitude(x1-x2, y1-y2)
}

// ClampMagnitude limits vector to maxMag while preserving direction
// Returns unchanged vector if magnitude <= maxMag
func ClampMagnitude(x, y, maxMag float64) (cx, cy float64) {
	mag := Magnitude(x, y)
	if mag <= maxMag || mag == 0 {
		return x, y
	}
	return x / mag * maxMag, y / mag * maxMag
}

// RotateVector rotates (x, y) counter-clockwise by angle radians
// In screen space (y down) this appears clockwise
func RotateVector(x, y, angle float64) (rx, ry float64) {
	sin, cos := math.Sincos(angle)
	return x*cos - y*sin, x*sin + y*cos
}

// DotProduct returns x1*x2 + y1*y2
func DotProduct(x1, y1, x2, y2 float64) float64 {
	return x1*x2 + y1*y2
}

// Lerp linearly interpolates between a and b by t
func Lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}
