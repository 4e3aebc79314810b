// Package needle holds the geometry of Buffon's needle: the fixed board and
// needle dimensions, a single drop, and the test for whether it crosses a line.
package needle

import "math"

const (
	// LineDistance is the spacing between adjacent ruled lines.
	LineDistance = 2.0

	// NeedleLength is the length of every needle. It must not exceed
	// LineDistance, otherwise a needle could cross two lines at once.
	NeedleLength = 1.0

	// MaxOffset is the largest distance from a needle center to its nearest line.
	MaxOffset = LineDistance / 2

	// MaxAngle is the largest acute angle between a needle and the lines.
	MaxAngle = math.Pi / 2
)

// Trial is one needle drop.
type Trial struct {
	// Offset is the perpendicular distance from the needle center to the
	// nearest line, in [0, MaxOffset].
	Offset float64

	// Angle is the needle orientation relative to the lines in radians,
	// in [0, MaxAngle].
	Angle float64
}

// Intersects reports whether the needle crosses a line.
// The needle crosses when its half-length projected perpendicular to the
// lines reaches the center offset. Touching a line counts as crossing it.
func Intersects(t Trial) bool {
	return t.Offset <= (NeedleLength/2)*math.Sin(t.Angle)
}

// ExpectedProbability returns the closed-form crossing probability 2L/(πd).
// With the fixed dimensions this is 1/π.
func ExpectedProbability() float64 {
	return 2 * NeedleLength / (math.Pi * LineDistance)
}
