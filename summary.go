package buffon

import (
	"fmt"
	"io"
)

// Summary holds the outcome of a run.
type Summary struct {
	// NeedleCount is the number of needles thrown. Always positive for a
	// Summary returned by Run.
	NeedleCount int

	// Intersected is the number of needles that crossed a line.
	Intersected int
}

// NotIntersected returns the number of needles that landed between lines.
func (s Summary) NotIntersected() int {
	return s.NeedleCount - s.Intersected
}

// Probability returns the fraction of needles that crossed a line.
func (s Summary) Probability() float64 {
	if s.NeedleCount <= 0 {
		return 0
	}
	return float64(s.Intersected) / float64(s.NeedleCount)
}

// InverseProbability returns 1/Probability, the estimate of π.
//
// When no needle crossed a line it returns 0. The zero is a display
// fallback for an estimate that has not converged; it does not stand for
// infinity and is not an error.
func (s Summary) InverseProbability() float64 {
	if s.Intersected <= 0 {
		return 0
	}
	return 1 / s.Probability()
}

// WriteReport writes the five labeled result lines to w.
func (s Summary) WriteReport(w io.Writer) error {
	_, err := fmt.Fprintf(w,
		"Total needles thrown   : %d\n"+
			"Needles intersected    : %d\n"+
			"Needles not intersected: %d\n"+
			"Intersection probability: %.6f\n"+
			"Inverse of probability : %.6f\n",
		s.NeedleCount,
		s.Intersected,
		s.NotIntersected(),
		s.Probability(),
		s.InverseProbability(),
	)
	if err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
