// Package buffon estimates π by simulating Buffon's needle problem.
//
// Needles of length needle.NeedleLength are dropped at random onto a plane
// ruled with parallel lines needle.LineDistance apart. The fraction of
// needles that cross a line approaches 2L/(πd), which is 1/π for the fixed
// dimensions, so its inverse approaches π.
//
// Basic usage:
//
//	sim := buffon.New(buffon.DefaultConfig())
//	summary, err := sim.Run(1_000_000)
//	if err != nil {
//		return err
//	}
//	summary.WriteReport(os.Stdout)
package buffon

import (
	"iter"

	"github.com/nozzle/buffon/internal/rand"
	"github.com/nozzle/buffon/needle"
	"github.com/nozzle/buffon/sampler"
)

// Config configures a simulation.
type Config struct {
	// Seed for the random number generator.
	// Negative values draw a fresh seed from the platform entropy source,
	// so consecutive runs differ. Non-negative values use their low 32 bits
	// and make the run reproducible.
	// Default: -1
	Seed int64

	// ProgressCallback is called with (thrown, total) roughly every tenth of
	// the run and once when the last needle has been thrown.
	// Default: nil
	ProgressCallback func(thrown, total int)
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Seed: -1,
	}
}

// Simulator runs needle-dropping experiments.
type Simulator struct {
	Config Config

	seed uint32
}

// New creates a new Simulator with the given configuration.
func New(config Config) *Simulator {
	return &Simulator{Config: config}
}

// Seed returns the seed used by the most recent Run.
func (s *Simulator) Seed() uint32 {
	return s.seed
}

// Run throws needleCount needles and returns the counts.
// A non-positive needleCount returns an *InvalidInputError without drawing
// any trials.
func (s *Simulator) Run(needleCount int) (Summary, error) {
	if err := validateNeedleCount(needleCount); err != nil {
		return Summary{}, err
	}

	var mt *rand.MT19937
	if s.Config.Seed < 0 {
		mt, s.seed = rand.NewFromEntropy()
	} else {
		s.seed = uint32(s.Config.Seed)
		mt = rand.NewMT19937(s.seed)
	}

	trials := sampler.New(mt).Trials(needleCount)
	if s.Config.ProgressCallback != nil {
		trials = withProgress(trials, needleCount, s.Config.ProgressCallback)
	}

	return Summary{
		NeedleCount: needleCount,
		Intersected: Tally(trials),
	}, nil
}

// Tally counts the trials in which the needle crosses a line.
func Tally(trials iter.Seq[needle.Trial]) int {
	intersected := 0
	for trial := range trials {
		if needle.Intersects(trial) {
			intersected++
		}
	}
	return intersected
}

// withProgress reports every step trials and after the final one.
func withProgress(trials iter.Seq[needle.Trial], total int, fn func(thrown, total int)) iter.Seq[needle.Trial] {
	step := max(total/10, 1)
	return func(yield func(needle.Trial) bool) {
		thrown := 0
		for trial := range trials {
			if !yield(trial) {
				return
			}
			thrown++
			if thrown%step == 0 || thrown == total {
				fn(thrown, total)
			}
		}
	}
}
