// Package sampler draws random needle drops.
//
// A Sampler owns two uniform distributions, one for the center offset and
// one for the orientation, both fed by the same random source. Offset is
// drawn before angle within each trial, so a seeded source yields a
// reproducible sequence of trials.
package sampler

import (
	"iter"
	"math/rand/v2"

	"github.com/nozzle/buffon/needle"
	"gonum.org/v1/gonum/stat/distuv"
)

// Sampler produces needle trials from a random source.
type Sampler struct {
	offset distuv.Uniform
	angle  distuv.Uniform
}

// New creates a Sampler that draws from src.
func New(src rand.Source) *Sampler {
	return &Sampler{
		offset: distuv.Uniform{Min: 0, Max: needle.MaxOffset, Src: src},
		angle:  distuv.Uniform{Min: 0, Max: needle.MaxAngle, Src: src},
	}
}

// Trial draws a single needle drop.
func (s *Sampler) Trial() needle.Trial {
	offset := s.offset.Rand()
	angle := s.angle.Rand()
	return needle.Trial{Offset: offset, Angle: angle}
}

// Trials returns a stream of n needle drops. Trials are drawn lazily as the
// sequence is ranged over. The stream shares the Sampler's source, so ranging
// over it a second time continues from where the source left off rather than
// replaying the same trials.
func (s *Sampler) Trials(n int) iter.Seq[needle.Trial] {
	return func(yield func(needle.Trial) bool) {
		for range n {
			if !yield(s.Trial()) {
				return
			}
		}
	}
}
