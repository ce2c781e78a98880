package game

import (
	"math/rand"
	"time"
)

// Source yields uniform random integers. The game loop draws round targets
// through this interface so tests can substitute deterministic sequences.
type Source interface {
	// Pick returns a uniform random integer in [lo, hi], both inclusive.
	Pick(lo, hi int) int
}

type randSource struct {
	r *rand.Rand
}

// NewSource returns a Source backed by math/rand. A zero seed picks a
// clock-based one; any other seed gives a reproducible sequence.
func NewSource(seed int64) Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &randSource{r: rand.New(rand.NewSource(seed))}
}

func (s *randSource) Pick(lo, hi int) int {
	return lo + s.r.Intn(hi-lo+1)
}
