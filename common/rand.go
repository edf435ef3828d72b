package common

import (
	"math/rand/v2"
	"time"
)

// Source yields uniform values in [0,1). Every procedural decision in the
// runner draws from one of these.
type Source interface {
	Float64() float64
}

// NewSource returns a PCG-backed source. A zero seed picks one from the clock.
func NewSource(seed uint64) Source {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Coin reports whether the lower branch of a binary choice was taken.
// The boundary value 0.5 belongs to the lower branch.
func Coin(src Source) bool {
	return src.Float64() <= 0.5
}

// Between draws uniformly from [lo, hi).
func Between(src Source, lo, hi float64) float64 {
	return lo + src.Float64()*(hi-lo)
}

// Pick draws an index uniformly from [0, n).
func Pick(src Source, n int) int {
	if n <= 0 {
		return 0
	}
	i := int(src.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

// Sequence replays a fixed list of values, cycling when exhausted. Useful
// for pinning procedural output.
type Sequence struct {
	Values []float64
	next   int
}

func (s *Sequence) Float64() float64 {
	if s == nil || len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.next%len(s.Values)]
	s.next++
	return v
}
