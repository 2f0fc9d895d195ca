// Package rand wraps a PCG32 generator so scene generation can be seeded
// and replayed.
package rand

import (
	"time"

	"github.com/MichaelTJones/pcg"
)

const pcgSequence = 0xda3e39cb94b95bdb

type Rand struct {
	r *pcg.PCG32
}

// New returns a generator seeded from the clock.
func New() *Rand {
	return NewSeeded(time.Now().UnixNano())
}

func NewSeeded(seed int64) *Rand {
	r := &Rand{r: pcg.NewPCG32()}
	r.Seed(seed)
	return r
}

func (r *Rand) Seed(s int64) {
	r.r.Seed(uint64(s), pcgSequence)
}

// Intn returns a value in [0,n). n must be positive.
func (r *Rand) Intn(n int) int {
	return int(r.r.Bounded(uint32(n)))
}

// Float64 returns a value in [0,1).
func (r *Rand) Float64() float64 {
	return float64(r.r.Random()) / (1 << 32)
}
