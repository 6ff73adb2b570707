package core

import (
	"math/rand"
	"time"
)

// Rand is the random source used by the simulation.
// *rand.Rand satisfies it; tests may script values.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// NewRand returns a seeded source. Seed 0 means seed from the current time.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Clock provides wall-clock time for elapsed-time scoring.
type Clock interface {
	Now() time.Time
}

// SystemClock reads time.Now.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time {
	return time.Now()
}
