package registry

import (
	"math/rand/v2"
	"sync"
)

// RandomSource produces the random draws used to simulate status codes.
//
// Implementations must be safe for concurrent use.
type RandomSource interface {
	// Intn returns a non-negative pseudo-random number in [0, n).
	Intn(n int) int
}

// DefaultSource is a RandomSource backed by the runtime's global generator,
// which is safe for concurrent use.
var DefaultSource RandomSource = globalSource{}

type globalSource struct{}

func (globalSource) Intn(n int) int {
	return rand.IntN(n)
}

// LockedSource is a seeded RandomSource guarded by a mutex. Two sources with
// the same seed produce the same sequence.
type LockedSource struct {
	mutex sync.Mutex
	rand  *rand.Rand
}

// NewLockedSource returns a new source seeded with seed.
func NewLockedSource(seed uint64) *LockedSource {
	return &LockedSource{
		rand: rand.New(rand.NewPCG(seed, seed)),
	}
}

// Intn returns a non-negative pseudo-random number in [0, n).
func (s *LockedSource) Intn(n int) int {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.rand.IntN(n)
}
