package responderService

import (
	"math/rand"
	"sync"
	"time"
)

// RandSource abstracts the uniform draw used for template and variable
// selection so tests can supply a scripted sequence.
type RandSource interface {
	Intn(n int) int
}

// mathRandSource serializes draws: one instance is shared between the
// inbound message pipeline and the admin match-test surface, and
// *rand.Rand is not safe for concurrent use.
type mathRandSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewRandSource() RandSource {
	return &mathRandSource{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (s *mathRandSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}
