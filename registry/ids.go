package registry

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// idSource stamps registrations with monotonic ULIDs so Registrations() can
// report them in registration order.
type idSource struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

func newIDSource() *idSource {
	return &idSource{entropy: ulid.Monotonic(rand.Reader, 0)}
}

func (s *idSource) Next() ulid.ULID {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, err := ulid.New(ulid.Timestamp(time.Now()), s.entropy)
	if err != nil {
		// Monotonic overflow within one millisecond; fall back to fresh entropy.
		return ulid.Make()
	}
	return id
}
