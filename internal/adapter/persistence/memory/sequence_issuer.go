// Package memory holds process-local stores used by tests and the "memory"
// store driver. Nothing survives a restart.
package memory

import (
	"context"
	"sync"

	"workshop_xpto/internal/usecase/interfaces"
)

// SequenceIssuer keeps one counter per name behind a mutex.
type SequenceIssuer struct {
	mu       sync.Mutex
	counters map[string]int64
}

var _ interfaces.ISequenceIssuer = (*SequenceIssuer)(nil)

func NewSequenceIssuer() *SequenceIssuer {
	return &SequenceIssuer{counters: map[string]int64{}}
}

func (s *SequenceIssuer) NextID(ctx context.Context, counterName string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counters[counterName]++
	return s.counters[counterName], nil
}
