package privatekey

import (
	"context"
	"sync"

	"github.com/gabapcia/chainsentry/internal/pkg/types"
)

// memoryStore is an AlertedStore that forgets everything on restart.
type memoryStore struct {
	mu      sync.Mutex
	alerted types.Set[string]
}

var _ AlertedStore = (*memoryStore)(nil)

// NewMemoryStore returns an empty in-process AlertedStore.
func NewMemoryStore() *memoryStore {
	return &memoryStore{alerted: types.NewSet[string]()}
}

func (s *memoryStore) IsAlerted(_ context.Context, attacker string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.alerted.Has(attacker), nil
}

func (s *memoryStore) MarkAlerted(_ context.Context, attacker string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.alerted.Add(attacker)
	return nil
}
