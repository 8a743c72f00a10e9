package usage

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore is an in-memory Store for tests and single-process setups.
type MemoryStore struct {
	mu     sync.RWMutex
	states map[uuid.UUID]State
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{states: make(map[uuid.UUID]State)}
}

// Load retrieves the state for a user.
func (s *MemoryStore) Load(_ context.Context, userID uuid.UUID) (State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, exists := s.states[userID]
	if !exists {
		return State{}, ErrStateNotFound
	}
	return state, nil
}

// Save creates or updates the state, keyed by State.UserID.
func (s *MemoryStore) Save(_ context.Context, state State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.states[state.UserID] = state
	return nil
}
