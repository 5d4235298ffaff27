package plan

import (
	"sync"

	"github.com/google/uuid"

	"github.com/felixgeelhaar/planforge/internal/errors"
)

// Store persists generated plans by ID.
// The HTTP surface currently never saves into it on the request path, so
// lookups report not-found; the interface exists so a real backend can be
// swapped in without touching handlers.
type Store interface {
	// Save stores a plan and returns its assigned ID
	Save(p *GeneratedPlan) (string, error)

	// Get returns the plan with the given ID, or a PLAN-001 error
	Get(id string) (*GeneratedPlan, error)
}

// MemoryStore is an in-memory Store implementation
type MemoryStore struct {
	mu    sync.RWMutex
	plans map[string]*GeneratedPlan
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		plans: make(map[string]*GeneratedPlan),
	}
}

// Save stores a plan under a fresh uuid
func (s *MemoryStore) Save(p *GeneratedPlan) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}

	id := uuid.New().String()
	s.mu.Lock()
	s.plans[id] = p
	s.mu.Unlock()
	return id, nil
}

// Get returns the plan with the given ID
func (s *MemoryStore) Get(id string) (*GeneratedPlan, error) {
	s.mu.RLock()
	p, ok := s.plans[id]
	s.mu.RUnlock()
	if !ok {
		return nil, errors.NewPlanNotFoundError(id)
	}
	return p, nil
}
