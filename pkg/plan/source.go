package plan

import (
	"context"
	"slices"
	"sync"
)

// Source defines how plan catalogs are loaded into a Registry. Implementations
// may read from configuration, a database, or a remote billing catalog.
type Source interface {
	Load(ctx context.Context) ([]Plan, error)
}

// inMemSource implements Source over a fixed slice of plans.
type inMemSource struct {
	mu    sync.RWMutex
	plans []Plan
}

// NewInMemSource returns an in-memory Source with a deep copy of the given
// plans, in the given order.
func NewInMemSource(plans ...Plan) Source {
	return &inMemSource{plans: clonePlans(plans)}
}

// Load returns a copy of the plans; callers may mutate the result freely.
func (s *inMemSource) Load(_ context.Context) ([]Plan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clonePlans(s.plans), nil
}

func clonePlans(plans []Plan) []Plan {
	out := make([]Plan, len(plans))
	for i, p := range plans {
		p.Features = slices.Clone(p.Features)
		out[i] = p
	}
	return out
}
