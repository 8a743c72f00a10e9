package plan

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/snapjournal/diarykit/pkg/result"
)

// Registry maps stable plan IDs to Plan values and preserves insertion order.
// It is populated at startup and read-only afterwards, so it is safe to share
// across goroutines without synchronization.
type Registry struct {
	order []string
	plans map[string]Plan
}

// NewRegistry returns a Registry populated with the given plans.
// Registration failures are returned immediately; a partially built registry
// is never handed out.
func NewRegistry(plans ...Plan) (*Registry, error) {
	r := &Registry{
		plans: make(map[string]Plan, len(plans)),
	}
	for _, p := range plans {
		if err := r.Register(p); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// NewRegistryFromSource loads plans from src and builds a Registry from them.
func NewRegistryFromSource(ctx context.Context, src Source) (*Registry, error) {
	plans, err := src.Load(ctx)
	if err != nil {
		return nil, errors.Join(ErrFailedToLoadPlans, err)
	}
	return NewRegistry(plans...)
}

// Register adds a plan to the registry. Intended for startup wiring only;
// the registry must not be mutated once shared.
func (r *Registry) Register(p Plan) error {
	if err := validate(p); err != nil {
		return err
	}
	if _, exists := r.plans[p.ID]; exists {
		return errors.Join(ErrDuplicatePlan, fmt.Errorf("plan %q", p.ID))
	}
	r.plans[p.ID] = p
	r.order = append(r.order, p.ID)
	return nil
}

// Get returns the plan registered under id.
func (r *Registry) Get(id string) result.Result[Plan] {
	p, exists := r.plans[id]
	if !exists {
		return result.Err[Plan](errors.Join(ErrUnknownPlan, fmt.Errorf("plan %q", id)))
	}
	return result.Ok(p)
}

// Has reports whether a plan is registered under id.
func (r *Registry) Has(id string) bool {
	_, exists := r.plans[id]
	return exists
}

// All returns every registered plan in insertion order.
func (r *Registry) All() []Plan {
	out := make([]Plan, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.plans[id])
	}
	return out
}

// PremiumPlans returns the paid plans in insertion order. Used by
// upgrade-path callers to present alternatives when quota runs out.
func (r *Registry) PremiumPlans() []Plan {
	return slices.DeleteFunc(r.All(), func(p Plan) bool {
		return p.IsFree()
	})
}

func validate(p Plan) error {
	if p.ID == "" {
		return errors.Join(ErrInvalidPlanConfiguration, errors.New("empty plan ID"))
	}
	if p.MonthlyGenerationLimit <= 0 {
		return errors.Join(ErrInvalidPlanConfiguration,
			fmt.Errorf("plan %q has non-positive generation limit: %d", p.ID, p.MonthlyGenerationLimit))
	}
	if p.TrialDays < 0 {
		return errors.Join(ErrInvalidPlanConfiguration,
			fmt.Errorf("plan %q has negative trial days: %d", p.ID, p.TrialDays))
	}
	return nil
}
