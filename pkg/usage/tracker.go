package usage

import (
	"sync"
	"time"

	"github.com/snapjournal/diarykit/pkg/plan"
	"github.com/snapjournal/diarykit/pkg/result"
)

// Phase is the logical quota phase of a billing cycle.
type Phase string

const (
	PhaseFresh     Phase = "fresh"     // just reset, nothing consumed
	PhaseConsuming Phase = "consuming" // some quota consumed, some remaining
	PhaseExhausted Phase = "exhausted" // count reached the plan limit
)

// Tracker owns one user's State and funnels every usage mutation through a
// single lock. TryCommit is the only operation that increments the counter,
// which is what keeps UsageCount from ever exceeding the plan limit even
// under concurrent generation requests. The Tracker never persists anything
// itself; callers read Snapshot after mutations and hand it to a Store.
type Tracker struct {
	mu       sync.Mutex
	state    State
	registry *plan.Registry
	now      func() time.Time
}

// TrackerOption configures a Tracker.
type TrackerOption func(*Tracker)

// WithClock replaces the time source, letting tests pin the month boundary.
func WithClock(now func() time.Time) TrackerOption {
	return func(t *Tracker) {
		if now != nil {
			t.now = now
		}
	}
}

// NewTracker wraps an existing State, typically one loaded from a Store at
// session start. Panics on a nil registry to fail fast during wiring.
func NewTracker(registry *plan.Registry, state State, opts ...TrackerOption) *Tracker {
	if registry == nil {
		panic("usage: plan registry is required")
	}

	t := &Tracker{
		state:    state,
		registry: registry,
		now:      func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// EnsureFreshPeriod resets the usage counter if the calendar month has
// rolled over since PeriodStart. Idempotent: within one month only the first
// call after the boundary does anything. Every quota read and write in this
// package goes through it, so no background timer is needed.
func (t *Tracker) EnsureFreshPeriod(now time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.ensureFreshLocked(now)
}

func (t *Tracker) ensureFreshLocked(now time.Time) {
	if t.state.inCurrentPeriod(now) {
		return
	}
	t.state.UsageCount = 0
	t.state.PeriodStart = firstOfMonth(now)
}

// Remaining returns how many generation units are left this month.
func (t *Tracker) Remaining(p plan.Plan) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.ensureFreshLocked(t.now())
	return max(0, p.MonthlyGenerationLimit-t.state.UsageCount)
}

// CanConsume reports whether at least one generation unit is available.
func (t *Tracker) CanConsume(p plan.Plan) bool {
	return t.Remaining(p) > 0
}

// TryCommit debits one generation unit and returns the remaining count.
// The check and the increment happen under one lock, so concurrent commits
// can never jointly push the counter past the limit. A commit is per
// generation request, not per input item; the orchestrator calls it exactly
// once however many photos a request carries.
func (t *Tracker) TryCommit(p plan.Plan) result.Result[int] {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.ensureFreshLocked(t.now())

	if t.state.UsageCount >= p.MonthlyGenerationLimit {
		return result.Err[int](newQuotaExceeded(p))
	}

	t.state.UsageCount++
	return result.Ok(p.MonthlyGenerationLimit - t.state.UsageCount)
}

// ChangePlan switches the active plan and returns the new Plan. The usage
// counter deliberately carries over: a mid-month upgrade keeps the count and
// the higher limit simply exposes more headroom immediately.
func (t *Tracker) ChangePlan(planID string) result.Result[plan.Plan] {
	res := t.registry.Get(planID)
	if res.IsErr() {
		return res
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.state.PlanID = planID
	return res
}

// CurrentPlan resolves the active plan through the registry.
func (t *Tracker) CurrentPlan() result.Result[plan.Plan] {
	t.mu.Lock()
	planID := t.state.PlanID
	t.mu.Unlock()

	return t.registry.Get(planID)
}

// Phase returns the quota phase for the given plan.
func (t *Tracker) Phase(p plan.Plan) Phase {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.ensureFreshLocked(t.now())

	switch {
	case t.state.UsageCount == 0:
		return PhaseFresh
	case t.state.UsageCount < p.MonthlyGenerationLimit:
		return PhaseConsuming
	default:
		return PhaseExhausted
	}
}

// Snapshot returns a copy of the current state for persistence.
func (t *Tracker) Snapshot() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}
