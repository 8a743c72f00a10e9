package usage

import (
	"time"

	"github.com/google/uuid"
)

// State is the persistable subscription state of one user: which plan they
// are on and how much of the current month's generation quota they have
// consumed. Mutation goes through a Tracker; the State itself is a plain
// value that stores marshal verbatim.
type State struct {
	UserID      uuid.UUID  `json:"user_id"`
	PlanID      string     `json:"plan_id"`
	Active      bool       `json:"active"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	TrialEndsAt *time.Time `json:"trial_ends_at,omitempty"`
	UsageCount  int        `json:"usage_count"`
	PeriodStart time.Time  `json:"period_start"` // first day of the month UsageCount applies to
}

// NewState returns a fresh state on the given plan with an empty usage
// counter anchored to now's month.
func NewState(userID uuid.UUID, planID string, now time.Time) State {
	return State{
		UserID:      userID,
		PlanID:      planID,
		Active:      true,
		UsageCount:  0,
		PeriodStart: firstOfMonth(now),
	}
}

// IsExpiredAt reports whether the subscription has lapsed at the given time.
// States without an expiry never lapse.
func (s State) IsExpiredAt(now time.Time) bool {
	return s.ExpiresAt != nil && now.After(*s.ExpiresAt)
}

// IsTrialActiveAt reports whether the trial window covers the given time.
func (s State) IsTrialActiveAt(now time.Time) bool {
	return s.TrialEndsAt != nil && now.Before(*s.TrialEndsAt)
}

// inCurrentPeriod reports whether now falls in the month PeriodStart anchors.
func (s State) inCurrentPeriod(now time.Time) bool {
	now = now.UTC()
	return s.PeriodStart.Year() == now.Year() && s.PeriodStart.Month() == now.Month()
}

func firstOfMonth(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
