package usage

import (
	"errors"
	"fmt"

	"github.com/snapjournal/diarykit/pkg/plan"
)

var (
	ErrQuotaExceeded     = errors.New("monthly generation quota exceeded")
	ErrStateNotFound     = errors.New("subscription state not found")
	ErrFailedToSaveState = errors.New("failed to save subscription state")
	ErrFailedToLoadState = errors.New("failed to load subscription state")
	ErrRedisUnavailable  = errors.New("failed to connect to redis")
)

// QuotaExceededError reports that a plan's monthly generation limit is
// exhausted. It carries enough state for the caller to render an upgrade
// prompt without a registry lookup.
type QuotaExceededError struct {
	PlanID string
	Limit  int
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("monthly generation quota exceeded for plan %q (limit %d)", e.PlanID, e.Limit)
}

// Is lets errors.Is match against the ErrQuotaExceeded sentinel.
func (e *QuotaExceededError) Is(target error) bool {
	return target == ErrQuotaExceeded
}

func newQuotaExceeded(p plan.Plan) *QuotaExceededError {
	return &QuotaExceededError{PlanID: p.ID, Limit: p.MonthlyGenerationLimit}
}
