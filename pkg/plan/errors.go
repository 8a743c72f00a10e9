package plan

import "errors"

var (
	ErrUnknownPlan              = errors.New("plan not found in registry")
	ErrDuplicatePlan            = errors.New("plan already registered")
	ErrInvalidPlanConfiguration = errors.New("invalid plan configuration")
	ErrFailedToLoadPlans        = errors.New("failed to load plans")
)
