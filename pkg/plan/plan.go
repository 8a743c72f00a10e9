package plan

import (
	"strconv"
	"strings"
	"time"
)

// Plan describes one subscription tier: price, monthly AI-generation limit,
// and feature entitlements. Plans are immutable values constructed once at
// startup by the Registry; only the ID is ever persisted.
// For paid tiers the ID should match the payment provider's price ID so
// checkout and webhook processing can map directly.
type Plan struct {
	ID                     string // stable key, provider's price ID for paid tiers
	Name                   string
	Description            string
	Price                  Money
	Interval               BillingInterval
	MonthlyGenerationLimit int // AI-generation calls per calendar month, always > 0
	Features               []Feature
	TrialDays              int  // number of trial days (0 disables trial)
	Public                 bool // available for self-service signup
}

// IsFree reports whether the plan carries no charge.
func (p Plan) IsFree() bool {
	return p.Price.IsZero() || p.Interval == BillingIntervalNone
}

// HasFeature reports whether the plan grants the given feature. Parameterized
// features match on the part before the colon, so HasFeature(
// FeatureExtendedPhotoHistory) is true for "extended_photo_history_days:365".
// This is the single entitlement query; callers must not inspect Features
// directly so entitlement logic has one implementation.
func (p Plan) HasFeature(f Feature) bool {
	for _, granted := range p.Features {
		if granted == f {
			return true
		}
		if base, _, ok := strings.Cut(string(granted), ":"); ok && base == string(f) {
			return true
		}
	}
	return false
}

// FeatureLimit returns the numeric argument of a parameterized feature and
// whether the feature is granted at all. Non-parameterized grants report 0.
func (p Plan) FeatureLimit(f Feature) (int, bool) {
	for _, granted := range p.Features {
		if granted == f {
			return 0, true
		}
		base, arg, ok := strings.Cut(string(granted), ":")
		if !ok || base != string(f) {
			continue
		}
		n, err := strconv.Atoi(arg)
		if err != nil {
			return 0, true
		}
		return n, true
	}
	return 0, false
}

// TrialEndsAt calculates when the trial period ends.
// Returns startedAt unchanged if no trial is available.
func (p Plan) TrialEndsAt(startedAt time.Time) time.Time {
	if p.TrialDays <= 0 {
		return startedAt
	}
	return startedAt.AddDate(0, 0, p.TrialDays).UTC()
}

// HasMoreFeaturesThan reports whether the plan grants every feature of other
// plus at least one more, or the same features with a higher generation
// limit. Used by upgrade-path callers to order tiers as a data operation.
func (p Plan) HasMoreFeaturesThan(other Plan) bool {
	for _, f := range other.Features {
		if !p.hasExactOrBetter(f) {
			return false
		}
	}
	if len(p.Features) > len(other.Features) {
		return true
	}
	return p.MonthlyGenerationLimit > other.MonthlyGenerationLimit
}

func (p Plan) hasExactOrBetter(granted Feature) bool {
	base, arg, ok := strings.Cut(string(granted), ":")
	if !ok {
		return p.HasFeature(granted)
	}
	limit, has := p.FeatureLimit(Feature(base))
	if !has {
		return false
	}
	n, err := strconv.Atoi(arg)
	if err != nil {
		return true
	}
	return limit >= n
}

// Comparison contains the differences between two plans.
// Used to communicate upgrade and downgrade consequences to users.
type Comparison struct {
	NewFeatures           []Feature
	LostFeatures          []Feature
	GenerationLimitChange *LimitChange // nil when the limit is unchanged
}

// LimitChange represents a change in the monthly generation limit.
type LimitChange struct {
	From int
	To   int
}

// IsDowngrade reports whether the target plan loses features or headroom.
func (c *Comparison) IsDowngrade() bool {
	if len(c.LostFeatures) > 0 {
		return true
	}
	return c.GenerationLimitChange != nil && c.GenerationLimitChange.To < c.GenerationLimitChange.From
}

// Compare returns the differences between the current and target plans.
func Compare(current, target Plan) *Comparison {
	c := &Comparison{
		NewFeatures:  make([]Feature, 0),
		LostFeatures: make([]Feature, 0),
	}

	for _, f := range target.Features {
		if !current.HasFeature(featureBase(f)) {
			c.NewFeatures = append(c.NewFeatures, f)
		}
	}
	for _, f := range current.Features {
		if !target.HasFeature(featureBase(f)) {
			c.LostFeatures = append(c.LostFeatures, f)
		}
	}

	if current.MonthlyGenerationLimit != target.MonthlyGenerationLimit {
		c.GenerationLimitChange = &LimitChange{
			From: current.MonthlyGenerationLimit,
			To:   target.MonthlyGenerationLimit,
		}
	}

	return c
}

func featureBase(f Feature) Feature {
	base, _, _ := strings.Cut(string(f), ":")
	return Feature(base)
}
