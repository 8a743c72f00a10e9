package plan_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snapjournal/diarykit/pkg/plan"
)

func testPlans() []plan.Plan {
	return []plan.Plan{
		{
			ID:                     "basic",
			Name:                   "Basic",
			Price:                  plan.Money{Amount: 0, Currency: "USD"},
			Interval:               plan.BillingIntervalNone,
			MonthlyGenerationLimit: 10,
		},
		{
			ID:                     "premium_monthly",
			Name:                   "Premium",
			Price:                  plan.Money{Amount: 499, Currency: "USD"},
			Interval:               plan.BillingIntervalMonthly,
			MonthlyGenerationLimit: 100,
			Features:               []plan.Feature{plan.FeatureWritingPrompts},
		},
		{
			ID:                     "premium_yearly",
			Name:                   "Premium (yearly)",
			Price:                  plan.Money{Amount: 3999, Currency: "USD"},
			Interval:               plan.BillingIntervalAnnual,
			MonthlyGenerationLimit: 100,
			Features:               []plan.Feature{plan.FeatureWritingPrompts},
		},
	}
}

func TestNewRegistry(t *testing.T) {
	t.Parallel()

	t.Run("successful construction", func(t *testing.T) {
		t.Parallel()

		r, err := plan.NewRegistry(testPlans()...)

		require.NoError(t, err)
		assert.Len(t, r.All(), 3)
	})

	t.Run("duplicate plan ID", func(t *testing.T) {
		t.Parallel()

		plans := testPlans()
		plans = append(plans, plans[0])

		_, err := plan.NewRegistry(plans...)

		assert.ErrorIs(t, err, plan.ErrDuplicatePlan)
	})

	t.Run("non-positive generation limit", func(t *testing.T) {
		t.Parallel()

		_, err := plan.NewRegistry(plan.Plan{ID: "broken", MonthlyGenerationLimit: 0})

		assert.ErrorIs(t, err, plan.ErrInvalidPlanConfiguration)
	})

	t.Run("empty plan ID", func(t *testing.T) {
		t.Parallel()

		_, err := plan.NewRegistry(plan.Plan{MonthlyGenerationLimit: 5})

		assert.ErrorIs(t, err, plan.ErrInvalidPlanConfiguration)
	})
}

func TestRegistryGet(t *testing.T) {
	t.Parallel()

	r, err := plan.NewRegistry(testPlans()...)
	require.NoError(t, err)

	t.Run("known plan", func(t *testing.T) {
		t.Parallel()

		res := r.Get("premium_monthly")

		require.True(t, res.IsOk())
		assert.Equal(t, "Premium", res.Value().Name)
	})

	t.Run("unknown plan", func(t *testing.T) {
		t.Parallel()

		res := r.Get("enterprise")

		require.True(t, res.IsErr())
		assert.ErrorIs(t, res.Err(), plan.ErrUnknownPlan)
	})
}

func TestRegistryAll(t *testing.T) {
	t.Parallel()

	r, err := plan.NewRegistry(testPlans()...)
	require.NoError(t, err)

	ids := make([]string, 0, 3)
	for _, p := range r.All() {
		ids = append(ids, p.ID)
	}

	assert.Equal(t, []string{"basic", "premium_monthly", "premium_yearly"}, ids, "insertion order is preserved")
}

func TestRegistryPremiumPlans(t *testing.T) {
	t.Parallel()

	r, err := plan.NewRegistry(testPlans()...)
	require.NoError(t, err)

	premium := r.PremiumPlans()

	require.Len(t, premium, 2)
	assert.Equal(t, "premium_monthly", premium[0].ID)
	assert.Equal(t, "premium_yearly", premium[1].ID)
}

func TestNewRegistryFromSource(t *testing.T) {
	t.Parallel()

	t.Run("loads plans from source", func(t *testing.T) {
		t.Parallel()

		src := plan.NewInMemSource(testPlans()...)

		r, err := plan.NewRegistryFromSource(context.Background(), src)

		require.NoError(t, err)
		assert.True(t, r.Has("basic"))
	})

	t.Run("source failure is wrapped", func(t *testing.T) {
		t.Parallel()

		src := failingSource{err: errors.New("catalog unavailable")}

		_, err := plan.NewRegistryFromSource(context.Background(), src)

		assert.ErrorIs(t, err, plan.ErrFailedToLoadPlans)
	})
}

func TestDefaultCatalog(t *testing.T) {
	t.Parallel()

	r := plan.NewDefaultRegistry()

	require.True(t, r.Has(plan.PlanBasic))
	require.True(t, r.Has(plan.PlanPremiumMonthly))
	require.True(t, r.Has(plan.PlanPremiumYearly))

	for _, p := range r.All() {
		assert.Positive(t, p.MonthlyGenerationLimit, "plan %s must have a finite positive cap", p.ID)
	}

	basic := r.Get(plan.PlanBasic).Value()
	premium := r.Get(plan.PlanPremiumMonthly).Value()
	assert.True(t, premium.HasMoreFeaturesThan(basic))
}

type failingSource struct {
	err error
}

func (s failingSource) Load(context.Context) ([]plan.Plan, error) {
	return nil, s.err
}
