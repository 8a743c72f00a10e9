package plan_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snapjournal/diarykit/pkg/plan"
)

func TestHasFeature(t *testing.T) {
	t.Parallel()

	p := plan.Plan{
		ID:                     "premium_monthly",
		MonthlyGenerationLimit: 100,
		Features: []plan.Feature{
			plan.FeatureWritingPrompts,
			plan.FeatureExtendedPhotoHistory + ":365",
		},
	}

	assert.True(t, p.HasFeature(plan.FeatureWritingPrompts))
	assert.True(t, p.HasFeature(plan.FeatureExtendedPhotoHistory), "parameterized feature matches on base name")
	assert.False(t, p.HasFeature(plan.FeatureAdvancedFilters))
}

func TestFeatureLimit(t *testing.T) {
	t.Parallel()

	p := plan.Plan{
		Features: []plan.Feature{
			plan.FeatureWritingPrompts,
			plan.FeatureExtendedPhotoHistory + ":30",
		},
	}

	t.Run("parameterized feature reports its argument", func(t *testing.T) {
		t.Parallel()

		days, ok := p.FeatureLimit(plan.FeatureExtendedPhotoHistory)
		require.True(t, ok)
		assert.Equal(t, 30, days)
	})

	t.Run("plain feature reports zero", func(t *testing.T) {
		t.Parallel()

		n, ok := p.FeatureLimit(plan.FeatureWritingPrompts)
		require.True(t, ok)
		assert.Zero(t, n)
	})

	t.Run("missing feature reports not granted", func(t *testing.T) {
		t.Parallel()

		_, ok := p.FeatureLimit(plan.FeatureExportPDF)
		assert.False(t, ok)
	})
}

func TestIsFree(t *testing.T) {
	t.Parallel()

	free := plan.Plan{Price: plan.Money{Amount: 0}, Interval: plan.BillingIntervalNone}
	paid := plan.Plan{Price: plan.Money{Amount: 499, Currency: "USD"}, Interval: plan.BillingIntervalMonthly}

	assert.True(t, free.IsFree())
	assert.False(t, paid.IsFree())
}

func TestTrialEndsAt(t *testing.T) {
	t.Parallel()

	started := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

	p := plan.Plan{TrialDays: 7}
	assert.Equal(t, started.AddDate(0, 0, 7), p.TrialEndsAt(started))

	noTrial := plan.Plan{TrialDays: 0}
	assert.Equal(t, started, noTrial.TrialEndsAt(started))
}

func TestHasMoreFeaturesThan(t *testing.T) {
	t.Parallel()

	basic := plan.Plan{
		MonthlyGenerationLimit: 10,
		Features:               []plan.Feature{plan.FeatureExtendedPhotoHistory + ":30"},
	}
	premium := plan.Plan{
		MonthlyGenerationLimit: 100,
		Features: []plan.Feature{
			plan.FeatureWritingPrompts,
			plan.FeatureExtendedPhotoHistory + ":365",
		},
	}

	assert.True(t, premium.HasMoreFeaturesThan(basic))
	assert.False(t, basic.HasMoreFeaturesThan(premium))
}

func TestCompare(t *testing.T) {
	t.Parallel()

	basic := plan.Plan{
		MonthlyGenerationLimit: 10,
		Features:               []plan.Feature{plan.FeatureExtendedPhotoHistory + ":30"},
	}
	premium := plan.Plan{
		MonthlyGenerationLimit: 100,
		Features: []plan.Feature{
			plan.FeatureWritingPrompts,
			plan.FeatureExtendedPhotoHistory + ":365",
		},
	}

	t.Run("upgrade gains features and headroom", func(t *testing.T) {
		t.Parallel()

		c := plan.Compare(basic, premium)

		assert.Equal(t, []plan.Feature{plan.FeatureWritingPrompts}, c.NewFeatures)
		assert.Empty(t, c.LostFeatures)
		require.NotNil(t, c.GenerationLimitChange)
		assert.Equal(t, 10, c.GenerationLimitChange.From)
		assert.Equal(t, 100, c.GenerationLimitChange.To)
		assert.False(t, c.IsDowngrade())
	})

	t.Run("downgrade loses features", func(t *testing.T) {
		t.Parallel()

		c := plan.Compare(premium, basic)

		assert.Equal(t, []plan.Feature{plan.FeatureWritingPrompts}, c.LostFeatures)
		assert.True(t, c.IsDowngrade())
	})

	t.Run("identical plans report no changes", func(t *testing.T) {
		t.Parallel()

		c := plan.Compare(basic, basic)

		assert.Empty(t, c.NewFeatures)
		assert.Empty(t, c.LostFeatures)
		assert.Nil(t, c.GenerationLimitChange)
		assert.False(t, c.IsDowngrade())
	})
}
