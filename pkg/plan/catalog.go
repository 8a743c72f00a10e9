package plan

// Well-known plan IDs. Paid IDs double as the payment provider's price IDs.
const (
	PlanBasic          = "basic"
	PlanPremiumMonthly = "premium_monthly"
	PlanPremiumYearly  = "premium_yearly"
)

// DefaultPlans returns the built-in photo-diary plan catalog. Every tier has
// a positive finite generation cap; there is no unlimited tier.
func DefaultPlans() []Plan {
	return []Plan{
		{
			ID:                     PlanBasic,
			Name:                   "Basic",
			Description:            "Keep a daily photo diary with a handful of AI-written entries each month.",
			Price:                  Money{Amount: 0, Currency: "USD"},
			Interval:               BillingIntervalNone,
			MonthlyGenerationLimit: 10,
			Features: []Feature{
				FeatureExtendedPhotoHistory + ":30",
			},
			Public: true,
		},
		{
			ID:                     PlanPremiumMonthly,
			Name:                   "Premium",
			Description:            "More AI-written entries, writing prompts, and advanced photo filters.",
			Price:                  Money{Amount: 499, Currency: "USD"},
			Interval:               BillingIntervalMonthly,
			MonthlyGenerationLimit: 100,
			Features: []Feature{
				FeatureWritingPrompts,
				FeatureAdvancedFilters,
				FeatureMultiPhotoEntries,
				FeatureExtendedPhotoHistory + ":365",
			},
			TrialDays: 7,
			Public:    true,
		},
		{
			ID:                     PlanPremiumYearly,
			Name:                   "Premium (yearly)",
			Description:            "Everything in Premium, billed once a year.",
			Price:                  Money{Amount: 3999, Currency: "USD"},
			Interval:               BillingIntervalAnnual,
			MonthlyGenerationLimit: 100,
			Features: []Feature{
				FeatureWritingPrompts,
				FeatureAdvancedFilters,
				FeatureMultiPhotoEntries,
				FeatureExportPDF,
				FeatureExtendedPhotoHistory + ":365",
			},
			TrialDays: 7,
			Public:    true,
		},
	}
}

// NewDefaultRegistry builds a Registry over DefaultPlans. The catalog is
// static, so construction cannot fail; a failure here is a programming error.
func NewDefaultRegistry() *Registry {
	r, err := NewRegistry(DefaultPlans()...)
	if err != nil {
		panic("plan: default catalog is invalid: " + err.Error())
	}
	return r
}
