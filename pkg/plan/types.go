package plan

// Feature represents a plan-specific capability that can be enabled per tier.
// Parameterized features carry a numeric argument after a colon, e.g.
// "extended_photo_history_days:365".
type Feature string

const (
	FeatureWritingPrompts       Feature = "writing_prompts"
	FeatureAdvancedFilters      Feature = "advanced_filters"
	FeatureMultiPhotoEntries    Feature = "multi_photo_entries"
	FeatureExportPDF            Feature = "export_pdf"
	FeatureExtendedPhotoHistory Feature = "extended_photo_history_days" // parameterized, days of retained photo history
)

// Money represents a monetary amount in the smallest currency unit.
// For example, $4.99 USD is Amount: 499, Currency: "USD".
type Money struct {
	Amount   int64  // amount in smallest currency unit (cents for USD)
	Currency string // ISO 4217 currency code
}

// IsZero reports whether the amount is zero, i.e. the plan is free.
func (m Money) IsZero() bool {
	return m.Amount == 0
}

// BillingInterval represents the billing frequency for a plan.
type BillingInterval string

const (
	BillingIntervalNone    BillingInterval = "none" // free plans with no billing
	BillingIntervalMonthly BillingInterval = "monthly"
	BillingIntervalAnnual  BillingInterval = "annual"
)
