// Package plan defines subscription tiers for the photo-diary app and the
// registry that maps stable plan IDs to them.
//
// A Plan is an immutable value: price, billing interval, the monthly
// AI-generation limit, and feature entitlements. Tiers are plain data rather
// than a type per tier, so comparisons like HasMoreFeaturesThan stay data
// operations. Entitlement checks go through Plan.HasFeature exclusively.
//
// The Registry is populated once at startup, either from the built-in
// catalog or a Source, and is read-only afterwards:
//
//	registry := plan.NewDefaultRegistry()
//
//	p := registry.Get("premium_monthly")
//	if p.IsOk() && p.Value().HasFeature(plan.FeatureWritingPrompts) {
//	    // show prompt suggestions
//	}
//
// Only the plan ID is persisted as part of subscription state; Plan values
// themselves never leave the process.
package plan
