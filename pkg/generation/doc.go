// Package generation orchestrates plan-gated AI diary-entry generation.
//
// One Generate call runs a single logical flow: quota pre-check, connectivity
// probe, then either the network provider (once per photo, with strictly
// ordered progress reporting) or the deterministic offline fallback, and
// finally exactly one usage commit. Concurrent calls are tolerated; the
// usage.Tracker's locked commit is the serialization point.
//
//	orch := generation.NewOrchestrator(tracker, provider, generation.NewOfflineComposer(), connectivity)
//
//	res := orch.Generate(ctx, generation.Request{
//	    Items:  []generation.InputItem{{ID: "photo-1", Data: jpeg}},
//	    Locale: "en-US",
//	    OnProgress: func(current, total int) { render(current, total) },
//	})
//
// Failures come from a closed taxonomy: quota exhaustion, NetworkError,
// ProviderRejectedError, or PartialGenerationError for multi-item runs that
// stopped partway. None are retried internally. An offline-produced Outcome
// is a success with GeneratedOffline set; the UI must keep it visually
// distinguishable from a network-origin entry.
package generation
