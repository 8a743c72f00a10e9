package generation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"github.com/snapjournal/diarykit/pkg/result"
	"github.com/snapjournal/diarykit/pkg/usage"
)

// Orchestrator drives one diary-entry generation end to end: quota gate,
// connectivity probe, provider calls with ordered progress, offline fallback,
// and the single usage commit. It holds no retry policy and writes no logs;
// both belong to the caller.
type Orchestrator struct {
	tracker      *usage.Tracker
	provider     Provider
	fallback     FallbackProvider
	connectivity ConnectivityChecker
	cfg          Config
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithConfig overrides the default bounds.
func WithConfig(cfg Config) Option {
	return func(o *Orchestrator) {
		if cfg.MaxItems > 0 {
			o.cfg.MaxItems = cfg.MaxItems
		}
		if cfg.DefaultLocale != "" {
			o.cfg.DefaultLocale = cfg.DefaultLocale
		}
	}
}

// NewOrchestrator wires the collaborators together.
// Panics if any required dependency is nil to fail fast during initialization.
func NewOrchestrator(tracker *usage.Tracker, provider Provider, fallback FallbackProvider, connectivity ConnectivityChecker, opts ...Option) *Orchestrator {
	if tracker == nil {
		panic("generation: usage tracker is required")
	}
	if provider == nil {
		panic("generation: provider is required")
	}
	if fallback == nil {
		panic("generation: fallback provider is required")
	}
	if connectivity == nil {
		panic("generation: connectivity checker is required")
	}

	o := &Orchestrator{
		tracker:      tracker,
		provider:     provider,
		fallback:     fallback,
		connectivity: connectivity,
		cfg:          Config{MaxItems: 3, DefaultLocale: "en"},
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Generate produces one diary entry from the request.
//
// The quota pre-check runs before any network activity, so a request that is
// guaranteed to fail never touches the provider. It is a fast path only:
// the authoritative guard is TryCommit's locked check-then-increment at the
// end. When that final commit loses a race against a concurrent request, the
// outcome is still returned successfully with UsageCommitDegraded set -
// generated work the user has already seen is honored over strict
// accounting, while the tracker itself never counts past the limit.
func (o *Orchestrator) Generate(ctx context.Context, req Request) result.Result[Outcome] {
	if len(req.Items) == 0 {
		return result.Err[Outcome](ErrEmptyRequest)
	}
	if len(req.Items) > o.cfg.MaxItems {
		return result.Err[Outcome](errors.Join(ErrTooManyItems,
			fmt.Errorf("%d items, limit %d", len(req.Items), o.cfg.MaxItems)))
	}

	planRes := o.tracker.CurrentPlan()
	if planRes.IsErr() {
		return result.Err[Outcome](planRes.Err())
	}
	currentPlan := planRes.Value()

	if !o.tracker.CanConsume(currentPlan) {
		return result.Err[Outcome](&usage.QuotaExceededError{
			PlanID: currentPlan.ID,
			Limit:  currentPlan.MonthlyGenerationLimit,
		})
	}

	req.Locale = o.normalizeLocale(req.Locale)

	var outcome Outcome
	if o.isOnline(ctx) {
		res := o.generateOnline(ctx, req)
		if res.IsErr() {
			return res
		}
		outcome = res.Value()
	} else {
		// The fallback path is a designed-in degraded mode, never an error.
		outcome = o.fallback.Generate(ctx, req)
		outcome.GeneratedOffline = true
	}

	if commit := o.tracker.TryCommit(currentPlan); commit.IsErr() {
		outcome.UsageCommitDegraded = true
	}

	return result.Ok(outcome)
}

// isOnline treats a failed connectivity probe the same as being offline.
func (o *Orchestrator) isOnline(ctx context.Context) bool {
	return o.connectivity.IsOnline(ctx).ValueOr(false)
}

func (o *Orchestrator) generateOnline(ctx context.Context, req Request) result.Result[Outcome] {
	if len(req.Items) == 1 {
		return o.generateSingle(ctx, req)
	}
	return o.generateSequence(ctx, req)
}

func (o *Orchestrator) generateSingle(ctx context.Context, req Request) result.Result[Outcome] {
	res := o.provider.GenerateSingle(ctx, req.Items[0], req.ContextHints, req.Locale)
	if res.IsErr() {
		return result.Err[Outcome](classify(res.Err(), "generate_single"))
	}

	reportProgress(req.OnProgress, 1, 1)

	raw := res.Value()
	return result.Ok(Outcome{Title: raw.Title, Content: raw.Content})
}

// generateSequence runs the provider once per item in input order. Progress
// fires immediately after each successful step, strictly increasing, never
// skipped. Any failure aborts the run: partial successes surface only as the
// CompletedCount of the error, never as a truncated entry.
func (o *Orchestrator) generateSequence(ctx context.Context, req Request) result.Result[Outcome] {
	total := len(req.Items)
	parts := make([]RawResult, 0, total)

	for i, item := range req.Items {
		// Cancellation stops issuing further provider calls. Usage already
		// committed by finished requests stays committed; this request has
		// not committed yet, so nothing needs compensating.
		if err := ctx.Err(); err != nil {
			return result.Err[Outcome](&PartialGenerationError{
				CompletedCount: i,
				Total:          total,
				Err:            err,
			})
		}

		res := o.provider.GenerateSingle(ctx, item, req.ContextHints, req.Locale)
		if res.IsErr() {
			return result.Err[Outcome](&PartialGenerationError{
				CompletedCount: i,
				Total:          total,
				Err:            classify(res.Err(), "generate_sequence"),
			})
		}

		parts = append(parts, res.Value())
		reportProgress(req.OnProgress, i+1, total)
	}

	return result.Ok(combine(parts))
}

// combine folds per-item results into one entry: the first title wins, the
// contents join in input order.
func combine(parts []RawResult) Outcome {
	contents := make([]string, 0, len(parts))
	for _, p := range parts {
		if c := strings.TrimSpace(p.Content); c != "" {
			contents = append(contents, c)
		}
	}
	return Outcome{
		Title:   parts[0].Title,
		Content: strings.Join(contents, "\n\n"),
	}
}

// classify maps provider failures into the taxonomy. Errors that are already
// typed pass through; anything else is treated as transport failure.
func classify(err error, op string) error {
	if errors.Is(err, ErrProviderRejected) || errors.Is(err, ErrNetwork) {
		return err
	}
	return &NetworkError{Op: op, Err: err}
}

func (o *Orchestrator) normalizeLocale(locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		return o.cfg.DefaultLocale
	}
	return tag.String()
}

func reportProgress(fn ProgressFunc, current, total int) {
	if fn != nil {
		fn(current, total)
	}
}
