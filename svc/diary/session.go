// Package diary composes the generation core into one user session: it loads
// subscription state at startup, runs plan-gated entry generation, folds the
// core's Results into logging at this boundary, and persists state after
// every commit or plan change.
package diary

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/snapjournal/diarykit/pkg/generation"
	"github.com/snapjournal/diarykit/pkg/plan"
	"github.com/snapjournal/diarykit/pkg/purchase"
	"github.com/snapjournal/diarykit/pkg/result"
	"github.com/snapjournal/diarykit/pkg/usage"
)

// ErrPurchasesDisabled is returned from the upgrade operations when the
// session was built without a purchase provider.
var ErrPurchasesDisabled = errors.New("purchases are not configured for this session")

// Deps are the collaborators a Session is built from. Registry, Store,
// Provider, Fallback, and Connectivity are required; Purchases and Logger
// are optional (upgrades disabled / logging discarded when absent).
type Deps struct {
	Registry     *plan.Registry
	Store        usage.Store
	Provider     generation.Provider
	Fallback     generation.FallbackProvider
	Connectivity generation.ConnectivityChecker
	Purchases    purchase.Provider
	Logger       *slog.Logger
	Config       generation.Config
}

// Session binds one signed-in user to their tracker and orchestrator.
type Session struct {
	userID    uuid.UUID
	tracker   *usage.Tracker
	orch      *generation.Orchestrator
	store     usage.Store
	purchases *purchase.Service
	log       *slog.Logger
}

// NewSession loads the user's subscription state and wires the session.
// First-time users start on the basic plan with a fresh counter.
func NewSession(ctx context.Context, deps Deps, userID uuid.UUID) (*Session, error) {
	if deps.Registry == nil || deps.Store == nil {
		panic("diary: registry and store are required")
	}

	state, err := deps.Store.Load(ctx, userID)
	switch {
	case errors.Is(err, usage.ErrStateNotFound):
		state = usage.NewState(userID, plan.PlanBasic, time.Now().UTC())
		if err := deps.Store.Save(ctx, state); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	}

	log := deps.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	tracker := usage.NewTracker(deps.Registry, state)

	var opts []generation.Option
	if deps.Config != (generation.Config{}) {
		opts = append(opts, generation.WithConfig(deps.Config))
	}
	orch := generation.NewOrchestrator(tracker, deps.Provider, deps.Fallback, deps.Connectivity, opts...)

	s := &Session{
		userID:  userID,
		tracker: tracker,
		orch:    orch,
		store:   deps.Store,
		log:     log.With(slog.String("user_id", userID.String())),
	}
	if deps.Purchases != nil {
		s.purchases = purchase.NewService(deps.Registry, deps.Purchases)
	}
	return s, nil
}

// GenerateEntry runs one generation request and persists the consumed quota.
// This is the module's Result boundary: both branches are handled here, and
// the caller gets conventional Go returns.
func (s *Session) GenerateEntry(ctx context.Context, req generation.Request) (generation.Outcome, error) {
	type folded struct {
		outcome generation.Outcome
		err     error
	}

	f := result.Fold(s.orch.Generate(ctx, req),
		func(out generation.Outcome) folded {
			s.log.InfoContext(ctx, "diary entry generated",
				slog.Int("items", len(req.Items)),
				slog.Bool("offline", out.GeneratedOffline),
				slog.Bool("commit_degraded", out.UsageCommitDegraded),
			)
			return folded{outcome: out}
		},
		func(err error) folded {
			switch {
			case errors.Is(err, usage.ErrQuotaExceeded):
				s.log.WarnContext(ctx, "generation blocked by quota", slog.Any("error", err))
			case errors.Is(err, generation.ErrNetwork):
				s.log.InfoContext(ctx, "generation failed upstream", slog.Any("error", err))
			default:
				s.log.ErrorContext(ctx, "generation failed", slog.Any("error", err))
			}
			return folded{err: err}
		},
	)
	if f.err != nil {
		return generation.Outcome{}, f.err
	}

	if err := s.store.Save(ctx, s.tracker.Snapshot()); err != nil {
		// The entry was generated; a failed save must not take it away.
		s.log.ErrorContext(ctx, "failed to persist usage state", slog.Any("error", err))
	}
	return f.outcome, nil
}

// Quota reports the remaining generations and total limit for the UI.
func (s *Session) Quota() (remaining, limit int, err error) {
	p, err := s.tracker.CurrentPlan().Unwrap()
	if err != nil {
		return 0, 0, err
	}
	return s.tracker.Remaining(p), p.MonthlyGenerationLimit, nil
}

// BeginUpgrade starts a checkout for the target plan.
func (s *Session) BeginUpgrade(ctx context.Context, planID string, opts purchase.CheckoutOptions) (purchase.CheckoutLink, error) {
	if s.purchases == nil {
		return purchase.CheckoutLink{}, ErrPurchasesDisabled
	}
	return s.purchases.BeginUpgrade(ctx, s.userID, planID, opts).Unwrap()
}

// ApplyReceipt applies a completed purchase and persists the plan change.
func (s *Session) ApplyReceipt(ctx context.Context, receipt purchase.Receipt) (plan.Plan, error) {
	if s.purchases == nil {
		return plan.Plan{}, ErrPurchasesDisabled
	}

	p, err := s.purchases.ApplyReceipt(s.tracker, receipt).Unwrap()
	if err != nil {
		s.log.WarnContext(ctx, "purchase receipt rejected", slog.Any("error", err))
		return plan.Plan{}, err
	}

	if err := s.store.Save(ctx, s.tracker.Snapshot()); err != nil {
		return plan.Plan{}, err
	}

	s.log.InfoContext(ctx, "plan changed", slog.String("plan_id", p.ID))
	return p, nil
}
