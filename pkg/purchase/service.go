package purchase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/snapjournal/diarykit/pkg/plan"
	"github.com/snapjournal/diarykit/pkg/result"
	"github.com/snapjournal/diarykit/pkg/usage"
)

// Service is the upgrade facade: it starts checkouts for paid plans and
// turns completed purchases into plan changes on a user's usage tracker.
// Persisting the changed state stays with the caller, like every other
// mutation in this module.
type Service struct {
	registry *plan.Registry
	provider Provider
	now      func() time.Time
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithClock replaces the time source used to stamp receipts.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService wires the purchase facade.
// Panics on nil dependencies to fail fast during initialization.
func NewService(registry *plan.Registry, provider Provider, opts ...ServiceOption) *Service {
	if registry == nil {
		panic("purchase: plan registry is required")
	}
	if provider == nil {
		panic("purchase: provider is required")
	}

	s := &Service{
		registry: registry,
		provider: provider,
		now:      func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CheckoutOptions carries optional checkout parameters.
type CheckoutOptions struct {
	Email      string
	SuccessURL string
	CancelURL  string
}

// BeginUpgrade starts a checkout for the target plan. Free plans bypass the
// provider entirely: the returned link points straight at the success URL
// and the caller may apply the plan change immediately via ApplyReceipt.
func (s *Service) BeginUpgrade(ctx context.Context, userID uuid.UUID, planID string, opts CheckoutOptions) result.Result[CheckoutLink] {
	planRes := s.registry.Get(planID)
	if planRes.IsErr() {
		return result.Err[CheckoutLink](planRes.Err())
	}

	if planRes.Value().IsFree() {
		return result.Ok(CheckoutLink{
			URL:       opts.SuccessURL,
			ExpiresAt: s.now().Add(5 * time.Minute),
		})
	}

	link, err := s.provider.CreateCheckoutLink(ctx, CheckoutRequest{
		PlanID:     planID,
		CustomerID: userID.String(),
		Email:      opts.Email,
		SuccessURL: opts.SuccessURL,
		CancelURL:  opts.CancelURL,
	})
	if err != nil {
		return result.Err[CheckoutLink](err)
	}
	return result.Ok(*link)
}

// ApplyReceipt applies a completed purchase to the tracker: the plan changes,
// the usage counter deliberately stays. Non-completed receipts are rejected.
func (s *Service) ApplyReceipt(tracker *usage.Tracker, receipt Receipt) result.Result[plan.Plan] {
	if receipt.Status != ReceiptCompleted {
		return result.Err[plan.Plan](errors.Join(ErrPurchaseNotCompleted,
			errors.New("receipt status "+string(receipt.Status))))
	}
	return tracker.ChangePlan(receipt.PlanID)
}

// HandleWebhook verifies and applies a provider webhook. Only completed
// purchases change the plan; everything else returns ErrNotAPurchaseEvent so
// callers can route refunds and failures to their own handling.
func (s *Service) HandleWebhook(ctx context.Context, tracker *usage.Tracker, payload []byte, signature string) result.Result[plan.Plan] {
	event, err := s.provider.ParseWebhook(ctx, payload, signature)
	if err != nil {
		return result.Err[plan.Plan](err)
	}

	if event.Type != EventPurchaseCompleted {
		return result.Err[plan.Plan](errors.Join(ErrNotAPurchaseEvent,
			errors.New("event "+string(event.Type))))
	}

	return s.ApplyReceipt(tracker, event.Receipt(s.now()))
}
