package purchase

import (
	"context"
	"time"
)

// Provider is the platform in-app-purchase collaborator. Implementations own
// the store interaction end to end (hosted checkout, receipt validation,
// webhook signing); this package only turns their results into plan changes.
type Provider interface {
	// CreateCheckoutLink creates a hosted checkout session for a paid plan.
	CreateCheckoutLink(ctx context.Context, req CheckoutRequest) (*CheckoutLink, error)

	// ParseWebhook validates and parses incoming webhook data.
	// Must verify the signature to prevent spoofed entitlement changes.
	ParseWebhook(ctx context.Context, payload []byte, signature string) (*WebhookEvent, error)
}

// CheckoutRequest contains data needed to create a checkout session.
type CheckoutRequest struct {
	PlanID     string // doubles as the provider's price ID for paid tiers
	CustomerID string // internal user ID
	Email      string // optional billing email
	SuccessURL string
	CancelURL  string
}

// CheckoutLink represents a hosted checkout session.
type CheckoutLink struct {
	URL       string
	SessionID string // empty for free-plan activations that skip the provider
	ExpiresAt time.Time
}

// Receipt is a normalized proof of a completed purchase.
type Receipt struct {
	TransactionID string
	PlanID        string
	CustomerID    string
	Status        ReceiptStatus
	PurchasedAt   time.Time
}

// ReceiptStatus represents the settlement state of a purchase.
type ReceiptStatus string

const (
	ReceiptCompleted ReceiptStatus = "completed"
	ReceiptPending   ReceiptStatus = "pending"
	ReceiptRefunded  ReceiptStatus = "refunded"
)

// WebhookEvent is a normalized event from the purchase provider.
type WebhookEvent struct {
	Type          EventType
	ProviderEvent string // original provider event name
	TransactionID string
	CustomerID    string // internal user ID carried through custom data
	PlanID        string
	Status        string
	Raw           map[string]any
}

// EventType represents the normalized purchase event type.
type EventType string

const (
	EventPurchaseCompleted EventType = "purchase_completed"
	EventPurchaseFailed    EventType = "purchase_failed"
	EventPurchaseRefunded  EventType = "purchase_refunded"
)

// Receipt converts a completed-purchase event into a Receipt.
func (e *WebhookEvent) Receipt(at time.Time) Receipt {
	return Receipt{
		TransactionID: e.TransactionID,
		PlanID:        e.PlanID,
		CustomerID:    e.CustomerID,
		Status:        ReceiptCompleted,
		PurchasedAt:   at,
	}
}
