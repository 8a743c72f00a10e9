package purchase

import "errors"

var (
	ErrMissingAPIKey             = errors.New("purchase provider API key is required")
	ErrMissingWebhookSecret      = errors.New("purchase provider webhook secret is required")
	ErrInvalidEnvironment        = errors.New("invalid purchase provider environment")
	ErrWebhookVerificationFailed = errors.New("webhook signature verification failed")
	ErrNoCheckoutURL             = errors.New("no checkout URL returned from provider")
	ErrPurchaseNotCompleted      = errors.New("purchase is not completed")
	ErrNotAPurchaseEvent         = errors.New("webhook event is not a completed purchase")
	ErrProviderFailure           = errors.New("purchase provider failure")
)
