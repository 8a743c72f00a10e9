// Package purchase glues the platform in-app-purchase flow to plan changes.
//
// The Provider interface abstracts the store (the built-in implementation
// targets Paddle's hosted checkout); the Service turns its receipts and
// webhooks into usage.Tracker plan changes. Receipt validation, payment
// retries, and refund money movement all stay provider-side; a mid-month
// upgrade keeps the existing usage count and simply exposes the new plan's
// headroom.
package purchase
