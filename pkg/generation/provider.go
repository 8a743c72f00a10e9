package generation

import (
	"context"

	"github.com/snapjournal/diarykit/pkg/result"
)

// Provider is the upstream AI-generation collaborator. Implementations own
// their transport, timeout, and retry policy; the orchestrator imposes none.
// Failures must be drawn from this package's taxonomy: a NetworkError when
// the upstream is unreachable, a ProviderRejectedError for well-formed
// refusals.
type Provider interface {
	// GenerateSingle produces a diary entry from one photo.
	GenerateSingle(ctx context.Context, item InputItem, hints, locale string) result.Result[RawResult]
}

// ConnectivityChecker reports whether the network provider is reachable.
// An Err result is treated the same as offline: the orchestrator routes to
// the fallback rather than failing the request.
type ConnectivityChecker interface {
	IsOnline(ctx context.Context) result.Result[bool]
}

// ConnectivityFunc adapts a function to the ConnectivityChecker interface.
type ConnectivityFunc func(ctx context.Context) result.Result[bool]

func (f ConnectivityFunc) IsOnline(ctx context.Context) result.Result[bool] {
	return f(ctx)
}

// FallbackProvider produces deterministic placeholder content when the
// network provider is unavailable. It is total by construction: the plain
// Outcome return encodes that it can never fail for a well-formed request.
type FallbackProvider interface {
	Generate(ctx context.Context, req Request) Outcome
}
