package generation

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyRequest     = errors.New("generation request has no input items")
	ErrTooManyItems     = errors.New("generation request exceeds the item limit")
	ErrNetwork          = errors.New("generation provider unreachable")
	ErrProviderRejected = errors.New("generation rejected by provider")
	ErrPartial          = errors.New("multi-item generation failed partway")
)

// NetworkError reports that the upstream provider could not be reached.
// Distinct from ProviderRejectedError so callers can offer "try again later"
// instead of "change your input".
type NetworkError struct {
	Op  string // operation that failed, e.g. "generate_single"
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("generation provider unreachable during %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// Is lets errors.Is match against the ErrNetwork sentinel.
func (e *NetworkError) Is(target error) bool { return target == ErrNetwork }

// ProviderRejectedError reports a well-formed upstream refusal, e.g. a
// content-policy rejection. Generally not retryable without changing input.
type ProviderRejectedError struct {
	Reason string
}

func (e *ProviderRejectedError) Error() string {
	return fmt.Sprintf("generation rejected by provider: %s", e.Reason)
}

// Is lets errors.Is match against the ErrProviderRejected sentinel.
func (e *ProviderRejectedError) Is(target error) bool { return target == ErrProviderRejected }

// PartialGenerationError reports a multi-item run that failed after some
// items succeeded. Partial successes are never folded into a truncated diary
// entry; the caller decides between retry-all and giving up.
type PartialGenerationError struct {
	CompletedCount int
	Total          int
	Err            error // the failure that stopped the run
}

func (e *PartialGenerationError) Error() string {
	return fmt.Sprintf("generation failed after %d of %d items: %v", e.CompletedCount, e.Total, e.Err)
}

func (e *PartialGenerationError) Unwrap() error { return e.Err }

// Is lets errors.Is match against the ErrPartial sentinel.
func (e *PartialGenerationError) Is(target error) bool { return target == ErrPartial }
