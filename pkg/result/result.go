package result

import "fmt"

// Result represents the outcome of a fallible operation: either Ok carrying
// a value or Err carrying an error. The zero value is Ok with the zero value
// of T, so constructors should always be used.
type Result[T any] struct {
	value T
	err   error
}

// Ok returns a successful Result carrying v.
func Ok[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Err returns a failed Result carrying err.
// Panics on a nil error to enforce fail-fast construction - a nil error would
// silently produce a Result that reports success while callers treat it as failure.
func Err[T any](err error) Result[T] {
	if err == nil {
		panic("result: Err called with nil error")
	}
	return Result[T]{err: err}
}

// IsOk reports whether the Result carries a value.
func (r Result[T]) IsOk() bool {
	return r.err == nil
}

// IsErr reports whether the Result carries an error.
func (r Result[T]) IsErr() bool {
	return r.err != nil
}

// Value returns the carried value, or the zero value of T for failed Results.
// Prefer Fold or Unwrap at boundaries; Value alone discards the error branch.
func (r Result[T]) Value() T {
	return r.value
}

// Err returns the carried error, or nil for successful Results.
func (r Result[T]) Err() error {
	return r.err
}

// Unwrap converts the Result into Go's conventional (value, error) pair for
// interop with code outside the Result discipline.
func (r Result[T]) Unwrap() (T, error) {
	return r.value, r.err
}

// ValueOr returns the carried value, or fallback if the Result is an error.
func (r Result[T]) ValueOr(fallback T) T {
	if r.err != nil {
		return fallback
	}
	return r.value
}

// String implements fmt.Stringer for debugging output.
func (r Result[T]) String() string {
	if r.err != nil {
		return fmt.Sprintf("Err(%v)", r.err)
	}
	return fmt.Sprintf("Ok(%v)", r.value)
}

// Map transforms the value of a successful Result and passes a failed Result
// through unchanged. Implemented as a package-level function because Go
// methods cannot introduce new type parameters.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	if r.err != nil {
		return Result[U]{err: r.err}
	}
	return Ok(fn(r.value))
}

// Chain sequences two fallible operations, short-circuiting on the first
// failure.
func Chain[T, U any](r Result[T], fn func(T) Result[U]) Result[U] {
	if r.err != nil {
		return Result[U]{err: r.err}
	}
	return fn(r.value)
}

// Fold reduces the Result to a plain value by forcing both branches to be
// handled. It is the sanctioned way to leave the Result discipline at a
// boundary such as logging or presentation.
func Fold[T, U any](r Result[T], onOk func(T) U, onErr func(error) U) U {
	if r.err != nil {
		return onErr(r.err)
	}
	return onOk(r.value)
}
