// Package result provides a tagged Ok/Err value used as the return discipline
// of the diarykit core instead of mixed (value, error) conventions.
//
// Every fallible operation in the plan, usage, generation, and purchase
// packages returns a Result. Errors are drawn from the closed taxonomy those
// packages define; unexpected programming errors still panic.
//
// Composition:
//
//	r := registry.Get("premium_monthly")
//	name := result.Map(r, func(p plan.Plan) string { return p.Name })
//
//	out := result.Chain(r, func(p plan.Plan) result.Result[int] {
//	    return tracker.TryCommit(p)
//	})
//
// Fold is the only sanctioned exit back to plain values, forcing both
// branches to be handled at the boundary:
//
//	msg := result.Fold(out,
//	    func(remaining int) string { return fmt.Sprintf("%d left", remaining) },
//	    func(err error) string { return err.Error() },
//	)
//
// Unwrap exists for interop with conventional Go call sites.
package result
