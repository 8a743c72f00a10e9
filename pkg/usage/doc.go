// Package usage tracks AI-generation consumption against a plan's monthly
// quota and gates further generation requests on it.
//
// A Tracker owns one user's State and moves it through three phases per
// calendar month: Fresh (nothing consumed), Consuming, and Exhausted. The
// month rolls over lazily: the first quota read or write after the boundary
// resets the counter, so no background timer exists. All mutation funnels
// through TryCommit under a single lock, making the check-then-increment
// atomic with respect to concurrent commits.
//
//	state, err := store.Load(ctx, userID)
//	if errors.Is(err, usage.ErrStateNotFound) {
//	    state = usage.NewState(userID, plan.PlanBasic, time.Now())
//	}
//
//	tracker := usage.NewTracker(registry, state)
//	if res := tracker.TryCommit(p); res.IsErr() {
//	    // quota exhausted - offer an upgrade
//	}
//	_ = store.Save(ctx, tracker.Snapshot())
//
// A QuotaExceededError is terminal for the current request; the package
// never retries on the caller's behalf.
package usage
