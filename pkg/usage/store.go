package usage

import (
	"context"

	"github.com/google/uuid"
)

// Store defines the persistence boundary for subscription state. The core
// never calls it: the session layer loads a State at startup and saves a
// Snapshot after every commit or plan change, deciding when to write without
// owning how.
type Store interface {
	// Load retrieves the state for a user.
	// Returns ErrStateNotFound if the user has no stored state yet.
	Load(ctx context.Context, userID uuid.UUID) (State, error)

	// Save creates or updates the state, keyed by State.UserID.
	Save(ctx context.Context, state State) error
}
