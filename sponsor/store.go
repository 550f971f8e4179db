package sponsor

import (
	"context"

	"github.com/google/uuid"
)

// Store is the persistent entitlement store consumed by the Service. There is
// at most one record per account id; Upsert replaces tier and expiry
// wholesale. Implementations must distinguish "absent" from failure: Get
// returns (zero, false, nil) for a missing record, and Delete of an absent key
// is a no-op, not an error. Each method is a single keyed operation so the
// store's own single-key atomicity gives last-write-wins without any
// read-modify-write in the facade.
type Store interface {
	Upsert(ctx context.Context, rec SponsorRecord) error
	Delete(ctx context.Context, accountID uuid.UUID) error
	Get(ctx context.Context, accountID uuid.UUID) (SponsorRecord, bool, error)
	List(ctx context.Context) ([]SponsorRecord, error)
}

// Directory resolves a mutable display name to a stable account id. Not-found
// is reported via the bool, never as an error.
type Directory interface {
	Resolve(ctx context.Context, displayName string) (uuid.UUID, bool, error)
}
