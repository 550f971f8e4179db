package sponsor

import (
	"context"

	"github.com/google/uuid"
)

// EventLogger records entitlement changes to an external sink (e.g., ClickHouse).
// Implementations should be non-blocking and best-effort; the Service logs and
// discards their errors.
type EventLogger interface {
	// LogGrant records a grant. actorSession is the invoking actor's session id
	// when a private tier was granted, empty otherwise.
	LogGrant(ctx context.Context, rec SponsorRecord, actorSession string) error
	// LogRevoke records a revoke. Revokes of absent records are recorded too;
	// the store does not report whether the key existed.
	LogRevoke(ctx context.Context, accountID uuid.UUID) error
}
