package sponsor

import (
	"time"

	"github.com/google/uuid"
)

// SponsorRecord is a player account's sponsor grant, with optional expiry.
// A nil ExpiresAt means the grant is permanent.
type SponsorRecord struct {
	AccountID uuid.UUID  `json:"account_id"`
	Tier      string     `json:"tier"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	GrantedAt time.Time  `json:"granted_at"`
}

// ActiveAt reports whether the grant is active at the given instant.
// Activity is always derived from ExpiresAt; it is never stored.
func (r SponsorRecord) ActiveAt(now time.Time) bool {
	return r.ExpiresAt == nil || r.ExpiresAt.After(now)
}

// SponsorStatus is a SponsorRecord projected at a point in time.
type SponsorStatus struct {
	SponsorRecord
	Active bool `json:"active"`
}

// GrantResult is returned by Service.Grant. ActorSession carries the invoking
// actor's session id when a private tier was granted (disclosure artifact);
// it is empty for public tiers.
type GrantResult struct {
	Record       SponsorRecord `json:"record"`
	ActorSession string        `json:"actor_session,omitempty"`
}

// QueryResult is returned by Service.Query. IsSponsor reports record
// existence, independent of Active; a missing record is not an error.
type QueryResult struct {
	IsSponsor bool           `json:"is_sponsor"`
	Record    *SponsorStatus `json:"record,omitempty"`
}
