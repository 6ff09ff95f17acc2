package model

import "time"

// Access grant statuses. At most one grant per booking is in the issued
// state at a time; re-issuing for the same booking returns the existing
// unexpired grant.
const (
    GrantIssued  = "issued"
    GrantRevoked = "revoked"
    GrantError   = "error"
)

// AccessGrant is a time-boxed physical-access credential tied to a
// booking, as stored in the `access_grants` table. The validity window
// covers the booked slot extended by configurable before/after buffers.
// Grants are revoked when the owning booking is deleted.
//
// Fields:
//  ID        – primary key identifier.
//  BookingID – booking this credential belongs to.
//  Provider  – door-system provider tag.
//  DoorIDs   – doors the credential opens (stored comma-separated).
//  Secret    – PIN code, when the provider uses PIN entry.
//  DeepLink  – app deep link, when the provider uses links instead.
//  StartAt   – validity window start (slot start minus before-buffer).
//  EndAt     – validity window end (slot end plus after-buffer).
//  Status    – issued, revoked or error.
//  CreatedAt – timestamp of issuance.
type AccessGrant struct {
    ID        uint64    // access_grants.id
    BookingID uint64    // access_grants.booking_id
    Provider  string    // access_grants.provider
    DoorIDs   []string  // access_grants.door_ids
    Secret    *string   // access_grants.secret (nullable)
    DeepLink  *string   // access_grants.deep_link (nullable)
    StartAt   time.Time // access_grants.start_at
    EndAt     time.Time // access_grants.end_at
    Status    string    // access_grants.status
    CreatedAt time.Time // access_grants.created_at
}

// Active reports whether the grant is issued and its validity window has
// not yet closed at the given instant.
func (g AccessGrant) Active(now time.Time) bool {
    return g.Status == GrantIssued && g.EndAt.After(now)
}
