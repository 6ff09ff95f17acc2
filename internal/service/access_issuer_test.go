package service

import (
    "context"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/romhuset/rehearsal-booking/internal/model"
    "github.com/romhuset/rehearsal-booking/internal/store"
)

func testIssuer(mem *store.Memory, now time.Time) *AccessIssuer {
    return &AccessIssuer{
        Grants:   mem,
        Provider: "doorsys",
        DoorIDs:  []string{"main", "basement"},
        Before:   15 * time.Minute,
        After:    10 * time.Minute,
        Now:      func() time.Time { return now },
    }
}

func TestGetOrIssueWindowAndPIN(t *testing.T) {
    mem := store.NewMemory()
    now := time.Date(2025, 9, 15, 9, 0, 0, 0, time.UTC)
    issuer := testIssuer(mem, now)
    b := &model.Booking{ID: 42, Date: "2025-09-15", RoomID: "r1", Hour: 10}

    g, err := issuer.GetOrIssue(context.Background(), b)
    require.NoError(t, err)
    assert.Equal(t, model.GrantIssued, g.Status)
    assert.Equal(t, "doorsys", g.Provider)
    assert.Equal(t, []string{"main", "basement"}, g.DoorIDs)
    require.NotNil(t, g.Secret)
    assert.Len(t, *g.Secret, 6)
    assert.Equal(t, time.Date(2025, 9, 15, 9, 45, 0, 0, time.UTC), g.StartAt)
    assert.Equal(t, time.Date(2025, 9, 15, 11, 10, 0, 0, time.UTC), g.EndAt)
}

func TestGetOrIssueIsIdempotent(t *testing.T) {
    mem := store.NewMemory()
    now := time.Date(2025, 9, 15, 9, 0, 0, 0, time.UTC)
    issuer := testIssuer(mem, now)
    b := &model.Booking{ID: 42, Date: "2025-09-15", RoomID: "r1", Hour: 10}
    ctx := context.Background()

    first, err := issuer.GetOrIssue(ctx, b)
    require.NoError(t, err)
    second, err := issuer.GetOrIssue(ctx, b)
    require.NoError(t, err)
    assert.Equal(t, first.ID, second.ID)
    assert.Equal(t, *first.Secret, *second.Secret)
}

func TestGetOrIssueReplacesExpiredGrant(t *testing.T) {
    mem := store.NewMemory()
    issuer := testIssuer(mem, time.Date(2025, 9, 15, 9, 0, 0, 0, time.UTC))
    b := &model.Booking{ID: 42, Date: "2025-09-15", RoomID: "r1", Hour: 10}
    ctx := context.Background()

    first, err := issuer.GetOrIssue(ctx, b)
    require.NoError(t, err)

    // past the grant's end the issuer mints a fresh credential
    issuer.Now = func() time.Time { return time.Date(2025, 9, 15, 12, 0, 0, 0, time.UTC) }
    second, err := issuer.GetOrIssue(ctx, b)
    require.NoError(t, err)
    assert.NotEqual(t, first.ID, second.ID)
}

func TestGetOrIssueMintsNewGrantAfterRevocation(t *testing.T) {
    mem := store.NewMemory()
    issuer := testIssuer(mem, time.Date(2025, 9, 15, 9, 0, 0, 0, time.UTC))
    b := &model.Booking{ID: 42, Date: "2025-09-15", RoomID: "r1", Hour: 10}
    ctx := context.Background()

    first, err := issuer.GetOrIssue(ctx, b)
    require.NoError(t, err)
    require.NoError(t, issuer.Revoke(ctx, b.ID))

    second, err := issuer.GetOrIssue(ctx, b)
    require.NoError(t, err)
    assert.NotEqual(t, first.ID, second.ID)
    assert.Equal(t, model.GrantIssued, second.Status)
}

func TestGetOrIssueRejectsMalformedDate(t *testing.T) {
    mem := store.NewMemory()
    issuer := testIssuer(mem, time.Now())
    _, err := issuer.GetOrIssue(context.Background(), &model.Booking{ID: 1, Date: "not-a-date", Hour: 10})
    assert.ErrorIs(t, err, ErrCredentialIssuance)
}
