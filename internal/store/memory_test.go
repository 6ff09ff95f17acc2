package store

import (
    "context"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/romhuset/rehearsal-booking/internal/model"
)

func TestMemoryCreateRejectsSlotCollision(t *testing.T) {
    ctx := context.Background()
    m := NewMemory()

    b := &model.Booking{Date: "2025-09-15", RoomID: "r1", Hour: 10, Price: 199}
    require.NoError(t, m.Create(ctx, b))
    assert.NotZero(t, b.ID)

    dup := &model.Booking{Date: "2025-09-15", RoomID: "r1", Hour: 10, Price: 999}
    err := m.Create(ctx, dup)
    assert.ErrorIs(t, err, ErrSlotTaken)

    // the stored booking is unchanged by the rejected insert
    got, err := m.Get(ctx, "2025-09-15", "r1", 10)
    require.NoError(t, err)
    assert.Equal(t, 199, got.Price)
}

func TestMemoryRemove(t *testing.T) {
    ctx := context.Background()
    m := NewMemory()
    require.NoError(t, m.Create(ctx, &model.Booking{Date: "2025-09-15", RoomID: "r1", Hour: 10}))

    require.NoError(t, m.Remove(ctx, "2025-09-15", "r1", 10))
    _, err := m.Get(ctx, "2025-09-15", "r1", 10)
    assert.ErrorIs(t, err, ErrNotFound)

    assert.ErrorIs(t, m.Remove(ctx, "2025-09-15", "r1", 10), ErrNotFound)
}

func TestMemoryListRangeSorted(t *testing.T) {
    ctx := context.Background()
    m := NewMemory()
    for _, b := range []model.Booking{
        {Date: "2025-09-16", RoomID: "r1", Hour: 9},
        {Date: "2025-09-15", RoomID: "r2", Hour: 12},
        {Date: "2025-09-15", RoomID: "r1", Hour: 18},
        {Date: "2025-09-15", RoomID: "r1", Hour: 10},
        {Date: "2025-09-30", RoomID: "r1", Hour: 10},
    } {
        b := b
        require.NoError(t, m.Create(ctx, &b))
    }

    got, err := m.ListRange(ctx, "2025-09-15", "2025-09-16")
    require.NoError(t, err)
    require.Len(t, got, 4)
    assert.Equal(t, 10, got[0].Hour)
    assert.Equal(t, 18, got[1].Hour)
    assert.Equal(t, "r2", got[2].RoomID)
    assert.Equal(t, "2025-09-16", got[3].Date)
}

func TestMemoryVoucherAdjustClampsAndIgnoresUnknown(t *testing.T) {
    ctx := context.Background()
    m := NewMemory()
    vs := m.Vouchers()

    v := &model.Voucher{Partner: "Kulturskolen", SlotsLeft: 1}
    require.NoError(t, vs.Create(ctx, v))

    require.NoError(t, vs.Adjust(ctx, v.ID, -3))
    got, err := vs.Get(ctx, v.ID)
    require.NoError(t, err)
    assert.Equal(t, 0, got.SlotsLeft)

    // unknown id: no error, no change
    require.NoError(t, vs.Adjust(ctx, 9999, -1))
    all, err := vs.List(ctx)
    require.NoError(t, err)
    require.Len(t, all, 1)
    assert.Equal(t, 0, all[0].SlotsLeft)
}

func TestMemoryGrantLifecycle(t *testing.T) {
    ctx := context.Background()
    m := NewMemory()
    now := time.Now().UTC()

    pin := "482915"
    g := &model.AccessGrant{
        BookingID: 7,
        Provider:  "doorsys",
        DoorIDs:   []string{"main", "rehearsal-1"},
        Secret:    &pin,
        StartAt:   now.Add(-15 * time.Minute),
        EndAt:     now.Add(70 * time.Minute),
        Status:    model.GrantIssued,
    }
    require.NoError(t, m.Insert(ctx, g))

    got, err := m.ActiveByBooking(ctx, 7, now)
    require.NoError(t, err)
    assert.Equal(t, g.ID, got.ID)

    require.NoError(t, m.RevokeByBooking(ctx, 7))
    _, err = m.ActiveByBooking(ctx, 7, now)
    assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryRooms(t *testing.T) {
    ctx := context.Background()
    m := NewMemory()
    rs := m.Rooms()

    require.NoError(t, rs.Create(ctx, &model.Room{ID: "r1", Name: "Solo 1", Type: model.RoomTypeSolo}))
    assert.Error(t, rs.Create(ctx, &model.Room{ID: "r1", Name: "Dup", Type: model.RoomTypeBand}))

    got, err := rs.Get(ctx, "r1")
    require.NoError(t, err)
    assert.Equal(t, model.RoomTypeSolo, got.Type)

    require.NoError(t, rs.Delete(ctx, "r1"))
    _, err = rs.Get(ctx, "r1")
    assert.ErrorIs(t, err, ErrNotFound)
}
