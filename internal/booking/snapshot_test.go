package booking

import (
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/romhuset/rehearsal-booking/internal/model"
)

func slotBooking(date, roomID string, hour int) model.Booking {
    return model.Booking{Date: date, RoomID: roomID, Hour: hour, RoomType: "solo", Price: 199}
}

func TestSnapshotInsertAndGet(t *testing.T) {
    s := Snapshot{}
    s2, ok := s.Insert(slotBooking("2025-09-15", "r1", 10))
    require.True(t, ok)
    assert.Empty(t, s, "original snapshot must stay untouched")

    got := s2.Get(Slot{Date: "2025-09-15", RoomID: "r1", Hour: 10})
    require.NotNil(t, got)
    assert.Equal(t, "r1", got.RoomID)
}

func TestSnapshotInsertCollision(t *testing.T) {
    s, _ := Snapshot{}.Insert(slotBooking("2025-09-15", "r1", 10))
    dup := slotBooking("2025-09-15", "r1", 10)
    dup.Price = 999
    s2, ok := s.Insert(dup)
    assert.False(t, ok)
    assert.Equal(t, s, s2, "collision leaves the snapshot observably unchanged")
    assert.Equal(t, 199, s2.Get(Slot{Date: "2025-09-15", RoomID: "r1", Hour: 10}).Price)
}

func TestSnapshotNeighbouringSlotsCoexist(t *testing.T) {
    s, _ := Snapshot{}.Insert(slotBooking("2025-09-15", "r1", 10))
    var ok bool
    s, ok = s.Insert(slotBooking("2025-09-15", "r1", 11))
    assert.True(t, ok)
    s, ok = s.Insert(slotBooking("2025-09-15", "r2", 10))
    assert.True(t, ok)
    s, ok = s.Insert(slotBooking("2025-09-16", "r1", 10))
    assert.True(t, ok)
    assert.Len(t, s, 4)
}

func TestSnapshotRemove(t *testing.T) {
    s, _ := Snapshot{}.Insert(slotBooking("2025-09-15", "r1", 10))
    key := Slot{Date: "2025-09-15", RoomID: "r1", Hour: 10}

    s2 := s.Remove(key)
    assert.Nil(t, s2.Get(key))
    assert.NotNil(t, s.Get(key), "original snapshot keeps the booking")

    // removing a free slot is a no-op
    s3 := s2.Remove(key)
    assert.Equal(t, s2, s3)
}
