package model

import "time"

// Room type codes used across pricing and energy statistics. A room's
// type decides its base rate and its energy coefficient. The codes are
// stored verbatim on bookings so historic rows keep their snapshot even
// if the room is later retyped or deleted.
const (
    RoomTypeSolo    = "solo"    // small one-person practice room
    RoomTypeBand    = "band"    // full band rehearsal room
    RoomTypePreprod = "preprod" // pre-production room with recording gear
)

// Room represents a bookable rehearsal room as stored in the `rooms`
// table. Rooms are configuration data: deleting one does not touch
// bookings that reference it, because bookings snapshot the room's
// type and name at creation time.
//
// Fields:
//  ID        – primary key identifier (short slug, e.g. "r1").
//  Name      – display name shown in schedules.
//  Type      – one of solo, band, preprod.
//  CreatedAt – timestamp of creation.
type Room struct {
    ID        string    // rooms.id
    Name      string    // rooms.name
    Type      string    // rooms.type
    CreatedAt time.Time // rooms.created_at
}
