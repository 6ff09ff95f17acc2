package service

import (
    "context"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/romhuset/rehearsal-booking/internal/booking"
    "github.com/romhuset/rehearsal-booking/internal/model"
    "github.com/romhuset/rehearsal-booking/internal/store"
)

func newTestService(t *testing.T) (*BookingService, *store.Memory) {
    t.Helper()
    mem := store.NewMemory()
    ctx := context.Background()
    require.NoError(t, mem.Rooms().Create(ctx, &model.Room{ID: "r1", Name: "Solo 1", Type: model.RoomTypeSolo}))
    require.NoError(t, mem.Rooms().Create(ctx, &model.Room{ID: "r2", Name: "Band 1", Type: model.RoomTypeBand}))
    svc := &BookingService{
        Bookings: mem,
        Vouchers: mem.Vouchers(),
        Rooms:    mem.Rooms(),
        Grants:   mem,
        Rates: booking.RateCard{
            Base:        map[string]int{"solo": 199, "band": 349, "preprod": 279},
            Multipliers: map[string]float64{"standard": 1.0, "kulturskole": 0.7, "kulturenheten": 0.5},
        },
        OpenHour: 8,
        EndHour:  23,
    }
    return svc, mem
}

func TestCreateOpenBookingEndToEnd(t *testing.T) {
    svc, mem := newTestService(t)
    ctx := context.Background()

    b, err := svc.Create(ctx, CreateRequest{
        Date: "2025-09-15", RoomID: "r1", Hour: 10,
        GroupCode: "kulturskole", CreatedBy: "u7",
    })
    require.NoError(t, err)
    assert.Equal(t, model.ModeOpen, b.Mode)
    assert.Equal(t, 139, b.Price, "round(199*0.7)")
    assert.Equal(t, "Solo 1", b.RoomName)
    assert.Nil(t, b.VoucherPartner)

    // deleting a booking without a voucher reference leaves the ledger alone
    require.NoError(t, mem.Vouchers().Create(ctx, &model.Voucher{Partner: "Kulturskolen", SlotsLeft: 2}))
    require.NoError(t, svc.Delete(ctx, "2025-09-15", "r1", 10, "u7"))
    vs, err := mem.Vouchers().List(ctx)
    require.NoError(t, err)
    assert.Equal(t, 2, vs[0].SlotsLeft)
}

func TestCreateRejectsSlotCollisionWithoutDebit(t *testing.T) {
    svc, mem := newTestService(t)
    ctx := context.Background()
    require.NoError(t, mem.Vouchers().Create(ctx, &model.Voucher{Partner: "Kulturskolen", SlotsLeft: 2}))

    _, err := svc.Create(ctx, CreateRequest{Date: "2025-09-15", RoomID: "r1", Hour: 10, CreatedBy: "u1"})
    require.NoError(t, err)

    _, err = svc.Create(ctx, CreateRequest{
        Date: "2025-09-15", RoomID: "r1", Hour: 10,
        VoucherRequired: true, VoucherID: 3, CreatedBy: "u2",
    })
    assert.ErrorIs(t, err, store.ErrSlotTaken)

    // the failed voucher-mode attempt must not have debited anything
    vs, _ := mem.Vouchers().List(ctx)
    assert.Equal(t, 2, vs[0].SlotsLeft)
}

func TestVoucherModeDebitsAndCreditsExactlyOne(t *testing.T) {
    svc, mem := newTestService(t)
    ctx := context.Background()
    v := &model.Voucher{Partner: "Kulturskolen", SlotsLeft: 2}
    require.NoError(t, mem.Vouchers().Create(ctx, v))

    b, err := svc.Create(ctx, CreateRequest{
        Date: "2025-09-15", RoomID: "r2", Hour: 19,
        VoucherRequired: true, VoucherID: v.ID, CreatedBy: "u1",
    })
    require.NoError(t, err)
    assert.Equal(t, model.ModeVoucher, b.Mode)
    require.NotNil(t, b.VoucherPartner)
    assert.Equal(t, "Kulturskolen", *b.VoucherPartner)

    vs, _ := mem.Vouchers().List(ctx)
    assert.Equal(t, 1, vs[0].SlotsLeft)

    require.NoError(t, svc.Delete(ctx, "2025-09-15", "r2", 19, "u1"))
    vs, _ = mem.Vouchers().List(ctx)
    assert.Equal(t, 2, vs[0].SlotsLeft, "delete credits the partner's ledger by exactly +1")
}

func TestVoucherModePreconditions(t *testing.T) {
    svc, mem := newTestService(t)
    ctx := context.Background()

    _, err := svc.Create(ctx, CreateRequest{
        Date: "2025-09-15", RoomID: "r1", Hour: 10,
        VoucherRequired: true, CreatedBy: "u1",
    })
    assert.ErrorIs(t, err, booking.ErrMissingVoucherSelection)

    v := &model.Voucher{Partner: "Tomme AS", SlotsLeft: 0}
    require.NoError(t, mem.Vouchers().Create(ctx, v))
    _, err = svc.Create(ctx, CreateRequest{
        Date: "2025-09-15", RoomID: "r1", Hour: 10,
        VoucherRequired: true, VoucherID: v.ID, CreatedBy: "u1",
    })
    assert.ErrorIs(t, err, booking.ErrVoucherExhausted)

    // neither attempt reached the store
    _, err = svc.Bookings.Get(ctx, "2025-09-15", "r1", 10)
    assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestExternalModeNeverDebits(t *testing.T) {
    svc, mem := newTestService(t)
    ctx := context.Background()
    v := &model.Voucher{Partner: "Kulturskolen", SlotsLeft: 2}
    require.NoError(t, mem.Vouchers().Create(ctx, v))

    b, err := svc.Create(ctx, CreateRequest{
        Date: "2025-09-15", RoomID: "r1", Hour: 12,
        BookForOthers: true, VoucherRequired: true, VoucherID: v.ID,
        BookedFor: " Korpset ", CreatedBy: "u1",
    })
    require.NoError(t, err)
    assert.Equal(t, model.ModeExternal, b.Mode)
    require.NotNil(t, b.BookedFor)
    assert.Equal(t, "Korpset", *b.BookedFor)

    vs, _ := mem.Vouchers().List(ctx)
    assert.Equal(t, 2, vs[0].SlotsLeft)
}

func TestDeleteOwnershipAndIdentity(t *testing.T) {
    svc, _ := newTestService(t)
    ctx := context.Background()
    _, err := svc.Create(ctx, CreateRequest{Date: "2025-09-15", RoomID: "r1", Hour: 10, CreatedBy: "u1"})
    require.NoError(t, err)

    assert.ErrorIs(t, svc.Delete(ctx, "2025-09-15", "r1", 10, "u2"), store.ErrForbidden)
    assert.ErrorIs(t, svc.Delete(ctx, "2025-09-15", "r1", 10, ""), ErrAuthenticationRequired)
    assert.ErrorIs(t, svc.Delete(ctx, "2025-09-15", "r1", 11, "u1"), store.ErrNotFound)
    require.NoError(t, svc.Delete(ctx, "2025-09-15", "r1", 10, "u1"))
}

func TestCreateValidation(t *testing.T) {
    svc, _ := newTestService(t)
    ctx := context.Background()

    _, err := svc.Create(ctx, CreateRequest{Date: "2025-09-15", RoomID: "r1", Hour: 10})
    assert.ErrorIs(t, err, ErrAuthenticationRequired)

    _, err = svc.Create(ctx, CreateRequest{Date: "15.09.2025", RoomID: "r1", Hour: 10, CreatedBy: "u1"})
    assert.ErrorIs(t, err, ErrInvalidDate)

    _, err = svc.Create(ctx, CreateRequest{Date: "2025-09-15", RoomID: "r1", Hour: 7, CreatedBy: "u1"})
    assert.ErrorIs(t, err, ErrOutsideOperatingHours)
    _, err = svc.Create(ctx, CreateRequest{Date: "2025-09-15", RoomID: "r1", Hour: 23, CreatedBy: "u1"})
    assert.ErrorIs(t, err, ErrOutsideOperatingHours)

    _, err = svc.Create(ctx, CreateRequest{Date: "2025-09-15", RoomID: "nope", Hour: 10, CreatedBy: "u1"})
    assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestDeleteRevokesGrant(t *testing.T) {
    svc, mem := newTestService(t)
    ctx := context.Background()
    b, err := svc.Create(ctx, CreateRequest{Date: "2025-09-15", RoomID: "r1", Hour: 10, CreatedBy: "u1"})
    require.NoError(t, err)

    issuer := &AccessIssuer{Grants: mem, Provider: "doorsys", DoorIDs: []string{"main"}}
    g, err := issuer.GetOrIssue(ctx, b)
    require.NoError(t, err)
    assert.Equal(t, model.GrantIssued, g.Status)

    require.NoError(t, svc.Delete(ctx, "2025-09-15", "r1", 10, "u1"))
    _, err = mem.ActiveByBooking(ctx, b.ID, issuer.now())
    assert.ErrorIs(t, err, store.ErrNotFound)
}
