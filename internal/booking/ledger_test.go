package booking

import (
    "testing"

    "github.com/stretchr/testify/assert"

    "github.com/romhuset/rehearsal-booking/internal/model"
)

func testLedger() []model.Voucher {
    return []model.Voucher{
        {ID: 1, Partner: "Kulturskolen", SlotsLeft: 3},
        {ID: 2, Partner: "Fritidsklubben", SlotsLeft: 0},
    }
}

func TestIsAvailable(t *testing.T) {
    vs := testLedger()
    assert.True(t, IsAvailable(vs, 1))
    assert.False(t, IsAvailable(vs, 2), "zero balance is not available")
    assert.False(t, IsAvailable(vs, 99), "unknown id is not available")
}

func TestAdjustDebitAndCredit(t *testing.T) {
    vs := testLedger()
    out := Adjust(vs, 1, -1)
    assert.Equal(t, 2, out[0].SlotsLeft)
    assert.Equal(t, 3, vs[0].SlotsLeft, "input ledger must not be mutated")

    out = Adjust(out, 1, +2)
    assert.Equal(t, 4, out[0].SlotsLeft, "credit has no upper bound")
}

func TestAdjustClampsAtZero(t *testing.T) {
    vs := testLedger()
    out := Adjust(vs, 2, -5)
    assert.Equal(t, 0, out[1].SlotsLeft)
}

func TestAdjustUnknownIDIsNoop(t *testing.T) {
    vs := testLedger()
    out := Adjust(vs, 42, -1)
    assert.Equal(t, vs, out)
}

func TestFindByPartner(t *testing.T) {
    vs := testLedger()
    v := FindByPartner(vs, "Kulturskolen")
    if assert.NotNil(t, v) {
        assert.Equal(t, uint64(1), v.ID)
    }
    assert.Nil(t, FindByPartner(vs, "Ukjent"))
}
