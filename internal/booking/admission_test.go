package booking

import (
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/romhuset/rehearsal-booking/internal/model"
)

func TestDetermineModeMatrix(t *testing.T) {
    assert.Equal(t, model.ModeExternal, DetermineMode(true, false))
    assert.Equal(t, model.ModeExternal, DetermineMode(true, true), "external wins over voucher")
    assert.Equal(t, model.ModeVoucher, DetermineMode(false, true))
    assert.Equal(t, model.ModeOpen, DetermineMode(false, false))
}

func TestAdmitOpen(t *testing.T) {
    adm, err := Admit(AdmissionRequest{}, testLedger())
    require.NoError(t, err)
    assert.Equal(t, model.ModeOpen, adm.Mode)
    assert.Zero(t, adm.VoucherID)
    assert.Nil(t, adm.VoucherPartner)
    assert.Nil(t, adm.BookedFor)
}

func TestAdmitVoucher(t *testing.T) {
    adm, err := Admit(AdmissionRequest{VoucherRequired: true, VoucherID: 1}, testLedger())
    require.NoError(t, err)
    assert.Equal(t, model.ModeVoucher, adm.Mode)
    assert.Equal(t, uint64(1), adm.VoucherID)
    if assert.NotNil(t, adm.VoucherPartner) {
        assert.Equal(t, "Kulturskolen", *adm.VoucherPartner)
    }
}

func TestAdmitVoucherMissingSelection(t *testing.T) {
    _, err := Admit(AdmissionRequest{VoucherRequired: true}, testLedger())
    assert.ErrorIs(t, err, ErrMissingVoucherSelection)
}

func TestAdmitVoucherExhausted(t *testing.T) {
    _, err := Admit(AdmissionRequest{VoucherRequired: true, VoucherID: 2}, testLedger())
    assert.ErrorIs(t, err, ErrVoucherExhausted)

    _, err = Admit(AdmissionRequest{VoucherRequired: true, VoucherID: 99}, testLedger())
    assert.ErrorIs(t, err, ErrVoucherExhausted, "unknown voucher fails availability")
}

func TestAdmitExternalTrimsLabel(t *testing.T) {
    adm, err := Admit(AdmissionRequest{BookForOthers: true, BookedFor: "  Korpset  "}, nil)
    require.NoError(t, err)
    assert.Equal(t, model.ModeExternal, adm.Mode)
    if assert.NotNil(t, adm.BookedFor) {
        assert.Equal(t, "Korpset", *adm.BookedFor)
    }
}

func TestAdmitExternalBlankLabelIsAbsent(t *testing.T) {
    adm, err := Admit(AdmissionRequest{BookForOthers: true, BookedFor: "   "}, nil)
    require.NoError(t, err)
    assert.Nil(t, adm.BookedFor)
}

func TestAdmitExternalSkipsVoucherChecks(t *testing.T) {
    // Even with voucherRequired set and an exhausted voucher selected,
    // external mode admits without touching the ledger.
    adm, err := Admit(AdmissionRequest{BookForOthers: true, VoucherRequired: true, VoucherID: 2}, testLedger())
    require.NoError(t, err)
    assert.Equal(t, model.ModeExternal, adm.Mode)
    assert.Zero(t, adm.VoucherID)
}
