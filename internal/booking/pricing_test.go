package booking

import (
    "testing"

    "github.com/stretchr/testify/assert"
)

func testRateCard() RateCard {
    return RateCard{
        Base: map[string]int{
            "solo":    199,
            "band":    349,
            "preprod": 279,
        },
        Multipliers: map[string]float64{
            "standard":      1.0,
            "kulturskole":   0.7,
            "kulturenheten": 0.5,
        },
    }
}

func TestPriceStandard(t *testing.T) {
    rc := testRateCard()
    assert.Equal(t, 199, Price("solo", "standard", rc))
    assert.Equal(t, 349, Price("band", "standard", rc))
}

func TestPriceRoundsDiscount(t *testing.T) {
    rc := testRateCard()
    // 199 * 0.7 = 139.3 -> 139
    assert.Equal(t, 139, Price("solo", "kulturskole", rc))
    // 349 * 0.7 = 244.3 -> 244
    assert.Equal(t, 244, Price("band", "kulturskole", rc))
    // 279 * 0.5 = 139.5 -> 140
    assert.Equal(t, 140, Price("preprod", "kulturenheten", rc))
}

func TestPriceUnknownTypeDefaultsToZeroBase(t *testing.T) {
    rc := testRateCard()
    assert.Equal(t, 0, Price("sauna", "standard", rc))
    assert.Equal(t, 0, Price("", "kulturskole", rc))
}

func TestPriceUnknownGroupDefaultsToFullRate(t *testing.T) {
    rc := testRateCard()
    assert.Equal(t, 199, Price("solo", "vip", rc))
    assert.Equal(t, 349, Price("band", "", rc))
}

func TestPriceEmptyRateCard(t *testing.T) {
    assert.Equal(t, 0, Price("solo", "standard", RateCard{}))
}
