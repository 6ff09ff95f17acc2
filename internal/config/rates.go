package config

// This file defines the house business constants: the hourly rate card,
// subsidized group multipliers, energy coefficients and the door-access
// window.  All values can be overridden per deployment through environment
// variables; the defaults match the current price list.

import (
	"strings"
	"time"

	"github.com/romhuset/rehearsal-booking/internal/booking"
)

// HouseConfig carries the bookable window, the rate card and the
// access-credential parameters.
type HouseConfig struct {
	OpenHour int // first bookable hour of the day
	EndHour  int // first hour past the bookable window

	Rates  booking.RateCard
	Energy map[string]float64 // kWh per booked hour, by room type

	AccessProvider string        // door-system provider tag
	DoorIDs        []string      // doors every rehearsal booking opens
	AccessBefore   time.Duration // grant validity margin before slot start
	AccessAfter    time.Duration // grant validity margin after slot end
}

// LoadHouseConfig reads environment variables to build a HouseConfig.
// Defaults are used when variables are not set.
func LoadHouseConfig() HouseConfig {
	return HouseConfig{
		OpenHour: envInt("OPEN_HOUR", 8),
		EndHour:  envInt("CLOSE_HOUR", 23),
		Rates: booking.RateCard{
			Base: map[string]int{
				"solo":    envInt("RATE_SOLO", 199),
				"band":    envInt("RATE_BAND", 349),
				"preprod": envInt("RATE_PREPROD", 279),
			},
			Multipliers: map[string]float64{
				"standard":      1.0,
				"kulturskole":   envFloat("MULT_KULTURSKOLE", 0.7),
				"kulturenheten": envFloat("MULT_KULTURENHETEN", 0.5),
			},
		},
		Energy: map[string]float64{
			"solo":    envFloat("ENERGY_SOLO_KWH", 1.2),
			"band":    envFloat("ENERGY_BAND_KWH", 3.6),
			"preprod": envFloat("ENERGY_PREPROD_KWH", 2.4),
		},
		AccessProvider: envStr("ACCESS_PROVIDER", "doorsys"),
		DoorIDs:        splitCSV(envStr("ACCESS_DOOR_IDS", "main")),
		AccessBefore:   envDur("ACCESS_BEFORE", 15*time.Minute),
		AccessAfter:    envDur("ACCESS_AFTER", 10*time.Minute),
	}
}

func splitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
