// Package training holds the derived-metrics engine: pace math, race
// countdown, carb targeting, weekly volume, coach plan-update parsing, and
// Strava reconciliation. Everything here is pure; persistence and transport
// live in the services layer.
package training

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var ErrInvalidInput = errors.New("invalid input")

// MarathonMiles is the fixed race distance all pace math assumes.
const MarathonMiles = 26.2

// ParseFinishTime converts a colon-separated finish time to total seconds.
// Components are read right-to-left as seconds, minutes, hours; any number of
// components is accepted ("45", "7:30", "2:59:59").
func ParseFinishTime(s string) (int, error) {
	total := 0
	for _, part := range strings.Split(s, ":") {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return 0, fmt.Errorf("%w: finish time %q", ErrInvalidInput, s)
		}
		total = total*60 + v
	}
	return total, nil
}

// TargetPaceSeconds returns the per-mile pace in seconds for a finish time.
func TargetPaceSeconds(finishTime string) (float64, error) {
	total, err := ParseFinishTime(finishTime)
	if err != nil {
		return 0, err
	}
	return float64(total) / MarathonMiles, nil
}

// FormatPace renders pace seconds as "M:SS", rounding the seconds component.
func FormatPace(seconds float64) string {
	mins := int(math.Floor(seconds / 60))
	secs := int(math.Round(math.Mod(seconds, 60)))
	return fmt.Sprintf("%d:%02d", mins, secs)
}

// TargetPace is the goal marathon pace string for a finish time.
func TargetPace(finishTime string) (string, error) {
	pace, err := TargetPaceSeconds(finishTime)
	if err != nil {
		return "", err
	}
	return FormatPace(pace), nil
}

type PaceZone struct {
	Name  string `json:"name"`
	Range string `json:"range"`
}

// PaceZones derives the named training zones from the goal marathon pace, in
// display order. Offsets are seconds relative to marathon pace; every zone
// except Marathon Pace is a low-high band with the slower bound listed first
// where the zone sits above marathon pace.
func PaceZones(paceSeconds float64) []PaceZone {
	band := func(lo, hi float64) string {
		return FormatPace(paceSeconds+lo) + " - " + FormatPace(paceSeconds+hi)
	}
	return []PaceZone{
		{Name: "Easy", Range: band(90, 120)},
		{Name: "Marathon Pace", Range: FormatPace(paceSeconds)},
		{Name: "Half Marathon Pace", Range: FormatPace(paceSeconds - 21)},
		{Name: "Tempo", Range: band(9, 24)},
		{Name: "Intervals", Range: band(-31, -16)},
		{Name: "Recovery", Range: band(120, 150)},
	}
}
