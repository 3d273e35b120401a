package training

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// DaysToRace counts whole days from now until a YYYY-MM-DD race date.
// The date is built from explicit year/month/day components in now's location
// rather than a generic timestamp parse, so a race date never shifts a day
// across timezones. Returns 0 when no race date is set; negative values mean
// the race has passed and are surfaced as-is.
func DaysToRace(raceDate string, now time.Time) (int, error) {
	if raceDate == "" {
		return 0, nil
	}

	parts := strings.Split(raceDate, "-")
	if len(parts) != 3 {
		return 0, fmt.Errorf("%w: race date %q", ErrInvalidInput, raceDate)
	}
	nums := make([]int, 3)
	for i, part := range parts {
		v, err := strconv.Atoi(part)
		if err != nil {
			return 0, fmt.Errorf("%w: race date %q", ErrInvalidInput, raceDate)
		}
		nums[i] = v
	}

	race := time.Date(nums[0], time.Month(nums[1]), nums[2], 0, 0, 0, 0, now.Location())
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	return int(math.Ceil(race.Sub(midnight).Hours() / 24)), nil
}
