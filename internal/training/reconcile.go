package training

import (
	"math"
	"time"

	"github.com/nicholasjozef-cloud/Pacer/internal/models"
)

const metersPerMile = 1609.34

// reconcileWindowDays bounds the backfill to recent activities so stale feed
// entries never correct old weeks.
const reconcileWindowDays = 14

// Activity is one externally reported session from the Strava feed.
type Activity struct {
	StartDate time.Time
	Distance  float64 // meters
	Type      string
}

// ReconcileActivities backfills actual mileage from the activity feed into the
// plan and returns the number of slots updated. Only "Run" activities within
// the recency window are considered, candidate weeks are the current week and
// the one before it, and a slot that already has a non-zero actual is never
// overwritten — manual entries win.
func ReconcileActivities(plan models.TrainingPlan, currentWeek int, activities []Activity, now time.Time) int {
	updated := 0
	for _, activity := range activities {
		if activity.Type != "Run" {
			continue
		}

		miles := math.Round(activity.Distance/metersPerMile*10) / 10
		dayName := activity.StartDate.Weekday().String()
		daysSince := int(math.Floor(now.Sub(activity.StartDate).Hours() / 24))
		if daysSince > reconcileWindowDays {
			continue
		}

		for _, weekNum := range []int{currentWeek, currentWeek - 1} {
			if weekNum < 1 {
				continue
			}
			week, ok := plan[weekNum]
			if !ok {
				continue
			}
			for i := range week {
				if week[i].Day != dayName {
					continue
				}
				if week[i].Actual != nil && *week[i].Actual != 0 {
					break
				}
				actual := miles
				start := activity.StartDate
				week[i].Actual = &actual
				week[i].FromStrava = true
				week[i].StravaDate = &start
				updated++
				break
			}
		}
	}
	return updated
}
