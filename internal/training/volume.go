package training

import "github.com/nicholasjozef-cloud/Pacer/internal/models"

type VolumeSummary struct {
	Planned float64 `json:"planned"`
	Actual  float64 `json:"actual"`
}

// WeeklyVolume sums planned and logged mileage across a week's workouts.
// Unlogged workouts contribute 0 to the actual total.
func WeeklyVolume(week []models.Workout) VolumeSummary {
	var summary VolumeSummary
	for _, w := range week {
		summary.Planned += w.Planned
		if w.Actual != nil {
			summary.Actual += *w.Actual
		}
	}
	return summary
}

// CompletionPercent is the actual/planned ratio clamped to [0, 100] for
// display. A week with no planned mileage reads as 0.
func CompletionPercent(v VolumeSummary) float64 {
	if v.Planned <= 0 {
		return 0
	}
	pct := v.Actual / v.Planned * 100
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}

// RunsCompleted counts logged runs against scheduled runs, excluding rest days
// from the denominator.
func RunsCompleted(week []models.Workout) (completed, total int) {
	for _, w := range week {
		if w.Type == models.WorkoutRest {
			continue
		}
		total++
		if w.Actual != nil && *w.Actual > 0 {
			completed++
		}
	}
	return completed, total
}
