package training

import "github.com/nicholasjozef-cloud/Pacer/internal/models"

// CarbTarget returns tomorrow's carbohydrate goal in grams for a body weight
// in pounds. High-intensity days (long runs, intervals) get 8 g/lb, other
// training days 6 g/lb, and rest days or days with no scheduled workout 5 g/lb.
func CarbTarget(bodyWeight int, workout *models.Workout) int {
	if workout == nil || workout.Type == models.WorkoutRest {
		return bodyWeight * 5
	}
	if workout.Type == models.WorkoutLongRun || workout.Type == models.WorkoutIntervals {
		return bodyWeight * 8
	}
	return bodyWeight * 6
}
