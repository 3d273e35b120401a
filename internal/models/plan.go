package models

import "time"

// Workout type labels used throughout the plan.
const (
	WorkoutRest      = "Rest"
	WorkoutEasy      = "Easy"
	WorkoutRecovery  = "Recovery"
	WorkoutTempo     = "Tempo"
	WorkoutIntervals = "Intervals"
	WorkoutLongRun   = "Long Run"
)

var WorkoutTypes = []string{
	WorkoutRest,
	WorkoutEasy,
	WorkoutRecovery,
	WorkoutTempo,
	WorkoutIntervals,
	WorkoutLongRun,
}

// Workout is one scheduled session in a plan week. Planned mileage of 0
// denotes a rest day; Actual stays nil until the run is logged.
type Workout struct {
	Day        string     `json:"day"`
	Type       string     `json:"type"`
	Planned    float64    `json:"planned"`
	Actual     *float64   `json:"actual"`
	Pace       *string    `json:"pace"`
	FromStrava bool       `json:"fromStrava,omitempty"`
	StravaDate *time.Time `json:"stravaDate,omitempty"`
}

// TrainingPlan maps a 1-based plan week to its seven Monday..Sunday workouts.
type TrainingPlan map[int][]Workout

// DefaultTrainingPlan returns the two seed weeks every new account starts with.
func DefaultTrainingPlan() TrainingPlan {
	return TrainingPlan{
		1: {
			{Day: "Monday", Type: WorkoutRest, Planned: 0},
			{Day: "Tuesday", Type: WorkoutEasy, Planned: 5},
			{Day: "Wednesday", Type: WorkoutEasy, Planned: 6},
			{Day: "Thursday", Type: WorkoutTempo, Planned: 5},
			{Day: "Friday", Type: WorkoutRest, Planned: 0},
			{Day: "Saturday", Type: WorkoutLongRun, Planned: 12},
			{Day: "Sunday", Type: WorkoutRecovery, Planned: 4},
		},
		2: {
			{Day: "Monday", Type: WorkoutRest, Planned: 0},
			{Day: "Tuesday", Type: WorkoutEasy, Planned: 5},
			{Day: "Wednesday", Type: WorkoutIntervals, Planned: 6},
			{Day: "Thursday", Type: WorkoutEasy, Planned: 5},
			{Day: "Friday", Type: WorkoutRest, Planned: 0},
			{Day: "Saturday", Type: WorkoutLongRun, Planned: 14},
			{Day: "Sunday", Type: WorkoutRecovery, Planned: 4},
		},
	}
}
