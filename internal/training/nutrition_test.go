package training

import (
	"testing"

	"github.com/nicholasjozef-cloud/Pacer/internal/models"
)

func TestCarbTarget(t *testing.T) {
	cases := []struct {
		name    string
		workout *models.Workout
		want    int
	}{
		{"long run", &models.Workout{Type: models.WorkoutLongRun}, 1360},
		{"intervals", &models.Workout{Type: models.WorkoutIntervals}, 1360},
		{"rest", &models.Workout{Type: models.WorkoutRest}, 850},
		{"no workout scheduled", nil, 850},
		{"easy", &models.Workout{Type: models.WorkoutEasy}, 1020},
		{"tempo", &models.Workout{Type: models.WorkoutTempo}, 1020},
		{"recovery", &models.Workout{Type: models.WorkoutRecovery}, 1020},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CarbTarget(170, tc.workout); got != tc.want {
				t.Errorf("CarbTarget(170, %s) = %d, want %d", tc.name, got, tc.want)
			}
		})
	}
}
