package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nicholasjozef-cloud/Pacer/internal/models"
)

type stubSettingsGetter struct {
	settings models.UserSettings
	err      error
}

func (s *stubSettingsGetter) Get(_ context.Context, _ uuid.UUID) (models.UserSettings, error) {
	return s.settings, s.err
}

type stubPlanGetter struct {
	plan models.TrainingPlan
	err  error
}

func (s *stubPlanGetter) GetPlan(_ context.Context, _ uuid.UUID) (models.TrainingPlan, error) {
	return s.plan, s.err
}

type stubDayLogGetter struct {
	logs map[string]models.DayDetails
	err  error
}

func (s *stubDayLogGetter) GetAll(_ context.Context, _ uuid.UUID) (map[string]models.DayDetails, error) {
	return s.logs, s.err
}

func TestDashboardServiceGet(t *testing.T) {
	raceDate := "2025-04-21"
	settings := models.DefaultUserSettings()
	settings.BodyWeight = 170
	settings.RaceDate = &raceDate

	tuesdayActual := 5.0
	plan := models.TrainingPlan{1: {
		{Day: "Monday", Type: models.WorkoutRest},
		{Day: "Tuesday", Type: models.WorkoutEasy, Planned: 5, Actual: &tuesdayActual},
		{Day: "Wednesday", Type: models.WorkoutEasy, Planned: 6},
		{Day: "Thursday", Type: models.WorkoutTempo, Planned: 5},
		{Day: "Friday", Type: models.WorkoutRest},
		{Day: "Saturday", Type: models.WorkoutLongRun, Planned: 12},
		{Day: "Sunday", Type: models.WorkoutRecovery, Planned: 4},
	}}

	carbs, protein, fats := 300, 150, 70
	logs := map[string]models.DayDetails{
		"2025-03-12": {Carbs: &carbs, Protein: &protein, Fats: &fats},
	}

	service := NewDashboardService(
		&stubSettingsGetter{settings: settings},
		&stubPlanGetter{plan: plan},
		&stubDayLogGetter{logs: logs},
	)
	service.now = func() time.Time { return testTime }

	dash, err := service.Get(context.Background(), testUserID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	if dash.TargetPace != "6:52" {
		t.Fatalf("unexpected target pace: %q", dash.TargetPace)
	}
	if len(dash.PaceZones) != 6 || dash.PaceZones[0].Name != "Easy" {
		t.Fatalf("unexpected zones: %+v", dash.PaceZones)
	}
	if dash.DaysToRace != 40 {
		t.Fatalf("expected 40 days to race, got %d", dash.DaysToRace)
	}
	if dash.WeeklyVolume.Planned != 32 || dash.WeeklyVolume.Actual != 5 {
		t.Fatalf("unexpected volume: %+v", dash.WeeklyVolume)
	}
	if dash.RunsCompleted != 1 || dash.RunsScheduled != 5 {
		t.Fatalf("unexpected run counts: %d/%d", dash.RunsCompleted, dash.RunsScheduled)
	}
	if dash.TodayWorkout == nil || dash.TodayWorkout.Day != "Wednesday" {
		t.Fatalf("expected Wednesday's workout, got %+v", dash.TodayWorkout)
	}
	// Thursday is a tempo day, so fueling runs at 6 g/lb.
	if dash.CarbGoal != 170*6 {
		t.Fatalf("unexpected carb goal: %d", dash.CarbGoal)
	}
	if dash.TodayMacros.Calories != 2430 {
		t.Fatalf("unexpected calories: %d", dash.TodayMacros.Calories)
	}
}

func TestDashboardServiceGetCarbLoadsBeforeLongRun(t *testing.T) {
	settings := models.DefaultUserSettings()
	plan := models.TrainingPlan{1: {
		{Day: "Friday", Type: models.WorkoutRest},
		{Day: "Saturday", Type: models.WorkoutLongRun, Planned: 14},
	}}

	service := NewDashboardService(
		&stubSettingsGetter{settings: settings},
		&stubPlanGetter{plan: plan},
		&stubDayLogGetter{},
	)
	// Friday, the day before the long run.
	service.now = func() time.Time { return time.Date(2025, 3, 14, 19, 0, 0, 0, time.UTC) }

	dash, err := service.Get(context.Background(), testUserID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if dash.CarbGoal != settings.BodyWeight*8 {
		t.Fatalf("expected long-run fueling, got %d", dash.CarbGoal)
	}
	if dash.DaysToRace != 0 {
		t.Fatalf("expected 0 without a race date, got %d", dash.DaysToRace)
	}
	if dash.TodayMacros != (MacroTotals{}) {
		t.Fatalf("expected empty macros without a log, got %+v", dash.TodayMacros)
	}
}
