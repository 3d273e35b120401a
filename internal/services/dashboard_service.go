package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/nicholasjozef-cloud/Pacer/internal/models"
	"github.com/nicholasjozef-cloud/Pacer/internal/training"
)

type settingsGetter interface {
	Get(ctx context.Context, userID uuid.UUID) (models.UserSettings, error)
}

type planGetter interface {
	GetPlan(ctx context.Context, userID uuid.UUID) (models.TrainingPlan, error)
}

type dayLogGetter interface {
	GetAll(ctx context.Context, userID uuid.UUID) (map[string]models.DayDetails, error)
}

// Dashboard is the single-fetch payload behind the main screen: every derived
// metric the calculators produce, plus today's logged macros.
type Dashboard struct {
	TargetPace         string                 `json:"targetPace"`
	PaceZones          []training.PaceZone    `json:"paceZones"`
	DaysToRace         int                    `json:"daysToRace"`
	CurrentWeek        int                    `json:"currentWeek"`
	TotalTrainingWeeks int                    `json:"totalTrainingWeeks"`
	WeeklyVolume       training.VolumeSummary `json:"weeklyVolume"`
	CompletionPercent  float64                `json:"completionPercent"`
	RunsCompleted      int                    `json:"runsCompleted"`
	RunsScheduled      int                    `json:"runsScheduled"`
	TodayWorkout       *models.Workout        `json:"todayWorkout"`
	CarbGoal           int                    `json:"carbGoal"`
	TodayMacros        MacroTotals            `json:"todayMacros"`
}

type MacroTotals struct {
	Carbs    int `json:"carbs"`
	Protein  int `json:"protein"`
	Fats     int `json:"fats"`
	Calories int `json:"calories"`
}

type DashboardService struct {
	settings settingsGetter
	plans    planGetter
	dayLogs  dayLogGetter

	now func() time.Time
}

func NewDashboardService(settings settingsGetter, plans planGetter, dayLogs dayLogGetter) *DashboardService {
	return &DashboardService{
		settings: settings,
		plans:    plans,
		dayLogs:  dayLogs,
		now:      time.Now,
	}
}

// Get assembles the dashboard. The carb goal is keyed off tomorrow's scheduled
// workout so the runner fuels ahead of hard days.
func (s *DashboardService) Get(ctx context.Context, userID uuid.UUID) (*Dashboard, error) {
	settings, err := s.settings.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	plan, err := s.plans.GetPlan(ctx, userID)
	if err != nil {
		return nil, err
	}

	paceSeconds, err := training.TargetPaceSeconds(settings.TargetTime)
	if err != nil {
		return nil, err
	}

	now := s.now()
	daysToRace := 0
	if settings.RaceDate != nil {
		if d, err := training.DaysToRace(*settings.RaceDate, now); err == nil {
			daysToRace = d
		}
	}

	dash := &Dashboard{
		TargetPace:         training.FormatPace(paceSeconds),
		PaceZones:          training.PaceZones(paceSeconds),
		DaysToRace:         daysToRace,
		CurrentWeek:        settings.CurrentWeek,
		TotalTrainingWeeks: settings.TotalTrainingWeeks,
	}

	week := plan[settings.CurrentWeek]
	dash.WeeklyVolume = training.WeeklyVolume(week)
	dash.CompletionPercent = training.CompletionPercent(dash.WeeklyVolume)
	dash.RunsCompleted, dash.RunsScheduled = training.RunsCompleted(week)

	dash.TodayWorkout = workoutForDay(week, now.Weekday().String())
	tomorrow := workoutForDay(week, now.AddDate(0, 0, 1).Weekday().String())
	dash.CarbGoal = training.CarbTarget(settings.BodyWeight, tomorrow)

	logs, err := s.dayLogs.GetAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	if today, ok := logs[now.Format("2006-01-02")]; ok {
		dash.TodayMacros = macroTotals(today)
	}

	return dash, nil
}

func workoutForDay(week []models.Workout, day string) *models.Workout {
	for i := range week {
		if week[i].Day == day {
			return &week[i]
		}
	}
	return nil
}

func macroTotals(details models.DayDetails) MacroTotals {
	var t MacroTotals
	if details.Carbs != nil {
		t.Carbs = *details.Carbs
	}
	if details.Protein != nil {
		t.Protein = *details.Protein
	}
	if details.Fats != nil {
		t.Fats = *details.Fats
	}
	t.Calories = models.MacroCalories(t.Carbs, t.Protein, t.Fats)
	return t
}
