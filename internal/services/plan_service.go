package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/nicholasjozef-cloud/Pacer/internal/models"
	"github.com/nicholasjozef-cloud/Pacer/internal/training"
)

type planStore interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (models.TrainingPlan, error)
	UpsertWeek(ctx context.Context, userID uuid.UUID, week int, workouts []models.Workout) error
	UpsertPlan(ctx context.Context, userID uuid.UUID, plan models.TrainingPlan) error
}

type PlanService struct {
	planRepo planStore
}

func NewPlanService(planRepo planStore) *PlanService {
	return &PlanService{planRepo: planRepo}
}

// GetPlan loads the user's plan, seeding and persisting the default two-week
// plan on first access. Plans are only ever overwritten in place, never
// deleted.
func (s *PlanService) GetPlan(ctx context.Context, userID uuid.UUID) (models.TrainingPlan, error) {
	plan, err := s.planRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(plan) > 0 {
		return plan, nil
	}

	plan = models.DefaultTrainingPlan()
	if err := s.planRepo.UpsertPlan(ctx, userID, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// WorkoutUpdateInput carries a manual edit; nil fields leave the slot's
// current value untouched.
type WorkoutUpdateInput struct {
	Type    *string
	Planned *float64
	Actual  *float64
	Pace    *string
}

// UpdateWorkout applies a manual edit to one (week, day) slot. A manual edit
// clears Strava provenance, since the runner has taken over the value.
func (s *PlanService) UpdateWorkout(
	ctx context.Context,
	userID uuid.UUID,
	week int,
	day string,
	input WorkoutUpdateInput,
) (*models.Workout, error) {
	if week < 1 {
		return nil, ErrInvalidInput
	}
	if input.Type != nil && !validWorkoutType(*input.Type) {
		return nil, ErrInvalidInput
	}
	if input.Planned != nil && *input.Planned < 0 {
		return nil, ErrInvalidInput
	}
	if input.Actual != nil && *input.Actual < 0 {
		return nil, ErrInvalidInput
	}

	plan, err := s.GetPlan(ctx, userID)
	if err != nil {
		return nil, err
	}
	workouts, ok := plan[week]
	if !ok {
		return nil, pgx.ErrNoRows
	}

	idx := -1
	for i := range workouts {
		if strings.EqualFold(workouts[i].Day, day) {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, pgx.ErrNoRows
	}

	workout := &workouts[idx]
	if input.Type != nil {
		workout.Type = *input.Type
	}
	if input.Planned != nil {
		workout.Planned = *input.Planned
	}
	if input.Actual != nil {
		actual := *input.Actual
		workout.Actual = &actual
		workout.FromStrava = false
		workout.StravaDate = nil
	}
	if input.Pace != nil {
		if *input.Pace == "" {
			workout.Pace = nil
		} else {
			pace := *input.Pace
			workout.Pace = &pace
		}
	}

	if err := s.planRepo.UpsertWeek(ctx, userID, week, workouts); err != nil {
		return nil, err
	}

	updated := *workout
	return &updated, nil
}

// ApplyUpdates lands parsed coach directives on the plan and persists it when
// anything changed. Directives addressing unknown weeks or days are no-ops.
func (s *PlanService) ApplyUpdates(ctx context.Context, userID uuid.UUID, updates []training.PlanUpdate) (int, error) {
	if len(updates) == 0 {
		return 0, nil
	}

	plan, err := s.GetPlan(ctx, userID)
	if err != nil {
		return 0, err
	}

	applied := training.ApplyPlanUpdates(plan, updates)
	if applied == 0 {
		return 0, nil
	}

	if err := s.planRepo.UpsertPlan(ctx, userID, plan); err != nil {
		return 0, err
	}
	return applied, nil
}

// SavePlan overwrites the whole plan, used by the reconciler after a sync.
func (s *PlanService) SavePlan(ctx context.Context, userID uuid.UUID, plan models.TrainingPlan) error {
	return s.planRepo.UpsertPlan(ctx, userID, plan)
}

func validWorkoutType(workoutType string) bool {
	for _, t := range models.WorkoutTypes {
		if t == workoutType {
			return true
		}
	}
	return false
}
