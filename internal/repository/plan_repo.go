package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/nicholasjozef-cloud/Pacer/internal/models"
)

// PlanRepository persists training plans one week per row, with the seven
// workouts of a week stored as a jsonb document.
type PlanRepository struct {
	db DBTX
}

func NewPlanRepository(db DBTX) *PlanRepository {
	return &PlanRepository{db: db}
}

func (r *PlanRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (models.TrainingPlan, error) {
	query := `
		SELECT week_number, workouts
		FROM training_plan_weeks
		WHERE user_id = $1
		ORDER BY week_number
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	plan := make(models.TrainingPlan)
	for rows.Next() {
		var weekNumber int
		var workoutsJSON []byte
		if err := rows.Scan(&weekNumber, &workoutsJSON); err != nil {
			return nil, err
		}

		var workouts []models.Workout
		if err := json.Unmarshal(workoutsJSON, &workouts); err != nil {
			return nil, fmt.Errorf("decode week %d workouts: %w", weekNumber, err)
		}
		plan[weekNumber] = workouts
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return plan, nil
}

// UpsertWeek overwrites one plan week in place, keyed by (user_id, week).
func (r *PlanRepository) UpsertWeek(ctx context.Context, userID uuid.UUID, week int, workouts []models.Workout) error {
	workoutsJSON, err := json.Marshal(workouts)
	if err != nil {
		return fmt.Errorf("encode week %d workouts: %w", week, err)
	}

	query := `
		INSERT INTO training_plan_weeks (user_id, week_number, workouts, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (user_id, week_number) DO UPDATE SET
			workouts = EXCLUDED.workouts,
			updated_at = NOW()
	`

	_, err = r.db.Exec(ctx, query, userID, week, workoutsJSON)
	return err
}

// UpsertPlan writes every week of the plan. Callers wanting atomicity pass a
// transaction-backed repository.
func (r *PlanRepository) UpsertPlan(ctx context.Context, userID uuid.UUID, plan models.TrainingPlan) error {
	for week, workouts := range plan {
		if err := r.UpsertWeek(ctx, userID, week, workouts); err != nil {
			return err
		}
	}
	return nil
}
