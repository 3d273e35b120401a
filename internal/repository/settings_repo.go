package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/nicholasjozef-cloud/Pacer/internal/models"
)

type SettingsRepository struct {
	db DBTX
}

func NewSettingsRepository(db DBTX) *SettingsRepository {
	return &SettingsRepository{db: db}
}

func (r *SettingsRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.UserSettings, error) {
	query := `
		SELECT body_weight, target_time, race_date, in_training_plan,
		       total_training_weeks, current_week, training_start_date
		FROM user_settings
		WHERE user_id = $1
	`

	var settings models.UserSettings
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&settings.BodyWeight,
		&settings.TargetTime,
		&settings.RaceDate,
		&settings.InTrainingPlan,
		&settings.TotalTrainingWeeks,
		&settings.CurrentWeek,
		&settings.TrainingStartDate,
	)
	if err != nil {
		return nil, err
	}

	return &settings, nil
}

// Upsert writes the per-user singleton row, keyed by user_id.
func (r *SettingsRepository) Upsert(ctx context.Context, userID uuid.UUID, settings models.UserSettings) error {
	query := `
		INSERT INTO user_settings (
			user_id, body_weight, target_time, race_date, in_training_plan,
			total_training_weeks, current_week, training_start_date, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			body_weight = EXCLUDED.body_weight,
			target_time = EXCLUDED.target_time,
			race_date = EXCLUDED.race_date,
			in_training_plan = EXCLUDED.in_training_plan,
			total_training_weeks = EXCLUDED.total_training_weeks,
			current_week = EXCLUDED.current_week,
			training_start_date = EXCLUDED.training_start_date,
			updated_at = NOW()
	`

	_, err := r.db.Exec(
		ctx,
		query,
		userID,
		settings.BodyWeight,
		settings.TargetTime,
		settings.RaceDate,
		settings.InTrainingPlan,
		settings.TotalTrainingWeeks,
		settings.CurrentWeek,
		settings.TrainingStartDate,
	)
	return err
}
