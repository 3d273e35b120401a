package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/nicholasjozef-cloud/Pacer/internal/models"
)

type DayDetailsRepository struct {
	db DBTX
}

func NewDayDetailsRepository(db DBTX) *DayDetailsRepository {
	return &DayDetailsRepository{db: db}
}

// GetAllByUserID loads the whole calendar log keyed by ISO date string.
func (r *DayDetailsRepository) GetAllByUserID(ctx context.Context, userID uuid.UUID) (map[string]models.DayDetails, error) {
	query := `
		SELECT to_char(date, 'YYYY-MM-DD'), workout_type, miles, pace, protein, carbs, fats, notes
		FROM day_details
		WHERE user_id = $1
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	details := make(map[string]models.DayDetails)
	for rows.Next() {
		var dateKey string
		var day models.DayDetails
		if err := rows.Scan(
			&dateKey,
			&day.Workout,
			&day.Miles,
			&day.Pace,
			&day.Protein,
			&day.Carbs,
			&day.Fats,
			&day.Notes,
		); err != nil {
			return nil, err
		}
		details[dateKey] = day
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return details, nil
}

// Upsert writes one calendar day, keyed by (user_id, date).
func (r *DayDetailsRepository) Upsert(ctx context.Context, userID uuid.UUID, dateKey string, details models.DayDetails) error {
	query := `
		INSERT INTO day_details (user_id, date, workout_type, miles, pace, protein, carbs, fats, notes, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		ON CONFLICT (user_id, date) DO UPDATE SET
			workout_type = EXCLUDED.workout_type,
			miles = EXCLUDED.miles,
			pace = EXCLUDED.pace,
			protein = EXCLUDED.protein,
			carbs = EXCLUDED.carbs,
			fats = EXCLUDED.fats,
			notes = EXCLUDED.notes,
			updated_at = NOW()
	`

	_, err := r.db.Exec(
		ctx,
		query,
		userID,
		dateKey,
		details.Workout,
		details.Miles,
		details.Pace,
		details.Protein,
		details.Carbs,
		details.Fats,
		details.Notes,
	)
	return err
}
