package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/nicholasjozef-cloud/Pacer/internal/models"
)

// NutritionRepository is append-only: entries are inserted and listed, never
// updated or deleted.
type NutritionRepository struct {
	db DBTX
}

func NewNutritionRepository(db DBTX) *NutritionRepository {
	return &NutritionRepository{db: db}
}

func (r *NutritionRepository) Create(ctx context.Context, entry *models.NutritionEntry) error {
	query := `
		INSERT INTO nutrition_entries (user_id, carbs, protein, fats, calories)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	return r.db.QueryRow(
		ctx,
		query,
		entry.UserID,
		entry.Carbs,
		entry.Protein,
		entry.Fats,
		entry.Calories,
	).Scan(&entry.ID, &entry.CreatedAt)
}

// ListByUserID returns the most recent entries first.
func (r *NutritionRepository) ListByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]models.NutritionEntry, error) {
	query := `
		SELECT id, user_id, carbs, protein, fats, calories, created_at
		FROM nutrition_entries
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]models.NutritionEntry, 0)
	for rows.Next() {
		var entry models.NutritionEntry
		if err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.Carbs,
			&entry.Protein,
			&entry.Fats,
			&entry.Calories,
			&entry.CreatedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
