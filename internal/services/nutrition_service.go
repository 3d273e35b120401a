package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/nicholasjozef-cloud/Pacer/internal/models"
)

const maxNutritionEntries = 100

type nutritionStore interface {
	Create(ctx context.Context, entry *models.NutritionEntry) error
	ListByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]models.NutritionEntry, error)
}

type NutritionService struct {
	nutritionRepo nutritionStore
}

func NewNutritionService(nutritionRepo nutritionStore) *NutritionService {
	return &NutritionService{nutritionRepo: nutritionRepo}
}

// Log appends a macro entry with derived calories. Entries are immutable once
// written.
func (s *NutritionService) Log(ctx context.Context, userID uuid.UUID, carbs, protein, fats int) (*models.NutritionEntry, error) {
	if carbs < 0 || protein < 0 || fats < 0 {
		return nil, ErrInvalidInput
	}
	if carbs == 0 && protein == 0 && fats == 0 {
		return nil, ErrInvalidInput
	}

	entry := &models.NutritionEntry{
		UserID:   userID,
		Carbs:    carbs,
		Protein:  protein,
		Fats:     fats,
		Calories: models.MacroCalories(carbs, protein, fats),
	}
	if err := s.nutritionRepo.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// List returns the most recent entries, newest first.
func (s *NutritionService) List(ctx context.Context, userID uuid.UUID, limit int) ([]models.NutritionEntry, error) {
	if limit <= 0 || limit > maxNutritionEntries {
		limit = maxNutritionEntries
	}
	return s.nutritionRepo.ListByUserID(ctx, userID, limit)
}
