package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/nicholasjozef-cloud/Pacer/internal/models"
)

type dayDetailsStore interface {
	GetAllByUserID(ctx context.Context, userID uuid.UUID) (map[string]models.DayDetails, error)
	Upsert(ctx context.Context, userID uuid.UUID, dateKey string, details models.DayDetails) error
}

type DayLogService struct {
	dayDetailsRepo dayDetailsStore
}

func NewDayLogService(dayDetailsRepo dayDetailsStore) *DayLogService {
	return &DayLogService{dayDetailsRepo: dayDetailsRepo}
}

func (s *DayLogService) GetAll(ctx context.Context, userID uuid.UUID) (map[string]models.DayDetails, error) {
	return s.dayDetailsRepo.GetAllByUserID(ctx, userID)
}

// Save upserts one calendar day keyed by ISO date.
func (s *DayLogService) Save(ctx context.Context, userID uuid.UUID, dateKey string, details models.DayDetails) error {
	if _, err := time.Parse("2006-01-02", dateKey); err != nil {
		return ErrInvalidInput
	}
	if details.Miles != nil && *details.Miles < 0 {
		return ErrInvalidInput
	}
	for _, grams := range []*int{details.Protein, details.Carbs, details.Fats} {
		if grams != nil && *grams < 0 {
			return ErrInvalidInput
		}
	}

	return s.dayDetailsRepo.Upsert(ctx, userID, dateKey, details)
}
