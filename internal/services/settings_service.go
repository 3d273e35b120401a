package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/nicholasjozef-cloud/Pacer/internal/models"
	"github.com/nicholasjozef-cloud/Pacer/internal/training"
)

type settingsStore interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.UserSettings, error)
	Upsert(ctx context.Context, userID uuid.UUID, settings models.UserSettings) error
}

type SettingsService struct {
	settingsRepo settingsStore
}

func NewSettingsService(settingsRepo settingsStore) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// Get returns the user's settings, falling back to defaults before the first
// save. The calculators must work without a persisted row.
func (s *SettingsService) Get(ctx context.Context, userID uuid.UUID) (models.UserSettings, error) {
	settings, err := s.settingsRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.DefaultUserSettings(), nil
		}
		return models.UserSettings{}, err
	}
	return normalizeSettings(*settings), nil
}

// Save validates and upserts the settings singleton, returning the normalized
// form that was written.
func (s *SettingsService) Save(ctx context.Context, userID uuid.UUID, settings models.UserSettings) (models.UserSettings, error) {
	settings.TargetTime = strings.TrimSpace(settings.TargetTime)
	if settings.BodyWeight <= 0 || settings.TotalTrainingWeeks < 1 {
		return models.UserSettings{}, ErrInvalidInput
	}
	if _, err := training.ParseFinishTime(settings.TargetTime); err != nil {
		return models.UserSettings{}, ErrInvalidInput
	}
	if settings.RaceDate != nil && *settings.RaceDate != "" {
		if _, err := training.DaysToRace(*settings.RaceDate, time.Now()); err != nil {
			return models.UserSettings{}, ErrInvalidInput
		}
	}

	settings = normalizeSettings(settings)
	if err := s.settingsRepo.Upsert(ctx, userID, settings); err != nil {
		return models.UserSettings{}, err
	}
	return settings, nil
}

// normalizeSettings clamps the week pointer into [1, totalTrainingWeeks] and
// empties blank date strings to nil.
func normalizeSettings(settings models.UserSettings) models.UserSettings {
	if settings.TotalTrainingWeeks < 1 {
		settings.TotalTrainingWeeks = 1
	}
	if settings.CurrentWeek < 1 {
		settings.CurrentWeek = 1
	}
	if settings.CurrentWeek > settings.TotalTrainingWeeks {
		settings.CurrentWeek = settings.TotalTrainingWeeks
	}
	if settings.RaceDate != nil && *settings.RaceDate == "" {
		settings.RaceDate = nil
	}
	if settings.TrainingStartDate != nil && *settings.TrainingStartDate == "" {
		settings.TrainingStartDate = nil
	}
	return settings
}
