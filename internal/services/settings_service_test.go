package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/nicholasjozef-cloud/Pacer/internal/models"
)

type stubSettingsRepo struct {
	settings  *models.UserSettings
	getErr    error
	upserted  *models.UserSettings
	upsertErr error
}

func (r *stubSettingsRepo) GetByUserID(_ context.Context, _ uuid.UUID) (*models.UserSettings, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	return r.settings, nil
}

func (r *stubSettingsRepo) Upsert(_ context.Context, _ uuid.UUID, settings models.UserSettings) error {
	r.upserted = &settings
	return r.upsertErr
}

var testUserID = uuid.MustParse("5c29fbd3-6d9d-4e3a-9f64-2b1f5f7cf001")

func TestSettingsServiceGetFallsBackToDefaults(t *testing.T) {
	service := NewSettingsService(&stubSettingsRepo{getErr: pgx.ErrNoRows})

	settings, err := service.Get(context.Background(), testUserID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	defaults := models.DefaultUserSettings()
	if settings.BodyWeight != defaults.BodyWeight || settings.TargetTime != defaults.TargetTime {
		t.Fatalf("expected defaults, got %+v", settings)
	}
	if settings.TotalTrainingWeeks != 16 || settings.CurrentWeek != 1 {
		t.Fatalf("unexpected default weeks: %+v", settings)
	}
}

func TestSettingsServiceGetClampsPersistedWeek(t *testing.T) {
	stored := models.DefaultUserSettings()
	stored.CurrentWeek = 99
	service := NewSettingsService(&stubSettingsRepo{settings: &stored})

	settings, err := service.Get(context.Background(), testUserID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if settings.CurrentWeek != settings.TotalTrainingWeeks {
		t.Fatalf("expected week clamped to %d, got %d", settings.TotalTrainingWeeks, settings.CurrentWeek)
	}
}

func TestSettingsServiceSaveRejectsInvalidInput(t *testing.T) {
	service := NewSettingsService(&stubSettingsRepo{})

	cases := []struct {
		name   string
		mutate func(*models.UserSettings)
	}{
		{"zero body weight", func(s *models.UserSettings) { s.BodyWeight = 0 }},
		{"zero total weeks", func(s *models.UserSettings) { s.TotalTrainingWeeks = 0 }},
		{"bad target time", func(s *models.UserSettings) { s.TargetTime = "three hours" }},
		{"bad race date", func(s *models.UserSettings) { d := "April 21"; s.RaceDate = &d }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			settings := models.DefaultUserSettings()
			tc.mutate(&settings)
			if _, err := service.Save(context.Background(), testUserID, settings); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestSettingsServiceSaveNormalizesAndPersists(t *testing.T) {
	repo := &stubSettingsRepo{}
	service := NewSettingsService(repo)

	blank := ""
	input := models.UserSettings{
		BodyWeight:         170,
		TargetTime:         " 3:10:00 ",
		RaceDate:           &blank,
		TotalTrainingWeeks: 12,
		CurrentWeek:        20,
	}

	saved, err := service.Save(context.Background(), testUserID, input)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if saved.TargetTime != "3:10:00" {
		t.Fatalf("expected trimmed target time, got %q", saved.TargetTime)
	}
	if saved.CurrentWeek != 12 {
		t.Fatalf("expected week clamped to 12, got %d", saved.CurrentWeek)
	}
	if saved.RaceDate != nil {
		t.Fatalf("expected blank race date dropped, got %v", *saved.RaceDate)
	}
	if repo.upserted == nil || repo.upserted.CurrentWeek != 12 {
		t.Fatalf("expected normalized settings persisted, got %+v", repo.upserted)
	}
}
