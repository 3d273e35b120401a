package training

import (
	"errors"
	"testing"
	"time"
)

func TestDaysToRace(t *testing.T) {
	now := time.Date(2024, 12, 25, 0, 0, 0, 0, time.Local)

	days, err := DaysToRace("2025-01-01", now)
	if err != nil {
		t.Fatalf("DaysToRace: %v", err)
	}
	if days != 7 {
		t.Errorf("expected 7 days, got %d", days)
	}
}

func TestDaysToRaceIgnoresTimeOfDay(t *testing.T) {
	// Late evening must not shave a day off the countdown.
	now := time.Date(2024, 12, 25, 23, 45, 0, 0, time.Local)

	days, err := DaysToRace("2025-01-01", now)
	if err != nil {
		t.Fatalf("DaysToRace: %v", err)
	}
	if days != 7 {
		t.Errorf("expected 7 days, got %d", days)
	}
}

func TestDaysToRacePastRaceGoesNegative(t *testing.T) {
	now := time.Date(2025, 1, 10, 8, 0, 0, 0, time.Local)

	days, err := DaysToRace("2025-01-01", now)
	if err != nil {
		t.Fatalf("DaysToRace: %v", err)
	}
	if days != -9 {
		t.Errorf("expected -9 days, got %d", days)
	}
}

func TestDaysToRaceUnsetReturnsZero(t *testing.T) {
	days, err := DaysToRace("", time.Now())
	if err != nil {
		t.Fatalf("DaysToRace: %v", err)
	}
	if days != 0 {
		t.Errorf("expected 0 for unset race date, got %d", days)
	}
}

func TestDaysToRaceRejectsMalformedDate(t *testing.T) {
	for _, input := range []string{"2025/01/01", "01-01-2025x", "2025-01", "race day"} {
		if _, err := DaysToRace(input, time.Now()); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("DaysToRace(%q) = %v, want ErrInvalidInput", input, err)
		}
	}
}
