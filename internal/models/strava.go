package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// StravaConnection stores the OAuth grant for one user's Strava account.
// AthleteData keeps the raw athlete payload Strava returned at connect time.
type StravaConnection struct {
	UserID       uuid.UUID       `json:"user_id"`
	AccessToken  string          `json:"-"`
	RefreshToken string          `json:"-"`
	AthleteID    string          `json:"athlete_id"`
	AthleteData  json.RawMessage `json:"athlete_data,omitempty"`
	ExpiresAt    time.Time       `json:"expires_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func (c *StravaConnection) Expired(now time.Time) bool {
	return !c.ExpiresAt.After(now)
}
