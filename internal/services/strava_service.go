package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/nicholasjozef-cloud/Pacer/internal/models"
	"github.com/nicholasjozef-cloud/Pacer/internal/strava"
	"github.com/nicholasjozef-cloud/Pacer/internal/training"
)

const activityFetchLimit = 30

type stravaAPI interface {
	ExchangeCode(ctx context.Context, code string) (*strava.TokenResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*strava.TokenResponse, error)
	ListActivities(ctx context.Context, accessToken string, perPage int) ([]strava.Activity, error)
}

type stravaConnectionStore interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.StravaConnection, error)
	ListAll(ctx context.Context) ([]models.StravaConnection, error)
	Upsert(ctx context.Context, conn *models.StravaConnection) error
	Delete(ctx context.Context, userID uuid.UUID) error
}

type planSyncStore interface {
	planGetter
	SavePlan(ctx context.Context, userID uuid.UUID, plan models.TrainingPlan) error
}

type insightPublisher interface {
	PublishInsight(userID string, insight models.Insight)
}

type StravaService struct {
	client      stravaAPI
	connections stravaConnectionStore
	settings    settingsGetter
	plans       planSyncStore
	hub         insightPublisher

	now func() time.Time
}

// NewStravaService wires the sync pipeline. client may be nil when the OAuth
// app credentials are absent; every operation then reports ErrNotConfigured.
func NewStravaService(
	client stravaAPI,
	connections stravaConnectionStore,
	settings settingsGetter,
	plans planSyncStore,
	hub insightPublisher,
) *StravaService {
	return &StravaService{
		client:      client,
		connections: connections,
		settings:    settings,
		plans:       plans,
		hub:         hub,
		now:         time.Now,
	}
}

// Connect trades the OAuth authorization code for tokens and stores the grant.
func (s *StravaService) Connect(ctx context.Context, userID uuid.UUID, code string) (*models.StravaConnection, error) {
	if s.client == nil {
		return nil, ErrNotConfigured
	}
	if code == "" {
		return nil, ErrInvalidInput
	}

	token, err := s.client.ExchangeCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchange code: %w", err)
	}

	conn := &models.StravaConnection{
		UserID:       userID,
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		AthleteID:    token.AthleteID(),
		AthleteData:  token.Athlete,
		ExpiresAt:    token.Expiry(),
	}
	if err := s.connections.Upsert(ctx, conn); err != nil {
		return nil, err
	}
	return conn, nil
}

// Connection returns the stored grant, ErrNotConnected when there is none.
func (s *StravaService) Connection(ctx context.Context, userID uuid.UUID) (*models.StravaConnection, error) {
	if s.client == nil {
		return nil, ErrNotConfigured
	}
	conn, err := s.connections.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotConnected
		}
		return nil, err
	}
	return conn, nil
}

func (s *StravaService) Disconnect(ctx context.Context, userID uuid.UUID) error {
	if s.client == nil {
		return ErrNotConfigured
	}
	return s.connections.Delete(ctx, userID)
}

// Sync pulls the recent activity feed and backfills actual mileage into the
// plan, returning how many workout slots were updated. An expired access token
// is refreshed and the rotated tokens persisted before the fetch.
func (s *StravaService) Sync(ctx context.Context, userID uuid.UUID) (int, error) {
	conn, err := s.Connection(ctx, userID)
	if err != nil {
		return 0, err
	}

	now := s.now()
	if conn.Expired(now) {
		token, err := s.client.Refresh(ctx, conn.RefreshToken)
		if err != nil {
			return 0, fmt.Errorf("refresh token: %w", err)
		}
		conn.AccessToken = token.AccessToken
		conn.RefreshToken = token.RefreshToken
		conn.ExpiresAt = token.Expiry()
		if err := s.connections.Upsert(ctx, conn); err != nil {
			return 0, err
		}
	}

	activities, err := s.client.ListActivities(ctx, conn.AccessToken, activityFetchLimit)
	if err != nil {
		return 0, fmt.Errorf("list activities: %w", err)
	}

	settings, err := s.settings.Get(ctx, userID)
	if err != nil {
		return 0, err
	}
	plan, err := s.plans.GetPlan(ctx, userID)
	if err != nil {
		return 0, err
	}

	updated := training.ReconcileActivities(plan, settings.CurrentWeek, toTrainingActivities(activities), now)
	if updated == 0 {
		return 0, nil
	}

	if err := s.plans.SavePlan(ctx, userID, plan); err != nil {
		return 0, err
	}

	if s.hub != nil {
		s.hub.PublishInsight(userID.String(), models.Insight{
			Type:      "strava_sync",
			Message:   fmt.Sprintf("Synced %d run(s) from Strava into your plan.", updated),
			Sentiment: "positive",
		})
	}
	return updated, nil
}

// RunPeriodicSync re-syncs every connected account on a fixed interval until
// the context is cancelled. Per-user failures are logged and skipped so one
// bad grant never stalls the loop.
func (s *StravaService) RunPeriodicSync(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.syncAll(ctx)
		}
	}
}

func (s *StravaService) syncAll(ctx context.Context) {
	connections, err := s.connections.ListAll(ctx)
	if err != nil {
		log.Printf("strava sync: list connections: %v", err)
		return
	}
	for _, conn := range connections {
		if _, err := s.Sync(ctx, conn.UserID); err != nil {
			log.Printf("strava sync for user %s: %v", conn.UserID, err)
		}
	}
}

func toTrainingActivities(activities []strava.Activity) []training.Activity {
	out := make([]training.Activity, 0, len(activities))
	for _, a := range activities {
		out = append(out, training.Activity{
			StartDate: a.StartDate,
			Distance:  a.Distance,
			Type:      a.Type,
		})
	}
	return out
}
