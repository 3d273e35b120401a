package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/nicholasjozef-cloud/Pacer/internal/models"
)

type StravaConnectionRepository struct {
	db DBTX
}

func NewStravaConnectionRepository(db DBTX) *StravaConnectionRepository {
	return &StravaConnectionRepository{db: db}
}

func (r *StravaConnectionRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.StravaConnection, error) {
	query := `
		SELECT user_id, access_token, refresh_token, athlete_id, athlete_data, expires_at, updated_at
		FROM strava_connections
		WHERE user_id = $1
	`

	var conn models.StravaConnection
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&conn.UserID,
		&conn.AccessToken,
		&conn.RefreshToken,
		&conn.AthleteID,
		&conn.AthleteData,
		&conn.ExpiresAt,
		&conn.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &conn, nil
}

// ListAll returns every stored connection, for the periodic sync loop.
func (r *StravaConnectionRepository) ListAll(ctx context.Context) ([]models.StravaConnection, error) {
	query := `
		SELECT user_id, access_token, refresh_token, athlete_id, athlete_data, expires_at, updated_at
		FROM strava_connections
		ORDER BY updated_at
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	connections := make([]models.StravaConnection, 0)
	for rows.Next() {
		var conn models.StravaConnection
		if err := rows.Scan(
			&conn.UserID,
			&conn.AccessToken,
			&conn.RefreshToken,
			&conn.AthleteID,
			&conn.AthleteData,
			&conn.ExpiresAt,
			&conn.UpdatedAt,
		); err != nil {
			return nil, err
		}
		connections = append(connections, conn)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return connections, nil
}

func (r *StravaConnectionRepository) Upsert(ctx context.Context, conn *models.StravaConnection) error {
	query := `
		INSERT INTO strava_connections (user_id, access_token, refresh_token, athlete_id, athlete_data, expires_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			access_token = EXCLUDED.access_token,
			refresh_token = EXCLUDED.refresh_token,
			athlete_id = EXCLUDED.athlete_id,
			athlete_data = EXCLUDED.athlete_data,
			expires_at = EXCLUDED.expires_at,
			updated_at = NOW()
	`

	_, err := r.db.Exec(
		ctx,
		query,
		conn.UserID,
		conn.AccessToken,
		conn.RefreshToken,
		conn.AthleteID,
		conn.AthleteData,
		conn.ExpiresAt,
	)
	return err
}

func (r *StravaConnectionRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM strava_connections WHERE user_id = $1`, userID)
	return err
}
