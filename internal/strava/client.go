// Package strava is a thin client for the pieces of the Strava API this app
// touches: the OAuth token endpoints and the athlete activity feed.
package strava

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

type Client struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
	HTTPClient   *http.Client
}

func NewClient(clientID, clientSecret string) *Client {
	return &Client{
		BaseURL:      "https://www.strava.com",
		ClientID:     clientID,
		ClientSecret: clientSecret,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Activity is one entry from the athlete activity feed. Distance is meters.
type Activity struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	StartDate time.Time `json:"start_date"`
	Distance  float64   `json:"distance"`
}

// TokenResponse is the payload of both the code-exchange and refresh grants.
type TokenResponse struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	ExpiresAt    int64           `json:"expires_at"`
	Athlete      json.RawMessage `json:"athlete,omitempty"`
}

func (t *TokenResponse) Expiry() time.Time {
	return time.Unix(t.ExpiresAt, 0)
}

// AthleteID extracts the numeric athlete id from the token payload. Refresh
// responses carry no athlete block, in which case this returns "".
func (t *TokenResponse) AthleteID() string {
	if len(t.Athlete) == 0 {
		return ""
	}
	var athlete struct {
		ID int64 `json:"id"`
	}
	if err := json.Unmarshal(t.Athlete, &athlete); err != nil || athlete.ID == 0 {
		return ""
	}
	return strconv.FormatInt(athlete.ID, 10)
}

// ExchangeCode trades an OAuth authorization code for tokens.
func (c *Client) ExchangeCode(ctx context.Context, code string) (*TokenResponse, error) {
	return c.token(ctx, url.Values{
		"client_id":     {c.ClientID},
		"client_secret": {c.ClientSecret},
		"code":          {code},
		"grant_type":    {"authorization_code"},
	})
}

// Refresh obtains a fresh access token from a stored refresh token.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*TokenResponse, error) {
	return c.token(ctx, url.Values{
		"client_id":     {c.ClientID},
		"client_secret": {c.ClientSecret},
		"refresh_token": {refreshToken},
		"grant_type":    {"refresh_token"},
	})
}

func (c *Client) token(ctx context.Context, form url.Values) (*TokenResponse, error) {
	endpoint := fmt.Sprintf("%s/oauth/token", c.BaseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("token request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("token request: unexpected status code: %d", resp.StatusCode)
	}

	var token TokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return nil, fmt.Errorf("decode token response: %w", err)
	}

	return &token, nil
}

// ListActivities fetches the athlete's most recent activities, newest first.
func (c *Client) ListActivities(ctx context.Context, accessToken string, perPage int) ([]Activity, error) {
	endpoint := fmt.Sprintf("%s/api/v3/athlete/activities?per_page=%d", c.BaseURL, perPage)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build activities request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("list activities: unexpected status code: %d", resp.StatusCode)
	}

	var activities []Activity
	if err := json.NewDecoder(resp.Body).Decode(&activities); err != nil {
		return nil, fmt.Errorf("decode activities: %w", err)
	}

	return activities, nil
}
