package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/nicholasjozef-cloud/Pacer/internal/models"
	"github.com/nicholasjozef-cloud/Pacer/pkg/utils"
)

type stubUserStore struct {
	byEmail    *models.User
	byEmailErr error
	byID       *models.User
	byIDErr    error
	created    *models.User
	createErr  error
}

func (s *stubUserStore) CreateUser(_ context.Context, user *models.User) error {
	if s.createErr != nil {
		return s.createErr
	}
	user.ID = testUserID
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	s.created = user
	return nil
}

func (s *stubUserStore) GetByEmail(_ context.Context, _ string) (*models.User, error) {
	if s.byEmailErr != nil {
		return nil, s.byEmailErr
	}
	return s.byEmail, nil
}

func (s *stubUserStore) GetByID(_ context.Context, _ uuid.UUID) (*models.User, error) {
	if s.byIDErr != nil {
		return nil, s.byIDErr
	}
	return s.byID, nil
}

const testJWTSecret = "test-secret"

func TestRegisterCreatesUserAndIssuesToken(t *testing.T) {
	store := &stubUserStore{byEmailErr: pgx.ErrNoRows}
	handler := NewAuthHandler(store, testJWTSecret)

	app := fiber.New()
	app.Post("/api/auth/register", handler.Register)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(`{
		"email": "Runner@Example.com",
		"password": "correct horse"
	}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if store.created == nil || store.created.Email != "runner@example.com" {
		t.Fatalf("expected lowercased email stored, got %+v", store.created)
	}
	if !utils.CheckPassword("correct horse", store.created.PasswordHash) {
		t.Fatal("stored hash does not match password")
	}

	var body struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	claims, err := utils.ValidateToken(body.Token, testJWTSecret)
	if err != nil {
		t.Fatalf("issued token invalid: %v", err)
	}
	if claims.UserID != testUserID.String() {
		t.Fatalf("unexpected claim subject: %q", claims.UserID)
	}
}

func TestRegisterRejectsShortPasswordAndBadEmail(t *testing.T) {
	handler := NewAuthHandler(&stubUserStore{}, testJWTSecret)

	app := fiber.New()
	app.Post("/api/auth/register", handler.Register)

	for _, payload := range []string{
		`{"email": "runner@example.com", "password": "short"}`,
		`{"email": "not-an-email", "password": "long enough"}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		resp.Body.Close()

		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("expected 400 for %s, got %d", payload, resp.StatusCode)
		}
	}
}

func TestRegisterConflictsOnExistingEmail(t *testing.T) {
	store := &stubUserStore{byEmail: &models.User{ID: testUserID, Email: "runner@example.com"}}
	handler := NewAuthHandler(store, testJWTSecret)

	app := fiber.New()
	app.Post("/api/auth/register", handler.Register)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(`{
		"email": "runner@example.com",
		"password": "long enough"
	}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409, got %d", resp.StatusCode)
	}
}

func TestLoginChecksPassword(t *testing.T) {
	hash, err := utils.HashPassword("correct horse")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	store := &stubUserStore{byEmail: &models.User{ID: testUserID, Email: "runner@example.com", PasswordHash: hash}}
	handler := NewAuthHandler(store, testJWTSecret)

	app := fiber.New()
	app.Post("/api/auth/login", handler.Login)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{
		"email": "runner@example.com",
		"password": "correct horse"
	}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{
		"email": "runner@example.com",
		"password": "wrong horse"
	}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestMeReturnsCurrentUser(t *testing.T) {
	store := &stubUserStore{byID: &models.User{ID: testUserID, Email: "runner@example.com"}}
	handler := NewAuthHandler(store, testJWTSecret)

	app := newAuthedApp()
	app.Get("/api/auth/me", handler.Me)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body struct {
		User struct {
			Email string `json:"email"`
		} `json:"user"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.User.Email != "runner@example.com" {
		t.Fatalf("unexpected user payload: %+v", body)
	}
}
