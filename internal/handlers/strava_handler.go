package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/nicholasjozef-cloud/Pacer/internal/models"
)

type stravaApplicationService interface {
	Connect(ctx context.Context, userID uuid.UUID, code string) (*models.StravaConnection, error)
	Connection(ctx context.Context, userID uuid.UUID) (*models.StravaConnection, error)
	Disconnect(ctx context.Context, userID uuid.UUID) error
	Sync(ctx context.Context, userID uuid.UUID) (int, error)
}

type StravaHandler struct {
	service stravaApplicationService
}

func NewStravaHandler(service stravaApplicationService) *StravaHandler {
	return &StravaHandler{service: service}
}

type stravaConnectRequest struct {
	Code string `json:"code"`
}

func (h *StravaHandler) Connect(c *fiber.Ctx) error {
	userID, err := requestUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req stravaConnectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	conn, err := h.service.Connect(c.Context(), userID, req.Code)
	if err != nil {
		return mapServiceError(c, err, "Connection not found")
	}

	return c.JSON(fiber.Map{"connection": conn})
}

func (h *StravaHandler) Status(c *fiber.Ctx) error {
	userID, err := requestUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	conn, err := h.service.Connection(c.Context(), userID)
	if err != nil {
		return mapServiceError(c, err, "Connection not found")
	}

	return c.JSON(fiber.Map{"connection": conn})
}

func (h *StravaHandler) Disconnect(c *fiber.Ctx) error {
	userID, err := requestUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	if err := h.service.Disconnect(c.Context(), userID); err != nil {
		return mapServiceError(c, err, "Connection not found")
	}

	return c.JSON(fiber.Map{"disconnected": true})
}

func (h *StravaHandler) Sync(c *fiber.Ctx) error {
	userID, err := requestUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	updated, err := h.service.Sync(c.Context(), userID)
	if err != nil {
		return mapServiceError(c, err, "Connection not found")
	}

	return c.JSON(fiber.Map{"updated": updated})
}
