package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/nicholasjozef-cloud/Pacer/internal/models"
)

type dayLogApplicationService interface {
	GetAll(ctx context.Context, userID uuid.UUID) (map[string]models.DayDetails, error)
	Save(ctx context.Context, userID uuid.UUID, dateKey string, details models.DayDetails) error
}

type DayLogHandler struct {
	service dayLogApplicationService
}

func NewDayLogHandler(service dayLogApplicationService) *DayLogHandler {
	return &DayLogHandler{service: service}
}

func (h *DayLogHandler) GetDays(c *fiber.Ctx) error {
	userID, err := requestUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	days, err := h.service.GetAll(c.Context(), userID)
	if err != nil {
		return mapServiceError(c, err, "Days not found")
	}
	if days == nil {
		days = map[string]models.DayDetails{}
	}

	return c.JSON(fiber.Map{"days": days})
}

func (h *DayLogHandler) UpsertDay(c *fiber.Ctx) error {
	userID, err := requestUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var details models.DayDetails
	if err := c.BodyParser(&details); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	dateKey := c.Params("date")
	if err := h.service.Save(c.Context(), userID, dateKey, details); err != nil {
		return mapServiceError(c, err, "Day not found")
	}

	return c.JSON(fiber.Map{"date": dateKey, "details": details})
}
