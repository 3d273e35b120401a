package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/nicholasjozef-cloud/Pacer/internal/models"
)

type settingsApplicationService interface {
	Get(ctx context.Context, userID uuid.UUID) (models.UserSettings, error)
	Save(ctx context.Context, userID uuid.UUID, settings models.UserSettings) (models.UserSettings, error)
}

type SettingsHandler struct {
	service settingsApplicationService
}

func NewSettingsHandler(service settingsApplicationService) *SettingsHandler {
	return &SettingsHandler{service: service}
}

func (h *SettingsHandler) GetSettings(c *fiber.Ctx) error {
	userID, err := requestUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	settings, err := h.service.Get(c.Context(), userID)
	if err != nil {
		return mapServiceError(c, err, "Settings not found")
	}

	return c.JSON(fiber.Map{"settings": settings})
}

func (h *SettingsHandler) UpdateSettings(c *fiber.Ctx) error {
	userID, err := requestUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var settings models.UserSettings
	if err := c.BodyParser(&settings); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	saved, err := h.service.Save(c.Context(), userID, settings)
	if err != nil {
		return mapServiceError(c, err, "Settings not found")
	}

	return c.JSON(fiber.Map{"settings": saved})
}
