package handlers

import (
	"context"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/nicholasjozef-cloud/Pacer/internal/models"
)

type nutritionApplicationService interface {
	Log(ctx context.Context, userID uuid.UUID, carbs, protein, fats int) (*models.NutritionEntry, error)
	List(ctx context.Context, userID uuid.UUID, limit int) ([]models.NutritionEntry, error)
}

type NutritionHandler struct {
	service nutritionApplicationService
}

func NewNutritionHandler(service nutritionApplicationService) *NutritionHandler {
	return &NutritionHandler{service: service}
}

type logNutritionRequest struct {
	Carbs   int `json:"carbs"`
	Protein int `json:"protein"`
	Fats    int `json:"fats"`
}

func (h *NutritionHandler) LogEntry(c *fiber.Ctx) error {
	userID, err := requestUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req logNutritionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	entry, err := h.service.Log(c.Context(), userID, req.Carbs, req.Protein, req.Fats)
	if err != nil {
		return mapServiceError(c, err, "Entry not found")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"entry": entry})
}

func (h *NutritionHandler) ListEntries(c *fiber.Ctx) error {
	userID, err := requestUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	limit, _ := strconv.Atoi(c.Query("limit"))
	entries, err := h.service.List(c.Context(), userID, limit)
	if err != nil {
		return mapServiceError(c, err, "Entries not found")
	}
	if entries == nil {
		entries = []models.NutritionEntry{}
	}

	return c.JSON(fiber.Map{"entries": entries})
}
