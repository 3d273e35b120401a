package handlers

import (
	"context"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/nicholasjozef-cloud/Pacer/internal/models"
	"github.com/nicholasjozef-cloud/Pacer/internal/services"
)

type planApplicationService interface {
	GetPlan(ctx context.Context, userID uuid.UUID) (models.TrainingPlan, error)
	UpdateWorkout(ctx context.Context, userID uuid.UUID, week int, day string, input services.WorkoutUpdateInput) (*models.Workout, error)
}

type PlanHandler struct {
	service planApplicationService
}

func NewPlanHandler(service planApplicationService) *PlanHandler {
	return &PlanHandler{service: service}
}

func (h *PlanHandler) GetPlan(c *fiber.Ctx) error {
	userID, err := requestUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	plan, err := h.service.GetPlan(c.Context(), userID)
	if err != nil {
		return mapServiceError(c, err, "Plan not found")
	}

	return c.JSON(fiber.Map{"plan": plan})
}

type updateWorkoutRequest struct {
	Type    *string  `json:"type"`
	Planned *float64 `json:"planned"`
	Actual  *float64 `json:"actual"`
	Pace    *string  `json:"pace"`
}

func (h *PlanHandler) UpdateWorkout(c *fiber.Ctx) error {
	userID, err := requestUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	week, err := strconv.Atoi(c.Params("week"))
	if err != nil || week < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid week"})
	}
	day := c.Params("day")
	if day == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid day"})
	}

	var req updateWorkoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	workout, err := h.service.UpdateWorkout(c.Context(), userID, week, day, services.WorkoutUpdateInput{
		Type:    req.Type,
		Planned: req.Planned,
		Actual:  req.Actual,
		Pace:    req.Pace,
	})
	if err != nil {
		return mapServiceError(c, err, "Workout not found")
	}

	return c.JSON(fiber.Map{"workout": workout})
}
