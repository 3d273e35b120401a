package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/nicholasjozef-cloud/Pacer/internal/models"
	"github.com/nicholasjozef-cloud/Pacer/internal/services"
)

type coachApplicationService interface {
	Chat(ctx context.Context, userID uuid.UUID, message string) (*services.ChatResult, error)
	History(ctx context.Context, userID uuid.UUID) ([]models.ChatMessage, error)
}

type CoachHandler struct {
	service coachApplicationService
}

func NewCoachHandler(service coachApplicationService) *CoachHandler {
	return &CoachHandler{service: service}
}

type chatRequest struct {
	Message string `json:"message"`
}

func (h *CoachHandler) Chat(c *fiber.Ctx) error {
	userID, err := requestUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req chatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	result, err := h.service.Chat(c.Context(), userID, req.Message)
	if err != nil {
		return mapServiceError(c, err, "Conversation not found")
	}

	return c.JSON(fiber.Map{
		"reply":           result.Reply,
		"updates_applied": result.UpdatesApplied,
	})
}

func (h *CoachHandler) History(c *fiber.Ctx) error {
	userID, err := requestUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	messages, err := h.service.History(c.Context(), userID)
	if err != nil {
		return mapServiceError(c, err, "Conversation not found")
	}
	if messages == nil {
		messages = []models.ChatMessage{}
	}

	return c.JSON(fiber.Map{"messages": messages})
}
