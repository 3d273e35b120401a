package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/nicholasjozef-cloud/Pacer/internal/services"
)

type dashboardApplicationService interface {
	Get(ctx context.Context, userID uuid.UUID) (*services.Dashboard, error)
}

type DashboardHandler struct {
	service dashboardApplicationService
}

func NewDashboardHandler(service dashboardApplicationService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	userID, err := requestUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	dashboard, err := h.service.Get(c.Context(), userID)
	if err != nil {
		return mapServiceError(c, err, "Dashboard not found")
	}

	return c.JSON(fiber.Map{"dashboard": dashboard})
}
