package handlers

import (
	"errors"
	"strings"

	websocket "github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	insightws "github.com/nicholasjozef-cloud/Pacer/internal/websocket"
	"github.com/nicholasjozef-cloud/Pacer/pkg/utils"
)

// InsightHandler upgrades authenticated clients onto the one-way insight feed.
type InsightHandler struct {
	hub       *insightws.Hub
	jwtSecret string
}

func NewInsightHandler(hub *insightws.Hub, jwtSecret string) *InsightHandler {
	return &InsightHandler{
		hub:       hub,
		jwtSecret: jwtSecret,
	}
}

func (h *InsightHandler) WebSocketAuth(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return c.Status(fiber.StatusUpgradeRequired).JSON(fiber.Map{"error": "WebSocket upgrade required"})
	}

	claims, err := h.parseWSClaims(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid or expired token"})
	}

	c.Locals("user_id", claims.UserID)
	return c.Next()
}

func (h *InsightHandler) HandleWebSocket(conn *websocket.Conn) {
	userID, _ := conn.Locals("user_id").(string)
	client := insightws.NewClient(h.hub, conn, userID)

	h.hub.Register(client)
	go client.WritePump()
	client.ReadPump()
}

// parseWSClaims accepts the token from the query string, the usual path for
// browser WebSocket clients, falling back to the Authorization header.
func (h *InsightHandler) parseWSClaims(c *fiber.Ctx) (*utils.Claims, error) {
	tokenString := strings.TrimSpace(c.Query("token"))
	if tokenString == "" {
		authHeader := strings.TrimSpace(c.Get("Authorization"))
		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				tokenString = parts[1]
			}
		}
	}

	if tokenString == "" {
		return nil, errors.New("missing token")
	}

	return utils.ValidateToken(tokenString, h.jwtSecret)
}
