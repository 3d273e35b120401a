package models

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessage is one turn of the coach conversation, role "user" or "assistant".
type ChatMessage struct {
	ID        int64     `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Insight is a one-way notification pushed to connected clients, e.g. the
// outcome of a Strava sync.
type Insight struct {
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Sentiment string    `json:"sentiment"`
	Timestamp time.Time `json:"timestamp"`
}
