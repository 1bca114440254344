package events

import (
	"time"

	"github.com/chinmai-sd-123/Intelligent-Customer-Support-Ticket-Classification/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTicketClassified EventType = "ticket_classified"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	RequestID string      `json:"request_id"`
	ClientID  *string     `json:"client_id,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// TicketClassifiedPayload payload.
type TicketClassifiedPayload struct {
	TicketText string                `json:"ticket_text"`
	Category   string                `json:"category"`
	Urgency    domain.Urgency        `json:"urgency"`
	Priority   domain.TicketPriority `json:"priority"`
	Department domain.Department     `json:"department"`
	Cached     bool                  `json:"cached"`
}
