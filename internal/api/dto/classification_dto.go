package dto

import (
	"time"

	"github.com/chinmai-sd-123/Intelligent-Customer-Support-Ticket-Classification/internal/domain"
)

// PredictRequest payload. Ticket is a pointer so an absent key can be told apart.
type PredictRequest struct {
	Ticket *string `json:"ticket"`
}

// PredictResponse is the classification returned to API and form callers.
type PredictResponse struct {
	Category   string                `json:"category"`
	Urgency    domain.Urgency        `json:"urgency"`
	Priority   domain.TicketPriority `json:"priority"`
	Department domain.Department     `json:"department"`
}

// ErrorResponse is the flat error body of the prediction endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewPredictResponse maps a domain result to its wire form.
func NewPredictResponse(result *domain.ClassificationResult) PredictResponse {
	return PredictResponse{
		Category:   result.Category,
		Urgency:    result.Urgency,
		Priority:   result.Priority,
		Department: result.Department,
	}
}

// ClassificationRecordResponse is one audit row.
type ClassificationRecordResponse struct {
	ID         string                `json:"id"`
	RequestID  string                `json:"request_id"`
	ClientID   *string               `json:"client_id"`
	Ticket     string                `json:"ticket"`
	Category   string                `json:"category"`
	Urgency    domain.Urgency        `json:"urgency"`
	Priority   domain.TicketPriority `json:"priority"`
	Department domain.Department     `json:"department"`
	CreatedAt  time.Time             `json:"created_at"`
}
