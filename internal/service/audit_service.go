package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/chinmai-sd-123/Intelligent-Customer-Support-Ticket-Classification/internal/domain"
	"github.com/chinmai-sd-123/Intelligent-Customer-Support-Ticket-Classification/internal/events"
	"github.com/chinmai-sd-123/Intelligent-Customer-Support-Ticket-Classification/internal/repository"
	apperrors "github.com/chinmai-sd-123/Intelligent-Customer-Support-Ticket-Classification/pkg/util/errorutil"
)

const (
	defaultRecentLimit = 20
	maxRecentLimit     = 200
)

// AuditService records served predictions for later review and retraining.
type AuditService struct {
	dispatcher events.Dispatcher
	records    repository.ClassificationRepository
}

// NewAuditService creates the service.
func NewAuditService(dispatcher events.Dispatcher, records repository.ClassificationRepository) *AuditService {
	return &AuditService{dispatcher: dispatcher, records: records}
}

// RegisterHandlers subscribes to events.
func (a *AuditService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	a.dispatcher.Subscribe(events.EventTicketClassified, a.handleTicketClassified)
}

func (a *AuditService) handleTicketClassified(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.TicketClassifiedPayload)
	if !ok {
		return fmt.Errorf("audit: unexpected payload %T", event.Payload)
	}
	record := &domain.ClassificationRecord{
		ID:         uuid.NewString(),
		RequestID:  event.RequestID,
		ClientID:   event.ClientID,
		TicketText: payload.TicketText,
		Category:   payload.Category,
		Urgency:    payload.Urgency,
		Priority:   payload.Priority,
		Department: payload.Department,
	}
	if err := a.records.Create(ctx, record); err != nil {
		return fmt.Errorf("audit: %w", err)
	}
	return nil
}

// Recent returns the latest audit rows, newest first. Limit is clamped to [1,200].
func (a *AuditService) Recent(ctx context.Context, limit int) ([]domain.ClassificationRecord, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	if limit > maxRecentLimit {
		limit = maxRecentLimit
	}
	records, err := a.records.ListRecent(ctx, limit)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return records, nil
}
