package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/chinmai-sd-123/Intelligent-Customer-Support-Ticket-Classification/internal/config"
	"github.com/chinmai-sd-123/Intelligent-Customer-Support-Ticket-Classification/internal/domain"
	"github.com/chinmai-sd-123/Intelligent-Customer-Support-Ticket-Classification/internal/events"
)

// NotificationService emits notifications for classified tickets.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventTicketClassified, n.handleTicketClassified)
}

func (n *NotificationService) handleTicketClassified(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.TicketClassifiedPayload)
	if !ok {
		return nil
	}
	n.logger.Info("TicketClassified",
		zap.String("request_id", event.RequestID),
		zap.String("category", payload.Category),
		zap.String("urgency", string(payload.Urgency)),
		zap.String("priority", string(payload.Priority)),
		zap.String("department", string(payload.Department)),
		zap.Bool("cached", payload.Cached))

	if payload.Priority != domain.TicketPriorityHigh {
		return nil
	}
	n.sendEmailNotificationStub(ctx, event, payload)
	n.sendWebhookNotificationStub(ctx, event, payload)
	return nil
}

func (n *NotificationService) sendEmailNotificationStub(ctx context.Context, event events.Event, payload events.TicketClassifiedPayload) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Debug("sendEmailNotificationStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("department", string(payload.Department)),
		zap.String("request_id", event.RequestID))
}

func (n *NotificationService) sendWebhookNotificationStub(ctx context.Context, event events.Event, payload events.TicketClassifiedPayload) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("department", string(payload.Department)),
		zap.String("request_id", event.RequestID))
}
