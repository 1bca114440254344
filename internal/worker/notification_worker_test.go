package worker

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/chinmai-sd-123/Intelligent-Customer-Support-Ticket-Classification/internal/config"
	"github.com/chinmai-sd-123/Intelligent-Customer-Support-Ticket-Classification/internal/domain"
	"github.com/chinmai-sd-123/Intelligent-Customer-Support-Ticket-Classification/internal/events"
	"github.com/chinmai-sd-123/Intelligent-Customer-Support-Ticket-Classification/internal/service"
)

func TestNotificationWorkerLogsClassifications(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	dispatcher := events.NewInMemoryDispatcher()
	StartNotificationWorker(service.NewNotificationService(dispatcher, zap.New(core), config.NotificationConfig{
		WebhookURL: "https://hooks.example.com/urgent",
	}))

	publish := func(priority domain.TicketPriority) {
		_ = dispatcher.Publish(context.Background(), events.Event{
			Type:      events.EventTicketClassified,
			RequestID: "req",
			Payload: events.TicketClassifiedPayload{
				Category: "Refund",
				Priority: priority,
			},
		})
	}

	publish(domain.TicketPriorityLow)
	assert.Equal(t, 1, logs.FilterMessage("TicketClassified").Len())
	assert.Zero(t, logs.FilterMessage("sendWebhookNotificationStub").Len())

	publish(domain.TicketPriorityHigh)
	assert.Equal(t, 2, logs.FilterMessage("TicketClassified").Len())
	assert.Equal(t, 1, logs.FilterMessage("sendWebhookNotificationStub").Len())
	assert.Zero(t, logs.FilterMessage("sendEmailNotificationStub").Len(), "no sender configured")
}

func TestStartWorkersToleratesNil(t *testing.T) {
	StartNotificationWorker(nil)
	StartAuditWorker(nil)
}
