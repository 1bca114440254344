package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chinmai-sd-123/Intelligent-Customer-Support-Ticket-Classification/internal/domain"
	"github.com/chinmai-sd-123/Intelligent-Customer-Support-Ticket-Classification/internal/events"
)

type memoryRecords struct {
	created   []domain.ClassificationRecord
	lastLimit int
	err       error
}

func (r *memoryRecords) Create(_ context.Context, record *domain.ClassificationRecord) error {
	if r.err != nil {
		return r.err
	}
	record.CreatedAt = time.Now()
	r.created = append(r.created, *record)
	return nil
}

func (r *memoryRecords) ListRecent(_ context.Context, limit int) ([]domain.ClassificationRecord, error) {
	r.lastLimit = limit
	if r.err != nil {
		return nil, r.err
	}
	return r.created, nil
}

func TestAuditRecordsClassifications(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	records := &memoryRecords{}
	NewAuditService(dispatcher, records).RegisterHandlers()

	svc := NewClassificationService(ClassificationDependencies{Model: newKeywordModel(), Dispatcher: dispatcher})
	_, err := svc.Classify(context.Background(), ClassifyInput{Text: "refund asap", RequestID: "req-9"})
	require.NoError(t, err)

	require.Len(t, records.created, 1)
	rec := records.created[0]
	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, "req-9", rec.RequestID)
	assert.Nil(t, rec.ClientID)
	assert.Equal(t, "refund asap", rec.TicketText)
	assert.Equal(t, "Refund", rec.Category)
	assert.Equal(t, domain.UrgencyUrgent, rec.Urgency)
	assert.Equal(t, domain.TicketPriorityHigh, rec.Priority)
	assert.Equal(t, domain.DepartmentFinance, rec.Department)
}

func TestAuditFailureDoesNotFailClassification(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	NewAuditService(dispatcher, &memoryRecords{err: errors.New("db down")}).RegisterHandlers()

	svc := NewClassificationService(ClassificationDependencies{Model: newKeywordModel(), Dispatcher: dispatcher})
	_, err := svc.Classify(context.Background(), ClassifyInput{Text: "refund"})
	assert.NoError(t, err)
}

func TestAuditRecentClampsLimit(t *testing.T) {
	records := &memoryRecords{}
	audit := NewAuditService(nil, records)
	ctx := context.Background()

	_, err := audit.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 20, records.lastLimit)

	_, err = audit.Recent(ctx, 5000)
	require.NoError(t, err)
	assert.Equal(t, 200, records.lastLimit)

	_, err = audit.Recent(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, records.lastLimit)
}
