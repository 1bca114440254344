package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/chinmai-sd-123/Intelligent-Customer-Support-Ticket-Classification/internal/domain"
	"github.com/chinmai-sd-123/Intelligent-Customer-Support-Ticket-Classification/internal/events"
	"github.com/chinmai-sd-123/Intelligent-Customer-Support-Ticket-Classification/internal/observability"
	"github.com/chinmai-sd-123/Intelligent-Customer-Support-Ticket-Classification/internal/repository"
	"github.com/chinmai-sd-123/Intelligent-Customer-Support-Ticket-Classification/internal/triage"
	apperrors "github.com/chinmai-sd-123/Intelligent-Customer-Support-Ticket-Classification/pkg/util/errorutil"
)

// Predictor maps normalized ticket text to a category name.
type Predictor interface {
	Predict(text string) (string, error)
}

// ClassificationService runs the ticket triage pipeline.
type ClassificationService struct {
	model      Predictor
	cache      repository.PredictionCache
	dispatcher events.Dispatcher
	metrics    *observability.Metrics
	logger     *zap.Logger
}

// ClassificationDependencies bundles collaborators. Only Model is required.
type ClassificationDependencies struct {
	Model      Predictor
	Cache      repository.PredictionCache
	Dispatcher events.Dispatcher
	Metrics    *observability.Metrics
	Logger     *zap.Logger
}

// ClassifyInput is one ticket to classify.
type ClassifyInput struct {
	Text      string
	RequestID string
	ClientID  *string
}

// NewClassificationService constructs the service.
func NewClassificationService(deps ClassificationDependencies) *ClassificationService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClassificationService{
		model:      deps.Model,
		cache:      deps.Cache,
		dispatcher: deps.Dispatcher,
		metrics:    deps.Metrics,
		logger:     logger,
	}
}

// Classify predicts the category of the ticket text and derives urgency, priority
// and department from it. The model sees normalized text; urgency is detected on
// the text as given.
func (s *ClassificationService) Classify(ctx context.Context, input ClassifyInput) (*domain.ClassificationResult, error) {
	result, cached := s.lookup(ctx, input.Text)
	if !cached {
		category, err := s.model.Predict(triage.Normalize(input.Text))
		if err != nil {
			return nil, apperrors.NewInternalError(err)
		}
		urgency := triage.DetectUrgency(input.Text)
		result = &domain.ClassificationResult{
			Category:   category,
			Urgency:    domain.UrgencyFromSignal(urgency),
			Priority:   triage.AssignPriority(category, urgency),
			Department: triage.RouteDepartment(category),
		}
		s.store(ctx, input.Text, result)
	}

	s.metrics.RecordPrediction(result.Category, string(result.Urgency))
	s.publish(ctx, input, result, cached)
	return result, nil
}

func (s *ClassificationService) lookup(ctx context.Context, text string) (*domain.ClassificationResult, bool) {
	if s.cache == nil {
		return nil, false
	}
	result, ok, err := s.cache.Get(ctx, text)
	if err != nil {
		s.logger.Warn("prediction cache lookup failed", zap.Error(err))
		return nil, false
	}
	s.metrics.RecordCacheLookup(ok)
	return result, ok
}

func (s *ClassificationService) store(ctx context.Context, text string, result *domain.ClassificationResult) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, text, result); err != nil {
		s.logger.Warn("prediction cache store failed", zap.Error(err))
	}
}

func (s *ClassificationService) publish(ctx context.Context, input ClassifyInput, result *domain.ClassificationResult, cached bool) {
	if s.dispatcher == nil {
		return
	}
	event := events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventTicketClassified,
		RequestID: input.RequestID,
		ClientID:  input.ClientID,
		Timestamp: time.Now().UTC(),
		Payload: events.TicketClassifiedPayload{
			TicketText: input.Text,
			Category:   result.Category,
			Urgency:    result.Urgency,
			Priority:   result.Priority,
			Department: result.Department,
			Cached:     cached,
		},
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("ticket_classified handlers failed", zap.String("request_id", input.RequestID), zap.Error(err))
	}
}
