package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/chinmai-sd-123/Intelligent-Customer-Support-Ticket-Classification/internal/api/dto"
	"github.com/chinmai-sd-123/Intelligent-Customer-Support-Ticket-Classification/internal/domain"
	"github.com/chinmai-sd-123/Intelligent-Customer-Support-Ticket-Classification/internal/service"
)

// ClassificationsHandler lists the audit trail.
type ClassificationsHandler struct {
	audit *service.AuditService
}

// NewClassificationsHandler constructs handler.
func NewClassificationsHandler(auditService *service.AuditService) *ClassificationsHandler {
	return &ClassificationsHandler{audit: auditService}
}

// ListRecent GET /classifications.
func (h *ClassificationsHandler) ListRecent(c *fiber.Ctx) error {
	records, err := h.audit.Recent(c.UserContext(), parseInt(c.Query("limit"), 0))
	if err != nil {
		return err
	}
	items := make([]dto.ClassificationRecordResponse, 0, len(records))
	for i := range records {
		items = append(items, classificationRecordResponse(&records[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

func classificationRecordResponse(record *domain.ClassificationRecord) dto.ClassificationRecordResponse {
	return dto.ClassificationRecordResponse{
		ID:         record.ID,
		RequestID:  record.RequestID,
		ClientID:   record.ClientID,
		Ticket:     record.TicketText,
		Category:   record.Category,
		Urgency:    record.Urgency,
		Priority:   record.Priority,
		Department: record.Department,
		CreatedAt:  record.CreatedAt,
	}
}

func parseInt(val string, def int) int {
	if val == "" {
		return def
	}
	parsed, err := strconv.Atoi(val)
	if err != nil || parsed <= 0 {
		return def
	}
	return parsed
}
