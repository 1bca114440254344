package worker

import (
	"github.com/chinmai-sd-123/Intelligent-Customer-Support-Ticket-Classification/internal/service"
)

// StartNotificationWorker registers notification handlers.
func StartNotificationWorker(notificationService *service.NotificationService) {
	if notificationService == nil {
		return
	}
	notificationService.RegisterHandlers()
}

// StartAuditWorker registers the audit recorder. A nil service means auditing is off.
func StartAuditWorker(auditService *service.AuditService) {
	if auditService == nil {
		return
	}
	auditService.RegisterHandlers()
}
