package triage

import "github.com/chinmai-sd-123/Intelligent-Customer-Support-Ticket-Classification/internal/domain"

// AssignPriority derives priority from category and the urgency signal.
// Urgency is checked first and always wins.
func AssignPriority(category string, urgency int) domain.TicketPriority {
	if urgency != 0 {
		return domain.TicketPriorityHigh
	}
	if _, ok := loadedRules.mediumSet[category]; ok {
		return domain.TicketPriorityMedium
	}
	return domain.TicketPriorityLow
}
