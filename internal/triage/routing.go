package triage

import "github.com/chinmai-sd-123/Intelligent-Customer-Support-Ticket-Classification/internal/domain"

// RouteDepartment maps a category to the team that handles it.
func RouteDepartment(category string) domain.Department {
	if dept, ok := loadedRules.Routing[category]; ok {
		return dept
	}
	return loadedRules.DefaultDepartment
}
