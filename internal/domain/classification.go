package domain

import "time"

// Urgency is the surfaced form of the binary urgency signal.
type Urgency string

const (
	UrgencyUrgent Urgency = "urgent"
	UrgencyNormal Urgency = "normal"
)

// UrgencyFromSignal maps the detector's 0/1 output onto its surfaced form.
func UrgencyFromSignal(signal int) Urgency {
	if signal == 1 {
		return UrgencyUrgent
	}
	return UrgencyNormal
}

// TicketPriority enumerates derived severity levels.
type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "Low"
	TicketPriorityMedium TicketPriority = "Medium"
	TicketPriorityHigh   TicketPriority = "High"
)

// Department names a team responsible for a ticket.
type Department string

const (
	DepartmentFinance          Department = "Finance"
	DepartmentTechnicalSupport Department = "Technical Support"
	DepartmentCustomerSupport  Department = "Customer Support"
)

// Well-known category labels. The label set itself comes from the loaded decoder.
const (
	CategoryPayment   = "Payment"
	CategoryRefund    = "Refund"
	CategoryTechnical = "Technical"
	CategoryAccount   = "Account"
	CategoryOther     = "Other"
)

// Ticket is raw user-submitted support text.
type Ticket struct {
	Text string
}

// ClassificationResult is the outcome of one pass through the pipeline.
type ClassificationResult struct {
	Category   string
	Urgency    Urgency
	Priority   TicketPriority
	Department Department
}

// ClassificationRecord is an audit row for a served prediction.
type ClassificationRecord struct {
	ID         string
	RequestID  string
	ClientID   *string
	TicketText string
	Category   string
	Urgency    Urgency
	Priority   TicketPriority
	Department Department
	CreatedAt  time.Time
}
