package triage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chinmai-sd-123/Intelligent-Customer-Support-Ticket-Classification/internal/domain"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"lowercases", "My PAYMENT Failed", "my payment failed"},
		{"collapses runs", "refund\t\t please\n\nnow", "refund please now"},
		{"keeps edges as single space", "  hello  ", " hello "},
		{"unicode spaces", "a\u00a0\u2003b\u3000c", "a b c"},
		{"separator controls", "a\x1cb", "a b"},
		{"final sigma", "\u039f\u0394\u039f\u03a3", "\u03bf\u03b4\u03bf\u03c2"},
		{"whitespace only", " \t\n", " "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	in := "  Need THIS \n resolved   today "
	once := Normalize(in)
	assert.Equal(t, once, Normalize(once))
}

func TestDetectUrgency(t *testing.T) {
	for _, marker := range UrgencyMarkers() {
		t.Run(marker, func(t *testing.T) {
			assert.Equal(t, 1, DetectUrgency("prefix "+strings.ToUpper(marker)+" suffix"))
			assert.Equal(t, 1, DetectUrgency(marker))
		})
	}

	assert.Equal(t, 1, DetectUrgency("This is unacceptable, I need a refund immediately"))
	assert.Equal(t, 1, DetectUrgency("NONURGENTLY"), "markers are raw substrings")
	assert.Equal(t, 0, DetectUrgency("how do I reset my password"))
	assert.Equal(t, 0, DetectUrgency(""))
	assert.Equal(t, 0, DetectUrgency("need this  resolved today"), "whitespace is not collapsed before matching")
}

func TestUrgencyMarkersReturnsCopy(t *testing.T) {
	markers := UrgencyMarkers()
	require.NotEmpty(t, markers)
	markers[0] = "mutated"
	assert.NotEqual(t, "mutated", UrgencyMarkers()[0])
}

func TestRouteDepartment(t *testing.T) {
	tests := map[string]domain.Department{
		"Payment":   domain.DepartmentFinance,
		"Refund":    domain.DepartmentFinance,
		"Technical": domain.DepartmentTechnicalSupport,
		"Account":   domain.DepartmentCustomerSupport,
		"Other":     domain.DepartmentCustomerSupport,
		"Shipping":  domain.DepartmentCustomerSupport,
		"payment":   domain.DepartmentCustomerSupport,
		"":          domain.DepartmentCustomerSupport,
	}
	for category, want := range tests {
		assert.Equal(t, want, RouteDepartment(category), "category %q", category)
	}
}

func TestAssignPriority(t *testing.T) {
	categories := []string{"Payment", "Refund", "Technical", "Account", "Other", "Unknown"}
	for _, category := range categories {
		assert.Equal(t, domain.TicketPriorityHigh, AssignPriority(category, 1), "urgent %s", category)
	}

	assert.Equal(t, domain.TicketPriorityMedium, AssignPriority("Payment", 0))
	assert.Equal(t, domain.TicketPriorityMedium, AssignPriority("Account", 0))
	assert.Equal(t, domain.TicketPriorityLow, AssignPriority("Refund", 0))
	assert.Equal(t, domain.TicketPriorityLow, AssignPriority("Technical", 0))
	assert.Equal(t, domain.TicketPriorityLow, AssignPriority("Other", 0))
	assert.Equal(t, domain.TicketPriorityLow, AssignPriority("Unknown", 0))
}

func TestParseRules(t *testing.T) {
	r, err := parseRules([]byte("urgency_markers: [URGENT]\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"urgent"}, r.UrgencyMarkers)
	assert.Equal(t, domain.DepartmentCustomerSupport, r.DefaultDepartment)

	_, err = parseRules([]byte("routing: {}\n"))
	assert.Error(t, err)

	_, err = parseRules([]byte("urgency_markers: ["))
	assert.Error(t, err)
}
