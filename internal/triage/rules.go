// Package triage holds the deterministic rules applied around the classifier:
// text normalization, urgency detection, department routing and priority assignment.
package triage

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/chinmai-sd-123/Intelligent-Customer-Support-Ticket-Classification/internal/domain"
)

//go:embed rules.yaml
var embeddedRules []byte

type rules struct {
	UrgencyMarkers           []string                     `yaml:"urgency_markers"`
	Routing                  map[string]domain.Department `yaml:"routing"`
	DefaultDepartment        domain.Department            `yaml:"default_department"`
	MediumPriorityCategories []string                     `yaml:"medium_priority_categories"`

	mediumSet map[string]struct{}
}

var loadedRules = mustLoadRules(embeddedRules)

func mustLoadRules(raw []byte) *rules {
	r, err := parseRules(raw)
	if err != nil {
		panic(err)
	}
	return r
}

func parseRules(raw []byte) (*rules, error) {
	var r rules
	if err := yaml.Unmarshal(raw, &r); err != nil {
		return nil, fmt.Errorf("triage rules: %w", err)
	}
	if len(r.UrgencyMarkers) == 0 {
		return nil, fmt.Errorf("triage rules: no urgency markers")
	}
	for i, marker := range r.UrgencyMarkers {
		r.UrgencyMarkers[i] = strings.ToLower(marker)
	}
	if r.DefaultDepartment == "" {
		r.DefaultDepartment = domain.DepartmentCustomerSupport
	}
	if r.Routing == nil {
		r.Routing = map[string]domain.Department{}
	}
	r.mediumSet = make(map[string]struct{}, len(r.MediumPriorityCategories))
	for _, category := range r.MediumPriorityCategories {
		r.mediumSet[category] = struct{}{}
	}
	return &r, nil
}

// UrgencyMarkers returns a copy of the phrases that flag a ticket as urgent.
func UrgencyMarkers() []string {
	return append([]string(nil), loadedRules.UrgencyMarkers...)
}
