package triage

import "strings"

// DetectUrgency returns 1 when any urgency marker occurs in the lowercased text, else 0.
func DetectUrgency(text string) int {
	lower := Lower(text)
	for _, marker := range loadedRules.UrgencyMarkers {
		if strings.Contains(lower, marker) {
			return 1
		}
	}
	return 0
}
