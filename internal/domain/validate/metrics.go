package validate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/casestudypilot/casepilot/internal/domain"
)

const (
	fuzzyMetricThreshold = 85
	maxReportedMetrics   = 5
)

// Metrics cross-checks quantitative claims in generated sections against the
// source transcript. A metric counts as fabricated only when it has neither
// an exact nor a fuzzy match: phrasing variance ("50%" vs "50 percent") is
// expected, so this validator never escalates past WARNING.
func Metrics(sections map[string]string, transcript string, m domain.TextMatcher) domain.ValidationResult {
	text := joinSections(sections)

	var found []string
	for _, p := range domain.MetricPatterns {
		found = append(found, p.FindAllString(text, -1)...)
	}

	chunks := strings.Fields(transcript)
	var fabricated []string
	for _, metric := range found {
		if strings.Contains(transcript, metric) {
			continue
		}
		normalized := strings.NewReplacer(",", "", "$", "").Replace(metric)
		matched := false
		for _, chunk := range chunks {
			if m.PartialRatio(normalized, chunk) > fuzzyMetricThreshold {
				matched = true
				break
			}
		}
		if !matched {
			fabricated = append(fabricated, metric)
		}
	}

	var checks []domain.ValidationCheck
	if len(fabricated) > 0 {
		displayed := fabricated
		if len(displayed) > maxReportedMetrics {
			displayed = displayed[:maxReportedMetrics]
		}
		msg := fmt.Sprintf("Found %d metric(s) in case study that don't appear in transcript: %v",
			len(fabricated), displayed)
		if more := len(fabricated) - maxReportedMetrics; more > 0 {
			msg += fmt.Sprintf(" (and %d more)", more)
		}
		msg += ". Review for accuracy."

		checks = append(checks, domain.ValidationCheck{
			Name:     "metrics_in_transcript",
			Passed:   false,
			Severity: domain.SeverityWarning,
			Message:  msg,
			Details:  map[string]any{"fabricated_metrics": fabricated},
		})
	} else {
		checks = append(checks, domain.ValidationCheck{
			Name:     "metrics_in_transcript",
			Passed:   true,
			Severity: domain.SeverityInfo,
			Message:  "All metrics verified against transcript",
		})
	}

	return domain.NewResult(checks)
}

// joinSections concatenates generated section texts in a stable order.
func joinSections(sections map[string]string) string {
	keys := make([]string, 0, len(sections))
	for k := range sections {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, sections[k])
	}
	return strings.Join(parts, " ")
}
