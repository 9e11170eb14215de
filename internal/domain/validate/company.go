package validate

import (
	"fmt"
	"strings"

	"github.com/casestudypilot/casepilot/internal/domain"
)

const (
	confidenceCritical = 0.5
	confidenceWarning  = 0.7
	minCompanyChars    = 2
)

// CompanyName judges an extracted company string. Pass nil generics to use
// the built-in placeholder set; config may extend it.
func CompanyName(name, videoTitle string, confidence float64, generics []string) domain.ValidationResult {
	if generics == nil {
		generics = domain.GenericCompanyNames
	}
	trimmed := strings.TrimSpace(name)

	var checks []domain.ValidationCheck

	checks = append(checks, domain.ValidationCheck{
		Name:     "company_exists",
		Passed:   trimmed != "",
		Severity: domain.SeverityCritical,
		Message:  messageIf(trimmed == "", "No company name provided"),
		Details:  map[string]any{"video_title": videoTitle},
	})

	generic := trimmed == ""
	lower := strings.ToLower(trimmed)
	for _, g := range generics {
		if lower == g {
			generic = true
			break
		}
	}
	checks = append(checks, domain.ValidationCheck{
		Name:     "not_generic",
		Passed:   !generic,
		Severity: domain.SeverityCritical,
		Message:  messageIf(generic, fmt.Sprintf("Company name is generic placeholder: %q", name)),
	})

	checks = append(checks, domain.ValidationCheck{
		Name:     "minimum_length",
		Passed:   len(name) >= minCompanyChars,
		Severity: domain.SeverityCritical,
		Message: messageIf(len(name) < minCompanyChars,
			fmt.Sprintf("Company name too short: %q (%d chars)", name, len(name))),
	})

	// Graduated severity: how badly a low confidence fails depends on the
	// value itself. At INFO the check can never fail a run.
	var sev domain.Severity
	switch {
	case confidence < confidenceCritical:
		sev = domain.SeverityCritical
	case confidence < confidenceWarning:
		sev = domain.SeverityWarning
	default:
		sev = domain.SeverityInfo
	}
	checks = append(checks, domain.ValidationCheck{
		Name:     "confidence_threshold",
		Passed:   confidence >= confidenceWarning,
		Severity: sev,
		Message: messageIf(confidence < confidenceWarning,
			fmt.Sprintf("Low confidence in company extraction: %.2f", confidence)),
		Details: map[string]any{"confidence": confidence},
	})

	return domain.NewResult(checks)
}
