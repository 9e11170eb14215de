package validate

import (
	"fmt"

	"github.com/casestudypilot/casepilot/internal/domain"
)

const minSectionChars = 100

// Analysis judges the structured topic/metric/section extraction an analysis
// step produced from a transcript.
func Analysis(a domain.Analysis) domain.ValidationResult {
	var checks []domain.ValidationCheck

	missing := a.MissingKeys()
	checks = append(checks, domain.ValidationCheck{
		Name:     "required_keys",
		Passed:   len(missing) == 0,
		Severity: domain.SeverityCritical,
		Message:  messageIf(len(missing) > 0, fmt.Sprintf("Missing required keys: %v", missing)),
		Details:  map[string]any{"missing_keys": missing},
	})

	checks = append(checks, domain.ValidationCheck{
		Name:     "has_cncf_projects",
		Passed:   len(a.CNCFProjects) >= 1,
		Severity: domain.SeverityCritical,
		Message: messageIf(len(a.CNCFProjects) == 0,
			"No CNCF projects identified. Cannot generate case study without cloud-native technology mentions."),
		Details: map[string]any{"project_count": len(a.CNCFProjects)},
	})

	if len(a.CNCFProjects) == 1 {
		checks = append(checks, domain.ValidationCheck{
			Name:     "multiple_projects",
			Passed:   false,
			Severity: domain.SeverityWarning,
			Message:  fmt.Sprintf("Only 1 CNCF project found: %s. Case study may lack technical depth.", a.CNCFProjects[0].Name()),
			Details:  map[string]any{"project_count": 1},
		})
	}

	var missingSections []string
	for _, s := range domain.RequiredAnalysisSections {
		if a.Sections[s] == "" {
			missingSections = append(missingSections, s)
		}
	}
	checks = append(checks, domain.ValidationCheck{
		Name:     "all_sections_present",
		Passed:   len(missingSections) == 0,
		Severity: domain.SeverityCritical,
		Message:  messageIf(len(missingSections) > 0, fmt.Sprintf("Missing required sections: %v", missingSections)),
		Details:  map[string]any{"missing_sections": missingSections},
	})

	for _, name := range domain.RequiredAnalysisSections {
		content, ok := a.Sections[name]
		if !ok {
			continue
		}
		checks = append(checks, domain.ValidationCheck{
			Name:     fmt.Sprintf("section_%s_length", name),
			Passed:   len(content) >= minSectionChars,
			Severity: domain.SeverityCritical,
			Message: messageIf(len(content) < minSectionChars,
				fmt.Sprintf("Section %q too short: %d chars (minimum: %d)", name, len(content), minSectionChars)),
			Details: map[string]any{"section": name, "length": len(content)},
		})
	}

	if len(a.KeyMetrics) == 0 {
		checks = append(checks, domain.ValidationCheck{
			Name:     "has_metrics",
			Passed:   false,
			Severity: domain.SeverityWarning,
			Message:  "No quantitative metrics found. Case study will lack measurable impact data.",
			Details:  map[string]any{"metric_count": 0},
		})
	}

	return domain.NewResult(checks)
}
