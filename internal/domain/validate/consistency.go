package validate

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/casestudypilot/casepilot/internal/domain"
)

// CompanyConsistency detects generated content that drifted onto the wrong
// company, which happens when generation runs over degraded or empty
// transcript input. Pass nil known to use the built-in allow-list.
//
// All matching is word-boundary anchored: substring matching would flag
// "Uber" inside "Kubernetes".
func CompanyConsistency(expected string, sections map[string]string, video domain.VideoMetadata, known []string) domain.ValidationResult {
	if known == nil {
		known = domain.KnownCompanies
	}
	text := joinSections(sections)

	var checks []domain.ValidationCheck

	expectedMentions := countMentions(text, expected)
	checks = append(checks, domain.ValidationCheck{
		Name:     "expected_company_mentioned",
		Passed:   expectedMentions > 0,
		Severity: domain.SeverityCritical,
		Message: messageIf(expectedMentions == 0,
			fmt.Sprintf("Expected company %q not mentioned in generated case study", expected)),
		Details: map[string]any{"video_id": video.VideoID},
	})

	otherCounts := map[string]int{}
	for _, company := range known {
		if strings.EqualFold(company, expected) {
			continue
		}
		if n := countMentions(text, company); n > 0 {
			otherCounts[company] = n
		}
	}

	if len(otherCounts) > 0 {
		topCompany, topCount := "", 0
		names := make([]string, 0, len(otherCounts))
		for company, n := range otherCounts {
			names = append(names, company)
			if n > topCount || (n == topCount && company < topCompany) {
				topCompany, topCount = company, n
			}
		}
		sort.Strings(names)

		if topCount > expectedMentions {
			// The actual hallucination signal: the content is about someone
			// else.
			checks = append(checks, domain.ValidationCheck{
				Name:     "company_mismatch",
				Passed:   false,
				Severity: domain.SeverityCritical,
				Message: fmt.Sprintf(
					"Company mismatch: expected %q (%d mentions) but case study appears to be about %q (%d mentions). Stopping to prevent incorrect attribution.",
					expected, expectedMentions, topCompany, topCount),
				Details: map[string]any{
					"expected":          expected,
					"expected_mentions": expectedMentions,
					"other_companies":   otherCounts,
				},
			})
		} else {
			checks = append(checks, domain.ValidationCheck{
				Name:     "other_companies_mentioned",
				Passed:   false,
				Severity: domain.SeverityWarning,
				Message: fmt.Sprintf(
					"Other companies mentioned: %v. Verify they are partners/competitors, not primary subject.", names),
				Details: map[string]any{"other_companies": otherCounts},
			})
		}
	}

	return domain.NewResult(checks)
}

// countMentions counts case-insensitive word-boundary occurrences of name in
// text.
func countMentions(text, name string) int {
	if strings.TrimSpace(name) == "" {
		return 0
	}
	re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(name) + `\b`)
	return len(re.FindAllStringIndex(text, -1))
}
