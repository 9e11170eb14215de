package validate

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/casestudypilot/casepilot/internal/domain"
)

const (
	minBiographyChars   = 100
	shortBiographyChars = 300
)

// Biography judges an extracted presenter biography record.
func Biography(b domain.Biography) domain.ValidationResult {
	var checks []domain.ValidationCheck

	var missingRequired []string
	if strings.TrimSpace(b.FullName) == "" {
		missingRequired = append(missingRequired, "full_name")
	}
	if strings.TrimSpace(b.Biography) == "" {
		missingRequired = append(missingRequired, "biography")
	}
	checks = append(checks, domain.ValidationCheck{
		Name:     "required_fields",
		Passed:   len(missingRequired) == 0,
		Severity: domain.SeverityCritical,
		Message:  messageIf(len(missingRequired) > 0, fmt.Sprintf("Missing required fields: %v", missingRequired)),
		Details:  map[string]any{"missing_fields": missingRequired},
	})

	placeholderName := matchesAny(b.FullName, domain.PlaceholderNamePatterns)
	checks = append(checks, domain.ValidationCheck{
		Name:     "no_placeholder_name",
		Passed:   !placeholderName,
		Severity: domain.SeverityCritical,
		Message:  messageIf(placeholderName, fmt.Sprintf("Name is a placeholder: %q", b.FullName)),
	})

	length := len(b.Biography)
	checks = append(checks, domain.ValidationCheck{
		Name:     "minimum_biography_length",
		Passed:   length >= minBiographyChars,
		Severity: domain.SeverityCritical,
		Message: messageIf(length < minBiographyChars,
			fmt.Sprintf("Biography too short: %d chars (minimum: %d)", length, minBiographyChars)),
		Details: map[string]any{"length": length, "minimum": minBiographyChars},
	})

	// Independent depth signal above the hard floor, like short_transcript.
	if length >= minBiographyChars && length < shortBiographyChars {
		checks = append(checks, domain.ValidationCheck{
			Name:     "biography_depth",
			Passed:   false,
			Severity: domain.SeverityWarning,
			Message:  fmt.Sprintf("Biography is brief: %d chars. Profile may lack depth below %d chars.", length, shortBiographyChars),
			Details:  map[string]any{"length": length},
		})
	}

	placeholderBio := matchesAny(b.Biography, domain.PlaceholderTextPatterns)
	checks = append(checks, domain.ValidationCheck{
		Name:     "no_placeholder_bio",
		Passed:   !placeholderBio,
		Severity: domain.SeverityCritical,
		Message:  messageIf(placeholderBio, "Biography contains placeholder text"),
	})

	var missingOptional []string
	for field, value := range map[string]string{
		"location":        b.Location,
		"current_role":    b.CurrentRole,
		"github_username": b.GithubUsername,
	} {
		if strings.TrimSpace(value) == "" {
			missingOptional = append(missingOptional, field)
		}
	}
	sort.Strings(missingOptional)
	if len(missingOptional) > 0 {
		checks = append(checks, domain.ValidationCheck{
			Name:     "optional_fields",
			Passed:   false,
			Severity: domain.SeverityWarning,
			Message:  fmt.Sprintf("Missing optional fields: %v", missingOptional),
			Details:  map[string]any{"missing_fields": missingOptional},
		})
	}

	return domain.NewResult(checks)
}

func matchesAny(s string, patterns []*regexp.Regexp) bool {
	for _, p := range patterns {
		if p.MatchString(s) {
			return true
		}
	}
	return false
}
