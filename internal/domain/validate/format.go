package validate

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/casestudypilot/casepilot/internal/domain"
)

var (
	absoluteImageRe = regexp.MustCompile(`!\[.*?\]\(case-studies/images/`)
	clickableRe     = regexp.MustCompile(`\[!\[.*?\]\(images/.*?\)\]\(https://www\.youtube\.com/watch\?v=.*?&t=\d+s\)`)
	anyImageLineRe  = regexp.MustCompile(`!\[.*?\]\((case-studies/)?images/`)
	clickableLineRe = regexp.MustCompile(`\[!\[.*?\]\((case-studies/)?images/.*?\)\]\(https?://`)
	timestampRe     = regexp.MustCompile(`&t=(-?\d+)s`)
)

// CaseStudyFormat checks markdown link and image conventions of a generated
// case study document. An unreadable file is reported as a failed
// file_exists check that short-circuits the remaining checks, since they are
// meaningless against absent content.
func CaseStudyFormat(path string) domain.ValidationResult {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.NewResult([]domain.ValidationCheck{{
			Name:     "file_exists",
			Passed:   false,
			Severity: domain.SeverityCritical,
			Message:  fmt.Sprintf("Case study file not found: %s", path),
		}})
	}
	content := string(data)

	checks := []domain.ValidationCheck{{
		Name:     "file_exists",
		Passed:   true,
		Severity: domain.SeverityInfo,
		Message:  "Case study file exists",
	}}

	// Images must be referenced relative to the case-studies directory, not
	// from the repo root.
	absolute := absoluteImageRe.FindAllString(content, -1)
	if len(absolute) > 0 {
		checks = append(checks, domain.ValidationCheck{
			Name:     "relative_image_paths",
			Passed:   false,
			Severity: domain.SeverityCritical,
			Message: fmt.Sprintf(
				"Found %d image(s) with absolute paths (case-studies/images/...). Images must use relative paths (images/...) from the case-studies/ directory.",
				len(absolute)),
			Details: map[string]any{"absolute_paths_found": len(absolute)},
		})
	} else {
		checks = append(checks, domain.ValidationCheck{
			Name:     "relative_image_paths",
			Passed:   true,
			Severity: domain.SeverityInfo,
			Message:  "All image paths are relative",
		})
	}

	// A screenshot is only acceptable when wrapped in a link to the video
	// timestamp. Discriminate per line: the clickable pattern contains the
	// bare image pattern, so presence alone proves nothing.
	clickable := clickableRe.FindAllString(content, -1)
	var bareLines []string
	for _, line := range strings.Split(content, "\n") {
		if anyImageLineRe.MatchString(line) && !clickableLineRe.MatchString(line) {
			bareLines = append(bareLines, strings.TrimSpace(line))
		}
	}

	switch {
	case len(bareLines) > 0:
		checks = append(checks, domain.ValidationCheck{
			Name:     "clickable_screenshot_links",
			Passed:   false,
			Severity: domain.SeverityCritical,
			Message: fmt.Sprintf(
				"Found %d non-clickable screenshot(s). Screenshots must be wrapped in clickable links to video timestamps: [![...](image)](video&t=XXs)",
				len(bareLines)),
			Details: map[string]any{"non_clickable_count": len(bareLines)},
		})
	case len(clickable) > 0:
		checks = append(checks, domain.ValidationCheck{
			Name:     "clickable_screenshot_links",
			Passed:   true,
			Severity: domain.SeverityInfo,
			Message:  fmt.Sprintf("All %d screenshot(s) are clickable links to video timestamps", len(clickable)),
			Details:  map[string]any{"clickable_count": len(clickable)},
		})
	default:
		// No screenshots at all is fine: they are optional.
		checks = append(checks, domain.ValidationCheck{
			Name:     "clickable_screenshot_links",
			Passed:   true,
			Severity: domain.SeverityInfo,
			Message:  "No screenshots found in case study",
		})
	}

	if len(clickable) > 0 {
		var timestamps, invalid []int
		for _, m := range timestampRe.FindAllStringSubmatch(content, -1) {
			t, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			timestamps = append(timestamps, t)
			if t < 0 {
				invalid = append(invalid, t)
			}
		}
		if len(invalid) == 0 {
			checks = append(checks, domain.ValidationCheck{
				Name:     "valid_timestamps",
				Passed:   true,
				Severity: domain.SeverityInfo,
				Message:  fmt.Sprintf("All %d timestamp(s) are valid", len(timestamps)),
				Details:  map[string]any{"timestamps": timestamps},
			})
		} else {
			checks = append(checks, domain.ValidationCheck{
				Name:     "valid_timestamps",
				Passed:   false,
				Severity: domain.SeverityCritical,
				Message:  fmt.Sprintf("Found %d invalid timestamp(s): %v", len(invalid), invalid),
				Details:  map[string]any{"invalid_timestamps": invalid},
			})
		}
	}

	return domain.NewResult(checks)
}
