package validate

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/casestudypilot/casepilot/internal/domain"
)

// Quality scoring weights for the case study scorer.
var qualityWeights = map[string]float64{
	"structure":         0.25,
	"content_depth":     0.35,
	"cncf_mentions":     0.15,
	"formatting":        0.10,
	"format_compliance": 0.15,
}

var requiredCaseStudySections = []string{"Overview", "Challenge", "Solution", "Impact", "Conclusion"}

var minWordsPerSection = map[string]int{
	"Overview":   50,
	"Challenge":  100,
	"Solution":   150,
	"Impact":     100,
	"Conclusion": 50,
}

// DefaultQualityThreshold is the case study quality floor used when the
// caller does not supply one.
const DefaultQualityThreshold = 0.60

var (
	sectionHeaderRe = regexp.MustCompile(`(?ms)^##\s+(.+?)\s*$`)
	markdownNoiseRe = regexp.MustCompile("[*_`#\\[\\]()]")
	boldMetricRe    = regexp.MustCompile(`\*\*\d+[%x]?\*\*`)
)

// CaseStudyQuality scores a generated case study document on five weighted
// factors and compares the combined score against the caller-supplied
// threshold. This is the same multi-factor pattern as PresenterProfile with
// unequal weights.
func CaseStudyQuality(path string, threshold float64) domain.ValidationResult {
	if threshold <= 0 {
		threshold = DefaultQualityThreshold
	}

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
	sections := extractSections(content)

	structureScore, missingSections := scoreStructure(sections)
	depthScore, depthIssues := scoreContentDepth(sections)
	cncfScore, mentioned := scoreCNCFMentions(content)
	formatScore, formatIssues := scoreFormatting(content)

	// Format compliance folds the format validator's verdict into the score.
	formatResult := CaseStudyFormat(path)
	var complianceScore float64
	switch formatResult.Status {
	case domain.SeverityPass:
		complianceScore = 1.0
	case domain.SeverityWarning:
		complianceScore = 0.5
	default:
		complianceScore = 0.0
	}

	score := roundScore(structureScore*qualityWeights["structure"] +
		depthScore*qualityWeights["content_depth"] +
		cncfScore*qualityWeights["cncf_mentions"] +
		formatScore*qualityWeights["formatting"] +
		complianceScore*qualityWeights["format_compliance"])

	var checks []domain.ValidationCheck

	checks = append(checks, domain.ValidationCheck{
		Name:     "structure",
		Passed:   len(missingSections) == 0,
		Severity: auditSeverity(len(missingSections) == 0),
		Message:  messageIf(len(missingSections) > 0, fmt.Sprintf("Missing sections: %s", strings.Join(missingSections, ", "))),
		Details:  map[string]any{"score": roundScore(structureScore), "missing_sections": missingSections},
	})

	checks = append(checks, domain.ValidationCheck{
		Name:     "content_depth",
		Passed:   len(depthIssues) == 0,
		Severity: auditSeverity(len(depthIssues) == 0),
		Message:  messageIf(len(depthIssues) > 0, strings.Join(depthIssues, "; ")),
		Details:  map[string]any{"score": roundScore(depthScore), "issues": depthIssues},
	})

	checks = append(checks, domain.ValidationCheck{
		Name:     "cncf_mentions",
		Passed:   len(mentioned) >= 2,
		Severity: auditSeverity(len(mentioned) >= 2),
		Message: messageIf(len(mentioned) < 2,
			fmt.Sprintf("Only %d CNCF project(s) mentioned (minimum 2)", len(mentioned))),
		Details: map[string]any{"score": roundScore(cncfScore), "mentioned_projects": mentioned},
	})

	checks = append(checks, domain.ValidationCheck{
		Name:     "formatting",
		Passed:   len(formatIssues) <= 1,
		Severity: auditSeverity(len(formatIssues) <= 1),
		Message:  messageIf(len(formatIssues) > 1, strings.Join(formatIssues, "; ")),
		Details:  map[string]any{"score": roundScore(formatScore), "issues": formatIssues},
	})

	checks = append(checks, domain.ValidationCheck{
		Name:     "format_compliance",
		Passed:   formatResult.Status == domain.SeverityPass,
		Severity: auditSeverity(formatResult.Status == domain.SeverityPass),
		Message:  messageIf(formatResult.Status != domain.SeverityPass, "Image path or timestamp link violations detected"),
		Details:  map[string]any{"score": complianceScore, "validation": formatResult},
	})

	var sev domain.Severity
	switch {
	case score < threshold:
		sev = domain.SeverityCritical
	case score < threshold+warningBandWidth:
		sev = domain.SeverityWarning
	default:
		sev = domain.SeverityPass
	}
	checks = append(checks, domain.ValidationCheck{
		Name:     "overall_score",
		Passed:   sev == domain.SeverityPass,
		Severity: sev,
		Message:  fmt.Sprintf("Overall quality score: %.2f (threshold: %.2f)", score, threshold),
		Details:  map[string]any{"score": score, "threshold": threshold},
	})

	return domain.NewResult(checks)
}

// auditSeverity keeps failed quality factors at WARNING: only the overall
// score gates the pipeline.
func auditSeverity(passed bool) domain.Severity {
	if passed {
		return domain.SeverityInfo
	}
	return domain.SeverityWarning
}

// extractSections splits markdown content on "## " headers.
func extractSections(content string) map[string]string {
	sections := map[string]string{}
	locs := sectionHeaderRe.FindAllStringSubmatchIndex(content, -1)
	for i, loc := range locs {
		name := strings.TrimSpace(content[loc[2]:loc[3]])
		bodyStart := loc[1]
		bodyEnd := len(content)
		if i+1 < len(locs) {
			bodyEnd = locs[i+1][0]
		}
		sections[name] = strings.TrimSpace(content[bodyStart:bodyEnd])
	}
	return sections
}

func countWords(text string) int {
	return len(strings.Fields(markdownNoiseRe.ReplaceAllString(text, "")))
}

func scoreStructure(sections map[string]string) (float64, []string) {
	var missing []string
	for _, required := range requiredCaseStudySections {
		if _, ok := sections[required]; !ok {
			missing = append(missing, required)
		}
	}
	return 1.0 - float64(len(missing))/float64(len(requiredCaseStudySections)), missing
}

func scoreContentDepth(sections map[string]string) (float64, []string) {
	var issues []string
	penalty := 0.0
	for _, name := range requiredCaseStudySections {
		minWords := minWordsPerSection[name]
		content, ok := sections[name]
		if !ok {
			issues = append(issues, fmt.Sprintf("%s: missing", name))
			penalty += 0.25
			continue
		}
		if words := countWords(content); words < minWords {
			issues = append(issues, fmt.Sprintf("%s: %d words (minimum %d)", name, words, minWords))
			penalty += 0.2
		}
	}
	score := 1.0 - penalty
	if score < 0 {
		score = 0
	}
	return score, issues
}

func scoreCNCFMentions(content string) (float64, []string) {
	var mentioned []string
	for _, project := range domain.CNCFProjects {
		if strings.Contains(content, project) {
			mentioned = append(mentioned, project)
		}
	}
	switch {
	case len(mentioned) >= 3:
		return 1.0, mentioned
	case len(mentioned) == 2:
		return 0.8, mentioned
	case len(mentioned) == 1:
		return 0.5, mentioned
	default:
		return 0.0, mentioned
	}
}

func scoreFormatting(content string) (float64, []string) {
	var issues []string
	if !boldMetricRe.MatchString(content) {
		issues = append(issues, "No bold metrics found")
	}
	if !strings.Contains(content, "- ") && !strings.Contains(content, "* ") {
		issues = append(issues, "No bullet lists found")
	}
	if !strings.Contains(content, "[") || !strings.Contains(content, "](") {
		issues = append(issues, "No links found")
	}
	score := 1.0 - float64(len(issues))*0.2
	if score < 0 {
		score = 0
	}
	return score, issues
}
