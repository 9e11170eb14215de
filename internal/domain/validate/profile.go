package validate

import (
	"fmt"
	"math"
	"strings"

	"github.com/casestudypilot/casepilot/internal/domain"
)

// ProfileUpdate judges a new video batch fetched to extend an existing
// presenter profile.
func ProfileUpdate(p domain.Profile, videos domain.MultiVideoData) domain.ValidationResult {
	successful := videos.Successful()

	var checks []domain.ValidationCheck

	checks = append(checks, domain.ValidationCheck{
		Name:     "has_new_videos",
		Passed:   len(successful) >= 1,
		Severity: domain.SeverityCritical,
		Message:  messageIf(len(successful) == 0, "No successful new videos to add to the profile"),
		Details:  map[string]any{"successful_videos": len(successful)},
	})

	checks = append(checks, nameMatchCheck("name_consistency", p.Name, successful))

	processed := map[string]bool{}
	for _, id := range p.VideoIDsProcessed {
		processed[id] = true
	}
	var duplicates []string
	for _, v := range successful {
		if v.VideoID != "" && processed[v.VideoID] {
			duplicates = append(duplicates, v.VideoID)
		}
	}
	if len(duplicates) > 0 {
		checks = append(checks, domain.ValidationCheck{
			Name:     "no_duplicates",
			Passed:   false,
			Severity: domain.SeverityWarning,
			Message:  fmt.Sprintf("Video(s) already in profile: %v", duplicates),
			Details:  map[string]any{"duplicate_video_ids": duplicates},
		})
	}

	areas := make([]string, 0, len(p.ExpertiseAreas))
	for _, a := range p.ExpertiseAreas {
		areas = append(areas, a.Area)
	}
	checks = append(checks, domain.ValidationCheck{
		Name:     "expertise_areas",
		Passed:   true,
		Severity: domain.SeverityInfo,
		Message:  fmt.Sprintf("Profile currently covers %d expertise area(s)", len(areas)),
		Details:  map[string]any{"expertise_areas": areas},
	})

	return domain.NewResult(checks)
}

// Profile quality scoring: five factors, equal weight, one score in [0,1].

const (
	profileFactorWeight = 0.2
	fullBiographyChars  = 500
	fullTalkCount       = 5
	fullExpertiseItems  = 5
	minProfileTalks     = 2
	warningBandWidth    = 0.15

	// DefaultProfileThreshold is the quality floor used when the caller does
	// not supply one.
	DefaultProfileThreshold = 0.60
)

var requiredProfileSections = []string{
	"overview", "expertise", "talk_highlights", "key_themes", "stats_table",
}

// PresenterProfile scores a fully assembled profile document on five equally
// weighted quality factors and compares the combined score against the
// caller-supplied threshold. Scores below the threshold are CRITICAL; scores
// within 0.15 above it degrade to WARNING.
func PresenterProfile(p domain.ProfileDocument, threshold float64) domain.ValidationResult {
	if threshold <= 0 {
		threshold = DefaultProfileThreshold
	}

	var checks []domain.ValidationCheck

	// Factor 1: structure completeness.
	sections := map[string]string{
		"overview":        p.Overview,
		"expertise":       p.Expertise,
		"talk_highlights": p.TalkHighlights,
		"key_themes":      p.KeyThemes,
		"stats_table":     p.StatsTable,
	}
	var missingSections []string
	for _, name := range requiredProfileSections {
		if strings.TrimSpace(sections[name]) == "" {
			missingSections = append(missingSections, name)
		}
	}
	structureScore := float64(len(requiredProfileSections)-len(missingSections)) / float64(len(requiredProfileSections))
	checks = append(checks, factorCheck("structure_completeness", structureScore,
		len(missingSections) == 0, domain.SeverityCritical,
		messageIf(len(missingSections) > 0, fmt.Sprintf("Missing profile sections: %v", missingSections))))

	// Factor 2: biography depth. A thin biography lowers the score but never
	// gates on its own; only overall_quality decides.
	bioLen := len(p.Biography)
	bioScore := capScore(float64(bioLen) / fullBiographyChars)
	bioMsg := ""
	switch {
	case bioLen < minBiographyChars:
		bioMsg = fmt.Sprintf("Biography too short: %d chars (minimum: %d)", bioLen, minBiographyChars)
	case bioLen < shortBiographyChars:
		bioMsg = fmt.Sprintf("Biography is brief: %d chars", bioLen)
	}
	checks = append(checks, factorCheck("biography_depth", bioScore,
		bioLen >= shortBiographyChars, domain.SeverityWarning, bioMsg))

	// Factor 3: talk coverage.
	talks := len(p.TalkSummaries)
	talkScore := capScore(float64(talks) / fullTalkCount)
	checks = append(checks, factorCheck("talk_coverage", talkScore,
		talks >= minProfileTalks, domain.SeverityCritical,
		messageIf(talks < minProfileTalks, fmt.Sprintf("Too few talks: %d (minimum: %d)", talks, minProfileTalks))))

	// Factor 4: expertise identification.
	items := len(p.ExpertiseAreas) + len(p.CNCFProjects)
	expertiseScore := capScore(float64(items) / fullExpertiseItems)
	checks = append(checks, factorCheck("expertise_identification", expertiseScore,
		len(p.CNCFProjects) >= 1, domain.SeverityCritical,
		messageIf(len(p.CNCFProjects) == 0, "No CNCF projects identified across the presenter's talks")))

	// Factor 5: factual consistency (placeholder scan over all prose).
	prose := strings.Join([]string{p.Overview, p.Expertise, p.TalkHighlights, p.KeyThemes, p.Biography}, " ")
	clean := !matchesAny(prose, domain.PlaceholderTextPatterns)
	factualScore := 0.0
	if clean {
		factualScore = 1.0
	}
	checks = append(checks, factorCheck("factual_consistency", factualScore,
		clean, domain.SeverityCritical,
		messageIf(!clean, "Profile contains placeholder text")))

	score := roundScore(profileFactorWeight * (structureScore + bioScore + talkScore + expertiseScore + factualScore))

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
		Name:     "overall_quality",
		Passed:   sev == domain.SeverityPass,
		Severity: sev,
		Message:  fmt.Sprintf("Overall quality score: %.2f (threshold: %.2f)", score, threshold),
		Details: map[string]any{
			"score":     score,
			"threshold": threshold,
			"factors": map[string]float64{
				"structure_completeness":   structureScore,
				"biography_depth":          bioScore,
				"talk_coverage":            talkScore,
				"expertise_identification": expertiseScore,
				"factual_consistency":      factualScore,
			},
		},
	})

	return domain.NewResult(checks)
}

// factorCheck emits one scored quality factor. Passing factors are INFO so an
// all-good profile serializes without warning-level noise.
func factorCheck(name string, score float64, passed bool, failSev domain.Severity, msg string) domain.ValidationCheck {
	sev := domain.SeverityInfo
	if !passed {
		sev = failSev
	}
	return domain.ValidationCheck{
		Name:     name,
		Passed:   passed,
		Severity: sev,
		Message:  msg,
		Details:  map[string]any{"score": roundScore(score), "weight": profileFactorWeight},
	}
}

func capScore(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < 0 {
		return 0
	}
	return v
}

func roundScore(v float64) float64 {
	return math.Round(v*100) / 100
}
