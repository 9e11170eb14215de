package validate

import (
	"fmt"
	"strings"

	"github.com/casestudypilot/casepilot/internal/domain"
)

const (
	minPresenterVideos = 2
	nameMatchCritical  = 0.5
	nameMatchWarning   = 0.8
	conflictSimilarity = 60
	minNameTokenLength = 3
)

// Presenter judges whether a presenter name is trustworthy across a batch of
// fetched videos before a profile is generated from them.
func Presenter(name string, videos domain.MultiVideoData, m domain.TextMatcher) domain.ValidationResult {
	successful := videos.Successful()

	var checks []domain.ValidationCheck

	generic := isGenericPresenterName(name)
	checks = append(checks, domain.ValidationCheck{
		Name:     "not_generic_name",
		Passed:   !generic,
		Severity: domain.SeverityCritical,
		Message:  messageIf(generic, fmt.Sprintf("Presenter name is a generic placeholder: %q", name)),
	})

	checks = append(checks, domain.ValidationCheck{
		Name:     "minimum_videos",
		Passed:   len(successful) >= minPresenterVideos,
		Severity: domain.SeverityCritical,
		Message: messageIf(len(successful) < minPresenterVideos,
			fmt.Sprintf("Only %d successful video(s); a profile needs at least %d", len(successful), minPresenterVideos)),
		Details: map[string]any{"successful_videos": len(successful)},
	})

	checks = append(checks, nameMatchCheck("name_in_videos", name, successful))

	conflicts := conflictingNames(name, successful, m)
	checks = append(checks, domain.ValidationCheck{
		Name:     "no_conflicting_names",
		Passed:   len(conflicts) == 0,
		Severity: domain.SeverityCritical,
		Message: messageIf(len(conflicts) > 0,
			fmt.Sprintf("Conflicting presenter name(s) detected: %v. Videos may belong to a different speaker.", conflicts)),
		Details: map[string]any{"conflicting_names": conflicts},
	})

	return domain.NewResult(checks)
}

// nameMatchCheck builds the graduated name-coverage check shared by the
// presenter and profile-update validators: the severity of a low match rate
// depends on the rate itself.
func nameMatchCheck(checkName, presenter string, videos []domain.VideoRecord) domain.ValidationCheck {
	matched := 0
	for _, v := range videos {
		if videoMentionsName(v, presenter) {
			matched++
		}
	}
	rate := 0.0
	if len(videos) > 0 {
		rate = float64(matched) / float64(len(videos))
	}

	var sev domain.Severity
	switch {
	case rate < nameMatchCritical:
		sev = domain.SeverityCritical
	case rate < nameMatchWarning:
		sev = domain.SeverityWarning
	default:
		sev = domain.SeverityInfo
	}

	msg := ""
	if rate < nameMatchWarning {
		if matched == 0 {
			msg = fmt.Sprintf("Presenter name %q not found in any of %d video(s)", presenter, len(videos))
		} else {
			msg = fmt.Sprintf("Presenter name %q found in only %d of %d video(s) (%.0f%%)",
				presenter, matched, len(videos), rate*100)
		}
	}

	return domain.ValidationCheck{
		Name:     checkName,
		Passed:   rate >= nameMatchWarning,
		Severity: sev,
		Message:  msg,
		Details:  map[string]any{"matched": matched, "total": len(videos), "rate": rate},
	}
}

// videoMentionsName matches the full name or any individual name token
// against the video's title, description, and transcript.
func videoMentionsName(v domain.VideoRecord, name string) bool {
	haystack := strings.ToLower(v.Title + " " + v.Description + " " + v.Transcript)
	full := strings.ToLower(strings.TrimSpace(name))
	if full == "" {
		return false
	}
	if strings.Contains(haystack, full) {
		return true
	}
	for _, token := range strings.Fields(full) {
		if len(token) >= minNameTokenLength && strings.Contains(haystack, token) {
			return true
		}
	}
	return false
}

// conflictingNames extracts speaker-attributed names from the videos and
// returns those too dissimilar from the expected presenter to be the same
// person.
func conflictingNames(expected string, videos []domain.VideoRecord, m domain.TextMatcher) []string {
	seen := map[string]bool{}
	var conflicts []string
	for _, v := range videos {
		for _, text := range []string{v.Title, v.Description, v.Transcript} {
			for _, p := range domain.SpeakerAttributionPatterns {
				for _, match := range p.FindAllStringSubmatch(text, -1) {
					candidate := strings.TrimSpace(match[1])
					if candidate == "" || seen[candidate] {
						continue
					}
					seen[candidate] = true
					if m.TokenSortRatio(strings.ToLower(candidate), strings.ToLower(expected)) < conflictSimilarity {
						conflicts = append(conflicts, candidate)
					}
				}
			}
		}
	}
	return conflicts
}

func isGenericPresenterName(name string) bool {
	lower := strings.ToLower(strings.TrimSpace(name))
	if lower == "" {
		return true
	}
	for _, g := range domain.GenericPresenterNames {
		if lower == g {
			return true
		}
	}
	return false
}
