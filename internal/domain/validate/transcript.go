// Package validate implements the quality gates run at each stage of the
// case study and presenter profile pipelines. Every validator is a pure
// function over in-memory pipeline artifacts: it runs an ordered list of
// named checks and derives its overall status through
// domain.AggregateStatus. Domain-quality problems are reported as failed
// checks, never as errors.
package validate

import (
	"fmt"
	"strings"

	"github.com/casestudypilot/casepilot/internal/domain"
)

const (
	minTranscriptChars   = 1000
	minTranscriptWords   = 100
	minTranscriptSegs    = 50
	shortTranscriptChars = 5000
)

// Transcript judges raw transcript quality before any generation happens.
// A too-short or segment-starved transcript reliably produces hallucinated
// output downstream, so those floors are CRITICAL.
func Transcript(transcript string, segments []domain.Segment) domain.ValidationResult {
	var checks []domain.ValidationCheck

	checks = append(checks, domain.ValidationCheck{
		Name:     "transcript_exists",
		Passed:   transcript != "",
		Severity: domain.SeverityCritical,
		Message:  messageIf(transcript == "", "Transcript is empty"),
	})

	length := len(transcript)
	checks = append(checks, domain.ValidationCheck{
		Name:     "minimum_length",
		Passed:   length >= minTranscriptChars,
		Severity: domain.SeverityCritical,
		Message: messageIf(length < minTranscriptChars,
			fmt.Sprintf("Transcript too short: %d chars (minimum: %d)", length, minTranscriptChars)),
		Details: map[string]any{"length": length, "minimum": minTranscriptChars},
	})

	words := len(strings.Fields(transcript))
	checks = append(checks, domain.ValidationCheck{
		Name:     "meaningful_content",
		Passed:   words >= minTranscriptWords,
		Severity: domain.SeverityCritical,
		Message: messageIf(words < minTranscriptWords,
			fmt.Sprintf("Transcript lacks meaningful content: only %d words", words)),
		Details: map[string]any{"word_count": words},
	})

	checks = append(checks, domain.ValidationCheck{
		Name:     "sufficient_segments",
		Passed:   len(segments) >= minTranscriptSegs,
		Severity: domain.SeverityCritical,
		Message: messageIf(len(segments) < minTranscriptSegs,
			fmt.Sprintf("Too few transcript segments: %d (minimum: %d)", len(segments), minTranscriptSegs)),
		Details: map[string]any{"segment_count": len(segments)},
	})

	// Non-blocking signal, independent of the critical floors: a transcript
	// under 5000 chars tends to yield shallow case studies.
	if transcript != "" && length < shortTranscriptChars {
		checks = append(checks, domain.ValidationCheck{
			Name:     "short_transcript",
			Passed:   false,
			Severity: domain.SeverityWarning,
			Message:  fmt.Sprintf("Short transcript (%d chars). Generated case study may lack detail.", length),
			Details:  map[string]any{"length": length},
		})
	}

	return domain.NewResult(checks)
}

func messageIf(cond bool, msg string) string {
	if cond {
		return msg
	}
	return ""
}
