package validate_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casestudypilot/casepilot/internal/domain"
	"github.com/casestudypilot/casepilot/internal/domain/validate"
)

// goodTranscript builds a transcript of roughly n chars made of real words.
func goodTranscript(n int) string {
	var b strings.Builder
	for b.Len() < n {
		b.WriteString("we migrated our platform to kubernetes and prometheus ")
	}
	return b.String()[:n]
}

func goodSegments(n int) []domain.Segment {
	segs := make([]domain.Segment, n)
	for i := range segs {
		segs[i] = domain.Segment{Start: float64(i) * 5, Duration: 5}
	}
	return segs
}

func findCheck(t *testing.T, r domain.ValidationResult, name string) domain.ValidationCheck {
	t.Helper()
	for _, c := range r.Checks {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("check %q not found in %+v", name, r.Checks)
	return domain.ValidationCheck{}
}

func hasCheck(r domain.ValidationResult, name string) bool {
	for _, c := range r.Checks {
		if c.Name == name {
			return true
		}
	}
	return false
}

func TestTranscript_Empty(t *testing.T) {
	r := validate.Transcript("", nil)
	assert.Equal(t, domain.SeverityCritical, r.Status)
	assert.False(t, findCheck(t, r, "transcript_exists").Passed)
	// The short-transcript signal only applies to non-empty transcripts.
	assert.False(t, hasCheck(r, "short_transcript"))
}

func TestTranscript_LengthBoundary(t *testing.T) {
	r := validate.Transcript(goodTranscript(999), goodSegments(50))
	assert.False(t, findCheck(t, r, "minimum_length").Passed)
	assert.Equal(t, domain.SeverityCritical, r.Status)

	r = validate.Transcript(goodTranscript(1000), goodSegments(50))
	assert.True(t, findCheck(t, r, "minimum_length").Passed)
}

func TestTranscript_SegmentBoundary(t *testing.T) {
	r := validate.Transcript(goodTranscript(6000), goodSegments(49))
	assert.False(t, findCheck(t, r, "sufficient_segments").Passed)
	assert.Equal(t, domain.SeverityCritical, r.Status)

	r = validate.Transcript(goodTranscript(6000), goodSegments(50))
	assert.True(t, findCheck(t, r, "sufficient_segments").Passed)
	assert.Equal(t, domain.SeverityPass, r.Status)
}

func TestTranscript_MeaningfulContent(t *testing.T) {
	// Over 1000 chars but a single giant token: fails the word floor.
	r := validate.Transcript(strings.Repeat("x", 2000), goodSegments(50))
	assert.False(t, findCheck(t, r, "meaningful_content").Passed)
	assert.Equal(t, domain.SeverityCritical, r.Status)
}

func TestTranscript_ShortTranscriptWarning(t *testing.T) {
	r := validate.Transcript(goodTranscript(4999), goodSegments(50))
	require.True(t, hasCheck(r, "short_transcript"))
	assert.Equal(t, domain.SeverityWarning, r.Status)
	assert.True(t, r.HasWarnings())

	r = validate.Transcript(goodTranscript(5000), goodSegments(50))
	assert.False(t, hasCheck(r, "short_transcript"))
	assert.Equal(t, domain.SeverityPass, r.Status)
}
