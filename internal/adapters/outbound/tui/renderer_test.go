package tui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/casestudypilot/casepilot/internal/adapters/outbound/tui"
	"github.com/casestudypilot/casepilot/internal/domain"
)

func TestRenderResult(t *testing.T) {
	result := domain.NewResult([]domain.ValidationCheck{
		{Name: "transcript_exists", Passed: true, Severity: domain.SeverityCritical},
		{Name: "minimum_length", Passed: false, Severity: domain.SeverityCritical, Message: "Transcript too short"},
	})

	out := tui.RenderResult("transcript", result)
	assert.Contains(t, out, "casepilot")
	assert.Contains(t, out, "transcript validation")
	assert.Contains(t, out, "transcript_exists")
	assert.Contains(t, out, "minimum_length")
	assert.Contains(t, out, "Transcript too short")
	assert.Contains(t, out, "CRITICAL")
}

func TestRenderHistory_Empty(t *testing.T) {
	out := tui.RenderHistory(nil)
	assert.Contains(t, out, "No validation history")
}

func TestRenderHistory_TruncatesHash(t *testing.T) {
	out := tui.RenderHistory([]domain.RunEntry{{
		Validator:  "quality",
		Target:     "case-study.md",
		Status:     domain.SeverityPass,
		CommitHash: "0123456789abcdef0123456789abcdef01234567",
	}})
	assert.Contains(t, out, "01234567")
	assert.NotContains(t, out, "0123456789")
}
