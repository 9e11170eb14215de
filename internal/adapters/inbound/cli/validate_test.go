package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casestudypilot/casepilot/internal/adapters/inbound/cli"
	"github.com/casestudypilot/casepilot/internal/adapters/outbound/history"
	"github.com/casestudypilot/casepilot/internal/domain"
)

func writeArtifact(t *testing.T, dir, name string, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func goodTranscriptArtifact() domain.TranscriptArtifact {
	text := strings.Repeat("we migrated our platform to kubernetes and prometheus ", 120)
	segments := make([]domain.Segment, 60)
	for i := range segments {
		segments[i] = domain.Segment{Start: float64(i) * 5, Duration: 5}
	}
	return domain.TranscriptArtifact{Transcript: text, Segments: segments}
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestValidateTranscript_PassingJSON(t *testing.T) {
	repo := t.TempDir()
	path := writeArtifact(t, repo, "transcript.json", goodTranscriptArtifact())

	out, err := runCommand(t, "validate", "transcript", path, "--json", "--repo", repo)
	require.NoError(t, err)

	var result domain.ValidationResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, domain.SeverityPass, result.Status)
}

func TestValidateTranscript_CriticalReturnsExitError(t *testing.T) {
	repo := t.TempDir()
	path := writeArtifact(t, repo, "transcript.json", domain.TranscriptArtifact{Transcript: "too short"})

	_, err := runCommand(t, "validate", "transcript", path, "--json", "--repo", repo)
	assert.ErrorContains(t, err, "exit code 2")
}

func TestValidateTranscript_MissingFile(t *testing.T) {
	repo := t.TempDir()
	_, err := runCommand(t, "validate", "transcript", filepath.Join(repo, "nope.json"), "--repo", repo)
	assert.ErrorContains(t, err, "reading")
}

func TestValidateTranscript_WritesOutputFile(t *testing.T) {
	repo := t.TempDir()
	path := writeArtifact(t, repo, "transcript.json", goodTranscriptArtifact())
	outFile := filepath.Join(repo, "result.json")

	_, err := runCommand(t, "validate", "transcript", path, "--json", "--repo", repo, "-o", outFile)
	require.NoError(t, err)

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	var result domain.ValidationResult
	require.NoError(t, json.Unmarshal(data, &result))
	assert.Equal(t, domain.SeverityPass, result.Status)
}

func TestValidateTranscript_RecordsHistory(t *testing.T) {
	repo := t.TempDir()
	path := writeArtifact(t, repo, "transcript.json", goodTranscriptArtifact())

	_, err := runCommand(t, "validate", "transcript", path, "--json", "--repo", repo)
	require.NoError(t, err)

	entries, err := history.New().Load(repo)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "transcript", entries[0].Validator)
	assert.Equal(t, domain.SeverityPass, entries[0].Status)
}

func TestValidateTranscript_HistoryDisabled(t *testing.T) {
	repo := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(repo, ".casepilot.yaml"),
		[]byte("history_enabled: false\n"), 0644))
	path := writeArtifact(t, repo, "transcript.json", goodTranscriptArtifact())

	_, err := runCommand(t, "validate", "transcript", path, "--json", "--repo", repo)
	require.NoError(t, err)

	entries, err := history.New().Load(repo)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestValidateCompany_CriticalOnGenericName(t *testing.T) {
	repo := t.TempDir()
	path := writeArtifact(t, repo, "extraction.json", domain.CompanyExtraction{
		CompanyName: "unknown",
		VideoTitle:  "Some talk",
		Confidence:  0.9,
	})

	out, err := runCommand(t, "validate", "company", path, "--json", "--repo", repo)
	assert.ErrorContains(t, err, "exit code 2")

	var result domain.ValidationResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, domain.SeverityCritical, result.Status)
}

func TestValidateCompany_ConfigExtendsGenerics(t *testing.T) {
	repo := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(repo, ".casepilot.yaml"),
		[]byte("extra_generic_names:\n  - acme\n"), 0644))
	path := writeArtifact(t, repo, "extraction.json", domain.CompanyExtraction{
		CompanyName: "Acme",
		Confidence:  0.9,
	})

	_, err := runCommand(t, "validate", "company", path, "--json", "--repo", repo)
	assert.ErrorContains(t, err, "exit code 2")
}

func TestValidateConsistency_WarningExitCode(t *testing.T) {
	repo := t.TempDir()
	path := writeArtifact(t, repo, "casestudy.json", domain.CaseStudyArtifact{
		ExpectedCompany: "Spotify",
		Sections: map[string]string{
			"overview": "Spotify adopted Kubernetes. Spotify partnered with Netflix.",
		},
	})

	_, err := runCommand(t, "validate", "consistency", path, "--json", "--repo", repo)
	assert.ErrorContains(t, err, "exit code 1")
}

func TestValidateAnalysis_Passing(t *testing.T) {
	repo := t.TempDir()
	long := strings.Repeat("The team adopted cloud native tooling at scale. ", 4)
	path := writeArtifact(t, repo, "analysis.json", map[string]any{
		"cncf_projects": []any{"Kubernetes", map[string]any{"name": "Prometheus"}},
		"key_metrics":   []any{"40% cost reduction"},
		"sections": map[string]string{
			"background": long, "challenge": long, "solution": long, "impact": long,
		},
	})

	out, err := runCommand(t, "validate", "analysis", path, "--json", "--repo", repo)
	require.NoError(t, err)
	assert.Contains(t, out, `"status": "PASS"`)
}

func TestValidateBiography_TUIOutput(t *testing.T) {
	repo := t.TempDir()
	path := writeArtifact(t, repo, "bio.json", domain.Biography{
		FullName:  "Jane Doe",
		Biography: strings.Repeat("Jane builds platforms. ", 20),
	})

	out, err := runCommand(t, "validate", "biography", path, "--repo", repo)
	// Optional fields are missing: WARNING maps to exit code 1.
	assert.ErrorContains(t, err, "exit code 1")
	assert.Contains(t, out, "optional_fields")
}

func TestHistoryCommand(t *testing.T) {
	repo := t.TempDir()
	require.NoError(t, history.New().Save(repo, domain.RunEntry{
		Timestamp: "2026-08-30T10:00:00Z",
		Validator: "quality",
		Target:    "case-study.md",
		Status:    domain.SeverityPass,
	}))

	out, err := runCommand(t, "history", "--repo", repo)
	require.NoError(t, err)
	assert.Contains(t, out, "quality")
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "casepilot")
}

func TestMCPCommandExists(t *testing.T) {
	_, err := runCommand(t, "mcp", "--help")
	assert.NoError(t, err)
}

func TestMCPServeCommandExists(t *testing.T) {
	_, err := runCommand(t, "mcp", "serve", "--help")
	assert.NoError(t, err)
}
