package validate_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casestudypilot/casepilot/internal/domain"
	"github.com/casestudypilot/casepilot/internal/domain/validate"
)

func fullSections() map[string]string {
	long := strings.Repeat("The team adopted cloud native tooling. ", 5)
	return map[string]string{
		"background": long,
		"challenge":  long,
		"solution":   long,
		"impact":     long,
	}
}

func TestAnalysis_Valid(t *testing.T) {
	a := domain.Analysis{
		CNCFProjects: []domain.ProjectRef{domain.Project("Kubernetes"), domain.Project("Prometheus")},
		KeyMetrics:   []any{"40% cost reduction"},
		Sections:     fullSections(),
	}
	r := validate.Analysis(a)
	assert.Equal(t, domain.SeverityPass, r.Status)
	assert.False(t, hasCheck(r, "multiple_projects"))
	assert.False(t, hasCheck(r, "has_metrics"))
}

func TestAnalysis_MissingKeysFromJSON(t *testing.T) {
	var a domain.Analysis
	require.NoError(t, json.Unmarshal([]byte(`{"sections": {}}`), &a))

	r := validate.Analysis(a)
	assert.Equal(t, domain.SeverityCritical, r.Status)
	assert.False(t, findCheck(t, r, "required_keys").Passed)
}

func TestAnalysis_NoProjects(t *testing.T) {
	a := domain.Analysis{KeyMetrics: []any{"x"}, Sections: fullSections()}
	r := validate.Analysis(a)
	assert.False(t, findCheck(t, r, "has_cncf_projects").Passed)
	assert.Equal(t, domain.SeverityCritical, r.Status)
}

func TestAnalysis_SingleProjectWarning(t *testing.T) {
	a := domain.Analysis{
		CNCFProjects: []domain.ProjectRef{domain.Project("Envoy")},
		KeyMetrics:   []any{"x"},
		Sections:     fullSections(),
	}
	r := validate.Analysis(a)
	c := findCheck(t, r, "multiple_projects")
	assert.False(t, c.Passed)
	assert.Contains(t, c.Message, "Envoy")
	assert.Equal(t, domain.SeverityWarning, r.Status)
}

func TestAnalysis_MissingSection(t *testing.T) {
	sections := fullSections()
	delete(sections, "impact")
	a := domain.Analysis{
		CNCFProjects: []domain.ProjectRef{domain.Project("Kubernetes"), domain.Project("Envoy")},
		KeyMetrics:   []any{"x"},
		Sections:     sections,
	}
	r := validate.Analysis(a)
	assert.False(t, findCheck(t, r, "all_sections_present").Passed)
	// Length checks only apply to sections that exist.
	assert.False(t, hasCheck(r, "section_impact_length"))
	assert.True(t, hasCheck(r, "section_background_length"))
	assert.Equal(t, domain.SeverityCritical, r.Status)
}

func TestAnalysis_ShortSection(t *testing.T) {
	sections := fullSections()
	sections["challenge"] = "too brief"
	a := domain.Analysis{
		CNCFProjects: []domain.ProjectRef{domain.Project("Kubernetes"), domain.Project("Envoy")},
		KeyMetrics:   []any{"x"},
		Sections:     sections,
	}
	r := validate.Analysis(a)
	assert.False(t, findCheck(t, r, "section_challenge_length").Passed)
	assert.Equal(t, domain.SeverityCritical, r.Status)
}

func TestAnalysis_NoMetricsWarning(t *testing.T) {
	a := domain.Analysis{
		CNCFProjects: []domain.ProjectRef{domain.Project("Kubernetes"), domain.Project("Envoy")},
		Sections:     fullSections(),
	}
	r := validate.Analysis(a)
	assert.False(t, findCheck(t, r, "has_metrics").Passed)
	assert.Equal(t, domain.SeverityWarning, r.Status)
}
