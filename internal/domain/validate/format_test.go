package validate_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casestudypilot/casepilot/internal/domain"
	"github.com/casestudypilot/casepilot/internal/domain/validate"
)

func writeCaseStudy(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "case-study.md")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestCaseStudyFormat_FileMissing(t *testing.T) {
	r := validate.CaseStudyFormat(filepath.Join(t.TempDir(), "nope.md"))
	assert.Equal(t, domain.SeverityCritical, r.Status)
	require.Len(t, r.Checks, 1)
	assert.Equal(t, "file_exists", r.Checks[0].Name)
	assert.False(t, r.Checks[0].Passed)
}

func TestCaseStudyFormat_NoScreenshots(t *testing.T) {
	path := writeCaseStudy(t, "# Spotify Case Study\n\nPlain prose only.\n")
	r := validate.CaseStudyFormat(path)
	assert.Equal(t, domain.SeverityPass, r.Status)
	c := findCheck(t, r, "clickable_screenshot_links")
	assert.True(t, c.Passed)
	assert.Contains(t, c.Message, "No screenshots")
	assert.False(t, hasCheck(r, "valid_timestamps"))
}

func TestCaseStudyFormat_ClickableScreenshots(t *testing.T) {
	path := writeCaseStudy(t,
		"# Title\n\n[![arch](images/arch.png)](https://www.youtube.com/watch?v=abc123&t=120s)\n")
	r := validate.CaseStudyFormat(path)
	assert.Equal(t, domain.SeverityPass, r.Status)
	assert.True(t, findCheck(t, r, "clickable_screenshot_links").Passed)
	assert.True(t, findCheck(t, r, "valid_timestamps").Passed)
}

func TestCaseStudyFormat_AbsoluteImagePath(t *testing.T) {
	path := writeCaseStudy(t,
		"[![arch](case-studies/images/arch.png)](https://www.youtube.com/watch?v=abc&t=10s)\n")
	r := validate.CaseStudyFormat(path)
	assert.Equal(t, domain.SeverityCritical, r.Status)
	assert.False(t, findCheck(t, r, "relative_image_paths").Passed)
}

func TestCaseStudyFormat_BareScreenshot(t *testing.T) {
	path := writeCaseStudy(t, "# Title\n\n![arch](images/arch.png)\n")
	r := validate.CaseStudyFormat(path)
	assert.Equal(t, domain.SeverityCritical, r.Status)
	c := findCheck(t, r, "clickable_screenshot_links")
	assert.False(t, c.Passed)
	assert.Equal(t, 1, c.Details["non_clickable_count"])
}

func TestCaseStudyFormat_MixedBareAndClickable(t *testing.T) {
	path := writeCaseStudy(t,
		"[![a](images/a.png)](https://www.youtube.com/watch?v=x&t=5s)\n![b](images/b.png)\n")
	r := validate.CaseStudyFormat(path)
	assert.False(t, findCheck(t, r, "clickable_screenshot_links").Passed)
}

func TestCaseStudyFormat_NegativeTimestamp(t *testing.T) {
	path := writeCaseStudy(t,
		"[![a](images/a.png)](https://www.youtube.com/watch?v=x&t=30s)\n"+
			"[![b](images/b.png)](https://www.youtube.com/watch?v=x&t=-5s)\n")
	r := validate.CaseStudyFormat(path)
	assert.Equal(t, domain.SeverityCritical, r.Status)
	c := findCheck(t, r, "valid_timestamps")
	assert.False(t, c.Passed)
	assert.Contains(t, c.Message, "-5")
}
