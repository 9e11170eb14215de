package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casestudypilot/casepilot/internal/adapters/outbound/textmatch"
	"github.com/casestudypilot/casepilot/internal/domain"
	"github.com/casestudypilot/casepilot/internal/domain/validate"
)

func videoFor(name string) domain.VideoRecord {
	return domain.VideoRecord{
		Success:     true,
		Title:       "Scaling GitOps - " + name,
		Description: "A talk by " + name + " about platform engineering",
		Transcript:  "hello everyone my name is " + name + " and today we talk about flux",
	}
}

func TestPresenter_Valid(t *testing.T) {
	videos := domain.MultiVideoData{Videos: []domain.VideoRecord{
		videoFor("Jane Doe"),
		videoFor("Jane Doe"),
		videoFor("Jane Doe"),
	}}
	r := validate.Presenter("Jane Doe", videos, textmatch.New())
	assert.Equal(t, domain.SeverityPass, r.Status)
	assert.True(t, findCheck(t, r, "name_in_videos").Passed)
	assert.True(t, findCheck(t, r, "no_conflicting_names").Passed)
}

func TestPresenter_GenericName(t *testing.T) {
	for _, name := range []string{"speaker", "Unknown", ""} {
		videos := domain.MultiVideoData{Videos: []domain.VideoRecord{videoFor("Jane Doe"), videoFor("Jane Doe")}}
		r := validate.Presenter(name, videos, textmatch.New())
		assert.False(t, findCheck(t, r, "not_generic_name").Passed, "name %q", name)
		assert.Equal(t, domain.SeverityCritical, r.Status, "name %q", name)
	}
}

func TestPresenter_TooFewVideos(t *testing.T) {
	videos := domain.MultiVideoData{Videos: []domain.VideoRecord{
		videoFor("Jane Doe"),
		{Success: false, Error: "no transcript"},
	}}
	r := validate.Presenter("Jane Doe", videos, textmatch.New())
	c := findCheck(t, r, "minimum_videos")
	assert.False(t, c.Passed)
	assert.Equal(t, 1, c.Details["successful_videos"])
	assert.Equal(t, domain.SeverityCritical, r.Status)
}

func TestPresenter_NameMatchGraduation(t *testing.T) {
	other := domain.VideoRecord{
		Success:    true,
		Title:      "An unrelated talk",
		Transcript: "completely different content about storage",
	}

	// 1 of 4 matches: 25% is below the critical floor.
	videos := domain.MultiVideoData{Videos: []domain.VideoRecord{videoFor("Jane Doe"), other, other, other}}
	r := validate.Presenter("Jane Doe", videos, textmatch.New())
	c := findCheck(t, r, "name_in_videos")
	assert.False(t, c.Passed)
	assert.Equal(t, domain.SeverityCritical, c.Severity)

	// 3 of 4 matches: 75% sits in the warning band.
	videos = domain.MultiVideoData{Videos: []domain.VideoRecord{
		videoFor("Jane Doe"), videoFor("Jane Doe"), videoFor("Jane Doe"), other,
	}}
	r = validate.Presenter("Jane Doe", videos, textmatch.New())
	c = findCheck(t, r, "name_in_videos")
	assert.False(t, c.Passed)
	assert.Equal(t, domain.SeverityWarning, c.Severity)
	assert.Contains(t, c.Message, "3 of 4")
}

func TestPresenter_NameTokenMatch(t *testing.T) {
	// The surname alone in a title counts as a mention.
	videos := domain.MultiVideoData{Videos: []domain.VideoRecord{
		{Success: true, Title: "Kubernetes at scale with Ramirez"},
		{Success: true, Title: "Observability deep dive with Ramirez"},
	}}
	r := validate.Presenter("Ana Ramirez", videos, textmatch.New())
	assert.True(t, findCheck(t, r, "name_in_videos").Passed)
}

func TestPresenter_ConflictingName(t *testing.T) {
	videos := domain.MultiVideoData{Videos: []domain.VideoRecord{
		{Success: true, Title: "GitOps talk", Transcript: "hi, I'm Bob Smith and welcome to my session"},
		{Success: true, Title: "GitOps talk two", Transcript: "hi, I'm Bob Smith again"},
	}}
	r := validate.Presenter("Jane Doe", videos, textmatch.New())
	c := findCheck(t, r, "no_conflicting_names")
	require.False(t, c.Passed)
	assert.Contains(t, c.Message, "Bob Smith")
	assert.Equal(t, domain.SeverityCritical, r.Status)
}

func TestPresenter_SimilarAttributionIsNotConflict(t *testing.T) {
	// Token order and minor variation stay above the similarity cutoff.
	videos := domain.MultiVideoData{Videos: []domain.VideoRecord{
		{Success: true, Title: "Talk", Transcript: "hello I'm Doe Jane speaking today about jane doe topics"},
		videoFor("Jane Doe"),
	}}
	r := validate.Presenter("Jane Doe", videos, textmatch.New())
	assert.True(t, findCheck(t, r, "no_conflicting_names").Passed)
}
