package domain

import (
	"encoding/json"
	"fmt"
)

// Input records produced by the upstream pipeline (fetchers, extractors,
// generators). The validation core only consumes them.

// Segment is one timed transcript segment.
type Segment struct {
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
	Text     string  `json:"text,omitempty"`
}

// TranscriptArtifact is the fetcher output: full text plus timed segments.
type TranscriptArtifact struct {
	Transcript string    `json:"transcript"`
	Segments   []Segment `json:"segments"`
}

// CompanyExtraction is the extractor output for the company behind a talk.
type CompanyExtraction struct {
	CompanyName string  `json:"company_name"`
	VideoTitle  string  `json:"video_title"`
	Confidence  float64 `json:"confidence"`
}

// VideoMetadata describes the source video. Informational only: no check
// fails because of its contents.
type VideoMetadata struct {
	VideoID     string `json:"video_id"`
	Title       string `json:"title"`
	Channel     string `json:"channel,omitempty"`
	Description string `json:"description,omitempty"`
}

// CaseStudyArtifact is the generator output checked for consistency and
// fabrication.
type CaseStudyArtifact struct {
	ExpectedCompany string            `json:"expected_company"`
	Sections        map[string]string `json:"sections"`
	Video           VideoMetadata     `json:"video"`
}

// RequiredAnalysisKeys are the top-level keys an analysis record must carry.
var RequiredAnalysisKeys = []string{"cncf_projects", "key_metrics", "sections"}

// RequiredAnalysisSections are the section keys an analysis must fill.
var RequiredAnalysisSections = []string{"background", "challenge", "solution", "impact"}

// Analysis is the structured topic/metric/section extraction from a
// transcript. When decoded from JSON it records which required keys were
// absent; a struct literal is treated as having all keys present.
type Analysis struct {
	CNCFProjects []ProjectRef      `json:"cncf_projects"`
	KeyMetrics   []any             `json:"key_metrics"`
	Sections     map[string]string `json:"sections"`

	missing []string
}

func (a *Analysis) UnmarshalJSON(data []byte) error {
	type alias Analysis
	var aux alias
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}
	*a = Analysis(aux)
	for _, k := range RequiredAnalysisKeys {
		if _, ok := keys[k]; !ok {
			a.missing = append(a.missing, k)
		}
	}
	return nil
}

// MissingKeys returns the required top-level keys absent from the decoded
// record.
func (a Analysis) MissingKeys() []string { return a.missing }

// ProjectRef is a CNCF project reference. Upstream extractors emit it either
// as a bare string or as an object with a "name" field; Name normalizes both.
type ProjectRef struct {
	name string
}

// Project constructs a ProjectRef from a plain name.
func Project(name string) ProjectRef { return ProjectRef{name: name} }

// Name returns the project name, or "unknown" when the entry carried none.
func (p ProjectRef) Name() string {
	if p.name == "" {
		return "unknown"
	}
	return p.name
}

func (p *ProjectRef) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		p.name = s
		return nil
	}
	var obj struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("project entry must be a string or an object with a name field: %w", err)
	}
	p.name = obj.Name
	return nil
}

func (p ProjectRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Name())
}

// VideoRecord is one entry of a multi-video fetch batch.
type VideoRecord struct {
	Success     bool   `json:"success"`
	Error       string `json:"error,omitempty"`
	VideoID     string `json:"video_id,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Transcript  string `json:"transcript,omitempty"`
}

// MultiVideoData is the batch output of the multi-video processor.
type MultiVideoData struct {
	Videos []VideoRecord `json:"videos"`
}

// Successful returns the records that fetched without error.
func (m MultiVideoData) Successful() []VideoRecord {
	var ok []VideoRecord
	for _, v := range m.Videos {
		if v.Success {
			ok = append(ok, v)
		}
	}
	return ok
}

// Biography is the extracted presenter biography record.
type Biography struct {
	FullName       string `json:"full_name"`
	Biography      string `json:"biography"`
	Location       string `json:"location,omitempty"`
	CurrentRole    string `json:"current_role,omitempty"`
	GithubUsername string `json:"github_username,omitempty"`
}

// ExpertiseArea names one technical area a presenter covers.
type ExpertiseArea struct {
	Area    string `json:"area"`
	Context string `json:"context,omitempty"`
}

// Profile is an existing presenter profile being updated with new videos.
type Profile struct {
	Name              string          `json:"name"`
	GithubUsername    string          `json:"github_username,omitempty"`
	VideoIDsProcessed []string        `json:"video_ids_processed"`
	ExpertiseAreas    []ExpertiseArea `json:"expertise_areas,omitempty"`
}

// TalkSummary is one summarized talk inside a profile document.
type TalkSummary struct {
	Title   string   `json:"title"`
	Summary string   `json:"summary,omitempty"`
	Topics  []string `json:"topics,omitempty"`
}

// ProfileDocument is the fully assembled presenter profile judged by the
// quality scorer.
type ProfileDocument struct {
	Overview       string          `json:"overview"`
	Expertise      string          `json:"expertise"`
	TalkHighlights string          `json:"talk_highlights"`
	KeyThemes      string          `json:"key_themes"`
	StatsTable     string          `json:"stats_table"`
	Biography      string          `json:"biography"`
	TalkSummaries  []TalkSummary   `json:"talk_summaries"`
	ExpertiseAreas []ExpertiseArea `json:"expertise_areas"`
	CNCFProjects   []ProjectRef    `json:"cncf_projects"`
}
