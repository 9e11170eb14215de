package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	configAdapter "github.com/casestudypilot/casepilot/internal/adapters/outbound/config"
	"github.com/casestudypilot/casepilot/internal/adapters/outbound/textmatch"
	"github.com/casestudypilot/casepilot/internal/domain"
	"github.com/casestudypilot/casepilot/internal/domain/validate"
)

// registerTools registers one tool per validation gate on the given server.
func registerTools(s *server.MCPServer, repoPath string) {
	// 1. casepilot_validate_transcript
	s.AddTool(
		mcplib.NewTool("casepilot_validate_transcript",
			mcplib.WithDescription("Validate a fetched transcript for length, meaningful content and segment coverage"),
			mcplib.WithString("file",
				mcplib.Required(),
				mcplib.Description("Path to the transcript JSON artifact"),
			),
		),
		handleValidateTranscript(),
	)

	// 2. casepilot_validate_company
	s.AddTool(
		mcplib.NewTool("casepilot_validate_company",
			mcplib.WithDescription("Validate an extracted company name against generic-name and confidence gates"),
			mcplib.WithString("file",
				mcplib.Required(),
				mcplib.Description("Path to the company extraction JSON artifact"),
			),
		),
		handleValidateCompany(repoPath),
	)

	// 3. casepilot_validate_analysis
	s.AddTool(
		mcplib.NewTool("casepilot_validate_analysis",
			mcplib.WithDescription("Validate a transcript analysis record for required keys, CNCF projects and section depth"),
			mcplib.WithString("file",
				mcplib.Required(),
				mcplib.Description("Path to the analysis JSON artifact"),
			),
		),
		handleValidateAnalysis(),
	)

	// 4. casepilot_validate_metrics
	s.AddTool(
		mcplib.NewTool("casepilot_validate_metrics",
			mcplib.WithDescription("Cross-check metrics quoted in a generated case study against the source transcript"),
			mcplib.WithString("casestudy",
				mcplib.Required(),
				mcplib.Description("Path to the case study JSON artifact"),
			),
			mcplib.WithString("transcript",
				mcplib.Required(),
				mcplib.Description("Path to the transcript JSON artifact"),
			),
		),
		handleValidateMetrics(),
	)

	// 5. casepilot_validate_consistency
	s.AddTool(
		mcplib.NewTool("casepilot_validate_consistency",
			mcplib.WithDescription("Detect wrong-company attribution in generated case study sections"),
			mcplib.WithString("file",
				mcplib.Required(),
				mcplib.Description("Path to the case study JSON artifact"),
			),
		),
		handleValidateConsistency(repoPath),
	)

	// 6. casepilot_validate_format
	s.AddTool(
		mcplib.NewTool("casepilot_validate_format",
			mcplib.WithDescription("Check screenshot paths, clickable links and timestamps in a case study markdown file"),
			mcplib.WithString("file",
				mcplib.Required(),
				mcplib.Description("Path to the case study markdown file"),
			),
		),
		handleValidateFormat(),
	)

	// 7. casepilot_validate_quality
	s.AddTool(
		mcplib.NewTool("casepilot_validate_quality",
			mcplib.WithDescription("Score a case study markdown file against the weighted quality gate"),
			mcplib.WithString("file",
				mcplib.Required(),
				mcplib.Description("Path to the case study markdown file"),
			),
			mcplib.WithNumber("threshold",
				mcplib.Description("Minimum passing score (defaults to the repo configuration)"),
			),
		),
		handleValidateQuality(repoPath),
	)

	// 8. casepilot_validate_presenter
	s.AddTool(
		mcplib.NewTool("casepilot_validate_presenter",
			mcplib.WithDescription("Check that fetched videos belong to the expected presenter"),
			mcplib.WithString("name",
				mcplib.Required(),
				mcplib.Description("Expected presenter name"),
			),
			mcplib.WithString("videos",
				mcplib.Required(),
				mcplib.Description("Path to the multi-video JSON artifact"),
			),
		),
		handleValidatePresenter(),
	)

	// 9. casepilot_validate_biography
	s.AddTool(
		mcplib.NewTool("casepilot_validate_biography",
			mcplib.WithDescription("Validate an extracted presenter biography for placeholders and depth"),
			mcplib.WithString("file",
				mcplib.Required(),
				mcplib.Description("Path to the biography JSON artifact"),
			),
		),
		handleValidateBiography(),
	)

	// 10. casepilot_validate_profile_update
	s.AddTool(
		mcplib.NewTool("casepilot_validate_profile_update",
			mcplib.WithDescription("Validate a presenter profile update against the incoming videos"),
			mcplib.WithString("profile",
				mcplib.Required(),
				mcplib.Description("Path to the profile JSON artifact"),
			),
			mcplib.WithString("videos",
				mcplib.Required(),
				mcplib.Description("Path to the multi-video JSON artifact"),
			),
		),
		handleValidateProfileUpdate(),
	)

	// 11. casepilot_validate_profile
	s.AddTool(
		mcplib.NewTool("casepilot_validate_profile",
			mcplib.WithDescription("Score an assembled presenter profile against the weighted quality gate"),
			mcplib.WithString("file",
				mcplib.Required(),
				mcplib.Description("Path to the profile document JSON artifact"),
			),
			mcplib.WithNumber("threshold",
				mcplib.Description("Minimum passing score (defaults to the repo configuration)"),
			),
		),
		handleValidateProfile(repoPath),
	)
}

func loadRepoConfig(repoPath string) domain.Config {
	cfg, err := configAdapter.New().Load(repoPath)
	if err != nil {
		return domain.DefaultConfig()
	}
	return cfg
}

func handleValidateTranscript() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		path, err := request.RequireString("file")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		var artifact domain.TranscriptArtifact
		if err := readArtifact(path, &artifact); err != nil {
			return errorResult(err.Error()), nil
		}

		return jsonResult(validate.Transcript(artifact.Transcript, artifact.Segments))
	}
}

func handleValidateCompany(repoPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		path, err := request.RequireString("file")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		var extraction domain.CompanyExtraction
		if err := readArtifact(path, &extraction); err != nil {
			return errorResult(err.Error()), nil
		}

		cfg := loadRepoConfig(repoPath)
		return jsonResult(validate.CompanyName(
			extraction.CompanyName,
			extraction.VideoTitle,
			extraction.Confidence,
			cfg.GenericNameList(),
		))
	}
}

func handleValidateAnalysis() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		path, err := request.RequireString("file")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		var analysis domain.Analysis
		if err := readArtifact(path, &analysis); err != nil {
			return errorResult(err.Error()), nil
		}

		return jsonResult(validate.Analysis(analysis))
	}
}

func handleValidateMetrics() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		casePath, err := request.RequireString("casestudy")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		transcriptPath, err := request.RequireString("transcript")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		var artifact domain.CaseStudyArtifact
		if err := readArtifact(casePath, &artifact); err != nil {
			return errorResult(err.Error()), nil
		}
		var transcript domain.TranscriptArtifact
		if err := readArtifact(transcriptPath, &transcript); err != nil {
			return errorResult(err.Error()), nil
		}

		return jsonResult(validate.Metrics(artifact.Sections, transcript.Transcript, textmatch.New()))
	}
}

func handleValidateConsistency(repoPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		path, err := request.RequireString("file")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		var artifact domain.CaseStudyArtifact
		if err := readArtifact(path, &artifact); err != nil {
			return errorResult(err.Error()), nil
		}

		cfg := loadRepoConfig(repoPath)
		return jsonResult(validate.CompanyConsistency(
			artifact.ExpectedCompany,
			artifact.Sections,
			artifact.Video,
			cfg.KnownCompanyList(),
		))
	}
}

func handleValidateFormat() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		path, err := request.RequireString("file")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		return jsonResult(validate.CaseStudyFormat(path))
	}
}

func handleValidateQuality(repoPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		path, err := request.RequireString("file")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		threshold := loadRepoConfig(repoPath).QualityThreshold
		if t, ok := request.GetArguments()["threshold"].(float64); ok {
			threshold = t
		}

		return jsonResult(validate.CaseStudyQuality(path, threshold))
	}
}

func handleValidatePresenter() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		name, err := request.RequireString("name")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		videosPath, err := request.RequireString("videos")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		var videos domain.MultiVideoData
		if err := readArtifact(videosPath, &videos); err != nil {
			return errorResult(err.Error()), nil
		}

		return jsonResult(validate.Presenter(name, videos, textmatch.New()))
	}
}

func handleValidateBiography() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		path, err := request.RequireString("file")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		var bio domain.Biography
		if err := readArtifact(path, &bio); err != nil {
			return errorResult(err.Error()), nil
		}

		return jsonResult(validate.Biography(bio))
	}
}

func handleValidateProfileUpdate() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		profilePath, err := request.RequireString("profile")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		videosPath, err := request.RequireString("videos")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		var profile domain.Profile
		if err := readArtifact(profilePath, &profile); err != nil {
			return errorResult(err.Error()), nil
		}
		var videos domain.MultiVideoData
		if err := readArtifact(videosPath, &videos); err != nil {
			return errorResult(err.Error()), nil
		}

		return jsonResult(validate.ProfileUpdate(profile, videos))
	}
}

func handleValidateProfile(repoPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		path, err := request.RequireString("file")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		var doc domain.ProfileDocument
		if err := readArtifact(path, &doc); err != nil {
			return errorResult(err.Error()), nil
		}

		threshold := loadRepoConfig(repoPath).ProfileThreshold
		if t, ok := request.GetArguments()["threshold"].(float64); ok {
			threshold = t
		}

		return jsonResult(validate.PresenterProfile(doc, threshold))
	}
}

// readArtifact decodes a pipeline artifact file into v.
func readArtifact(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
