package cli

import (
	"github.com/spf13/cobra"

	"github.com/casestudypilot/casepilot/internal/adapters/outbound/textmatch"
	"github.com/casestudypilot/casepilot/internal/domain"
	"github.com/casestudypilot/casepilot/internal/domain/validate"
)

func newValidateAnalysisCmd(opts *validateOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "analysis <analysis.json>",
		Short: "Validate a transcript analysis record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var analysis domain.Analysis
			if err := readJSON(args[0], &analysis); err != nil {
				return err
			}

			result := validate.Analysis(analysis)
			return emitResult(cmd, opts, "analysis", args[0], result)
		},
	}
}

func newValidateMetricsCmd(opts *validateOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "metrics <casestudy.json> <transcript.json>",
		Short: "Cross-check generated metrics against the source transcript",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var artifact domain.CaseStudyArtifact
			if err := readJSON(args[0], &artifact); err != nil {
				return err
			}
			var transcript domain.TranscriptArtifact
			if err := readJSON(args[1], &transcript); err != nil {
				return err
			}

			result := validate.Metrics(artifact.Sections, transcript.Transcript, textmatch.New())
			return emitResult(cmd, opts, "metrics", args[0], result)
		},
	}
}
