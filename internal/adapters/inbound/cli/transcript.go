package cli

import (
	"github.com/spf13/cobra"

	"github.com/casestudypilot/casepilot/internal/domain"
	"github.com/casestudypilot/casepilot/internal/domain/validate"
)

func newValidateTranscriptCmd(opts *validateOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "transcript <transcript.json>",
		Short: "Validate transcript quality and completeness",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var artifact domain.TranscriptArtifact
			if err := readJSON(args[0], &artifact); err != nil {
				return err
			}

			result := validate.Transcript(artifact.Transcript, artifact.Segments)
			return emitResult(cmd, opts, "transcript", args[0], result)
		},
	}
}
