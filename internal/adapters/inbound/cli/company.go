package cli

import (
	"github.com/spf13/cobra"

	"github.com/casestudypilot/casepilot/internal/domain"
	"github.com/casestudypilot/casepilot/internal/domain/validate"
)

func newValidateCompanyCmd(opts *validateOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "company <extraction.json>",
		Short: "Validate an extracted company name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var extraction domain.CompanyExtraction
			if err := readJSON(args[0], &extraction); err != nil {
				return err
			}

			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}

			result := validate.CompanyName(
				extraction.CompanyName,
				extraction.VideoTitle,
				extraction.Confidence,
				cfg.GenericNameList(),
			)
			return emitResult(cmd, opts, "company", extraction.CompanyName, result)
		},
	}
}

func newValidateConsistencyCmd(opts *validateOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "consistency <casestudy.json>",
		Short: "Detect wrong-company attribution in generated sections",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var artifact domain.CaseStudyArtifact
			if err := readJSON(args[0], &artifact); err != nil {
				return err
			}

			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}

			result := validate.CompanyConsistency(
				artifact.ExpectedCompany,
				artifact.Sections,
				artifact.Video,
				cfg.KnownCompanyList(),
			)
			return emitResult(cmd, opts, "consistency", artifact.ExpectedCompany, result)
		},
	}
}
