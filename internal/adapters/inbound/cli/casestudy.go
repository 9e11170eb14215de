package cli

import (
	"github.com/spf13/cobra"

	"github.com/casestudypilot/casepilot/internal/domain/validate"
)

func newValidateFormatCmd(opts *validateOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "format <casestudy.md>",
		Short: "Check screenshot and link formatting in a case study",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result := validate.CaseStudyFormat(args[0])
			return emitResult(cmd, opts, "format", args[0], result)
		},
	}
}

func newValidateQualityCmd(opts *validateOptions) *cobra.Command {
	var threshold float64

	cmd := &cobra.Command{
		Use:   "quality <casestudy.md>",
		Short: "Score a case study against the quality gate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("threshold") {
				if cfg, err := loadConfig(opts); err == nil {
					threshold = cfg.QualityThreshold
				}
			}

			result := validate.CaseStudyQuality(args[0], threshold)
			return emitResult(cmd, opts, "quality", args[0], result)
		},
	}

	cmd.Flags().Float64Var(&threshold, "threshold", validate.DefaultQualityThreshold, "Minimum passing quality score")

	return cmd
}
