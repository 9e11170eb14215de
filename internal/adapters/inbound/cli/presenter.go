package cli

import (
	"github.com/spf13/cobra"

	"github.com/casestudypilot/casepilot/internal/adapters/outbound/textmatch"
	"github.com/casestudypilot/casepilot/internal/domain"
	"github.com/casestudypilot/casepilot/internal/domain/validate"
)

func newValidatePresenterCmd(opts *validateOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "presenter <name> <videos.json>",
		Short: "Check that the fetched videos belong to the expected presenter",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var videos domain.MultiVideoData
			if err := readJSON(args[1], &videos); err != nil {
				return err
			}

			result := validate.Presenter(args[0], videos, textmatch.New())
			return emitResult(cmd, opts, "presenter", args[0], result)
		},
	}
}

func newValidateBiographyCmd(opts *validateOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "biography <biography.json>",
		Short: "Validate an extracted presenter biography",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var bio domain.Biography
			if err := readJSON(args[0], &bio); err != nil {
				return err
			}

			result := validate.Biography(bio)
			return emitResult(cmd, opts, "biography", args[0], result)
		},
	}
}

func newValidateProfileUpdateCmd(opts *validateOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "profile-update <profile.json> <videos.json>",
		Short: "Validate a profile update against the incoming videos",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var profile domain.Profile
			if err := readJSON(args[0], &profile); err != nil {
				return err
			}
			var videos domain.MultiVideoData
			if err := readJSON(args[1], &videos); err != nil {
				return err
			}

			result := validate.ProfileUpdate(profile, videos)
			return emitResult(cmd, opts, "profile-update", args[0], result)
		},
	}
}

func newValidateProfileCmd(opts *validateOptions) *cobra.Command {
	var threshold float64

	cmd := &cobra.Command{
		Use:   "profile <profile.json>",
		Short: "Score an assembled presenter profile against the quality gate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var doc domain.ProfileDocument
			if err := readJSON(args[0], &doc); err != nil {
				return err
			}

			if !cmd.Flags().Changed("threshold") {
				if cfg, err := loadConfig(opts); err == nil {
					threshold = cfg.ProfileThreshold
				}
			}

			result := validate.PresenterProfile(doc, threshold)
			return emitResult(cmd, opts, "profile", args[0], result)
		},
	}

	cmd.Flags().Float64Var(&threshold, "threshold", validate.DefaultProfileThreshold, "Minimum passing profile score")

	return cmd
}
