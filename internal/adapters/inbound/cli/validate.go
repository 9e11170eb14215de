package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	configAdapter "github.com/casestudypilot/casepilot/internal/adapters/outbound/config"
	"github.com/casestudypilot/casepilot/internal/adapters/outbound/gitinfo"
	"github.com/casestudypilot/casepilot/internal/adapters/outbound/history"
	"github.com/casestudypilot/casepilot/internal/adapters/outbound/tui"
	"github.com/casestudypilot/casepilot/internal/domain"
)

// validateOptions are the flags shared by every validate subcommand.
type validateOptions struct {
	jsonOutput bool
	outputFile string
	repoPath   string
}

func newValidateCmd() *cobra.Command {
	opts := &validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Run a validation gate against a pipeline artifact",
		Long:  "Each subcommand validates one pipeline artifact and exits 0 (pass), 1 (warnings) or 2 (critical).",
	}

	cmd.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "Output the validation result as JSON")
	cmd.PersistentFlags().StringVarP(&opts.outputFile, "output", "o", "", "Also write the result JSON to a file")
	cmd.PersistentFlags().StringVar(&opts.repoPath, "repo", ".", "Case-studies repo root (config and history)")

	cmd.AddCommand(newValidateTranscriptCmd(opts))
	cmd.AddCommand(newValidateCompanyCmd(opts))
	cmd.AddCommand(newValidateAnalysisCmd(opts))
	cmd.AddCommand(newValidateMetricsCmd(opts))
	cmd.AddCommand(newValidateConsistencyCmd(opts))
	cmd.AddCommand(newValidateFormatCmd(opts))
	cmd.AddCommand(newValidateQualityCmd(opts))
	cmd.AddCommand(newValidatePresenterCmd(opts))
	cmd.AddCommand(newValidateBiographyCmd(opts))
	cmd.AddCommand(newValidateProfileUpdateCmd(opts))
	cmd.AddCommand(newValidateProfileCmd(opts))

	return cmd
}

// loadConfig reads .casepilot.yaml from the configured repo path.
func loadConfig(opts *validateOptions) (domain.Config, error) {
	return configAdapter.New().Load(opts.repoPath)
}

// readJSON decodes a pipeline artifact file into v.
func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// emitResult renders the result, records the run, and translates the status
// into the exit code contract.
func emitResult(cmd *cobra.Command, opts *validateOptions, validator, target string, result domain.ValidationResult) error {
	if opts.jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return err
		}
	} else {
		fmt.Fprint(cmd.OutOrStdout(), tui.RenderResult(validator, result))
	}

	if opts.outputFile != "" {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		if err := os.WriteFile(opts.outputFile, data, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", opts.outputFile, err)
		}
	}

	recordRun(opts, validator, target, result.Status)

	if code := domain.ExitCode(result.Status); code != 0 {
		return &exitCodeError{code: code}
	}
	return nil
}

// recordRun appends the run to the repo history, best-effort.
func recordRun(opts *validateOptions, validator, target string, status domain.Severity) {
	cfg, err := loadConfig(opts)
	if err != nil || !cfg.HistoryEnabled {
		return
	}

	entry := domain.RunEntry{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Validator: validator,
		Target:    target,
		Status:    status,
	}
	if gi := gitinfo.New(); gi.IsGitRepo(opts.repoPath) {
		if hash, err := gi.CommitHash(opts.repoPath); err == nil {
			entry.CommitHash = hash
		}
	}
	_ = history.New().Save(opts.repoPath, entry)
}

func newHistoryCmd() *cobra.Command {
	var repoPath string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded validation runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := history.New().Load(repoPath)
			if err != nil {
				return fmt.Errorf("loading history: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(entries))
			return nil
		},
	}

	cmd.Flags().StringVar(&repoPath, "repo", ".", "Case-studies repo root")

	return cmd
}
