package cli

import (
	"fmt"
	"os"

	"github.com/ariel-frischer/pomostart/internal/config"
	"github.com/ariel-frischer/pomostart/internal/health"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check for the external programs pomostart depends on",
	Long: `Probe PATH for every program the launch sequence and timer shell out to:

  - each configured terminal emulator (at least one is required)
  - xdpyinfo, for right-aligned fallback window placement (optional)
  - xprintidle, for timer idle detection (optional)
  - python3, for an external timer command (optional)

Missing optional programs only degrade features; a missing terminal set
fails the check.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(cfgPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return NewExitError(ExitInvalidArguments)
		}

		report := health.RunChecks(cfg.Terminals)
		fmt.Print(health.FormatReport(report))

		if !report.Passed {
			return NewExitError(ExitMissingDependency)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
