package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ariel-frischer/pomostart/internal/config"
	"github.com/ariel-frischer/pomostart/internal/launcher"
	"github.com/ariel-frischer/pomostart/internal/launchlog"
	"github.com/ariel-frischer/pomostart/internal/progress"
	"github.com/spf13/cobra"
)

var launchCmd = &cobra.Command{
	Use:   "launch",
	Short: "Run the desktop-session launch sequence",
	Long: `Run the launch sequence the desktop session manager invokes at login:
wait for the session to be ready, enter the working directory, then open
the first available terminal emulator running the configured timer command.

Diagnostics go to the launch log (log_path). The command exits 0 even when
no terminal could be opened, matching what autostart hooks expect; pass
--strict to get a non-zero exit for interactive use.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgPath, _ := cmd.Flags().GetString("config")
		strict, _ := cmd.Flags().GetBool("strict")
		noWait, _ := cmd.Flags().GetBool("no-wait")

		cfg, err := config.Load(cfgPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return NewExitError(ExitInvalidArguments)
		}

		log, err := launchlog.Open(cfg.LogPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return err
		}
		defer log.Close()

		l := launcher.New(cfg, log)
		l.SkipWait = noWait

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		var sp *progress.Spinner
		if !noWait && progress.IsInteractive() {
			sp = progress.NewSpinner("Waiting for desktop session...")
			sp.Start()
		}
		runErr := l.Run(ctx)
		if sp != nil {
			sp.Stop()
		}

		switch {
		case runErr == nil:
			return nil
		case errors.Is(runErr, launcher.ErrWorkingDir):
			fmt.Fprintln(os.Stderr, runErr)
			return NewExitError(ExitWorkingDir)
		case errors.Is(runErr, launcher.ErrLaunchFailed):
			fmt.Fprintln(os.Stderr, runErr)
			if strict {
				return NewExitError(ExitLaunchFailed)
			}
			// Autostart path: the failure lives in the log, exit 0.
			return nil
		default:
			fmt.Fprintln(os.Stderr, runErr)
			return runErr
		}
	},
}

func init() {
	launchCmd.Flags().Bool("strict", false, "Exit non-zero when no terminal emulator could be launched")
	launchCmd.Flags().Bool("no-wait", false, "Skip the desktop-session readiness wait")
	rootCmd.AddCommand(launchCmd)
}
