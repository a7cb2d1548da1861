package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ariel-frischer/pomostart/internal/activity"
	"github.com/ariel-frischer/pomostart/internal/config"
	"github.com/ariel-frischer/pomostart/internal/timer"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var timerCmd = &cobra.Command{
	Use:   "timer",
	Short: "Run the built-in Pomodoro timer in this terminal",
	Long: `Run the built-in Pomodoro timer: a work/break countdown with input-idle
detection. Idle minutes during work earn work time back (capped at twice the
work duration); active minutes during a break extend the break. Progress is
saved every 10 seconds and on exit, so a restarted timer resumes where it
left off.

Idle detection uses xprintidle when available; without it the user always
counts as active.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(cfgPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return NewExitError(ExitInvalidArguments)
		}

		workMinutes, _ := cmd.Flags().GetInt("work-time")
		breakMinutes, _ := cmd.Flags().GetInt("break-time")
		startMode, _ := cmd.Flags().GetString("start-mode")
		startMinutes, _ := cmd.Flags().GetFloat64("start-minutes")
		statePath, _ := cmd.Flags().GetString("state-file")

		if workMinutes <= 0 {
			workMinutes = cfg.WorkMinutes
		}
		if breakMinutes <= 0 {
			breakMinutes = cfg.BreakMinutes
		}
		if statePath == "" {
			statePath = cfg.StateFile
		}

		mode := timer.Mode(startMode)
		if mode != timer.ModeWork && mode != timer.ModeBreak {
			fmt.Fprintf(os.Stderr, "invalid --start-mode %q (want work or break)\n", startMode)
			return NewExitError(ExitInvalidArguments)
		}

		state, err := timer.LoadState(statePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		}
		if state == nil {
			fmt.Println("No valid saved state found, starting fresh.")
			state = timer.NewState(mode, workMinutes, breakMinutes, startMinutes)
		}

		fmt.Println("Pomodoro Timer Started")
		fmt.Printf("Work time: %d minutes\n", workMinutes)
		fmt.Printf("Break time: %d minutes\n", breakMinutes)

		r := &timer.Runner{
			Engine:    timer.NewEngine(workMinutes, breakMinutes, state),
			Prober:    activity.NewProber(),
			StatePath: statePath,
			Out:       os.Stdout,
			Colorize:  term.IsTerminal(int(os.Stdout.Fd())),
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return r.Run(ctx)
	},
}

func init() {
	timerCmd.Flags().Int("work-time", 0, "Work session length in minutes (default from config)")
	timerCmd.Flags().Int("break-time", 0, "Break length in minutes (default from config)")
	timerCmd.Flags().String("start-mode", "work", "Starting mode when no saved state exists (work or break)")
	timerCmd.Flags().Float64("start-minutes", 0, "Starting remaining minutes, overriding the mode's full duration")
	timerCmd.Flags().String("state-file", "", "Timer state file (default from config)")
	rootCmd.AddCommand(timerCmd)
}
