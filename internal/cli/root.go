// pomostart - Desktop Session Pomodoro Launcher
// Author: Ariel Frischer
// Source: https://github.com/ariel-frischer/pomostart

// Package cli provides Cobra-based CLI commands for the pomostart desktop
// launcher. It defines the autostart entry point (launch), the built-in
// timer (timer), and utility commands (doctor, config, init, version).
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pomostart",
	Short: "Desktop session launcher for a Pomodoro timer",
	Long: `pomostart opens a terminal window running a Pomodoro timer when your
desktop session starts.

It waits for the session to finish initializing, enters the configured
working directory, then tries each configured terminal emulator in order
(cosmic-term first, gnome-terminal as fallback by default). The fallback
window is right-aligned on screen when the display size can be probed.`,
	Example: `  # Autostart entry (put this in your session manager's autostart list)
  pomostart launch

  # Interactive run: fail loudly when no terminal could be opened
  pomostart launch --strict --no-wait

  # Run the built-in timer directly in the current terminal
  pomostart timer --work-time 40 --break-time 25

  # Check which external programs are available
  pomostart doctor`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to a local config file")
}
