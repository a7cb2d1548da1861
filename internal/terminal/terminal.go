// Package terminal models terminal-emulator launches as strategies over a
// capability set: probe availability, build an argument list, invoke. An
// ordered chain tries each strategy until one spawns, which replaces the
// near-duplicate per-emulator launch functions the autostart flow grew out
// of and makes adding a third fallback a one-line config change.
package terminal

import "fmt"

// Window describes the terminal window to open.
type Window struct {
	Title      string
	WorkingDir string
	// Command is the wrapped shell command executed via `bash -c` inside
	// the new window.
	Command string
}

// Emulator is a single launch strategy.
type Emulator interface {
	// Name is the binary name probed on PATH.
	Name() string

	// Available reports whether the emulator binary can be found.
	Available() bool

	// BuildArgs returns the argument list (excluding the binary name)
	// for launching the given window.
	BuildArgs(w Window) []string

	// Launch spawns the emulator and returns without waiting for it.
	Launch(w Window) error
}

// WrapCommand builds the shell payload run inside the spawned terminal:
// announce the timer, run it, and on a non-zero exit print a failure line
// and wait for a keypress so the window stays open long enough to read.
// With no usable stdin the read returns immediately instead of hanging.
func WrapCommand(timerCmd string) string {
	return fmt.Sprintf(
		"echo 'Starting Pomodoro timer...'; %s; if [ $? -ne 0 ]; then echo 'Pomodoro timer exited with an error. Press Enter to close.'; read -r _; fi",
		timerCmd,
	)
}
