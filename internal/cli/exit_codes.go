package cli

import "fmt"

// Exit codes for the pomostart CLI. The autostart path deliberately maps
// "every terminal failed" to success unless --strict is given, because
// session managers discard exit codes anyway.
const (
	// ExitSuccess indicates successful command execution
	ExitSuccess = 0

	// ExitWorkingDir indicates the working directory could not be entered
	ExitWorkingDir = 1

	// ExitInvalidArguments indicates invalid command arguments
	ExitInvalidArguments = 2

	// ExitLaunchFailed indicates every launch strategy failed (--strict only)
	ExitLaunchFailed = 3

	// ExitMissingDependency indicates required external programs are missing
	ExitMissingDependency = 4
)

// exitError is a custom error type that carries an exit code.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit code %d", e.code)
}

// NewExitError creates a new exit error with the given code.
func NewExitError(code int) error {
	return &exitError{code: code}
}

// ExitCode returns the exit code from an error.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if e, ok := err.(*exitError); ok {
		return e.code
	}
	return 1
}
