// Package progress shows a spinner during the session-readiness wait when
// someone runs the launcher from an interactive shell. Under the desktop
// session manager there is no TTY and the spinner stays silent.
package progress

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"golang.org/x/term"
)

// IsInteractive reports whether stderr is attached to a terminal.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}

// Spinner wraps a briandowns spinner that only animates on a TTY.
type Spinner struct {
	s   *spinner.Spinner
	tty bool
}

// NewSpinner creates a spinner with the given message. Non-TTY sessions
// print the message once instead of animating.
func NewSpinner(message string) *Spinner {
	p := &Spinner{tty: IsInteractive()}
	if p.tty {
		p.s = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		p.s.Writer = os.Stderr
		p.s.Suffix = " " + message
	} else {
		fmt.Fprintln(os.Stderr, message)
	}
	return p
}

// Start begins the animation on a TTY; no-op otherwise.
func (p *Spinner) Start() {
	if p.s != nil {
		p.s.Start()
	}
}

// Stop halts the animation.
func (p *Spinner) Stop() {
	if p.s != nil {
		p.s.Stop()
	}
}
