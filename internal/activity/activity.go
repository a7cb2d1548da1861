// Package activity probes how long the user has been idle, using the
// xprintidle utility (milliseconds since the last X input event). When the
// utility is missing or fails the probe reports "unknown" and callers treat
// the user as active, which degrades the idle compensation but never stalls
// the timer.
package activity

import (
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// Prober reports the time since the last user input event.
type Prober interface {
	// IdleFor returns the idle duration. ok is false when the probe has
	// no answer (missing utility, failed run, unparsable output).
	IdleFor() (idle time.Duration, ok bool)
}

// XPrintIdle is a Prober backed by the xprintidle binary.
type XPrintIdle struct {
	lookPath func(file string) (string, error)
	output   func(name string, args ...string) ([]byte, error)
}

// NewProber returns an xprintidle-backed prober.
func NewProber() *XPrintIdle {
	return &XPrintIdle{
		lookPath: exec.LookPath,
		output: func(name string, args ...string) ([]byte, error) {
			return exec.Command(name, args...).Output()
		},
	}
}

// IdleFor implements Prober.
func (p *XPrintIdle) IdleFor() (time.Duration, bool) {
	if _, err := p.lookPath("xprintidle"); err != nil {
		return 0, false
	}
	out, err := p.output("xprintidle")
	if err != nil {
		return 0, false
	}
	ms, err := strconv.ParseInt(strings.TrimSpace(string(out)), 10, 64)
	if err != nil || ms < 0 {
		return 0, false
	}
	return time.Duration(ms) * time.Millisecond, true
}

// AlwaysActive is a Prober that reports zero idle time. Used when idle
// detection is disabled.
type AlwaysActive struct{}

// IdleFor implements Prober.
func (AlwaysActive) IdleFor() (time.Duration, bool) { return 0, true }
