// Package session decides when the desktop environment is ready enough to
// open a terminal window. Instead of an unconditional fixed sleep it polls
// for a readiness signal (a marker file when configured, otherwise a display
// environment) up to a timeout, and only falls back to the fixed delay when
// no signal ever appears.
package session

import (
	"context"
	"os"
	"time"
)

// Reason reports which signal ended the wait.
type Reason string

const (
	// ReasonMarker means the configured marker file appeared.
	ReasonMarker Reason = "marker file present"
	// ReasonDisplay means a display environment was detected.
	ReasonDisplay Reason = "display environment present"
	// ReasonDelay means no signal appeared and the fixed fallback delay
	// was slept instead.
	ReasonDelay Reason = "fixed delay elapsed"
)

const defaultPollInterval = 500 * time.Millisecond

// Waiter polls for desktop-session readiness.
type Waiter struct {
	// MarkerPath, when non-empty, is the file whose existence signals
	// readiness. When empty, a display environment variable is the signal.
	MarkerPath string

	// Timeout bounds the polling phase.
	Timeout time.Duration

	// FallbackDelay is the fixed sleep used when polling times out.
	FallbackDelay time.Duration

	// PollInterval defaults to 500ms when zero.
	PollInterval time.Duration

	getenv func(string) string
	stat   func(string) (os.FileInfo, error)
}

// NewWaiter builds a waiter over the real filesystem and environment.
func NewWaiter(markerPath string, timeout, fallbackDelay time.Duration) *Waiter {
	return &Waiter{
		MarkerPath:    markerPath,
		Timeout:       timeout,
		FallbackDelay: fallbackDelay,
		getenv:        os.Getenv,
		stat:          os.Stat,
	}
}

// Wait blocks until a readiness signal appears, the polling window expires
// and the fallback delay has been slept, or ctx is cancelled.
func (w *Waiter) Wait(ctx context.Context) (Reason, error) {
	if reason, ok := w.ready(); ok {
		return reason, nil
	}

	interval := w.PollInterval
	if interval <= 0 {
		interval = defaultPollInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	deadline := time.NewTimer(w.Timeout)
	defer deadline.Stop()

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-deadline.C:
			return w.fallback(ctx)
		case <-ticker.C:
			if reason, ok := w.ready(); ok {
				return reason, nil
			}
		}
	}
}

func (w *Waiter) ready() (Reason, bool) {
	if w.MarkerPath != "" {
		if _, err := w.stat(w.MarkerPath); err == nil {
			return ReasonMarker, true
		}
		return "", false
	}
	if w.getenv("DISPLAY") != "" || w.getenv("WAYLAND_DISPLAY") != "" {
		return ReasonDisplay, true
	}
	return "", false
}

func (w *Waiter) fallback(ctx context.Context) (Reason, error) {
	t := time.NewTimer(w.FallbackDelay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-t.C:
		return ReasonDelay, nil
	}
}
