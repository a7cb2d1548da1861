// Package launcher orchestrates the session-start sequence: log, wait for
// the desktop, enter the working directory, then walk the terminal launch
// chain. It owns the error taxonomy of the sequence: a missing working
// directory is fatal, a failed emulator is recoverable (next strategy), and
// a missing screen probe only degrades window placement.
package launcher

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ariel-frischer/pomostart/internal/config"
	"github.com/ariel-frischer/pomostart/internal/launchlog"
	"github.com/ariel-frischer/pomostart/internal/screen"
	"github.com/ariel-frischer/pomostart/internal/session"
	"github.com/ariel-frischer/pomostart/internal/terminal"
)

// ErrWorkingDir marks the fatal failure to enter the working directory.
var ErrWorkingDir = errors.New("working directory unavailable")

// ErrLaunchFailed marks exhaustion of every terminal strategy. The autostart
// entry point ignores it (session managers discard exit codes); interactive
// runs can map it to a non-zero exit via --strict.
var ErrLaunchFailed = errors.New("terminal launch failed")

// waiter is satisfied by *session.Waiter.
type waiter interface {
	Wait(ctx context.Context) (session.Reason, error)
}

// Launcher runs the launch sequence described by a Configuration.
type Launcher struct {
	cfg *config.Configuration
	log *launchlog.Log

	// SkipWait bypasses the session-readiness wait entirely.
	SkipWait bool

	waiter    waiter
	chdir     func(dir string) error
	emulators []terminal.Emulator
}

// New builds a launcher over the real environment.
func New(cfg *config.Configuration, log *launchlog.Log) *Launcher {
	l := &Launcher{
		cfg: cfg,
		log: log,
		waiter: session.NewWaiter(
			cfg.ReadyMarker,
			time.Duration(cfg.ReadyTimeoutSecs)*time.Second,
			time.Duration(cfg.StartupDelaySecs)*time.Second,
		),
		chdir: os.Chdir,
	}
	geo := geometryFor(cfg)
	for _, name := range cfg.Terminals {
		l.emulators = append(l.emulators, terminal.New(name, geo))
	}
	return l
}

// Run executes the sequence. The final "launch completed" log line is
// appended exactly once on every path past the working-directory check.
func (l *Launcher) Run(ctx context.Context) error {
	l.log.Printf("pomostart launcher starting")

	if !l.SkipWait {
		reason, err := l.waiter.Wait(ctx)
		if err != nil {
			return fmt.Errorf("readiness wait interrupted: %w", err)
		}
		l.log.Printf("desktop session ready: %s", reason)
	}

	if err := l.chdir(l.cfg.WorkingDir); err != nil {
		l.log.Printf("failed to enter working directory %s: %v", l.cfg.WorkingDir, err)
		return fmt.Errorf("%w: %s: %v", ErrWorkingDir, l.cfg.WorkingDir, err)
	}

	chain := terminal.NewChain(l.emulators...)
	chain.Logf = l.log.Printf

	window := terminal.Window{
		Title:      l.cfg.WindowTitle,
		WorkingDir: l.cfg.WorkingDir,
		Command:    terminal.WrapCommand(l.cfg.TimerCmd),
	}

	var launchErr error
	if _, err := chain.Launch(window); err != nil {
		launchErr = fmt.Errorf("%w: %v", ErrLaunchFailed, err)
	}

	l.log.Printf("launch completed")
	return launchErr
}

// geometryFor returns the lazy geometry provider used by emulators that
// accept --geometry. The screen probe runs only when such an emulator is
// actually attempted.
func geometryFor(cfg *config.Configuration) terminal.GeometryFunc {
	return func() string {
		size, ok := screen.NewProber().Detect()
		if !ok {
			return ""
		}
		g := screen.RightAligned(size, cfg.WindowWidth, cfg.WindowHeight, cfg.RightMargin, cfg.TopOffset)
		return g.Flag()
	}
}
