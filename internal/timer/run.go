package timer

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/ariel-frischer/pomostart/internal/activity"
)

const (
	defaultTickInterval = time.Second
	defaultSaveInterval = 10 * time.Second
)

// Runner drives an Engine against the wall clock: probe idle time, tick,
// render, and periodically persist state. Cancellation saves state and
// stops cleanly.
type Runner struct {
	Engine    *Engine
	Prober    activity.Prober
	StatePath string
	Out       io.Writer
	Colorize  bool

	// TickInterval and SaveInterval default to 1s and 10s.
	TickInterval time.Duration
	SaveInterval time.Duration

	now func() time.Time
}

// Run loops until ctx is cancelled. The final state is saved on the way out.
func (r *Runner) Run(ctx context.Context) error {
	tick := r.TickInterval
	if tick <= 0 {
		tick = defaultTickInterval
	}
	save := r.SaveInterval
	if save <= 0 {
		save = defaultSaveInterval
	}
	if r.now == nil {
		r.now = time.Now
	}

	ticker := time.NewTicker(tick)
	defer ticker.Stop()
	lastSave := r.now()

	for {
		select {
		case <-ctx.Done():
			fmt.Fprintln(r.Out, "\nPomodoro timer stopped.")
			if err := SaveState(r.StatePath, r.Engine.State()); err != nil {
				return fmt.Errorf("saving timer state on shutdown: %w", err)
			}
			return nil

		case <-ticker.C:
			now := r.now()

			// Unknown idle time counts as active: the timer keeps
			// counting down rather than stalling on a missing probe.
			idle, ok := r.Prober.IdleFor()
			if !ok {
				idle = 0
			}

			res := r.Engine.Tick(now, idle)
			if res.Switched {
				r.announce(res.NewMode)
			}
			fmt.Fprintln(r.Out, FormatStatus(r.Engine.State(), res.Active, idle, now, r.Colorize))

			if now.Sub(lastSave) >= save {
				if err := SaveState(r.StatePath, r.Engine.State()); err != nil {
					// A failed periodic save must not kill the timer.
					fmt.Fprintf(r.Out, "warning: failed to save timer state: %v\n", err)
				} else {
					lastSave = now
				}
			}
		}
	}
}

func (r *Runner) announce(mode Mode) {
	minutes := int(r.Engine.workSecs) / 60
	if mode == ModeBreak {
		minutes = int(r.Engine.breakSecs) / 60
	}
	fmt.Fprintf(r.Out, "\nStarting %s (%d minutes)...\n", mode, minutes)
}
