// Package timer implements the Pomodoro engine: a 1 Hz work/break countdown
// with input-idle compensation and daily work totals. The engine is pure
// tick arithmetic over injected time and idle measurements; the surrounding
// Runner owns the clock, the activity probe, rendering, and persistence.
package timer

import (
	"time"
)

// Mode is the current timer phase.
type Mode string

const (
	ModeWork  Mode = "work"
	ModeBreak Mode = "break"
)

// Idle threshold: no input for this long counts the user as idle.
const idleThreshold = 30 * time.Second

// dateLayout keys daily work totals.
const dateLayout = "2006-01-02"

// State is the engine's evolving state. Fields map 1:1 to the persisted
// JSON document so old state files load unchanged.
type State struct {
	Mode Mode `json:"current_mode"`
	// Remaining is seconds left in the current mode. Fractional because
	// idle compensation adds non-integral amounts per tick.
	Remaining float64 `json:"remaining_time"`
	// DailyWorkTotals maps YYYY-MM-DD to seconds worked that day.
	DailyWorkTotals map[string]int `json:"daily_work_totals"`
}

// NewState returns a fresh state starting the given mode with its full
// duration. startMinutes > 0 overrides the starting remaining time.
func NewState(mode Mode, workMinutes, breakMinutes int, startMinutes float64) *State {
	s := &State{
		Mode:            mode,
		DailyWorkTotals: make(map[string]int),
	}
	switch {
	case startMinutes > 0:
		s.Remaining = startMinutes * 60
	case mode == ModeBreak:
		s.Remaining = float64(breakMinutes) * 60
	default:
		s.Remaining = float64(workMinutes) * 60
	}
	return s
}

// TickResult reports what a tick did.
type TickResult struct {
	// Active is whether the user counted as active this tick.
	Active bool
	// Switched is true when the tick crossed zero and flipped modes.
	Switched bool
	// NewMode is the mode after the tick.
	NewMode Mode
}

// Engine advances a State one second at a time.
type Engine struct {
	workSecs  float64
	breakSecs float64
	// maxIdleCap bounds the count-up during idle work time.
	maxIdleCap float64
	// Count-up rates preserve the work:break ratio: idle minutes during
	// work earn back proportional work time, active minutes during break
	// extend the break proportionally.
	workIdleRate    float64
	breakActiveRate float64

	state *State
}

// NewEngine builds an engine over the given state.
func NewEngine(workMinutes, breakMinutes int, state *State) *Engine {
	work := float64(workMinutes) * 60
	brk := float64(breakMinutes) * 60
	if state.DailyWorkTotals == nil {
		state.DailyWorkTotals = make(map[string]int)
	}
	return &Engine{
		workSecs:        work,
		breakSecs:       brk,
		maxIdleCap:      work * 2,
		workIdleRate:    float64(workMinutes) / float64(breakMinutes),
		breakActiveRate: float64(breakMinutes) / float64(workMinutes),
		state:           state,
	}
}

// State exposes the engine's state for rendering and persistence.
func (e *Engine) State() *State { return e.state }

// Tick advances the state by one second. idleFor is the time since the last
// user input; now keys the daily total.
func (e *Engine) Tick(now time.Time, idleFor time.Duration) TickResult {
	s := e.state
	active := idleFor <= idleThreshold
	today := now.Format(dateLayout)

	countsAsWork := false
	switch s.Mode {
	case ModeWork:
		if active {
			s.Remaining--
			countsAsWork = true
		} else {
			s.Remaining += e.workIdleRate
			if s.Remaining > e.maxIdleCap {
				s.Remaining = e.maxIdleCap
			}
		}
	case ModeBreak:
		if active {
			// Active breaks still count toward the daily total.
			s.Remaining += e.breakActiveRate
			countsAsWork = true
		} else {
			s.Remaining--
		}
	}

	if countsAsWork {
		s.DailyWorkTotals[today]++
	}

	res := TickResult{Active: active, NewMode: s.Mode}
	if s.Remaining <= 0 {
		if s.Mode == ModeWork {
			s.Mode = ModeBreak
			s.Remaining = e.breakSecs
		} else {
			s.Mode = ModeWork
			s.Remaining = e.workSecs
		}
		res.Switched = true
		res.NewMode = s.Mode
	}
	return res
}

// TodayTotal returns the seconds worked on the given day.
func (s *State) TodayTotal(now time.Time) int {
	return s.DailyWorkTotals[now.Format(dateLayout)]
}
