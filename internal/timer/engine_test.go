// Package timer tests the tick arithmetic: countdown, idle compensation,
// the idle cap, daily totals, and mode switches.
// Related: internal/timer/engine.go
package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tickDay = time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

func newWorkEngine(remaining float64) *Engine {
	s := NewState(ModeWork, 40, 25, 0)
	s.Remaining = remaining
	return NewEngine(40, 25, s)
}

func newBreakEngine(remaining float64) *Engine {
	s := NewState(ModeBreak, 40, 25, 0)
	s.Remaining = remaining
	return NewEngine(40, 25, s)
}

func TestNewState_Defaults(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 40*60.0, NewState(ModeWork, 40, 25, 0).Remaining)
	assert.Equal(t, 25*60.0, NewState(ModeBreak, 40, 25, 0).Remaining)
	assert.Equal(t, 12*60.0, NewState(ModeWork, 40, 25, 12).Remaining)
}

func TestTick_WorkActive_CountsDownAndAccumulates(t *testing.T) {
	t.Parallel()

	e := newWorkEngine(100)
	res := e.Tick(tickDay, 5*time.Second)

	assert.True(t, res.Active)
	assert.False(t, res.Switched)
	assert.Equal(t, 99.0, e.State().Remaining)
	assert.Equal(t, 1, e.State().TodayTotal(tickDay))
}

func TestTick_WorkIdle_CountsUpAtWorkBreakRatio(t *testing.T) {
	t.Parallel()

	e := newWorkEngine(100)
	res := e.Tick(tickDay, time.Minute)

	assert.False(t, res.Active)
	// 40/25 = 1.6 seconds earned back per idle second
	assert.InDelta(t, 101.6, e.State().Remaining, 1e-9)
	assert.Equal(t, 0, e.State().TodayTotal(tickDay))
}

func TestTick_WorkIdle_CappedAtTwiceWorkDuration(t *testing.T) {
	t.Parallel()

	cap := 2 * 40 * 60.0
	e := newWorkEngine(cap - 0.5)
	e.Tick(tickDay, time.Minute)

	assert.Equal(t, cap, e.State().Remaining)
}

func TestTick_BreakActive_ExtendsBreakAndCountsWork(t *testing.T) {
	t.Parallel()

	e := newBreakEngine(100)
	res := e.Tick(tickDay, time.Second)

	assert.True(t, res.Active)
	// 25/40 = 0.625 seconds of break earned per active second
	assert.InDelta(t, 100.625, e.State().Remaining, 1e-9)
	assert.Equal(t, 1, e.State().TodayTotal(tickDay))
}

func TestTick_BreakIdle_CountsDown(t *testing.T) {
	t.Parallel()

	e := newBreakEngine(100)
	res := e.Tick(tickDay, time.Minute)

	assert.False(t, res.Active)
	assert.Equal(t, 99.0, e.State().Remaining)
	assert.Equal(t, 0, e.State().TodayTotal(tickDay))
}

func TestTick_IdleThresholdBoundary(t *testing.T) {
	t.Parallel()

	e := newWorkEngine(100)
	assert.True(t, e.Tick(tickDay, 30*time.Second).Active)
	assert.False(t, e.Tick(tickDay, 31*time.Second).Active)
}

func TestTick_WorkToBreakSwitch(t *testing.T) {
	t.Parallel()

	e := newWorkEngine(1)
	res := e.Tick(tickDay, time.Second)

	assert.True(t, res.Switched)
	assert.Equal(t, ModeBreak, res.NewMode)
	assert.Equal(t, ModeBreak, e.State().Mode)
	assert.Equal(t, 25*60.0, e.State().Remaining)
}

func TestTick_BreakToWorkSwitch(t *testing.T) {
	t.Parallel()

	e := newBreakEngine(1)
	res := e.Tick(tickDay, time.Minute) // idle break counts down

	assert.True(t, res.Switched)
	assert.Equal(t, ModeWork, res.NewMode)
	assert.Equal(t, 40*60.0, e.State().Remaining)
}

func TestTick_DailyTotalsKeyedByDate(t *testing.T) {
	t.Parallel()

	e := newWorkEngine(1000)
	day1 := tickDay
	day2 := tickDay.AddDate(0, 0, 1)

	e.Tick(day1, 0)
	e.Tick(day1, 0)
	e.Tick(day2, 0)

	require.Len(t, e.State().DailyWorkTotals, 2)
	assert.Equal(t, 2, e.State().TodayTotal(day1))
	assert.Equal(t, 1, e.State().TodayTotal(day2))
}
