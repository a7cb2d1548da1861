package terminal

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChain_PrimarySucceeds_FallbackNeverAttempted(t *testing.T) {
	t.Parallel()

	primary := NewMockEmulator("cosmic-term")
	fallback := NewMockEmulator("gnome-terminal")

	launched, err := NewChain(primary, fallback).Launch(Window{Title: "Pomodoro"})
	require.NoError(t, err)

	assert.Equal(t, "cosmic-term", launched.Name())
	assert.True(t, primary.AssertLaunched())
	assert.False(t, fallback.AssertLaunched())
}

func TestChain_PrimaryMissing_FallbackTaken(t *testing.T) {
	t.Parallel()

	primary := NewMockEmulator("cosmic-term").WithAvailable(false)
	fallback := NewMockEmulator("gnome-terminal")

	var lines []string
	c := NewChain(primary, fallback)
	c.Logf = func(format string, args ...interface{}) {
		lines = append(lines, fmt.Sprintf(format, args...))
	}

	launched, err := c.Launch(Window{})
	require.NoError(t, err)

	assert.Equal(t, "gnome-terminal", launched.Name())
	assert.False(t, primary.AssertLaunched())
	require.NotEmpty(t, lines)
	assert.Contains(t, lines[0], "cosmic-term not found in PATH")
}

func TestChain_PrimaryLaunchFails_FallbackTaken(t *testing.T) {
	t.Parallel()

	primary := NewMockEmulator("cosmic-term").WithLaunchError(errors.New("exec format error"))
	fallback := NewMockEmulator("gnome-terminal")

	var lines []string
	c := NewChain(primary, fallback)
	c.Logf = func(format string, args ...interface{}) {
		lines = append(lines, fmt.Sprintf(format, args...))
	}

	launched, err := c.Launch(Window{})
	require.NoError(t, err)

	assert.Equal(t, "gnome-terminal", launched.Name())
	assert.True(t, primary.AssertLaunched())
	assert.True(t, fallback.AssertLaunched())
	require.NotEmpty(t, lines)
	assert.Contains(t, lines[0], "cosmic-term launch failed")
}

func TestChain_AllFail(t *testing.T) {
	t.Parallel()

	primary := NewMockEmulator("cosmic-term").WithAvailable(false)
	fallback := NewMockEmulator("gnome-terminal").WithLaunchError(errors.New("boom"))

	launched, err := NewChain(primary, fallback).Launch(Window{})
	assert.Nil(t, launched)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAllFailed)
}

func TestChain_WindowPassedThrough(t *testing.T) {
	t.Parallel()

	e := NewMockEmulator("cosmic-term")
	w := Window{Title: "Pomodoro", WorkingDir: "/home/u/pomodoro", Command: "true"}

	_, err := NewChain(e).Launch(w)
	require.NoError(t, err)
	require.Len(t, e.LaunchCalls, 1)
	assert.Equal(t, w, e.LaunchCalls[0])
}
