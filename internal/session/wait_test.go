package session

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWaiter(marker string, timeout, fallback time.Duration) *Waiter {
	w := NewWaiter(marker, timeout, fallback)
	w.PollInterval = 10 * time.Millisecond
	w.getenv = func(string) string { return "" }
	return w
}

func TestWait_MarkerAlreadyPresent(t *testing.T) {
	t.Parallel()

	marker := filepath.Join(t.TempDir(), "session-ready")
	require.NoError(t, os.WriteFile(marker, nil, 0644))

	w := newTestWaiter(marker, time.Second, time.Second)

	start := time.Now()
	reason, err := w.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ReasonMarker, reason)
	assert.Less(t, time.Since(start), 200*time.Millisecond)
}

func TestWait_MarkerAppearsDuringPoll(t *testing.T) {
	t.Parallel()

	marker := filepath.Join(t.TempDir(), "session-ready")
	w := newTestWaiter(marker, time.Second, time.Second)

	go func() {
		time.Sleep(50 * time.Millisecond)
		os.WriteFile(marker, nil, 0644)
	}()

	reason, err := w.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ReasonMarker, reason)
}

func TestWait_DisplayEnvSignal(t *testing.T) {
	t.Parallel()

	w := newTestWaiter("", time.Second, time.Second)
	w.getenv = func(key string) string {
		if key == "WAYLAND_DISPLAY" {
			return "wayland-0"
		}
		return ""
	}

	reason, err := w.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ReasonDisplay, reason)
}

func TestWait_TimeoutFallsBackToFixedDelay(t *testing.T) {
	t.Parallel()

	w := newTestWaiter(filepath.Join(t.TempDir(), "never"), 30*time.Millisecond, 60*time.Millisecond)

	start := time.Now()
	reason, err := w.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ReasonDelay, reason)
	// polling window plus the full fallback delay
	assert.GreaterOrEqual(t, time.Since(start), 90*time.Millisecond)
}

func TestWait_ContextCancelled(t *testing.T) {
	t.Parallel()

	w := newTestWaiter(filepath.Join(t.TempDir(), "never"), time.Minute, time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	_, err := w.Wait(ctx)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestWait_MarkerConfiguredIgnoresDisplayEnv(t *testing.T) {
	t.Parallel()

	// A configured marker is the only accepted signal; display env must
	// not short-circuit the wait.
	w := newTestWaiter(filepath.Join(t.TempDir(), "never"), 30*time.Millisecond, 20*time.Millisecond)
	w.getenv = func(string) string { return ":0" }

	reason, err := w.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ReasonDelay, reason)
}
