// Package terminal mock implementations for launch-strategy testing.
// Related: internal/terminal/chain.go
package terminal

import "sync"

// MockEmulator is a configurable Emulator for testing. It records launch
// calls and allows configuring availability and launch errors.
type MockEmulator struct {
	mu sync.Mutex

	// Configuration
	name      string
	available bool
	LaunchErr error

	// Call tracking
	LaunchCalls     []Window
	LaunchCallCount int
}

// NewMockEmulator creates a mock that is available and launches successfully.
func NewMockEmulator(name string) *MockEmulator {
	return &MockEmulator{name: name, available: true}
}

// WithAvailable configures whether the emulator binary is "found".
func (m *MockEmulator) WithAvailable(available bool) *MockEmulator {
	m.available = available
	return m
}

// WithLaunchError configures the mock to fail its launch.
func (m *MockEmulator) WithLaunchError(err error) *MockEmulator {
	m.LaunchErr = err
	return m
}

func (m *MockEmulator) Name() string    { return m.name }
func (m *MockEmulator) Available() bool { return m.available }

func (m *MockEmulator) BuildArgs(w Window) []string {
	return []string{"--title=" + w.Title, "--working-directory=" + w.WorkingDir, "--", "bash", "-c", w.Command}
}

func (m *MockEmulator) Launch(w Window) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LaunchCalls = append(m.LaunchCalls, w)
	m.LaunchCallCount++
	return m.LaunchErr
}

// AssertLaunched reports whether Launch was called at least once.
func (m *MockEmulator) AssertLaunched() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.LaunchCallCount > 0
}
