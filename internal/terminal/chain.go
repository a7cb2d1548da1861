package terminal

import (
	"errors"
	"fmt"
)

// ErrAllFailed is returned when every strategy in the chain was either
// unavailable or failed to spawn.
var ErrAllFailed = errors.New("no terminal emulator could be launched")

// Chain tries an ordered list of launch strategies until one spawns.
type Chain struct {
	emulators []Emulator

	// Logf receives one diagnostic line per skipped or failed strategy.
	// Nil disables logging.
	Logf func(format string, args ...interface{})
}

// NewChain builds a chain over the given strategies, in preference order.
func NewChain(emulators ...Emulator) *Chain {
	return &Chain{emulators: emulators}
}

// Launch attempts each strategy in order and returns the one that spawned.
// An unavailable binary and a failed spawn are both recoverable: the next
// strategy is tried and the reason is logged. Only full exhaustion is an
// error.
func (c *Chain) Launch(w Window) (Emulator, error) {
	for _, e := range c.emulators {
		if !e.Available() {
			c.logf("%s not found in PATH, trying next terminal", e.Name())
			continue
		}
		if err := e.Launch(w); err != nil {
			c.logf("%s launch failed (%v), trying next terminal", e.Name(), err)
			continue
		}
		c.logf("launched %s", e.Name())
		return e, nil
	}
	return nil, fmt.Errorf("%w (tried %d)", ErrAllFailed, len(c.emulators))
}

func (c *Chain) logf(format string, args ...interface{}) {
	if c.Logf != nil {
		c.Logf(format, args...)
	}
}
