package terminal

import (
	"fmt"
	"os/exec"
)

// GeometryFunc lazily produces a --geometry flag for emulators that accept
// one. It runs only when that emulator is actually attempted, so the screen
// probe is never spawned on the primary path. An empty return omits the flag.
type GeometryFunc func() string

// emulator is the common strategy implementation. All supported emulators
// take the gnome-style `--title=... --working-directory=... -- bash -c ...`
// shape; they differ only in whether a geometry flag is prepended.
type emulator struct {
	name     string
	geometry GeometryFunc

	lookPath func(file string) (string, error)
	start    func(name string, args ...string) error
}

// NewCosmicTerm returns the cosmic-term launch strategy.
func NewCosmicTerm() Emulator {
	return newEmulator("cosmic-term", nil)
}

// NewGnomeTerminal returns the gnome-terminal launch strategy with an
// optional geometry provider for right-aligned placement.
func NewGnomeTerminal(geometry GeometryFunc) Emulator {
	return newEmulator("gnome-terminal", geometry)
}

// New returns a strategy for an arbitrary emulator binary named in the
// configuration. Known names get their dedicated constructors' behavior;
// anything else is launched with the common arg shape and no geometry.
func New(name string, geometry GeometryFunc) Emulator {
	switch name {
	case "cosmic-term":
		return NewCosmicTerm()
	case "gnome-terminal":
		return NewGnomeTerminal(geometry)
	default:
		return newEmulator(name, nil)
	}
}

func newEmulator(name string, geometry GeometryFunc) *emulator {
	return &emulator{
		name:     name,
		geometry: geometry,
		lookPath: exec.LookPath,
		start: func(name string, args ...string) error {
			cmd := exec.Command(name, args...)
			if err := cmd.Start(); err != nil {
				return fmt.Errorf("failed to start %s: %w", name, err)
			}
			// Reap the child when it eventually exits; the launcher
			// itself never blocks on the spawned terminal.
			go cmd.Wait()
			return nil
		},
	}
}

func (e *emulator) Name() string { return e.name }

func (e *emulator) Available() bool {
	_, err := e.lookPath(e.name)
	return err == nil
}

func (e *emulator) BuildArgs(w Window) []string {
	args := make([]string, 0, 6)
	if e.geometry != nil {
		if flag := e.geometry(); flag != "" {
			args = append(args, flag)
		}
	}
	args = append(args,
		"--title="+w.Title,
		"--working-directory="+w.WorkingDir,
		"--", "bash", "-c", w.Command,
	)
	return args
}

func (e *emulator) Launch(w Window) error {
	return e.start(e.name, e.BuildArgs(w)...)
}
