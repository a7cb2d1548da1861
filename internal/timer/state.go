package timer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// LoadState loads persisted timer state. A missing or unreadable file
// returns (nil, nil): the caller starts fresh. Only a corrupt JSON document
// is reported, so the caller can mention it before starting over.
func LoadState(path string) (*State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil
	}
	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("corrupt timer state %s: %w", path, err)
	}
	if s.Mode != ModeWork && s.Mode != ModeBreak {
		return nil, fmt.Errorf("corrupt timer state %s: unknown mode %q", path, s.Mode)
	}
	if s.DailyWorkTotals == nil {
		s.DailyWorkTotals = make(map[string]int)
	}
	return &s, nil
}

// SaveState persists timer state atomically via temp file + rename.
func SaveState(path string, s *State) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal timer state: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}
