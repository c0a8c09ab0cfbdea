package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"wxdeck/log"
)

const StateFileName = "state.json"

// State is the small slice of session state that persists between runs:
// the last city viewed and which hint screens the user has dismissed.
// Layout state (expansion flags) is deliberately not persisted.
type State struct {
	// LastCity is the city selected when the app last exited.
	LastCity string `json:"last_city"`
	// HintsSeen is a bitmask tracking which onboarding hints have been shown.
	HintsSeen uint32 `json:"hints_seen"`
}

// DefaultState returns the default state
func DefaultState() *State {
	return &State{}
}

// LoadState loads the state from disk. If it cannot be done, we return the
// default state.
func LoadState() *State {
	configDir, err := GetConfigDir()
	if err != nil {
		log.ErrorLog.Printf("failed to get config directory: %v", err)
		return DefaultState()
	}

	statePath := filepath.Join(configDir, StateFileName)
	data, err := os.ReadFile(statePath)
	if err != nil {
		if os.IsNotExist(err) {
			defaultState := DefaultState()
			if saveErr := SaveState(defaultState); saveErr != nil {
				log.WarningLog.Printf("failed to save default state: %v", saveErr)
			}
			return defaultState
		}

		log.WarningLog.Printf("failed to get state file: %v", err)
		return DefaultState()
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		log.ErrorLog.Printf("failed to parse state file: %v", err)
		return DefaultState()
	}
	return &state
}

// SaveState saves the state to disk.
func SaveState(state *State) error {
	configDir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	return os.WriteFile(filepath.Join(configDir, StateFileName), data, 0644)
}

// SetLastCity records the selected city and persists immediately.
func (s *State) SetLastCity(city string) error {
	s.LastCity = city
	return SaveState(s)
}

// GetHintsSeen returns the bitmask of dismissed hints.
func (s *State) GetHintsSeen() uint32 {
	return s.HintsSeen
}

// SetHintsSeen updates the bitmask of dismissed hints.
func (s *State) SetHintsSeen(seen uint32) error {
	s.HintsSeen = seen
	return SaveState(s)
}
