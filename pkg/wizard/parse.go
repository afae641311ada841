package wizard

import (
	"encoding/json"
	"fmt"
	"io"
)

// Parse decodes a wizard state from its JSON form.
func Parse(data []byte) (*WizardState, error) {
	var state WizardState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("invalid wizard state: %w", err)
	}
	return &state, nil
}

// Decode reads and decodes a wizard state from r.
func Decode(r io.Reader) (*WizardState, error) {
	var state WizardState
	if err := json.NewDecoder(r).Decode(&state); err != nil {
		return nil, fmt.Errorf("invalid wizard state: %w", err)
	}
	return &state, nil
}
