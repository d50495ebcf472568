package services

import (
	"encoding/json"
	"fmt"
)

// DecodeModifiers reads the stored JSON array of modifiers.
// A missing value, an empty string and JSON null all decode to an empty slice.
func DecodeModifiers(raw *string) ([]string, error) {
	if raw == nil || *raw == "" {
		return []string{}, nil
	}

	var modifiers []string
	if err := json.Unmarshal([]byte(*raw), &modifiers); err != nil {
		return nil, fmt.Errorf("%w: modifiers %q: %v", ErrRowIsMalformed, *raw, err)
	}
	if modifiers == nil {
		return []string{}, nil
	}
	return modifiers, nil
}

// EncodeModifiers produces the stored form of modifiers, "[]" when there are none.
func EncodeModifiers(modifiers []string) string {
	if modifiers == nil {
		modifiers = []string{}
	}
	// A slice of strings always marshals.
	data, _ := json.Marshal(modifiers)
	return string(data)
}
