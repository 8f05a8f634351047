package migrate

import (
	"encoding/json"
	"fmt"
	"os"
)

// legacyPrefs mirrors the JSON preference document. Enum values are variant
// names such as "Sparkline", "TokyoNight" and "Magenta". Pointer fields
// distinguish absent keys from zero values.
type legacyPrefs struct {
	ViewType *string `json:"view_type"`
	Theme    *string `json:"theme"`
	Color    *string `json:"color"`
	Interval *int    `json:"interval"`
}

// mgParseLegacy reads and decodes a legacy JSON preference document.
func mgParseLegacy(path string) (*legacyPrefs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading legacy preferences: %w", err)
	}

	var p legacyPrefs
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing legacy preferences: %w", err)
	}
	return &p, nil
}
