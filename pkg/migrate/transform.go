package migrate

import (
	"fmt"
	"strconv"

	"gitlab.com/tinyland/lab/pulsegauge/pkg/config"
	"gitlab.com/tinyland/lab/pulsegauge/pkg/theme"
)

// mgTransform converts a legacy document into Preferences. Absent keys keep
// their defaults silently; unrecognised values fall back to the default and
// produce a warning.
func mgTransform(legacy *legacyPrefs) (config.Preferences, []Change, []string) {
	prefs := config.DefaultPreferences()
	var changes []Change
	var warnings []string

	if legacy.ViewType != nil {
		var v config.ViewType
		if err := v.UnmarshalText([]byte(*legacy.ViewType)); err != nil {
			warnings = append(warnings, fmt.Sprintf("view_type %q not recognised, using %s", *legacy.ViewType, prefs.ViewType))
			changes = append(changes, mgChange("view_type", *legacy.ViewType, prefs.ViewType.String(), "defaulted"))
		} else {
			prefs.ViewType = v
			changes = append(changes, mgChange("view_type", *legacy.ViewType, v.String(), "changed"))
		}
	}

	if legacy.Theme != nil {
		if t, err := theme.ParseTheme(*legacy.Theme); err != nil {
			warnings = append(warnings, fmt.Sprintf("theme %q not recognised, using %s", *legacy.Theme, prefs.Theme))
			changes = append(changes, mgChange("theme", *legacy.Theme, prefs.Theme.String(), "defaulted"))
		} else {
			prefs.Theme = t
			changes = append(changes, mgChange("theme", *legacy.Theme, t.String(), "changed"))
		}
	}

	if legacy.Color != nil {
		if a, err := theme.ParseAccent(*legacy.Color); err != nil {
			warnings = append(warnings, fmt.Sprintf("color %q is not a palette colour, using %s", *legacy.Color, prefs.Color))
			changes = append(changes, mgChange("color", *legacy.Color, prefs.Color.String(), "defaulted"))
		} else {
			prefs.Color = a
			changes = append(changes, mgChange("color", *legacy.Color, a.String(), "changed"))
		}
	}

	if legacy.Interval != nil {
		raw := *legacy.Interval
		prefs.Interval = config.NormalizeInterval(raw)
		action := "changed"
		if prefs.Interval != raw {
			action = "adjusted"
			warnings = append(warnings, fmt.Sprintf("interval %d adjusted to %d", raw, prefs.Interval))
		}
		changes = append(changes, mgChange("interval", strconv.Itoa(raw), strconv.Itoa(prefs.Interval), action))
	}

	return prefs, changes, warnings
}

func mgChange(field, oldValue, newValue, action string) Change {
	return Change{Field: field, OldValue: oldValue, NewValue: newValue, Action: action}
}
