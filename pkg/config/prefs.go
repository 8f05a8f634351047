// Package config holds the persisted user preferences for pulsegauge: the
// view type, the theme, the accent colour and the sampling interval.
package config

import (
	"fmt"
	"strings"
	"time"

	"gitlab.com/tinyland/lab/pulsegauge/pkg/theme"
)

// Interval bounds in milliseconds. Every stored interval is a multiple of
// IntervalStep within [MinInterval, MaxInterval].
const (
	IntervalStep    = 250
	MinInterval     = IntervalStep
	MaxInterval     = 10_000
	DefaultInterval = 1000
)

// ViewType selects which widget renders the sampled metric.
type ViewType int

const (
	Sparkline ViewType = iota
	Gauge
)

var viewTypeNames = [...]string{
	Sparkline: "sparkline",
	Gauge:     "gauge",
}

// String returns the canonical name of the view type.
func (v ViewType) String() string {
	if v >= 0 && int(v) < len(viewTypeNames) {
		return viewTypeNames[v]
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler for TOML serialization.
func (v ViewType) MarshalText() ([]byte, error) {
	if v < 0 || int(v) >= len(viewTypeNames) {
		return nil, fmt.Errorf("config: invalid view type %d", int(v))
	}
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for TOML parsing.
func (v *ViewType) UnmarshalText(text []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	for i, n := range viewTypeNames {
		if n == s {
			*v = ViewType(i)
			return nil
		}
	}
	return fmt.Errorf("config: unknown view type %q", string(text))
}

// Preferences is the flat preference record written to disk.
type Preferences struct {
	ViewType ViewType     `toml:"view_type"`
	Theme    theme.Theme  `toml:"theme"`
	Color    theme.Accent `toml:"color"`    // only used by theme.Default
	Interval int          `toml:"interval"` // milliseconds
}

// DefaultPreferences returns the record used when nothing valid is on disk.
func DefaultPreferences() Preferences {
	return Preferences{
		ViewType: Sparkline,
		Theme:    theme.Default,
		Color:    theme.AccentGreen,
		Interval: DefaultInterval,
	}
}

// Palette derives the colour palette for the current theme and accent.
func (p Preferences) Palette() theme.Palette {
	return theme.For(p.Theme, p.Color)
}

// IntervalDuration returns the sampling interval as a time.Duration.
func (p Preferences) IntervalDuration() time.Duration {
	return time.Duration(p.Interval) * time.Millisecond
}

// nextTheme advances the joint (theme, color) ring. The accent palette is
// only walked while the theme is Default; stepping past its last entry
// switches to TokyoNight, and TokyoNight wraps back to Default with the
// first accent. From the default record the ring closes after eight steps.
func (p *Preferences) nextTheme() {
	switch p.Theme {
	case theme.TokyoNight:
		p.Theme = theme.Default
		p.Color = theme.AccentGreen
	default:
		if !p.Color.Valid() {
			p.Color = theme.AccentGreen
			return
		}
		next, wrapped := p.Color.Next()
		if wrapped {
			p.Theme = theme.TokyoNight
			return
		}
		p.Color = next
	}
}

func (p *Preferences) nextViewType() {
	if p.ViewType == Sparkline {
		p.ViewType = Gauge
		return
	}
	p.ViewType = Sparkline
}

// incInterval moves up to the next step boundary, capped at MaxInterval.
func (p *Preferences) incInterval() {
	p.Interval = min((p.Interval+IntervalStep)/IntervalStep*IntervalStep, MaxInterval)
}

// decInterval moves down to the previous step boundary, floored at
// MinInterval.
func (p *Preferences) decInterval() {
	v := max(p.Interval-IntervalStep, 0)
	v = (v + IntervalStep - 1) / IntervalStep * IntervalStep
	p.Interval = max(v, MinInterval)
}

// NormalizeInterval clamps an externally supplied interval into range and
// snaps it to the nearest step.
func NormalizeInterval(ms int) int {
	ms = min(max(ms, MinInterval), MaxInterval)
	return (ms + IntervalStep/2) / IntervalStep * IntervalStep
}
