// Package theme resolves the colours used by the gauge widgets. A Theme and
// an Accent select a Palette; the Palette resolves its gradient stops against
// the terminal's colour profile so that widgets never branch on capability.
package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme selects the colour scheme of the dashboard.
type Theme int

const (
	// Default paints everything in the user's accent colour.
	Default Theme = iota
	// TokyoNight uses a fixed three-colour gradient.
	TokyoNight
)

var themeNames = [...]string{
	Default:    "default",
	TokyoNight: "tokyo-night",
}

// String returns the canonical name of the theme.
func (t Theme) String() string {
	if t >= 0 && int(t) < len(themeNames) {
		return themeNames[t]
	}
	return "unknown"
}

// ParseTheme maps a theme name to a Theme. Matching ignores case, dashes and
// underscores, so "TokyoNight", "tokyo-night" and "tokyo_night" are equal.
func ParseTheme(name string) (Theme, error) {
	key := thNormalize(name)
	for i, n := range themeNames {
		if thNormalize(n) == key {
			return Theme(i), nil
		}
	}
	return Default, fmt.Errorf("theme: unknown theme %q", name)
}

// MarshalText implements encoding.TextMarshaler for TOML serialization.
func (t Theme) MarshalText() ([]byte, error) {
	if t < 0 || int(t) >= len(themeNames) {
		return nil, fmt.Errorf("theme: invalid theme %d", int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for TOML parsing.
func (t *Theme) UnmarshalText(text []byte) error {
	parsed, err := ParseTheme(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Accent is one entry of the fixed accent colour palette used by the Default
// theme. The declaration order is the cycling order.
type Accent int

const (
	AccentGreen Accent = iota
	AccentYellow
	AccentRed
	AccentBlue
	AccentMagenta
	AccentCyan
	AccentReset // terminal default foreground
)

// accentCount is the size of the accent ring.
const accentCount = int(AccentReset) + 1

var accentNames = [accentCount]string{
	AccentGreen:   "green",
	AccentYellow:  "yellow",
	AccentRed:     "red",
	AccentBlue:    "blue",
	AccentMagenta: "magenta",
	AccentCyan:    "cyan",
	AccentReset:   "reset",
}

// accentColors holds the basic ANSI colour for each accent.
var accentColors = [accentCount]lipgloss.TerminalColor{
	AccentGreen:   lipgloss.ANSIColor(2),
	AccentYellow:  lipgloss.ANSIColor(3),
	AccentRed:     lipgloss.ANSIColor(1),
	AccentBlue:    lipgloss.ANSIColor(4),
	AccentMagenta: lipgloss.ANSIColor(5),
	AccentCyan:    lipgloss.ANSIColor(6),
	AccentReset:   lipgloss.NoColor{},
}

// Accents returns the accent palette in cycling order.
func Accents() []Accent {
	out := make([]Accent, accentCount)
	for i := range out {
		out[i] = Accent(i)
	}
	return out
}

// Valid reports whether a is a member of the accent palette.
func (a Accent) Valid() bool {
	return a >= 0 && int(a) < accentCount
}

// Next returns the following accent and whether the ring wrapped. An accent
// outside the palette is treated as the end of the ring.
func (a Accent) Next() (Accent, bool) {
	if !a.Valid() || int(a)+1 >= accentCount {
		return AccentGreen, true
	}
	return a + 1, false
}

// Color returns the terminal colour for the accent. Values outside the
// palette wrap around it.
func (a Accent) Color() lipgloss.TerminalColor {
	i := int(a) % accentCount
	if i < 0 {
		i += accentCount
	}
	return accentColors[i]
}

// String returns the canonical name of the accent.
func (a Accent) String() string {
	if a.Valid() {
		return accentNames[a]
	}
	return "unknown"
}

// ParseAccent maps a colour name to an Accent.
func ParseAccent(name string) (Accent, error) {
	key := thNormalize(name)
	for i, n := range accentNames {
		if n == key {
			return Accent(i), nil
		}
	}
	return AccentGreen, fmt.Errorf("theme: unknown color %q", name)
}

// MarshalText implements encoding.TextMarshaler for TOML serialization.
func (a Accent) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("theme: invalid color %d", int(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for TOML parsing.
func (a *Accent) UnmarshalText(text []byte) error {
	parsed, err := ParseAccent(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// thNormalize lowercases s and strips separators for name matching.
func thNormalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(s)
}
