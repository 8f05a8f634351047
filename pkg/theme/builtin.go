package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"gitlab.com/tinyland/lab/pulsegauge/pkg/terminal"
)

// Palette is the resolved set of colours for a theme. The three gradient
// stops exist twice: once for 24-bit terminals and once as 256-colour
// indices for everything else.
type Palette struct {
	Border lipgloss.TerminalColor
	Text   lipgloss.TerminalColor

	Start lipgloss.TerminalColor
	Mid   lipgloss.TerminalColor
	End   lipgloss.TerminalColor

	Start256 lipgloss.TerminalColor
	Mid256   lipgloss.TerminalColor
	End256   lipgloss.TerminalColor
}

// Gradient is the start/mid/end triple for the current colour profile.
type Gradient struct {
	Start lipgloss.TerminalColor
	Mid   lipgloss.TerminalColor
	End   lipgloss.TerminalColor
}

// Tokyo Night gradient stops, green to red.
var (
	thTokyoNightStart = lipgloss.Color("#9ece6a")
	thTokyoNightMid   = lipgloss.Color("#e0af68")
	thTokyoNightEnd   = lipgloss.Color("#f7768e")

	thTokyoNightStart256 = lipgloss.ANSIColor(150)
	thTokyoNightMid256   = lipgloss.ANSIColor(180)
	thTokyoNightEnd256   = lipgloss.ANSIColor(211)
)

// TokyoNightPalette is the fixed palette of the TokyoNight theme.
var TokyoNightPalette = Palette{
	Border:   lipgloss.Color("#7dcfff"),
	Text:     lipgloss.Color("#cfc9c2"),
	Start:    thTokyoNightStart,
	Mid:      thTokyoNightMid,
	End:      thTokyoNightEnd,
	Start256: thTokyoNightStart256,
	Mid256:   thTokyoNightMid256,
	End256:   thTokyoNightEnd256,
}

// For returns the palette for a theme. Under Default every stop and the
// border collapse to the accent colour; the accent is ignored otherwise.
func For(t Theme, accent Accent) Palette {
	if t == TokyoNight {
		return TokyoNightPalette
	}
	c := accent.Color()
	return Palette{
		Border:   c,
		Text:     lipgloss.NoColor{},
		Start:    c,
		Mid:      c,
		End:      c,
		Start256: c,
		Mid256:   c,
		End256:   c,
	}
}

// StartColor returns the start stop for the given profile.
func (p Palette) StartColor(profile termenv.Profile) lipgloss.TerminalColor {
	return thPick(profile, p.Start, p.Start256)
}

// MidColor returns the mid stop for the given profile.
func (p Palette) MidColor(profile termenv.Profile) lipgloss.TerminalColor {
	return thPick(profile, p.Mid, p.Mid256)
}

// EndColor returns the end stop for the given profile.
func (p Palette) EndColor(profile termenv.Profile) lipgloss.TerminalColor {
	return thPick(profile, p.End, p.End256)
}

// Gradient resolves all three stops for the given profile.
func (p Palette) Gradient(profile termenv.Profile) Gradient {
	return Gradient{
		Start: p.StartColor(profile),
		Mid:   p.MidColor(profile),
		End:   p.EndColor(profile),
	}
}

// ResolveGradient detects the colour profile from the environment and
// resolves the stops against it.
func (p Palette) ResolveGradient() Gradient {
	return p.Gradient(terminal.DetectColorProfile())
}

// thPick selects the true-colour value on 24-bit terminals and the indexed
// fallback everywhere else.
func thPick(profile termenv.Profile, trueColor, indexed lipgloss.TerminalColor) lipgloss.TerminalColor {
	if profile == termenv.TrueColor {
		return trueColor
	}
	return indexed
}
