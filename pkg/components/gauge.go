package components

import (
	"math"

	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/pulsegauge/pkg/theme"
)

// gaugeFull is the glyph painted into every lit gauge cell.
const gaugeFull = '\u2588' // █

// GradientGauge is a horizontal bar that fills left to right in proportion
// to Ratio. The bar's width is split into three bands coloured with the
// start, mid and end stops of Colors. The colour of a cell depends only on
// its column, so a half-full bar shows the start band only.
//
// A GradientGauge is configured once per frame and painted with Paint; it
// keeps no state between frames.
type GradientGauge struct {
	Area   Rect
	Ratio  float64        // clamped to [0, 1]; NaN counts as 0
	Colors theme.Gradient // resolved for the current colour profile
	Block  *Block         // optional border, painted before the bar
	Style  lipgloss.Style // base style applied to Area first
}

// EffectiveRatio returns Ratio clamped to [0, 1].
func (g GradientGauge) EffectiveRatio() float64 {
	return clampRatio(g.Ratio)
}

// Paint draws the gauge into buf. Columns past the fill are left as the
// base style painted them. A gauge whose drawable area is empty paints
// nothing beyond its style and border.
func (g GradientGauge) Paint(buf *Buffer) {
	buf.SetStyle(g.Area, g.Style)

	area := g.Area
	if g.Block != nil {
		g.Block.Paint(area, buf)
		area = g.Block.Inner(area)
	}
	if area.Empty() {
		return
	}

	filled := filledColumns(area.Width, g.EffectiveRatio())
	third := max(1, area.Width) / 3
	for y := area.Y; y < area.Bottom(); y++ {
		for off := 0; off < filled; off++ {
			buf.SetRune(area.X+off, y, gaugeFull, bandColor(off, third, g.Colors))
		}
	}
}

// filledColumns returns round(width*ratio) for a ratio in [0, 1]; the
// result always lies in [0, width].
func filledColumns(width int, ratio float64) int {
	n := int(math.Round(float64(width) * ratio))
	return min(max(n, 0), width)
}

// bandColor selects the gradient stop for a column offset. The last band
// absorbs the remainder when the width is not a multiple of three.
func bandColor(offset, third int, c theme.Gradient) lipgloss.TerminalColor {
	switch {
	case offset < third:
		return c.Start
	case offset < 2*third:
		return c.Mid
	default:
		return c.End
	}
}

// clampRatio confines r to [0, 1].
func clampRatio(r float64) float64 {
	if math.IsNaN(r) || r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}
