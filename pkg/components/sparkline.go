package components

import (
	"math"

	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/pulsegauge/pkg/theme"
)

// Sparkline block characters: 8 vertical levels per cell.
var sparkBlocks = [8]rune{
	'\u2581', // 1/8 ▁
	'\u2582', // 2/8 ▂
	'\u2583', // 3/8 ▃
	'\u2584', // 4/8 ▄
	'\u2585', // 5/8 ▅
	'\u2586', // 6/8 ▆
	'\u2587', // 7/8 ▇
	'\u2588', // 8/8 █
}

// Sparkline draws a history of samples as vertical bars, newest at the
// right edge. Each column's height is proportional to its value over Max;
// rows are coloured bottom to top in thirds with the gradient stops.
type Sparkline struct {
	Area   Rect
	Values []float64
	Max    float64 // full-scale value; <= 0 scales to the largest visible sample
	Colors theme.Gradient
	Block  *Block
	Style  lipgloss.Style
}

// Paint draws the sparkline into buf.
func (s Sparkline) Paint(buf *Buffer) {
	buf.SetStyle(s.Area, s.Style)

	area := s.Area
	if s.Block != nil {
		s.Block.Paint(area, buf)
		area = s.Block.Inner(area)
	}
	if area.Empty() || len(s.Values) == 0 {
		return
	}

	points := s.Values
	if len(points) > area.Width {
		points = points[len(points)-area.Width:]
	}
	full := s.Max
	if full <= 0 {
		_, full = sparkAutoRange(points)
	}
	if full <= 0 || math.IsNaN(full) {
		return
	}

	x0 := area.Right() - len(points)
	for i, v := range points {
		units := int(math.Round(clampRatio(v/full) * float64(area.Height*8)))
		for row := 0; row < area.Height && units > 0; row++ {
			glyph := sparkBlocks[min(units, 8)-1]
			buf.SetRune(x0+i, area.Bottom()-1-row, glyph, sparkRowColor(row, area.Height, s.Colors))
			units -= 8
		}
	}
}

// sparkRowColor selects the gradient stop for a row counted from the
// bottom of an area of the given height.
func sparkRowColor(row, height int, c theme.Gradient) lipgloss.TerminalColor {
	switch row * 3 / height {
	case 0:
		return c.Start
	case 1:
		return c.Mid
	default:
		return c.End
	}
}

// sparkAutoRange finds the min and max values in a data slice.
func sparkAutoRange(data []float64) (minY, maxY float64) {
	if len(data) == 0 {
		return 0, 0
	}
	minY = data[0]
	maxY = data[0]
	for _, v := range data[1:] {
		if v < minY {
			minY = v
		}
		if v > maxY {
			maxY = v
		}
	}
	return minY, maxY
}
