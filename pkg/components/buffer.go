package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Rect is a rectangular region of terminal cells. X and Y are the column
// and row of the top-left cell.
type Rect struct {
	X, Y          int
	Width, Height int
}

// NewRect returns a Rect at (x, y) with the given size. Negative sizes are
// clamped to zero.
func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: max(width, 0), Height: max(height, 0)}
}

// Empty reports whether the rect covers no cells.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Right returns the first column past the rect.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the first row past the rect.
func (r Rect) Bottom() int { return r.Y + r.Height }

// Contains reports whether the cell (x, y) lies inside the rect.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Intersect returns the overlap of r and o, or an empty rect.
func (r Rect) Intersect(o Rect) Rect {
	x0, y0 := max(r.X, o.X), max(r.Y, o.Y)
	x1, y1 := min(r.Right(), o.Right()), min(r.Bottom(), o.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Cell is one terminal cell: a glyph plus its colours.
type Cell struct {
	Rune rune
	Fg   lipgloss.TerminalColor
	Bg   lipgloss.TerminalColor
	Bold bool
}

// blankCell is the content of a freshly allocated buffer.
var blankCell = Cell{Rune: ' ', Fg: lipgloss.NoColor{}, Bg: lipgloss.NoColor{}}

// Buffer is a grid of cells covering Area. Widgets paint into a Buffer and
// the application renders it once per frame. Writes outside Area are
// dropped.
type Buffer struct {
	area  Rect
	cells []Cell
}

// NewBuffer allocates a blank buffer covering area.
func NewBuffer(area Rect) *Buffer {
	area = NewRect(area.X, area.Y, area.Width, area.Height)
	cells := make([]Cell, area.Width*area.Height)
	for i := range cells {
		cells[i] = blankCell
	}
	return &Buffer{area: area, cells: cells}
}

// Area returns the region the buffer covers.
func (b *Buffer) Area() Rect {
	return b.area
}

// index returns the slice index of (x, y), or -1 when outside the buffer.
func (b *Buffer) index(x, y int) int {
	if !b.area.Contains(x, y) {
		return -1
	}
	return (y-b.area.Y)*b.area.Width + (x - b.area.X)
}

// Cell returns the cell at (x, y) and whether it lies inside the buffer.
func (b *Buffer) Cell(x, y int) (Cell, bool) {
	i := b.index(x, y)
	if i < 0 {
		return Cell{}, false
	}
	return b.cells[i], true
}

// SetRune sets the glyph and foreground of the cell at (x, y), keeping its
// background and attributes. A nil fg leaves the foreground as it is.
func (b *Buffer) SetRune(x, y int, r rune, fg lipgloss.TerminalColor) {
	i := b.index(x, y)
	if i < 0 {
		return
	}
	b.cells[i].Rune = r
	if fg != nil {
		b.cells[i].Fg = fg
	}
}

// SetStyle applies the colours and bold attribute that style sets to every
// cell of area. Attributes style leaves unset are not touched.
func (b *Buffer) SetStyle(area Rect, style lipgloss.Style) {
	area = area.Intersect(b.area)
	if area.Empty() {
		return
	}
	fg, hasFg := styleColor(style.GetForeground())
	bg, hasBg := styleColor(style.GetBackground())
	bold := style.GetBold()
	if !hasFg && !hasBg && !bold {
		return
	}
	for y := area.Y; y < area.Bottom(); y++ {
		for x := area.X; x < area.Right(); x++ {
			c := &b.cells[b.index(x, y)]
			if hasFg {
				c.Fg = fg
			}
			if hasBg {
				c.Bg = bg
			}
			if bold {
				c.Bold = true
			}
		}
	}
}

// SetString writes s starting at (x, y), one rune per cell, applying style
// to each written cell. It stops at the right edge of limit and returns the
// number of cells written.
func (b *Buffer) SetString(x, y int, s string, limit Rect, style lipgloss.Style) int {
	n := 0
	for _, r := range s {
		cx := x + n
		if cx >= limit.Right() {
			break
		}
		if limit.Contains(cx, y) {
			b.SetRune(cx, y, r, lipgloss.NoColor{})
			b.SetStyle(NewRect(cx, y, 1, 1), style)
		}
		n++
	}
	return n
}

// String returns the buffer's glyphs without any styling, rows joined by
// newlines.
func (b *Buffer) String() string {
	var sb strings.Builder
	for row := 0; row < b.area.Height; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range b.cells[row*b.area.Width : (row+1)*b.area.Width] {
			sb.WriteRune(c.Rune)
		}
	}
	return sb.String()
}

// styleColor reports the colour a style sets, if any.
func styleColor(c lipgloss.TerminalColor) (lipgloss.TerminalColor, bool) {
	if c == nil {
		return lipgloss.NoColor{}, false
	}
	if _, none := c.(lipgloss.NoColor); none {
		return c, false
	}
	return c, true
}
