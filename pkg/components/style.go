package components

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// NewRenderer returns a lipgloss renderer writing to w with its colour
// profile pinned to profile, so output does not depend on whether w is a
// terminal.
func NewRenderer(w io.Writer, profile termenv.Profile) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(profile)
	return r
}

// Render serialises the buffer to styled text using r. Consecutive cells
// with identical colours share one escape sequence; rows are joined by
// newlines.
func (b *Buffer) Render(r *lipgloss.Renderer) string {
	var sb strings.Builder
	var run strings.Builder
	for row := 0; row < b.area.Height; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		cells := b.cells[row*b.area.Width : (row+1)*b.area.Width]
		start := 0
		for start < len(cells) {
			end := start + 1
			for end < len(cells) && sameStyle(cells[start], cells[end]) {
				end++
			}
			run.Reset()
			for _, c := range cells[start:end] {
				run.WriteRune(c.Rune)
			}
			sb.WriteString(cellStyle(r, cells[start]).Render(run.String()))
			start = end
		}
	}
	return sb.String()
}

// cellStyle builds the lipgloss style for a cell's attributes.
func cellStyle(r *lipgloss.Renderer, c Cell) lipgloss.Style {
	st := r.NewStyle()
	if fg, ok := styleColor(c.Fg); ok {
		st = st.Foreground(fg)
	}
	if bg, ok := styleColor(c.Bg); ok {
		st = st.Background(bg)
	}
	if c.Bold {
		st = st.Bold(true)
	}
	return st
}

func sameStyle(a, b Cell) bool {
	return a.Fg == b.Fg && a.Bg == b.Bg && a.Bold == b.Bold
}
