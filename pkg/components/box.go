package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Block is an enclosing border decoration with an optional title embedded
// in its top edge. Widgets paint the block first and then draw into
// Inner(area).
type Block struct {
	Border     lipgloss.Border
	Style      lipgloss.Style // colours of the border glyphs
	Title      string
	TitleStyle lipgloss.Style
	TitleAlign Align
}

// NewBlock returns a rounded block with the given title.
func NewBlock(title string) *Block {
	return &Block{Border: lipgloss.RoundedBorder(), Title: title}
}

// Inner returns the area inside the border. It never has a negative size.
func (b *Block) Inner(area Rect) Rect {
	return NewRect(area.X+1, area.Y+1, area.Width-2, area.Height-2)
}

// Paint draws the border and title into buf.
func (b *Block) Paint(area Rect, buf *Buffer) {
	if area.Empty() {
		return
	}
	right, bottom := area.Right()-1, area.Bottom()-1

	top := borderRune(b.Border.Top, '─')
	bot := borderRune(b.Border.Bottom, '─')
	for x := area.X; x <= right; x++ {
		buf.SetRune(x, area.Y, top, nil)
		buf.SetRune(x, bottom, bot, nil)
	}
	left := borderRune(b.Border.Left, '│')
	rgt := borderRune(b.Border.Right, '│')
	for y := area.Y; y <= bottom; y++ {
		buf.SetRune(area.X, y, left, nil)
		buf.SetRune(right, y, rgt, nil)
	}
	buf.SetRune(area.X, area.Y, borderRune(b.Border.TopLeft, '╭'), nil)
	buf.SetRune(right, area.Y, borderRune(b.Border.TopRight, '╮'), nil)
	buf.SetRune(area.X, bottom, borderRune(b.Border.BottomLeft, '╰'), nil)
	buf.SetRune(right, bottom, borderRune(b.Border.BottomRight, '╯'), nil)

	// Border cells are the frame minus the interior.
	buf.SetStyle(NewRect(area.X, area.Y, area.Width, 1), b.Style)
	buf.SetStyle(NewRect(area.X, bottom, area.Width, 1), b.Style)
	buf.SetStyle(NewRect(area.X, area.Y, 1, area.Height), b.Style)
	buf.SetStyle(NewRect(right, area.Y, 1, area.Height), b.Style)

	b.paintTitle(area, buf)
}

// paintTitle embeds " title " in the top edge. At least one horizontal
// glyph is kept on each side; titles that do not fit are truncated with an
// ellipsis, and dropped when not even that fits.
func (b *Block) paintTitle(area Rect, buf *Buffer) {
	if b.Title == "" {
		return
	}
	barWidth := area.Width - 2
	maxTitleWidth := barWidth - 4
	if maxTitleWidth <= 0 {
		return
	}

	title := b.Title
	if VisibleLen(title) > maxTitleWidth {
		title = TruncateWithTail(title, maxTitleWidth, "…")
	}
	segWidth := VisibleLen(title) + 2
	remaining := barWidth - segWidth

	var leftChars int
	switch b.TitleAlign {
	case AlignRight:
		leftChars = remaining - 1
	case AlignCenter:
		leftChars = remaining / 2
	default:
		leftChars = 1
	}
	leftChars = max(leftChars, 0)

	x := area.X + 1 + leftChars
	buf.SetString(x, area.Y, " "+title+" ", NewRect(area.X+1, area.Y, barWidth, 1), b.TitleStyle)
}

// borderRune returns the first rune of s, or def when s is empty.
func borderRune(s string, def rune) rune {
	for _, r := range s {
		return r
	}
	return def
}
