package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestBlockInner(t *testing.T) {
	b := NewBlock("")
	tests := []struct {
		area Rect
		want Rect
	}{
		{NewRect(0, 0, 10, 5), NewRect(1, 1, 8, 3)},
		{NewRect(3, 2, 4, 4), NewRect(4, 3, 2, 2)},
		{NewRect(0, 0, 2, 2), NewRect(1, 1, 0, 0)},
		{NewRect(0, 0, 1, 1), NewRect(1, 1, 0, 0)},
	}
	for _, tt := range tests {
		if got := b.Inner(tt.area); got != tt.want {
			t.Errorf("Inner(%+v) = %+v, want %+v", tt.area, got, tt.want)
		}
	}
}

func TestBlockPaintRounded(t *testing.T) {
	area := NewRect(0, 0, 6, 3)
	buf := NewBuffer(area)
	NewBlock("").Paint(area, buf)

	want := "╭────╮\n│    │\n╰────╯"
	if got := buf.String(); got != want {
		t.Errorf("block =\n%s\nwant\n%s", got, want)
	}
}

func TestBlockPaintNormalBorder(t *testing.T) {
	area := NewRect(0, 0, 4, 3)
	buf := NewBuffer(area)
	b := &Block{Border: lipgloss.NormalBorder()}
	b.Paint(area, buf)

	want := "┌──┐\n│  │\n└──┘"
	if got := buf.String(); got != want {
		t.Errorf("block =\n%s\nwant\n%s", got, want)
	}
}

func TestBlockZeroBorderUsesDefaults(t *testing.T) {
	area := NewRect(0, 0, 3, 2)
	buf := NewBuffer(area)
	(&Block{}).Paint(area, buf)
	if got := buf.String(); got != "╭─╮\n╰─╯" {
		t.Errorf("zero-value border = %q", got)
	}
}

func TestBlockTitleLeft(t *testing.T) {
	area := NewRect(0, 0, 14, 3)
	buf := NewBuffer(area)
	NewBlock("cpu").Paint(area, buf)

	top := strings.Split(buf.String(), "\n")[0]
	if top != "╭─ cpu ──────╮" {
		t.Errorf("top edge = %q", top)
	}
}

func TestBlockTitleAlignments(t *testing.T) {
	tests := []struct {
		align Align
		want  string
	}{
		{AlignLeft, "╭─ ab ───╮"},
		{AlignCenter, "╭── ab ──╮"},
		{AlignRight, "╭─── ab ─╮"},
	}
	for _, tt := range tests {
		area := NewRect(0, 0, 10, 2)
		buf := NewBuffer(area)
		b := NewBlock("ab")
		b.TitleAlign = tt.align
		b.Paint(area, buf)
		if top := strings.Split(buf.String(), "\n")[0]; top != tt.want {
			t.Errorf("align %d top = %q, want %q", tt.align, top, tt.want)
		}
	}
}

func TestBlockTitleTruncated(t *testing.T) {
	area := NewRect(0, 0, 10, 2)
	buf := NewBuffer(area)
	NewBlock("memory usage").Paint(area, buf)
	top := strings.Split(buf.String(), "\n")[0]
	if top != "╭─ mem… ─╮" {
		t.Errorf("top edge = %q", top)
	}
}

func TestBlockTitleDroppedWhenNoRoom(t *testing.T) {
	area := NewRect(0, 0, 6, 2)
	buf := NewBuffer(area)
	NewBlock("cpu").Paint(area, buf)
	if top := strings.Split(buf.String(), "\n")[0]; top != "╭────╮" {
		t.Errorf("top edge = %q, want plain border", top)
	}
}

func TestBlockStyles(t *testing.T) {
	border := lipgloss.Color("#7dcfff")
	text := lipgloss.Color("#cfc9c2")
	area := NewRect(0, 0, 12, 3)
	buf := NewBuffer(area)
	b := NewBlock("cpu")
	b.Style = lipgloss.NewStyle().Foreground(border)
	b.TitleStyle = lipgloss.NewStyle().Foreground(text).Bold(true)
	b.Paint(area, buf)

	if c, _ := buf.Cell(0, 1); c.Fg != border {
		t.Errorf("left edge fg = %v, want border colour", c.Fg)
	}
	if c, _ := buf.Cell(3, 0); c.Rune != 'c' || c.Fg != text || !c.Bold {
		t.Errorf("title cell = %+v, want bold 'c' in text colour", c)
	}
	if c, _ := buf.Cell(5, 1); c.Fg != (lipgloss.NoColor{}) {
		t.Errorf("interior fg = %v, want untouched", c.Fg)
	}
}

func TestBlockWithoutStyleKeepsBaseForeground(t *testing.T) {
	base := lipgloss.Color("#565f89")
	area := NewRect(0, 0, 6, 3)
	buf := NewBuffer(area)
	buf.SetStyle(area, lipgloss.NewStyle().Foreground(base))
	NewBlock("").Paint(area, buf)

	for _, p := range [][2]int{{0, 0}, {3, 0}, {5, 1}, {0, 2}} {
		if c, _ := buf.Cell(p[0], p[1]); c.Fg != base {
			t.Errorf("border cell %v fg = %v, want base colour", p, c.Fg)
		}
	}
}
