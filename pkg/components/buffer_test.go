package components

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
)

func TestNewRectClampsNegativeSize(t *testing.T) {
	r := NewRect(1, 2, -3, -4)
	if r.Width != 0 || r.Height != 0 || !r.Empty() {
		t.Errorf("NewRect with negative size = %+v, want empty", r)
	}
}

func TestRectIntersect(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	tests := []struct {
		b    Rect
		want Rect
	}{
		{NewRect(5, 5, 10, 10), NewRect(5, 5, 5, 5)},
		{NewRect(2, 3, 4, 2), NewRect(2, 3, 4, 2)},
		{NewRect(20, 20, 5, 5), NewRect(20, 20, 0, 0)},
	}
	for _, tt := range tests {
		if got := a.Intersect(tt.b); got != tt.want {
			t.Errorf("Intersect(%+v) = %+v, want %+v", tt.b, got, tt.want)
		}
	}
}

func TestBufferStartsBlank(t *testing.T) {
	buf := NewBuffer(NewRect(0, 0, 3, 2))
	if got := buf.String(); got != "   \n   " {
		t.Errorf("String() = %q, want blank grid", got)
	}
	c, ok := buf.Cell(1, 1)
	if !ok || c != blankCell {
		t.Errorf("Cell(1,1) = (%+v, %v), want blank", c, ok)
	}
}

func TestBufferClipsOutOfBounds(t *testing.T) {
	buf := NewBuffer(NewRect(2, 2, 3, 3))
	buf.SetRune(0, 0, 'x', nil)
	buf.SetRune(5, 2, 'x', nil)
	buf.SetRune(2, 5, 'x', nil)
	if strings.ContainsRune(buf.String(), 'x') {
		t.Error("writes outside the buffer area should be dropped")
	}
	if _, ok := buf.Cell(0, 0); ok {
		t.Error("Cell outside the area should report false")
	}

	buf.SetRune(4, 4, 'x', nil)
	if c, _ := buf.Cell(4, 4); c.Rune != 'x' {
		t.Error("write at the last cell should land")
	}
}

func TestBufferSetStyleOnlySetsWhatStyleSets(t *testing.T) {
	buf := NewBuffer(NewRect(0, 0, 4, 1))
	fg := lipgloss.Color("#ff0000")
	bg := lipgloss.Color("#000000")
	buf.SetRune(0, 0, 'a', fg)

	buf.SetStyle(NewRect(0, 0, 2, 1), lipgloss.NewStyle().Background(bg))

	c, _ := buf.Cell(0, 0)
	if c.Rune != 'a' || c.Fg != fg || c.Bg != bg {
		t.Errorf("cell = %+v, want 'a' fg kept and bg set", c)
	}
	if c, _ := buf.Cell(2, 0); c != blankCell {
		t.Errorf("cell outside styled area = %+v, want blank", c)
	}
}

func TestBufferSetString(t *testing.T) {
	buf := NewBuffer(NewRect(0, 0, 6, 1))
	n := buf.SetString(1, 0, "hello world", NewRect(0, 0, 4, 1), lipgloss.NewStyle())
	if n != 3 {
		t.Errorf("SetString wrote %d cells, want 3", n)
	}
	if got := buf.String(); got != " hel  " {
		t.Errorf("String() = %q, want %q", got, " hel  ")
	}
}

func TestRenderPlainMatchesString(t *testing.T) {
	area := NewRect(0, 0, 10, 3)
	buf := NewBuffer(area)
	GradientGauge{Area: area, Ratio: 0.7, Colors: gaugeTestColors, Block: NewBlock("x")}.Paint(buf)

	var out bytes.Buffer
	r := NewRenderer(&out, termenv.Ascii)
	if got := buf.Render(r); got != buf.String() {
		t.Errorf("Ascii render = %q, want %q", got, buf.String())
	}
}

func TestRenderEmitsColour(t *testing.T) {
	area := NewRect(0, 0, 6, 1)
	buf := NewBuffer(area)
	GradientGauge{Area: area, Ratio: 1, Colors: gaugeTestColors}.Paint(buf)

	var out bytes.Buffer
	rendered := buf.Render(NewRenderer(&out, termenv.TrueColor))
	if !strings.Contains(rendered, "\x1b[") {
		t.Errorf("TrueColor render has no escapes: %q", rendered)
	}
	if got := ansi.Strip(rendered); got != buf.String() {
		t.Errorf("stripped render = %q, want %q", got, buf.String())
	}
}

func TestRenderRowsJoinedByNewline(t *testing.T) {
	buf := NewBuffer(NewRect(0, 0, 2, 3))
	var out bytes.Buffer
	got := ansi.Strip(buf.Render(NewRenderer(&out, termenv.ANSI256)))
	if strings.Count(got, "\n") != 2 {
		t.Errorf("render = %q, want 3 rows", got)
	}
}

func TestBufferSetRuneNilKeepsForeground(t *testing.T) {
	buf := NewBuffer(NewRect(0, 0, 2, 1))
	fg := lipgloss.Color("#ff0000")
	buf.SetRune(0, 0, 'a', fg)
	buf.SetRune(0, 0, 'b', nil)

	if c, _ := buf.Cell(0, 0); c.Rune != 'b' || c.Fg != fg {
		t.Errorf("cell = %+v, want 'b' with fg kept", c)
	}
}
