package components

import (
	"io"
	"testing"

	"github.com/muesli/termenv"
)

// BenchmarkGaugePaint benchmarks painting a bordered gauge 80 cells wide.
func BenchmarkGaugePaint(b *testing.B) {
	area := NewRect(0, 0, 80, 3)
	buf := NewBuffer(area)
	g := GradientGauge{Area: area, Ratio: 0.735, Colors: gaugeTestColors, Block: NewBlock("cpu 74% · 1000ms")}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Paint(buf)
	}
}

// BenchmarkSparklinePaint benchmarks painting a full history into an
// 80x10 panel.
func BenchmarkSparklinePaint(b *testing.B) {
	area := NewRect(0, 0, 80, 10)
	buf := NewBuffer(area)

	// Realistic CPU load shape (0-1 range).
	data := make([]float64, 512)
	for i := range data {
		data[i] = 0.3 + float64(i%40)*0.015
	}
	s := Sparkline{Area: area, Values: data, Max: 1, Colors: gaugeTestColors, Block: NewBlock("cpu")}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Paint(buf)
	}
}

// BenchmarkBufferRenderTrueColor benchmarks serialising a painted 80x24
// frame with 24-bit colour escapes.
func BenchmarkBufferRenderTrueColor(b *testing.B) {
	area := NewRect(0, 0, 80, 24)
	buf := NewBuffer(area)
	GradientGauge{Area: area, Ratio: 0.6, Colors: gaugeTestColors, Block: NewBlock("memory")}.Paint(buf)
	r := NewRenderer(io.Discard, termenv.TrueColor)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = buf.Render(r)
	}
}

// BenchmarkTextTruncate benchmarks ANSI-aware truncation of a styled title.
func BenchmarkTextTruncate(b *testing.B) {
	s := "\x1b[1;38;2;207;201;194mmemory 73% · 1000ms\x1b[0m"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = TruncateWithTail(s, 10, "…")
	}
}
