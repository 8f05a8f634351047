// Package components provides the terminal-cell widgets of pulsegauge: a
// cell Buffer, a bordered Block, the three-band GradientGauge and the
// Sparkline history view. Widgets are plain values configured once per
// frame and painted into a caller-owned Buffer.
package components

// Align controls horizontal placement of a block title.
type Align int

const (
	// AlignLeft places the title after the top-left corner (default).
	AlignLeft Align = iota
	// AlignCenter centers the title in the top edge.
	AlignCenter
	// AlignRight places the title before the top-right corner.
	AlignRight
)
