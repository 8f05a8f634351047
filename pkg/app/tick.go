package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/pulsegauge/pkg/collectors"
)

// TickCmd returns a bubbletea Cmd that sends a TickEvent after the given
// duration. This drives the sampling cycle.
func TickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickEvent{Time: t}
	})
}

// SampleCmd returns a Cmd that runs s once in bubbletea's command goroutine
// and delivers the result as a SampleEvent. The sampler never sees the
// model, so preferences are only touched from Update.
func SampleCmd(ctx context.Context, s collectors.Sampler) tea.Cmd {
	return func() tea.Msg {
		return SampleEvent{Reading: collectors.Read(ctx, s)}
	}
}
