// Package app provides the Bubbletea dashboard for pulsegauge. It wires a
// metric sampler, the preference store, and the gauge/sparkline widgets into
// an Elm-architecture model.
package app

import (
	"time"

	"gitlab.com/tinyland/lab/pulsegauge/pkg/collectors"
)

// TickEvent is sent by the refresh ticker to trigger the next sample.
type TickEvent struct {
	Time time.Time
}

// SampleEvent carries a finished reading from the sampling command back into
// the update loop.
type SampleEvent struct {
	Reading collectors.Reading
}
