// Package collectors defines the Sampler interface that feeds the gauge a
// utilisation ratio, and a Registry that resolves samplers by name.
// Implementations live in sub-packages (e.g. pkg/collectors/sysmetrics).
package collectors

import (
	"context"
	"time"
)

// Sampler produces one utilisation reading per call.
type Sampler interface {
	// Name returns a unique identifier for this sampler (e.g. "cpu").
	Name() string

	// Sample performs one measurement and returns it as a ratio. Callers
	// clamp the value; implementations should still aim for [0, 1].
	Sample(ctx context.Context) (float64, error)
}

// Reading carries the result of a single Sample call from the sampling
// goroutine to the UI loop.
type Reading struct {
	Source    string
	Ratio     float64
	Timestamp time.Time
	Err       error
}

// Read runs s once and wraps the outcome in a Reading.
func Read(ctx context.Context, s Sampler) Reading {
	ratio, err := s.Sample(ctx)
	return Reading{
		Source:    s.Name(),
		Ratio:     ratio,
		Timestamp: time.Now(),
		Err:       err,
	}
}
