package collectors

import (
	"context"
	"sync"
	"sync/atomic"
)

// MockSampler implements Sampler for testing. It returns a configurable
// ratio and error and counts how often Sample has been called.
type MockSampler struct {
	name string

	mu    sync.RWMutex
	ratio float64
	err   error

	callCount atomic.Int64

	// SampleFunc, if set, overrides the default Sample behavior.
	SampleFunc func(ctx context.Context) (float64, error)
}

// NewMockSampler creates a mock sampler returning ratio.
func NewMockSampler(name string, ratio float64) *MockSampler {
	return &MockSampler{name: name, ratio: ratio}
}

// Name returns the sampler name.
func (m *MockSampler) Name() string { return m.name }

// SetRatio updates the returned ratio (thread-safe).
func (m *MockSampler) SetRatio(r float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ratio = r
}

// SetError updates the returned error (thread-safe).
func (m *MockSampler) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Sample increments the call counter and returns the configured ratio and
// error, or delegates to SampleFunc if set.
func (m *MockSampler) Sample(ctx context.Context) (float64, error) {
	m.callCount.Add(1)

	if m.SampleFunc != nil {
		return m.SampleFunc(ctx)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.ratio, m.err
}

// CallCount returns how many times Sample has been called.
func (m *MockSampler) CallCount() int64 {
	return m.callCount.Load()
}
