// Package sysmetrics samples host utilisation through gopsutil, which works
// on both Darwin and Linux without /proc parsing. Every metric is exposed
// as a collectors.Sampler returning a ratio in [0, 1].
package sysmetrics

import (
	"context"
	"fmt"
	"strings"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/mem"

	"gitlab.com/tinyland/lab/pulsegauge/pkg/collectors"
)

// Metric names a host utilisation figure.
type Metric string

const (
	MetricCPU    Metric = "cpu"
	MetricMemory Metric = "memory"
	MetricSwap   Metric = "swap"
	MetricDisk   Metric = "disk"
	MetricLoad   Metric = "load"
)

// Metrics lists every supported metric in display order.
func Metrics() []Metric {
	return []Metric{MetricCPU, MetricMemory, MetricSwap, MetricDisk, MetricLoad}
}

// ParseMetric maps a name to a Metric.
func ParseMetric(name string) (Metric, error) {
	m := Metric(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Metrics() {
		if m == known {
			return m, nil
		}
	}
	return "", fmt.Errorf("sysmetrics: unknown metric %q", name)
}

// Config controls the samplers.
type Config struct {
	// DiskPath is the mount point measured by the disk metric (default "/").
	DiskPath string
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{DiskPath: "/"}
}

// readers are the gopsutil calls a Sampler depends on, replaceable in tests.
type readers struct {
	cpuPercent func(ctx context.Context) (float64, error)
	virtual    func(ctx context.Context) (*mem.VirtualMemoryStat, error)
	swap       func(ctx context.Context) (*mem.SwapMemoryStat, error)
	diskUsage  func(ctx context.Context, path string) (*disk.UsageStat, error)
	loadAvg    func(ctx context.Context) (*load.AvgStat, error)
	cpuCount   func(ctx context.Context) (int, error)
}

func defaultReaders() readers {
	return readers{
		cpuPercent: func(ctx context.Context) (float64, error) {
			// interval=0 compares against the previous call, so the first
			// reading after start-up covers the time since boot.
			total, err := cpu.PercentWithContext(ctx, 0, false)
			if err != nil {
				return 0, err
			}
			if len(total) == 0 {
				return 0, fmt.Errorf("no cpu data")
			}
			return total[0], nil
		},
		virtual: mem.VirtualMemoryWithContext,
		swap:    mem.SwapMemoryWithContext,
		diskUsage: func(ctx context.Context, path string) (*disk.UsageStat, error) {
			return disk.UsageWithContext(ctx, path)
		},
		loadAvg: load.AvgWithContext,
		cpuCount: func(ctx context.Context) (int, error) {
			return cpu.CountsWithContext(ctx, true)
		},
	}
}

// Sampler reads one Metric. It satisfies collectors.Sampler.
type Sampler struct {
	metric Metric
	cfg    Config
	read   readers
}

// New creates a Sampler for metric. Zero-value fields in cfg are replaced
// with defaults.
func New(metric Metric, cfg Config) *Sampler {
	if cfg.DiskPath == "" {
		cfg.DiskPath = DefaultConfig().DiskPath
	}
	return &Sampler{metric: metric, cfg: cfg, read: defaultReaders()}
}

// Register adds a sampler for every supported metric to reg.
func Register(reg *collectors.Registry, cfg Config) error {
	for _, m := range Metrics() {
		if err := reg.Register(New(m, cfg)); err != nil {
			return err
		}
	}
	return nil
}

// Name returns the metric name.
func (s *Sampler) Name() string {
	return string(s.metric)
}

// Sample measures the metric and returns it as a ratio in [0, 1].
func (s *Sampler) Sample(ctx context.Context) (float64, error) {
	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	default:
	}

	pct, err := s.percent(ctx)
	if err != nil {
		return 0, fmt.Errorf("sysmetrics: %s: %w", s.metric, err)
	}
	return percentToRatio(pct), nil
}

// percent returns the metric as a percentage (0-100).
func (s *Sampler) percent(ctx context.Context) (float64, error) {
	switch s.metric {
	case MetricCPU:
		return s.read.cpuPercent(ctx)
	case MetricMemory:
		vm, err := s.read.virtual(ctx)
		if err != nil {
			return 0, err
		}
		return vm.UsedPercent, nil
	case MetricSwap:
		sw, err := s.read.swap(ctx)
		if err != nil {
			return 0, err
		}
		// Hosts without swap report zero usage.
		if sw.Total == 0 {
			return 0, nil
		}
		return sw.UsedPercent, nil
	case MetricDisk:
		usage, err := s.read.diskUsage(ctx, s.cfg.DiskPath)
		if err != nil {
			return 0, err
		}
		return usage.UsedPercent, nil
	case MetricLoad:
		avg, err := s.read.loadAvg(ctx)
		if err != nil {
			return 0, err
		}
		n, err := s.read.cpuCount(ctx)
		if err != nil {
			return 0, err
		}
		if n <= 0 {
			n = 1
		}
		// Load of one runnable task per logical CPU reads as 100%.
		return avg.Load1 / float64(n) * 100, nil
	default:
		return 0, fmt.Errorf("unknown metric")
	}
}

// percentToRatio converts 0-100 to 0-1, clamping out-of-range values.
func percentToRatio(pct float64) float64 {
	r := pct / 100
	if r < 0 || r != r {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}
