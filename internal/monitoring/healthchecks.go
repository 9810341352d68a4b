package monitoring

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/spacesedan/positivizer/internal/metrics"
)

const HEALTHCHECK_TIMER = 15 * time.Second

type Probe func(ctx context.Context) error

type check struct {
	name    string
	probe   Probe
	healthy *atomic.Bool
}

// Monitor periodically probes registered components and keeps one health
// flag per component. Flags start healthy.
type Monitor struct {
	interval time.Duration
	metrics  *metrics.Metrics

	mu     sync.Mutex
	checks []*check
}

func NewMonitor(interval time.Duration, m *metrics.Metrics) *Monitor {
	if interval <= 0 {
		interval = HEALTHCHECK_TIMER
	}
	return &Monitor{interval: interval, metrics: m}
}

// Register adds a component and returns its health flag. Call before Start.
func (mon *Monitor) Register(name string, probe Probe) *atomic.Bool {
	healthy := &atomic.Bool{}
	healthy.Store(true)

	mon.mu.Lock()
	mon.checks = append(mon.checks, &check{name: name, probe: probe, healthy: healthy})
	mon.mu.Unlock()

	if mon.metrics != nil {
		mon.metrics.SetHealthy(name, true)
	}
	return healthy
}

// Start launches one monitor goroutine per registered component. They stop
// when ctx is cancelled.
func (mon *Monitor) Start(ctx context.Context) {
	mon.mu.Lock()
	defer mon.mu.Unlock()

	for _, c := range mon.checks {
		go MonitorHealth(ctx, mon.interval, c.name, c.healthy, c.probe, mon.onResult)
	}
}

func (mon *Monitor) Status() map[string]bool {
	mon.mu.Lock()
	defer mon.mu.Unlock()

	status := make(map[string]bool, len(mon.checks))
	for _, c := range mon.checks {
		status[c.name] = c.healthy.Load()
	}
	return status
}

func (mon *Monitor) Names() []string {
	status := mon.Status()
	names := make([]string, 0, len(status))
	for name := range status {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (mon *Monitor) onResult(name string, healthy bool) {
	if mon.metrics != nil {
		mon.metrics.SetHealthy(name, healthy)
	}
}

// MonitorHealth probes once immediately and then on every tick, storing the
// result in healthy.
func MonitorHealth(ctx context.Context, interval time.Duration, name string, healthy *atomic.Bool, probe Probe, onResult func(string, bool)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	runProbe(ctx, interval, name, healthy, probe, onResult)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			runProbe(ctx, interval, name, healthy, probe, onResult)
		}
	}
}

func runProbe(ctx context.Context, timeout time.Duration, name string, healthy *atomic.Bool, probe Probe, onResult func(string, bool)) {
	probeCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	err := probe(probeCtx)
	isHealthy := err == nil
	was := healthy.Swap(isHealthy)

	if onResult != nil {
		onResult(name, isHealthy)
	}

	switch {
	case !isHealthy && was:
		slog.Warn("[HealthCheck] Component is unhealthy",
			slog.String("component", name),
			slog.String("error", err.Error()))
	case isHealthy && !was:
		slog.Info("[HealthCheck] Component recovered",
			slog.String("component", name))
	}
}
