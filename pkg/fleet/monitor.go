package fleet

import (
	"context"
	"log/slog"
	"time"

	"github.com/fleetwise/loadscaler/pkg/snapshot"
)

const (
	// DefaultInterval is how often the fleet is polled.
	DefaultInterval = 5 * time.Second
	// DefaultCollectTimeout bounds one collection pass. Kept far below the
	// interval so a stuck member cannot starve the next tick.
	DefaultCollectTimeout = 300 * time.Millisecond
)

// Stats receives operational observations from the monitor. Implemented by the
// scaler's Prometheus bundle; nil-able for tests.
type Stats interface {
	ObserveCollect(seconds float64)
	RecordCollectError()
	SetFleetLoad(avg, std float64, endpoints int)
	SetSnapshotAge(seconds float64)
}

// Monitor is the refresh loop: on every tick it collects from the Source,
// reduces the reports, and publishes the result to the Store. Any failure
// leaves the previous snapshot in place; the loop itself only stops when its
// context is cancelled.
type Monitor struct {
	Source         Source
	Store          *snapshot.Store
	Interval       time.Duration
	CollectTimeout time.Duration
	Logger         *slog.Logger
	Stats          Stats
}

// Run blocks until ctx is cancelled.
func (m *Monitor) Run(ctx context.Context) {
	interval := m.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
		m.RunOnce(ctx)
	}
}

// RunOnce performs a single collect-reduce-publish cycle. Exported so tests
// can drive the loop without waiting on the ticker.
func (m *Monitor) RunOnce(ctx context.Context) {
	logger := m.Logger
	if logger == nil {
		logger = slog.Default()
	}
	timeout := m.CollectTimeout
	if timeout <= 0 {
		timeout = DefaultCollectTimeout
	}

	start := time.Now()
	cctx, cancel := context.WithTimeout(ctx, timeout)
	reports, err := m.Source.Collect(cctx)
	cancel()

	if m.Stats != nil {
		m.Stats.ObserveCollect(time.Since(start).Seconds())
	}

	if err != nil {
		logger.Warn("fleet collection failed, keeping previous snapshot", "error", err)
		if m.Stats != nil {
			m.Stats.RecordCollectError()
		}
		m.observeAge()
		return
	}

	snap, err := Reduce(reports)
	if err != nil {
		logger.Warn("reduction failed, keeping previous snapshot", "error", err)
		if m.Stats != nil {
			m.Stats.RecordCollectError()
		}
		m.observeAge()
		return
	}

	m.Store.Publish(snap)
	if m.Stats != nil {
		m.Stats.SetFleetLoad(snap.LoadAvg, snap.LoadStd, snap.Endpoints)
	}
	m.observeAge()

	logger.Debug("updated load snapshot",
		"load_avg", snap.LoadAvg,
		"load_std", snap.LoadStd,
		"endpoints", snap.Endpoints,
	)
}

func (m *Monitor) observeAge() {
	if m.Stats == nil {
		return
	}
	if snap, ok := m.Store.Read(); ok {
		m.Stats.SetSnapshotAge(time.Since(snap.CollectedAt).Seconds())
	}
}
