package fleet

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetwise/loadscaler/pkg/snapshot"
)

type sourceFunc func(ctx context.Context) ([]Report, error)

func (f sourceFunc) Collect(ctx context.Context) ([]Report, error) { return f(ctx) }

type fakeStats struct {
	collects  int
	errors    int
	loadAvg   float64
	endpoints int
	ageSet    bool
}

func (s *fakeStats) ObserveCollect(float64) { s.collects++ }
func (s *fakeStats) RecordCollectError()    { s.errors++ }
func (s *fakeStats) SetFleetLoad(avg, _ float64, endpoints int) {
	s.loadAvg = avg
	s.endpoints = endpoints
}
func (s *fakeStats) SetSnapshotAge(float64) { s.ageSet = true }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestMonitor_RunOnce_PublishesOnSuccess(t *testing.T) {
	store := snapshot.NewStore()
	stats := &fakeStats{}

	m := &Monitor{
		Source: sourceFunc(func(context.Context) ([]Report, error) {
			return []Report{{WorkerID: "w-1", CPUPercent: 42}}, nil
		}),
		Store:  store,
		Logger: discardLogger(),
		Stats:  stats,
	}
	m.RunOnce(context.Background())

	snap, ok := store.Read()
	require.True(t, ok)
	assert.Equal(t, 0.42, snap.LoadAvg)
	assert.Equal(t, 1, snap.Endpoints)

	assert.Equal(t, 1, stats.collects)
	assert.Equal(t, 0, stats.errors)
	assert.Equal(t, 0.42, stats.loadAvg)
	assert.True(t, stats.ageSet)
}

func TestMonitor_RunOnce_FailureKeepsPreviousSnapshot(t *testing.T) {
	store := snapshot.NewStore()
	stats := &fakeStats{}

	healthy := true
	m := &Monitor{
		Source: sourceFunc(func(context.Context) ([]Report, error) {
			if !healthy {
				return nil, errors.New("fleet unreachable")
			}
			return []Report{{WorkerID: "w-1", CPUPercent: 42}}, nil
		}),
		Store:  store,
		Logger: discardLogger(),
		Stats:  stats,
	}

	m.RunOnce(context.Background())
	healthy = false
	m.RunOnce(context.Background())

	snap, ok := store.Read()
	require.True(t, ok)
	assert.Equal(t, 0.42, snap.LoadAvg, "failed tick must not clobber the last good snapshot")
	assert.Equal(t, 1, stats.errors)
	assert.Equal(t, 2, stats.collects)
}

func TestMonitor_RunOnce_EmptyFleetIsFailure(t *testing.T) {
	store := snapshot.NewStore()
	stats := &fakeStats{}

	m := &Monitor{
		Source: sourceFunc(func(context.Context) ([]Report, error) {
			return []Report{}, nil
		}),
		Store:  store,
		Logger: discardLogger(),
		Stats:  stats,
	}
	m.RunOnce(context.Background())

	_, ok := store.Read()
	assert.False(t, ok)
	assert.Equal(t, 1, stats.errors)
}

func TestMonitor_RunOnce_AppliesCollectTimeout(t *testing.T) {
	store := snapshot.NewStore()

	var sawDeadline bool
	m := &Monitor{
		Source: sourceFunc(func(ctx context.Context) ([]Report, error) {
			_, sawDeadline = ctx.Deadline()
			return nil, ctx.Err()
		}),
		Store:          store,
		CollectTimeout: 10 * time.Millisecond,
		Logger:         discardLogger(),
	}
	m.RunOnce(context.Background())

	assert.True(t, sawDeadline, "collection ctx must carry a deadline")
}

func TestMonitor_Run_StopsOnCancel(t *testing.T) {
	store := snapshot.NewStore()

	ticks := make(chan struct{}, 64)
	m := &Monitor{
		Source: sourceFunc(func(context.Context) ([]Report, error) {
			select {
			case ticks <- struct{}{}:
			default:
			}
			return []Report{{CPUPercent: 10}}, nil
		}),
		Store:    store,
		Interval: 5 * time.Millisecond,
		Logger:   discardLogger(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		m.Run(ctx)
		close(done)
	}()

	select {
	case <-ticks:
	case <-time.After(2 * time.Second):
		t.Fatal("monitor never ticked")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("monitor did not stop on cancel")
	}

	_, ok := store.Read()
	assert.True(t, ok)
}
