// Package collector gathers the host and process gauges a worker agent
// reports: CPU utilization, 1-minute load average, resident memory, and
// uptime. It also tracks the number of tasks currently running in the
// process, which the embedding application drives through Begin and Done.
package collector

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/process"
)

type Collector struct {
	startedAt   time.Time
	activeTasks atomic.Uint64
}

func New() *Collector {
	return &Collector{startedAt: time.Now()}
}

// Begin marks one task as running. Pair with Done when the task finishes.
func (c *Collector) Begin() {
	c.activeTasks.Add(1)
}

func (c *Collector) Done() {
	// Wraps around if called without a matching Begin. The caller owns
	// pairing, same contract as sync.WaitGroup.
	c.activeTasks.Add(^uint64(0))
}

func (c *Collector) ActiveTasks() uint64 {
	return c.activeTasks.Load()
}

// CPUPercent returns the system-wide CPU utilization in the range [0, 100].
// The zero interval makes gopsutil compare against the previous call instead
// of blocking, so the first reading after startup may be zero.
func (c *Collector) CPUPercent(ctx context.Context) (float64, error) {
	percents, err := cpu.PercentWithContext(ctx, 0, false)
	if err != nil {
		return 0, fmt.Errorf("reading cpu percent: %w", err)
	}
	if len(percents) == 0 {
		return 0, fmt.Errorf("reading cpu percent: no samples")
	}
	return percents[0], nil
}

// Load1 returns the host's 1-minute load average.
func (c *Collector) Load1(ctx context.Context) (float64, error) {
	avg, err := load.AvgWithContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("reading load average: %w", err)
	}
	return avg.Load1, nil
}

// MemoryRSS returns this process's resident set size in bytes.
func (c *Collector) MemoryRSS(ctx context.Context) (uint64, error) {
	proc, err := process.NewProcessWithContext(ctx, int32(os.Getpid()))
	if err != nil {
		return 0, fmt.Errorf("opening own process: %w", err)
	}
	mem, err := proc.MemoryInfoWithContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("reading memory info: %w", err)
	}
	return mem.RSS, nil
}

// Uptime returns how long this process has been running.
func (c *Collector) Uptime() time.Duration {
	return time.Since(c.startedAt)
}
