// Package fleet collects raw load reports from fleet members, reduces them to
// a single load snapshot, and runs the background refresh loop that keeps the
// snapshot store current.
package fleet

import "context"

// Report is one member's raw gauges as returned by its WorkerMetrics endpoint.
type Report struct {
	WorkerID       string
	CPUPercent     float64
	Load1          float64
	MemoryRSSBytes uint64
	ActiveTasks    uint64
	UptimeSeconds  uint64
}

// Load is the member's scalar load signal, 0.0 and up.
func (r Report) Load() float64 {
	if r.CPUPercent < 0 {
		return 0
	}
	return r.CPUPercent / 100
}

// Source enumerates the fleet and fetches raw reports. Implementations must
// respect ctx deadlines and never block past them.
type Source interface {
	Collect(ctx context.Context) ([]Report, error)
}
