package main

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/fleetwise/loadscaler/cmd/worker/collector"
	pb "github.com/fleetwise/loadscaler/pkg/api/fleetmetrics"
)

// Agent serves the WorkerMetrics contract for one fleet member. It answers
// only for the component/endpoint pair it was configured with.
type Agent struct {
	pb.UnimplementedWorkerMetricsServer

	workerID  string
	component string
	endpoint  string
	collector *collector.Collector
	logger    *slog.Logger
}

func NewAgent(workerID, component, endpoint string, c *collector.Collector, logger *slog.Logger) *Agent {
	return &Agent{
		workerID:  workerID,
		component: component,
		endpoint:  endpoint,
		collector: c,
		logger:    logger,
	}
}

func (a *Agent) Load(ctx context.Context, req *pb.LoadRequest) (*pb.LoadReport, error) {
	if req.GetComponent() != a.component || req.GetEndpoint() != a.endpoint {
		return nil, status.Errorf(codes.InvalidArgument, "unknown endpoint %s/%s", req.GetComponent(), req.GetEndpoint())
	}

	var (
		cpuPercent float64
		load1      float64
		memoryRSS  uint64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		cpuPercent, err = a.collector.CPUPercent(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		load1, err = a.collector.Load1(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		memoryRSS, err = a.collector.MemoryRSS(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		a.logger.Error("gauge collection failed", "error", err)
		return nil, status.Errorf(codes.Internal, "collecting gauges: %v", err)
	}

	report := &pb.LoadReport{
		WorkerId:       a.workerID,
		CpuPercent:     cpuPercent,
		Load1:          load1,
		MemoryRssBytes: memoryRSS,
		ActiveTasks:    a.collector.ActiveTasks(),
		UptimeSeconds:  uint64(a.collector.Uptime().Seconds()),
	}

	a.logger.Debug("load report served",
		"worker_id", report.WorkerId,
		"cpu_percent", report.CpuPercent,
		"load1", report.Load1,
		"active_tasks", report.ActiveTasks)

	return report, nil
}
