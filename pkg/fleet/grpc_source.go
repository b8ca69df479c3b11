package fleet

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/fleetwise/loadscaler/pkg/api/fleetmetrics"
)

// GRPCSource polls a static list of member addresses over the WorkerMetrics
// protocol. Members that fail or miss the deadline are skipped; collection
// only fails when no member answered at all. Safe for concurrent use.
type GRPCSource struct {
	component string
	endpoint  string
	members   []string
	logger    *slog.Logger

	mu    sync.Mutex
	conns map[string]*grpc.ClientConn
}

func NewGRPCSource(component, endpoint string, members []string, logger *slog.Logger) *GRPCSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &GRPCSource{
		component: component,
		endpoint:  endpoint,
		members:   members,
		logger:    logger,
		conns:     make(map[string]*grpc.ClientConn),
	}
}

// Collect fans out one Load call per member and returns whatever answered
// within the ctx deadline.
func (s *GRPCSource) Collect(ctx context.Context) ([]Report, error) {
	if len(s.members) == 0 {
		return nil, fmt.Errorf("no fleet members configured")
	}

	var (
		mu      sync.Mutex
		reports []Report
	)

	g, ctx := errgroup.WithContext(ctx)
	for _, addr := range s.members {
		addr := addr
		g.Go(func() error {
			conn, err := s.conn(addr)
			if err != nil {
				s.logger.Warn("skipping member, dial failed", "member", addr, "error", err)
				return nil
			}

			resp, err := pb.NewWorkerMetricsClient(conn).Load(ctx, &pb.LoadRequest{
				Component: s.component,
				Endpoint:  s.endpoint,
			})
			if err != nil {
				s.logger.Warn("skipping member, load call failed", "member", addr, "error", err)
				return nil
			}

			mu.Lock()
			reports = append(reports, Report{
				WorkerID:       resp.GetWorkerId(),
				CPUPercent:     resp.GetCpuPercent(),
				Load1:          resp.GetLoad1(),
				MemoryRSSBytes: resp.GetMemoryRssBytes(),
				ActiveTasks:    resp.GetActiveTasks(),
				UptimeSeconds:  resp.GetUptimeSeconds(),
			})
			mu.Unlock()
			return nil
		})
	}
	// Member errors are swallowed above, so Wait only orders the goroutines.
	_ = g.Wait()

	if len(reports) == 0 {
		return nil, fmt.Errorf("no fleet member answered (%d polled)", len(s.members))
	}
	return reports, nil
}

// conn returns a cached client connection for addr, dialing lazily.
func (s *GRPCSource) conn(addr string) (*grpc.ClientConn, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if conn, ok := s.conns[addr]; ok {
		return conn, nil
	}
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, err
	}
	s.conns[addr] = conn
	return conn, nil
}

// Close releases all member connections.
func (s *GRPCSource) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var firstErr error
	for addr, conn := range s.conns {
		if err := conn.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(s.conns, addr)
	}
	return firstErr
}
