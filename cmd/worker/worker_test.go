package main

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/fleetwise/loadscaler/cmd/worker/collector"
	pb "github.com/fleetwise/loadscaler/pkg/api/fleetmetrics"
)

func newTestAgent() (*Agent, *collector.Collector) {
	c := collector.New()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewAgent("agent-1", "worker", "load-metrics", c, log), c
}

func TestLoad_ReportsGauges(t *testing.T) {
	a, c := newTestAgent()

	c.Begin()
	c.Begin()
	defer c.Done()
	defer c.Done()

	report, err := a.Load(context.Background(), &pb.LoadRequest{
		Component: "worker",
		Endpoint:  "load-metrics",
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if report.WorkerId != "agent-1" {
		t.Errorf("WorkerId = %q, want %q", report.WorkerId, "agent-1")
	}
	if report.CpuPercent < 0 || report.CpuPercent > 100 {
		t.Errorf("CpuPercent = %v, want value in [0, 100]", report.CpuPercent)
	}
	if report.MemoryRssBytes == 0 {
		t.Error("MemoryRssBytes = 0, want a running process to have resident memory")
	}
	if report.ActiveTasks != 2 {
		t.Errorf("ActiveTasks = %d, want 2", report.ActiveTasks)
	}
}

func TestLoad_RejectsUnknownSubject(t *testing.T) {
	a, _ := newTestAgent()

	tests := []struct {
		name string
		req  *pb.LoadRequest
	}{
		{"wrong component", &pb.LoadRequest{Component: "frontend", Endpoint: "load-metrics"}},
		{"wrong endpoint", &pb.LoadRequest{Component: "worker", Endpoint: "http-requests"}},
		{"empty request", &pb.LoadRequest{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := a.Load(context.Background(), tt.req)
			if err == nil {
				t.Fatal("Load() error = nil, want invalid argument")
			}
			if st, _ := status.FromError(err); st.Code() != codes.InvalidArgument {
				t.Errorf("Load() code = %v, want %v", st.Code(), codes.InvalidArgument)
			}
		})
	}
}
