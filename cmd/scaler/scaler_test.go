package main

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/fleetwise/loadscaler/cmd/scaler/metrics"
	pb "github.com/fleetwise/loadscaler/pkg/api/externalscaler"
	"github.com/fleetwise/loadscaler/pkg/snapshot"
)

// Shared metrics instance for all tests to avoid duplicate registration
var testMetrics = metrics.New()

func newTestScaler(store *snapshot.Store) *Scaler {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(store, 0.7, log, testMetrics)
}

func TestIsActive_AlwaysTrue(t *testing.T) {
	s := newTestScaler(snapshot.NewStore())

	refs := []*pb.ScaledObjectRef{
		{Name: "workers", Namespace: "default"},
		{}, // empty ref must not matter
		{Name: "workers", ScalerMetadata: map[string]string{"junk": "junk"}},
	}

	for _, ref := range refs {
		resp, err := s.IsActive(context.Background(), ref)
		if err != nil {
			t.Fatalf("IsActive() error = %v", err)
		}
		if !resp.Result {
			t.Errorf("IsActive(%+v) = false, want true", ref)
		}
	}
}

func TestStreamIsActive_Unimplemented(t *testing.T) {
	s := newTestScaler(snapshot.NewStore())

	err := s.StreamIsActive(&pb.ScaledObjectRef{Name: "workers"}, nil)
	if err == nil {
		t.Fatal("StreamIsActive() error = nil, want unimplemented")
	}
	if st, _ := status.FromError(err); st.Code() != codes.Unimplemented {
		t.Errorf("StreamIsActive() code = %v, want %v", st.Code(), codes.Unimplemented)
	}
}

func TestGetMetricSpec_DefaultThreshold(t *testing.T) {
	s := newTestScaler(snapshot.NewStore())

	resp, err := s.GetMetricSpec(context.Background(), &pb.ScaledObjectRef{Name: "workers"})
	if err != nil {
		t.Fatalf("GetMetricSpec() error = %v", err)
	}
	if len(resp.MetricSpecs) != 1 {
		t.Fatalf("got %d metric specs, want 1", len(resp.MetricSpecs))
	}

	spec := resp.MetricSpecs[0]
	if spec.MetricName != "fleet_load_avg" {
		t.Errorf("MetricName = %q, want %q", spec.MetricName, "fleet_load_avg")
	}
	if spec.TargetSizeFloat != 0.7 {
		t.Errorf("TargetSizeFloat = %v, want 0.7", spec.TargetSizeFloat)
	}
	if spec.TargetSize != 0 {
		t.Errorf("TargetSize = %d, want 0", spec.TargetSize)
	}
}

func TestGetMetricSpec_ThresholdOverride(t *testing.T) {
	s := newTestScaler(snapshot.NewStore())

	tests := []struct {
		name     string
		metadata map[string]string
		want     float64
	}{
		{"valid override", map[string]string{"loadAvgThreshold": "0.9"}, 0.9},
		{"invalid override falls back", map[string]string{"loadAvgThreshold": "not-a-number"}, 0.7},
		{"missing key falls back", map[string]string{"other": "0.9"}, 0.7},
		{"nil metadata falls back", nil, 0.7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := s.GetMetricSpec(context.Background(), &pb.ScaledObjectRef{
				Name:           "workers",
				ScalerMetadata: tt.metadata,
			})
			if err != nil {
				t.Fatalf("GetMetricSpec() error = %v", err)
			}
			if got := resp.MetricSpecs[0].TargetSizeFloat; got != tt.want {
				t.Errorf("TargetSizeFloat = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetMetricSpec_Idempotent(t *testing.T) {
	store := snapshot.NewStore()
	s := newTestScaler(store)

	ref := &pb.ScaledObjectRef{
		Name:           "workers",
		ScalerMetadata: map[string]string{"loadAvgThreshold": "0.85"},
	}

	for i := 0; i < 3; i++ {
		resp, err := s.GetMetricSpec(context.Background(), ref)
		if err != nil {
			t.Fatalf("GetMetricSpec() error = %v", err)
		}
		if got := resp.MetricSpecs[0].TargetSizeFloat; got != 0.85 {
			t.Errorf("call %d: TargetSizeFloat = %v, want 0.85", i, got)
		}
	}

	// Spec negotiation must not touch the snapshot store.
	if _, ok := store.Read(); ok {
		t.Error("GetMetricSpec should not publish snapshots")
	}
}

func TestGetMetrics_UnknownMetric(t *testing.T) {
	s := newTestScaler(snapshot.NewStore())

	_, err := s.GetMetrics(context.Background(), &pb.GetMetricsRequest{MetricName: "unsupported-name"})
	if err == nil {
		t.Fatal("GetMetrics() error = nil, want invalid argument")
	}
	if st, _ := status.FromError(err); st.Code() != codes.InvalidArgument {
		t.Errorf("GetMetrics() code = %v, want %v", st.Code(), codes.InvalidArgument)
	}
}

func TestGetMetrics_NoSnapshotAnswersZero(t *testing.T) {
	s := newTestScaler(snapshot.NewStore())

	resp, err := s.GetMetrics(context.Background(), &pb.GetMetricsRequest{MetricName: "fleet_load_avg"})
	if err != nil {
		t.Fatalf("GetMetrics() error = %v", err)
	}
	if len(resp.MetricValues) != 1 {
		t.Fatalf("got %d metric values, want 1", len(resp.MetricValues))
	}

	v := resp.MetricValues[0]
	if v.MetricName != "fleet_load_avg" {
		t.Errorf("MetricName = %q, want %q", v.MetricName, "fleet_load_avg")
	}
	if v.MetricValueFloat != 0 {
		t.Errorf("MetricValueFloat = %v, want 0 before first refresh", v.MetricValueFloat)
	}
}

func TestGetMetrics_ServesPublishedSnapshot(t *testing.T) {
	store := snapshot.NewStore()
	s := newTestScaler(store)

	store.Publish(snapshot.Snapshot{LoadAvg: 0.42, LoadStd: 0.05, Endpoints: 4})

	resp, err := s.GetMetrics(context.Background(), &pb.GetMetricsRequest{MetricName: "fleet_load_avg"})
	if err != nil {
		t.Fatalf("GetMetrics() error = %v", err)
	}
	if got := resp.MetricValues[0].MetricValueFloat; got != 0.42 {
		t.Errorf("MetricValueFloat = %v, want 0.42", got)
	}
}
