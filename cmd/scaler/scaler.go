package main

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/fleetwise/loadscaler/cmd/scaler/metrics"
	pb "github.com/fleetwise/loadscaler/pkg/api/externalscaler"
	"github.com/fleetwise/loadscaler/pkg/snapshot"
)

const (
	// loadAvgMetricName is the only metric this scaler serves.
	loadAvgMetricName = "fleet_load_avg"

	// thresholdMetadataKey is the ScaledObject metadata key for overriding the
	// load average target per autoscaling object.
	thresholdMetadataKey = "loadAvgThreshold"
)

// Scaler implements the KEDA external scaler protocol on top of the snapshot
// store. It never reaches out to the fleet itself; the refresh loop owns that.
type Scaler struct {
	pb.UnimplementedExternalScalerServer

	store     *snapshot.Store
	threshold float64
	logger    *slog.Logger
	metrics   *metrics.Metrics
}

func New(store *snapshot.Store, defaultThreshold float64, logger *slog.Logger, m *metrics.Metrics) *Scaler {
	return &Scaler{
		store:     store,
		threshold: defaultThreshold,
		logger:    logger,
		metrics:   m,
	}
}

func (s *Scaler) observe(method string, start time.Time, err error) {
	st := "success"
	if err != nil {
		st = "error"
	}
	s.metrics.RecordGRPCRequest(method, st)
	s.metrics.ObserveGRPCDuration(method, time.Since(start).Seconds())
}

// IsActive always reports active: the fleet backs work that must keep at
// least one member running, so scale-to-zero is never offered.
func (s *Scaler) IsActive(ctx context.Context, ref *pb.ScaledObjectRef) (*pb.IsActiveResponse, error) {
	defer s.observe("IsActive", time.Now(), nil)

	s.logger.Debug("IsActive check, always active to prevent scale to zero",
		"namespace", ref.GetNamespace(),
		"name", ref.GetName(),
	)
	return &pb.IsActiveResponse{Result: true}, nil
}

// StreamIsActive is permanently unsupported: this scaler is a pull-only
// responder and never initiates activity notifications.
func (s *Scaler) StreamIsActive(ref *pb.ScaledObjectRef, _ pb.ExternalScaler_StreamIsActiveServer) error {
	err := status.Error(codes.Unimplemented,
		"StreamIsActive is not implemented for this external scaler, use pull-based scaling instead")
	defer s.observe("StreamIsActive", time.Now(), err)

	s.logger.Debug("StreamIsActive called but not supported",
		"namespace", ref.GetNamespace(),
		"name", ref.GetName(),
	)
	return err
}

// GetMetricSpec reports the load average target, per-object overridable via
// ScaledObject metadata.
func (s *Scaler) GetMetricSpec(ctx context.Context, ref *pb.ScaledObjectRef) (*pb.GetMetricSpecResponse, error) {
	defer s.observe("GetMetricSpec", time.Now(), nil)

	threshold := s.thresholdFor(ref.GetScalerMetadata())

	s.logger.Debug("providing metric spec",
		"namespace", ref.GetNamespace(),
		"name", ref.GetName(),
		"threshold", threshold,
	)

	return &pb.GetMetricSpecResponse{
		MetricSpecs: []*pb.MetricSpec{
			{
				MetricName: loadAvgMetricName,
				// TargetSize is deprecated in KEDA; the float field carries the target.
				TargetSize:      0,
				TargetSizeFloat: threshold,
			},
		},
	}, nil
}

// GetMetrics answers with the cached load average. Before the first successful
// refresh it reports zero load: a controller starting up must get a well-formed
// low-signal answer, not an error it could mistake for "scale to max".
func (s *Scaler) GetMetrics(ctx context.Context, req *pb.GetMetricsRequest) (resp *pb.GetMetricsResponse, err error) {
	start := time.Now()
	defer func() { s.observe("GetMetrics", start, err) }()

	if name := req.GetMetricName(); name != loadAvgMetricName {
		err = status.Errorf(codes.InvalidArgument, "unknown metric: %s", name)
		return nil, err
	}

	snap, ok := s.store.Read()
	if !ok {
		s.logger.Debug("no snapshot available, answering zero load")
		snap = snapshot.Snapshot{}
	}

	return &pb.GetMetricsResponse{
		MetricValues: []*pb.MetricValue{
			{
				MetricName: loadAvgMetricName,
				// MetricValue is deprecated in KEDA; the float field carries the value.
				MetricValue:      0,
				MetricValueFloat: snap.LoadAvg,
			},
		},
	}, nil
}

// thresholdFor extracts the per-object threshold override, falling back to the
// configured default when absent or unparseable.
func (s *Scaler) thresholdFor(md map[string]string) float64 {
	if raw, ok := md[thresholdMetadataKey]; ok {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			return v
		}
		s.logger.Warn("ignoring unparseable threshold override", "value", raw)
	}
	return s.threshold
}
