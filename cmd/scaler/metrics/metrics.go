// Package metrics provides Prometheus metrics instrumentation for the scaler.
//
// It exposes operational metrics about the scaler's gRPC service performance
// and the background fleet collection loop. All metrics are exposed via the
// /metrics HTTP endpoint for Prometheus scraping.
//
// Metrics exposed:
//   - loadscaler_grpc_requests_total: Counter of gRPC requests by method and status
//   - loadscaler_grpc_request_duration_seconds: Histogram of gRPC request durations
//   - loadscaler_collect_duration_seconds: Histogram of fleet collection latency
//   - loadscaler_collect_errors_total: Counter of failed collection passes
//   - loadscaler_fleet_load_avg: Gauge of the last published load average
//   - loadscaler_fleet_load_std: Gauge of the last published load dispersion
//   - loadscaler_fleet_endpoints: Gauge of members in the last reduction
//   - loadscaler_snapshot_age_seconds: Gauge of the cached snapshot's age
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	GRPCRequestsTotal   *prometheus.CounterVec
	GRPCRequestDuration *prometheus.HistogramVec
	CollectDuration     prometheus.Histogram
	CollectErrors       prometheus.Counter
	FleetLoadAvg        prometheus.Gauge
	FleetLoadStd        prometheus.Gauge
	FleetEndpoints      prometheus.Gauge
	SnapshotAge         prometheus.Gauge
}

func New() *Metrics {
	return &Metrics{
		GRPCRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "loadscaler_grpc_requests_total",
			Help: "Total number of gRPC requests by method and status",
		}, []string{"method", "status"}),

		GRPCRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "loadscaler_grpc_request_duration_seconds",
			Help:    "Duration of gRPC requests by method",
			Buckets: prometheus.DefBuckets,
		}, []string{"method"}),

		CollectDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "loadscaler_collect_duration_seconds",
			Help:    "Duration of one fleet collection pass",
			Buckets: prometheus.DefBuckets,
		}),

		CollectErrors: promauto.NewCounter(prometheus.CounterOpts{
			Name: "loadscaler_collect_errors_total",
			Help: "Total number of failed fleet collection passes",
		}),

		FleetLoadAvg: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "loadscaler_fleet_load_avg",
			Help: "Last published fleet load average",
		}),

		FleetLoadStd: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "loadscaler_fleet_load_std",
			Help: "Last published fleet load standard deviation",
		}),

		FleetEndpoints: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "loadscaler_fleet_endpoints",
			Help: "Number of fleet members in the last reduction",
		}),

		SnapshotAge: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "loadscaler_snapshot_age_seconds",
			Help: "Age of the cached load snapshot",
		}),
	}
}

func (m *Metrics) RecordGRPCRequest(method, status string) {
	m.GRPCRequestsTotal.WithLabelValues(method, status).Inc()
}

func (m *Metrics) ObserveGRPCDuration(method string, seconds float64) {
	m.GRPCRequestDuration.WithLabelValues(method).Observe(seconds)
}

func (m *Metrics) ObserveCollect(seconds float64) {
	m.CollectDuration.Observe(seconds)
}

func (m *Metrics) RecordCollectError() {
	m.CollectErrors.Inc()
}

func (m *Metrics) SetFleetLoad(avg, std float64, endpoints int) {
	m.FleetLoadAvg.Set(avg)
	m.FleetLoadStd.Set(std)
	m.FleetEndpoints.Set(float64(endpoints))
}

func (m *Metrics) SetSnapshotAge(seconds float64) {
	m.SnapshotAge.Set(seconds)
}
