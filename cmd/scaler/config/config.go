// Package config provides configuration parsing and management for the scaler.
//
// It handles both command-line flags and environment variables, with flags
// taking precedence over environment variables. An optional .env file in the
// working directory is loaded first, so container deployments can ship their
// settings as a file.
//
// Supported configuration sources (in order of precedence):
//   1. Command-line flags
//   2. Environment variables (including .env)
//   3. Default values
package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	GRPCListen string
	HTTPListen string

	// Members is the fleet member address list polled each refresh.
	Members []string
	// Component and Endpoint identify the monitored fleet subject.
	Component string
	Endpoint  string

	RefreshInterval time.Duration
	CollectTimeout  time.Duration

	// Threshold is the default load-average target when the ScaledObject
	// metadata does not override it.
	Threshold float64

	// CacheTTL no longer affects behavior: the snapshot staleness policy is
	// "retain last success until next success". The flag stays parseable so
	// existing deployments do not break.
	CacheTTL time.Duration

	LogFormat string
	LogLevel  string
}

func ParseFlags() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	var members string

	flag.StringVar(&cfg.GRPCListen, "listen", getEnv("SCALER_LISTEN", ":50051"), "gRPC listen address")
	flag.StringVar(&cfg.HTTPListen, "http-listen", getEnv("SCALER_HTTP_LISTEN", ":8082"), "HTTP listen address (healthz, metrics)")
	flag.StringVar(&members, "members", getEnv("SCALER_MEMBERS", ""), "Comma-separated fleet member addresses")
	flag.StringVar(&cfg.Component, "component", getEnv("SCALER_COMPONENT", "worker"), "Monitored component name")
	flag.StringVar(&cfg.Endpoint, "endpoint", getEnv("SCALER_ENDPOINT", "load-metrics"), "Monitored endpoint name")
	flag.DurationVar(&cfg.RefreshInterval, "refresh-interval", getEnvDuration("SCALER_REFRESH_INTERVAL", 5*time.Second), "How often to poll the fleet")
	flag.DurationVar(&cfg.CollectTimeout, "collect-timeout", getEnvDuration("SCALER_COLLECT_TIMEOUT", 300*time.Millisecond), "Timeout for one fleet collection pass")
	flag.Float64Var(&cfg.Threshold, "threshold", getEnvFloat("SCALER_THRESHOLD", 0.7), "Default load average threshold")
	flag.DurationVar(&cfg.CacheTTL, "cache-ttl", getEnvDuration("SCALER_CACHE_TTL", 5*time.Second), "Deprecated, has no effect")
	flag.StringVar(&cfg.LogFormat, "log-format", getEnv("LOG_FORMAT", "text"), "Log format (text|json)")
	flag.StringVar(&cfg.LogLevel, "log-level", getEnv("LOG_LEVEL", "info"), "Log level (debug|info|warn|error)")

	flag.Parse()

	cfg.Members = SplitMembers(members)

	// Validation
	if len(cfg.Members) == 0 {
		fmt.Fprintln(os.Stderr, "Error: -members is required")
		flag.Usage()
		os.Exit(1)
	}

	return cfg
}

// SplitMembers parses a comma-separated address list, dropping empty entries.
func SplitMembers(s string) []string {
	var members []string
	for _, m := range strings.Split(s, ",") {
		if m = strings.TrimSpace(m); m != "" {
			members = append(members, m)
		}
	}
	return members
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
