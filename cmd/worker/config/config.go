// Package config provides configuration parsing and management for the worker
// agent.
//
// It handles both command-line flags and environment variables, with flags
// taking precedence over environment variables. An optional .env file in the
// working directory is loaded first, so container deployments can ship their
// settings as a file.
//
// Supported configuration sources (in order of precedence):
//  1. Command-line flags
//  2. Environment variables (including .env)
//  3. Default values
package config

import (
	"flag"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	GRPCListen string

	// WorkerID identifies this agent in load reports. Defaults to the
	// hostname so a fleet of pods gets distinct ids for free.
	WorkerID string

	// Component and Endpoint are the subject names this agent answers for.
	// Requests naming anything else are rejected.
	Component string
	Endpoint  string

	LogFormat string
	LogLevel  string
}

func ParseFlags() *Config {
	_ = godotenv.Load()

	cfg := &Config{}

	flag.StringVar(&cfg.GRPCListen, "listen", getEnv("WORKER_LISTEN", ":7070"), "gRPC listen address")
	flag.StringVar(&cfg.WorkerID, "worker-id", getEnv("WORKER_ID", defaultWorkerID()), "Worker identifier reported in load metrics")
	flag.StringVar(&cfg.Component, "component", getEnv("WORKER_COMPONENT", "worker"), "Component name this agent serves")
	flag.StringVar(&cfg.Endpoint, "endpoint", getEnv("WORKER_ENDPOINT", "load-metrics"), "Endpoint name this agent serves")
	flag.StringVar(&cfg.LogFormat, "log-format", getEnv("LOG_FORMAT", "text"), "Log format (text|json)")
	flag.StringVar(&cfg.LogLevel, "log-level", getEnv("LOG_LEVEL", "info"), "Log level (debug|info|warn|error)")

	flag.Parse()

	return cfg
}

func defaultWorkerID() string {
	if host, err := os.Hostname(); err == nil && host != "" {
		return host
	}
	return "worker"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
