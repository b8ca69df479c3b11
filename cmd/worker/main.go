package main

import (
	"net"
	"os"
	"os/signal"
	"syscall"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/fleetwise/loadscaler/cmd/worker/collector"
	"github.com/fleetwise/loadscaler/cmd/worker/config"
	"github.com/fleetwise/loadscaler/cmd/worker/logger"
	pb "github.com/fleetwise/loadscaler/pkg/api/fleetmetrics"
)

func main() {
	cfg := config.ParseFlags()
	log := logger.New(cfg)

	log.Info("starting worker agent",
		"listen", cfg.GRPCListen,
		"worker_id", cfg.WorkerID,
		"component", cfg.Component,
		"endpoint", cfg.Endpoint,
	)

	agent := NewAgent(cfg.WorkerID, cfg.Component, cfg.Endpoint, collector.New(), log)

	grpcServer := grpc.NewServer()

	pb.RegisterWorkerMetricsServer(grpcServer, agent)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", cfg.GRPCListen)
	if err != nil {
		log.Error("failed to listen", "error", err)
		os.Exit(1)
	}

	go func() {
		log.Info("grpc server listening", "address", cfg.GRPCListen)
		if err := grpcServer.Serve(lis); err != nil {
			log.Error("grpc server failed", "error", err)
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	sig := <-sigChan
	log.Info("received shutdown signal", "signal", sig)

	log.Info("shutting down grpc server")
	grpcServer.GracefulStop()

	log.Info("shutdown complete")
}
