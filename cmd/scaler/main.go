package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/fleetwise/loadscaler/cmd/scaler/config"
	"github.com/fleetwise/loadscaler/cmd/scaler/logger"
	"github.com/fleetwise/loadscaler/cmd/scaler/metrics"
	"github.com/fleetwise/loadscaler/cmd/scaler/router"
	pb "github.com/fleetwise/loadscaler/pkg/api/externalscaler"
	"github.com/fleetwise/loadscaler/pkg/fleet"
	"github.com/fleetwise/loadscaler/pkg/httpx"
	"github.com/fleetwise/loadscaler/pkg/snapshot"
)

func main() {
	cfg := config.ParseFlags()
	log := logger.New(cfg)
	m := metrics.New()

	log.Info("starting fleet load scaler",
		"listen", cfg.GRPCListen,
		"members", len(cfg.Members),
		"component", cfg.Component,
		"endpoint", cfg.Endpoint,
		"refresh_interval", cfg.RefreshInterval,
	)

	store := snapshot.NewStore()

	source := fleet.NewGRPCSource(cfg.Component, cfg.Endpoint, cfg.Members, log)
	defer source.Close()

	monitor := &fleet.Monitor{
		Source:         source,
		Store:          store,
		Interval:       cfg.RefreshInterval,
		CollectTimeout: cfg.CollectTimeout,
		Logger:         log,
		Stats:          m,
	}

	monitorCtx, stopMonitor := context.WithCancel(context.Background())
	monitorDone := make(chan struct{})
	go func() {
		monitor.Run(monitorCtx)
		close(monitorDone)
	}()

	scaler := New(store, cfg.Threshold, log, m)

	grpcServer := grpc.NewServer()

	pb.RegisterExternalScalerServer(grpcServer, scaler)

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

	httpMux := router.SetupRoutes(log, store)
	httpServer := httpx.NewServer(cfg.HTTPListen, httpMux, log)

	go func() {
		if err := httpServer.Start(); err != nil {
			log.Error("http server failed", "error", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	sig := <-sigChan
	log.Info("received shutdown signal", "signal", sig)

	log.Info("stopping refresh loop")
	stopMonitor()
	<-monitorDone

	log.Info("shutting down grpc server")
	grpcServer.GracefulStop()

	log.Info("shutting down http server")
	if err := httpServer.Stop(10 * time.Second); err != nil {
		log.Error("http server shutdown error", "error", err)
	}

	log.Info("shutdown complete")
}
