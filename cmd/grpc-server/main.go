package main

import (
	"context"
	"net"
	"os/signal"
	"syscall"

	"cardcompare/internal/grpcserver"
	"cardcompare/internal/server"
	"cardcompare/pkg/logger"
	"cardcompare/pkg/utils"
)

func main() {
	cfg := utils.LoadServerConfig()
	log := logger.MustNew(cfg.LogMode)
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := server.Bootstrap(ctx, cfg.Catalog, log)
	if err != nil {
		log.Fatal("startup failed", "error", err)
	}
	defer app.Close()

	grpcCfg := utils.LoadGrpcConfig()
	if grpcCfg.Addr == "" {
		log.Fatal("CARDCOMPARE_GRPC_ADDR is off; nothing to serve")
	}
	listener, err := net.Listen("tcp", grpcCfg.Addr)
	if err != nil {
		log.Fatal("grpc listen failed", "addr", grpcCfg.Addr, "error", err)
	}

	gs := grpcserver.NewGRPCServer(grpcserver.NewServer(app.Cards, app.Chat), log)
	go func() {
		<-ctx.Done()
		log.Info("shutting down gRPC server")
		gs.GracefulStop()
	}()

	log.Info("gRPC server listening", "addr", grpcCfg.Addr)
	if err := gs.Serve(listener); err != nil {
		log.Fatal("grpc server stopped", "error", err)
	}
}
