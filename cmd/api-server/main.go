package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"cardcompare/internal/chat"
	"cardcompare/internal/grpcserver"
	"cardcompare/internal/observability"
	"cardcompare/internal/server"
	"cardcompare/pkg/logger"
	"cardcompare/pkg/utils"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := utils.LoadServerConfig()
	log := logger.MustNew(cfg.LogMode)
	defer log.Sync()

	if cfg.LogMode == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownOTel := observability.InitOTel(ctx, log, observability.OtelConfig{ServiceName: "cardcompare-api"})

	app, err := server.Bootstrap(ctx, cfg.Catalog, log)
	if err != nil {
		log.Fatal("startup failed", "error", err)
	}
	defer app.Close()

	appCfg := utils.LoadAppConfig()
	hub := chat.NewHub()
	router := server.NewRouter(server.Deps{
		App:       appCfg,
		Cards:     app.Cards,
		Assistant: app.Assistant,
		Chat:      app.Chat,
		Hub:       hub,
		Log:       log,
	})

	httpSrv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("HTTP server listening", "addr", cfg.HTTPAddr, "features", appCfg.Features)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	if cfg.GRPCAddr != "" {
		lis, err := net.Listen("tcp", cfg.GRPCAddr)
		if err != nil {
			log.Fatal("grpc listen failed", "addr", cfg.GRPCAddr, "error", err)
		}
		gs := grpcserver.NewGRPCServer(grpcserver.NewServer(app.Cards, app.Chat), log)
		g.Go(func() error {
			log.Info("gRPC server listening", "addr", cfg.GRPCAddr)
			return gs.Serve(lis)
		})
		g.Go(func() error {
			<-gctx.Done()
			gs.GracefulStop()
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down servers")
		hub.CloseAll()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			log.Warn("http shutdown error", "error", err)
		}
		if err := shutdownOTel(shutdownCtx); err != nil {
			log.Warn("otel shutdown error", "error", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
	log.Info("servers stopped")
}
