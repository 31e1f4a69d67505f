package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ogurasousui/codex-hr-dashboard/internal/adapters/directory/dummyjson"
	"github.com/ogurasousui/codex-hr-dashboard/internal/adapters/grpc/handler"
	"github.com/ogurasousui/codex-hr-dashboard/internal/core/bookmark"
	"github.com/ogurasousui/codex-hr-dashboard/internal/core/dashboard"
	"github.com/ogurasousui/codex-hr-dashboard/internal/core/employee"
	"github.com/ogurasousui/codex-hr-dashboard/internal/platform/config"
	"github.com/ogurasousui/codex-hr-dashboard/internal/platform/logging"
	"github.com/ogurasousui/codex-hr-dashboard/internal/platform/metrics"
	"github.com/ogurasousui/codex-hr-dashboard/internal/platform/server"
	"github.com/ogurasousui/codex-hr-dashboard/internal/platform/storage"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "assets/local.yaml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("server stopped with error", zap.Error(err))
	}
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	m := metrics.New()

	backend, err := storage.Open(ctx, cfg.Storage, logger)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer backend.Close()

	bookmarkOpts := append(backend.Options(),
		bookmark.WithKey(cfg.Storage.Key),
		bookmark.WithLogger(logger.Named("bookmark")),
		bookmark.WithRecorder(m),
	)
	store := bookmark.Open(ctx, backend.Repository, bookmarkOpts...)

	dir, err := dummyjson.New(dummyjson.Config{
		BaseURL:     cfg.Directory.BaseURL,
		Limit:       cfg.Directory.Limit,
		Timeout:     cfg.Directory.Timeout,
		MaxAttempts: cfg.Directory.MaxAttempts,
		BaseBackoff: cfg.Directory.BaseBackoff,
		MaxBackoff:  cfg.Directory.MaxBackoff,
	}, dummyjson.WithLogger(logger.Named("directory")))
	if err != nil {
		return fmt.Errorf("create directory client: %w", err)
	}

	var rnd employee.Randomizer
	if cfg.Enrichment.Seed != nil {
		rnd = employee.NewSeededRandomizer(*cfg.Enrichment.Seed)
		logger.Info("enrichment is deterministic", zap.Uint64("seed", *cfg.Enrichment.Seed))
	}

	svc := dashboard.NewService(dir, employee.NewEnricher(rnd, nil),
		dashboard.WithLogger(logger.Named("dashboard")),
		dashboard.WithRecorder(m),
	)
	// 取得に失敗しても状態は GetState で参照できるため起動は続ける
	if err := svc.Load(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Warn("starting without employees", zap.Error(err))
	}

	h := handler.NewDashboardGrpcHandler(svc, store, handler.WithLogger(logger.Named("grpc")))
	grpcServer := server.New(cfg.Server.ListenAddr, h, logger, m)
	grpcServer.SetShutdownTimeout(cfg.Server.ShutdownTimeout)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return grpcServer.Run(gctx)
	})
	if cfg.Metrics.Enabled {
		metricsServer := server.NewMetricsServer(cfg.Metrics.ListenAddr, m.Handler(cfg.Metrics.Path), logger)
		g.Go(func() error {
			return metricsServer.Run(gctx)
		})
	}

	err = g.Wait()
	logger.Info("server stopped", zap.Int("bookmarks", store.Len()))
	return err
}
