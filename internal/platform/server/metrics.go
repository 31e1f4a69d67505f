package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// MetricsServer は Prometheus のスクレイプ用 HTTP サーバーです。
type MetricsServer struct {
	httpServer *http.Server
	logger     *zap.Logger
}

// NewMetricsServer は handler を公開する MetricsServer を生成します。
func NewMetricsServer(listenAddr string, handler http.Handler, logger *zap.Logger) *MetricsServer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MetricsServer{
		httpServer: &http.Server{
			Addr:              listenAddr,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger,
	}
}

// Run は HTTP サーバーを起動し、コンテキストがキャンセルされると停止します。
func (s *MetricsServer) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.httpServer.Addr, err)
	}

	stopped := make(chan struct{})
	defer close(stopped)
	go func() {
		select {
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
				s.logger.Warn("metrics server shutdown", zap.Error(err))
			}
		case <-stopped:
		}
	}()

	s.logger.Info("metrics server listening", zap.String("addr", lis.Addr().String()))
	if err := s.httpServer.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve metrics: %w", err)
	}
	return nil
}
