package server

import (
	"context"
	"net/http"
	"testing"
	"time"
)

func TestMetricsServer_StopsOnCancel(t *testing.T) {
	t.Parallel()

	srv := NewMetricsServer("127.0.0.1:0", http.NotFoundHandler(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("metrics server did not stop")
	}
}

func TestMetricsServer_ListenError(t *testing.T) {
	t.Parallel()

	srv := NewMetricsServer("256.0.0.1:bad", http.NotFoundHandler(), nil)
	if err := srv.Run(context.Background()); err == nil {
		t.Fatal("expected listen error")
	}
}
