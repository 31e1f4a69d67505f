package server

import (
	"context"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type recordingObserver struct {
	mu    sync.Mutex
	calls []string
}

func (o *recordingObserver) ObserveRPC(method, code string, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.calls = append(o.calls, method+" "+code)
}

func TestUnaryInterceptor_ErrorLevel(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	obs := &recordingObserver{}
	interceptor := UnaryInterceptor(zap.New(core), obs)
	info := &grpc.UnaryServerInfo{FullMethod: "/hrdashboard.v1.DashboardService/ToggleBookmark"}

	var seenID string
	_, err := interceptor(context.Background(), nil, info, func(ctx context.Context, _ any) (any, error) {
		seenID = RequestIDFromContext(ctx)
		return nil, status.Error(codes.Internal, "boom")
	})
	if status.Code(err) != codes.Internal {
		t.Fatalf("expected Internal, got %v", err)
	}
	if seenID == "" {
		t.Fatal("expected request id in handler context")
	}

	entries := logs.All()
	if len(entries) != 1 || entries[0].Level != zapcore.ErrorLevel {
		t.Fatalf("expected one error entry, got %+v", entries)
	}
	if len(obs.calls) != 1 || obs.calls[0] != info.FullMethod+" Internal" {
		t.Fatalf("unexpected observer calls: %v", obs.calls)
	}
}
