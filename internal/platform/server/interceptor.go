package server

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// RequestIDHeader はリクエスト ID を受け渡すメタデータキーです。
const RequestIDHeader = "x-request-id"

// RPCObserver は gRPC リクエストの結果を記録します。
type RPCObserver interface {
	ObserveRPC(method, code string, elapsed time.Duration)
}

type requestIDKey struct{}

// RequestIDFromContext はインターセプタが割り当てたリクエスト ID を返します。
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// UnaryInterceptor はリクエスト ID の付与・アクセスログ・メトリクス記録を行います。
func UnaryInterceptor(logger *zap.Logger, observer RPCObserver) grpc.UnaryServerInterceptor {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		requestID := incomingRequestID(ctx)
		ctx = context.WithValue(ctx, requestIDKey{}, requestID)
		_ = grpc.SetHeader(ctx, metadata.Pairs(RequestIDHeader, requestID))

		start := time.Now()
		resp, err := handler(ctx, req)
		elapsed := time.Since(start)

		code := status.Code(err)
		if observer != nil {
			observer.ObserveRPC(info.FullMethod, code.String(), elapsed)
		}

		level := zapcore.InfoLevel
		switch code {
		case codes.OK, codes.NotFound, codes.InvalidArgument, codes.Canceled:
		default:
			level = zapcore.ErrorLevel
		}
		if ce := logger.Check(level, "grpc request"); ce != nil {
			fields := []zap.Field{
				zap.String("method", info.FullMethod),
				zap.String("code", code.String()),
				zap.Duration("duration", elapsed),
				zap.String("request_id", requestID),
			}
			if err != nil {
				fields = append(fields, zap.Error(err))
			}
			ce.Write(fields...)
		}

		return resp, err
	}
}

func incomingRequestID(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(RequestIDHeader); len(values) > 0 && values[0] != "" {
			return values[0]
		}
	}
	return uuid.NewString()
}
