package rpc

import (
	"context"
	"time"

	"courseplatform/pkg/logger"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

// Dial открывает соединение к соседнему сервису внутри кластера (без TLS).
func Dial(target string, opts ...grpc.DialOption) (*grpc.ClientConn, error) {
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}, opts...)
	return grpc.NewClient(target, opts...)
}

// UnaryLogger пишет в лог каждый вызов: метод, код ответа, длительность.
func UnaryLogger(log *logger.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		code := status.Code(err)
		if err != nil {
			log.Warn("grpc call failed", "method", info.FullMethod, "code", code.String(), "error", err.Error(), "took", time.Since(start))
		} else {
			log.Debug("grpc call", "method", info.FullMethod, "took", time.Since(start))
		}
		return resp, err
	}
}
