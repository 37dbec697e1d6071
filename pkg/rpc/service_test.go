package rpc

import (
	"context"
	"net"
	"testing"

	"courseplatform/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

func startHealth(t *testing.T) (grpc_health_v1.HealthClient, *observer.ObservedLogs) {
	t.Helper()

	core, logs := observer.New(zapcore.DebugLevel)
	log := &logger.Logger{SugaredLogger: zap.New(core).Sugar()}

	lis := bufconn.Listen(1 << 20)
	s := grpc.NewServer(grpc.UnaryInterceptor(UnaryLogger(log)))
	hs := health.NewServer()
	hs.SetServingStatus("course.CourseService", grpc_health_v1.HealthCheckResponse_SERVING)
	grpc_health_v1.RegisterHealthServer(s, hs)
	go func() { _ = s.Serve(lis) }()
	t.Cleanup(s.Stop)

	conn, err := Dial("passthrough:///bufnet", grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
		return lis.DialContext(ctx)
	}))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return grpc_health_v1.NewHealthClient(conn), logs
}

func TestDialRoundTrip(t *testing.T) {
	client, logs := startHealth(t)

	res, err := client.Check(context.Background(), &grpc_health_v1.HealthCheckRequest{Service: "course.CourseService"})
	require.NoError(t, err)
	assert.Equal(t, grpc_health_v1.HealthCheckResponse_SERVING, res.GetStatus())

	entries := logs.FilterMessage("grpc call").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "/grpc.health.v1.Health/Check", entries[0].ContextMap()["method"])
}

func TestUnaryLoggerReportsFailures(t *testing.T) {
	client, logs := startHealth(t)

	_, err := client.Check(context.Background(), &grpc_health_v1.HealthCheckRequest{Service: "missing"})
	require.Error(t, err)
	assert.Equal(t, codes.NotFound, status.Code(err))

	entries := logs.FilterMessage("grpc call failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, codes.NotFound.String(), entries[0].ContextMap()["code"])
}
