package rpcserver

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/lxbook/bookstream/internal/metrics"
)

func TestLoggingUnaryInterceptor_RecordsSuccessAndMetric(t *testing.T) {
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel) // successful calls are logged at Debug
	m := metrics.New()
	entry := logrus.NewEntry(log)

	interceptor := LoggingUnaryInterceptor(entry, m)
	info := &grpc.UnaryServerInfo{FullMethod: "/orderbook.OrderbookService/GetMarkets"}
	handler := func(ctx context.Context, req any) (any, error) { return "ok", nil }

	resp, err := interceptor(context.Background(), "req", info, handler)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp)
	require.NotEmpty(t, hook.Entries)
	assert.Equal(t, info.FullMethod, hook.LastEntry().Data["method"])
	assert.Equal(t, float64(1), testutil.ToFloat64(m.RPCRequests.WithLabelValues(info.FullMethod, codes.OK.String())))
}

func TestLoggingUnaryInterceptor_LogsFailureAtWarn(t *testing.T) {
	log, hook := test.NewNullLogger()
	entry := logrus.NewEntry(log)
	interceptor := LoggingUnaryInterceptor(entry, nil)
	info := &grpc.UnaryServerInfo{FullMethod: "/orderbook.OrderbookService/GetOrderbook"}
	handler := func(ctx context.Context, req any) (any, error) {
		return nil, status.Error(codes.NotFound, "no such market")
	}

	_, err := interceptor(context.Background(), "req", info, handler)
	assert.Error(t, err)
	require.NotEmpty(t, hook.Entries)
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
}
