package rpcserver

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/reflect/protoreflect"

	"github.com/lxbook/bookstream/internal/metrics"
)

// LoggingUnaryInterceptor logs each unary call's method, latency and
// resulting status code, marshaling the request with protojson the way
// IRIO-ORG-Trading-System/common/interceptors.go's LoggingInterceptor
// does. It also records m.RPCRequests, if m is non-nil.
func LoggingUnaryInterceptor(log *logrus.Entry, m *metrics.Metrics) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		code := status.Code(err)

		entry := log.WithFields(logrus.Fields{
			"method":      info.FullMethod,
			"code":        code.String(),
			"duration_ms": time.Since(start).Milliseconds(),
		})
		if msg, ok := req.(protoreflect.ProtoMessage); ok {
			if body, mErr := (protojson.MarshalOptions{Multiline: false}).Marshal(msg); mErr == nil {
				entry = entry.WithField("request", string(body))
			}
		}
		if err != nil {
			entry.WithError(err).Warn("rpc failed")
		} else {
			entry.Debug("rpc ok")
		}

		if m != nil {
			m.RPCRequests.WithLabelValues(info.FullMethod, code.String()).Inc()
		}
		return resp, err
	}
}

// LoggingStreamInterceptor is the streaming analogue of
// LoggingUnaryInterceptor. It logs the method at stream start and the
// method, code and duration at stream end; the stream's request message is
// not logged.
func LoggingStreamInterceptor(log *logrus.Entry, m *metrics.Metrics) grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		start := time.Now()
		log.WithField("method", info.FullMethod).Debug("stream started")

		err := handler(srv, ss)
		code := status.Code(err)
		entry := log.WithFields(logrus.Fields{
			"method":      info.FullMethod,
			"code":        code.String(),
			"duration_ms": time.Since(start).Milliseconds(),
		})
		if err != nil && code != codes.Canceled {
			entry.WithError(err).Warn("stream failed")
		} else {
			entry.Debug("stream ended")
		}

		if m != nil {
			m.RPCRequests.WithLabelValues(info.FullMethod, code.String()).Inc()
		}
		return err
	}
}
