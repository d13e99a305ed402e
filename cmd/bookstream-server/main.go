// Command bookstream-server wires the ingestion driver, orderbook
// engine, broadcast fan-out and gRPC subscription service into a single
// process, following rahjooh-CryptoTrade/main.go's flag+godotenv+config+
// logger bring-up shape and luxfi-dex/backend/cmd/dex/main.go's
// net.Listen+grpc.NewServer+graceful-shutdown pattern.
package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/lxbook/bookstream/internal/auth"
	"github.com/lxbook/bookstream/internal/book"
	"github.com/lxbook/bookstream/internal/broadcast"
	"github.com/lxbook/bookstream/internal/config"
	"github.com/lxbook/bookstream/internal/ingest"
	"github.com/lxbook/bookstream/internal/logging"
	"github.com/lxbook/bookstream/internal/market"
	"github.com/lxbook/bookstream/internal/metrics"
	"github.com/lxbook/bookstream/internal/rpcserver"
	"github.com/lxbook/bookstream/internal/stoptable"
	pb "github.com/lxbook/bookstream/proto/gen/orderbook"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	flag.Parse()

	_ = godotenv.Load() // optional .env overlay; missing file is not an error

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bookstream-server: %v\n", err)
		os.Exit(1)
	}

	log := logging.New()
	if err := log.Configure(cfg.LogLevel, cfg.LogFormat, cfg.LogOutput, cfg.LogMaxAge); err != nil {
		fmt.Fprintf(os.Stderr, "bookstream-server: %v\n", err)
		os.Exit(1)
	}
	root := log.WithComponent("main")

	universe := market.DefaultUniverse(cfg.MarketUniverseSize)
	if cfg.MarketUniverseFile != "" {
		universe, err = market.LoadUniverseFile(cfg.MarketUniverseFile)
		if err != nil {
			root.WithError(err).Fatal("loading market universe file")
		}
	}
	registry, err := market.NewFromPairs(universe)
	if err != nil {
		root.WithError(err).Fatal("building market registry")
	}
	root.WithFields(logging.Fields{"markets": registry.Len()}).Info("market registry ready")

	books := ingest.NewBookSet(registry, book.Limits{
		MaxOrdersPerLevel: cfg.MaxOrdersPerLevel,
		MaxLevelsPerSide:  cfg.MaxLevelsPerSide,
		MaxTotalOrders:    cfg.MaxTotalOrders,
	})
	stops := stoptable.New()
	ring := broadcast.NewRing(cfg.BroadcastCapacity)
	m := metrics.New()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		if err := m.ServeHTTP(ctx, cfg.MetricsPort); err != nil {
			root.WithError(err).Warn("metrics server stopped")
		}
	}()

	if cfg.IngressFile != "" {
		go runIngestion(ctx, cfg, registry, books, stops, ring, m, log)
	} else {
		root.Warn("no ingress_file configured; orderbooks will remain empty")
	}

	if err := serveGRPC(ctx, cfg, books, stops, ring, registry, m, log); err != nil {
		root.WithError(err).Fatal("grpc server stopped")
	}
}

func runIngestion(ctx context.Context, cfg config.Config, registry *market.Registry, books *ingest.BookSet, stops *stoptable.Table, ring *broadcast.Ring, m *metrics.Metrics, log *logging.Log) {
	ingestLog := log.WithComponent("ingest")

	parser := ingest.New(registry, ingest.Limits{
		MaxPrice: decimalOrDefault(cfg.MaxPrice, decimal.NewFromInt(10_000_000)),
		MaxSize:  decimalOrDefault(cfg.MaxSize, decimal.NewFromInt(1_000_000)),
	})
	breaker := ingest.NewBreaker(ingest.BreakerConfig{
		Window:       time.Duration(cfg.ErrorWindowSeconds) * time.Second,
		Threshold:    cfg.ErrorThresholdCount,
		OpenDuration: time.Duration(cfg.OpenDurationSeconds) * time.Second,
		SampleEvery:  cfg.LogSampleRate,
	})
	driver := ingest.NewDriver(parser, breaker, books, stops, ring, ingestLog.Entry)
	driver.SetMetrics(m)

	source, err := ingest.OpenFileSource(cfg.IngressFile, ingest.FileSourceOptions{
		FollowOnEOF:  cfg.IngressFollow,
		FromStart:    cfg.IngressFromStart,
		PollInterval: time.Duration(cfg.IngressPollMs) * time.Millisecond,
	})
	if err != nil {
		ingestLog.WithError(err).Error("opening ingress file")
		return
	}
	defer source.Close()

	if err := driver.Run(ctx, source); err != nil && ctx.Err() == nil {
		ingestLog.WithError(err).Error("ingestion driver stopped")
	}
}

func decimalOrDefault(s string, fallback decimal.Decimal) decimal.Decimal {
	if s == "" {
		return fallback
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return fallback
	}
	return v
}

func serveGRPC(ctx context.Context, cfg config.Config, books *ingest.BookSet, stops *stoptable.Table, ring *broadcast.Ring, registry *market.Registry, m *metrics.Metrics, log *logging.Log) error {
	rpcLog := log.WithComponent("rpcserver")

	checker := auth.NewChecker(cfg.RequireAuth, cfg.APIKeys, cfg.JWTKey)
	limiter := auth.NewRateLimiter(cfg.RateLimitPerMinute)

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			rpcserver.LoggingUnaryInterceptor(rpcLog.Entry, m),
			checker.UnaryInterceptor(),
			limiter.UnaryInterceptor(checker.ClientID),
		),
		grpc.ChainStreamInterceptor(
			rpcserver.LoggingStreamInterceptor(rpcLog.Entry, m),
			checker.StreamInterceptor(),
			limiter.StreamInterceptor(checker.ClientID),
		),
	)

	svc := rpcserver.New(books, stops, ring, registry, m, rpcLog.Entry, cfg.DepthMax, cfg.SubscriberOutboundCapacity)
	pb.RegisterOrderbookServiceServer(grpcServer, svc)

	healthSrv := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthSrv)
	healthSrv.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("bookstream-server: listen: %w", err)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case <-sigCh:
		case <-ctx.Done():
		}
		rpcLog.Info("shutting down grpc server")
		grpcServer.GracefulStop()
	}()

	rpcLog.WithFields(logging.Fields{"addr": lis.Addr().String()}).Info("grpc server listening")
	return grpcServer.Serve(lis)
}
