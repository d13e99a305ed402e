package rpcserver

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/lxbook/bookstream/internal/book"
	"github.com/lxbook/bookstream/internal/broadcast"
	"github.com/lxbook/bookstream/internal/ingest"
	"github.com/lxbook/bookstream/internal/market"
	"github.com/lxbook/bookstream/internal/metrics"
	"github.com/lxbook/bookstream/internal/stoptable"
	pb "github.com/lxbook/bookstream/proto/gen/orderbook"
)

// Server adapts the book/stoptable/broadcast core to
// pb.OrderbookServiceServer, following luxfi-dex/pkg/grpc/server.go's
// pattern of a thin service struct holding references into the domain
// state rather than owning any of it.
type Server struct {
	pb.UnimplementedOrderbookServiceServer

	books    *ingest.BookSet
	stops    *stoptable.Table
	ring     *broadcast.Ring
	registry *market.Registry
	metrics  *metrics.Metrics
	log      *logrus.Entry

	depthMax         int
	outboundCapacity int
}

// New builds the RPC server. depthMax caps SubscribeOrderbook/GetOrderbook
// depth requests; outboundCapacity bounds each subscriber's send buffer.
func New(books *ingest.BookSet, stops *stoptable.Table, ring *broadcast.Ring, registry *market.Registry, m *metrics.Metrics, log *logrus.Entry, depthMax, outboundCapacity int) *Server {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Server{
		books: books, stops: stops, ring: ring, registry: registry, metrics: m, log: log,
		depthMax: depthMax, outboundCapacity: outboundCapacity,
	}
}

func (s *Server) clampDepth(requested uint32) int {
	d := int(requested)
	if d <= 0 {
		d = 50
	}
	if s.depthMax > 0 && d > s.depthMax {
		d = s.depthMax
	}
	return d
}

// SubscribeOrderbook streams an initial snapshot per requested market
// followed by incremental snapshots at the requested cadence, per spec
// §4.G. Backpressure is handled by a bounded outbound channel with a
// drop-oldest policy: a subscriber that falls behind loses its oldest
// pending snapshots first, and one whose buffer stays full is disconnected
// with ResourceExhausted (see send below).
func (s *Server) SubscribeOrderbook(req *pb.SubscribeRequest, stream pb.OrderbookService_SubscribeOrderbookServer) error {
	marketIDs := make([]uint16, 0, len(req.GetMarketIds()))
	for _, id := range req.GetMarketIds() {
		if _, err := s.registry.Symbol(uint16(id)); err != nil {
			return status.Errorf(codes.InvalidArgument, "rpcserver: unknown market_id %d", id)
		}
		marketIDs = append(marketIDs, uint16(id))
	}
	if len(marketIDs) == 0 {
		return status.Error(codes.InvalidArgument, "rpcserver: subscribe requires at least one market_id")
	}
	depth := s.clampDepth(req.GetDepth())
	interval := time.Duration(req.GetUpdateIntervalMs()) * time.Millisecond

	if s.metrics != nil {
		s.metrics.SubscriberCount.Inc()
		defer s.metrics.SubscriberCount.Dec()
	}

	ctx := stream.Context()
	outbound := make(chan book.Snapshot, s.outboundCapacity)

	// consecutiveDrops counts how many emissions in a row found the
	// outbound channel already full. A subscriber stuck at capacity for a
	// full buffer's worth of drops is not merely behind, it is not
	// draining at all, so the session is disconnected per spec §4.G
	// ("on persistent failure, the subscriber is disconnected with
	// ResourceExhausted") rather than dropped snapshots forever.
	consecutiveDrops := 0
	send := func(snap book.Snapshot) error {
		select {
		case outbound <- snap:
			consecutiveDrops = 0
			return nil
		default:
		}

		consecutiveDrops++
		if consecutiveDrops > s.outboundCapacity {
			return status.Error(codes.ResourceExhausted, "rpcserver: subscriber outbound buffer persistently full")
		}
		// Drop the oldest pending snapshot in favor of the newer one
		// rather than block the driver-fed session.
		select {
		case <-outbound:
		default:
		}
		select {
		case outbound <- snap:
		default:
		}
		return nil
	}

	sess := NewSession(s.books, s.ring, marketIDs, depth, interval)
	sess.SetMetrics(s.metrics)
	sessErrCh := make(chan error, 1)
	go func() { sessErrCh <- sess.Run(ctx, send) }()

	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-sessErrCh:
			return err
		case snap := <-outbound:
			if err := stream.Send(s.toPBSnapshot(snap)); err != nil {
				return err
			}
		}
	}
}

func (s *Server) toPBSnapshot(snap book.Snapshot) *pb.OrderbookSnapshot {
	symbol, _ := s.registry.Symbol(snap.MarketID)
	out := &pb.OrderbookSnapshot{
		MarketId:  uint32(snap.MarketID),
		Symbol:    symbol,
		Sequence:  snap.Sequence,
		Timestamp: snap.TsNs,
		Bids:      toPBLevels(snap.Bids),
		Asks:      toPBLevels(snap.Asks),
	}
	return out
}

func toPBLevels(levels []book.LevelView) []*pb.Level {
	out := make([]*pb.Level, len(levels))
	for i, lv := range levels {
		price, _ := lv.Price.Float64()
		size, _ := lv.Size.Float64()
		out[i] = &pb.Level{Price: price, Quantity: size, OrderCount: uint32(lv.OrderCount)}
	}
	return out
}

// GetOrderbook returns a single point-in-time snapshot, per spec §6.
func (s *Server) GetOrderbook(ctx context.Context, req *pb.GetOrderbookRequest) (*pb.OrderbookSnapshot, error) {
	b, ok := s.books.Get(uint16(req.GetMarketId()))
	if !ok {
		return nil, status.Errorf(codes.InvalidArgument, "rpcserver: unknown market_id %d", req.GetMarketId())
	}
	depth := s.clampDepth(req.GetDepth())
	snap := b.Snapshot(depth, time.Now().UnixNano())
	return s.toPBSnapshot(snap), nil
}

// GetMarkets lists the frozen symbol<->market_id universe.
func (s *Server) GetMarkets(ctx context.Context, _ *pb.Empty) (*pb.MarketsResponse, error) {
	entries := s.registry.All()
	markets := make([]*pb.Market, len(entries))
	for i, e := range entries {
		markets[i] = &pb.Market{Id: uint32(e.MarketID), Symbol: e.Symbol}
	}
	return &pb.MarketsResponse{Markets: markets}, nil
}

// GetStopOrders filters the stop-order table, optionally ranking the
// result by risk score per spec §4.D/§6.
func (s *Server) GetStopOrders(ctx context.Context, req *pb.StopOrdersRequest) (*pb.StopOrdersResponse, error) {
	filter := stoptable.Filter{}
	switch f := req.GetFilter().(type) {
	case *pb.StopOrdersRequest_MarketId:
		id := uint16(f.MarketId)
		filter.MarketID = &id
	case *pb.StopOrdersRequest_User:
		filter.User = &f.User
	}
	if side := req.GetSide(); side == "B" || side == "A" {
		s := book.Buy
		if side == "A" {
			s = book.Sell
		}
		filter.Side = &s
	}
	if req.GetMinNotional() > 0 {
		v := decimal.NewFromFloat(req.GetMinNotional())
		filter.MinNotional = &v
	}
	if req.GetMaxNotional() > 0 {
		v := decimal.NewFromFloat(req.GetMaxNotional())
		filter.MaxNotional = &v
	}
	if req.GetMaxDistanceFromMidBps() > 0 {
		v := decimal.NewFromFloat(req.GetMaxDistanceFromMidBps())
		filter.MaxDistanceFromMidBps = &v
	}

	weights := stoptable.DefaultWeights()
	if req.GetDistanceWeight() > 0 {
		weights.Distance = req.GetDistanceWeight()
	}
	if req.GetSlippageWeight() > 0 {
		weights.Slippage = req.GetSlippageWeight()
	}

	ranked := s.stops.Query(filter, req.GetRankByRisk(), weights, s.books.Lookup())
	out := make([]*pb.RankedStopOrder, len(ranked))
	for i, r := range ranked {
		symbol, _ := s.registry.Symbol(r.Order.MarketID)
		distBps, _ := r.DistanceToTriggerBps.Float64()
		slipBps, _ := r.ExpectedSlippageBps.Float64()
		triggerPx, _ := r.Order.TriggerPrice.Float64()
		size, _ := r.Order.Size.Float64()
		out[i] = &pb.RankedStopOrder{
			Order: &pb.StopOrder{
				Id:               r.Order.ID,
				MarketId:         uint32(r.Order.MarketID),
				Symbol:           symbol,
				Side:             sideWire(r.Order.Side),
				TriggerPrice:     triggerPx,
				Size:             size,
				User:             r.Order.User,
				TriggerCondition: r.Order.TriggerCondition,
				TsMs:             r.Order.TsMs,
			},
			DistanceToTriggerBps: distBps,
			ExpectedSlippageBps:  slipBps,
			RiskScore:            r.RiskScore,
			RiskLevel:            r.RiskLevel.String(),
		}
	}
	return &pb.StopOrdersResponse{Orders: out}, nil
}

func sideWire(s book.Side) string {
	if s == book.Sell {
		return "A"
	}
	return "B"
}

// SubscribeMarkPrices is out of scope for this service; mark prices are
// produced by a separate collaborator (spec.md §1 non-goals).
func (s *Server) SubscribeMarkPrices(_ *pb.MarkPriceSubscribeRequest, _ pb.OrderbookService_SubscribeMarkPricesServer) error {
	return status.Error(codes.Unimplemented, "rpcserver: mark prices are published by a separate service")
}

// GetMarkPrice is out of scope for this service; see SubscribeMarkPrices.
func (s *Server) GetMarkPrice(_ context.Context, _ *pb.GetMarkPriceRequest) (*pb.MarkPriceResponse, error) {
	return nil, status.Error(codes.Unimplemented, "rpcserver: mark prices are published by a separate service")
}
