// Wire schema for the orderbook streaming service. Generated Go bindings
// are produced at build time (see ../Makefile) and are not committed,
// following the same convention as luxfi-dex's pkg/grpc/pb and
// IRIO-ORG-Trading-System's generated packages.

// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: orderbook.proto

package orderbook

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Empty struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Empty) Reset() {
	*x = Empty{}
	mi := &file_orderbook_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Empty) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Empty) ProtoMessage() {}

func (x *Empty) ProtoReflect() protoreflect.Message {
	mi := &file_orderbook_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Empty.ProtoReflect.Descriptor instead.
func (*Empty) Descriptor() ([]byte, []int) {
	return file_orderbook_proto_rawDescGZIP(), []int{0}
}

type SubscribeRequest struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	MarketIds        []uint32               `protobuf:"varint,1,rep,packed,name=market_ids,json=marketIds,proto3" json:"market_ids,omitempty"`
	Depth            uint32                 `protobuf:"varint,2,opt,name=depth,proto3" json:"depth,omitempty"`
	UpdateIntervalMs uint32                 `protobuf:"varint,3,opt,name=update_interval_ms,json=updateIntervalMs,proto3" json:"update_interval_ms,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *SubscribeRequest) Reset() {
	*x = SubscribeRequest{}
	mi := &file_orderbook_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubscribeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubscribeRequest) ProtoMessage() {}

func (x *SubscribeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_orderbook_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubscribeRequest.ProtoReflect.Descriptor instead.
func (*SubscribeRequest) Descriptor() ([]byte, []int) {
	return file_orderbook_proto_rawDescGZIP(), []int{1}
}

func (x *SubscribeRequest) GetMarketIds() []uint32 {
	if x != nil {
		return x.MarketIds
	}
	return nil
}

func (x *SubscribeRequest) GetDepth() uint32 {
	if x != nil {
		return x.Depth
	}
	return 0
}

func (x *SubscribeRequest) GetUpdateIntervalMs() uint32 {
	if x != nil {
		return x.UpdateIntervalMs
	}
	return 0
}

type GetOrderbookRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	MarketId      uint32                 `protobuf:"varint,1,opt,name=market_id,json=marketId,proto3" json:"market_id,omitempty"`
	Depth         uint32                 `protobuf:"varint,2,opt,name=depth,proto3" json:"depth,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetOrderbookRequest) Reset() {
	*x = GetOrderbookRequest{}
	mi := &file_orderbook_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetOrderbookRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetOrderbookRequest) ProtoMessage() {}

func (x *GetOrderbookRequest) ProtoReflect() protoreflect.Message {
	mi := &file_orderbook_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetOrderbookRequest.ProtoReflect.Descriptor instead.
func (*GetOrderbookRequest) Descriptor() ([]byte, []int) {
	return file_orderbook_proto_rawDescGZIP(), []int{2}
}

func (x *GetOrderbookRequest) GetMarketId() uint32 {
	if x != nil {
		return x.MarketId
	}
	return 0
}

func (x *GetOrderbookRequest) GetDepth() uint32 {
	if x != nil {
		return x.Depth
	}
	return 0
}

type Level struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Price         float64                `protobuf:"fixed64,1,opt,name=price,proto3" json:"price,omitempty"`
	Quantity      float64                `protobuf:"fixed64,2,opt,name=quantity,proto3" json:"quantity,omitempty"`
	OrderCount    uint32                 `protobuf:"varint,3,opt,name=order_count,json=orderCount,proto3" json:"order_count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Level) Reset() {
	*x = Level{}
	mi := &file_orderbook_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Level) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Level) ProtoMessage() {}

func (x *Level) ProtoReflect() protoreflect.Message {
	mi := &file_orderbook_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Level.ProtoReflect.Descriptor instead.
func (*Level) Descriptor() ([]byte, []int) {
	return file_orderbook_proto_rawDescGZIP(), []int{3}
}

func (x *Level) GetPrice() float64 {
	if x != nil {
		return x.Price
	}
	return 0
}

func (x *Level) GetQuantity() float64 {
	if x != nil {
		return x.Quantity
	}
	return 0
}

func (x *Level) GetOrderCount() uint32 {
	if x != nil {
		return x.OrderCount
	}
	return 0
}

type OrderbookSnapshot struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	MarketId      uint32                 `protobuf:"varint,1,opt,name=market_id,json=marketId,proto3" json:"market_id,omitempty"`
	Symbol        string                 `protobuf:"bytes,2,opt,name=symbol,proto3" json:"symbol,omitempty"`
	Sequence      uint64                 `protobuf:"varint,3,opt,name=sequence,proto3" json:"sequence,omitempty"`
	Timestamp     int64                  `protobuf:"varint,4,opt,name=timestamp,proto3" json:"timestamp,omitempty"` // unix nanoseconds
	Bids          []*Level               `protobuf:"bytes,5,rep,name=bids,proto3" json:"bids,omitempty"`
	Asks          []*Level               `protobuf:"bytes,6,rep,name=asks,proto3" json:"asks,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *OrderbookSnapshot) Reset() {
	*x = OrderbookSnapshot{}
	mi := &file_orderbook_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *OrderbookSnapshot) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*OrderbookSnapshot) ProtoMessage() {}

func (x *OrderbookSnapshot) ProtoReflect() protoreflect.Message {
	mi := &file_orderbook_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use OrderbookSnapshot.ProtoReflect.Descriptor instead.
func (*OrderbookSnapshot) Descriptor() ([]byte, []int) {
	return file_orderbook_proto_rawDescGZIP(), []int{4}
}

func (x *OrderbookSnapshot) GetMarketId() uint32 {
	if x != nil {
		return x.MarketId
	}
	return 0
}

func (x *OrderbookSnapshot) GetSymbol() string {
	if x != nil {
		return x.Symbol
	}
	return ""
}

func (x *OrderbookSnapshot) GetSequence() uint64 {
	if x != nil {
		return x.Sequence
	}
	return 0
}

func (x *OrderbookSnapshot) GetTimestamp() int64 {
	if x != nil {
		return x.Timestamp
	}
	return 0
}

func (x *OrderbookSnapshot) GetBids() []*Level {
	if x != nil {
		return x.Bids
	}
	return nil
}

func (x *OrderbookSnapshot) GetAsks() []*Level {
	if x != nil {
		return x.Asks
	}
	return nil
}

type Market struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            uint32                 `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	Symbol        string                 `protobuf:"bytes,2,opt,name=symbol,proto3" json:"symbol,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Market) Reset() {
	*x = Market{}
	mi := &file_orderbook_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Market) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Market) ProtoMessage() {}

func (x *Market) ProtoReflect() protoreflect.Message {
	mi := &file_orderbook_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Market.ProtoReflect.Descriptor instead.
func (*Market) Descriptor() ([]byte, []int) {
	return file_orderbook_proto_rawDescGZIP(), []int{5}
}

func (x *Market) GetId() uint32 {
	if x != nil {
		return x.Id
	}
	return 0
}

func (x *Market) GetSymbol() string {
	if x != nil {
		return x.Symbol
	}
	return ""
}

type MarketsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Markets       []*Market              `protobuf:"bytes,1,rep,name=markets,proto3" json:"markets,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MarketsResponse) Reset() {
	*x = MarketsResponse{}
	mi := &file_orderbook_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MarketsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MarketsResponse) ProtoMessage() {}

func (x *MarketsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_orderbook_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MarketsResponse.ProtoReflect.Descriptor instead.
func (*MarketsResponse) Descriptor() ([]byte, []int) {
	return file_orderbook_proto_rawDescGZIP(), []int{6}
}

func (x *MarketsResponse) GetMarkets() []*Market {
	if x != nil {
		return x.Markets
	}
	return nil
}

type StopOrdersRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Types that are valid to be assigned to Filter:
	//
	//	*StopOrdersRequest_MarketId
	//	*StopOrdersRequest_User
	Filter                isStopOrdersRequest_Filter `protobuf_oneof:"filter"`
	Side                  string                     `protobuf:"bytes,3,opt,name=side,proto3" json:"side,omitempty"` // "" = either, "B" or "A"
	MinNotional           float64                    `protobuf:"fixed64,4,opt,name=min_notional,json=minNotional,proto3" json:"min_notional,omitempty"`
	MaxNotional           float64                    `protobuf:"fixed64,5,opt,name=max_notional,json=maxNotional,proto3" json:"max_notional,omitempty"`
	MaxDistanceFromMidBps float64                    `protobuf:"fixed64,6,opt,name=max_distance_from_mid_bps,json=maxDistanceFromMidBps,proto3" json:"max_distance_from_mid_bps,omitempty"`
	RankByRisk            bool                       `protobuf:"varint,7,opt,name=rank_by_risk,json=rankByRisk,proto3" json:"rank_by_risk,omitempty"`
	DistanceWeight        float64                    `protobuf:"fixed64,8,opt,name=distance_weight,json=distanceWeight,proto3" json:"distance_weight,omitempty"` // defaults to 0.6 when zero
	SlippageWeight        float64                    `protobuf:"fixed64,9,opt,name=slippage_weight,json=slippageWeight,proto3" json:"slippage_weight,omitempty"` // defaults to 0.4 when zero
	unknownFields         protoimpl.UnknownFields
	sizeCache             protoimpl.SizeCache
}

func (x *StopOrdersRequest) Reset() {
	*x = StopOrdersRequest{}
	mi := &file_orderbook_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StopOrdersRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StopOrdersRequest) ProtoMessage() {}

func (x *StopOrdersRequest) ProtoReflect() protoreflect.Message {
	mi := &file_orderbook_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StopOrdersRequest.ProtoReflect.Descriptor instead.
func (*StopOrdersRequest) Descriptor() ([]byte, []int) {
	return file_orderbook_proto_rawDescGZIP(), []int{7}
}

func (x *StopOrdersRequest) GetFilter() isStopOrdersRequest_Filter {
	if x != nil {
		return x.Filter
	}
	return nil
}

func (x *StopOrdersRequest) GetMarketId() uint32 {
	if x != nil {
		if x, ok := x.Filter.(*StopOrdersRequest_MarketId); ok {
			return x.MarketId
		}
	}
	return 0
}

func (x *StopOrdersRequest) GetUser() string {
	if x != nil {
		if x, ok := x.Filter.(*StopOrdersRequest_User); ok {
			return x.User
		}
	}
	return ""
}

func (x *StopOrdersRequest) GetSide() string {
	if x != nil {
		return x.Side
	}
	return ""
}

func (x *StopOrdersRequest) GetMinNotional() float64 {
	if x != nil {
		return x.MinNotional
	}
	return 0
}

func (x *StopOrdersRequest) GetMaxNotional() float64 {
	if x != nil {
		return x.MaxNotional
	}
	return 0
}

func (x *StopOrdersRequest) GetMaxDistanceFromMidBps() float64 {
	if x != nil {
		return x.MaxDistanceFromMidBps
	}
	return 0
}

func (x *StopOrdersRequest) GetRankByRisk() bool {
	if x != nil {
		return x.RankByRisk
	}
	return false
}

func (x *StopOrdersRequest) GetDistanceWeight() float64 {
	if x != nil {
		return x.DistanceWeight
	}
	return 0
}

func (x *StopOrdersRequest) GetSlippageWeight() float64 {
	if x != nil {
		return x.SlippageWeight
	}
	return 0
}

type isStopOrdersRequest_Filter interface {
	isStopOrdersRequest_Filter()
}

type StopOrdersRequest_MarketId struct {
	MarketId uint32 `protobuf:"varint,1,opt,name=market_id,json=marketId,proto3,oneof"`
}

type StopOrdersRequest_User struct {
	User string `protobuf:"bytes,2,opt,name=user,proto3,oneof"`
}

func (*StopOrdersRequest_MarketId) isStopOrdersRequest_Filter() {}

func (*StopOrdersRequest_User) isStopOrdersRequest_Filter() {}

type StopOrder struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Id               uint64                 `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	MarketId         uint32                 `protobuf:"varint,2,opt,name=market_id,json=marketId,proto3" json:"market_id,omitempty"`
	Symbol           string                 `protobuf:"bytes,3,opt,name=symbol,proto3" json:"symbol,omitempty"`
	Side             string                 `protobuf:"bytes,4,opt,name=side,proto3" json:"side,omitempty"`
	TriggerPrice     float64                `protobuf:"fixed64,5,opt,name=trigger_price,json=triggerPrice,proto3" json:"trigger_price,omitempty"`
	Size             float64                `protobuf:"fixed64,6,opt,name=size,proto3" json:"size,omitempty"`
	User             string                 `protobuf:"bytes,7,opt,name=user,proto3" json:"user,omitempty"`
	TriggerCondition string                 `protobuf:"bytes,8,opt,name=trigger_condition,json=triggerCondition,proto3" json:"trigger_condition,omitempty"`
	TsMs             uint64                 `protobuf:"varint,9,opt,name=ts_ms,json=tsMs,proto3" json:"ts_ms,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *StopOrder) Reset() {
	*x = StopOrder{}
	mi := &file_orderbook_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StopOrder) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StopOrder) ProtoMessage() {}

func (x *StopOrder) ProtoReflect() protoreflect.Message {
	mi := &file_orderbook_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StopOrder.ProtoReflect.Descriptor instead.
func (*StopOrder) Descriptor() ([]byte, []int) {
	return file_orderbook_proto_rawDescGZIP(), []int{8}
}

func (x *StopOrder) GetId() uint64 {
	if x != nil {
		return x.Id
	}
	return 0
}

func (x *StopOrder) GetMarketId() uint32 {
	if x != nil {
		return x.MarketId
	}
	return 0
}

func (x *StopOrder) GetSymbol() string {
	if x != nil {
		return x.Symbol
	}
	return ""
}

func (x *StopOrder) GetSide() string {
	if x != nil {
		return x.Side
	}
	return ""
}

func (x *StopOrder) GetTriggerPrice() float64 {
	if x != nil {
		return x.TriggerPrice
	}
	return 0
}

func (x *StopOrder) GetSize() float64 {
	if x != nil {
		return x.Size
	}
	return 0
}

func (x *StopOrder) GetUser() string {
	if x != nil {
		return x.User
	}
	return ""
}

func (x *StopOrder) GetTriggerCondition() string {
	if x != nil {
		return x.TriggerCondition
	}
	return ""
}

func (x *StopOrder) GetTsMs() uint64 {
	if x != nil {
		return x.TsMs
	}
	return 0
}

type RankedStopOrder struct {
	state                protoimpl.MessageState `protogen:"open.v1"`
	Order                *StopOrder             `protobuf:"bytes,1,opt,name=order,proto3" json:"order,omitempty"`
	DistanceToTriggerBps float64                `protobuf:"fixed64,2,opt,name=distance_to_trigger_bps,json=distanceToTriggerBps,proto3" json:"distance_to_trigger_bps,omitempty"`
	ExpectedSlippageBps  float64                `protobuf:"fixed64,3,opt,name=expected_slippage_bps,json=expectedSlippageBps,proto3" json:"expected_slippage_bps,omitempty"`
	RiskScore            float64                `protobuf:"fixed64,4,opt,name=risk_score,json=riskScore,proto3" json:"risk_score,omitempty"`
	RiskLevel            string                 `protobuf:"bytes,5,opt,name=risk_level,json=riskLevel,proto3" json:"risk_level,omitempty"` // LOW | MEDIUM | HIGH | UNKNOWN
	unknownFields        protoimpl.UnknownFields
	sizeCache            protoimpl.SizeCache
}

func (x *RankedStopOrder) Reset() {
	*x = RankedStopOrder{}
	mi := &file_orderbook_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RankedStopOrder) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RankedStopOrder) ProtoMessage() {}

func (x *RankedStopOrder) ProtoReflect() protoreflect.Message {
	mi := &file_orderbook_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RankedStopOrder.ProtoReflect.Descriptor instead.
func (*RankedStopOrder) Descriptor() ([]byte, []int) {
	return file_orderbook_proto_rawDescGZIP(), []int{9}
}

func (x *RankedStopOrder) GetOrder() *StopOrder {
	if x != nil {
		return x.Order
	}
	return nil
}

func (x *RankedStopOrder) GetDistanceToTriggerBps() float64 {
	if x != nil {
		return x.DistanceToTriggerBps
	}
	return 0
}

func (x *RankedStopOrder) GetExpectedSlippageBps() float64 {
	if x != nil {
		return x.ExpectedSlippageBps
	}
	return 0
}

func (x *RankedStopOrder) GetRiskScore() float64 {
	if x != nil {
		return x.RiskScore
	}
	return 0
}

func (x *RankedStopOrder) GetRiskLevel() string {
	if x != nil {
		return x.RiskLevel
	}
	return ""
}

type StopOrdersResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Orders        []*RankedStopOrder     `protobuf:"bytes,1,rep,name=orders,proto3" json:"orders,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StopOrdersResponse) Reset() {
	*x = StopOrdersResponse{}
	mi := &file_orderbook_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StopOrdersResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StopOrdersResponse) ProtoMessage() {}

func (x *StopOrdersResponse) ProtoReflect() protoreflect.Message {
	mi := &file_orderbook_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StopOrdersResponse.ProtoReflect.Descriptor instead.
func (*StopOrdersResponse) Descriptor() ([]byte, []int) {
	return file_orderbook_proto_rawDescGZIP(), []int{10}
}

func (x *StopOrdersResponse) GetOrders() []*RankedStopOrder {
	if x != nil {
		return x.Orders
	}
	return nil
}

// Mark-price messages are declared for wire compatibility with the
// out-of-core mark-price collaborator (see spec.md section 1). This
// service never implements them; SubscribeMarkPrices/GetMarkPrice
// always return Unimplemented.
type MarkPriceSubscribeRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	MarketIds     []uint32               `protobuf:"varint,1,rep,packed,name=market_ids,json=marketIds,proto3" json:"market_ids,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MarkPriceSubscribeRequest) Reset() {
	*x = MarkPriceSubscribeRequest{}
	mi := &file_orderbook_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MarkPriceSubscribeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MarkPriceSubscribeRequest) ProtoMessage() {}

func (x *MarkPriceSubscribeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_orderbook_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MarkPriceSubscribeRequest.ProtoReflect.Descriptor instead.
func (*MarkPriceSubscribeRequest) Descriptor() ([]byte, []int) {
	return file_orderbook_proto_rawDescGZIP(), []int{11}
}

func (x *MarkPriceSubscribeRequest) GetMarketIds() []uint32 {
	if x != nil {
		return x.MarketIds
	}
	return nil
}

type MarkPriceUpdate struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	MarketId      uint32                 `protobuf:"varint,1,opt,name=market_id,json=marketId,proto3" json:"market_id,omitempty"`
	MarkPrice     float64                `protobuf:"fixed64,2,opt,name=mark_price,json=markPrice,proto3" json:"mark_price,omitempty"`
	Timestamp     int64                  `protobuf:"varint,3,opt,name=timestamp,proto3" json:"timestamp,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MarkPriceUpdate) Reset() {
	*x = MarkPriceUpdate{}
	mi := &file_orderbook_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MarkPriceUpdate) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MarkPriceUpdate) ProtoMessage() {}

func (x *MarkPriceUpdate) ProtoReflect() protoreflect.Message {
	mi := &file_orderbook_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MarkPriceUpdate.ProtoReflect.Descriptor instead.
func (*MarkPriceUpdate) Descriptor() ([]byte, []int) {
	return file_orderbook_proto_rawDescGZIP(), []int{12}
}

func (x *MarkPriceUpdate) GetMarketId() uint32 {
	if x != nil {
		return x.MarketId
	}
	return 0
}

func (x *MarkPriceUpdate) GetMarkPrice() float64 {
	if x != nil {
		return x.MarkPrice
	}
	return 0
}

func (x *MarkPriceUpdate) GetTimestamp() int64 {
	if x != nil {
		return x.Timestamp
	}
	return 0
}

type GetMarkPriceRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	MarketId      uint32                 `protobuf:"varint,1,opt,name=market_id,json=marketId,proto3" json:"market_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetMarkPriceRequest) Reset() {
	*x = GetMarkPriceRequest{}
	mi := &file_orderbook_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetMarkPriceRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetMarkPriceRequest) ProtoMessage() {}

func (x *GetMarkPriceRequest) ProtoReflect() protoreflect.Message {
	mi := &file_orderbook_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetMarkPriceRequest.ProtoReflect.Descriptor instead.
func (*GetMarkPriceRequest) Descriptor() ([]byte, []int) {
	return file_orderbook_proto_rawDescGZIP(), []int{13}
}

func (x *GetMarkPriceRequest) GetMarketId() uint32 {
	if x != nil {
		return x.MarketId
	}
	return 0
}

type MarkPriceResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	MarketId      uint32                 `protobuf:"varint,1,opt,name=market_id,json=marketId,proto3" json:"market_id,omitempty"`
	MarkPrice     float64                `protobuf:"fixed64,2,opt,name=mark_price,json=markPrice,proto3" json:"mark_price,omitempty"`
	Timestamp     int64                  `protobuf:"varint,3,opt,name=timestamp,proto3" json:"timestamp,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MarkPriceResponse) Reset() {
	*x = MarkPriceResponse{}
	mi := &file_orderbook_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MarkPriceResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MarkPriceResponse) ProtoMessage() {}

func (x *MarkPriceResponse) ProtoReflect() protoreflect.Message {
	mi := &file_orderbook_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MarkPriceResponse.ProtoReflect.Descriptor instead.
func (*MarkPriceResponse) Descriptor() ([]byte, []int) {
	return file_orderbook_proto_rawDescGZIP(), []int{14}
}

func (x *MarkPriceResponse) GetMarketId() uint32 {
	if x != nil {
		return x.MarketId
	}
	return 0
}

func (x *MarkPriceResponse) GetMarkPrice() float64 {
	if x != nil {
		return x.MarkPrice
	}
	return 0
}

func (x *MarkPriceResponse) GetTimestamp() int64 {
	if x != nil {
		return x.Timestamp
	}
	return 0
}

var File_orderbook_proto protoreflect.FileDescriptor

const file_orderbook_proto_rawDesc = "" +
	"\n" +
	"\x0forderbook.proto\x12\torderbook\"\a\n" +
	"\x05Empty\"u\n" +
	"\x10SubscribeRequest\x12\x1d\n" +
	"\n" +
	"market_ids\x18\x01 \x03(\rR\tmarketIds\x12\x14\n" +
	"\x05depth\x18\x02 \x01(\rR\x05depth\x12,\n" +
	"\x12update_interval_ms\x18\x03 \x01(\rR\x10updateIntervalMs\"H\n" +
	"\x13GetOrderbookRequest\x12\x1b\n" +
	"\tmarket_id\x18\x01 \x01(\rR\bmarketId\x12\x14\n" +
	"\x05depth\x18\x02 \x01(\rR\x05depth\"Z\n" +
	"\x05Level\x12\x14\n" +
	"\x05price\x18\x01 \x01(\x01R\x05price\x12\x1a\n" +
	"\bquantity\x18\x02 \x01(\x01R\bquantity\x12\x1f\n" +
	"\vorder_count\x18\x03 \x01(\rR\n" +
	"orderCount\"\xce\x01\n" +
	"\x11OrderbookSnapshot\x12\x1b\n" +
	"\tmarket_id\x18\x01 \x01(\rR\bmarketId\x12\x16\n" +
	"\x06symbol\x18\x02 \x01(\tR\x06symbol\x12\x1a\n" +
	"\bsequence\x18\x03 \x01(\x04R\bsequence\x12\x1c\n" +
	"\ttimestamp\x18\x04 \x01(\x03R\ttimestamp\x12$\n" +
	"\x04bids\x18\x05 \x03(\v2\x10.orderbook.LevelR\x04bids\x12$\n" +
	"\x04asks\x18\x06 \x03(\v2\x10.orderbook.LevelR\x04asks\"0\n" +
	"\x06Market\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\rR\x02id\x12\x16\n" +
	"\x06symbol\x18\x02 \x01(\tR\x06symbol\">\n" +
	"\x0fMarketsResponse\x12+\n" +
	"\amarkets\x18\x01 \x03(\v2\x11.orderbook.MarketR\amarkets\"\xda\x02\n" +
	"\x11StopOrdersRequest\x12\x1d\n" +
	"\tmarket_id\x18\x01 \x01(\rH\x00R\bmarketId\x12\x14\n" +
	"\x04user\x18\x02 \x01(\tH\x00R\x04user\x12\x12\n" +
	"\x04side\x18\x03 \x01(\tR\x04side\x12!\n" +
	"\fmin_notional\x18\x04 \x01(\x01R\vminNotional\x12!\n" +
	"\fmax_notional\x18\x05 \x01(\x01R\vmaxNotional\x128\n" +
	"\x19max_distance_from_mid_bps\x18\x06 \x01(\x01R\x15maxDistanceFromMidBps\x12 \n" +
	"\frank_by_risk\x18\a \x01(\bR\n" +
	"rankByRisk\x12'\n" +
	"\x0fdistance_weight\x18\b \x01(\x01R\x0edistanceWeight\x12'\n" +
	"\x0fslippage_weight\x18\t \x01(\x01R\x0eslippageWeightB\b\n" +
	"\x06filter\"\xf3\x01\n" +
	"\tStopOrder\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\x04R\x02id\x12\x1b\n" +
	"\tmarket_id\x18\x02 \x01(\rR\bmarketId\x12\x16\n" +
	"\x06symbol\x18\x03 \x01(\tR\x06symbol\x12\x12\n" +
	"\x04side\x18\x04 \x01(\tR\x04side\x12#\n" +
	"\rtrigger_price\x18\x05 \x01(\x01R\ftriggerPrice\x12\x12\n" +
	"\x04size\x18\x06 \x01(\x01R\x04size\x12\x12\n" +
	"\x04user\x18\a \x01(\tR\x04user\x12+\n" +
	"\x11trigger_condition\x18\b \x01(\tR\x10triggerCondition\x12\x13\n" +
	"\x05ts_ms\x18\t \x01(\x04R\x04tsMs\"\xe6\x01\n" +
	"\x0fRankedStopOrder\x12*\n" +
	"\x05order\x18\x01 \x01(\v2\x14.orderbook.StopOrderR\x05order\x125\n" +
	"\x17distance_to_trigger_bps\x18\x02 \x01(\x01R\x14distanceToTriggerBps\x122\n" +
	"\x15expected_slippage_bps\x18\x03 \x01(\x01R\x13expectedSlippageBps\x12\x1d\n" +
	"\n" +
	"risk_score\x18\x04 \x01(\x01R\triskScore\x12\x1d\n" +
	"\n" +
	"risk_level\x18\x05 \x01(\tR\triskLevel\"H\n" +
	"\x12StopOrdersResponse\x122\n" +
	"\x06orders\x18\x01 \x03(\v2\x1a.orderbook.RankedStopOrderR\x06orders\":\n" +
	"\x19MarkPriceSubscribeRequest\x12\x1d\n" +
	"\n" +
	"market_ids\x18\x01 \x03(\rR\tmarketIds\"k\n" +
	"\x0fMarkPriceUpdate\x12\x1b\n" +
	"\tmarket_id\x18\x01 \x01(\rR\bmarketId\x12\x1d\n" +
	"\n" +
	"mark_price\x18\x02 \x01(\x01R\tmarkPrice\x12\x1c\n" +
	"\ttimestamp\x18\x03 \x01(\x03R\ttimestamp\"2\n" +
	"\x13GetMarkPriceRequest\x12\x1b\n" +
	"\tmarket_id\x18\x01 \x01(\rR\bmarketId\"m\n" +
	"\x11MarkPriceResponse\x12\x1b\n" +
	"\tmarket_id\x18\x01 \x01(\rR\bmarketId\x12\x1d\n" +
	"\n" +
	"mark_price\x18\x02 \x01(\x01R\tmarkPrice\x12\x1c\n" +
	"\ttimestamp\x18\x03 \x01(\x03R\ttimestamp2\xe6\x03\n" +
	"\x10OrderbookService\x12Q\n" +
	"\x12SubscribeOrderbook\x12\x1b.orderbook.SubscribeRequest\x1a\x1c.orderbook.OrderbookSnapshot0\x01\x12L\n" +
	"\fGetOrderbook\x12\x1e.orderbook.GetOrderbookRequest\x1a\x1c.orderbook.OrderbookSnapshot\x12Y\n" +
	"\x13SubscribeMarkPrices\x12$.orderbook.MarkPriceSubscribeRequest\x1a\x1a.orderbook.MarkPriceUpdate0\x01\x12L\n" +
	"\fGetMarkPrice\x12\x1e.orderbook.GetMarkPriceRequest\x1a\x1c.orderbook.MarkPriceResponse\x12:\n" +
	"\n" +
	"GetMarkets\x12\x10.orderbook.Empty\x1a\x1a.orderbook.MarketsResponse\x12L\n" +
	"\rGetStopOrders\x12\x1c.orderbook.StopOrdersRequest\x1a\x1d.orderbook.StopOrdersResponseB2Z0github.com/lxbook/bookstream/proto/gen/orderbookb\x06proto3"

var (
	file_orderbook_proto_rawDescOnce sync.Once
	file_orderbook_proto_rawDescData []byte
)

func file_orderbook_proto_rawDescGZIP() []byte {
	file_orderbook_proto_rawDescOnce.Do(func() {
		file_orderbook_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_orderbook_proto_rawDesc), len(file_orderbook_proto_rawDesc)))
	})
	return file_orderbook_proto_rawDescData
}

var file_orderbook_proto_msgTypes = make([]protoimpl.MessageInfo, 15)
var file_orderbook_proto_goTypes = []any{
	(*Empty)(nil),                     // 0: orderbook.Empty
	(*SubscribeRequest)(nil),          // 1: orderbook.SubscribeRequest
	(*GetOrderbookRequest)(nil),       // 2: orderbook.GetOrderbookRequest
	(*Level)(nil),                     // 3: orderbook.Level
	(*OrderbookSnapshot)(nil),         // 4: orderbook.OrderbookSnapshot
	(*Market)(nil),                    // 5: orderbook.Market
	(*MarketsResponse)(nil),           // 6: orderbook.MarketsResponse
	(*StopOrdersRequest)(nil),         // 7: orderbook.StopOrdersRequest
	(*StopOrder)(nil),                 // 8: orderbook.StopOrder
	(*RankedStopOrder)(nil),           // 9: orderbook.RankedStopOrder
	(*StopOrdersResponse)(nil),        // 10: orderbook.StopOrdersResponse
	(*MarkPriceSubscribeRequest)(nil), // 11: orderbook.MarkPriceSubscribeRequest
	(*MarkPriceUpdate)(nil),           // 12: orderbook.MarkPriceUpdate
	(*GetMarkPriceRequest)(nil),       // 13: orderbook.GetMarkPriceRequest
	(*MarkPriceResponse)(nil),         // 14: orderbook.MarkPriceResponse
}
var file_orderbook_proto_depIdxs = []int32{
	3,  // 0: orderbook.OrderbookSnapshot.bids:type_name -> orderbook.Level
	3,  // 1: orderbook.OrderbookSnapshot.asks:type_name -> orderbook.Level
	5,  // 2: orderbook.MarketsResponse.markets:type_name -> orderbook.Market
	8,  // 3: orderbook.RankedStopOrder.order:type_name -> orderbook.StopOrder
	9,  // 4: orderbook.StopOrdersResponse.orders:type_name -> orderbook.RankedStopOrder
	1,  // 5: orderbook.OrderbookService.SubscribeOrderbook:input_type -> orderbook.SubscribeRequest
	2,  // 6: orderbook.OrderbookService.GetOrderbook:input_type -> orderbook.GetOrderbookRequest
	11, // 7: orderbook.OrderbookService.SubscribeMarkPrices:input_type -> orderbook.MarkPriceSubscribeRequest
	13, // 8: orderbook.OrderbookService.GetMarkPrice:input_type -> orderbook.GetMarkPriceRequest
	0,  // 9: orderbook.OrderbookService.GetMarkets:input_type -> orderbook.Empty
	7,  // 10: orderbook.OrderbookService.GetStopOrders:input_type -> orderbook.StopOrdersRequest
	4,  // 11: orderbook.OrderbookService.SubscribeOrderbook:output_type -> orderbook.OrderbookSnapshot
	4,  // 12: orderbook.OrderbookService.GetOrderbook:output_type -> orderbook.OrderbookSnapshot
	12, // 13: orderbook.OrderbookService.SubscribeMarkPrices:output_type -> orderbook.MarkPriceUpdate
	14, // 14: orderbook.OrderbookService.GetMarkPrice:output_type -> orderbook.MarkPriceResponse
	6,  // 15: orderbook.OrderbookService.GetMarkets:output_type -> orderbook.MarketsResponse
	10, // 16: orderbook.OrderbookService.GetStopOrders:output_type -> orderbook.StopOrdersResponse
	11, // [11:17] is the sub-list for method output_type
	5,  // [5:11] is the sub-list for method input_type
	5,  // [5:5] is the sub-list for extension type_name
	5,  // [5:5] is the sub-list for extension extendee
	0,  // [0:5] is the sub-list for field type_name
}

func init() { file_orderbook_proto_init() }
func file_orderbook_proto_init() {
	if File_orderbook_proto != nil {
		return
	}
	file_orderbook_proto_msgTypes[7].OneofWrappers = []any{
		(*StopOrdersRequest_MarketId)(nil),
		(*StopOrdersRequest_User)(nil),
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_orderbook_proto_rawDesc), len(file_orderbook_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   15,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_orderbook_proto_goTypes,
		DependencyIndexes: file_orderbook_proto_depIdxs,
		MessageInfos:      file_orderbook_proto_msgTypes,
	}.Build()
	File_orderbook_proto = out.File
	file_orderbook_proto_goTypes = nil
	file_orderbook_proto_depIdxs = nil
}
