package auth

import (
	"context"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// window is one client's fixed-window request count, mirroring the Rust
// original's RateLimit{count, window_start}.
type window struct {
	count       int
	windowStart time.Time
}

// RateLimiter enforces a per-client-id requests-per-minute ceiling.
// Supplemental per SPEC_FULL.md §6: the base spec names auth as
// pluggable without excluding a rate limiter, and
// original_source/src/auth_interceptor.rs's RateLimitInterceptor
// supplies the shape.
type RateLimiter struct {
	mu           sync.Mutex
	windows      map[string]*window
	maxPerMinute int
	now          func() time.Time
}

// NewRateLimiter creates a limiter. maxPerMinute <= 0 disables limiting
// (Allow always succeeds).
func NewRateLimiter(maxPerMinute int) *RateLimiter {
	return &RateLimiter{
		windows:      make(map[string]*window),
		maxPerMinute: maxPerMinute,
		now:          time.Now,
	}
}

// Allow reports whether clientID may proceed, advancing its window.
func (r *RateLimiter) Allow(clientID string) bool {
	if r.maxPerMinute <= 0 {
		return true
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	w, ok := r.windows[clientID]
	if !ok {
		w = &window{windowStart: now}
		r.windows[clientID] = w
	}
	if now.Sub(w.windowStart) >= time.Minute {
		w.count = 0
		w.windowStart = now
	}
	if w.count >= r.maxPerMinute {
		return false
	}
	w.count++
	return true
}

// UnaryInterceptor rejects with ResourceExhausted once a client id
// (resolved by clientID, typically the API key or JWT subject already
// validated by an earlier interceptor) exceeds its window.
func (r *RateLimiter) UnaryInterceptor(clientID func(ctx context.Context) string) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if !r.Allow(clientID(ctx)) {
			return nil, status.Error(codes.ResourceExhausted, "auth: rate limit exceeded")
		}
		return handler(ctx, req)
	}
}

// StreamInterceptor is the streaming analogue of UnaryInterceptor.
func (r *RateLimiter) StreamInterceptor(clientID func(ctx context.Context) string) grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		if !r.Allow(clientID(ss.Context())) {
			return status.Error(codes.ResourceExhausted, "auth: rate limit exceeded")
		}
		return handler(srv, ss)
	}
}
