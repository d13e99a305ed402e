// Package auth implements the pluggable gRPC auth pre-handlers named in
// spec §6: an API-key allow-list, bearer-JWT verification, and a
// supplemental per-client rate limiter, grounded on
// original_source/src/auth_interceptor.rs's ApiKeyInterceptor/
// RateLimitInterceptor/AuthWrapper shapes and re-expressed as
// google.golang.org/grpc unary and stream interceptors.
package auth

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const apiKeyMetadataKey = "x-api-key"

// APIKeyChecker validates x-api-key metadata against an in-memory
// allow-list, mirroring ApiKeyInterceptor::validate_request.
type APIKeyChecker struct {
	requireAuth bool
	allowed     map[string]struct{}
}

// NewAPIKeyChecker builds a checker. When requireAuth is false, Check
// always succeeds (auth is fully disabled for the deployment).
func NewAPIKeyChecker(requireAuth bool, keys []string) *APIKeyChecker {
	allowed := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		allowed[k] = struct{}{}
	}
	return &APIKeyChecker{requireAuth: requireAuth, allowed: allowed}
}

// Check returns the resolved client id (the API key itself) on success,
// or an Unauthenticated error.
func (c *APIKeyChecker) Check(ctx context.Context) (string, error) {
	if !c.requireAuth {
		return anonymousOr(ctx), nil
	}
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", status.Error(codes.Unauthenticated, "auth: missing metadata")
	}
	values := md.Get(apiKeyMetadataKey)
	if len(values) == 0 {
		return "", status.Error(codes.Unauthenticated, "auth: missing x-api-key header")
	}
	key := values[0]
	if _, ok := c.allowed[key]; !ok {
		return "", status.Error(codes.Unauthenticated, "auth: invalid api key")
	}
	return key, nil
}

// ClientID resolves the best-effort client identifier for ctx, for
// callers (like the rate limiter) that need a key independent of whether
// auth is enforced.
func (c *APIKeyChecker) ClientID(ctx context.Context) string {
	return anonymousOr(ctx)
}

// anonymousOr extracts x-api-key if present even when auth isn't
// required, so the rate limiter still has a meaningful client id to key
// on; falls back to "anonymous".
func anonymousOr(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "anonymous"
	}
	if v := md.Get(apiKeyMetadataKey); len(v) > 0 && v[0] != "" {
		return v[0]
	}
	return "anonymous"
}

// UnaryInterceptor returns a grpc.UnaryServerInterceptor enforcing the
// API key check before the handler runs.
func (c *APIKeyChecker) UnaryInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if _, err := c.Check(ctx); err != nil {
			return nil, err
		}
		return handler(ctx, req)
	}
}

// StreamInterceptor returns a grpc.StreamServerInterceptor enforcing the
// API key check before the streaming handler runs.
func (c *APIKeyChecker) StreamInterceptor() grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		if _, err := c.Check(ss.Context()); err != nil {
			return err
		}
		return handler(srv, ss)
	}
}
