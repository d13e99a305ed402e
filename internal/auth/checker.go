package auth

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Checker composes the API-key and bearer-JWT pre-handlers named in spec
// §6, which "MAY be combined": when both an allow-list and a JWT key are
// configured, a caller satisfying either is accepted; when only one is
// configured, only that one is enforced. TLS/mTLS verification is the
// transport's concern and is not modeled here.
type Checker struct {
	requireAuth bool
	apiKeys     *APIKeyChecker // nil when no allow-list is configured
	jwt         *JWTChecker    // nil when no jwt key is configured
}

// NewChecker builds a Checker from the deployment's configured
// mechanisms. When requireAuth is false every call is allowed.
func NewChecker(requireAuth bool, apiKeys []string, jwtKey string) *Checker {
	c := &Checker{requireAuth: requireAuth}
	if len(apiKeys) > 0 {
		c.apiKeys = NewAPIKeyChecker(true, apiKeys)
	}
	if jwtKey != "" {
		c.jwt = NewJWTChecker(jwtKey)
	}
	return c
}

// Check resolves the caller's client id, or returns an Unauthenticated
// error if no configured mechanism accepts the call.
func (c *Checker) Check(ctx context.Context) (string, error) {
	if !c.requireAuth || (c.apiKeys == nil && c.jwt == nil) {
		return anonymousOr(ctx), nil
	}

	var lastErr error
	if c.apiKeys != nil {
		if id, err := c.apiKeys.Check(ctx); err == nil {
			return id, nil
		} else {
			lastErr = err
		}
	}
	if c.jwt != nil {
		if id, err := c.jwt.Check(ctx); err == nil {
			return id, nil
		} else {
			lastErr = err
		}
	}
	if lastErr == nil {
		lastErr = status.Error(codes.Unauthenticated, "auth: no credentials presented")
	}
	return "", lastErr
}

// resolvedClientIDKey is the context key UnaryInterceptor/StreamInterceptor
// stash the Check-resolved identity under, so a later interceptor in the
// chain (the rate limiter) keys on the caller's actual JWT sub or API key
// rather than re-deriving an anonymous fallback.
type resolvedClientIDKey struct{}

// ClientID resolves the caller's identifier for the rate limiter to key
// on: the identity Check already verified for this call if the checker's
// interceptor ran first, otherwise a best-effort anonymousOr fallback
// (auth disabled, or no mechanism configured).
func (c *Checker) ClientID(ctx context.Context) string {
	if id, ok := ctx.Value(resolvedClientIDKey{}).(string); ok && id != "" {
		return id
	}
	return anonymousOr(ctx)
}

// UnaryInterceptor enforces Check before the handler runs and stashes the
// resolved client id for downstream interceptors.
func (c *Checker) UnaryInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		id, err := c.Check(ctx)
		if err != nil {
			return nil, err
		}
		return handler(context.WithValue(ctx, resolvedClientIDKey{}, id), req)
	}
}

// StreamInterceptor is the streaming analogue of UnaryInterceptor.
func (c *Checker) StreamInterceptor() grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		id, err := c.Check(ss.Context())
		if err != nil {
			return err
		}
		wrapped := &clientIDServerStream{
			ServerStream: ss,
			ctx:          context.WithValue(ss.Context(), resolvedClientIDKey{}, id),
		}
		return handler(srv, wrapped)
	}
}

// clientIDServerStream overrides Context() to carry the resolved client
// id through to the rate limiter's StreamInterceptor further down the
// chain.
type clientIDServerStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s *clientIDServerStream) Context() context.Context {
	return s.ctx
}
