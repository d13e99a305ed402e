package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func ctxWithAPIKey(key string) context.Context {
	return metadata.NewIncomingContext(context.Background(), metadata.Pairs(apiKeyMetadataKey, key))
}

func TestAPIKeyChecker_AuthDisabledAlwaysAllows(t *testing.T) {
	c := NewAPIKeyChecker(false, nil)
	id, err := c.Check(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "anonymous", id)
}

func TestAPIKeyChecker_MissingHeaderRejected(t *testing.T) {
	c := NewAPIKeyChecker(true, []string{"good-key"})
	_, err := c.Check(context.Background())
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestAPIKeyChecker_ValidKeyAccepted(t *testing.T) {
	c := NewAPIKeyChecker(true, []string{"good-key"})
	id, err := c.Check(ctxWithAPIKey("good-key"))
	require.NoError(t, err)
	assert.Equal(t, "good-key", id)
}

func TestAPIKeyChecker_InvalidKeyRejected(t *testing.T) {
	c := NewAPIKeyChecker(true, []string{"good-key"})
	_, err := c.Check(ctxWithAPIKey("bad-key"))
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestJWTChecker_RoundTrip(t *testing.T) {
	c := NewJWTChecker("s3cr3t")
	token := c.Sign("user-42", time.Now().Add(time.Hour))

	sub, err := c.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", sub)
}

func TestJWTChecker_RejectsExpired(t *testing.T) {
	c := NewJWTChecker("s3cr3t")
	token := c.Sign("user-42", time.Now().Add(-time.Hour))

	_, err := c.Verify(token)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestJWTChecker_RejectsWrongKey(t *testing.T) {
	signed := NewJWTChecker("key-a").Sign("user-42", time.Now().Add(time.Hour))
	_, err := NewJWTChecker("key-b").Verify(signed)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestBearerToken(t *testing.T) {
	tok, ok := BearerToken("Bearer abc.def.ghi")
	assert.True(t, ok)
	assert.Equal(t, "abc.def.ghi", tok)

	_, ok = BearerToken("Basic xyz")
	assert.False(t, ok)
}

func TestRateLimiter_AllowsUpToLimitThenRejects(t *testing.T) {
	r := NewRateLimiter(5)
	for i := 0; i < 5; i++ {
		assert.True(t, r.Allow("client1"))
	}
	assert.False(t, r.Allow("client1"))
	assert.True(t, r.Allow("client2"))
}

func TestRateLimiter_WindowResets(t *testing.T) {
	r := NewRateLimiter(1)
	now := time.Now()
	r.now = func() time.Time { return now }

	assert.True(t, r.Allow("client1"))
	assert.False(t, r.Allow("client1"))

	now = now.Add(2 * time.Minute)
	assert.True(t, r.Allow("client1"))
}

func TestRateLimiter_DisabledWhenZero(t *testing.T) {
	r := NewRateLimiter(0)
	for i := 0; i < 100; i++ {
		assert.True(t, r.Allow("client1"))
	}
}
