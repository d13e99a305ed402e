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

func ctxWithBearer(token string) context.Context {
	return metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Bearer "+token))
}

func TestChecker_DisabledAlwaysAllows(t *testing.T) {
	c := NewChecker(false, []string{"good-key"}, "s3cr3t")
	_, err := c.Check(context.Background())
	require.NoError(t, err)
}

func TestChecker_NoMechanismConfiguredAllowsEvenWhenRequired(t *testing.T) {
	c := NewChecker(true, nil, "")
	_, err := c.Check(context.Background())
	require.NoError(t, err)
}

func TestChecker_AcceptsValidAPIKey(t *testing.T) {
	c := NewChecker(true, []string{"good-key"}, "s3cr3t")
	id, err := c.Check(ctxWithAPIKey("good-key"))
	require.NoError(t, err)
	assert.Equal(t, "good-key", id)
}

func TestChecker_AcceptsValidJWTWhenAPIKeyAbsent(t *testing.T) {
	c := NewChecker(true, []string{"good-key"}, "s3cr3t")
	token := NewJWTChecker("s3cr3t").Sign("user-1", time.Now().Add(time.Hour))
	id, err := c.Check(ctxWithBearer(token))
	require.NoError(t, err)
	assert.Equal(t, "user-1", id)
}

func TestChecker_RejectsWhenNeitherMechanismAccepts(t *testing.T) {
	c := NewChecker(true, []string{"good-key"}, "s3cr3t")
	_, err := c.Check(context.Background())
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestChecker_OnlyJWTConfiguredRejectsAPIKey(t *testing.T) {
	c := NewChecker(true, nil, "s3cr3t")
	_, err := c.Check(ctxWithAPIKey("anything"))
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	token := NewJWTChecker("s3cr3t").Sign("user-1", time.Now().Add(time.Hour))
	id, err := c.Check(ctxWithBearer(token))
	require.NoError(t, err)
	assert.Equal(t, "user-1", id)
}

func TestChecker_ClientID_FallsBackToAnonymousOrOutsideInterceptor(t *testing.T) {
	c := NewChecker(true, nil, "s3cr3t")
	assert.Equal(t, "anonymous", c.ClientID(context.Background()))
}

func TestChecker_UnaryInterceptor_KeysRateLimiterOnJWTSubject(t *testing.T) {
	c := NewChecker(true, nil, "s3cr3t")
	token := NewJWTChecker("s3cr3t").Sign("user-42", time.Now().Add(time.Hour))

	var seenID string
	handler := func(ctx context.Context, req any) (any, error) {
		seenID = c.ClientID(ctx)
		return nil, nil
	}
	_, err := c.UnaryInterceptor()(ctxWithBearer(token), nil, nil, handler)
	require.NoError(t, err)
	assert.Equal(t, "user-42", seenID)
}
