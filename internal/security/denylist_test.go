package security

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newTestDenyList(t *testing.T) (*DenyList, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewDenyList(client), mr
}

func TestDenyListRevoke(t *testing.T) {
	dl, _ := newTestDenyList(t)
	ctx := context.Background()

	revoked, err := dl.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	require.False(t, revoked)

	require.NoError(t, dl.Revoke(ctx, "jti-1", time.Hour))

	revoked, err = dl.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	require.True(t, revoked)

	// Other token ids are unaffected.
	revoked, err = dl.IsRevoked(ctx, "jti-2")
	require.NoError(t, err)
	require.False(t, revoked)
}

func TestDenyListEntryExpires(t *testing.T) {
	dl, mr := newTestDenyList(t)
	ctx := context.Background()

	require.NoError(t, dl.Revoke(ctx, "jti-1", time.Minute))
	mr.FastForward(2 * time.Minute)

	revoked, err := dl.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	require.False(t, revoked)
}

func TestDenyListExpiredTokenIsNoop(t *testing.T) {
	dl, mr := newTestDenyList(t)

	require.NoError(t, dl.Revoke(context.Background(), "jti-1", -time.Second))
	require.Empty(t, mr.Keys())
}
