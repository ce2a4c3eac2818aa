package otp

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	redispkg "reward-ops.backend/pkg/redis"
)

func setupDevProvider(t *testing.T) Provider {
	t.Helper()
	mr := miniredis.RunT(t)
	redispkg.SetClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))

	p, err := NewProvider(Config{Driver: "dev"})
	require.NoError(t, err)
	return p
}

func TestDevProvider_UnknownHandle(t *testing.T) {
	p := setupDevProvider(t)

	_, err := p.Verify(context.Background(), "no-such-handle", "123456")
	assert.ErrorIs(t, err, ErrUnknownHandle)
}

func TestDevProvider_SendIssuesDistinctHandles(t *testing.T) {
	p := setupDevProvider(t)
	ctx := context.Background()

	a, err := p.Send(ctx, "0511111111")
	require.NoError(t, err)
	b, err := p.Send(ctx, "0511111111")
	require.NoError(t, err)

	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}

func TestDevProvider_WrongCodeIsFalseNotError(t *testing.T) {
	p := setupDevProvider(t)
	ctx := context.Background()

	handle, err := p.Send(ctx, "0511111111")
	require.NoError(t, err)

	ok, err := p.Verify(ctx, handle, "000000")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNewProvider_UnknownDriver(t *testing.T) {
	_, err := NewProvider(Config{Driver: "carrier-pigeon"})
	assert.Error(t, err)
}

func TestNewProvider_DefaultsToDev(t *testing.T) {
	p, err := NewProvider(Config{})
	require.NoError(t, err)
	assert.NotNil(t, p)
}
