package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"reward-ops.backend/internal/domain/entities"
	domainerrors "reward-ops.backend/internal/domain/errors"
	redispkg "reward-ops.backend/pkg/redis"
)

func newOtpRepo(t *testing.T) (*OtpChallengeRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	redispkg.SetClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))
	return NewOtpChallengeRepository(), mr
}

func TestOtpChallengeRepo_CreateAndFind(t *testing.T) {
	repo, mr := newOtpRepo(t)
	ctx := context.Background()

	challenge := &entities.OtpChallenge{
		Handle:  "handle-1",
		Phone:   "0511111111",
		Payload: []byte(`{"kind":"SHOP_OWNER"}`),
	}
	require.NoError(t, repo.Create(ctx, challenge))

	got, err := repo.FindByHandle(ctx, "handle-1")
	require.NoError(t, err)
	assert.Equal(t, "0511111111", got.Phone)
	assert.Equal(t, challenge.Payload, got.Payload)
	assert.False(t, got.Used)
	assert.Zero(t, got.Attempts)
	assert.WithinDuration(t, time.Now().Add(entities.OtpTTL), got.ExpiresAt, time.Minute)

	// Retention outlives the logical expiry so an expired challenge
	// still reads back as expired, not unknown.
	ttl := mr.TTL("otp:handle-1")
	assert.Greater(t, ttl, entities.OtpTTL)
}

func TestOtpChallengeRepo_UnknownHandle(t *testing.T) {
	repo, _ := newOtpRepo(t)

	_, err := repo.FindByHandle(context.Background(), "missing")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestOtpChallengeRepo_MarkUsedIsSticky(t *testing.T) {
	repo, _ := newOtpRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entities.OtpChallenge{
		Handle: "handle-2",
		Phone:  "0511111112",
	}))

	require.NoError(t, repo.MarkUsed(ctx, "handle-2"))

	got, err := repo.FindByHandle(ctx, "handle-2")
	require.NoError(t, err)
	assert.True(t, got.Used)
}

func TestOtpChallengeRepo_IncrementAttempts(t *testing.T) {
	repo, _ := newOtpRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entities.OtpChallenge{
		Handle: "handle-3",
		Phone:  "0511111113",
	}))

	for want := 1; want <= entities.OtpAttemptCeiling; want++ {
		got, err := repo.IncrementAttempts(ctx, "handle-3")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	challenge, err := repo.FindByHandle(ctx, "handle-3")
	require.NoError(t, err)
	assert.True(t, challenge.AttemptsExceeded())
}

func TestOtpChallengeRepo_ExpiredChallengeStillReadable(t *testing.T) {
	repo, mr := newOtpRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entities.OtpChallenge{
		Handle: "handle-4",
		Phone:  "0511111114",
	}))

	// Jump past the logical expiry but inside the retention window.
	mr.FastForward(entities.OtpTTL + time.Minute)

	got, err := repo.FindByHandle(ctx, "handle-4")
	require.NoError(t, err)
	assert.True(t, got.Expired(time.Now().Add(entities.OtpTTL+time.Minute)))
}

func TestOtpChallengeRepo_RetentionEviction(t *testing.T) {
	repo, mr := newOtpRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entities.OtpChallenge{
		Handle: "handle-5",
		Phone:  "0511111115",
	}))

	mr.FastForward(entities.OtpRetention + time.Minute)

	_, err := repo.FindByHandle(ctx, "handle-5")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
