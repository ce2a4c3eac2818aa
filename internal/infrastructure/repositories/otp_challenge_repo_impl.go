package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"reward-ops.backend/internal/domain/entities"
	domainerrors "reward-ops.backend/internal/domain/errors"
	redispkg "reward-ops.backend/pkg/redis"
)

const otpKeyPrefix = "otp:"

// OtpChallengeRepository stages OTP challenges in Redis. The Redis TTL
// is the retention policy, not the logical expiry: a challenge stays
// readable for OtpRetention so lookups can still tell an expired
// challenge from an unknown handle. Logical expiry and the attempt
// ceiling are evaluated lazily by the callers.
type OtpChallengeRepository struct{}

// NewOtpChallengeRepository creates a new OTP challenge repository
func NewOtpChallengeRepository() *OtpChallengeRepository {
	return &OtpChallengeRepository{}
}

// Create stages a new challenge with used=false and attempts=0
func (r *OtpChallengeRepository) Create(ctx context.Context, challenge *entities.OtpChallenge) error {
	now := time.Now()
	if challenge.CreatedAt.IsZero() {
		challenge.CreatedAt = now
	}
	if challenge.ExpiresAt.IsZero() {
		challenge.ExpiresAt = now.Add(entities.OtpTTL)
	}
	challenge.Used = false
	challenge.Attempts = 0

	data, err := json.Marshal(challenge)
	if err != nil {
		return err
	}
	return redispkg.Set(ctx, otpKeyPrefix+challenge.Handle, data, entities.OtpRetention)
}

// FindByHandle returns the challenge in whatever state it is in
func (r *OtpChallengeRepository) FindByHandle(ctx context.Context, handle string) (*entities.OtpChallenge, error) {
	data, err := redispkg.Get(ctx, otpKeyPrefix+handle)
	if err != nil {
		if errors.Is(err, redispkg.Nil) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}

	var challenge entities.OtpChallenge
	if err := json.Unmarshal([]byte(data), &challenge); err != nil {
		return nil, err
	}
	return &challenge, nil
}

// MarkUsed flips the one-way used flag, preserving the retention TTL
func (r *OtpChallengeRepository) MarkUsed(ctx context.Context, handle string) error {
	challenge, err := r.FindByHandle(ctx, handle)
	if err != nil {
		return err
	}
	challenge.Used = true
	return r.save(ctx, challenge)
}

// IncrementAttempts bumps the failed-verification counter and returns
// the new count
func (r *OtpChallengeRepository) IncrementAttempts(ctx context.Context, handle string) (int, error) {
	challenge, err := r.FindByHandle(ctx, handle)
	if err != nil {
		return 0, err
	}
	challenge.Attempts++
	if err := r.save(ctx, challenge); err != nil {
		return 0, err
	}
	return challenge.Attempts, nil
}

func (r *OtpChallengeRepository) save(ctx context.Context, challenge *entities.OtpChallenge) error {
	data, err := json.Marshal(challenge)
	if err != nil {
		return err
	}
	return redispkg.Set(ctx, otpKeyPrefix+challenge.Handle, data, redispkg.KeepTTL)
}
