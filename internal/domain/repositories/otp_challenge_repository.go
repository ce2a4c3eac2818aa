package repositories

import (
	"context"

	"reward-ops.backend/internal/domain/entities"
)

// OtpChallengeRepository stages OTP challenges between the two legs of
// the verification round trip. FindByHandle returns the challenge in
// whatever state it is in; callers evaluate used/expiry/ceiling
// themselves so each failure stays distinguishable.
type OtpChallengeRepository interface {
	Create(ctx context.Context, challenge *entities.OtpChallenge) error
	FindByHandle(ctx context.Context, handle string) (*entities.OtpChallenge, error)
	MarkUsed(ctx context.Context, handle string) error
	IncrementAttempts(ctx context.Context, handle string) (int, error)
}
