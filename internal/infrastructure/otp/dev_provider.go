package otp

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"reward-ops.backend/internal/domain/entities"
	"reward-ops.backend/pkg/crypto"
	"reward-ops.backend/pkg/logger"
	redispkg "reward-ops.backend/pkg/redis"
	"reward-ops.backend/pkg/utils"
)

const devCodeKeyPrefix = "otpcode:"

// devProvider issues codes locally instead of dispatching real
// messages. Only the bcrypt hash of a code is kept; the clear code is
// written to the development log so the flow can be completed by hand.
type devProvider struct{}

func newDevProvider() *devProvider {
	return &devProvider{}
}

// Send generates a local handle and code
func (p *devProvider) Send(ctx context.Context, phone string) (string, error) {
	handle, err := crypto.GenerateVerificationHandle()
	if err != nil {
		return "", err
	}
	code, err := crypto.GenerateNumericCode(6)
	if err != nil {
		return "", err
	}
	hash, err := crypto.HashCode(code)
	if err != nil {
		return "", err
	}
	if err := redispkg.Set(ctx, devCodeKeyPrefix+handle, hash, entities.OtpRetention); err != nil {
		return "", err
	}

	logger.Info(ctx, "dev otp issued",
		zap.String("phone", utils.MaskPhone(phone)),
		zap.String("code", code),
	)
	return handle, nil
}

// Verify compares the submitted code with the stored hash
func (p *devProvider) Verify(ctx context.Context, handle, code string) (bool, error) {
	hash, err := redispkg.Get(ctx, devCodeKeyPrefix+handle)
	if err != nil {
		if errors.Is(err, redispkg.Nil) {
			return false, ErrUnknownHandle
		}
		return false, err
	}
	return crypto.CheckCode(code, hash), nil
}

// SendText logs the message instead of delivering it
func (p *devProvider) SendText(ctx context.Context, phone, message string) error {
	logger.Info(ctx, "dev text message",
		zap.String("phone", utils.MaskPhone(phone)),
		zap.String("message", message),
	)
	return nil
}
