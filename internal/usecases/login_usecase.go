package usecases

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"reward-ops.backend/internal/domain/entities"
	domainerrors "reward-ops.backend/internal/domain/errors"
	"reward-ops.backend/internal/domain/repositories"
	"reward-ops.backend/internal/infrastructure/otp"
	"reward-ops.backend/pkg/jwt"
	"reward-ops.backend/pkg/logger"
	"reward-ops.backend/pkg/utils"
)

// LoginUsecase handles the OTP-only login flow. Login challenges are
// staged like registration challenges but carry no payload.
type LoginUsecase struct {
	accountRepo repositories.AccountRepository
	otpRepo     repositories.OtpChallengeRepository
	provider    otp.Provider
	jwtService  *jwt.JWTService
}

// NewLoginUsecase creates a new login usecase
func NewLoginUsecase(
	accountRepo repositories.AccountRepository,
	otpRepo repositories.OtpChallengeRepository,
	provider otp.Provider,
	jwtService *jwt.JWTService,
) *LoginUsecase {
	return &LoginUsecase{
		accountRepo: accountRepo,
		otpRepo:     otpRepo,
		provider:    provider,
		jwtService:  jwtService,
	}
}

// Request starts a login by dispatching an OTP to a known, usable
// account
func (u *LoginUsecase) Request(ctx context.Context, phone string) (*entities.OtpRequestResponse, error) {
	account, err := u.accountRepo.GetByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("account not found")
		}
		return nil, err
	}
	if account.Disabled {
		return nil, domainerrors.Unauthorized("account is disabled")
	}
	// Staff accounts are provisioned approved; member accounts must
	// have cleared both review tiers before they can sign in.
	if account.Status != entities.StatusApproved {
		return nil, domainerrors.PreconditionFailed("account has not been approved yet")
	}

	handle, err := u.provider.Send(ctx, phone)
	if err != nil {
		return nil, mapProviderError(err)
	}

	challenge := &entities.OtpChallenge{Handle: handle, Phone: phone}
	if err := u.otpRepo.Create(ctx, challenge); err != nil {
		return nil, err
	}

	logger.Info(ctx, "login challenge staged", zap.String("phone", utils.MaskPhone(phone)))

	return &entities.OtpRequestResponse{
		MaskedPhone: utils.MaskPhone(phone),
		Handle:      handle,
	}, nil
}

// Verify checks the submitted code and mints a token pair
func (u *LoginUsecase) Verify(ctx context.Context, handle, code string) (*entities.AuthResponse, error) {
	challenge, err := u.otpRepo.FindByHandle(ctx, handle)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("verification not found")
		}
		return nil, err
	}
	if challenge.Used {
		return nil, domainerrors.OtpAlreadyUsed()
	}
	if challenge.AttemptsExceeded() {
		return nil, domainerrors.OtpAttemptsExceeded()
	}
	if challenge.Expired(time.Now()) {
		return nil, domainerrors.OtpExpired()
	}
	if len(challenge.Payload) != 0 {
		return nil, domainerrors.BadRequest("not a login challenge")
	}

	valid, err := u.provider.Verify(ctx, handle, code)
	if err != nil {
		return nil, mapProviderError(err)
	}
	if !valid {
		attempts, incErr := u.otpRepo.IncrementAttempts(ctx, handle)
		if incErr != nil {
			logger.Error(ctx, "failed to increment otp attempts",
				zap.String("handle", handle), zap.Error(incErr))
		}
		if attempts >= entities.OtpAttemptCeiling {
			return nil, domainerrors.OtpAttemptsExceeded()
		}
		return nil, domainerrors.OtpInvalid()
	}

	account, err := u.accountRepo.GetByPhone(ctx, challenge.Phone)
	if err != nil {
		return nil, err
	}
	if account.Disabled || account.Status != entities.StatusApproved {
		return nil, domainerrors.Unauthorized("account is not usable")
	}

	if err := u.otpRepo.MarkUsed(ctx, handle); err != nil {
		return nil, err
	}

	pair, err := u.jwtService.GenerateTokenPair(account.ID, account.Phone, string(account.Kind))
	if err != nil {
		return nil, err
	}

	return &entities.AuthResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		Account:      account,
	}, nil
}
