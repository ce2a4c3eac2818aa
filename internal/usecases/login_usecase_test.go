package usecases_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"reward-ops.backend/internal/domain/entities"
	domainerrors "reward-ops.backend/internal/domain/errors"
	"reward-ops.backend/internal/usecases"
	"reward-ops.backend/pkg/jwt"
)

type loginFixture struct {
	accountRepo *MockAccountRepository
	otpRepo     *MockOtpChallengeRepository
	provider    *MockOtpProvider
	usecase     *usecases.LoginUsecase
}

func newLoginFixture() *loginFixture {
	f := &loginFixture{
		accountRepo: new(MockAccountRepository),
		otpRepo:     new(MockOtpChallengeRepository),
		provider:    new(MockOtpProvider),
	}
	jwtService := jwt.NewJWTService("test-secret", 15*time.Minute, 24*time.Hour)
	f.usecase = usecases.NewLoginUsecase(f.accountRepo, f.otpRepo, f.provider, jwtService)
	return f
}

func approvedAccount(phone string) *entities.Account {
	return &entities.Account{
		ID:     uuid.New(),
		Name:   "Ahmed",
		Phone:  phone,
		Kind:   entities.AccountKindShopOwner,
		Status: entities.StatusApproved,
	}
}

func TestLoginRequest_UnknownPhone(t *testing.T) {
	f := newLoginFixture()
	ctx := context.Background()

	f.accountRepo.On("GetByPhone", ctx, "0500000000").Return(nil, domainerrors.ErrNotFound)

	_, err := f.usecase.Request(ctx, "0500000000")

	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	f.provider.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestLoginRequest_UnapprovedAccount(t *testing.T) {
	f := newLoginFixture()
	ctx := context.Background()
	account := approvedAccount("0511111111")
	account.Status = entities.StatusPendingZoneManager

	f.accountRepo.On("GetByPhone", ctx, "0511111111").Return(account, nil)

	_, err := f.usecase.Request(ctx, "0511111111")

	assert.ErrorIs(t, err, domainerrors.ErrPreconditionFailed)
}

func TestLoginRequest_DisabledAccount(t *testing.T) {
	f := newLoginFixture()
	ctx := context.Background()
	account := approvedAccount("0511111111")
	account.Disabled = true

	f.accountRepo.On("GetByPhone", ctx, "0511111111").Return(account, nil)

	_, err := f.usecase.Request(ctx, "0511111111")

	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestLoginRequest_StagesPayloadFreeChallenge(t *testing.T) {
	f := newLoginFixture()
	ctx := context.Background()

	f.accountRepo.On("GetByPhone", ctx, "0511111111").Return(approvedAccount("0511111111"), nil)
	f.provider.On("Send", ctx, "0511111111").Return("login-handle", nil)
	f.otpRepo.On("Create", ctx, mock.AnythingOfType("*entities.OtpChallenge")).Return(nil)

	resp, err := f.usecase.Request(ctx, "0511111111")

	require.NoError(t, err)
	assert.Equal(t, "login-handle", resp.Handle)
	assert.Equal(t, "051*****11", resp.MaskedPhone)

	staged := f.otpRepo.Calls[0].Arguments.Get(1).(*entities.OtpChallenge)
	assert.Empty(t, staged.Payload)
}

func TestLoginVerify_MintsTokenPair(t *testing.T) {
	f := newLoginFixture()
	ctx := context.Background()
	account := approvedAccount("0511111111")
	challenge := &entities.OtpChallenge{
		Handle:    "login-handle",
		Phone:     "0511111111",
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(entities.OtpTTL),
	}

	f.otpRepo.On("FindByHandle", ctx, "login-handle").Return(challenge, nil)
	f.provider.On("Verify", ctx, "login-handle", "123456").Return(true, nil)
	f.accountRepo.On("GetByPhone", ctx, "0511111111").Return(account, nil)
	f.otpRepo.On("MarkUsed", ctx, "login-handle").Return(nil)

	resp, err := f.usecase.Verify(ctx, "login-handle", "123456")

	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, account.ID, resp.Account.ID)
	f.otpRepo.AssertCalled(t, "MarkUsed", ctx, "login-handle")
}

func TestLoginVerify_RegistrationChallengeRejected(t *testing.T) {
	f := newLoginFixture()
	ctx := context.Background()
	challenge := &entities.OtpChallenge{
		Handle:    "reg-handle",
		Phone:     "0511111111",
		Payload:   []byte(`{"kind":"SHOP_OWNER"}`),
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(entities.OtpTTL),
	}

	f.otpRepo.On("FindByHandle", ctx, "reg-handle").Return(challenge, nil)

	_, err := f.usecase.Verify(ctx, "reg-handle", "123456")

	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	f.provider.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything, mock.Anything)
}

func TestLoginVerify_WrongCode(t *testing.T) {
	f := newLoginFixture()
	ctx := context.Background()
	challenge := &entities.OtpChallenge{
		Handle:    "login-handle",
		Phone:     "0511111111",
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(entities.OtpTTL),
	}

	f.otpRepo.On("FindByHandle", ctx, "login-handle").Return(challenge, nil)
	f.provider.On("Verify", ctx, "login-handle", "999999").Return(false, nil)
	f.otpRepo.On("IncrementAttempts", ctx, "login-handle").Return(1, nil)

	_, err := f.usecase.Verify(ctx, "login-handle", "999999")

	assert.ErrorIs(t, err, domainerrors.ErrOtpInvalid)
}

func TestLoginVerify_AccountDisabledAfterChallenge(t *testing.T) {
	f := newLoginFixture()
	ctx := context.Background()
	account := approvedAccount("0511111111")
	account.Disabled = true
	challenge := &entities.OtpChallenge{
		Handle:    "login-handle",
		Phone:     "0511111111",
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(entities.OtpTTL),
	}

	f.otpRepo.On("FindByHandle", ctx, "login-handle").Return(challenge, nil)
	f.provider.On("Verify", ctx, "login-handle", "123456").Return(true, nil)
	f.accountRepo.On("GetByPhone", ctx, "0511111111").Return(account, nil)

	_, err := f.usecase.Verify(ctx, "login-handle", "123456")

	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	f.otpRepo.AssertNotCalled(t, "MarkUsed", mock.Anything, mock.Anything)
}
