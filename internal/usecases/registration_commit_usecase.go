package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"
	"reward-ops.backend/internal/domain/entities"
	domainerrors "reward-ops.backend/internal/domain/errors"
	"reward-ops.backend/internal/domain/repositories"
	"reward-ops.backend/internal/infrastructure/otp"
	"reward-ops.backend/pkg/logger"
	"reward-ops.backend/pkg/utils"
)

// RegistrationCommitUsecase verifies an OTP challenge and materializes
// the staged account, role and profile as one atomic unit. Every
// uniqueness and prerequisite constraint checked at intake is checked
// again here: minutes have passed and a concurrent registration may
// have consumed the same unique values.
type RegistrationCommitUsecase struct {
	otpRepo     repositories.OtpChallengeRepository
	provider    otp.Provider
	accountRepo repositories.AccountRepository
	shopRepo    repositories.ShopRepository
	profileRepo repositories.ProfileRepository
	uow         repositories.UnitOfWork
}

// NewRegistrationCommitUsecase creates a new commit usecase
func NewRegistrationCommitUsecase(
	otpRepo repositories.OtpChallengeRepository,
	provider otp.Provider,
	accountRepo repositories.AccountRepository,
	shopRepo repositories.ShopRepository,
	profileRepo repositories.ProfileRepository,
	uow repositories.UnitOfWork,
) *RegistrationCommitUsecase {
	return &RegistrationCommitUsecase{
		otpRepo:     otpRepo,
		provider:    provider,
		accountRepo: accountRepo,
		shopRepo:    shopRepo,
		profileRepo: profileRepo,
		uow:         uow,
	}
}

// Verify checks the submitted code and, on success, creates the account.
// The challenge is marked used only after the transaction commits, so a
// crash mid-flight leaves it retryable; the uniqueness re-checks and DB
// constraints keep the retry from materializing a second account.
func (u *RegistrationCommitUsecase) Verify(ctx context.Context, handle, code string) (*entities.Account, error) {
	challenge, err := u.checkChallenge(ctx, handle, code)
	if err != nil {
		return nil, err
	}
	if len(challenge.Payload) == 0 {
		return nil, domainerrors.BadRequest("challenge carries no registration")
	}

	pending, err := entities.DecodePendingRegistration(challenge.Payload)
	if err != nil {
		return nil, err
	}

	var account *entities.Account
	switch pending.Kind {
	case entities.AccountKindShopOwner:
		account, err = u.commitShopOwner(ctx, pending.ShopOwner)
	case entities.AccountKindSeller:
		account, err = u.commitSeller(ctx, pending.Seller)
	case entities.AccountKindTechnician:
		account, err = u.commitTechnician(ctx, pending.Technician)
	default:
		err = domainerrors.BadRequest("unsupported registration kind")
	}
	if err != nil {
		return nil, err
	}

	// Last state-changing step. If this fails the challenge stays
	// retryable and the retry collapses into Conflict on the phone
	// uniqueness re-check.
	if err := u.otpRepo.MarkUsed(ctx, handle); err != nil {
		logger.Error(ctx, "failed to mark challenge used",
			zap.String("handle", handle), zap.Error(err))
	}

	logger.Info(ctx, "registration committed",
		zap.String("accountId", account.ID.String()),
		zap.String("kind", string(account.Kind)),
		zap.String("phone", utils.MaskPhone(account.Phone)),
	)
	return account, nil
}

// checkChallenge walks the failure ladder in an order that keeps every
// kind distinguishable: unknown handle, spent, attempt ceiling, expiry,
// then the provider check itself.
func (u *RegistrationCommitUsecase) checkChallenge(ctx context.Context, handle, code string) (*entities.OtpChallenge, error) {
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
	return challenge, nil
}

func (u *RegistrationCommitUsecase) commitShopOwner(ctx context.Context, draft *entities.ShopOwnerDraft) (*entities.Account, error) {
	if err := u.recheckPhone(ctx, draft.Phone); err != nil {
		return nil, err
	}
	taken, err := u.shopRepo.TaxIDExists(ctx, draft.TaxID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domainerrors.Conflict("tax id already in use")
	}
	taken, err = u.shopRepo.CRNExists(ctx, draft.CRN)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domainerrors.Conflict("commercial registration number already in use")
	}
	if err := u.recheckReviewer(ctx, draft.ReviewerID.String()); err != nil {
		return nil, err
	}

	account := &entities.Account{
		Name:               draft.Name,
		Phone:              draft.Phone,
		Kind:               entities.AccountKindShopOwner,
		Status:             entities.StatusPendingSalesman,
		AssignedReviewerID: null.StringFrom(draft.ReviewerID.String()),
		Address: &entities.Address{
			CityID:     draft.CityID,
			DistrictID: draft.DistrictID,
			Line:       draft.Address,
		},
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.accountRepo.Create(txCtx, account); err != nil {
			return err
		}
		shop := &entities.Shop{
			OwnerAccountID: account.ID,
			Name:           draft.ShopName,
			TaxID:          draft.TaxID,
			CRN:            draft.CRN,
		}
		if draft.ImageURL != "" {
			shop.ImageURL = null.StringFrom(draft.ImageURL)
		}
		return u.shopRepo.Create(txCtx, shop)
	})
	if err != nil {
		return nil, mapCommitError(err)
	}
	return account, nil
}

func (u *RegistrationCommitUsecase) commitSeller(ctx context.Context, draft *entities.SellerDraft) (*entities.Account, error) {
	if err := u.recheckPhone(ctx, draft.Phone); err != nil {
		return nil, err
	}

	shop, err := u.shopRepo.GetByID(ctx, draft.ShopID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.PreconditionFailed("shop no longer exists")
		}
		return nil, err
	}
	owner, err := u.accountRepo.GetByID(ctx, shop.OwnerAccountID)
	if err != nil {
		return nil, err
	}
	if owner.Status != entities.StatusApproved || owner.Disabled {
		return nil, domainerrors.PreconditionFailed("shop owner is no longer approved")
	}
	if err := u.recheckReviewer(ctx, draft.ReviewerID.String()); err != nil {
		return nil, err
	}

	account := &entities.Account{
		Name:               draft.Name,
		Phone:              draft.Phone,
		Kind:               entities.AccountKindSeller,
		Status:             entities.StatusPendingSalesman,
		AssignedReviewerID: null.StringFrom(draft.ReviewerID.String()),
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.accountRepo.Create(txCtx, account); err != nil {
			return err
		}
		return u.profileRepo.CreateSeller(txCtx, &entities.SellerProfile{
			AccountID: account.ID,
			ShopID:    shop.ID,
		})
	})
	if err != nil {
		return nil, mapCommitError(err)
	}
	return account, nil
}

func (u *RegistrationCommitUsecase) commitTechnician(ctx context.Context, draft *entities.TechnicianDraft) (*entities.Account, error) {
	if err := u.recheckPhone(ctx, draft.Phone); err != nil {
		return nil, err
	}
	if err := u.recheckReviewer(ctx, draft.ReviewerID.String()); err != nil {
		return nil, err
	}

	account := &entities.Account{
		Name:               draft.Name,
		Phone:              draft.Phone,
		Kind:               entities.AccountKindTechnician,
		Status:             entities.StatusPendingSalesman,
		AssignedReviewerID: null.StringFrom(draft.ReviewerID.String()),
		Address: &entities.Address{
			CityID:     draft.CityID,
			DistrictID: draft.DistrictID,
		},
	}

	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.accountRepo.Create(txCtx, account); err != nil {
			return err
		}
		profile := &entities.TechnicianProfile{AccountID: account.ID}
		if draft.Specialty != "" {
			profile.Specialty = null.StringFrom(draft.Specialty)
		}
		return u.profileRepo.CreateTechnician(txCtx, profile)
	})
	if err != nil {
		return nil, mapCommitError(err)
	}
	return account, nil
}

func (u *RegistrationCommitUsecase) recheckPhone(ctx context.Context, phone string) error {
	_, err := u.accountRepo.GetByPhone(ctx, phone)
	if err == nil {
		return domainerrors.Conflict("phone number already in use")
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return err
	}
	return nil
}

// recheckReviewer confirms the intake-time reviewer assignment still
// points at an active sales person. Applied uniformly to every kind.
func (u *RegistrationCommitUsecase) recheckReviewer(ctx context.Context, reviewerID string) error {
	id, err := uuid.Parse(reviewerID)
	if err != nil {
		return domainerrors.PreconditionFailed("reviewer assignment is invalid")
	}
	reviewer, err := u.accountRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.PreconditionFailed("assigned reviewer no longer exists")
		}
		return err
	}
	if reviewer.Kind != entities.AccountKindSalesPerson || reviewer.Disabled {
		return domainerrors.PreconditionFailed("assigned reviewer is not an active sales person")
	}
	return nil
}

// mapCommitError folds insert-time constraint violations into the same
// Conflict the pre-checks report, so the loser of a commit race sees a
// typed error rather than a generic failure.
func mapCommitError(err error) error {
	if errors.Is(err, domainerrors.ErrConflict) {
		return domainerrors.Conflict("already in use")
	}
	return err
}
