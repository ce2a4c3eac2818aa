package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"reward-ops.backend/internal/domain/entities"
	domainerrors "reward-ops.backend/internal/domain/errors"
	"reward-ops.backend/internal/domain/repositories"
	"reward-ops.backend/internal/infrastructure/otp"
	"reward-ops.backend/internal/infrastructure/storage"
	"reward-ops.backend/pkg/logger"
	"reward-ops.backend/pkg/utils"
)

// RegistrationIntakeUsecase validates a new-user request, stages a
// complete pending-registration payload and kicks off the OTP round
// trip. Nothing is persisted to the primary store until Commit.
type RegistrationIntakeUsecase struct {
	accountRepo repositories.AccountRepository
	shopRepo    repositories.ShopRepository
	geoRepo     repositories.GeographyRepository
	otpRepo     repositories.OtpChallengeRepository
	provider    otp.Provider
	media       storage.MediaStorage
}

// NewRegistrationIntakeUsecase creates a new intake usecase
func NewRegistrationIntakeUsecase(
	accountRepo repositories.AccountRepository,
	shopRepo repositories.ShopRepository,
	geoRepo repositories.GeographyRepository,
	otpRepo repositories.OtpChallengeRepository,
	provider otp.Provider,
	media storage.MediaStorage,
) *RegistrationIntakeUsecase {
	return &RegistrationIntakeUsecase{
		accountRepo: accountRepo,
		shopRepo:    shopRepo,
		geoRepo:     geoRepo,
		otpRepo:     otpRepo,
		provider:    provider,
		media:       media,
	}
}

// RegisterShopOwner stages a shop owner registration
func (u *RegistrationIntakeUsecase) RegisterShopOwner(ctx context.Context, input *entities.RegisterShopOwnerInput) (*entities.OtpRequestResponse, error) {
	if err := u.ensurePhoneAvailable(ctx, input.Phone); err != nil {
		return nil, err
	}

	taken, err := u.shopRepo.TaxIDExists(ctx, input.TaxID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domainerrors.Conflict("tax id already in use")
	}

	taken, err = u.shopRepo.CRNExists(ctx, input.CRN)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domainerrors.Conflict("commercial registration number already in use")
	}

	district, reviewerID, err := u.resolveDistrictReviewer(ctx, input.DistrictID)
	if err != nil {
		return nil, err
	}

	// Media goes up before the OTP is dispatched so a storage failure
	// aborts the flow without a dangling challenge.
	imageURL := ""
	if input.Image != nil {
		imageURL, err = u.media.Upload(ctx, input.Image.Reader, input.Image.Filename, shopMediaFolder)
		if err != nil {
			return nil, err
		}
	}

	payload := &entities.PendingRegistration{
		Kind: entities.AccountKindShopOwner,
		ShopOwner: &entities.ShopOwnerDraft{
			Name:       input.Name,
			Phone:      input.Phone,
			ShopName:   input.ShopName,
			TaxID:      input.TaxID,
			CRN:        input.CRN,
			ImageURL:   imageURL,
			CityID:     district.CityID,
			DistrictID: district.ID,
			Address:    input.Address,
			ReviewerID: reviewerID,
		},
	}

	resp, err := u.stageChallenge(ctx, input.Phone, payload)
	if err != nil {
		// Compensate the upload so failed intakes never orphan media.
		if imageURL != "" {
			if delErr := u.media.Delete(ctx, imageURL); delErr != nil {
				logger.Warn(ctx, "failed to delete orphaned media",
					zap.String("url", imageURL), zap.Error(delErr))
			}
		}
		return nil, err
	}
	return resp, nil
}

// RegisterSeller stages a seller registration. The submitted shop code
// must belong to an approved shop owner.
func (u *RegistrationIntakeUsecase) RegisterSeller(ctx context.Context, input *entities.RegisterSellerInput) (*entities.OtpRequestResponse, error) {
	if err := u.ensurePhoneAvailable(ctx, input.Phone); err != nil {
		return nil, err
	}

	shop, err := u.shopRepo.GetByCode(ctx, input.ShopCode)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("shop code not found")
		}
		return nil, err
	}

	owner, err := u.accountRepo.GetByID(ctx, shop.OwnerAccountID)
	if err != nil {
		return nil, err
	}
	if owner.Status != entities.StatusApproved || owner.Disabled {
		return nil, domainerrors.PreconditionFailed("shop owner is not approved")
	}
	if !owner.AssignedReviewerID.Valid {
		return nil, domainerrors.PreconditionFailed("shop owner has no assigned reviewer")
	}
	reviewerID, err := uuid.Parse(owner.AssignedReviewerID.String)
	if err != nil {
		return nil, err
	}

	payload := &entities.PendingRegistration{
		Kind: entities.AccountKindSeller,
		Seller: &entities.SellerDraft{
			Name:       input.Name,
			Phone:      input.Phone,
			ShopID:     shop.ID,
			ShopCode:   input.ShopCode,
			ReviewerID: reviewerID,
		},
	}
	return u.stageChallenge(ctx, input.Phone, payload)
}

// RegisterTechnician stages a technician registration
func (u *RegistrationIntakeUsecase) RegisterTechnician(ctx context.Context, input *entities.RegisterTechnicianInput) (*entities.OtpRequestResponse, error) {
	if err := u.ensurePhoneAvailable(ctx, input.Phone); err != nil {
		return nil, err
	}

	district, reviewerID, err := u.resolveDistrictReviewer(ctx, input.DistrictID)
	if err != nil {
		return nil, err
	}

	payload := &entities.PendingRegistration{
		Kind: entities.AccountKindTechnician,
		Technician: &entities.TechnicianDraft{
			Name:       input.Name,
			Phone:      input.Phone,
			Specialty:  input.Specialty,
			CityID:     district.CityID,
			DistrictID: district.ID,
			ReviewerID: reviewerID,
		},
	}
	return u.stageChallenge(ctx, input.Phone, payload)
}

func (u *RegistrationIntakeUsecase) ensurePhoneAvailable(ctx context.Context, phone string) error {
	_, err := u.accountRepo.GetByPhone(ctx, phone)
	if err == nil {
		return domainerrors.Conflict("phone number already in use")
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return err
	}
	return nil
}

func (u *RegistrationIntakeUsecase) resolveDistrictReviewer(ctx context.Context, districtID string) (*entities.District, uuid.UUID, error) {
	id, err := uuid.Parse(districtID)
	if err != nil {
		return nil, uuid.Nil, domainerrors.BadRequest("invalid district id")
	}

	district, err := u.geoRepo.GetDistrictByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, uuid.Nil, domainerrors.NotFound("district not found")
		}
		return nil, uuid.Nil, err
	}
	if !district.AssignedSalesID.Valid {
		return nil, uuid.Nil, domainerrors.PreconditionFailed("no reviewer assigned for this district")
	}
	reviewerID, err := uuid.Parse(district.AssignedSalesID.String)
	if err != nil {
		return nil, uuid.Nil, err
	}
	return district, reviewerID, nil
}

// stageChallenge dispatches the OTP and persists the challenge with the
// serialized draft attached.
func (u *RegistrationIntakeUsecase) stageChallenge(ctx context.Context, phone string, payload *entities.PendingRegistration) (*entities.OtpRequestResponse, error) {
	data, err := payload.Encode()
	if err != nil {
		return nil, err
	}

	handle, err := u.provider.Send(ctx, phone)
	if err != nil {
		return nil, mapProviderError(err)
	}

	challenge := &entities.OtpChallenge{
		Handle:  handle,
		Phone:   phone,
		Payload: data,
	}
	if err := u.otpRepo.Create(ctx, challenge); err != nil {
		return nil, err
	}

	logger.Info(ctx, "registration challenge staged",
		zap.String("phone", utils.MaskPhone(phone)),
		zap.String("kind", string(payload.Kind)),
	)

	return &entities.OtpRequestResponse{
		MaskedPhone: utils.MaskPhone(phone),
		Handle:      handle,
	}, nil
}

func mapProviderError(err error) error {
	switch {
	case errors.Is(err, otp.ErrInvalidPhone):
		return domainerrors.BadRequest("phone number format rejected")
	case errors.Is(err, otp.ErrRateLimited),
		errors.Is(err, otp.ErrProviderUnreachable),
		errors.Is(err, otp.ErrUnknownHandle):
		return domainerrors.Upstream(err)
	default:
		return err
	}
}
