package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"reward-ops.backend/internal/domain/entities"
	domainerrors "reward-ops.backend/internal/domain/errors"
	"reward-ops.backend/internal/infrastructure/models"
)

// ShopRepository implements shop data operations
type ShopRepository struct {
	db *gorm.DB
}

// NewShopRepository creates a new shop repository
func NewShopRepository(db *gorm.DB) *ShopRepository {
	return &ShopRepository{db: db}
}

// Create persists a new shop. Unique-constraint violations on tax id or
// CRN surface as ErrConflict.
func (r *ShopRepository) Create(ctx context.Context, shop *entities.Shop) error {
	if shop.ID == uuid.Nil {
		shop.ID = uuid.New()
	}
	m := &models.Shop{
		ID:             shop.ID,
		OwnerAccountID: shop.OwnerAccountID,
		Name:           shop.Name,
		TaxID:          shop.TaxID,
		CRN:            shop.CRN,
		ImageURL:       shop.ImageURL.Ptr(),
		Code:           shop.Code.Ptr(),
	}
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrConflict
		}
		return err
	}
	shop.CreatedAt = m.CreatedAt
	shop.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a shop by ID
func (r *ShopRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Shop, error) {
	var m models.Shop
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toShopEntity(&m), nil
}

// GetByCode gets a shop by its assigned code
func (r *ShopRepository) GetByCode(ctx context.Context, code string) (*entities.Shop, error) {
	var m models.Shop
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("code = ?", code).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toShopEntity(&m), nil
}

// GetByOwner gets the shop belonging to an owner account
func (r *ShopRepository) GetByOwner(ctx context.Context, ownerID uuid.UUID) (*entities.Shop, error) {
	var m models.Shop
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("owner_account_id = ?", ownerID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toShopEntity(&m), nil
}

// TaxIDExists reports whether any shop carries the tax id
func (r *ShopRepository) TaxIDExists(ctx context.Context, taxID string) (bool, error) {
	return r.exists(ctx, "tax_id = ?", taxID)
}

// CRNExists reports whether any shop carries the commercial registration number
func (r *ShopRepository) CRNExists(ctx context.Context, crn string) (bool, error) {
	return r.exists(ctx, "crn = ?", crn)
}

// CodeExists reports whether a shop code has already been assigned
func (r *ShopRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	return r.exists(ctx, "code = ?", code)
}

func (r *ShopRepository) exists(ctx context.Context, cond string, arg string) (bool, error) {
	var count int64
	if err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Shop{}).Where(cond, arg).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// AssignCode sets the shop code exactly once. A second assignment or a
// code collision maps to ErrConflict.
func (r *ShopRepository) AssignCode(ctx context.Context, shopID uuid.UUID, code string) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Shop{}).
		Where("id = ? AND code IS NULL", shopID).
		Update("code", code)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrConflict
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrConflict
	}
	return nil
}

func toShopEntity(m *models.Shop) *entities.Shop {
	return &entities.Shop{
		ID:             m.ID,
		OwnerAccountID: m.OwnerAccountID,
		Name:           m.Name,
		TaxID:          m.TaxID,
		CRN:            m.CRN,
		ImageURL:       null.StringFromPtr(m.ImageURL),
		Code:           null.StringFromPtr(m.Code),
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// ProfileRepository implements kind-specific profile creation
type ProfileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// CreateSeller links a seller account to its shop
func (r *ProfileRepository) CreateSeller(ctx context.Context, profile *entities.SellerProfile) error {
	m := &models.SellerProfile{
		AccountID: profile.AccountID,
		ShopID:    profile.ShopID,
	}
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrConflict
		}
		return err
	}
	profile.CreatedAt = m.CreatedAt
	return nil
}

// CreateTechnician creates a technician profile
func (r *ProfileRepository) CreateTechnician(ctx context.Context, profile *entities.TechnicianProfile) error {
	m := &models.TechnicianProfile{
		AccountID: profile.AccountID,
		Specialty: profile.Specialty.Ptr(),
	}
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrConflict
		}
		return err
	}
	profile.CreatedAt = m.CreatedAt
	return nil
}
