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

// AccountRepository implements account data operations
type AccountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// Create persists a new account. A unique-constraint violation on the
// phone column surfaces as ErrConflict so commit-time races collapse
// into the same domain error as the pre-check.
func (r *AccountRepository) Create(ctx context.Context, account *entities.Account) error {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	m := &models.Account{
		ID:                 account.ID,
		Name:               account.Name,
		Phone:              account.Phone,
		Kind:               string(account.Kind),
		Status:             string(account.Status),
		Disabled:           account.Disabled,
		AssignedReviewerID: uuidPtrFromNullString(account.AssignedReviewerID),
		ZoneID:             uuidPtrFromNullString(account.ZoneID),
	}
	if account.Address != nil {
		m.CityID = &account.Address.CityID
		m.DistrictID = &account.Address.DistrictID
		if account.Address.Line != "" {
			m.AddressLine = &account.Address.Line
		}
	}

	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrConflict
		}
		return err
	}
	account.CreatedAt = m.CreatedAt
	account.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets an account by ID
func (r *AccountRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Account, error) {
	var m models.Account
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toAccountEntity(&m), nil
}

// GetByPhone gets an account by its globally unique phone number
func (r *AccountRepository) GetByPhone(ctx context.Context, phone string) (*entities.Account, error) {
	var m models.Account
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("phone = ?", phone).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toAccountEntity(&m), nil
}

// UpdateStatus moves an account between registration states. The guard
// on the current status makes the transition a compare-and-swap: a
// concurrent reviewer losing the race gets ErrNotPending instead of
// silently double-applying.
func (r *AccountRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to entities.RegistrationStatus) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Account{}).
		Where("id = ? AND status = ?", id, string(from)).
		Update("status", string(to))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotPending
	}
	return nil
}

// ListByReviewer lists accounts assigned to a first-tier reviewer in a
// given status, newest first.
func (r *AccountRepository) ListByReviewer(ctx context.Context, reviewerID uuid.UUID, status entities.RegistrationStatus, limit, offset int) ([]*entities.Account, int64, error) {
	query := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Account{}).
		Where("assigned_reviewer_id = ? AND status = ?", reviewerID, string(status))

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.Account
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	accounts := make([]*entities.Account, 0, len(rows))
	for i := range rows {
		accounts = append(accounts, toAccountEntity(&rows[i]))
	}
	return accounts, total, nil
}

// ListByZone lists accounts whose assigned reviewer belongs to the
// given zone, in a given status, newest first. Used for the
// zone-manager work queue.
func (r *AccountRepository) ListByZone(ctx context.Context, zoneID uuid.UUID, status entities.RegistrationStatus, limit, offset int) ([]*entities.Account, int64, error) {
	query := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Account{}).
		Joins("JOIN accounts reviewers ON reviewers.id = accounts.assigned_reviewer_id").
		Where("reviewers.zone_id = ? AND accounts.status = ?", zoneID, string(status))

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.Account
	if err := query.Order("accounts.created_at DESC").Limit(limit).Offset(offset).Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	accounts := make([]*entities.Account, 0, len(rows))
	for i := range rows {
		accounts = append(accounts, toAccountEntity(&rows[i]))
	}
	return accounts, total, nil
}

func toAccountEntity(m *models.Account) *entities.Account {
	e := &entities.Account{
		ID:                 m.ID,
		Name:               m.Name,
		Phone:              m.Phone,
		Kind:               entities.AccountKind(m.Kind),
		Status:             entities.RegistrationStatus(m.Status),
		Disabled:           m.Disabled,
		AssignedReviewerID: nullStringFromUUIDPtr(m.AssignedReviewerID),
		ZoneID:             nullStringFromUUIDPtr(m.ZoneID),
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
	if m.CityID != nil && m.DistrictID != nil {
		addr := &entities.Address{CityID: *m.CityID, DistrictID: *m.DistrictID}
		if m.AddressLine != nil {
			addr.Line = *m.AddressLine
		}
		e.Address = addr
	}
	return e
}

func nullStringFromUUIDPtr(id *uuid.UUID) null.String {
	if id == nil {
		return null.String{}
	}
	return null.StringFrom(id.String())
}

func uuidPtrFromNullString(s null.String) *uuid.UUID {
	if !s.Valid {
		return nil
	}
	id, err := uuid.Parse(s.String)
	if err != nil {
		return nil
	}
	return &id
}
