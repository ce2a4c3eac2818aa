package usecases_test

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"reward-ops.backend/internal/domain/entities"
)

// Mock UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Do(ctx context.Context, f func(context.Context) error) error {
	args := m.Called(ctx, f)
	if args.Error(0) != nil {
		return args.Error(0)
	}
	return f(ctx)
}

// Mock AccountRepository
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) Create(ctx context.Context, account *entities.Account) error {
	args := m.Called(ctx, account)
	if args.Error(0) == nil && account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *MockAccountRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Account), args.Error(1)
}

func (m *MockAccountRepository) GetByPhone(ctx context.Context, phone string) (*entities.Account, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Account), args.Error(1)
}

func (m *MockAccountRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to entities.RegistrationStatus) error {
	args := m.Called(ctx, id, from, to)
	return args.Error(0)
}

func (m *MockAccountRepository) ListByReviewer(ctx context.Context, reviewerID uuid.UUID, status entities.RegistrationStatus, limit, offset int) ([]*entities.Account, int64, error) {
	args := m.Called(ctx, reviewerID, status, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Account), args.Get(1).(int64), args.Error(2)
}

func (m *MockAccountRepository) ListByZone(ctx context.Context, zoneID uuid.UUID, status entities.RegistrationStatus, limit, offset int) ([]*entities.Account, int64, error) {
	args := m.Called(ctx, zoneID, status, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Account), args.Get(1).(int64), args.Error(2)
}

// Mock ShopRepository
type MockShopRepository struct {
	mock.Mock
}

func (m *MockShopRepository) Create(ctx context.Context, shop *entities.Shop) error {
	args := m.Called(ctx, shop)
	if args.Error(0) == nil && shop.ID == uuid.Nil {
		shop.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *MockShopRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Shop, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Shop), args.Error(1)
}

func (m *MockShopRepository) GetByCode(ctx context.Context, code string) (*entities.Shop, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Shop), args.Error(1)
}

func (m *MockShopRepository) GetByOwner(ctx context.Context, ownerID uuid.UUID) (*entities.Shop, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Shop), args.Error(1)
}

func (m *MockShopRepository) TaxIDExists(ctx context.Context, taxID string) (bool, error) {
	args := m.Called(ctx, taxID)
	return args.Bool(0), args.Error(1)
}

func (m *MockShopRepository) CRNExists(ctx context.Context, crn string) (bool, error) {
	args := m.Called(ctx, crn)
	return args.Bool(0), args.Error(1)
}

func (m *MockShopRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

func (m *MockShopRepository) AssignCode(ctx context.Context, shopID uuid.UUID, code string) error {
	args := m.Called(ctx, shopID, code)
	return args.Error(0)
}

// Mock ProfileRepository
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) CreateSeller(ctx context.Context, profile *entities.SellerProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) CreateTechnician(ctx context.Context, profile *entities.TechnicianProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

// Mock ApprovalRepository
type MockApprovalRepository struct {
	mock.Mock
}

func (m *MockApprovalRepository) Create(ctx context.Context, record *entities.ApprovalRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockApprovalRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*entities.ApprovalRecord, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.ApprovalRecord), args.Error(1)
}

// Mock GeographyRepository
type MockGeographyRepository struct {
	mock.Mock
}

func (m *MockGeographyRepository) GetDistrictByID(ctx context.Context, id uuid.UUID) (*entities.District, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.District), args.Error(1)
}

func (m *MockGeographyRepository) GetCityByID(ctx context.Context, id uuid.UUID) (*entities.City, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.City), args.Error(1)
}

// Mock OtpChallengeRepository
type MockOtpChallengeRepository struct {
	mock.Mock
}

func (m *MockOtpChallengeRepository) Create(ctx context.Context, challenge *entities.OtpChallenge) error {
	args := m.Called(ctx, challenge)
	return args.Error(0)
}

func (m *MockOtpChallengeRepository) FindByHandle(ctx context.Context, handle string) (*entities.OtpChallenge, error) {
	args := m.Called(ctx, handle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.OtpChallenge), args.Error(1)
}

func (m *MockOtpChallengeRepository) MarkUsed(ctx context.Context, handle string) error {
	args := m.Called(ctx, handle)
	return args.Error(0)
}

func (m *MockOtpChallengeRepository) IncrementAttempts(ctx context.Context, handle string) (int, error) {
	args := m.Called(ctx, handle)
	return args.Int(0), args.Error(1)
}

// Mock otp.Provider
type MockOtpProvider struct {
	mock.Mock
}

func (m *MockOtpProvider) Send(ctx context.Context, phone string) (string, error) {
	args := m.Called(ctx, phone)
	return args.String(0), args.Error(1)
}

func (m *MockOtpProvider) Verify(ctx context.Context, handle, code string) (bool, error) {
	args := m.Called(ctx, handle, code)
	return args.Bool(0), args.Error(1)
}

func (m *MockOtpProvider) SendText(ctx context.Context, phone, message string) error {
	args := m.Called(ctx, phone, message)
	return args.Error(0)
}

// Mock storage.MediaStorage
type MockMediaStorage struct {
	mock.Mock
}

func (m *MockMediaStorage) Upload(ctx context.Context, reader io.Reader, filename, folder string) (string, error) {
	args := m.Called(ctx, reader, filename, folder)
	return args.String(0), args.Error(1)
}

func (m *MockMediaStorage) Delete(ctx context.Context, url string) error {
	args := m.Called(ctx, url)
	return args.Error(0)
}

// Mock WelcomeEnqueuer
type MockWelcomeEnqueuer struct {
	mock.Mock
}

func (m *MockWelcomeEnqueuer) Enqueue(phone, name string) {
	m.Called(phone, name)
}
