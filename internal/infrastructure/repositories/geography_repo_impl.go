package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"reward-ops.backend/internal/domain/entities"
	domainerrors "reward-ops.backend/internal/domain/errors"
	"reward-ops.backend/internal/infrastructure/models"
)

// GeographyRepository implements read-only catalog lookups
type GeographyRepository struct {
	db *gorm.DB
}

// NewGeographyRepository creates a new geography repository
func NewGeographyRepository(db *gorm.DB) *GeographyRepository {
	return &GeographyRepository{db: db}
}

// GetDistrictByID gets a district by ID
func (r *GeographyRepository) GetDistrictByID(ctx context.Context, id uuid.UUID) (*entities.District, error) {
	var m models.District
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return &entities.District{
		ID:              m.ID,
		CityID:          m.CityID,
		Name:            m.Name,
		AssignedSalesID: nullStringFromUUIDPtr(m.AssignedSalesID),
	}, nil
}

// GetCityByID gets a city by ID
func (r *GeographyRepository) GetCityByID(ctx context.Context, id uuid.UUID) (*entities.City, error) {
	var m models.City
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return &entities.City{ID: m.ID, ZoneID: m.ZoneID, Name: m.Name}, nil
}
