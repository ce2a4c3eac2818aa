package repositories

import (
	"context"

	"github.com/google/uuid"
	"reward-ops.backend/internal/domain/entities"
)

// GeographyRepository is a read-only view of the reference catalog.
// The catalog is written only by the seeder.
type GeographyRepository interface {
	GetDistrictByID(ctx context.Context, id uuid.UUID) (*entities.District, error)
	GetCityByID(ctx context.Context, id uuid.UUID) (*entities.City, error)
}
