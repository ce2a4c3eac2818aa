package repositories

import (
	"context"

	"github.com/google/uuid"
	"reward-ops.backend/internal/domain/entities"
)

// ShopRepository defines shop data operations
type ShopRepository interface {
	Create(ctx context.Context, shop *entities.Shop) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Shop, error)
	GetByCode(ctx context.Context, code string) (*entities.Shop, error)
	GetByOwner(ctx context.Context, ownerID uuid.UUID) (*entities.Shop, error)
	TaxIDExists(ctx context.Context, taxID string) (bool, error)
	CRNExists(ctx context.Context, crn string) (bool, error)
	CodeExists(ctx context.Context, code string) (bool, error)
	AssignCode(ctx context.Context, shopID uuid.UUID, code string) error
}

// ProfileRepository creates the kind-specific profile records
type ProfileRepository interface {
	CreateSeller(ctx context.Context, profile *entities.SellerProfile) error
	CreateTechnician(ctx context.Context, profile *entities.TechnicianProfile) error
}
