package repositories

import (
	"context"

	"github.com/google/uuid"
	"reward-ops.backend/internal/domain/entities"
)

// AccountRepository defines account data operations
type AccountRepository interface {
	Create(ctx context.Context, account *entities.Account) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Account, error)
	GetByPhone(ctx context.Context, phone string) (*entities.Account, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to entities.RegistrationStatus) error
	ListByReviewer(ctx context.Context, reviewerID uuid.UUID, status entities.RegistrationStatus, limit, offset int) ([]*entities.Account, int64, error)
	ListByZone(ctx context.Context, zoneID uuid.UUID, status entities.RegistrationStatus, limit, offset int) ([]*entities.Account, int64, error)
}
