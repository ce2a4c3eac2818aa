package repositories

import (
	"context"

	"github.com/google/uuid"
	"reward-ops.backend/internal/domain/entities"
)

// ApprovalRepository appends and reads the approval audit trail.
// Records are never updated or deleted.
type ApprovalRepository interface {
	Create(ctx context.Context, record *entities.ApprovalRecord) error
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*entities.ApprovalRecord, error)
}
