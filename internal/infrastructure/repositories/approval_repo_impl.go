package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"reward-ops.backend/internal/domain/entities"
	"reward-ops.backend/internal/infrastructure/models"
)

// ApprovalRepository implements the append-only approval audit trail
type ApprovalRepository struct {
	db *gorm.DB
}

// NewApprovalRepository creates a new approval repository
func NewApprovalRepository(db *gorm.DB) *ApprovalRepository {
	return &ApprovalRepository{db: db}
}

// Create appends an audit record
func (r *ApprovalRepository) Create(ctx context.Context, record *entities.ApprovalRecord) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	m := &models.ApprovalRecord{
		ID:         record.ID,
		AccountID:  record.AccountID,
		ActorID:    record.ActorID,
		Action:     string(record.Action),
		FromStatus: string(record.FromStatus),
		ToStatus:   string(record.ToStatus),
		Reason:     record.Reason.Ptr(),
	}
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	record.CreatedAt = m.CreatedAt
	return nil
}

// ListByAccount returns the audit trail for an account, oldest first
func (r *ApprovalRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*entities.ApprovalRecord, error) {
	var rows []models.ApprovalRecord
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	records := make([]*entities.ApprovalRecord, 0, len(rows))
	for i := range rows {
		m := rows[i]
		records = append(records, &entities.ApprovalRecord{
			ID:         m.ID,
			AccountID:  m.AccountID,
			ActorID:    m.ActorID,
			Action:     entities.ApprovalAction(m.Action),
			FromStatus: entities.RegistrationStatus(m.FromStatus),
			ToStatus:   entities.RegistrationStatus(m.ToStatus),
			Reason:     null.StringFromPtr(m.Reason),
			CreatedAt:  m.CreatedAt,
		})
	}
	return records, nil
}
