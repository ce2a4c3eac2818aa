package models

import (
	"time"

	"github.com/google/uuid"
)

// ApprovalRecord is append-only; there is no UpdatedAt on purpose.
type ApprovalRecord struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	AccountID  uuid.UUID `gorm:"type:uuid;index;not null"`
	ActorID    uuid.UUID `gorm:"type:uuid;not null"`
	Action     string    `gorm:"type:varchar(20);not null"`
	FromStatus string    `gorm:"type:varchar(30);not null"`
	ToStatus   string    `gorm:"type:varchar(30);not null"`
	Reason     *string   `gorm:"type:varchar(500)"`
	CreatedAt  time.Time
}
