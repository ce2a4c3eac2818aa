package models

import (
	"time"

	"github.com/google/uuid"
)

type Shop struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	OwnerAccountID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Name           string    `gorm:"type:varchar(255);not null"`
	TaxID          string    `gorm:"type:varchar(50);uniqueIndex;not null"`
	CRN            string    `gorm:"type:varchar(50);uniqueIndex;not null"`
	ImageURL       *string   `gorm:"type:varchar(500)"`
	Code           *string   `gorm:"type:varchar(10);uniqueIndex"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type SellerProfile struct {
	AccountID uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShopID    uuid.UUID `gorm:"type:uuid;index;not null"`
	CreatedAt time.Time
}

type TechnicianProfile struct {
	AccountID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Specialty *string   `gorm:"type:varchar(100)"`
	CreatedAt time.Time
}
