package models

import (
	"time"

	"github.com/google/uuid"
)

// Account rows are never deleted, only disabled.
type Account struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Name               string     `gorm:"type:varchar(100);not null"`
	Phone              string     `gorm:"type:varchar(20);uniqueIndex;not null"`
	Kind               string     `gorm:"type:varchar(30);not null"`
	Status             string     `gorm:"type:varchar(30);not null"`
	Disabled           bool       `gorm:"not null;default:false"`
	AssignedReviewerID *uuid.UUID `gorm:"type:uuid;index"`
	ZoneID             *uuid.UUID `gorm:"type:uuid;index"`
	CityID             *uuid.UUID `gorm:"type:uuid"`
	DistrictID         *uuid.UUID `gorm:"type:uuid"`
	AddressLine        *string    `gorm:"type:varchar(255)"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
