package models

import "github.com/google/uuid"

type Zone struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Name string    `gorm:"type:varchar(100);uniqueIndex;not null"`
}

type City struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	ZoneID uuid.UUID `gorm:"type:uuid;index;not null"`
	Name   string    `gorm:"type:varchar(100);not null"`
}

type District struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	CityID          uuid.UUID  `gorm:"type:uuid;index;not null"`
	Name            string     `gorm:"type:varchar(100);not null"`
	AssignedSalesID *uuid.UUID `gorm:"type:uuid"`
}
