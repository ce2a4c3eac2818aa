package entities

import (
	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Zone groups sales people under one zone manager
type Zone struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// City is static reference data
type City struct {
	ID     uuid.UUID `json:"id"`
	ZoneID uuid.UUID `json:"zoneId"`
	Name   string    `json:"name"`
}

// District belongs to a city and may carry a first-tier reviewer
// assignment. Districts without an assignment cannot accept new
// shop-owner or technician registrations.
type District struct {
	ID              uuid.UUID   `json:"id"`
	CityID          uuid.UUID   `json:"cityId"`
	Name            string      `json:"name"`
	AssignedSalesID null.String `json:"assignedSalesId,omitempty"`
}
