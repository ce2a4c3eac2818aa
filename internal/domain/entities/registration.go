package entities

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// ShopOwnerDraft carries everything Commit needs to materialize a shop
// owner account and its shop without re-resolving intake-time lookups.
type ShopOwnerDraft struct {
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	ShopName   string    `json:"shopName"`
	TaxID      string    `json:"taxId"`
	CRN        string    `json:"crn"`
	ImageURL   string    `json:"imageUrl,omitempty"`
	CityID     uuid.UUID `json:"cityId"`
	DistrictID uuid.UUID `json:"districtId"`
	Address    string    `json:"address,omitempty"`
	ReviewerID uuid.UUID `json:"reviewerId"`
}

// SellerDraft carries a seller draft with the shop resolved from the
// submitted shop code at intake time.
type SellerDraft struct {
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	ShopID     uuid.UUID `json:"shopId"`
	ShopCode   string    `json:"shopCode"`
	ReviewerID uuid.UUID `json:"reviewerId"`
}

// TechnicianDraft carries a technician draft
type TechnicianDraft struct {
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	Specialty  string    `json:"specialty,omitempty"`
	CityID     uuid.UUID `json:"cityId"`
	DistrictID uuid.UUID `json:"districtId"`
	ReviewerID uuid.UUID `json:"reviewerId"`
}

// PendingRegistration is the serialized draft attached to an OTP
// challenge between Intake and Commit. Kind discriminates which single
// draft variant is set.
type PendingRegistration struct {
	Kind       AccountKind      `json:"kind"`
	ShopOwner  *ShopOwnerDraft  `json:"shopOwner,omitempty"`
	Seller     *SellerDraft     `json:"seller,omitempty"`
	Technician *TechnicianDraft `json:"technician,omitempty"`
}

// Encode serializes the pending registration for staging
func (p *PendingRegistration) Encode() ([]byte, error) {
	switch p.Kind {
	case AccountKindShopOwner:
		if p.ShopOwner == nil {
			return nil, fmt.Errorf("shop owner draft missing")
		}
	case AccountKindSeller:
		if p.Seller == nil {
			return nil, fmt.Errorf("seller draft missing")
		}
	case AccountKindTechnician:
		if p.Technician == nil {
			return nil, fmt.Errorf("technician draft missing")
		}
	default:
		return nil, fmt.Errorf("unsupported registration kind %q", p.Kind)
	}
	return json.Marshal(p)
}

// DecodePendingRegistration deserializes a staged draft and validates
// the kind discriminator against its variant.
func DecodePendingRegistration(data []byte) (*PendingRegistration, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty registration payload")
	}
	var p PendingRegistration
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode registration payload: %w", err)
	}
	switch p.Kind {
	case AccountKindShopOwner:
		if p.ShopOwner == nil {
			return nil, fmt.Errorf("shop owner draft missing from payload")
		}
	case AccountKindSeller:
		if p.Seller == nil {
			return nil, fmt.Errorf("seller draft missing from payload")
		}
	case AccountKindTechnician:
		if p.Technician == nil {
			return nil, fmt.Errorf("technician draft missing from payload")
		}
	default:
		return nil, fmt.Errorf("unsupported registration kind %q", p.Kind)
	}
	return &p, nil
}
