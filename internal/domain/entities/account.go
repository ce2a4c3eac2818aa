package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// AccountKind represents the category of a program member
type AccountKind string

const (
	AccountKindShopOwner   AccountKind = "SHOP_OWNER"
	AccountKindSeller      AccountKind = "SELLER"
	AccountKindTechnician  AccountKind = "TECHNICIAN"
	AccountKindSalesPerson AccountKind = "SALES_PERSON"
	AccountKindZoneManager AccountKind = "ZONE_MANAGER"
	AccountKindSystemAdmin AccountKind = "SYSTEM_ADMIN"
)

// RegistrationStatus represents where an account sits in the two-tier
// review chain. Approved and Rejected are terminal.
type RegistrationStatus string

const (
	StatusPendingSalesman    RegistrationStatus = "PENDING_SALESMAN"
	StatusPendingZoneManager RegistrationStatus = "PENDING_ZONE_MANAGER"
	StatusApproved           RegistrationStatus = "APPROVED"
	StatusRejected           RegistrationStatus = "REJECTED"
)

// IsTerminal reports whether no further review transition is possible
func (s RegistrationStatus) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// Address is a value owned by the account, not a separate entity
type Address struct {
	CityID     uuid.UUID `json:"cityId"`
	DistrictID uuid.UUID `json:"districtId"`
	Line       string    `json:"line,omitempty"`
}

// Account represents a program member of any kind
type Account struct {
	ID                 uuid.UUID          `json:"id"`
	Name               string             `json:"name"`
	Phone              string             `json:"phone"`
	Kind               AccountKind        `json:"kind"`
	Status             RegistrationStatus `json:"status"`
	Disabled           bool               `json:"disabled"`
	AssignedReviewerID null.String        `json:"assignedReviewerId,omitempty"`
	ZoneID             null.String        `json:"zoneId,omitempty"`
	Address            *Address           `json:"address,omitempty"`
	CreatedAt          time.Time          `json:"createdAt"`
	UpdatedAt          time.Time          `json:"updatedAt"`
}

// RegisterShopOwnerInput represents a shop owner registration request
type RegisterShopOwnerInput struct {
	Name       string `json:"name" binding:"required,min=2,max=100"`
	Phone      string `json:"phone" binding:"required,min=9,max=15"`
	ShopName   string `json:"shopName" binding:"required,min=2,max=255"`
	TaxID      string `json:"taxId" binding:"required"`
	CRN        string `json:"crn" binding:"required"`
	DistrictID string `json:"districtId" binding:"required,uuid"`
	Address    string `json:"address,omitempty"`
	Image      *MediaUpload
}

// RegisterSellerInput represents a seller registration request
type RegisterSellerInput struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Phone    string `json:"phone" binding:"required,min=9,max=15"`
	ShopCode string `json:"shopCode" binding:"required,len=6"`
}

// RegisterTechnicianInput represents a technician registration request
type RegisterTechnicianInput struct {
	Name       string `json:"name" binding:"required,min=2,max=100"`
	Phone      string `json:"phone" binding:"required,min=9,max=15"`
	DistrictID string `json:"districtId" binding:"required,uuid"`
	Specialty  string `json:"specialty,omitempty"`
}

// OtpRequestResponse acknowledges a registration or login request.
// Handle is opaque; the phone is masked before it leaves the usecase.
type OtpRequestResponse struct {
	MaskedPhone string `json:"maskedPhone"`
	Handle      string `json:"handle"`
}

// VerifyOtpInput carries the second leg of the OTP round trip
type VerifyOtpInput struct {
	Handle string `json:"handle" binding:"required"`
	Code   string `json:"code" binding:"required,min=4,max=8"`
}

// LoginRequestInput starts the OTP login flow
type LoginRequestInput struct {
	Phone string `json:"phone" binding:"required,min=9,max=15"`
}

// AuthResponse represents a successful login
type AuthResponse struct {
	AccessToken  string   `json:"accessToken"`
	RefreshToken string   `json:"refreshToken"`
	Account      *Account `json:"account"`
}
