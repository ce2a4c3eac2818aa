package entities

import (
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// ShopCodeLength is the length of the human-speakable shop code
const ShopCodeLength = 6

// Shop represents the store identity owned by a shop-owner account.
// Code stays null until the account clears final approval and is
// unique forever after.
type Shop struct {
	ID             uuid.UUID   `json:"id"`
	OwnerAccountID uuid.UUID   `json:"ownerAccountId"`
	Name           string      `json:"name"`
	TaxID          string      `json:"taxId"`
	CRN            string      `json:"crn"`
	ImageURL       null.String `json:"imageUrl,omitempty"`
	Code           null.String `json:"code,omitempty"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
}

// SellerProfile links a seller account to the shop it sells for
type SellerProfile struct {
	AccountID uuid.UUID `json:"accountId"`
	ShopID    uuid.UUID `json:"shopId"`
	CreatedAt time.Time `json:"createdAt"`
}

// TechnicianProfile carries technician-specific extension data
type TechnicianProfile struct {
	AccountID uuid.UUID   `json:"accountId"`
	Specialty null.String `json:"specialty,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
}

// MediaUpload is an attached file streamed through intake to storage
type MediaUpload struct {
	Reader   io.Reader
	Filename string
}
