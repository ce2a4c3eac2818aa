package entities

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPendingRegistration_RoundTripKeepsVariant(t *testing.T) {
	reviewerID := uuid.New()
	original := &PendingRegistration{
		Kind: AccountKindShopOwner,
		ShopOwner: &ShopOwnerDraft{
			Name:       "Ahmed",
			Phone:      "0511111111",
			ShopName:   "Ahmed Electronics",
			TaxID:      "300000000000001",
			CRN:        "1010101010",
			CityID:     uuid.New(),
			DistrictID: uuid.New(),
			ReviewerID: reviewerID,
		},
	}

	data, err := original.Encode()
	require.NoError(t, err)

	decoded, err := DecodePendingRegistration(data)
	require.NoError(t, err)
	assert.Equal(t, AccountKindShopOwner, decoded.Kind)
	require.NotNil(t, decoded.ShopOwner)
	assert.Equal(t, reviewerID, decoded.ShopOwner.ReviewerID)
	assert.Nil(t, decoded.Seller)
	assert.Nil(t, decoded.Technician)
}

func TestPendingRegistration_EncodeRejectsMismatchedVariant(t *testing.T) {
	p := &PendingRegistration{
		Kind:   AccountKindSeller,
		Seller: nil,
	}
	_, err := p.Encode()
	assert.Error(t, err)

	p = &PendingRegistration{
		Kind:      AccountKindSalesPerson,
		ShopOwner: &ShopOwnerDraft{},
	}
	_, err = p.Encode()
	assert.Error(t, err)
}

func TestDecodePendingRegistration_RejectsBadPayloads(t *testing.T) {
	_, err := DecodePendingRegistration(nil)
	assert.Error(t, err)

	_, err = DecodePendingRegistration([]byte(`not json`))
	assert.Error(t, err)

	// Kind says seller but only a technician draft is present.
	_, err = DecodePendingRegistration([]byte(`{"kind":"SELLER","technician":{"name":"x"}}`))
	assert.Error(t, err)

	_, err = DecodePendingRegistration([]byte(`{"kind":"ZONE_MANAGER"}`))
	assert.Error(t, err)
}

func TestOtpChallenge_ExpiryAndCeiling(t *testing.T) {
	now := time.Now()
	c := &OtpChallenge{
		Handle:    "h",
		ExpiresAt: now.Add(OtpTTL),
	}

	assert.False(t, c.Expired(now))
	assert.False(t, c.Expired(now.Add(OtpTTL)))
	assert.True(t, c.Expired(now.Add(OtpTTL+time.Second)))

	c.Attempts = OtpAttemptCeiling - 1
	assert.False(t, c.AttemptsExceeded())
	c.Attempts = OtpAttemptCeiling
	assert.True(t, c.AttemptsExceeded())
}

func TestRegistrationStatus_IsTerminal(t *testing.T) {
	assert.False(t, StatusPendingSalesman.IsTerminal())
	assert.False(t, StatusPendingZoneManager.IsTerminal())
	assert.True(t, StatusApproved.IsTerminal())
	assert.True(t, StatusRejected.IsTerminal())
}
