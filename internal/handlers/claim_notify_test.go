package handlers

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/giftwell/internal/claim"
	"github.com/example/giftwell/internal/models"
)

func TestApplyOrderPlacement(t *testing.T) {
	giftID := uuid.New()
	claimedAt := time.Now()

	rec := models.Recipient{
		FirstName: "Dana",
		LastName:  "Reyes",
		Status:    models.RecipientStatusAwaitingAddressConfirmation,
	}
	addr := claim.Address{
		Line1:   "  221B Baker St ",
		City:    " London ",
		State:   "London",
		Zip:     " NW1 6XE",
		Country: "United Kingdom ",
	}

	applyOrderPlacement(&rec, addr, giftID, claimedAt)

	assert.Equal(t, "221B Baker St", rec.AddressLine1)
	assert.Empty(t, rec.AddressLine2)
	assert.Equal(t, "London", rec.AddressCity)
	assert.Equal(t, "NW1 6XE", rec.AddressZip)
	assert.Equal(t, "United Kingdom", rec.AddressCountry)
	assert.True(t, rec.AddressVerified)
	assert.Equal(t, models.RecipientStatusOrderPlaced, rec.Status)
	require.NotNil(t, rec.AssignedGiftID)
	assert.Equal(t, giftID, *rec.AssignedGiftID)
	require.NotNil(t, rec.ClaimedAt)
	assert.Equal(t, claimedAt, *rec.ClaimedAt)
}

func TestBuildClaimNotification_CarriesSubmittedAddress(t *testing.T) {
	// A first-time claim starts with no address on file; the notification
	// must be built from the record as it stands after placement, never from
	// the pre-submission snapshot.
	rec := models.Recipient{
		FirstName: "Dana",
		LastName:  "Reyes",
	}
	applyOrderPlacement(&rec, claim.Address{
		Line1:   "1 Infinite Loop",
		City:    "Cupertino",
		State:   "CA",
		Zip:     "95014",
		Country: "USA",
	}, uuid.New(), time.Now())

	camp := models.Campaign{Name: "Spring Launch"}
	gift := models.Gift{Name: "Coffee Sampler", Price: 42.5, Currency: "USD"}

	n := buildClaimNotification(rec, camp, gift)

	assert.Equal(t, "Dana Reyes", n.RecipientName)
	assert.Equal(t, "Spring Launch", n.CampaignName)
	assert.Equal(t, "Coffee Sampler", n.GiftName)
	assert.Equal(t, 42.5, n.Price)
	assert.Equal(t, "USD", n.Currency)
	assert.Equal(t, "Cupertino", n.City)
	assert.Equal(t, "USA", n.Country)
}
