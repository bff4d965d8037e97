package claim

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/giftwell/internal/models"
)

func makeGifts(n int) []models.Gift {
	gifts := make([]models.Gift, n)
	for i := range gifts {
		gifts[i] = models.Gift{BaseModel: models.BaseModel{ID: uuid.New()}}
	}
	return gifts
}

func completeAddress(rec *models.Recipient) {
	rec.AddressLine1 = "12 Main"
	rec.AddressCity = "NYC"
	rec.AddressState = "NY"
	rec.AddressZip = "10001"
	rec.AddressCountry = "USA"
}

func TestDerive_DonatedAlwaysSubmitted(t *testing.T) {
	rec := &models.Recipient{Status: models.RecipientStatusDonatedToCharity}

	t.Run("no address, no gift", func(t *testing.T) {
		st := Derive(rec, makeGifts(3), nil, false)
		assert.Equal(t, PhaseSubmitted, st.Phase)
		assert.Equal(t, VariantDonation, st.Variant)
	})

	t.Run("even with complete address and assigned gift", func(t *testing.T) {
		giftID := uuid.New()
		rec := &models.Recipient{Status: models.RecipientStatusDonatedToCharity, AssignedGiftID: &giftID}
		completeAddress(rec)

		st := Derive(rec, makeGifts(1), nil, false)
		assert.Equal(t, PhaseSubmitted, st.Phase)
		assert.Equal(t, VariantDonation, st.Variant)
	})
}

func TestDerive_ShipmentSubmitted(t *testing.T) {
	for _, status := range []string{
		models.RecipientStatusOrderPlaced,
		models.RecipientStatusInTransit,
		models.RecipientStatusDelivered,
	} {
		t.Run(status, func(t *testing.T) {
			giftID := uuid.New()
			rec := &models.Recipient{Status: status, AssignedGiftID: &giftID}
			completeAddress(rec)

			st := Derive(rec, makeGifts(3), nil, false)
			assert.Equal(t, PhaseSubmitted, st.Phase)
			assert.Equal(t, VariantShipment, st.Variant)
			require.NotNil(t, st.AssignedGiftID)
			assert.Equal(t, giftID, *st.AssignedGiftID)
		})
	}
}

func TestDerive_SingleGiftSkipsSelection(t *testing.T) {
	gifts := makeGifts(1)

	t.Run("no address yet", func(t *testing.T) {
		rec := &models.Recipient{Status: models.RecipientStatusAwaitingAddressConfirmation}

		st := Derive(rec, gifts, nil, false)
		assert.Equal(t, PhaseAddressEntry, st.Phase)
		require.NotNil(t, st.AssignedGiftID)
		assert.Equal(t, gifts[0].ID, *st.AssignedGiftID)
	})

	t.Run("never selecting", func(t *testing.T) {
		rec := &models.Recipient{Status: models.RecipientStatusInvitationSend}

		st := Derive(rec, gifts, nil, false)
		assert.NotEqual(t, PhaseSelecting, st.Phase)
	})

	t.Run("auto-assignment re-checks the submitted rule", func(t *testing.T) {
		// order_placed with a complete address but no persisted gift id:
		// the auto-assigned gift completes the picture retroactively.
		rec := &models.Recipient{Status: models.RecipientStatusOrderPlaced}
		completeAddress(rec)

		st := Derive(rec, gifts, nil, false)
		assert.Equal(t, PhaseSubmitted, st.Phase)
		assert.Equal(t, VariantShipment, st.Variant)
	})

	t.Run("complete address but not yet placed goes back to address entry", func(t *testing.T) {
		rec := &models.Recipient{Status: models.RecipientStatusAwaitingAddressConfirmation}
		completeAddress(rec)

		st := Derive(rec, gifts, nil, false)
		assert.Equal(t, PhaseAddressEntry, st.Phase)
	})
}

func TestDerive_MultiGiftChooser(t *testing.T) {
	gifts := makeGifts(3)

	t.Run("nothing chosen shows the chooser", func(t *testing.T) {
		rec := &models.Recipient{Status: models.RecipientStatusAwaitingGiftSelection}

		st := Derive(rec, gifts, nil, false)
		assert.Equal(t, PhaseSelecting, st.Phase)
		assert.Equal(t, 3, st.GiftCount)
		assert.Nil(t, st.AssignedGiftID)
	})

	t.Run("pending selection advances to address entry", func(t *testing.T) {
		rec := &models.Recipient{Status: models.RecipientStatusAwaitingGiftSelection}

		st := Derive(rec, gifts, &gifts[1].ID, false)
		assert.Equal(t, PhaseAddressEntry, st.Phase)
		require.NotNil(t, st.AssignedGiftID)
		assert.Equal(t, gifts[1].ID, *st.AssignedGiftID)
	})

	t.Run("re-pick returns to the chooser", func(t *testing.T) {
		rec := &models.Recipient{Status: models.RecipientStatusAwaitingGiftSelection, AssignedGiftID: &gifts[0].ID}

		st := Derive(rec, gifts, nil, true)
		assert.Equal(t, PhaseSelecting, st.Phase)
	})

	t.Run("complete address with pre-submission status re-confirms", func(t *testing.T) {
		rec := &models.Recipient{Status: models.RecipientStatusAwaitingGiftSelection, AssignedGiftID: &gifts[0].ID}
		completeAddress(rec)

		st := Derive(rec, gifts, nil, false)
		assert.Equal(t, PhaseAddressEntry, st.Phase)
	})
}

func TestDerive_PureAndIdempotent(t *testing.T) {
	gifts := makeGifts(2)
	giftID := gifts[0].ID
	rec := &models.Recipient{Status: models.RecipientStatusAwaitingGiftSelection, AssignedGiftID: &giftID}

	before := *rec
	first := Derive(rec, gifts, nil, false)
	second := Derive(rec, gifts, nil, false)

	assert.Equal(t, first, second)
	assert.Equal(t, before, *rec, "derivation must not mutate its inputs")
}

func TestDerive_RoundTripAfterSubmission(t *testing.T) {
	gifts := makeGifts(3)
	giftID := gifts[1].ID

	// Simulates a reload after a successful address submission: the backend
	// record now carries everything the submit wrote.
	rec := &models.Recipient{
		Status:          models.RecipientStatusOrderPlaced,
		AssignedGiftID:  &giftID,
		AddressVerified: true,
	}
	completeAddress(rec)

	st := Derive(rec, gifts, nil, false)
	assert.Equal(t, PhaseSubmitted, st.Phase)
	assert.Equal(t, VariantShipment, st.Variant)
}

func TestAddressComplete(t *testing.T) {
	rec := &models.Recipient{}
	completeAddress(rec)
	assert.True(t, AddressComplete(rec))

	rec.AddressCity = "   "
	assert.False(t, AddressComplete(rec), "whitespace-only counts as blank")

	rec.AddressCity = "NYC"
	rec.AddressLine2 = ""
	assert.True(t, AddressComplete(rec), "line2 is optional")
}
