package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestClaimToken_RoundTrip(t *testing.T) {
	recipientID := uuid.New()
	campaignID := uuid.New()

	token, err := GenerateClaimToken(testSecret, recipientID, campaignID, time.Hour)
	require.NoError(t, err)

	gotRecipient, gotCampaign, err := ParseClaimToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, recipientID, gotRecipient)
	assert.Equal(t, campaignID, gotCampaign)
}

func TestClaimToken_InvalidInputs(t *testing.T) {
	t.Run("garbage token", func(t *testing.T) {
		_, _, err := ParseClaimToken(testSecret, "not-a-token")
		assert.ErrorIs(t, err, ErrInvalidClaimToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := GenerateClaimToken(testSecret, uuid.New(), uuid.New(), time.Hour)
		require.NoError(t, err)

		_, _, err = ParseClaimToken("another-secret", token)
		assert.ErrorIs(t, err, ErrInvalidClaimToken)
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := GenerateClaimToken(testSecret, uuid.New(), uuid.New(), -time.Minute)
		require.NoError(t, err)

		_, _, err = ParseClaimToken(testSecret, token)
		assert.ErrorIs(t, err, ErrInvalidClaimToken)
	})

	t.Run("session token is not a claim token", func(t *testing.T) {
		// A session JWT verifies but carries no recipient/campaign claims.
		token, err := GenerateSessionToken(testSecret, uuid.New(), time.Hour)
		require.NoError(t, err)

		_, _, err = ParseClaimToken(testSecret, token)
		assert.ErrorIs(t, err, ErrInvalidClaimToken)
	})
}
