package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidClaimToken covers every way a claim token can fail to verify:
// bad signature, expiry, or missing recipient/campaign claims.
var ErrInvalidClaimToken = errors.New("invalid claim token")

type claimTokenClaims struct {
	RecipientID string `json:"recipient_id"`
	CampaignID  string `json:"campaign_id"`
	jwt.RegisteredClaims
}

// GenerateClaimToken mints the signed token embedded in a recipient's
// claim link.
func GenerateClaimToken(secret string, recipientID, campaignID uuid.UUID, ttl time.Duration) (string, error) {
	claims := &claimTokenClaims{
		RecipientID: recipientID.String(),
		CampaignID:  campaignID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   recipientID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseClaimToken verifies a claim token and returns the recipient and
// campaign IDs it carries.
func ParseClaimToken(secret, tokenString string) (uuid.UUID, uuid.UUID, error) {
	token, err := jwt.ParseWithClaims(tokenString, &claimTokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return uuid.Nil, uuid.Nil, ErrInvalidClaimToken
	}

	claims, ok := token.Claims.(*claimTokenClaims)
	if !ok || !token.Valid {
		return uuid.Nil, uuid.Nil, ErrInvalidClaimToken
	}

	if claims.RecipientID == "" || claims.CampaignID == "" {
		return uuid.Nil, uuid.Nil, ErrInvalidClaimToken
	}

	recipientID, err := uuid.Parse(claims.RecipientID)
	if err != nil {
		return uuid.Nil, uuid.Nil, ErrInvalidClaimToken
	}

	campaignID, err := uuid.Parse(claims.CampaignID)
	if err != nil {
		return uuid.Nil, uuid.Nil, ErrInvalidClaimToken
	}

	return recipientID, campaignID, nil
}
