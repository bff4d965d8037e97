package models

import (
	"time"

	"github.com/google/uuid"
)

// Recipient statuses. A recipient only ever moves forward through these;
// the claim flow never deletes a record or walks a status back.
const (
	RecipientStatusInvitationSend              = "invitation_send"
	RecipientStatusAwaitingGiftSelection       = "awaiting_gift_selection"
	RecipientStatusAwaitingAddressConfirmation = "awaiting_address_confirmation"
	RecipientStatusOrderPlaced                 = "order_placed"
	RecipientStatusInTransit                   = "in_transit"
	RecipientStatusDelivered                   = "delivered"
	RecipientStatusDonatedToCharity            = "donated_to_charity"
)

// Recipient is one person invited to claim a gift from a campaign.
type Recipient struct {
	BaseModel
	CampaignID     uuid.UUID  `gorm:"type:uuid;index" json:"campaign_id"`
	Campaign       *Campaign  `json:"campaign,omitempty"`
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	Email          string     `gorm:"index" json:"email"`
	Status         string     `gorm:"index" json:"status"`
	AssignedGiftID *uuid.UUID `gorm:"type:uuid" json:"assigned_gift_id"`
	AssignedGift   *Gift      `json:"assigned_gift,omitempty"`

	AddressLine1    string `json:"address_line1"`
	AddressLine2    string `json:"address_line2"`
	AddressCity     string `json:"address_city"`
	AddressState    string `json:"address_state"`
	AddressZip      string `json:"address_zip"`
	AddressCountry  string `json:"address_country"`
	AddressVerified bool   `json:"address_verified"`

	ClaimedAt *time.Time `json:"claimed_at"`
}
