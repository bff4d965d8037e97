package models

import "github.com/google/uuid"

// Touchpoint is one analytics event on a recipient's timeline.
// Type values are part of the wire contract; see internal/touchpoints.
type Touchpoint struct {
	BaseModel
	RecipientID uuid.UUID `gorm:"type:uuid;index" json:"recipient_id"`
	CampaignID  uuid.UUID `gorm:"type:uuid;index" json:"campaign_id"`
	Type        string    `gorm:"index" json:"type"`
	Data        string    `gorm:"type:jsonb;default:null" json:"data"`
	UserAgent   string    `json:"user_agent"`
	Source      string    `json:"source"`
	DeviceType  string    `json:"device_type"`
}
