package models

import "github.com/google/uuid"

// Campaign motions drive which message template a claim page shows.
const (
	MotionBoostRegistration = "boost-registration"
	MotionBookMeeting       = "book-meeting"
	MotionDriveAttendance   = "drive-attendance"
	MotionSayThanks         = "say-thanks"
)

type Campaign struct {
	BaseModel
	Name           string        `json:"name"`
	Motion         string        `json:"motion"`
	Status         string        `json:"status"`
	Budget         float64       `json:"budget"`
	Currency       string        `json:"currency"`
	EventID        *uuid.UUID    `gorm:"type:uuid" json:"event_id"`
	Event          *Event        `json:"event,omitempty"`
	OrganizationID *uuid.UUID    `gorm:"type:uuid" json:"organization_id"`
	Organization   *Organization `json:"organization,omitempty"`
	CreatorUserID  *uuid.UUID    `gorm:"type:uuid" json:"creator_user_id"`
	Creator        *User         `json:"creator,omitempty"`

	AvailableGifts []Gift        `gorm:"many2many:campaign_gifts;" json:"available_gifts,omitempty"`
	Catalogs       []GiftCatalog `gorm:"many2many:campaign_catalogs;" json:"catalogs,omitempty"`
	Recipients     []Recipient   `json:"recipients,omitempty"`

	LandingPageConfig string `gorm:"type:jsonb;default:null" json:"landing_page_config"`
	// OutcomeTemplate predates motion-keyed messaging and is kept for
	// campaigns created before the template table existed.
	OutcomeTemplate string `json:"outcome_template"`
}
