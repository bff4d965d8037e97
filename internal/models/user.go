package models

import "github.com/google/uuid"

// User represents a workspace member who builds campaigns.
type User struct {
	BaseModel
	FirstName      string        `json:"first_name"`
	LastName       string        `json:"last_name"`
	Email          string        `gorm:"uniqueIndex" json:"email"`
	DisplayName    string        `json:"display_name"`
	PasswordHash   string        `json:"-"`
	Avatar         string        `json:"avatar"`
	OrganizationID *uuid.UUID    `gorm:"type:uuid" json:"organization_id"`
	Organization   *Organization `json:"organization,omitempty"`
	Campaigns      []Campaign    `gorm:"foreignKey:CreatorUserID" json:"campaigns,omitempty"`
}
