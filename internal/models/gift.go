package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Gift is a shippable item a recipient can claim. Read-only from the
// claim flow's perspective.
type Gift struct {
	BaseModel
	Name           string         `json:"name"`
	DescShort      string         `json:"desc_short"`
	DescFull       string         `json:"desc_full"`
	PrimaryImage   string         `json:"primary_image"`
	SecondaryImage string         `json:"secondary_image"`
	Price          float64        `json:"price"`
	Currency       string         `json:"currency"`
	Tags           pq.StringArray `gorm:"type:text[]" json:"tags"`
	OrganizationID *uuid.UUID     `gorm:"type:uuid" json:"organization_id"`
	Organization   *Organization  `json:"organization,omitempty"`
}

// GiftCatalog is a named, curated subset of gifts an organization can
// attach to a campaign.
type GiftCatalog struct {
	BaseModel
	Name           string        `json:"name"`
	Description    string        `json:"description"`
	OrganizationID *uuid.UUID    `gorm:"type:uuid" json:"organization_id"`
	Organization   *Organization `json:"organization,omitempty"`
	Gifts          []Gift        `gorm:"many2many:gift_catalog_gifts;" json:"gifts,omitempty"`
}
