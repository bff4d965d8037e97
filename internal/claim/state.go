// Package claim holds the pure claim-flow core: phase derivation, address
// validation and message resolution. Nothing in here touches the database
// or the network, so the whole package is testable in isolation.
package claim

import (
	"strings"

	"github.com/google/uuid"

	"github.com/example/giftwell/internal/models"
)

// Phase is the screen the recipient should see next.
type Phase string

const (
	PhaseSelecting    Phase = "selecting"
	PhaseAddressEntry Phase = "address_entry"
	PhaseSubmitted    Phase = "submitted"
)

// Variant distinguishes the two terminal outcomes.
type Variant string

const (
	VariantShipment Variant = "shipment"
	VariantDonation Variant = "donation"
)

// State is the projection the claim page renders from. It is rebuilt from
// scratch on every load and after every mutation; it has no persistence.
type State struct {
	Phase          Phase      `json:"phase"`
	Variant        Variant    `json:"variant,omitempty"`
	GiftCount      int        `json:"gift_count"`
	AssignedGiftID *uuid.UUID `json:"assigned_gift_id,omitempty"`
}

// Derive maps a recipient, their available gift set and any pending
// (not yet persisted) selection to the state the page should show.
// Rules are evaluated in order, first match wins:
//
//  1. Donated recipients are always submitted.
//  2. Complete address + assigned gift + a shipped status is submitted.
//  3. A single-gift campaign skips selection: the gift is auto-assigned
//     and the recipient goes straight to address entry, unless the record
//     already satisfies rule 2 once the auto-assignment is counted.
//  4. Otherwise the chooser is shown until a gift is picked (or re-picked),
//     then address entry.
//
// A recipient with a complete address but a status short of order_placed is
// deliberately routed back to address entry for re-confirmation.
func Derive(rec *models.Recipient, gifts []models.Gift, pending *uuid.UUID, repick bool) State {
	st := State{GiftCount: len(gifts)}

	if rec.Status == models.RecipientStatusDonatedToCharity {
		st.Phase = PhaseSubmitted
		st.Variant = VariantDonation
		return st
	}

	if AddressComplete(rec) && rec.AssignedGiftID != nil && shipped(rec.Status) {
		st.Phase = PhaseSubmitted
		st.Variant = VariantShipment
		st.AssignedGiftID = rec.AssignedGiftID
		return st
	}

	if len(gifts) == 1 {
		assigned := rec.AssignedGiftID
		if assigned == nil {
			assigned = &gifts[0].ID
		}
		st.AssignedGiftID = assigned
		if AddressComplete(rec) && rec.Status == models.RecipientStatusOrderPlaced {
			st.Phase = PhaseSubmitted
			st.Variant = VariantShipment
		} else {
			st.Phase = PhaseAddressEntry
		}
		return st
	}

	chosen := pending
	if chosen == nil {
		chosen = rec.AssignedGiftID
	}

	if repick || chosen == nil {
		st.Phase = PhaseSelecting
		return st
	}

	st.Phase = PhaseAddressEntry
	st.AssignedGiftID = chosen
	return st
}

// AddressComplete reports whether every required address field is non-blank.
func AddressComplete(rec *models.Recipient) bool {
	for _, f := range []string{
		rec.AddressLine1,
		rec.AddressCity,
		rec.AddressState,
		rec.AddressZip,
		rec.AddressCountry,
	} {
		if strings.TrimSpace(f) == "" {
			return false
		}
	}
	return true
}

func shipped(status string) bool {
	switch status {
	case models.RecipientStatusOrderPlaced,
		models.RecipientStatusInTransit,
		models.RecipientStatusDelivered:
		return true
	}
	return false
}
