package touchpoints

// Touchpoint types are part of the wire contract shared with the reporting
// pipeline. Do not rename values without a data migration.
const (
	TypeClaimLinkClicked         = "CLAIM_LINK_CLICKED"
	TypeClaimPageVisited         = "CLAIM_PAGE_VISITED"
	TypeClaimPageLoaded          = "CLAIM_PAGE_LOADED"
	TypeGiftSelected             = "GIFT_SELECTED_ON_CLAIM"
	TypeGiftSelectionSkipped     = "GIFT_SELECTION_SKIPPED"
	TypeGiftDonatedToCharity     = "GIFT_DONATED_TO_CHARITY"
	TypeAddressFormSubmitted     = "ADDRESS_FORM_SUBMITTED"
	TypeAddressFormValidationErr = "ADDRESS_FORM_VALIDATION_ERROR"
	TypeAddressFormEdited        = "ADDRESS_FORM_EDITED"
	TypeMessageViewed            = "MESSAGE_VIEWED_ON_CLAIM"
	TypeMessageButtonClicked     = "MESSAGE_BUTTON_CLICKED_ON_CLAIM"
	TypeMessageLinkClicked       = "MESSAGE_LINK_CLICKED_ON_CLAIM"
	TypeLandingPageCTAClicked    = "LANDING_PAGE_CTA_CLICKED"
	TypeMediaInteracted          = "MEDIA_INTERACTED"
	TypeTrackingLinkClicked      = "TRACKING_LINK_CLICKED"
	TypeNavigationEvent          = "NAVIGATION_EVENT"
	TypeCampaignInfoFetched      = "CAMPAIGN_INFO_FETCHED"
	TypeRecipientInfoFetched     = "RECIPIENT_INFO_FETCHED"
	TypeGiftInfoFetched          = "GIFT_INFO_FETCHED"
)

var allTypes = map[string]struct{}{
	TypeClaimLinkClicked:         {},
	TypeClaimPageVisited:         {},
	TypeClaimPageLoaded:          {},
	TypeGiftSelected:             {},
	TypeGiftSelectionSkipped:     {},
	TypeGiftDonatedToCharity:     {},
	TypeAddressFormSubmitted:     {},
	TypeAddressFormValidationErr: {},
	TypeAddressFormEdited:        {},
	TypeMessageViewed:            {},
	TypeMessageButtonClicked:     {},
	TypeMessageLinkClicked:       {},
	TypeLandingPageCTAClicked:    {},
	TypeMediaInteracted:          {},
	TypeTrackingLinkClicked:      {},
	TypeNavigationEvent:          {},
	TypeCampaignInfoFetched:      {},
	TypeRecipientInfoFetched:     {},
	TypeGiftInfoFetched:          {},
}

// ValidType reports whether t is a known touchpoint type.
func ValidType(t string) bool {
	_, ok := allTypes[t]
	return ok
}
