package handlers

import (
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/giftwell/internal/claim"
	"github.com/example/giftwell/internal/config"
	"github.com/example/giftwell/internal/models"
	"github.com/example/giftwell/internal/services"
	"github.com/example/giftwell/internal/touchpoints"
	"github.com/example/giftwell/internal/utils"
)

// ClaimHandler serves the public recipient claim flow. Every route takes the
// signed claim token in the path; no session is involved.
type ClaimHandler struct {
	db       *gorm.DB
	cfg      *config.Config
	outbox   *touchpoints.Outbox
	telegram *services.TelegramService
}

// NewClaimHandler constructs ClaimHandler.
func NewClaimHandler(db *gorm.DB, cfg *config.Config, outbox *touchpoints.Outbox, telegram *services.TelegramService) *ClaimHandler {
	return &ClaimHandler{db: db, cfg: cfg, outbox: outbox, telegram: telegram}
}

type claimContext struct {
	recipient models.Recipient
	campaign  models.Campaign
	gifts     []models.Gift
}

// loadClaim verifies the token and hydrates the recipient, campaign and the
// resolved gift set. A recipient that does not exist (or belongs to another
// campaign) is indistinguishable from a bad token on purpose.
func (h *ClaimHandler) loadClaim(c *fiber.Ctx) (*claimContext, error) {
	raw := c.Params("token")
	if decoded, err := url.QueryUnescape(raw); err == nil {
		raw = decoded
	}

	recipientID, campaignID, err := utils.ParseClaimToken(h.cfg.ClaimTokenSecret, raw)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "invalid claim token")
	}

	var ctx claimContext
	if err := h.db.Preload("AssignedGift").
		First(&ctx.recipient, "id = ? AND campaign_id = ?", recipientID, campaignID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "invalid claim token")
		}
		return nil, err
	}

	if err := h.db.Preload("AvailableGifts").Preload("Catalogs.Gifts").
		First(&ctx.campaign, "id = ?", campaignID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "invalid claim token")
		}
		return nil, err
	}

	ctx.gifts = resolveGiftSet(&ctx.campaign, &ctx.recipient)
	return &ctx, nil
}

// resolveGiftSet picks the gifts offered to a recipient, in order of
// preference: catalog-curated gifts, then the campaign's flat list, then the
// recipient's already-assigned gift (the personalize-one-gift mode).
func resolveGiftSet(camp *models.Campaign, rec *models.Recipient) []models.Gift {
	var gifts []models.Gift
	seen := make(map[uuid.UUID]struct{})

	for _, catalog := range camp.Catalogs {
		for _, gift := range catalog.Gifts {
			if _, ok := seen[gift.ID]; ok {
				continue
			}
			seen[gift.ID] = struct{}{}
			gifts = append(gifts, gift)
		}
	}

	if len(gifts) == 0 {
		gifts = camp.AvailableGifts
	}

	if len(gifts) == 0 && rec.AssignedGift != nil {
		gifts = []models.Gift{*rec.AssignedGift}
	}

	return gifts
}

// Bootstrap turns a claim token into everything the claim page needs: the
// derived state, the resolved message, and the display context.
func (h *ClaimHandler) Bootstrap(c *fiber.Ctx) error {
	ctx, err := h.loadClaim(c)
	if err != nil {
		return err
	}

	if len(ctx.gifts) == 0 {
		return fiber.NewError(fiber.StatusNotFound, "no gifts available for this campaign")
	}

	rec := &ctx.recipient

	// First-visit status bump. Best-effort: a failure here is logged and the
	// page still renders. The status guard in the WHERE clause keeps remounts
	// from double-transitioning.
	if rec.Status == models.RecipientStatusInvitationSend {
		next := models.RecipientStatusAwaitingGiftSelection
		if len(ctx.gifts) == 1 {
			next = models.RecipientStatusAwaitingAddressConfirmation
		}
		if err := h.db.Model(&models.Recipient{}).
			Where("id = ? AND status = ?", rec.ID, models.RecipientStatusInvitationSend).
			Update("status", next).Error; err != nil {
			log.Printf("[Claim] status bump failed for recipient %s: %v", rec.ID, err)
		} else {
			rec.Status = next
		}
	}

	for _, tpType := range []string{
		touchpoints.TypeClaimPageLoaded,
		touchpoints.TypeCampaignInfoFetched,
		touchpoints.TypeRecipientInfoFetched,
		touchpoints.TypeGiftInfoFetched,
		touchpoints.TypeClaimPageVisited,
	} {
		h.emit(c, rec, tpType, nil)
	}

	state := claim.Derive(rec, ctx.gifts, nil, c.QueryBool("repick"))
	message := claim.ResolveMessage(ctx.campaign.Motion, len(ctx.gifts) == 1, rec.FirstName)

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"state":        state,
			"message":      message,
			"recipient":    recipientProjection(rec),
			"campaign":     campaignProjection(&ctx.campaign),
			"gifts":        ctx.gifts,
			"event":        h.displayEvent(ctx.campaign.EventID),
			"organization": h.displayOrganization(ctx.campaign.OrganizationID),
			"sender":       h.displaySender(ctx.campaign.CreatorUserID),
		},
	})
}

type selectGiftRequest struct {
	GiftID string `json:"gift_id"`
}

// SelectGift records a gift choice. Selection is a page-local transition:
// nothing is written to the recipient until the address is submitted, so
// re-selecting simply overwrites the pending choice.
func (h *ClaimHandler) SelectGift(c *fiber.Ctx) error {
	ctx, err := h.loadClaim(c)
	if err != nil {
		return err
	}

	if len(ctx.gifts) == 0 {
		return fiber.NewError(fiber.StatusNotFound, "no gifts available for this campaign")
	}

	var req selectGiftRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	giftID, err := uuid.Parse(req.GiftID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid gift id")
	}

	h.emit(c, &ctx.recipient, touchpoints.TypeGiftSelected, map[string]any{"gift_id": giftID.String()})

	state := claim.Derive(&ctx.recipient, ctx.gifts, &giftID, false)
	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{"state": state}})
}

type submitAddressRequest struct {
	GiftID  string `json:"gift_id"`
	Line1   string `json:"line1"`
	Line2   string `json:"line2"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

// SubmitAddress validates the shipping address and, in one write, assigns
// the gift, stores the address and places the order. There is no automatic
// retry; a failed write leaves the record untouched for the user to retry.
func (h *ClaimHandler) SubmitAddress(c *fiber.Ctx) error {
	ctx, err := h.loadClaim(c)
	if err != nil {
		return err
	}
	rec := &ctx.recipient

	var req submitAddressRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	addr := claim.Address{
		Line1:   req.Line1,
		Line2:   req.Line2,
		City:    req.City,
		State:   req.State,
		Zip:     req.Zip,
		Country: req.Country,
	}

	if violations := claim.ValidateAddress(addr); len(violations) > 0 {
		h.emit(c, rec, touchpoints.TypeAddressFormValidationErr, map[string]any{"fields": violations})
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"success": false,
			"errors":  violations,
		})
	}

	giftID := rec.AssignedGiftID
	if req.GiftID != "" {
		if id, err := uuid.Parse(req.GiftID); err == nil {
			giftID = &id
		}
	}
	if giftID == nil && len(ctx.gifts) == 1 {
		giftID = &ctx.gifts[0].ID
	}
	if giftID == nil {
		return fiber.NewError(fiber.StatusBadRequest, "gift_id is required")
	}

	// Mirror the placement onto the in-memory record first, then persist the
	// same values. The notification goroutine below receives a copy of rec,
	// so it must already carry the submitted address.
	applyOrderPlacement(rec, addr, *giftID, time.Now())
	updates := map[string]any{
		"address_line1":    rec.AddressLine1,
		"address_line2":    rec.AddressLine2,
		"address_city":     rec.AddressCity,
		"address_state":    rec.AddressState,
		"address_zip":      rec.AddressZip,
		"address_country":  rec.AddressCountry,
		"address_verified": true,
		"assigned_gift_id": *giftID,
		"status":           models.RecipientStatusOrderPlaced,
		"claimed_at":       rec.ClaimedAt,
	}

	if err := h.db.Model(&models.Recipient{}).Where("id = ?", rec.ID).Updates(updates).Error; err != nil {
		log.Printf("[Claim] address submission failed for recipient %s: %v", rec.ID, err)
		return fiber.NewError(fiber.StatusBadGateway, "could not place your order, please try again")
	}

	h.emit(c, rec, touchpoints.TypeAddressFormSubmitted, map[string]any{"gift_id": giftID.String()})
	go h.notifyClaim(*rec, *giftID)

	state := claim.State{
		Phase:          claim.PhaseSubmitted,
		Variant:        claim.VariantShipment,
		GiftCount:      len(ctx.gifts),
		AssignedGiftID: giftID,
	}
	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{"state": state}})
}

// Donate routes the recipient's gift budget to charity instead. Only the
// status changes; any address or gift fields already on the record stay as
// they are.
func (h *ClaimHandler) Donate(c *fiber.Ctx) error {
	ctx, err := h.loadClaim(c)
	if err != nil {
		return err
	}
	rec := &ctx.recipient

	now := time.Now()
	updates := map[string]any{
		"status":     models.RecipientStatusDonatedToCharity,
		"claimed_at": &now,
	}

	if err := h.db.Model(&models.Recipient{}).Where("id = ?", rec.ID).Updates(updates).Error; err != nil {
		log.Printf("[Claim] donation failed for recipient %s: %v", rec.ID, err)
		return fiber.NewError(fiber.StatusBadGateway, "could not record your donation, please try again")
	}

	h.emit(c, rec, touchpoints.TypeGiftDonatedToCharity, nil)
	go h.notifyDonation(*rec)

	state := claim.State{
		Phase:     claim.PhaseSubmitted,
		Variant:   claim.VariantDonation,
		GiftCount: len(ctx.gifts),
	}
	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{"state": state}})
}

type appendEventRequest struct {
	Type string         `json:"type"`
	Data map[string]any `json:"data"`
}

// AppendEvent lets the claim page log secondary interactions (message views,
// CTA clicks, media plays). The write happens through the outbox, so the
// response never waits on the insert.
func (h *ClaimHandler) AppendEvent(c *fiber.Ctx) error {
	ctx, err := h.loadClaim(c)
	if err != nil {
		return err
	}

	var req appendEventRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if !touchpoints.ValidType(req.Type) {
		return fiber.NewError(fiber.StatusBadRequest, "unknown touchpoint type")
	}

	h.emit(c, &ctx.recipient, req.Type, req.Data)
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"success": true})
}

func (h *ClaimHandler) emit(c *fiber.Ctx, rec *models.Recipient, tpType string, data map[string]any) {
	h.outbox.Emit(touchpoints.Event{
		RecipientID: rec.ID,
		CampaignID:  rec.CampaignID,
		Type:        tpType,
		Data:        data,
		UserAgent:   c.Get("User-Agent"),
		Source:      c.Query("source", "claim-page"),
	})
}

// applyOrderPlacement copies the accepted submission onto the recipient
// record, matching the column updates written to the database.
func applyOrderPlacement(rec *models.Recipient, addr claim.Address, giftID uuid.UUID, claimedAt time.Time) {
	rec.AddressLine1 = strings.TrimSpace(addr.Line1)
	rec.AddressLine2 = strings.TrimSpace(addr.Line2)
	rec.AddressCity = strings.TrimSpace(addr.City)
	rec.AddressState = strings.TrimSpace(addr.State)
	rec.AddressZip = strings.TrimSpace(addr.Zip)
	rec.AddressCountry = strings.TrimSpace(addr.Country)
	rec.AddressVerified = true
	rec.AssignedGiftID = &giftID
	rec.Status = models.RecipientStatusOrderPlaced
	rec.ClaimedAt = &claimedAt
}

func buildClaimNotification(rec models.Recipient, camp models.Campaign, gift models.Gift) services.ClaimNotification {
	return services.ClaimNotification{
		RecipientName: strings.TrimSpace(rec.FirstName + " " + rec.LastName),
		CampaignName:  camp.Name,
		GiftName:      gift.Name,
		Price:         gift.Price,
		Currency:      gift.Currency,
		City:          rec.AddressCity,
		Country:       rec.AddressCountry,
	}
}

func (h *ClaimHandler) notifyClaim(rec models.Recipient, giftID uuid.UUID) {
	if h.telegram == nil {
		return
	}

	var gift models.Gift
	if err := h.db.First(&gift, "id = ?", giftID).Error; err != nil {
		log.Printf("[Claim] gift lookup for notification failed: %v", err)
	}

	var camp models.Campaign
	if err := h.db.First(&camp, "id = ?", rec.CampaignID).Error; err != nil {
		log.Printf("[Claim] campaign lookup for notification failed: %v", err)
	}

	if err := h.telegram.NotifyGiftClaimed(buildClaimNotification(rec, camp, gift)); err != nil {
		log.Printf("[Claim] Telegram notification failed: %v", err)
	}
}

func (h *ClaimHandler) notifyDonation(rec models.Recipient) {
	if h.telegram == nil {
		return
	}

	var camp models.Campaign
	if err := h.db.First(&camp, "id = ?", rec.CampaignID).Error; err != nil {
		log.Printf("[Claim] campaign lookup for notification failed: %v", err)
	}

	notification := services.ClaimNotification{
		RecipientName: strings.TrimSpace(rec.FirstName + " " + rec.LastName),
		CampaignName:  camp.Name,
	}

	if err := h.telegram.NotifyGiftDonated(notification); err != nil {
		log.Printf("[Claim] Telegram notification failed: %v", err)
	}
}

func recipientProjection(rec *models.Recipient) fiber.Map {
	return fiber.Map{
		"id":               rec.ID,
		"first_name":       rec.FirstName,
		"status":           rec.Status,
		"assigned_gift_id": rec.AssignedGiftID,
		"address": fiber.Map{
			"line1":    rec.AddressLine1,
			"line2":    rec.AddressLine2,
			"city":     rec.AddressCity,
			"state":    rec.AddressState,
			"zip":      rec.AddressZip,
			"country":  rec.AddressCountry,
			"verified": rec.AddressVerified,
		},
	}
}

func campaignProjection(camp *models.Campaign) fiber.Map {
	return fiber.Map{
		"id":                  camp.ID,
		"name":                camp.Name,
		"motion":              camp.Motion,
		"landing_page_config": camp.LandingPageConfig,
		"outcome_template":    camp.OutcomeTemplate,
	}
}

// The display lookups below are presentation niceties: any failure degrades
// to an empty object and the page still renders.

func (h *ClaimHandler) displayEvent(id *uuid.UUID) fiber.Map {
	if id == nil {
		return fiber.Map{}
	}
	var event models.Event
	if err := h.db.First(&event, "id = ?", *id).Error; err != nil {
		log.Printf("[Claim] event lookup failed: %v", err)
		return fiber.Map{}
	}
	return fiber.Map{"name": event.Name, "logo": event.Logo, "location": event.Location, "starts_at": event.StartsAt}
}

func (h *ClaimHandler) displayOrganization(id *uuid.UUID) fiber.Map {
	if id == nil {
		return fiber.Map{}
	}
	var org models.Organization
	if err := h.db.First(&org, "id = ?", *id).Error; err != nil {
		log.Printf("[Claim] organization lookup failed: %v", err)
		return fiber.Map{}
	}
	return fiber.Map{"name": org.Name, "logo": org.Logo, "website": org.Website}
}

func (h *ClaimHandler) displaySender(id *uuid.UUID) fiber.Map {
	if id == nil {
		return fiber.Map{}
	}
	var user models.User
	if err := h.db.First(&user, "id = ?", *id).Error; err != nil {
		log.Printf("[Claim] sender lookup failed: %v", err)
		return fiber.Map{}
	}
	return fiber.Map{"display_name": user.DisplayName, "avatar": user.Avatar}
}
