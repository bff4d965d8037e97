package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/giftwell/internal/config"
	"github.com/example/giftwell/internal/models"
	"github.com/example/giftwell/internal/utils"
)

// RecipientHandler manages campaign recipients and their claim links.
type RecipientHandler struct {
	db  *gorm.DB
	cfg *config.Config
}

// NewRecipientHandler constructs RecipientHandler.
func NewRecipientHandler(db *gorm.DB, cfg *config.Config) *RecipientHandler {
	return &RecipientHandler{db: db, cfg: cfg}
}

// ListRecipients returns paginated recipients, filterable by campaign and status.
func (h *RecipientHandler) ListRecipients(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)
	query := h.db.Model(&models.Recipient{})

	if campaignID := c.Query("campaign_id"); campaignID != "" {
		id, err := uuid.Parse(campaignID)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid campaign_id")
		}
		query = query.Where("campaign_id = ?", id)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return err
	}

	var recipients []models.Recipient
	if err := query.Preload("AssignedGift").
		Limit(pg.Limit).Offset(pg.Offset).Order("created_at desc").
		Find(&recipients).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    recipients,
		"pagination": fiber.Map{
			"current_page":   pg.Page,
			"items_per_page": pg.Limit,
			"total_items":    total,
		},
	})
}

// GetRecipient returns a single recipient.
func (h *RecipientHandler) GetRecipient(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var recipient models.Recipient
	if err := h.db.Preload("AssignedGift").Preload("Campaign").
		First(&recipient, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "recipient not found")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": recipient})
}

type createRecipientRequest struct {
	CampaignID string `json:"campaign_id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
}

// CreateRecipient adds a recipient to a campaign in the invitation_send state.
func (h *RecipientHandler) CreateRecipient(c *fiber.Ctx) error {
	var req createRecipientRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	campaignID, err := uuid.Parse(req.CampaignID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid campaign_id")
	}

	var campaign models.Campaign
	if err := h.db.First(&campaign, "id = ?", campaignID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "campaign not found")
		}
		return err
	}

	recipient := models.Recipient{
		CampaignID: campaignID,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Status:     models.RecipientStatusInvitationSend,
	}

	if err := h.db.Create(&recipient).Error; err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": recipient})
}

// UpdateRecipient updates recipient contact fields. Status and address moves
// belong to the claim flow, not this endpoint.
func (h *RecipientHandler) UpdateRecipient(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var recipient models.Recipient
	if err := h.db.First(&recipient, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "recipient not found")
		}
		return err
	}

	var req createRecipientRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	updates := map[string]any{}
	if req.FirstName != "" {
		updates["first_name"] = req.FirstName
	}
	if req.LastName != "" {
		updates["last_name"] = req.LastName
	}
	if req.Email != "" {
		updates["email"] = req.Email
	}

	if len(updates) > 0 {
		if err := h.db.Model(&recipient).Updates(updates).Error; err != nil {
			return err
		}
	}

	return c.JSON(fiber.Map{"success": true, "data": recipient})
}

// DeleteRecipient removes a recipient by ID.
func (h *RecipientHandler) DeleteRecipient(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if err := h.db.Delete(&models.Recipient{}, "id = ?", id).Error; err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// GetClaimLink mints the signed claim URL for a recipient.
func (h *RecipientHandler) GetClaimLink(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var recipient models.Recipient
	if err := h.db.First(&recipient, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "recipient not found")
		}
		return err
	}

	token, err := utils.GenerateClaimToken(h.cfg.ClaimTokenSecret, recipient.ID, recipient.CampaignID, h.cfg.ClaimTokenExpires)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to generate claim token")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"token": token,
			"url":   h.cfg.ClaimBaseURL + "/" + token,
		},
	})
}

// ListTouchpoints returns a recipient's interaction timeline, newest first.
func (h *RecipientHandler) ListTouchpoints(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	pg := utils.ParsePagination(c)
	query := h.db.Model(&models.Touchpoint{}).Where("recipient_id = ?", id)

	if tpType := c.Query("type"); tpType != "" {
		query = query.Where("type = ?", tpType)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return err
	}

	var events []models.Touchpoint
	if err := query.Limit(pg.Limit).Offset(pg.Offset).Order("created_at desc").
		Find(&events).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    events,
		"pagination": fiber.Map{
			"current_page":   pg.Page,
			"items_per_page": pg.Limit,
			"total_items":    total,
		},
	})
}
