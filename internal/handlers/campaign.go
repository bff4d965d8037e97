package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/giftwell/internal/middleware"
	"github.com/example/giftwell/internal/models"
	"github.com/example/giftwell/internal/services"
	"github.com/example/giftwell/internal/utils"
)

// CampaignHandler manages campaign endpoints.
type CampaignHandler struct {
	db        *gorm.DB
	recommend *services.RecommendService
}

// NewCampaignHandler constructs CampaignHandler.
func NewCampaignHandler(db *gorm.DB, recommend *services.RecommendService) *CampaignHandler {
	return &CampaignHandler{db: db, recommend: recommend}
}

// ListCampaigns returns paginated campaigns.
func (h *CampaignHandler) ListCampaigns(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)
	query := h.db.Model(&models.Campaign{})

	if motion := c.Query("motion"); motion != "" {
		query = query.Where("motion = ?", motion)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return err
	}

	var campaigns []models.Campaign
	if err := query.Preload("Event").Preload("Organization").
		Limit(pg.Limit).Offset(pg.Offset).Order("created_at desc").
		Find(&campaigns).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    campaigns,
		"pagination": fiber.Map{
			"current_page":   pg.Page,
			"items_per_page": pg.Limit,
			"total_items":    total,
		},
	})
}

// GetCampaign returns a single campaign. With ?public=true it returns the
// trimmed projection the claim page consumes, without a session.
func (h *CampaignHandler) GetCampaign(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var campaign models.Campaign
	if err := h.db.Preload("AvailableGifts").Preload("Catalogs.Gifts").
		Preload("Event").Preload("Organization").
		First(&campaign, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "campaign not found")
		}
		return err
	}

	if c.QueryBool("public") {
		return c.JSON(fiber.Map{"success": true, "data": fiber.Map{
			"id":                  campaign.ID,
			"name":                campaign.Name,
			"motion":              campaign.Motion,
			"available_gifts":     campaign.AvailableGifts,
			"catalogs":            campaign.Catalogs,
			"landing_page_config": campaign.LandingPageConfig,
			"outcome_template":    campaign.OutcomeTemplate,
		}})
	}

	return c.JSON(fiber.Map{"success": true, "data": campaign})
}

// CreateCampaign persists a new campaign for the authenticated user.
func (h *CampaignHandler) CreateCampaign(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var payload models.Campaign
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	payload.CreatorUserID = &userID
	if payload.Status == "" {
		payload.Status = "draft"
	}

	if err := h.db.Create(&payload).Error; err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": payload})
}

// UpdateCampaign updates an existing campaign.
func (h *CampaignHandler) UpdateCampaign(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var campaign models.Campaign
	if err := h.db.First(&campaign, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "campaign not found")
		}
		return err
	}

	var payload models.Campaign
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	payload.ID = campaign.ID
	payload.CreatorUserID = campaign.CreatorUserID
	if err := h.db.Model(&campaign).Updates(payload).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": campaign})
}

// DeleteCampaign removes a campaign by ID.
func (h *CampaignHandler) DeleteCampaign(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if err := h.db.Delete(&models.Campaign{}, "id = ?", id).Error; err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

type attachGiftsRequest struct {
	GiftIDs []string `json:"gift_ids"`
}

// AttachGifts replaces the campaign's flat available-gift list.
func (h *CampaignHandler) AttachGifts(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var campaign models.Campaign
	if err := h.db.First(&campaign, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "campaign not found")
		}
		return err
	}

	var req attachGiftsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	var gifts []models.Gift
	if len(req.GiftIDs) > 0 {
		if err := h.db.Find(&gifts, "id IN ?", req.GiftIDs).Error; err != nil {
			return err
		}
	}

	if err := h.db.Model(&campaign).Association("AvailableGifts").Replace(gifts); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": gifts})
}

type recommendRequest struct {
	Budget    float64  `json:"budget"`
	Currency  string   `json:"currency"`
	Interests []string `json:"interests"`
}

// RecommendGifts asks the recommendation service for gift ideas within the
// campaign budget. The call runs under a long deadline and degrades to a
// static fallback payload rather than failing.
func (h *CampaignHandler) RecommendGifts(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var campaign models.Campaign
	if err := h.db.First(&campaign, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "campaign not found")
		}
		return err
	}

	var req recommendRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.Budget == 0 {
		req.Budget = campaign.Budget
	}
	if req.Currency == "" {
		req.Currency = campaign.Currency
	}

	result := h.recommend.Recommend(c.Context(), services.RecommendRequest{
		Motion:    campaign.Motion,
		Budget:    req.Budget,
		Currency:  req.Currency,
		Interests: req.Interests,
	})

	return c.JSON(fiber.Map{"success": true, "data": result})
}
