package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/giftwell/internal/models"
	"github.com/example/giftwell/internal/utils"
)

// GiftHandler manages the gift inventory and curated catalogs.
type GiftHandler struct {
	db *gorm.DB
}

// NewGiftHandler constructs GiftHandler.
func NewGiftHandler(db *gorm.DB) *GiftHandler {
	return &GiftHandler{db: db}
}

// ListGifts returns paginated gifts, optionally filtered by price ceiling.
func (h *GiftHandler) ListGifts(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)
	query := h.db.Model(&models.Gift{})

	if maxPrice := c.QueryFloat("max_price"); maxPrice > 0 {
		query = query.Where("price <= ?", maxPrice)
	}
	if search := c.Query("search"); search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return err
	}

	var gifts []models.Gift
	if err := query.Limit(pg.Limit).Offset(pg.Offset).Order("created_at desc").
		Find(&gifts).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    gifts,
		"pagination": fiber.Map{
			"current_page":   pg.Page,
			"items_per_page": pg.Limit,
			"total_items":    total,
		},
	})
}

// GetGift returns a single gift by ID.
func (h *GiftHandler) GetGift(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var gift models.Gift
	if err := h.db.First(&gift, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "gift not found")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": gift})
}

// CreateGift persists a new gift.
func (h *GiftHandler) CreateGift(c *fiber.Ctx) error {
	var payload models.Gift
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.db.Create(&payload).Error; err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": payload})
}

// UpdateGift updates an existing gift.
func (h *GiftHandler) UpdateGift(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var gift models.Gift
	if err := h.db.First(&gift, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "gift not found")
		}
		return err
	}

	var payload models.Gift
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	payload.ID = gift.ID
	if err := h.db.Model(&gift).Updates(payload).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": gift})
}

// DeleteGift removes a gift by ID.
func (h *GiftHandler) DeleteGift(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if err := h.db.Delete(&models.Gift{}, "id = ?", id).Error; err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// Catalog endpoints.

// ListCatalogs returns paginated gift catalogs with their gifts.
func (h *GiftHandler) ListCatalogs(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)
	var total int64

	if err := h.db.Model(&models.GiftCatalog{}).Count(&total).Error; err != nil {
		return err
	}

	var catalogs []models.GiftCatalog
	if err := h.db.Preload("Gifts").Limit(pg.Limit).Offset(pg.Offset).
		Order("created_at desc").Find(&catalogs).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": catalogs, "pagination": fiber.Map{
		"current_page":   pg.Page,
		"items_per_page": pg.Limit,
		"total_items":    total,
	}})
}

// GetCatalog returns a single catalog with its gifts.
func (h *GiftHandler) GetCatalog(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var catalog models.GiftCatalog
	if err := h.db.Preload("Gifts").First(&catalog, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "catalog not found")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": catalog})
}

// CreateCatalog persists a new catalog.
func (h *GiftHandler) CreateCatalog(c *fiber.Ctx) error {
	var payload models.GiftCatalog
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.db.Create(&payload).Error; err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": payload})
}

// UpdateCatalog updates catalog metadata.
func (h *GiftHandler) UpdateCatalog(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var catalog models.GiftCatalog
	if err := h.db.First(&catalog, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "catalog not found")
		}
		return err
	}

	var payload models.GiftCatalog
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	payload.ID = catalog.ID
	if err := h.db.Model(&catalog).Updates(payload).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": catalog})
}

// DeleteCatalog removes a catalog by ID.
func (h *GiftHandler) DeleteCatalog(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if err := h.db.Delete(&models.GiftCatalog{}, "id = ?", id).Error; err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// SetCatalogGifts replaces the curated gift list of a catalog.
func (h *GiftHandler) SetCatalogGifts(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var catalog models.GiftCatalog
	if err := h.db.First(&catalog, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "catalog not found")
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

	if err := h.db.Model(&catalog).Association("Gifts").Replace(gifts); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": gifts})
}
