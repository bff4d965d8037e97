package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/giftwell/internal/models"
	"github.com/example/giftwell/internal/utils"
)

// DirectoryHandler manages the display-metadata resources the claim page
// reads: events and organizations.
type DirectoryHandler struct {
	db *gorm.DB
}

// NewDirectoryHandler constructs DirectoryHandler.
func NewDirectoryHandler(db *gorm.DB) *DirectoryHandler {
	return &DirectoryHandler{db: db}
}

// Generic helpers for simple lookup tables.

func (h *DirectoryHandler) listSimple(c *fiber.Ctx, model interface{}) error {
	pg := utils.ParsePagination(c)
	var total int64
	if err := h.db.Model(model).Count(&total).Error; err != nil {
		return err
	}
	if err := h.db.Limit(pg.Limit).Offset(pg.Offset).Order("created_at desc").
		Find(model).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": model, "pagination": fiber.Map{
		"current_page":   pg.Page,
		"items_per_page": pg.Limit,
		"total_items":    total,
	}})
}

func (h *DirectoryHandler) getSimple(c *fiber.Ctx, model interface{}) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	if err := h.db.First(model, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "resource not found")
		}
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": model})
}

func (h *DirectoryHandler) createSimple(c *fiber.Ctx, model interface{}) error {
	if err := c.BodyParser(model); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.db.Create(model).Error; err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": model})
}

func (h *DirectoryHandler) updateSimple(c *fiber.Ctx, model interface{}) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	if err := h.db.First(model, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "resource not found")
		}
		return err
	}
	if err := c.BodyParser(model); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.db.Save(model).Error; err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": model})
}

func (h *DirectoryHandler) deleteSimple(c *fiber.Ctx, model interface{}) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	if err := h.db.Delete(model, "id = ?", id).Error; err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *DirectoryHandler) ListEvents(c *fiber.Ctx) error {
	var events []models.Event
	return h.listSimple(c, &events)
}

func (h *DirectoryHandler) GetEvent(c *fiber.Ctx) error {
	var event models.Event
	return h.getSimple(c, &event)
}

func (h *DirectoryHandler) CreateEvent(c *fiber.Ctx) error {
	var event models.Event
	return h.createSimple(c, &event)
}

func (h *DirectoryHandler) UpdateEvent(c *fiber.Ctx) error {
	var event models.Event
	return h.updateSimple(c, &event)
}

func (h *DirectoryHandler) DeleteEvent(c *fiber.Ctx) error {
	var event models.Event
	return h.deleteSimple(c, &event)
}

func (h *DirectoryHandler) ListOrganizations(c *fiber.Ctx) error {
	var orgs []models.Organization
	return h.listSimple(c, &orgs)
}

func (h *DirectoryHandler) GetOrganization(c *fiber.Ctx) error {
	var org models.Organization
	return h.getSimple(c, &org)
}

func (h *DirectoryHandler) CreateOrganization(c *fiber.Ctx) error {
	var org models.Organization
	return h.createSimple(c, &org)
}

func (h *DirectoryHandler) UpdateOrganization(c *fiber.Ctx) error {
	var org models.Organization
	return h.updateSimple(c, &org)
}

func (h *DirectoryHandler) DeleteOrganization(c *fiber.Ctx) error {
	var org models.Organization
	return h.deleteSimple(c, &org)
}
