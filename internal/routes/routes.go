package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/giftwell/internal/config"
	"github.com/example/giftwell/internal/handlers"
	"github.com/example/giftwell/internal/middleware"
	"github.com/example/giftwell/internal/services"
	"github.com/example/giftwell/internal/touchpoints"
)

// Register wires up all HTTP routes.
func Register(app *fiber.App, db *gorm.DB, cfg *config.Config, outbox *touchpoints.Outbox) {
	telegramService := services.NewTelegramService(cfg.TelegramBotToken, cfg.TelegramAdminChat)
	recommendService := services.NewRecommendService(cfg.RecommendBaseURL, cfg.RecommendAPIKey, cfg.RecommendTimeout)

	authHandler := handlers.NewAuthHandler(db, cfg)
	claimHandler := handlers.NewClaimHandler(db, cfg, outbox, telegramService)
	campaignHandler := handlers.NewCampaignHandler(db, recommendService)
	giftHandler := handlers.NewGiftHandler(db)
	recipientHandler := handlers.NewRecipientHandler(db, cfg)
	directoryHandler := handlers.NewDirectoryHandler(db)

	api := app.Group("/api")

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)

	// Public claim flow (token-authenticated, no session)
	claimFlow := api.Group("/claim")
	claimFlow.Get("/:token", claimHandler.Bootstrap)
	claimFlow.Post("/:token/select", claimHandler.SelectGift)
	claimFlow.Put("/:token/address", claimHandler.SubmitAddress)
	claimFlow.Post("/:token/donate", claimHandler.Donate)
	claimFlow.Post("/:token/events", claimHandler.AppendEvent)

	// Public campaign projection for landing pages
	api.Get("/campaigns/:id", campaignHandler.GetCampaign)

	// Protected workspace routes
	protected := api.Group("", middleware.AuthMiddleware(cfg))

	protected.Get("/me", authHandler.Me)

	campaigns := protected.Group("/campaigns")
	campaigns.Get("/", campaignHandler.ListCampaigns)
	campaigns.Post("/", campaignHandler.CreateCampaign)
	campaigns.Put("/:id", campaignHandler.UpdateCampaign)
	campaigns.Delete("/:id", campaignHandler.DeleteCampaign)
	campaigns.Put("/:id/gifts", campaignHandler.AttachGifts)
	campaigns.Post("/:id/recommendations", campaignHandler.RecommendGifts)

	gifts := protected.Group("/gifts")
	gifts.Get("/", giftHandler.ListGifts)
	gifts.Post("/", giftHandler.CreateGift)
	gifts.Get("/:id", giftHandler.GetGift)
	gifts.Put("/:id", giftHandler.UpdateGift)
	gifts.Delete("/:id", giftHandler.DeleteGift)

	catalogs := protected.Group("/catalogs")
	catalogs.Get("/", giftHandler.ListCatalogs)
	catalogs.Post("/", giftHandler.CreateCatalog)
	catalogs.Get("/:id", giftHandler.GetCatalog)
	catalogs.Put("/:id", giftHandler.UpdateCatalog)
	catalogs.Delete("/:id", giftHandler.DeleteCatalog)
	catalogs.Put("/:id/gifts", giftHandler.SetCatalogGifts)

	recipients := protected.Group("/recipients")
	recipients.Get("/", recipientHandler.ListRecipients)
	recipients.Post("/", recipientHandler.CreateRecipient)
	recipients.Get("/:id", recipientHandler.GetRecipient)
	recipients.Put("/:id", recipientHandler.UpdateRecipient)
	recipients.Delete("/:id", recipientHandler.DeleteRecipient)
	recipients.Get("/:id/claim-link", recipientHandler.GetClaimLink)
	recipients.Get("/:id/touchpoints", recipientHandler.ListTouchpoints)

	events := protected.Group("/events")
	events.Get("/", directoryHandler.ListEvents)
	events.Post("/", directoryHandler.CreateEvent)
	events.Get("/:id", directoryHandler.GetEvent)
	events.Put("/:id", directoryHandler.UpdateEvent)
	events.Delete("/:id", directoryHandler.DeleteEvent)

	organizations := protected.Group("/organizations")
	organizations.Get("/", directoryHandler.ListOrganizations)
	organizations.Post("/", directoryHandler.CreateOrganization)
	organizations.Get("/:id", directoryHandler.GetOrganization)
	organizations.Put("/:id", directoryHandler.UpdateOrganization)
	organizations.Delete("/:id", directoryHandler.DeleteOrganization)
}
