package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/example/giftwell/internal/config"
	"github.com/example/giftwell/internal/database"
	"github.com/example/giftwell/internal/routes"
	"github.com/example/giftwell/internal/touchpoints"
)

func main() {
	cfg := config.Load()
	db := database.Connect(cfg.DatabaseURL)

	outbox := touchpoints.NewOutbox(db)
	defer outbox.Close()

	app := fiber.New(fiber.Config{
		AppName: "Giftwell Claim Service",
	})

	app.Use(recover.New())
	app.Use(logger.New())

	routes.Register(app, db, cfg, outbox)

	log.Printf("Starting server on :%s", cfg.AppPort)
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		log.Fatalf("fiber.Listen error: %v", err)
	}
}
