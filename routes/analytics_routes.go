package routes

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/nyakundi-felix/pixelstore/handlers"
	"github.com/nyakundi-felix/pixelstore/middleware"
)

func AnalyticsRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	analytics := api.Group("/analytics", middleware.Protected(), middleware.AdminRequired())
	analytics.Get("/stats", handlers.GetPlatformStats)

	analytics.Use("/feed", func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		return c.Next()
	})
	analytics.Get("/feed", websocket.New(handlers.ServeTransactionFeed))
}
