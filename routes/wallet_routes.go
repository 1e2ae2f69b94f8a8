package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nyakundi-felix/pixelstore/handlers"
	"github.com/nyakundi-felix/pixelstore/middleware"
)

func WalletRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	wallet := api.Group("/wallet", middleware.Protected())
	wallet.Get("/balance", handlers.GetMyBalance)
	wallet.Get("/history", handlers.GetMyHistory)
	wallet.Get("/activity", handlers.GetMyActivityLog)

	referrals := api.Group("/referrals", middleware.Protected())
	referrals.Post("/apply", handlers.ApplyReferral)
	referrals.Get("/me", handlers.GetMyReferralInfo)
}
