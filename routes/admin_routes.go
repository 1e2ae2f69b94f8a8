package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nyakundi-felix/pixelstore/handlers"
	"github.com/nyakundi-felix/pixelstore/middleware"
)

func AdminRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	admin := api.Group("/admin", middleware.Protected(), middleware.AdminRequired())

	admin.Get("/users", handlers.ListUsers)
	admin.Get("/users/:userId/transactions", handlers.ListUserTransactions)
	admin.Post("/users/:userId/block", handlers.BlockUser)
	admin.Post("/users/:userId/unblock", handlers.UnblockUser)
	admin.Post("/users/:userId/deactivate", handlers.DeactivateUser)

	admin.Post("/wallet/:userId/credit", handlers.CreditUserBalance)
	admin.Post("/wallet/:userId/debit", handlers.DebitUserBalance)
}
