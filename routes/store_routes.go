package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nyakundi-felix/pixelstore/handlers"
	"github.com/nyakundi-felix/pixelstore/middleware"
)

func StoreRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	store := api.Group("/store")
	store.Get("/items", handlers.ListStoreItems)
	store.Post("/items/:itemId/purchase", middleware.Protected(), handlers.PurchaseStoreItem)

	adminStore := api.Group("/admin/store", middleware.Protected(), middleware.AdminRequired())
	items := adminStore.Group("/items")
	items.Post("", handlers.CreateStoreItem)
	items.Get("", handlers.ListAllStoreItems)
	items.Put("/:itemId", handlers.UpdateStoreItem)
	items.Delete("/:itemId", handlers.DeleteStoreItem)
}
