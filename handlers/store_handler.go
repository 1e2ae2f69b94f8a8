package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/nyakundi-felix/pixelstore/database"
	"github.com/nyakundi-felix/pixelstore/models"
	"github.com/nyakundi-felix/pixelstore/services"
)

type StoreItemRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Price       int64  `json:"price" validate:"required,gt=0"`
	IsActive    *bool  `json:"is_active"`
}

func CreateStoreItem(c *fiber.Ctx) error {
	var req StoreItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	item := models.StoreItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		IsActive:    true,
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}

	if err := database.DB.Create(&item).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create store item"})
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

func ListStoreItems(c *fiber.Ctx) error {
	var items []models.StoreItem
	if err := database.DB.Where("is_active = ?", true).Order("price asc").Find(&items).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load store items"})
	}
	return c.JSON(items)
}

func ListAllStoreItems(c *fiber.Ctx) error {
	var items []models.StoreItem
	if err := database.DB.Order("created_at desc").Find(&items).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load store items"})
	}
	return c.JSON(items)
}

func UpdateStoreItem(c *fiber.Ctx) error {
	itemID := c.Params("itemId")
	var item models.StoreItem
	if err := database.DB.First(&item, "id = ?", itemID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Store item not found"})
	}

	var req StoreItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	item.Name = req.Name
	item.Description = req.Description
	item.Price = req.Price
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}
	database.DB.Save(&item)

	return c.JSON(item)
}

func DeleteStoreItem(c *fiber.Ctx) error {
	itemID := c.Params("itemId")
	result := database.DB.Delete(&models.StoreItem{}, "id = ?", itemID)

	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete store item"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Store item not found"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func PurchaseStoreItem(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))

	itemID, err := uuid.Parse(c.Params("itemId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid item id"})
	}

	purchase, entry, err := services.PurchaseItem(userID, itemID)
	if err != nil {
		return respondServiceError(c, err)
	}

	services.LogActivity(userID, "store_purchase", map[string]interface{}{
		"store_item_id": purchase.StoreItemID.String(),
		"price_paid":    purchase.PricePaid,
	}, c.IP(), c.Get("User-Agent"))

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"purchase": purchase,
		"balance":  entry.NewBalance,
	})
}
