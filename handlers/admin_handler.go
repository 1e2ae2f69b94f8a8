package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/nyakundi-felix/pixelstore/database"
	"github.com/nyakundi-felix/pixelstore/models"
	"github.com/nyakundi-felix/pixelstore/services"
)

type AdjustBalanceRequest struct {
	Amount int64  `json:"amount" validate:"required,gt=0"`
	Reason string `json:"reason" validate:"required,max=255"`
}

func adminID(c *fiber.Ctx) uuid.UUID {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	id, _ := uuid.Parse(claims["user_id"].(string))
	return id
}

func CreditUserBalance(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user id"})
	}

	var req AdjustBalanceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	entry, err := services.CreditBalance(userID, req.Amount, models.TxAdminAdjustment, req.Reason)
	if err != nil {
		return respondServiceError(c, err)
	}

	services.LogActivity(userID, "balance_adjusted", map[string]interface{}{
		"amount":   req.Amount,
		"reason":   req.Reason,
		"admin_id": adminID(c).String(),
	}, c.IP(), c.Get("User-Agent"))

	return c.JSON(fiber.Map{"balance": entry.NewBalance})
}

func DebitUserBalance(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user id"})
	}

	var req AdjustBalanceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	entry, err := services.DebitBalance(userID, req.Amount, models.TxAdminAdjustment, req.Reason)
	if err != nil {
		return respondServiceError(c, err)
	}

	services.LogActivity(userID, "balance_adjusted", map[string]interface{}{
		"amount":   -req.Amount,
		"reason":   req.Reason,
		"admin_id": adminID(c).String(),
	}, c.IP(), c.Get("User-Agent"))

	return c.JSON(fiber.Map{"balance": entry.NewBalance})
}

func ListUsers(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}

	var users []models.User
	if err := database.DB.Order("created_at desc").Limit(limit).Offset(offset).Find(&users).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load users"})
	}
	return c.JSON(users)
}

func ListUserTransactions(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user id"})
	}

	entries, err := services.GetHistory(userID, c.QueryInt("limit", 20), c.QueryInt("offset", 0))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load transactions"})
	}
	return c.JSON(fiber.Map{"transactions": entries})
}

func setBlocked(c *fiber.Ctx, blocked bool) error {
	userID := c.Params("userId")
	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	user.IsBlocked = blocked
	if err := database.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update user"})
	}

	action := "user_unblocked"
	if blocked {
		action = "user_blocked"
	}
	services.LogActivity(user.ID, action, map[string]interface{}{
		"admin_id": adminID(c).String(),
	}, c.IP(), c.Get("User-Agent"))

	return c.JSON(user)
}

func BlockUser(c *fiber.Ctx) error {
	return setBlocked(c, true)
}

func UnblockUser(c *fiber.Ctx) error {
	return setBlocked(c, false)
}

func DeactivateUser(c *fiber.Ctx) error {
	userID := c.Params("userId")
	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	user.IsActive = false
	if err := database.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update user"})
	}

	services.LogActivity(user.ID, "user_deactivated", map[string]interface{}{
		"admin_id": adminID(c).String(),
	}, c.IP(), c.Get("User-Agent"))

	return c.JSON(user)
}
