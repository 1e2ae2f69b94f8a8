package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/nyakundi-felix/pixelstore/database"
	"github.com/nyakundi-felix/pixelstore/models"
	"github.com/nyakundi-felix/pixelstore/services"
	"gorm.io/gorm"
)

type ApplyReferralRequest struct {
	Code string `json:"code" validate:"required,min=4,max=10"`
}

func ApplyReferral(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))

	var req ApplyReferralRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	result, err := services.ApplyReferral(userID, req.Code, services.DefaultRewardPolicy())
	if err != nil {
		return respondServiceError(c, err)
	}

	ip, userAgent := c.IP(), c.Get("User-Agent")
	services.LogActivity(userID, "referral_applied", map[string]interface{}{
		"code":        req.Code,
		"referrer_id": result.Referral.ReferrerID.String(),
		"bonus":       result.Referral.ReferredBonus,
	}, ip, userAgent)
	services.LogActivity(result.Referral.ReferrerID, "referral_rewarded", map[string]interface{}{
		"referred_user_id": userID.String(),
		"reward":           result.Referral.ReferrerReward,
	}, ip, userAgent)

	return c.JSON(fiber.Map{"balance": result.BonusTx.NewBalance})
}

func GetMyReferralInfo(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	var applied *models.Referral
	var referral models.Referral
	err := database.DB.Where("referred_user_id = ?", userID).First(&referral).Error
	if err == nil {
		applied = &referral
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load referral info"})
	}

	return c.JSON(fiber.Map{
		"referral_code":    user.ReferralCode,
		"referral_count":   user.ReferralCount,
		"applied_referral": applied,
	})
}
