package services

import (
	"github.com/nyakundi-felix/pixelstore/database"
	"github.com/nyakundi-felix/pixelstore/models"
)

type PlatformStats struct {
	TotalUsers         int64 `json:"total_users"`
	ActiveUsers        int64 `json:"active_users"`
	CoinsInCirculation int64 `json:"coins_in_circulation"`
	TransactionCount   int64 `json:"transaction_count"`
	ReferralCount      int64 `json:"referral_count"`
	PurchaseCount      int64 `json:"purchase_count"`
}

func LoadPlatformStats() (*PlatformStats, error) {
	var stats PlatformStats

	if err := database.DB.Model(&models.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := database.DB.Model(&models.User{}).
		Where("is_active = ? AND is_blocked = ?", true, false).
		Count(&stats.ActiveUsers).Error; err != nil {
		return nil, err
	}
	if err := database.DB.Model(&models.User{}).
		Select("COALESCE(SUM(balance), 0)").
		Scan(&stats.CoinsInCirculation).Error; err != nil {
		return nil, err
	}
	if err := database.DB.Model(&models.Transaction{}).Count(&stats.TransactionCount).Error; err != nil {
		return nil, err
	}
	if err := database.DB.Model(&models.Referral{}).Count(&stats.ReferralCount).Error; err != nil {
		return nil, err
	}
	if err := database.DB.Model(&models.Purchase{}).Count(&stats.PurchaseCount).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}
