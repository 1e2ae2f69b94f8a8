package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	config "github.com/nyakundi-felix/pixelstore/configs"
	"github.com/nyakundi-felix/pixelstore/database"
	"github.com/nyakundi-felix/pixelstore/models"
	"github.com/nyakundi-felix/pixelstore/notifications"
	"github.com/nyakundi-felix/pixelstore/websocket"
	"gorm.io/gorm"
)

type RewardPolicy struct {
	ReferrerReward int64
	ReferredBonus  int64
}

func DefaultRewardPolicy() RewardPolicy {
	return RewardPolicy{
		ReferrerReward: config.Int64("REFERRAL_REWARD_AMOUNT", 100),
		ReferredBonus:  config.Int64("REFERRAL_BONUS_AMOUNT", 50),
	}
}

type ReferralResult struct {
	Referral *models.Referral
	RewardTx *models.Transaction
	BonusTx  *models.Transaction
}

// ApplyReferral redeems a referral code for a user, crediting both
// sides. Everything runs in one database transaction: the referral
// record, the referrer's counter, and both ledger entries commit or
// roll back together, so a failure can never leave one side credited.
func ApplyReferral(userID uuid.UUID, code string, policy RewardPolicy) (*ReferralResult, error) {
	var result ReferralResult
	var referrer models.User

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, "id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		if user.ReferralCode != nil && *user.ReferralCode == code {
			return ErrSelfReferral
		}

		var applied int64
		if err := tx.Model(&models.Referral{}).Where("referred_user_id = ?", userID).Count(&applied).Error; err != nil {
			return err
		}
		if applied > 0 {
			return ErrAlreadyReferred
		}

		if err := tx.Where("referral_code = ?", code).First(&referrer).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrInvalidReferralCode
			}
			return err
		}
		if referrer.ID == user.ID {
			return ErrSelfReferral
		}
		if !referrer.CanTransact() {
			return ErrReferrerInactive
		}

		referral := models.Referral{
			ReferrerID:     referrer.ID,
			ReferredUserID: user.ID,
			CodeUsed:       code,
			ReferrerReward: policy.ReferrerReward,
			ReferredBonus:  policy.ReferredBonus,
		}
		if err := tx.Create(&referral).Error; err != nil {
			// the unique index on referred_user_id catches a
			// concurrent apply that slipped past the count above
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrAlreadyReferred
			}
			return err
		}

		if err := tx.Model(&models.User{}).Where("id = ?", referrer.ID).
			UpdateColumn("referral_count", gorm.Expr("referral_count + 1")).Error; err != nil {
			return err
		}

		rewardTx, err := applyDelta(tx, referrer.ID, policy.ReferrerReward, models.TxReferralReward, "referral_reward", &user.ID)
		if err != nil {
			return err
		}
		bonusTx, err := applyDelta(tx, user.ID, policy.ReferredBonus, models.TxReferralBonus, "referral_bonus", &referrer.ID)
		if err != nil {
			return err
		}

		result = ReferralResult{Referral: &referral, RewardTx: rewardTx, BonusTx: bonusTx}
		return nil
	})
	if err != nil {
		return nil, err
	}

	websocket.PublishTransaction(result.RewardTx)
	websocket.PublishTransaction(result.BonusTx)

	go notifications.SendEmail(
		referrer.FullName,
		referrer.Email,
		"You've Earned a Referral Reward!",
		fmt.Sprintf("<h1>Congratulations!</h1><p>Someone joined with your referral code. %d coins have been added to your account.</p>", policy.ReferrerReward),
	)

	return &result, nil
}
