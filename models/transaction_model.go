package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TxRewardCredit    = "reward_credit"
	TxRewardDebit     = "reward_debit"
	TxReferralReward  = "referral_reward"
	TxReferralBonus   = "referral_bonus"
	TxAdminAdjustment = "admin_adjustment"
	TxPurchaseDebit   = "purchase_debit"
)

const (
	TxStatusCompleted = "completed"
	TxStatusFailed    = "failed"
)

// Transaction is an append-only ledger entry. Rows are never updated
// after creation; the balance on User must equal the sum of its
// completed transaction amounts.
type Transaction struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID          uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	Type            string     `gorm:"size:30;not null" json:"type"`
	Amount          int64      `gorm:"not null" json:"amount"`
	Status          string     `gorm:"size:20;not null;default:'completed'" json:"status"`
	PreviousBalance int64      `gorm:"not null" json:"previous_balance"`
	NewBalance      int64      `gorm:"not null" json:"new_balance"`
	Reason          string     `gorm:"size:255" json:"reason"`
	LinkedUserID    *uuid.UUID `gorm:"type:uuid" json:"linked_user_id,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
