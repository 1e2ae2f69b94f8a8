package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Referral records a redeemed referral code. The unique index on
// ReferredUserID is what makes redemption one-time: a concurrent
// duplicate apply fails on insert instead of double-crediting.
type Referral struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ReferrerID     uuid.UUID `gorm:"type:uuid;not null;index" json:"referrer_id"`
	ReferredUserID uuid.UUID `gorm:"type:uuid;not null;unique" json:"referred_user_id"`
	CodeUsed       string    `gorm:"size:10;not null" json:"code_used"`
	ReferrerReward int64     `gorm:"not null" json:"referrer_reward"`
	ReferredBonus  int64     `gorm:"not null" json:"referred_bonus"`

	Referrer     User `gorm:"foreignkey:ReferrerID" json:"-"`
	ReferredUser User `gorm:"foreignkey:ReferredUserID" json:"-"`

	CreatedAt time.Time `json:"applied_at"`
}

func (r *Referral) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
