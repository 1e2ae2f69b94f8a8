package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	FullName string    `gorm:"size:255;not null" json:"full_name"`
	Email    string    `gorm:"size:255;not null;unique" json:"email"`
	Password string    `gorm:"not null" json:"-"`
	Role     string    `gorm:"size:20;not null;default:'member'" json:"role"`

	Balance       int64   `gorm:"not null;default:0" json:"balance"`
	ReferralCode  *string `gorm:"size:10;unique" json:"referral_code"`
	ReferralCount int     `gorm:"not null;default:0" json:"referral_count"`

	IsActive  bool `gorm:"default:true" json:"is_active"`
	IsBlocked bool `gorm:"default:false" json:"is_blocked"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// CanTransact reports whether the user may take part in coin flows.
func (u *User) CanTransact() bool {
	return u.IsActive && !u.IsBlocked
}
