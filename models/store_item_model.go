package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StoreItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Price       int64     `gorm:"not null" json:"price"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *StoreItem) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

type Purchase struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	StoreItemID   uuid.UUID `gorm:"type:uuid;not null" json:"store_item_id"`
	PricePaid     int64     `gorm:"not null" json:"price_paid"`
	TransactionID uuid.UUID `gorm:"type:uuid;not null" json:"transaction_id"`

	StoreItem StoreItem `gorm:"foreignkey:StoreItemID" json:"store_item,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func (p *Purchase) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
