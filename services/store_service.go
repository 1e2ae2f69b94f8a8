package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/nyakundi-felix/pixelstore/database"
	"github.com/nyakundi-felix/pixelstore/models"
	"github.com/nyakundi-felix/pixelstore/websocket"
	"gorm.io/gorm"
)

// PurchaseItem debits the item price and records the purchase in the
// same transaction as the ledger entry.
func PurchaseItem(userID, itemID uuid.UUID) (*models.Purchase, *models.Transaction, error) {
	var purchase models.Purchase
	var entry *models.Transaction

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var item models.StoreItem
		if err := tx.First(&item, "id = ?", itemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrItemNotFound
			}
			return err
		}
		if !item.IsActive {
			return ErrItemInactive
		}

		e, err := applyDelta(tx, userID, -item.Price, models.TxPurchaseDebit, "purchase: "+item.Name, nil)
		if err != nil {
			return err
		}
		entry = e

		purchase = models.Purchase{
			UserID:        userID,
			StoreItemID:   item.ID,
			PricePaid:     item.Price,
			TransactionID: e.ID,
		}
		return tx.Create(&purchase).Error
	})
	if err != nil {
		return nil, nil, err
	}

	websocket.PublishTransaction(entry)
	return &purchase, entry, nil
}
