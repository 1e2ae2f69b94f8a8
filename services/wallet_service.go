package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/nyakundi-felix/pixelstore/database"
	"github.com/nyakundi-felix/pixelstore/models"
	"github.com/nyakundi-felix/pixelstore/websocket"
	"gorm.io/gorm"
)

// CreditBalance adds coins to a user's balance and writes the matching
// ledger entry in one transaction. Returns the created ledger entry.
func CreditBalance(userID uuid.UUID, amount int64, txType, reason string) (*models.Transaction, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	var entry *models.Transaction
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		e, err := applyDelta(tx, userID, amount, txType, reason, nil)
		if err != nil {
			return err
		}
		entry = e
		return nil
	})
	if err != nil {
		return nil, err
	}

	websocket.PublishTransaction(entry)
	return entry, nil
}

// DebitBalance removes coins from a user's balance. The sufficiency
// check happens inside the guarded update, so two concurrent debits
// can never both drain the same coins.
func DebitBalance(userID uuid.UUID, amount int64, txType, reason string) (*models.Transaction, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	var entry *models.Transaction
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		e, err := applyDelta(tx, userID, -amount, txType, reason, nil)
		if err != nil {
			return err
		}
		entry = e
		return nil
	})
	if err != nil {
		return nil, err
	}

	websocket.PublishTransaction(entry)
	return entry, nil
}

func GetBalance(userID uuid.UUID) (int64, error) {
	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrUserNotFound
		}
		return 0, err
	}
	return user.Balance, nil
}

func GetHistory(userID uuid.UUID, limit, offset int) ([]models.Transaction, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	var entries []models.Transaction
	err := database.DB.
		Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&entries).Error
	return entries, err
}

// applyDelta is the single place a balance changes. The delta lands
// through a conditional UPDATE so the sufficiency and active-account
// guards are enforced by the database, not by a stale read. Zero rows
// affected means a guard failed; the row is reloaded to tell which.
func applyDelta(tx *gorm.DB, userID uuid.UUID, delta int64, txType, reason string, linkedUserID *uuid.UUID) (*models.Transaction, error) {
	query := tx.Model(&models.User{}).
		Where("id = ? AND is_active = ? AND is_blocked = ?", userID, true, false)
	if delta < 0 {
		query = query.Where("balance >= ?", -delta)
	}

	result := query.UpdateColumn("balance", gorm.Expr("balance + ?", delta))
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, classifyRejection(tx, userID)
	}

	var user models.User
	if err := tx.First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}

	entry := models.Transaction{
		UserID:          userID,
		Type:            txType,
		Amount:          delta,
		Status:          models.TxStatusCompleted,
		PreviousBalance: user.Balance - delta,
		NewBalance:      user.Balance,
		Reason:          reason,
		LinkedUserID:    linkedUserID,
	}
	if err := tx.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func classifyRejection(tx *gorm.DB, userID uuid.UUID) error {
	var user models.User
	if err := tx.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if !user.CanTransact() {
		return ErrUserInactive
	}
	return ErrInsufficientFunds
}
