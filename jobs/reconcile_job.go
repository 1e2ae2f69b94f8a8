package jobs

import (
	"log"

	"github.com/google/uuid"
	"github.com/nyakundi-felix/pixelstore/database"
	"github.com/nyakundi-felix/pixelstore/models"
)

type LedgerMismatch struct {
	UserID      uuid.UUID
	Balance     int64
	LedgerTotal int64
}

// FindLedgerMismatches compares every user's balance against the sum
// of their completed ledger entries. A non-empty result means a write
// slipped past the transactional path and needs operator attention.
func FindLedgerMismatches() ([]LedgerMismatch, error) {
	type row struct {
		UserID      uuid.UUID
		Balance     int64
		LedgerTotal int64
	}

	var rows []row
	err := database.DB.Model(&models.User{}).
		Select("users.id as user_id, users.balance as balance, COALESCE(SUM(transactions.amount), 0) as ledger_total").
		Joins("LEFT JOIN transactions ON transactions.user_id = users.id AND transactions.status = ?", models.TxStatusCompleted).
		Group("users.id, users.balance").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	var mismatches []LedgerMismatch
	for _, r := range rows {
		if r.Balance != r.LedgerTotal {
			mismatches = append(mismatches, LedgerMismatch{UserID: r.UserID, Balance: r.Balance, LedgerTotal: r.LedgerTotal})
		}
	}
	return mismatches, nil
}

func ReconcileLedgers() {
	log.Println("Running job: ReconcileLedgers...")

	mismatches, err := FindLedgerMismatches()
	if err != nil {
		log.Printf("🔥 Ledger reconciliation failed: %v", err)
		return
	}

	if len(mismatches) == 0 {
		log.Println("Ledger reconciliation complete, no mismatches found.")
		return
	}

	for _, m := range mismatches {
		log.Printf("⚠️ Ledger mismatch for user %s: balance=%d ledger=%d", m.UserID, m.Balance, m.LedgerTotal)
	}
	log.Printf("Ledger reconciliation complete, %d mismatch(es) found.", len(mismatches))
}
