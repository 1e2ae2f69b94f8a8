package services

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nyakundi-felix/pixelstore/database"
	"github.com/nyakundi-felix/pixelstore/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreditAndDebitKeepLedgerConsistent(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "WALLET01", 0)

	entry, err := CreditBalance(user.ID, 100, models.TxRewardCredit, "welcome_reward")
	require.NoError(t, err)
	assert.Equal(t, int64(100), entry.NewBalance)
	assert.Equal(t, int64(0), entry.PreviousBalance)

	entry, err = DebitBalance(user.ID, 30, models.TxRewardDebit, "feature_unlock")
	require.NoError(t, err)
	assert.Equal(t, int64(70), entry.NewBalance)
	assert.Equal(t, int64(100), entry.PreviousBalance)

	fresh := reloadUser(t, user)
	assert.Equal(t, int64(70), fresh.Balance)

	// every ledger row satisfies new = previous + amount, and the
	// amounts sum back to the balance
	var total int64
	for _, tx := range userTransactions(t, user) {
		assert.Equal(t, tx.NewBalance, tx.PreviousBalance+tx.Amount)
		assert.Equal(t, models.TxStatusCompleted, tx.Status)
		total += tx.Amount
	}
	assert.Equal(t, fresh.Balance, total)
}

func TestCreditRejectsNonPositiveAmounts(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "WALLET02", 10)

	_, err := CreditBalance(user.ID, 0, models.TxRewardCredit, "nothing")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = CreditBalance(user.ID, -5, models.TxRewardCredit, "negative")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = DebitBalance(user.ID, 0, models.TxRewardDebit, "nothing")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	assert.Equal(t, int64(10), reloadUser(t, user).Balance)
	assert.Empty(t, userTransactions(t, user))
}

func TestDebitInsufficientFunds(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "WALLET03", 10)

	_, err := DebitBalance(user.ID, 25, models.TxRewardDebit, "too_much")
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	assert.Equal(t, int64(10), reloadUser(t, user).Balance)
	assert.Empty(t, userTransactions(t, user))
}

func TestMutationsRejectedForUnknownAndBlockedUsers(t *testing.T) {
	setupTestDB(t)

	_, err := CreditBalance(uuid.New(), 10, models.TxRewardCredit, "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)

	blocked := createTestUser(t, "WALLET04", 50)
	require.NoError(t, database.DB.Model(&blocked).Update("is_blocked", true).Error)

	_, err = CreditBalance(blocked.ID, 10, models.TxRewardCredit, "blocked")
	assert.ErrorIs(t, err, ErrUserInactive)

	_, err = DebitBalance(blocked.ID, 10, models.TxRewardDebit, "blocked")
	assert.ErrorIs(t, err, ErrUserInactive)

	assert.Equal(t, int64(50), reloadUser(t, blocked).Balance)
}

func TestConcurrentDebitsNeverOverdraw(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "WALLET05", 40)

	var wg sync.WaitGroup
	var mu sync.Mutex
	successes := 0

	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := DebitBalance(user.ID, 40, models.TxRewardDebit, "race"); err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, successes, 1)
	fresh := reloadUser(t, user)
	assert.Equal(t, int64(40-40*int64(successes)), fresh.Balance)
	assert.GreaterOrEqual(t, fresh.Balance, int64(0))
}

func TestGetBalance(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "WALLET06", 123)

	balance, err := GetBalance(user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(123), balance)

	_, err = GetBalance(uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetHistoryIsPaginatedNewestFirst(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "WALLET07", 0)

	amounts := []int64{10, 20, 30, 40, 50}
	for _, amount := range amounts {
		_, err := CreditBalance(user.ID, amount, models.TxRewardCredit, "seed")
		require.NoError(t, err)
		time.Sleep(2 * time.Millisecond)
	}

	page, err := GetHistory(user.ID, 2, 0)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, int64(50), page[0].Amount)
	assert.Equal(t, int64(40), page[1].Amount)

	page, err = GetHistory(user.ID, 2, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, int64(30), page[0].Amount)
	assert.Equal(t, int64(20), page[1].Amount)

	page, err = GetHistory(user.ID, 2, 4)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, int64(10), page[0].Amount)
}
