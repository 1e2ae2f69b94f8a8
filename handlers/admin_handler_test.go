package handlers_test

import (
	"net/http"
	"testing"

	"github.com/nyakundi-felix/pixelstore/database"
	"github.com/nyakundi-felix/pixelstore/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminBalanceAdjustments(t *testing.T) {
	app := setupApp(t)
	admin := createUser(t, "admin", "ADMIN001", 0)
	user := createUser(t, "member", "MEMBER01", 0)
	token := authToken(t, admin)

	resp := doRequest(t, app, "POST", "/api/v1/admin/wallet/"+user.ID.String()+"/credit", token, map[string]interface{}{
		"amount": 100,
		"reason": "promo make-good",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(100), decodeBody(t, resp)["balance"])

	resp = doRequest(t, app, "POST", "/api/v1/admin/wallet/"+user.ID.String()+"/debit", token, map[string]interface{}{
		"amount": 40,
		"reason": "promo clawback",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(60), decodeBody(t, resp)["balance"])

	// the ledger saw both adjustments
	var count int64
	require.NoError(t, database.DB.Model(&models.Transaction{}).
		Where("user_id = ? AND type = ?", user.ID, models.TxAdminAdjustment).
		Count(&count).Error)
	assert.Equal(t, int64(2), count)

	// over-debit is a validation failure
	resp = doRequest(t, app, "POST", "/api/v1/admin/wallet/"+user.ID.String()+"/debit", token, map[string]interface{}{
		"amount": 1000,
		"reason": "too much",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAdminEndpointsRejectNonAdmins(t *testing.T) {
	app := setupApp(t)
	member := createUser(t, "member", "MEMBER02", 0)
	token := authToken(t, member)

	resp := doRequest(t, app, "POST", "/api/v1/admin/wallet/"+member.ID.String()+"/credit", token, map[string]interface{}{
		"amount": 100,
		"reason": "self serve",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = doRequest(t, app, "GET", "/api/v1/admin/users", token, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestBlockedUserCannotBeCredited(t *testing.T) {
	app := setupApp(t)
	admin := createUser(t, "admin", "ADMIN002", 0)
	user := createUser(t, "member", "MEMBER03", 20)
	token := authToken(t, admin)

	resp := doRequest(t, app, "POST", "/api/v1/admin/users/"+user.ID.String()+"/block", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doRequest(t, app, "POST", "/api/v1/admin/wallet/"+user.ID.String()+"/credit", token, map[string]interface{}{
		"amount": 10,
		"reason": "should fail",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = doRequest(t, app, "POST", "/api/v1/admin/users/"+user.ID.String()+"/unblock", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doRequest(t, app, "POST", "/api/v1/admin/wallet/"+user.ID.String()+"/credit", token, map[string]interface{}{
		"amount": 10,
		"reason": "works again",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAdminCreditUnknownUser(t *testing.T) {
	app := setupApp(t)
	admin := createUser(t, "admin", "ADMIN003", 0)

	resp := doRequest(t, app, "POST", "/api/v1/admin/wallet/6ba7b810-9dad-11d1-80b4-00c04fd430c8/credit", authToken(t, admin), map[string]interface{}{
		"amount": 10,
		"reason": "ghost",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPlatformStatsEndpoint(t *testing.T) {
	app := setupApp(t)
	admin := createUser(t, "admin", "ADMIN004", 0)
	createUser(t, "member", "MEMBER04", 30)

	resp := doRequest(t, app, "GET", "/api/v1/analytics/stats", authToken(t, admin), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, float64(2), body["total_users"])
}
