package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"vpms_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginFlow(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	email := fmt.Sprintf("login_%d@test.com", time.Now().UnixNano())
	helpers.CreateUser(t, ts.DB, email, "correct-password")

	t.Run("successful login returns token", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
			"email":    email,
			"password": "correct-password",
		})
		require.Equal(t, http.StatusOK, res.StatusCode, body)

		var parsed struct {
			Token  string `json:"apiToken"`
			UserID string `json:"userId"`
		}
		require.NoError(t, json.Unmarshal([]byte(body), &parsed))
		assert.NotEmpty(t, parsed.Token)
		assert.NotEmpty(t, parsed.UserID)
	})

	t.Run("wrong password rejected", func(t *testing.T) {
		res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
			"email":    email,
			"password": "wrong",
		})
		assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	})

	t.Run("unknown email rejected", func(t *testing.T) {
		res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
			"email":    "nobody@test.com",
			"password": "x",
		})
		assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	})

	t.Run("missing fields rejected by validation", func(t *testing.T) {
		res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
			"email": email,
		})
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	ts := GetTestServer(t)

	res, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/notices", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/tenants", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}
