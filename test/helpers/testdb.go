package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"vpms_backend/internal/auth"
	"vpms_backend/internal/config"
	"vpms_backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// CreateUser stores a user with the raw password encrypted the way login
// expects.
func CreateUser(t *testing.T, db *gorm.DB, email, password string) *models.User {
	t.Helper()

	encrypted, err := auth.EncryptString(password, config.GetConfig().Encryption.Key)
	if err != nil {
		t.Fatalf("Failed to encrypt test password: %v", err)
	}

	user := &models.User{
		BaseModel: models.BaseModel{ID: uuid.NewString()},
		Email:     email,
		Password:  encrypted,
		IsValid:   true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Failed to create test user %s: %v", email, err)
	}
	return user
}

// CreateAndLoginManager creates a managing user and logs in through the API.
func CreateAndLoginManager(t *testing.T, ts *TestServer, db *gorm.DB) (string, *models.User) {
	t.Helper()

	email := fmt.Sprintf("manager_%d@test.com", time.Now().UnixNano())
	user := CreateUser(t, db, email, "password123")

	loginBody := map[string]interface{}{
		"email":    email,
		"password": "password123",
	}

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", loginBody)
	assert.Equal(t, http.StatusOK, res.StatusCode, "Login should succeed. Response: "+bodyStr)

	var loginResponse struct {
		Token  string `json:"apiToken"`
		UserID string `json:"userId"`
	}
	err := json.Unmarshal([]byte(bodyStr), &loginResponse)
	assert.NoError(t, err, "Failed to parse login response")
	assert.NotEmpty(t, loginResponse.Token, "Token should not be empty")

	return loginResponse.Token, user
}

// CreateTenant adds one roster entry for a managing user.
func CreateTenant(t *testing.T, db *gorm.DB, ownerID string, category models.TenantCategory, role, deviceToken string) *models.Tenant {
	t.Helper()

	tenant := &models.Tenant{
		BaseModel:   models.BaseModel{ID: uuid.NewString()},
		UserID:      ownerID,
		Name:        "Tenant " + role,
		Category:    category,
		Role:        role,
		DeviceToken: deviceToken,
	}
	if err := db.Create(tenant).Error; err != nil {
		t.Fatalf("Failed to create test tenant: %v", err)
	}
	return tenant
}
