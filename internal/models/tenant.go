package models

// TenantCategory classifies a tenant for audience targeting.
type TenantCategory string

const (
	TenantCategoryResidence TenantCategory = "residence"
	TenantCategoryCarpark   TenantCategory = "carpark"
	TenantCategoryShop      TenantCategory = "shop"
)

// Tenant is an external party eligible to receive notices. This service
// only reads the roster; tenant records are managed elsewhere.
type Tenant struct {
	BaseModel
	UserID   string         `gorm:"not null;index"` // managing user
	Name     string
	Category TenantCategory `gorm:"type:varchar(20);not null"`
	Role     string         `gorm:"not null"`
	// FCM device token; empty when the tenant has no registered device.
	DeviceToken string
}
