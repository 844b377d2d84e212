package repositories

import (
	"vpms_backend/internal/models"
	"vpms_backend/internal/repositories/query"

	"gorm.io/gorm"
)

// tenantQueryFields is the whitelist for tenant listing expressions.
var tenantQueryFields = map[string]bool{
	"name":       true,
	"category":   true,
	"role":       true,
	"created_at": true,
}

// TenantRepository reads the tenant roster. The roster is maintained by
// another system; this service never writes to it.
type TenantRepository interface {
	// FindByOwner loads the full roster for a managing user, including
	// tenants without a registered device token.
	FindByOwner(db *gorm.DB, ownerID string) ([]models.Tenant, error)
	List(db *gorm.DB, ownerID string, filters []query.Filter, sorts []query.Sort, pageNo, pageSize int) ([]models.Tenant, error)
}

type TenantRepositoryImpl struct{}

func NewTenantRepository() TenantRepository {
	return &TenantRepositoryImpl{}
}

func (r *TenantRepositoryImpl) FindByOwner(db *gorm.DB, ownerID string) ([]models.Tenant, error) {
	if ownerID == "" {
		return nil, ErrMissingOwner
	}
	tenants := []models.Tenant{}
	err := db.Where("user_id = ?", ownerID).Order("created_at").Find(&tenants).Error
	return tenants, err
}

func (r *TenantRepositoryImpl) List(db *gorm.DB, ownerID string, filters []query.Filter, sorts []query.Sort, pageNo, pageSize int) ([]models.Tenant, error) {
	if ownerID == "" {
		return nil, ErrMissingOwner
	}

	tx := db.Model(&models.Tenant{}).Where("user_id = ?", ownerID)

	tx, err := query.ApplyFilters(tx, filters, tenantQueryFields)
	if err != nil {
		return nil, err
	}
	tx, err = query.ApplySorts(tx, sorts, tenantQueryFields)
	if err != nil {
		return nil, err
	}

	if pageSize > 0 {
		tx = tx.Offset(pageNo * pageSize).Limit(pageSize)
	}

	tenants := []models.Tenant{}
	if err := tx.Find(&tenants).Error; err != nil {
		return nil, err
	}
	return tenants, nil
}
