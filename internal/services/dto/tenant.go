package dto

import (
	"time"

	"vpms_backend/internal/models"
	"vpms_backend/internal/repositories/query"
)

type TenantListCriteria struct {
	Filters  []query.Filter
	Sorts    []query.Sort
	Page     int
	PageSize int
}

// TenantResponse exposes the roster entry without its device token.
type TenantResponse struct {
	ID        string                `json:"id"`
	Name      string                `json:"name"`
	Category  models.TenantCategory `json:"category"`
	Role      string                `json:"role"`
	HasDevice bool                  `json:"hasDevice"`
	CreatedAt time.Time             `json:"createdAt"`
}

type TenantListResponse struct {
	Tenants  []TenantResponse `json:"tenants"`
	Page     int              `json:"page"`
	PageSize int              `json:"pageSize"`
}
