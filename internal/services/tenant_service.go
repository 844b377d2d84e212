package services

import (
	"vpms_backend/internal/repositories"
	"vpms_backend/internal/repositories/query"
	"vpms_backend/internal/services/dto"
	"vpms_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type TenantService interface {
	ListTenants(db *gorm.DB, ownerID string, criteria dto.TenantListCriteria) (*dto.TenantListResponse, error)
}

type tenantService struct {
	tenantRepo repositories.TenantRepository
}

func NewTenantService(tenantRepo repositories.TenantRepository) TenantService {
	return &tenantService{tenantRepo: tenantRepo}
}

func (s *tenantService) ListTenants(db *gorm.DB, ownerID string, criteria dto.TenantListCriteria) (*dto.TenantListResponse, error) {
	tenants, err := s.tenantRepo.List(db, ownerID, criteria.Filters, criteria.Sorts, criteria.Page, criteria.PageSize)
	if err != nil {
		switch {
		case apperrors.Is(err, repositories.ErrMissingOwner):
			return nil, apperrors.ErrMissingParameter("userId")
		case apperrors.Is(err, query.ErrBadExpression):
			return nil, apperrors.NewBadRequestError(err.Error())
		default:
			return nil, apperrors.ErrStoreFailed(err, "list tenants")
		}
	}

	response := &dto.TenantListResponse{
		Tenants:  make([]dto.TenantResponse, 0, len(tenants)),
		Page:     criteria.Page,
		PageSize: criteria.PageSize,
	}
	for i := range tenants {
		t := &tenants[i]
		response.Tenants = append(response.Tenants, dto.TenantResponse{
			ID:        t.ID,
			Name:      t.Name,
			Category:  t.Category,
			Role:      t.Role,
			HasDevice: t.DeviceToken != "",
			CreatedAt: t.CreatedAt,
		})
	}
	return response, nil
}
