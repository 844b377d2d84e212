package handlers

import (
	"net/http"

	"vpms_backend/internal/repositories/query"
	"vpms_backend/internal/services"
	"vpms_backend/internal/services/dto"
	"vpms_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type TenantHandler struct {
	*BaseHandler
	tenantService services.TenantService
}

func NewTenantHandler(base *BaseHandler, tenantService services.TenantService) *TenantHandler {
	return &TenantHandler{
		BaseHandler:   base,
		tenantService: tenantService,
	}
}

func (h *TenantHandler) List(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	filters, err := query.ParseFilters(c.QueryArray("filter"))
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError(err.Error()))
		return
	}

	page, pageSize := ParsePagination(c)
	criteria := dto.TenantListCriteria{
		Filters:  filters,
		Sorts:    query.ParseSorts(c.Query("sort")),
		Page:     page,
		PageSize: pageSize,
	}

	db := h.GetDB(c)

	response, err := h.tenantService.ListTenants(db, userID, criteria)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
