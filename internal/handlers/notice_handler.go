package handlers

import (
	"net/http"
	"strings"

	"vpms_backend/internal/repositories/query"
	"vpms_backend/internal/services"
	"vpms_backend/internal/services/dto"
	"vpms_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type NoticeHandler struct {
	*BaseHandler
	noticeService   services.NoticeService
	dispatchService services.DispatchService
}

func NewNoticeHandler(base *BaseHandler, noticeService services.NoticeService, dispatchService services.DispatchService) *NoticeHandler {
	return &NoticeHandler{
		BaseHandler:     base,
		noticeService:   noticeService,
		dispatchService: dispatchService,
	}
}

// parseFields splits the comma-separated "fields" selection.
func parseFields(c *gin.Context) []string {
	raw := c.Query("fields")
	if raw == "" {
		return nil
	}
	var fields []string
	for _, f := range strings.Split(raw, ",") {
		f = strings.TrimSpace(f)
		if f != "" {
			fields = append(fields, f)
		}
	}
	return fields
}

func (h *NoticeHandler) List(c *gin.Context) {
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
	criteria := dto.NoticeListCriteria{
		Filters:  filters,
		Sorts:    query.ParseSorts(c.Query("sort")),
		Fields:   parseFields(c),
		Page:     page,
		PageSize: pageSize,
	}

	db := h.GetDB(c)

	response, err := h.noticeService.ListNotices(db, userID, criteria)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *NoticeHandler) Get(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	response, err := h.noticeService.GetNotice(db, userID, c.Param("noticeId"), parseFields(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *NoticeHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateNoticeRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	response, err := h.noticeService.CreateNotice(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *NoticeHandler) Update(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateNoticeRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)
	noticeID := c.Param("noticeId")

	// The update is scoped to the caller: the record must belong to them.
	if _, err := h.noticeService.GetNotice(db, userID, noticeID, []string{"id"}); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.noticeService.UpdateNotice(db, noticeID, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notice updated"})
}

func (h *NoticeHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)
	noticeID := c.Param("noticeId")

	if _, err := h.noticeService.GetNotice(db, userID, noticeID, []string{"id"}); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.noticeService.DeleteNotice(db, noticeID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notice deleted"})
}

func (h *NoticeHandler) Dispatch(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	report, err := h.dispatchService.Dispatch(c.Request.Context(), db, userID, c.Param("noticeId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}
