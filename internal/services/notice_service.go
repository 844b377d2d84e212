package services

import (
	"encoding/json"

	"vpms_backend/internal/models"
	"vpms_backend/internal/repositories"
	"vpms_backend/internal/repositories/query"
	"vpms_backend/internal/services/dto"
	"vpms_backend/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type NoticeService interface {
	GetNotice(db *gorm.DB, ownerID, id string, fields []string) (*dto.NoticeResponse, error)
	ListNotices(db *gorm.DB, ownerID string, criteria dto.NoticeListCriteria) (*dto.NoticeListResponse, error)
	CreateNotice(db *gorm.DB, ownerID string, req *dto.CreateNoticeRequest) (*dto.NoticeResponse, error)
	UpdateNotice(db *gorm.DB, id string, req *dto.UpdateNoticeRequest) error
	DeleteNotice(db *gorm.DB, id string) error
}

type noticeService struct {
	noticeRepo repositories.NoticeRepository
	userRepo   repositories.UserRepository
}

func NewNoticeService(noticeRepo repositories.NoticeRepository, userRepo repositories.UserRepository) NoticeService {
	return &noticeService{
		noticeRepo: noticeRepo,
		userRepo:   userRepo,
	}
}

func (s *noticeService) GetNotice(db *gorm.DB, ownerID, id string, fields []string) (*dto.NoticeResponse, error) {
	notice, err := s.noticeRepo.GetByID(db, ownerID, id, fields)
	if err != nil {
		return nil, translateNoticeError(err, "get notice")
	}
	return buildNoticeResponse(notice)
}

func (s *noticeService) ListNotices(db *gorm.DB, ownerID string, criteria dto.NoticeListCriteria) (*dto.NoticeListResponse, error) {
	notices, err := s.noticeRepo.GetAll(db, ownerID, criteria.Filters, criteria.Fields, criteria.Sorts, criteria.Page, criteria.PageSize)
	if err != nil {
		return nil, translateNoticeError(err, "list notices")
	}

	response := &dto.NoticeListResponse{
		Notices:  make([]dto.NoticeResponse, 0, len(notices)),
		Page:     criteria.Page,
		PageSize: criteria.PageSize,
	}
	for i := range notices {
		item, err := buildNoticeResponse(&notices[i])
		if err != nil {
			return nil, err
		}
		response.Notices = append(response.Notices, *item)
	}
	return response, nil
}

func (s *noticeService) CreateNotice(db *gorm.DB, ownerID string, req *dto.CreateNoticeRequest) (*dto.NoticeResponse, error) {
	if req == nil {
		return nil, apperrors.ErrMissingParameter("payload")
	}
	if ownerID == "" {
		return nil, apperrors.ErrMissingParameter("userId")
	}
	if req.Title == "" {
		return nil, apperrors.ErrMissingParameter("title")
	}
	if req.IssueDate == "" {
		return nil, apperrors.ErrMissingParameter("issueDate")
	}
	if req.FolderID == "" {
		return nil, apperrors.ErrMissingParameter("folderId")
	}
	if req.IsNotifySent == nil {
		return nil, apperrors.ErrMissingParameter("isNotifySent")
	}
	if *req.IsNotifySent != 0 && *req.IsNotifySent != 1 {
		return nil, apperrors.NewBadRequestError("isNotifySent must be 0 or 1")
	}

	notice := &models.Notice{
		UserID:       ownerID,
		Title:        req.Title,
		IssueDate:    req.IssueDate,
		FolderID:     req.FolderID,
		IsNotifySent: *req.IsNotifySent,
		PDF:          req.PDF,
	}
	if req.Audiences != nil {
		raw, err := json.Marshal(req.Audiences)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		notice.Audiences = datatypes.JSON(raw)
	}

	if err := s.noticeRepo.Create(db, notice); err != nil {
		return nil, translateNoticeError(err, "create notice")
	}
	return buildNoticeResponse(notice)
}

func (s *noticeService) UpdateNotice(db *gorm.DB, id string, req *dto.UpdateNoticeRequest) error {
	if req == nil {
		return apperrors.ErrMissingParameter("payload")
	}

	payload, err := req.ColumnPayload()
	if err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.noticeRepo.UpdateByID(db, id, payload); err != nil {
		return translateNoticeError(err, "update notice")
	}
	return nil
}

func (s *noticeService) DeleteNotice(db *gorm.DB, id string) error {
	if err := s.noticeRepo.DeleteByID(db, id); err != nil {
		return translateNoticeError(err, "delete notice")
	}
	return nil
}

// translateNoticeError maps repository errors onto the application error
// taxonomy. Anything unrecognized is a store failure.
func translateNoticeError(err error, operation string) error {
	switch {
	case apperrors.Is(err, repositories.ErrNoticeNotFound):
		return apperrors.ErrNotFound(err, "Notice")
	case apperrors.Is(err, repositories.ErrOwnerNotFound):
		return apperrors.ErrNotFound(err, "User")
	case apperrors.Is(err, repositories.ErrMissingID):
		return apperrors.ErrMissingParameter("id")
	case apperrors.Is(err, repositories.ErrMissingOwner):
		return apperrors.ErrMissingParameter("userId")
	case apperrors.Is(err, repositories.ErrMissingPayload):
		return apperrors.ErrMissingParameter("payload")
	case apperrors.Is(err, query.ErrBadExpression):
		return apperrors.NewBadRequestError(err.Error())
	default:
		return apperrors.ErrStoreFailed(err, operation)
	}
}

func buildNoticeResponse(notice *models.Notice) (*dto.NoticeResponse, error) {
	response := &dto.NoticeResponse{
		ID:           notice.ID,
		UserID:       notice.UserID,
		DateCreated:  notice.CreatedAt,
		Title:        notice.Title,
		IssueDate:    notice.IssueDate,
		FolderID:     notice.FolderID,
		IsNotifySent: notice.IsNotifySent,
		PDF:          notice.PDF,
	}
	if len(notice.Audiences) > 0 {
		spec, err := models.ParseAudienceSpec(notice.Audiences)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		response.Audiences = spec
	}
	return response, nil
}
