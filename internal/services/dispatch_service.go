package services

import (
	"context"

	"vpms_backend/internal/logger"
	"vpms_backend/internal/models"
	"vpms_backend/internal/push"
	"vpms_backend/internal/repositories"
	"vpms_backend/internal/services/dto"
	"vpms_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type DispatchService interface {
	// Dispatch loads an owner's notice and fans it out to the matching
	// tenant devices.
	Dispatch(ctx context.Context, db *gorm.DB, ownerID, noticeID string) (*dto.DispatchReport, error)

	// SendNoticeToAudiences runs the fan-out for an already loaded notice.
	SendNoticeToAudiences(ctx context.Context, db *gorm.DB, notice *models.Notice) (*dto.DispatchReport, error)
}

type dispatchService struct {
	noticeRepo repositories.NoticeRepository
	tenantRepo repositories.TenantRepository
	sender     push.Sender
}

func NewDispatchService(noticeRepo repositories.NoticeRepository, tenantRepo repositories.TenantRepository, sender push.Sender) DispatchService {
	return &dispatchService{
		noticeRepo: noticeRepo,
		tenantRepo: tenantRepo,
		sender:     sender,
	}
}

func (s *dispatchService) Dispatch(ctx context.Context, db *gorm.DB, ownerID, noticeID string) (*dto.DispatchReport, error) {
	notice, err := s.noticeRepo.GetByID(db, ownerID, noticeID, nil)
	if err != nil {
		return nil, translateNoticeError(err, "load notice for dispatch")
	}
	return s.SendNoticeToAudiences(ctx, db, notice)
}

func (s *dispatchService) SendNoticeToAudiences(ctx context.Context, db *gorm.DB, notice *models.Notice) (*dto.DispatchReport, error) {
	if notice.UserID == "" {
		return nil, apperrors.ErrPreconditionFailed("dispatch", "Notice has no owning user")
	}
	if len(notice.Audiences) == 0 {
		return nil, apperrors.ErrPreconditionFailed("dispatch", "Notice audiences are not defined")
	}
	spec, err := models.ParseAudienceSpec(notice.Audiences)
	if err != nil {
		return nil, apperrors.ErrPreconditionFailed("dispatch", "Notice audiences are malformed")
	}

	tenants, err := s.tenantRepo.FindByOwner(db, notice.UserID)
	if err != nil {
		return nil, apperrors.ErrStoreFailed(err, "load tenant roster")
	}

	report := &dto.DispatchReport{NoticeID: notice.ID}

	// Ordered, duplicates permitted: the token list mirrors the roster
	// order of the matching tenants.
	var deviceTokens []string
	for i := range tenants {
		tenant := &tenants[i]
		report.TenantsScanned++
		if !spec.Matches(tenant) {
			continue
		}
		if tenant.DeviceToken == "" {
			continue
		}
		deviceTokens = append(deviceTokens, tenant.DeviceToken)
	}
	report.TokensMatched = len(deviceTokens)

	if len(deviceTokens) == 0 {
		return report, nil
	}

	sendReport, err := s.sender.Send(ctx, deviceTokens, push.Notification{
		Title: notice.Title,
		Data: map[string]string{
			"noticeId": notice.ID,
			"folderId": notice.FolderID,
		},
	})
	if err != nil {
		// A send failure does not fail the dispatch; it is surfaced in
		// the report and logged for the operator.
		logger.CtxWithError(ctx, "push send failed", err, "notice_id", notice.ID, "tokens", len(deviceTokens))
		report.SendError = err.Error()
		return report, nil
	}

	report.Sent = true
	report.SendSuccess = sendReport.Success
	report.SendFailure = sendReport.Failure

	if err := s.noticeRepo.UpdateByID(db, notice.ID, map[string]interface{}{"is_notify_sent": 1}); err != nil {
		logger.CtxWithError(ctx, "failed to mark notice as notified", err, "notice_id", notice.ID)
	}

	return report, nil
}
