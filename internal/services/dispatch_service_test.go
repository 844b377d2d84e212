package services

import (
	"context"
	"errors"
	"testing"

	"vpms_backend/internal/models"
	"vpms_backend/internal/push"
	"vpms_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func dispatchFixture(audiences string, tenants ...models.Tenant) (*dispatchService, *fakeNoticeRepo, *fakeSender, *models.Notice) {
	notice := &models.Notice{
		BaseModel: models.BaseModel{ID: "n-1"},
		UserID:    "owner-1",
		Title:     "Water outage",
		FolderID:  "f-1",
	}
	if audiences != "" {
		notice.Audiences = datatypes.JSON(audiences)
	}
	noticeRepo := newFakeNoticeRepo(notice)
	tenantRepo := &fakeTenantRepo{tenants: tenants}
	sender := &fakeSender{}
	svc := NewDispatchService(noticeRepo, tenantRepo, sender).(*dispatchService)
	return svc, noticeRepo, sender, notice
}

func TestDispatchEmptyRoster(t *testing.T) {
	svc, _, sender, notice := dispatchFixture(`{"residence":{"owner":true}}`)

	report, err := svc.SendNoticeToAudiences(context.Background(), nil, notice)
	require.NoError(t, err)

	assert.Equal(t, 0, report.TenantsScanned)
	assert.Equal(t, 0, report.TokensMatched)
	assert.False(t, report.Sent)
	assert.Empty(t, sender.calls, "no send call for an empty roster")
}

func TestDispatchCollectsTokensInRosterOrder(t *testing.T) {
	svc, _, sender, notice := dispatchFixture(`{"residence":{"owner":true},"shop":{"staff":true}}`,
		models.Tenant{UserID: "owner-1", Category: models.TenantCategoryResidence, Role: "owner", DeviceToken: "T1"},
		models.Tenant{UserID: "owner-1", Category: models.TenantCategoryResidence, Role: "tenant", DeviceToken: "T2"},
		models.Tenant{UserID: "owner-1", Category: models.TenantCategoryShop, Role: "staff", DeviceToken: "T3"},
		models.Tenant{UserID: "owner-1", Category: models.TenantCategoryShop, Role: "staff", DeviceToken: ""},
		models.Tenant{UserID: "owner-1", Category: models.TenantCategoryShop, Role: "staff", DeviceToken: "T1"},
	)

	report, err := svc.SendNoticeToAudiences(context.Background(), nil, notice)
	require.NoError(t, err)

	assert.Equal(t, 5, report.TenantsScanned)
	assert.Equal(t, 3, report.TokensMatched)
	assert.True(t, report.Sent)
	require.Len(t, sender.calls, 1)
	// Roster order, duplicates permitted, empty tokens skipped.
	assert.Equal(t, []string{"T1", "T3", "T1"}, sender.calls[0])
}

func TestDispatchMarksNoticeSent(t *testing.T) {
	svc, noticeRepo, _, notice := dispatchFixture(`{"residence":{"owner":true}}`,
		models.Tenant{UserID: "owner-1", Category: models.TenantCategoryResidence, Role: "owner", DeviceToken: "T1"},
	)

	report, err := svc.SendNoticeToAudiences(context.Background(), nil, notice)
	require.NoError(t, err)
	assert.True(t, report.Sent)

	require.Len(t, noticeRepo.updates, 1)
	assert.Equal(t, map[string]interface{}{"is_notify_sent": 1}, noticeRepo.updates[0])
}

func TestDispatchSendFailureIsReportedNotRaised(t *testing.T) {
	svc, noticeRepo, sender, notice := dispatchFixture(`{"residence":{"owner":true}}`,
		models.Tenant{UserID: "owner-1", Category: models.TenantCategoryResidence, Role: "owner", DeviceToken: "T1"},
	)
	sender.err = errors.New("fcm unreachable")

	report, err := svc.SendNoticeToAudiences(context.Background(), nil, notice)
	require.NoError(t, err)

	assert.False(t, report.Sent)
	assert.Equal(t, "fcm unreachable", report.SendError)
	assert.Empty(t, noticeRepo.updates, "failed send must not mark the notice")
}

func TestDispatchPreconditions(t *testing.T) {
	t.Run("no owner", func(t *testing.T) {
		svc, _, _, _ := dispatchFixture(`{"residence":{"owner":true}}`)
		notice := &models.Notice{BaseModel: models.BaseModel{ID: "n-2"}}

		_, err := svc.SendNoticeToAudiences(context.Background(), nil, notice)
		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.CodePreconditionFailed, appErr.Code)
	})

	t.Run("no audiences", func(t *testing.T) {
		svc, _, _, notice := dispatchFixture("")

		_, err := svc.SendNoticeToAudiences(context.Background(), nil, notice)
		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.CodePreconditionFailed, appErr.Code)
	})

	t.Run("malformed audiences", func(t *testing.T) {
		svc, _, _, notice := dispatchFixture(`{"residence":`)

		_, err := svc.SendNoticeToAudiences(context.Background(), nil, notice)
		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.CodePreconditionFailed, appErr.Code)
	})
}

func TestDispatchByIDUnknownNotice(t *testing.T) {
	svc, _, _, _ := dispatchFixture(`{"residence":{"owner":true}}`)

	_, err := svc.Dispatch(context.Background(), nil, "owner-1", "missing")
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestDispatchPartialSendCounts(t *testing.T) {
	svc, _, sender, notice := dispatchFixture(`{"carpark":{"owner":true}}`,
		models.Tenant{UserID: "owner-1", Category: models.TenantCategoryCarpark, Role: "owner", DeviceToken: "A"},
		models.Tenant{UserID: "owner-1", Category: models.TenantCategoryCarpark, Role: "owner", DeviceToken: "B"},
	)
	sender.report = &push.Report{Requested: 2, Success: 1, Failure: 1}

	report, err := svc.SendNoticeToAudiences(context.Background(), nil, notice)
	require.NoError(t, err)

	assert.True(t, report.Sent)
	assert.Equal(t, 1, report.SendSuccess)
	assert.Equal(t, 1, report.SendFailure)
}
