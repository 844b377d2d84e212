package dto

import (
	"encoding/json"
	"time"

	"vpms_backend/internal/models"
	"vpms_backend/internal/repositories/query"
)

// CreateNoticeRequest carries the creation payload. Required fields are
// checked explicitly in the service so a missing one reports the exact
// parameter name.
type CreateNoticeRequest struct {
	Title        string               `json:"title"`
	IssueDate    string               `json:"issueDate" validate:"omitempty,is-issue-date"`
	Audiences    *models.AudienceSpec `json:"audiences"`
	FolderID     string               `json:"folderId"`
	IsNotifySent *int                 `json:"isNotifySent"`
	PDF          string               `json:"pdf"`
}

// UpdateNoticeRequest is the partial-update payload. Nil fields are left
// untouched; JSON keys outside this shape fall away at decode time.
type UpdateNoticeRequest struct {
	Title        *string              `json:"title"`
	IssueDate    *string              `json:"issueDate" validate:"omitempty,is-issue-date"`
	Audiences    *models.AudienceSpec `json:"audiences"`
	FolderID     *string              `json:"folderId"`
	IsNotifySent *int                 `json:"isNotifySent"`
	PDF          *string              `json:"pdf"`
}

// ColumnPayload converts the request into a column -> value map for the
// partial-update builder.
func (r *UpdateNoticeRequest) ColumnPayload() (map[string]interface{}, error) {
	payload := make(map[string]interface{})
	if r.Title != nil {
		payload["title"] = *r.Title
	}
	if r.IssueDate != nil {
		payload["issue_date"] = *r.IssueDate
	}
	if r.Audiences != nil {
		raw, err := json.Marshal(r.Audiences)
		if err != nil {
			return nil, err
		}
		payload["audiences"] = raw
	}
	if r.FolderID != nil {
		payload["folder_id"] = *r.FolderID
	}
	if r.IsNotifySent != nil {
		payload["is_notify_sent"] = *r.IsNotifySent
	}
	if r.PDF != nil {
		payload["pdf"] = *r.PDF
	}
	return payload, nil
}

// NoticeListCriteria carries the parsed listing expressions.
type NoticeListCriteria struct {
	Filters  []query.Filter
	Sorts    []query.Sort
	Fields   []string
	Page     int
	PageSize int
}

type NoticeResponse struct {
	ID           string               `json:"id"`
	UserID       string               `json:"userId,omitempty"`
	DateCreated  time.Time            `json:"dateCreated"`
	Title        string               `json:"title"`
	IssueDate    string               `json:"issueDate"`
	Audiences    *models.AudienceSpec `json:"audiences,omitempty"`
	FolderID     string               `json:"folderId"`
	IsNotifySent int                  `json:"isNotifySent"`
	PDF          string               `json:"pdf,omitempty"`
}

type NoticeListResponse struct {
	Notices  []NoticeResponse `json:"notices"`
	Page     int              `json:"page"`
	PageSize int              `json:"pageSize"`
}

// DispatchReport is the result of one notice dispatch. The operation
// succeeds once the roster is processed; a failed send is recorded here
// instead of failing the request.
type DispatchReport struct {
	NoticeID       string `json:"noticeId"`
	TenantsScanned int    `json:"tenantsScanned"`
	TokensMatched  int    `json:"tokensMatched"`
	Sent           bool   `json:"sent"`
	SendSuccess    int    `json:"sendSuccess"`
	SendFailure    int    `json:"sendFailure"`
	SendError      string `json:"sendError,omitempty"`
}
