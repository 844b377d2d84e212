package repositories

import (
	"errors"
	"fmt"

	"vpms_backend/internal/models"
	"vpms_backend/internal/repositories/query"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrNoticeNotFound = errors.New("notice not found")
	ErrOwnerNotFound  = errors.New("owning user not found")
	ErrMissingID      = errors.New("missing parameter: id")
	ErrMissingOwner   = errors.New("missing parameter: userId")
	ErrMissingPayload = errors.New("missing parameters")
)

// noticeColumn declares one column of the Notices table for the partial
// update builder. The schema is listed statically instead of introspecting
// a fetched record at runtime.
type noticeColumn struct {
	Name      string
	Updatable bool
}

// The owner reference and generated fields are declared non-updatable and
// can never enter an UPDATE set.
var noticeColumns = []noticeColumn{
	{Name: "id", Updatable: false},
	{Name: "user_id", Updatable: false},
	{Name: "created_at", Updatable: false},
	{Name: "title", Updatable: true},
	{Name: "issue_date", Updatable: true},
	{Name: "audiences", Updatable: true},
	{Name: "folder_id", Updatable: true},
	{Name: "is_notify_sent", Updatable: true},
	{Name: "pdf", Updatable: true},
}

// noticeQueryFields is the whitelist for filter/sort/select expressions.
var noticeQueryFields = map[string]bool{
	"id":             true,
	"created_at":     true,
	"title":          true,
	"issue_date":     true,
	"folder_id":      true,
	"is_notify_sent": true,
	"pdf":            true,
}

// BuildNoticeUpdates reduces a column -> value payload to the declared
// updatable columns. It iterates the declared schema, not the payload, so
// unknown payload keys fall away silently and the owner column is
// untouchable even when supplied.
func BuildNoticeUpdates(payload map[string]interface{}) map[string]interface{} {
	updates := make(map[string]interface{})
	for _, col := range noticeColumns {
		if !col.Updatable {
			continue
		}
		if value, ok := payload[col.Name]; ok && value != nil {
			updates[col.Name] = value
		}
	}
	return updates
}

type NoticeRepository interface {
	GetByID(db *gorm.DB, ownerID, id string, fields []string) (*models.Notice, error)
	GetAll(db *gorm.DB, ownerID string, filters []query.Filter, fields []string, sorts []query.Sort, pageNo, pageSize int) ([]models.Notice, error)
	Create(db *gorm.DB, notice *models.Notice) error
	UpdateByID(db *gorm.DB, id string, payload map[string]interface{}) error
	DeleteByID(db *gorm.DB, id string) error
}

type NoticeRepositoryImpl struct{}

func NewNoticeRepository() NoticeRepository {
	return &NoticeRepositoryImpl{}
}

func selectFields(db *gorm.DB, fields []string) (*gorm.DB, error) {
	if len(fields) == 0 {
		return db, nil
	}
	for _, f := range fields {
		if !noticeQueryFields[f] && f != "user_id" {
			return nil, fmt.Errorf("%w: unknown field %q in selection", query.ErrBadExpression, f)
		}
	}
	return db.Select(fields), nil
}

func (r *NoticeRepositoryImpl) GetByID(db *gorm.DB, ownerID, id string, fields []string) (*models.Notice, error) {
	if id == "" {
		return nil, ErrMissingID
	}

	tx, err := selectFields(db, fields)
	if err != nil {
		return nil, err
	}

	var notice models.Notice
	err = tx.Where("user_id = ? AND id = ?", ownerID, id).First(&notice).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoticeNotFound
		}
		return nil, err
	}
	return &notice, nil
}

func (r *NoticeRepositoryImpl) GetAll(db *gorm.DB, ownerID string, filters []query.Filter, fields []string, sorts []query.Sort, pageNo, pageSize int) ([]models.Notice, error) {
	if ownerID == "" {
		return nil, ErrMissingOwner
	}

	tx := db.Model(&models.Notice{}).Where("user_id = ?", ownerID)

	tx, err := selectFields(tx, fields)
	if err != nil {
		return nil, err
	}
	tx, err = query.ApplyFilters(tx, filters, noticeQueryFields)
	if err != nil {
		return nil, err
	}
	tx, err = query.ApplySorts(tx, sorts, noticeQueryFields)
	if err != nil {
		return nil, err
	}

	if pageSize > 0 {
		tx = tx.Offset(pageNo * pageSize).Limit(pageSize)
	}

	notices := []models.Notice{}
	if err := tx.Find(&notices).Error; err != nil {
		return nil, err
	}

	// The owner reference is stripped from listings before return.
	for i := range notices {
		notices[i].UserID = ""
	}
	return notices, nil
}

func (r *NoticeRepositoryImpl) Create(db *gorm.DB, notice *models.Notice) error {
	if notice == nil {
		return ErrMissingPayload
	}
	if notice.UserID == "" {
		return ErrMissingOwner
	}

	// The owner must exist at creation time; there is no foreign-key
	// cascade afterwards.
	var count int64
	if err := db.Model(&models.User{}).Where("id = ?", notice.UserID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrOwnerNotFound
	}

	notice.ID = uuid.NewString()
	return db.Create(notice).Error
}

func (r *NoticeRepositoryImpl) UpdateByID(db *gorm.DB, id string, payload map[string]interface{}) error {
	if id == "" {
		return ErrMissingID
	}
	if payload == nil {
		return ErrMissingPayload
	}

	var existing models.Notice
	if err := db.Where("id = ?", id).First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoticeNotFound
		}
		return err
	}

	updates := BuildNoticeUpdates(payload)
	if len(updates) == 0 {
		// Nothing overlapped the updatable schema; leave the row untouched.
		return nil
	}

	return db.Model(&models.Notice{}).Where("id = ?", id).Updates(updates).Error
}

func (r *NoticeRepositoryImpl) DeleteByID(db *gorm.DB, id string) error {
	if id == "" {
		return ErrMissingID
	}
	// Unconditional: deleting an absent row reports success.
	return db.Where("id = ?", id).Delete(&models.Notice{}).Error
}
