package services

import (
	"context"

	"vpms_backend/internal/email"
	"vpms_backend/internal/models"
	"vpms_backend/internal/push"
	"vpms_backend/internal/repositories"
	"vpms_backend/internal/repositories/query"

	"gorm.io/gorm"
)

// In-memory fakes for the repository and sender interfaces.

type fakeNoticeRepo struct {
	notices map[string]*models.Notice
	updates []map[string]interface{}
	err     error
}

func newFakeNoticeRepo(notices ...*models.Notice) *fakeNoticeRepo {
	repo := &fakeNoticeRepo{notices: make(map[string]*models.Notice)}
	for _, n := range notices {
		repo.notices[n.ID] = n
	}
	return repo
}

func (r *fakeNoticeRepo) GetByID(db *gorm.DB, ownerID, id string, fields []string) (*models.Notice, error) {
	if r.err != nil {
		return nil, r.err
	}
	if id == "" {
		return nil, repositories.ErrMissingID
	}
	notice, ok := r.notices[id]
	if !ok || notice.UserID != ownerID {
		return nil, repositories.ErrNoticeNotFound
	}
	copied := *notice
	return &copied, nil
}

func (r *fakeNoticeRepo) GetAll(db *gorm.DB, ownerID string, filters []query.Filter, fields []string, sorts []query.Sort, pageNo, pageSize int) ([]models.Notice, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []models.Notice
	for _, n := range r.notices {
		if n.UserID == ownerID {
			copied := *n
			copied.UserID = ""
			out = append(out, copied)
		}
	}
	return out, nil
}

func (r *fakeNoticeRepo) Create(db *gorm.DB, notice *models.Notice) error {
	if r.err != nil {
		return r.err
	}
	notice.ID = "generated-id"
	r.notices[notice.ID] = notice
	return nil
}

func (r *fakeNoticeRepo) UpdateByID(db *gorm.DB, id string, payload map[string]interface{}) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.notices[id]; !ok {
		return repositories.ErrNoticeNotFound
	}
	r.updates = append(r.updates, payload)
	return nil
}

func (r *fakeNoticeRepo) DeleteByID(db *gorm.DB, id string) error {
	if r.err != nil {
		return r.err
	}
	delete(r.notices, id)
	return nil
}

type fakeTenantRepo struct {
	tenants []models.Tenant
	err     error
}

func (r *fakeTenantRepo) FindByOwner(db *gorm.DB, ownerID string) ([]models.Tenant, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []models.Tenant
	for _, t := range r.tenants {
		if t.UserID == ownerID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeTenantRepo) List(db *gorm.DB, ownerID string, filters []query.Filter, sorts []query.Sort, pageNo, pageSize int) ([]models.Tenant, error) {
	return r.FindByOwner(db, ownerID)
}

type fakeSender struct {
	calls  [][]string
	report *push.Report
	err    error
}

func (s *fakeSender) Send(ctx context.Context, tokens []string, notification push.Notification) (*push.Report, error) {
	s.calls = append(s.calls, tokens)
	if s.err != nil {
		return nil, s.err
	}
	if s.report != nil {
		return s.report, nil
	}
	return &push.Report{Requested: len(tokens), Success: len(tokens)}, nil
}

type fakeUserRepo struct {
	users map[string]*models.User
	err   error
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[string]*models.User)}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (r *fakeUserRepo) FindByID(db *gorm.DB, id string) (*models.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	user, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) FindByEmail(db *gorm.DB, email string) (*models.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Create(db *gorm.DB, user *models.User) error {
	if r.err != nil {
		return r.err
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) Update(db *gorm.DB, user *models.User) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.users[user.ID]; !ok {
		return repositories.ErrUserNotFound
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) Exists(db *gorm.DB, id string) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	_, ok := r.users[id]
	return ok, nil
}

type fakeEmailProvider struct {
	sent []string
	err  error
}

func (p *fakeEmailProvider) Send(msg *email.Email) error { return nil }

func (p *fakeEmailProvider) SendConfirmationCode(to, userID, code string) error {
	if p.err != nil {
		return p.err
	}
	p.sent = append(p.sent, to)
	return nil
}

func (p *fakeEmailProvider) Validate() error { return nil }
