package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/kartavyango/sahaaya/internal/domain/apperror"
	"github.com/kartavyango/sahaaya/internal/domain/contract"
	"github.com/kartavyango/sahaaya/internal/domain/entity"
	usecasecontract "github.com/kartavyango/sahaaya/internal/usecase/contract"
)

// ---- collaborator fakes ----

type fakeLogger struct{}

func (fakeLogger) Debugf(format string, args ...interface{}) {}
func (fakeLogger) Infof(format string, args ...interface{})  {}
func (fakeLogger) Warnf(format string, args ...interface{})  {}
func (fakeLogger) Errorf(format string, args ...interface{}) {}
func (fakeLogger) Fatalf(format string, args ...interface{}) {}

type seqUUIDGen struct {
	mu sync.Mutex
	n  int
}

func (g *seqUUIDGen) NewUUID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("id-%04d", g.n)
}

type fakeValidator struct{}

func (fakeValidator) ValidateEmail(email string) error {
	if !strings.Contains(email, "@") {
		return errors.New("invalid email")
	}
	return nil
}

func (fakeValidator) ValidatePhone(phone string) error {
	if len(phone) < 7 {
		return errors.New("invalid phone")
	}
	return nil
}

func (fakeValidator) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return errors.New("too short")
	}
	return nil
}

type sentMail struct {
	To      string
	Subject string
	Body    string
}

type fakeMailService struct {
	mu         sync.Mutex
	Sent       []sentMail
	ShouldFail bool
}

func (m *fakeMailService) SendEmail(ctx context.Context, to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ShouldFail {
		return errors.New("smtp unavailable")
	}
	m.Sent = append(m.Sent, sentMail{To: to, Subject: subject, Body: body})
	return nil
}

type fakeStorage struct {
	mu      sync.Mutex
	n       int
	Stored  map[string]string // storageID -> file name
	Deleted []string
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{Stored: make(map[string]string)}
}

func (s *fakeStorage) Save(ctx context.Context, fileName string, r io.Reader) (*contract.StoredFile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	id := fmt.Sprintf("file-%04d", s.n)
	s.Stored[id] = fileName
	return &contract.StoredFile{StorageID: id, URL: "http://files.local/uploads/" + id, Size: 42}, nil
}

func (s *fakeStorage) Delete(ctx context.Context, storageID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.Stored, storageID)
	s.Deleted = append(s.Deleted, storageID)
	return nil
}

// ---- repository fakes ----

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*entity.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) CreateUser(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, apperror.NotFoundf("user %s", id)
	}
	return u, nil
}

func (r *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, apperror.NotFoundf("user with email %s", email)
}

func (r *fakeUserRepo) GetAllUsers(ctx context.Context) ([]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) GetAllUserIDs(ctx context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]string, 0, len(r.users))
	for id := range r.users {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func (r *fakeUserRepo) UpdateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return nil, apperror.NotFoundf("user %s", user.ID)
	}
	r.users[user.ID] = user
	return user, nil
}

func (r *fakeUserRepo) UpdateUserPassword(ctx context.Context, id string, hashedPassword string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return apperror.NotFoundf("user %s", id)
	}
	u.PasswordHash = hashedPassword
	return nil
}

func (r *fakeUserRepo) DeleteUser(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return apperror.NotFoundf("user %s", id)
	}
	delete(r.users, id)
	return nil
}

type fakeEventRepo struct {
	mu     sync.Mutex
	events map[string]*entity.Event
}

func newFakeEventRepo(events ...*entity.Event) *fakeEventRepo {
	r := &fakeEventRepo{events: make(map[string]*entity.Event)}
	for _, e := range events {
		r.events[e.ID] = e
	}
	return r
}

func (r *fakeEventRepo) CreateEvent(ctx context.Context, event *entity.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events[event.ID] = event
	return nil
}

func (r *fakeEventRepo) GetEventByID(ctx context.Context, id string) (*entity.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.events[id]
	if !ok {
		return nil, apperror.NotFoundf("event %s", id)
	}
	return copyEvent(e), nil
}

// copyEvent mirrors the real repository contract: every fetch decodes a
// fresh document, so callers never alias the stored entity.
func copyEvent(e *entity.Event) *entity.Event {
	cp := *e
	cp.Images = append([]entity.ImageRef(nil), e.Images...)
	cp.Reports = append([]entity.ReportFile(nil), e.Reports...)
	cp.SharedWith = append([]string(nil), e.SharedWith...)
	return &cp
}

func (r *fakeEventRepo) GetEvents(ctx context.Context, page, limit int64) ([]*entity.Event, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := make([]*entity.Event, 0, len(r.events))
	for _, e := range r.events {
		all = append(all, e)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	total := int64(len(all))
	start := (page - 1) * limit
	if start >= total {
		return nil, total, nil
	}
	end := start + limit
	if end > total {
		end = total
	}
	return all[start:end], total, nil
}

func (r *fakeEventRepo) UpdateEvent(ctx context.Context, id string, updates map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.events[id]
	if !ok {
		return apperror.NotFoundf("event %s", id)
	}
	if title, ok := updates["title"].(string); ok {
		e.Title = title
	}
	if district, ok := updates["district"].(string); ok {
		e.District = district
	}
	return nil
}

func (r *fakeEventRepo) DeleteEvent(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.events[id]; !ok {
		return apperror.NotFoundf("event %s", id)
	}
	delete(r.events, id)
	return nil
}

func (r *fakeEventRepo) AddSharedUsers(ctx context.Context, id string, userIDs []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.events[id]
	if !ok {
		return apperror.NotFoundf("event %s", id)
	}
	for _, uid := range userIDs {
		if !e.IsSharedWith(uid) {
			e.SharedWith = append(e.SharedWith, uid)
		}
	}
	return nil
}

func (r *fakeEventRepo) RemoveReportFile(ctx context.Context, id, storageID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.events[id]
	if !ok {
		return apperror.NotFoundf("event %s", id)
	}
	kept := e.Reports[:0]
	for _, rep := range e.Reports {
		if rep.StorageID != storageID {
			kept = append(kept, rep)
		}
	}
	e.Reports = kept
	return nil
}

type fakeRegistrationRepo struct {
	mu   sync.Mutex
	regs map[string]*entity.EventRegistration
}

func newFakeRegistrationRepo(regs ...*entity.EventRegistration) *fakeRegistrationRepo {
	r := &fakeRegistrationRepo{regs: make(map[string]*entity.EventRegistration)}
	for _, reg := range regs {
		r.regs[reg.ID] = reg
	}
	return r
}

func (r *fakeRegistrationRepo) CreateRegistration(ctx context.Context, reg *entity.EventRegistration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.regs[reg.ID] = reg
	return nil
}

func (r *fakeRegistrationRepo) GetRegistrationByID(ctx context.Context, id string) (*entity.EventRegistration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	reg, ok := r.regs[id]
	if !ok {
		return nil, apperror.NotFoundf("registration %s", id)
	}
	cp := *reg
	cp.SharedWith = append([]string(nil), reg.SharedWith...)
	return &cp, nil
}

func (r *fakeRegistrationRepo) GetRegistrationsByEventID(ctx context.Context, eventID string) ([]*entity.EventRegistration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.EventRegistration, 0)
	for _, reg := range r.regs {
		if reg.EventID == eventID {
			out = append(out, reg)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeRegistrationRepo) AddSharedUsers(ctx context.Context, id string, userIDs []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	reg, ok := r.regs[id]
	if !ok {
		return apperror.NotFoundf("registration %s", id)
	}
	for _, uid := range userIDs {
		if !reg.IsSharedWith(uid) {
			reg.SharedWith = append(reg.SharedWith, uid)
		}
	}
	return nil
}

func (r *fakeRegistrationRepo) UpdateStatus(ctx context.Context, id string, status entity.RegistrationStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	reg, ok := r.regs[id]
	if !ok {
		return apperror.NotFoundf("registration %s", id)
	}
	reg.Status = status
	return nil
}

type fakeNotificationRepo struct {
	mu            sync.Mutex
	notifications []*entity.Notification
	failForUsers  map[string]bool
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{failForUsers: make(map[string]bool)}
}

func (r *fakeNotificationRepo) CreateNotification(ctx context.Context, n *entity.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failForUsers[n.UserID] {
		return errors.New("write failed")
	}
	r.notifications = append(r.notifications, n)
	return nil
}

func (r *fakeNotificationRepo) GetByUserID(ctx context.Context, userID string, page, limit int64) ([]*entity.Notification, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := r.forUser(userID)
	total := int64(len(all))
	start := (page - 1) * limit
	if start >= total {
		return nil, total, nil
	}
	end := start + limit
	if end > total {
		end = total
	}
	return all[start:end], total, nil
}

func (r *fakeNotificationRepo) MarkAsRead(ctx context.Context, id, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range r.notifications {
		if n.ID == id && n.UserID == userID {
			n.Read = true
			return nil
		}
	}
	return apperror.NotFoundf("notification %s of user %s", id, userID)
}

func (r *fakeNotificationRepo) MarkAllAsRead(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range r.notifications {
		if n.UserID == userID {
			n.Read = true
		}
	}
	return nil
}

func (r *fakeNotificationRepo) CountUnread(ctx context.Context, userID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, n := range r.notifications {
		if n.UserID == userID && !n.Read {
			count++
		}
	}
	return count, nil
}

// forUser returns the user's notifications newest first. Callers hold the lock.
func (r *fakeNotificationRepo) forUser(userID string) []*entity.Notification {
	out := make([]*entity.Notification, 0)
	for _, n := range r.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (r *fakeNotificationRepo) all() []*entity.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Notification, len(r.notifications))
	copy(out, r.notifications)
	return out
}

type fakeNotificationCache struct {
	mu     sync.Mutex
	counts map[string]int64
	Sets   int
	Dels   int
}

func newFakeNotificationCache() *fakeNotificationCache {
	return &fakeNotificationCache{counts: make(map[string]int64)}
}

func (c *fakeNotificationCache) GetUnreadCount(ctx context.Context, userID string) (int64, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	count, ok := c.counts[userID]
	return count, ok, nil
}

func (c *fakeNotificationCache) SetUnreadCount(ctx context.Context, userID string, count int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts[userID] = count
	c.Sets++
	return nil
}

func (c *fakeNotificationCache) InvalidateUnreadCount(ctx context.Context, userID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.counts, userID)
	c.Dels++
	return nil
}

// ---- shared fixtures ----

func testEvent(id, creatorID string) *entity.Event {
	return &entity.Event{
		ID:         id,
		Title:      "Health Camp",
		District:   "Pune",
		Date:       time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		CreatedBy:  creatorID,
		SharedWith: []string{},
		CreatedAt:  time.Now(),
	}
}

func validRegistrationInput() usecasecontract.RegistrationInput {
	return usecasecontract.RegistrationInput{
		Name:     "Asha Patil",
		Email:    "asha@example.com",
		Phone:    "+911234567890",
		Age:      29,
		Gender:   "female",
		Address:  "12 Main Road",
		District: "Pune",
		Taluka:   "Haveli",
		Village:  "Wagholi",
	}
}
