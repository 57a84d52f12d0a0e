package service

import (
	"context"
	"fmt"
	"time"

	"github.com/taskboard/taskboard-api/internal/core/domain"
)

// --- user repository stub ---

type stubUserRepo struct {
	users     []*domain.User
	createErr error
	findErr   error
}

func cloneUser(u *domain.User) *domain.User {
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	r.users = append(r.users, cloneUser(user))
	return cloneUser(user), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func (r *stubUserRepo) UpdateLastLogin(_ context.Context, email string, at time.Time) error {
	for _, u := range r.users {
		if u.Email == email {
			t := at
			u.LastLogin = &t
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func (r *stubUserRepo) UpdateRole(_ context.Context, email, role string) error {
	for _, u := range r.users {
		if u.Email == email {
			u.Role = role
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func (r *stubUserRepo) DeleteByEmail(_ context.Context, email string) error {
	kept := r.users[:0]
	deleted := false
	for _, u := range r.users {
		if u.Email == email {
			deleted = true
			continue
		}
		kept = append(kept, u)
	}
	r.users = kept
	if !deleted {
		return domain.ErrUserNotFound
	}
	return nil
}

// --- directory stub ---

type stubDirectory struct {
	creates   int
	deletes   []string
	createErr error
}

func (d *stubDirectory) CreateIdentity(_ context.Context, _, _, _ string) (string, error) {
	if d.createErr != nil {
		return "", d.createErr
	}
	d.creates++
	return fmt.Sprintf("uid-%d", d.creates), nil
}

func (d *stubDirectory) DeleteIdentity(_ context.Context, uid string) error {
	d.deletes = append(d.deletes, uid)
	return nil
}

// --- session store stub ---

type stubSessions struct {
	tokens map[string]string
}

func newStubSessions() *stubSessions {
	return &stubSessions{tokens: make(map[string]string)}
}

func (s *stubSessions) SaveRefresh(_ context.Context, token, email string) error {
	s.tokens[token] = email
	return nil
}

func (s *stubSessions) LookupRefresh(_ context.Context, token string) (string, error) {
	email, ok := s.tokens[token]
	if !ok {
		return "", domain.ErrInvalidToken
	}
	return email, nil
}

func (s *stubSessions) DeleteRefresh(_ context.Context, token string) error {
	delete(s.tokens, token)
	return nil
}

// --- task repository stub ---

type stubTaskRepo struct {
	tasks  []*domain.Task
	nextID int
}

func cloneTask(t *domain.Task) *domain.Task {
	clone := *t
	return &clone
}

func (r *stubTaskRepo) Create(_ context.Context, task *domain.Task) (*domain.Task, error) {
	r.nextID++
	created := cloneTask(task)
	created.ID = fmt.Sprintf("task-%d", r.nextID)
	r.tasks = append(r.tasks, created)
	return cloneTask(created), nil
}

func (r *stubTaskRepo) FindByID(_ context.Context, id string) (*domain.Task, error) {
	for _, t := range r.tasks {
		if t.ID == id {
			return cloneTask(t), nil
		}
	}
	return nil, domain.ErrTaskNotFound
}

func (r *stubTaskRepo) ListByOwner(_ context.Context, email string) ([]*domain.Task, error) {
	return r.filter(func(t *domain.Task) bool { return t.Email == email }), nil
}

func (r *stubTaskRepo) ListByAssignee(_ context.Context, email string) ([]*domain.Task, error) {
	return r.filter(func(t *domain.Task) bool { return t.AssignedTo == email }), nil
}

func (r *stubTaskRepo) ListByGroup(_ context.Context, groupName string) ([]*domain.Task, error) {
	return r.filter(func(t *domain.Task) bool { return t.GroupName == groupName }), nil
}

func (r *stubTaskRepo) filter(keep func(*domain.Task) bool) []*domain.Task {
	out := make([]*domain.Task, 0)
	for _, t := range r.tasks {
		if keep(t) {
			out = append(out, cloneTask(t))
		}
	}
	return out
}

func (r *stubTaskRepo) Update(_ context.Context, task *domain.Task) (*domain.Task, error) {
	for i, t := range r.tasks {
		if t.ID == task.ID {
			r.tasks[i] = cloneTask(task)
			return cloneTask(task), nil
		}
	}
	return nil, domain.ErrTaskNotFound
}

func (r *stubTaskRepo) UpdateStatus(_ context.Context, id, status string) (*domain.Task, error) {
	for _, t := range r.tasks {
		if t.ID == id {
			t.Status = status
			t.UpdatedAt = time.Now().UTC()
			return cloneTask(t), nil
		}
	}
	return nil, domain.ErrTaskNotFound
}

func (r *stubTaskRepo) Delete(_ context.Context, id string) error {
	for i, t := range r.tasks {
		if t.ID == id {
			r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
			return nil
		}
	}
	return domain.ErrTaskNotFound
}

// --- group repository stub ---

type stubGroupRepo struct {
	groups []*domain.Group
	nextID int
}

func cloneGroup(g *domain.Group) *domain.Group {
	clone := *g
	clone.Members = append([]string(nil), g.Members...)
	return &clone
}

func (r *stubGroupRepo) Create(_ context.Context, group *domain.Group) (*domain.Group, error) {
	r.nextID++
	created := cloneGroup(group)
	created.ID = fmt.Sprintf("group-%d", r.nextID)
	r.groups = append(r.groups, created)
	return cloneGroup(created), nil
}

// findEarliest mirrors the repository tie-break: earliest created_at wins.
func (r *stubGroupRepo) findEarliest(match func(*domain.Group) bool) (*domain.Group, error) {
	var best *domain.Group
	for _, g := range r.groups {
		if !match(g) {
			continue
		}
		if best == nil || g.CreatedAt.Before(best.CreatedAt) {
			best = g
		}
	}
	if best == nil {
		return nil, domain.ErrGroupNotFound
	}
	return cloneGroup(best), nil
}

func (r *stubGroupRepo) FindByName(_ context.Context, name string) (*domain.Group, error) {
	return r.findEarliest(func(g *domain.Group) bool { return g.Name == name })
}

func (r *stubGroupRepo) FindByMember(_ context.Context, email string) (*domain.Group, error) {
	return r.findEarliest(func(g *domain.Group) bool { return g.HasMember(email) })
}

func (r *stubGroupRepo) ListByCreator(_ context.Context, email string) ([]*domain.Group, error) {
	out := make([]*domain.Group, 0)
	for _, g := range r.groups {
		if g.CreatedBy == email {
			out = append(out, cloneGroup(g))
		}
	}
	return out, nil
}

func (r *stubGroupRepo) List(_ context.Context) ([]*domain.Group, error) {
	out := make([]*domain.Group, 0, len(r.groups))
	for _, g := range r.groups {
		out = append(out, cloneGroup(g))
	}
	return out, nil
}

func (r *stubGroupRepo) SetMembers(_ context.Context, id string, members []string) (*domain.Group, error) {
	for _, g := range r.groups {
		if g.ID == id {
			g.Members = append([]string(nil), members...)
			g.UpdatedAt = time.Now().UTC()
			return cloneGroup(g), nil
		}
	}
	return nil, domain.ErrGroupNotFound
}
