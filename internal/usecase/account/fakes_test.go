package account_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/idanaslund/final-project-backend/internal/audit"
	domain "github.com/idanaslund/final-project-backend/internal/domain/account"
	"github.com/idanaslund/final-project-backend/internal/models"
)

type memRepo struct {
	mu    sync.Mutex
	users map[string]*models.User
	next  int
	fail  error
}

func newMemRepo() *memRepo {
	return &memRepo{users: map[string]*models.User{}}
}

func (r *memRepo) CreateUser(ctx context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail != nil {
		return r.fail
	}
	for _, existing := range r.users {
		if existing.Username == u.Username {
			return domain.ErrDuplicateUser
		}
		if u.Email != nil && existing.Email != nil && *existing.Email == *u.Email {
			return domain.ErrDuplicateUser
		}
	}
	r.next++
	if u.ID == "" {
		u.ID = "user-" + string(rune('a'+r.next))
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memRepo) find(match func(*models.User) bool) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail != nil {
		return nil, r.fail
	}
	for _, u := range r.users {
		if match(u) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memRepo) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return r.find(func(u *models.User) bool { return u.ID == id })
}

func (r *memRepo) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.find(func(u *models.User) bool { return u.Username == username })
}

func (r *memRepo) GetUserByToken(ctx context.Context, token string) (*models.User, error) {
	return r.find(func(u *models.User) bool { return token != "" && u.AccessToken == token })
}

func (r *memRepo) UpdateProfile(ctx context.Context, id string, p domain.ProfilePatch) (*models.User, error) {
	r.mu.Lock()
	u, ok := r.users[id]
	if !ok {
		r.mu.Unlock()
		return nil, domain.ErrUserNotFound
	}
	if p.Email != nil {
		if *p.Email == "" {
			u.Email = nil
		} else {
			e := *p.Email
			u.Email = &e
		}
	}
	if p.FullName != nil {
		u.FullName = *p.FullName
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.Bio != nil {
		u.Bio = *p.Bio
	}
	if p.ProfileImage != nil {
		u.ProfileImage = *p.ProfileImage
	}
	r.mu.Unlock()
	return r.GetUserByID(ctx, id)
}

func (r *memRepo) SetProfileImage(ctx context.Context, id string, img models.ProfileImage) (*models.User, error) {
	return r.UpdateProfile(ctx, id, domain.ProfilePatch{ProfileImage: &img})
}

type recordingSink struct {
	mu     sync.Mutex
	events []audit.Event
}

func (s *recordingSink) Log(ctx context.Context, ev audit.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	return nil
}

// newAudit returns a dispatcher plus a function that flushes it and returns what was written.
func newAudit(t *testing.T) (*audit.Dispatcher, func() []audit.Event) {
	t.Helper()
	sink := &recordingSink{}
	d := audit.NewDispatcher(sink, 16)
	return d, func() []audit.Event {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		if err := d.Close(ctx); err != nil {
			t.Fatalf("close audit: %v", err)
		}
		sink.mu.Lock()
		defer sink.mu.Unlock()
		return append([]audit.Event(nil), sink.events...)
	}
}

type fakeImages struct {
	keys []string
	err  error
}

func (f *fakeImages) Put(ctx context.Context, key, contentType string, body []byte) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if contentType != "image/webp" || len(body) == 0 {
		return "", errors.New("unexpected upload")
	}
	f.keys = append(f.keys, key)
	return "https://cdn.example.com/" + key, nil
}
