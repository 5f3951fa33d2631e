package account

import (
	"context"
	"errors"
	"strings"
	"sync"

	domain "github.com/idanaslund/final-project-backend/internal/domain/account"
	"github.com/idanaslund/final-project-backend/internal/models"
)

var (
	dummyOnce sync.Once
	dummyHash string
)

// unknown usernames still pay for one bcrypt comparison
func compareDummy(password string) {
	dummyOnce.Do(func() {
		dummyHash, _ = domain.HashPassword("not-a-real-password")
	})
	domain.CheckPassword(dummyHash, password)
}

type Login struct {
	repo domain.Repository
}

func NewLogin(repo domain.Repository) *Login {
	return &Login{repo: repo}
}

// Execute returns domain.ErrLoginFailed for every credential problem, so the
// response never reveals whether the username exists.
func (uc *Login) Execute(ctx context.Context, username, password string) (*models.User, error) {
	// signup stores the trimmed username
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, domain.ErrLoginFailed
	}

	user, err := uc.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			compareDummy(password)
			return nil, domain.ErrLoginFailed
		}
		return nil, err
	}

	if !domain.CheckPassword(user.PasswordHash, password) {
		return nil, domain.ErrLoginFailed
	}
	return user, nil
}
