package account

import (
	"context"
	"strings"

	"github.com/idanaslund/final-project-backend/internal/audit"
	domain "github.com/idanaslund/final-project-backend/internal/domain/account"
	"github.com/idanaslund/final-project-backend/internal/models"
)

type SignupInput struct {
	Username string
	Password string
	Email    string
	FullName string
	Phone    string
	Bio      string
}

type Signup struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSignup(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *Signup {
	return &Signup{
		repo:  repo,
		audit: audit,
	}
}

func (uc *Signup) Execute(ctx context.Context, in SignupInput) (*models.User, error) {
	// password length is checked before anything touches the store
	if err := domain.ValidatePassword(in.Password); err != nil {
		return nil, err
	}

	username := strings.TrimSpace(in.Username)
	if err := domain.ValidateUsername(username); err != nil {
		return nil, err
	}

	var email *string
	if e := strings.TrimSpace(in.Email); e != "" {
		if err := domain.ValidateEmail(e); err != nil {
			return nil, err
		}
		email = &e
	}

	profile := domain.ProfilePatch{FullName: &in.FullName, Phone: &in.Phone, Bio: &in.Bio}
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	hash, err := domain.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	token, err := domain.NewAccessToken()
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		AccessToken:  token,
		FullName:     in.FullName,
		Phone:        in.Phone,
		Bio:          in.Bio,
	}
	if err := uc.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   user.ID,
		Action:   audit.ActionUserSignedUp,
		Entity:   "user",
		EntityID: user.ID,
	})

	return user, nil
}
