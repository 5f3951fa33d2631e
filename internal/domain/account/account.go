package account

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"github.com/idanaslund/final-project-backend/internal/httperr"
	"github.com/idanaslund/final-project-backend/internal/models"
	"github.com/idanaslund/final-project-backend/internal/validators"
)

const (
	MinUsernameLength = 3
	MaxUsernameLength = 20
	MinPasswordLength = 8
	// bcrypt only looks at the first 72 bytes and refuses longer input
	MaxPasswordBytes = 72

	tokenBytes = 128
)

var (
	ErrPasswordTooShort = httperr.ErrBusiness("password_too_short", "Your password must be at least 8 characters long")
	ErrPasswordTooLong  = httperr.ErrBusiness("password_too_long", "Your password must be at most 72 bytes long")
	ErrInvalidUsername  = httperr.ErrBusiness("invalid_username", "Username must be between 3 and 20 characters")
	ErrInvalidEmail     = httperr.ErrBusiness("invalid_email", "Email address is not valid")
	ErrDuplicateUser    = httperr.ErrBusiness("duplicate_user", "Could not create user")
	ErrEmailTaken       = httperr.ErrBusiness("email_taken", "Email is already in use")
	ErrLoginFailed      = httperr.ErrNotFound("login_failed", "Login failed: wrong username or password")
	ErrUserNotFound     = httperr.ErrNotFound("user_not_found", "Could not find profile information")
	ErrNotProfileOwner  = httperr.ErrForbidden("not_profile_owner", "You can only change your own profile")
)

type Repository interface {
	CreateUser(ctx context.Context, u *models.User) error
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByToken(ctx context.Context, token string) (*models.User, error)
	UpdateProfile(ctx context.Context, id string, patch ProfilePatch) (*models.User, error)
	SetProfileImage(ctx context.Context, id string, img models.ProfileImage) (*models.User, error)
}

func ValidateUsername(username string) error {
	if !validators.LengthBetween(username, MinUsernameLength, MaxUsernameLength) {
		return ErrInvalidUsername
	}
	return nil
}

func ValidatePassword(password string) error {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	if len(password) > MaxPasswordBytes {
		return ErrPasswordTooLong
	}
	return nil
}

func ValidateEmail(email string) error {
	if !validators.IsEmailValid(email) {
		return ErrInvalidEmail
	}
	return nil
}

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// NewAccessToken returns the hex encoding of 128 random bytes.
func NewAccessToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
