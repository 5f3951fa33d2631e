package review

import (
	"context"
	"strings"

	"github.com/idanaslund/final-project-backend/internal/httperr"
	"github.com/idanaslund/final-project-backend/internal/models"
	"github.com/idanaslund/final-project-backend/internal/validators"
)

const (
	MinLength = 5
	MaxLength = 140

	// ListLimit caps every review listing; there is no cursor.
	ListLimit = 20
)

var (
	ErrInvalidText    = httperr.ErrBusiness("invalid_review", "Review must be between 5 and 140 characters")
	ErrReviewNotFound = httperr.ErrNotFound("review_not_found", "Could not find review")
)

type Repository interface {
	Create(ctx context.Context, r *models.Review) error
	ListRecent(ctx context.Context, restaurantID *uint, limit int) ([]models.Review, error)
	IncrementLikes(ctx context.Context, id string) (*models.Review, error)
	Delete(ctx context.Context, id string) (*models.Review, error)
}

// NormalizeText trims the review and checks its length.
func NormalizeText(text string) (string, error) {
	text = strings.TrimSpace(text)
	if !validators.LengthBetween(text, MinLength, MaxLength) {
		return "", ErrInvalidText
	}
	return text, nil
}
