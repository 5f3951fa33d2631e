package review

import (
	"context"

	"github.com/idanaslund/final-project-backend/internal/domain/restaurant"
	domain "github.com/idanaslund/final-project-backend/internal/domain/review"
	"github.com/idanaslund/final-project-backend/internal/models"
)

type ListReviews struct {
	reviews     domain.Repository
	restaurants restaurant.Repository
}

func NewListReviews(
	reviews domain.Repository,
	restaurants restaurant.Repository,
) *ListReviews {
	return &ListReviews{
		reviews:     reviews,
		restaurants: restaurants,
	}
}

// Execute returns the newest reviews, optionally for one restaurant, capped at domain.ListLimit.
func (uc *ListReviews) Execute(ctx context.Context, restaurantID *uint) ([]models.Review, error) {
	if restaurantID != nil {
		if _, err := uc.restaurants.GetByID(ctx, *restaurantID); err != nil {
			return nil, err
		}
	}
	return uc.reviews.ListRecent(ctx, restaurantID, domain.ListLimit)
}
