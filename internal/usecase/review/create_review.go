package review

import (
	"context"
	"time"

	"github.com/idanaslund/final-project-backend/internal/audit"
	"github.com/idanaslund/final-project-backend/internal/domain/restaurant"
	domain "github.com/idanaslund/final-project-backend/internal/domain/review"
	"github.com/idanaslund/final-project-backend/internal/models"
)

type CreateReview struct {
	reviews     domain.Repository
	restaurants restaurant.Repository
	audit       *audit.Dispatcher
}

func NewCreateReview(
	reviews domain.Repository,
	restaurants restaurant.Repository,
	audit *audit.Dispatcher,
) *CreateReview {
	return &CreateReview{
		reviews:     reviews,
		restaurants: restaurants,
		audit:       audit,
	}
}

func (uc *CreateReview) Execute(
	ctx context.Context,
	userID string,
	text string,
	restaurantID *uint,
) (*models.Review, error) {

	text, err := domain.NormalizeText(text)
	if err != nil {
		return nil, err
	}

	if restaurantID != nil {
		if _, err := uc.restaurants.GetByID(ctx, *restaurantID); err != nil {
			return nil, err
		}
	}

	rv := &models.Review{
		Review:       text,
		UserID:       userID,
		RestaurantID: restaurantID,
		CreatedAt:    time.Now().UTC(),
	}
	if err := uc.reviews.Create(ctx, rv); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   audit.ActionReviewCreated,
		Entity:   "review",
		EntityID: rv.ID,
	})

	return rv, nil
}
