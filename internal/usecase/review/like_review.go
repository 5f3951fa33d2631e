package review

import (
	"context"

	"github.com/idanaslund/final-project-backend/internal/audit"
	domain "github.com/idanaslund/final-project-backend/internal/domain/review"
	"github.com/idanaslund/final-project-backend/internal/models"
)

type LikeReview struct {
	reviews domain.Repository
	audit   *audit.Dispatcher
}

func NewLikeReview(
	reviews domain.Repository,
	audit *audit.Dispatcher,
) *LikeReview {
	return &LikeReview{
		reviews: reviews,
		audit:   audit,
	}
}

// Execute adds one like. Repeated likes by the same user all count.
func (uc *LikeReview) Execute(ctx context.Context, userID, reviewID string) (*models.Review, error) {
	rv, err := uc.reviews.IncrementLikes(ctx, reviewID)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   audit.ActionReviewLiked,
		Entity:   "review",
		EntityID: rv.ID,
	})

	return rv, nil
}
