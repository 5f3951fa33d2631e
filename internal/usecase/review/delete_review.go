package review

import (
	"context"

	"github.com/idanaslund/final-project-backend/internal/audit"
	domain "github.com/idanaslund/final-project-backend/internal/domain/review"
	"github.com/idanaslund/final-project-backend/internal/models"
)

type DeleteReview struct {
	reviews domain.Repository
	audit   *audit.Dispatcher
}

func NewDeleteReview(
	reviews domain.Repository,
	audit *audit.Dispatcher,
) *DeleteReview {
	return &DeleteReview{
		reviews: reviews,
		audit:   audit,
	}
}

// Execute removes the review whoever wrote it; any signed-in user may delete.
func (uc *DeleteReview) Execute(ctx context.Context, userID, reviewID string) (*models.Review, error) {
	rv, err := uc.reviews.Delete(ctx, reviewID)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   audit.ActionReviewDeleted,
		Entity:   "review",
		EntityID: rv.ID,
		Metadata: map[string]any{"author": rv.UserID, "likes": rv.Likes},
	})

	return rv, nil
}
