package dto

import (
	"time"

	"github.com/idanaslund/final-project-backend/internal/models"
)

type ReviewDTO struct {
	ID           string    `json:"id"`
	Review       string    `json:"review"`
	Likes        int       `json:"likes"`
	UserID       string    `json:"userId"`
	RestaurantID *uint     `json:"restaurantId"`
	CreatedAt    time.Time `json:"createdAt"`
}

func NewReviewDTO(r *models.Review) ReviewDTO {
	return ReviewDTO{
		ID:           r.ID,
		Review:       r.Review,
		Likes:        r.Likes,
		UserID:       r.UserID,
		RestaurantID: r.RestaurantID,
		CreatedAt:    r.CreatedAt.UTC(),
	}
}

func NewReviewList(rs []models.Review) []ReviewDTO {
	out := make([]ReviewDTO, 0, len(rs))
	for i := range rs {
		out = append(out, NewReviewDTO(&rs[i]))
	}
	return out
}
