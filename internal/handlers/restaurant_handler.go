package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/idanaslund/final-project-backend/internal/domain/restaurant"
	"github.com/idanaslund/final-project-backend/internal/dto"
	"github.com/idanaslund/final-project-backend/internal/httperr"
	"github.com/idanaslund/final-project-backend/internal/httpresp"
	reviewuc "github.com/idanaslund/final-project-backend/internal/usecase/review"
)

type RestaurantHandler struct {
	repo    restaurant.Repository
	reviews *reviewuc.ListReviews
}

func NewRestaurantHandler(repo restaurant.Repository, reviews *reviewuc.ListReviews) *RestaurantHandler {
	return &RestaurantHandler{repo: repo, reviews: reviews}
}

func (h *RestaurantHandler) List(c *gin.Context) {
	list, err := h.repo.List(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err, "Could not fetch restaurants")
		return
	}
	httpresp.List(c, list)
}

func (h *RestaurantHandler) GetByID(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "Invalid restaurant id")
		return
	}

	r, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err, "Could not fetch restaurant")
		return
	}
	httpresp.OK(c, r)
}

func (h *RestaurantHandler) GetByName(c *gin.Context) {
	r, err := h.repo.GetByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		httperr.FromError(c, err, "Could not fetch restaurant")
		return
	}
	httpresp.OK(c, r)
}

func (h *RestaurantHandler) Reviews(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "Invalid restaurant id")
		return
	}

	list, err := h.reviews.Execute(c.Request.Context(), &id)
	if err != nil {
		httperr.FromError(c, err, "Could not fetch reviews")
		return
	}
	httpresp.List(c, dto.NewReviewList(list))
}
