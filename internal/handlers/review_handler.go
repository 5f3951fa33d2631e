package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/idanaslund/final-project-backend/internal/dto"
	"github.com/idanaslund/final-project-backend/internal/httperr"
	"github.com/idanaslund/final-project-backend/internal/httpresp"
	"github.com/idanaslund/final-project-backend/internal/middleware"
	reviewuc "github.com/idanaslund/final-project-backend/internal/usecase/review"
)

// ======================================================
// HANDLER
// ======================================================

type ReviewHandler struct {
	create *reviewuc.CreateReview
	list   *reviewuc.ListReviews
	like   *reviewuc.LikeReview
	delete *reviewuc.DeleteReview
}

func NewReviewHandler(
	create *reviewuc.CreateReview,
	list *reviewuc.ListReviews,
	like *reviewuc.LikeReview,
	del *reviewuc.DeleteReview,
) *ReviewHandler {
	return &ReviewHandler{
		create: create,
		list:   list,
		like:   like,
		delete: del,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateReviewRequest struct {
	Review       string `json:"review"`
	RestaurantID *uint  `json:"restaurantId"`
}

// ======================================================
// ROUTES
// ======================================================

func (h *ReviewHandler) Create(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Could not save review")
		return
	}

	rv, err := h.create.Execute(c.Request.Context(), user.ID, req.Review, req.RestaurantID)
	if err != nil {
		httperr.FromError(c, err, "Could not save review")
		return
	}

	httpresp.Created(c, dto.NewReviewDTO(rv))
}

func (h *ReviewHandler) List(c *gin.Context) {
	list, err := h.list.Execute(c.Request.Context(), nil)
	if err != nil {
		httperr.FromError(c, err, "Could not fetch reviews")
		return
	}
	httpresp.List(c, dto.NewReviewList(list))
}

func (h *ReviewHandler) Like(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	id, ok := uuidParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "Invalid review id")
		return
	}

	rv, err := h.like.Execute(c.Request.Context(), user.ID, id)
	if err != nil {
		httperr.FromError(c, err, "Could not like review")
		return
	}
	httpresp.OK(c, dto.NewReviewDTO(rv))
}

func (h *ReviewHandler) Delete(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	id, ok := uuidParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "Invalid review id")
		return
	}

	rv, err := h.delete.Execute(c.Request.Context(), user.ID, id)
	if err != nil {
		httperr.FromError(c, err, "Could not delete review")
		return
	}
	httpresp.OK(c, dto.NewReviewDTO(rv))
}
