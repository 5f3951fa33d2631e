package restaurant

import (
	"context"

	"github.com/idanaslund/final-project-backend/internal/httperr"
	"github.com/idanaslund/final-project-backend/internal/models"
)

var ErrRestaurantNotFound = httperr.ErrNotFound("restaurant_not_found", "Could not find restaurant")

// Repository is read-only; restaurants are loaded by cmd/seed.
type Repository interface {
	List(ctx context.Context) ([]models.Restaurant, error)
	GetByID(ctx context.Context, id uint) (*models.Restaurant, error)
	GetByName(ctx context.Context, name string) (*models.Restaurant, error)
}
