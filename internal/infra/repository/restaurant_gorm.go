package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/idanaslund/final-project-backend/internal/domain/restaurant"
	"github.com/idanaslund/final-project-backend/internal/models"
)

type RestaurantGormRepository struct {
	db *gorm.DB
}

func NewRestaurantGormRepository(db *gorm.DB) *RestaurantGormRepository {
	return &RestaurantGormRepository{db: db}
}

func (r *RestaurantGormRepository) List(ctx context.Context) ([]models.Restaurant, error) {
	var out []models.Restaurant
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *RestaurantGormRepository) GetByID(ctx context.Context, id uint) (*models.Restaurant, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *RestaurantGormRepository) GetByName(ctx context.Context, name string) (*models.Restaurant, error) {
	return r.first(ctx, "name = ?", name)
}

// Upsert inserts the dataset, overwriting rows that share an id.
func (r *RestaurantGormRepository) Upsert(ctx context.Context, list []models.Restaurant) error {
	if len(list) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		CreateInBatches(list, 100).Error
}

func (r *RestaurantGormRepository) first(ctx context.Context, query string, arg any) (*models.Restaurant, error) {
	var rest models.Restaurant
	if err := r.db.WithContext(ctx).Where(query, arg).First(&rest).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, restaurant.ErrRestaurantNotFound
		}
		return nil, err
	}
	return &rest, nil
}

// Compile-time check
var _ restaurant.Repository = (*RestaurantGormRepository)(nil)
