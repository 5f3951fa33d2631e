package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/idanaslund/final-project-backend/internal/domain/review"
	"github.com/idanaslund/final-project-backend/internal/models"
)

type ReviewGormRepository struct {
	db *gorm.DB
}

func NewReviewGormRepository(db *gorm.DB) *ReviewGormRepository {
	return &ReviewGormRepository{db: db}
}

func (r *ReviewGormRepository) Create(ctx context.Context, rv *models.Review) error {
	return r.db.WithContext(ctx).Create(rv).Error
}

func (r *ReviewGormRepository) ListRecent(
	ctx context.Context,
	restaurantID *uint,
	limit int,
) ([]models.Review, error) {

	q := r.db.WithContext(ctx).Model(&models.Review{})
	if restaurantID != nil {
		q = q.Where("restaurant_id = ?", *restaurantID)
	}

	var reviews []models.Review
	if err := q.
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// IncrementLikes relies on the store's atomic column update; concurrent likes never lose a count.
func (r *ReviewGormRepository) IncrementLikes(ctx context.Context, id string) (*models.Review, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("id = ?", id).
		UpdateColumn("likes", gorm.Expr("likes + ?", 1))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, review.ErrReviewNotFound
	}

	var rv models.Review
	if err := r.db.WithContext(ctx).First(&rv, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, review.ErrReviewNotFound
		}
		return nil, err
	}
	return &rv, nil
}

func (r *ReviewGormRepository) Delete(ctx context.Context, id string) (*models.Review, error) {
	var deleted models.Review

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&deleted, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return review.ErrReviewNotFound
			}
			return err
		}
		return tx.Delete(&models.Review{}, "id = ?", id).Error
	})
	if err != nil {
		return nil, err
	}
	return &deleted, nil
}

// Compile-time check
var _ review.Repository = (*ReviewGormRepository)(nil)
