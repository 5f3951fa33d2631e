package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/idanaslund/final-project-backend/internal/domain/account"
	"github.com/idanaslund/final-project-backend/internal/models"
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

func (r *UserGormRepository) CreateUser(ctx context.Context, u *models.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return account.ErrDuplicateUser
		}
		return err
	}
	return nil
}

func (r *UserGormRepository) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *UserGormRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.first(ctx, "username = ?", username)
}

func (r *UserGormRepository) GetUserByToken(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, account.ErrUserNotFound
	}
	return r.first(ctx, "access_token = ?", token)
}

func (r *UserGormRepository) UpdateProfile(
	ctx context.Context,
	id string,
	patch account.ProfilePatch,
) (*models.User, error) {

	updates := map[string]any{}
	if patch.Email != nil {
		if *patch.Email == "" {
			updates["email"] = nil
		} else {
			updates["email"] = *patch.Email
		}
	}
	if patch.FullName != nil {
		updates["full_name"] = *patch.FullName
	}
	if patch.Phone != nil {
		updates["phone"] = *patch.Phone
	}
	if patch.Bio != nil {
		updates["bio"] = *patch.Bio
	}
	if patch.ProfileImage != nil {
		updates["profile_image_name"] = patch.ProfileImage.Name
		updates["profile_image_image_url"] = patch.ProfileImage.ImageURL
	}

	return r.update(ctx, id, updates)
}

func (r *UserGormRepository) SetProfileImage(
	ctx context.Context,
	id string,
	img models.ProfileImage,
) (*models.User, error) {
	return r.update(ctx, id, map[string]any{
		"profile_image_name":      img.Name,
		"profile_image_image_url": img.ImageURL,
	})
}

func (r *UserGormRepository) update(ctx context.Context, id string, updates map[string]any) (*models.User, error) {
	if len(updates) == 0 {
		return r.GetUserByID(ctx, id)
	}

	res := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Updates(updates)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return nil, account.ErrEmailTaken
		}
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, account.ErrUserNotFound
	}

	return r.GetUserByID(ctx, id)
}

func (r *UserGormRepository) first(ctx context.Context, query string, arg any) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where(query, arg).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, account.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Compile-time check
var _ account.Repository = (*UserGormRepository)(nil)
