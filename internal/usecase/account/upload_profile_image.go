package account

import (
	"context"
	"path/filepath"

	"github.com/idanaslund/final-project-backend/internal/audit"
	domain "github.com/idanaslund/final-project-backend/internal/domain/account"
	"github.com/idanaslund/final-project-backend/internal/imaging"
	"github.com/idanaslund/final-project-backend/internal/models"
)

type UploadProfileImage struct {
	repo   domain.Repository
	images domain.ImageStore
	audit  *audit.Dispatcher
}

// NewUploadProfileImage accepts a nil store; uploads then fail with ErrImageStorageDisabled.
func NewUploadProfileImage(
	repo domain.Repository,
	images domain.ImageStore,
	audit *audit.Dispatcher,
) *UploadProfileImage {
	return &UploadProfileImage{
		repo:   repo,
		images: images,
		audit:  audit,
	}
}

func (uc *UploadProfileImage) Execute(
	ctx context.Context,
	callerID string,
	profileID string,
	filename string,
	data []byte,
) (*models.User, error) {

	if uc.images == nil {
		return nil, domain.ErrImageStorageDisabled
	}
	if callerID != profileID {
		return nil, domain.ErrNotProfileOwner
	}
	if len(data) > domain.MaxImageBytes {
		return nil, domain.ErrImageTooLarge
	}

	encoded, err := imaging.ToWebP(data)
	if err != nil {
		return nil, domain.ErrInvalidImage
	}

	key := domain.ImageKey(profileID)
	url, err := uc.images.Put(ctx, key, imaging.ContentType, encoded)
	if err != nil {
		return nil, err
	}

	user, err := uc.repo.SetProfileImage(ctx, profileID, models.ProfileImage{
		Name:     filepath.Base(filename),
		ImageURL: url,
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   callerID,
		Action:   audit.ActionProfileImageUploaded,
		Entity:   "user",
		EntityID: profileID,
		Metadata: map[string]string{"key": key},
	})

	return user, nil
}
