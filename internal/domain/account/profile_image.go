package account

import (
	"context"

	"github.com/google/uuid"

	"github.com/idanaslund/final-project-backend/internal/httperr"
)

const MaxImageBytes = 5 << 20

var (
	ErrImageStorageDisabled = httperr.ErrUnavailable("image_storage_disabled", "Image upload is not available")
	ErrInvalidImage         = httperr.ErrBusiness("invalid_image", "Image must be a JPEG, PNG, GIF or WebP file")
	ErrImageTooLarge        = httperr.ErrBusiness("image_too_large", "Image must be at most 5 MB")
)

// ImageStore persists an encoded image and returns its public URL.
type ImageStore interface {
	Put(ctx context.Context, key, contentType string, body []byte) (string, error)
}

// ImageKey returns a fresh object key, so a new upload never overwrites a cached URL.
func ImageKey(userID string) string {
	return "profile-images/" + userID + "/" + uuid.NewString() + ".webp"
}
