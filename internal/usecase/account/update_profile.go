package account

import (
	"context"

	"github.com/idanaslund/final-project-backend/internal/audit"
	domain "github.com/idanaslund/final-project-backend/internal/domain/account"
	"github.com/idanaslund/final-project-backend/internal/models"
)

type UpdateProfile struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateProfile(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateProfile {
	return &UpdateProfile{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateProfile) Execute(
	ctx context.Context,
	callerID string,
	profileID string,
	body []byte,
) (*models.User, error) {

	if callerID != profileID {
		return nil, domain.ErrNotProfileOwner
	}

	patch, err := domain.DecodeProfilePatch(body)
	if err != nil {
		return nil, err
	}
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	user, err := uc.repo.UpdateProfile(ctx, profileID, patch)
	if err != nil {
		return nil, err
	}

	if !patch.IsEmpty() {
		uc.audit.Dispatch(audit.Event{
			UserID:   callerID,
			Action:   audit.ActionProfileUpdated,
			Entity:   "user",
			EntityID: profileID,
			Metadata: patch.Fields(),
		})
	}

	return user, nil
}
