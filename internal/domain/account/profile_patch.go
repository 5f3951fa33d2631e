package account

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/idanaslund/final-project-backend/internal/httperr"
	"github.com/idanaslund/final-project-backend/internal/models"
	"github.com/idanaslund/final-project-backend/internal/validators"
)

var patchableFields = map[string]bool{
	"email":        true,
	"fullName":     true,
	"phone":        true,
	"bio":          true,
	"profileImage": true,
}

var ErrInvalidPatch = httperr.ErrBusiness("invalid_patch", "Invalid profile update")

// ProfilePatch carries the profile fields a user may change. A nil field is left
// untouched; an empty Email clears the address.
type ProfilePatch struct {
	Email        *string              `json:"email"`
	FullName     *string              `json:"fullName"`
	Phone        *string              `json:"phone"`
	Bio          *string              `json:"bio"`
	ProfileImage *models.ProfileImage `json:"profileImage"`
}

// DecodeProfilePatch rejects any key outside the allowlist before decoding.
func DecodeProfilePatch(body []byte) (ProfilePatch, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return ProfilePatch{}, ErrInvalidPatch
	}

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if !patchableFields[k] {
			return ProfilePatch{}, httperr.ErrBusiness("field_not_patchable", fmt.Sprintf("Field %s cannot be updated", k))
		}
	}

	var p ProfilePatch
	if err := json.Unmarshal(body, &p); err != nil {
		return ProfilePatch{}, ErrInvalidPatch
	}
	return p, nil
}

func (p ProfilePatch) IsEmpty() bool {
	return p.Email == nil && p.FullName == nil && p.Phone == nil && p.Bio == nil && p.ProfileImage == nil
}

func (p ProfilePatch) Validate() error {
	if p.Email != nil && *p.Email != "" {
		if err := ValidateEmail(*p.Email); err != nil {
			return err
		}
	}
	if p.FullName != nil && !validators.LengthBetween(*p.FullName, 0, 100) {
		return httperr.ErrBusiness("invalid_full_name", "Full name can be at most 100 characters")
	}
	if p.Phone != nil && !validators.LengthBetween(*p.Phone, 0, 20) {
		return httperr.ErrBusiness("invalid_phone", "Phone can be at most 20 characters")
	}
	if p.Bio != nil && !validators.LengthBetween(*p.Bio, 0, 500) {
		return httperr.ErrBusiness("invalid_bio", "Bio can be at most 500 characters")
	}
	return nil
}

// Fields lists the json names of the fields the patch sets.
func (p ProfilePatch) Fields() []string {
	var out []string
	if p.Email != nil {
		out = append(out, "email")
	}
	if p.FullName != nil {
		out = append(out, "fullName")
	}
	if p.Phone != nil {
		out = append(out, "phone")
	}
	if p.Bio != nil {
		out = append(out, "bio")
	}
	if p.ProfileImage != nil {
		out = append(out, "profileImage")
	}
	return out
}
