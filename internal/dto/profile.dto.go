package dto

import "github.com/idanaslund/final-project-backend/internal/models"

// ProfileDTO is the public projection of a user, without credential material.
type ProfileDTO struct {
	ID           string              `json:"id"`
	Username     string              `json:"username"`
	Email        *string             `json:"email"`
	FullName     string              `json:"fullName"`
	Phone        string              `json:"phone"`
	Bio          string              `json:"bio"`
	ProfileImage models.ProfileImage `json:"profileImage"`
}

func NewProfileDTO(u *models.User) ProfileDTO {
	return ProfileDTO{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		FullName:     u.FullName,
		Phone:        u.Phone,
		Bio:          u.Bio,
		ProfileImage: u.ProfileImage,
	}
}
