package dto

import "github.com/idanaslund/final-project-backend/internal/models"

type SignupDTO struct {
	UserID      string `json:"userId"`
	Username    string `json:"username"`
	AccessToken string `json:"accessToken"`
}

type LoginDTO struct {
	UserID       string              `json:"userId"`
	Username     string              `json:"username"`
	AccessToken  string              `json:"accessToken"`
	Email        *string             `json:"email"`
	FullName     string              `json:"fullName"`
	ProfileImage models.ProfileImage `json:"profileImage"`
}

// The token is only ever returned by signup and login.
func NewSignupDTO(u *models.User) SignupDTO {
	return SignupDTO{
		UserID:      u.ID,
		Username:    u.Username,
		AccessToken: u.AccessToken,
	}
}

func NewLoginDTO(u *models.User) LoginDTO {
	return LoginDTO{
		UserID:       u.ID,
		Username:     u.Username,
		AccessToken:  u.AccessToken,
		Email:        u.Email,
		FullName:     u.FullName,
		ProfileImage: u.ProfileImage,
	}
}
