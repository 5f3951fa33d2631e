package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProfileImage struct {
	Name     string `gorm:"size:255" json:"name"`
	ImageURL string `gorm:"size:1024" json:"imageURL"`
}

type User struct {
	ID string `gorm:"size:36;primaryKey" json:"id"`

	Username     string  `gorm:"size:20;uniqueIndex;not null" json:"username"`
	Email        *string `gorm:"size:255;uniqueIndex" json:"email"`
	PasswordHash string  `gorm:"size:255;not null" json:"-"`
	AccessToken  string  `gorm:"size:256;uniqueIndex;not null" json:"-"`

	FullName     string       `gorm:"size:100" json:"fullName"`
	Phone        string       `gorm:"size:20" json:"phone"`
	Bio          string       `gorm:"size:500" json:"bio"`
	ProfileImage ProfileImage `gorm:"embedded;embeddedPrefix:profile_image_" json:"profileImage"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
