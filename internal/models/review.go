package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Review struct {
	ID string `gorm:"size:36;primaryKey" json:"id"`

	Review string `gorm:"size:140;not null" json:"review"`
	Likes  int    `gorm:"not null;default:0" json:"likes"`

	UserID string `gorm:"size:36;not null;index" json:"userId"`
	User   User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	RestaurantID *uint       `gorm:"index" json:"restaurantId"`
	Restaurant   *Restaurant `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	CreatedAt time.Time `gorm:"index" json:"createdAt"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
