package repository_test

import (
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/idanaslund/final-project-backend/internal/db/dbtest"
	"github.com/idanaslund/final-project-backend/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	return dbtest.Open(t)
}

func seedUser(t *testing.T, gdb *gorm.DB, username string) *models.User {
	t.Helper()
	u := &models.User{
		Username:     username,
		PasswordHash: "hash",
		AccessToken:  "token-" + username,
	}
	if err := gdb.Create(u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func seedRestaurant(t *testing.T, gdb *gorm.DB, id uint, name string) *models.Restaurant {
	t.Helper()
	r := &models.Restaurant{ID: id, Name: name}
	if err := gdb.Create(r).Error; err != nil {
		t.Fatalf("seed restaurant: %v", err)
	}
	return r
}

func seedReview(t *testing.T, gdb *gorm.DB, userID string, restaurantID *uint, text string, at time.Time) *models.Review {
	t.Helper()
	rv := &models.Review{
		Review:       text,
		UserID:       userID,
		RestaurantID: restaurantID,
		CreatedAt:    at,
	}
	if err := gdb.Create(rv).Error; err != nil {
		t.Fatalf("seed review: %v", err)
	}
	return rv
}

func strPtr(s string) *string { return &s }

func uintPtr(v uint) *uint { return &v }
