package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/idanaslund/final-project-backend/internal/domain/restaurant"
	"github.com/idanaslund/final-project-backend/internal/infra/repository"
	"github.com/idanaslund/final-project-backend/internal/models"
)

func TestRestaurantRepository_UpsertAndRead(t *testing.T) {
	gdb := newTestDB(t)
	repo := repository.NewRestaurantGormRepository(gdb)
	ctx := context.Background()

	data := []models.Restaurant{
		{ID: 2, Name: "Taco Place", MealTypes: models.StringList{"lunch", "dinner"}, DogFriendly: true},
		{ID: 1, Name: "Noodle Bar", OpeningHours: models.OpeningHours{Monday: "11-22"}},
	}
	if err := repo.Upsert(ctx, data); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 || list[0].ID != 1 || list[1].ID != 2 {
		t.Fatalf("expected ordering by id, got %+v", list)
	}

	taco, err := repo.GetByID(ctx, 2)
	if err != nil {
		t.Fatalf("by id: %v", err)
	}
	if len(taco.MealTypes) != 2 || taco.MealTypes[1] != "dinner" || !taco.DogFriendly {
		t.Fatalf("unexpected restaurant: %+v", taco)
	}

	noodle, err := repo.GetByName(ctx, "Noodle Bar")
	if err != nil || noodle.OpeningHours.Monday != "11-22" {
		t.Fatalf("by name: %v %+v", err, noodle)
	}
}

func TestRestaurantRepository_UpsertIsIdempotent(t *testing.T) {
	gdb := newTestDB(t)
	repo := repository.NewRestaurantGormRepository(gdb)
	ctx := context.Background()

	if err := repo.Upsert(ctx, []models.Restaurant{{ID: 1, Name: "Noodle Bar", Budget: "$"}}); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if err := repo.Upsert(ctx, []models.Restaurant{{ID: 1, Name: "Noodle Bar", Budget: "$$"}}); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].Budget != "$$" {
		t.Fatalf("expected single updated row, got %+v", list)
	}
}

func TestRestaurantRepository_NotFound(t *testing.T) {
	gdb := newTestDB(t)
	repo := repository.NewRestaurantGormRepository(gdb)
	ctx := context.Background()

	if _, err := repo.GetByID(ctx, 99); !errors.Is(err, restaurant.ErrRestaurantNotFound) {
		t.Fatalf("by id: expected not found, got %v", err)
	}
	if _, err := repo.GetByName(ctx, "Nowhere"); !errors.Is(err, restaurant.ErrRestaurantNotFound) {
		t.Fatalf("by name: expected not found, got %v", err)
	}
}
