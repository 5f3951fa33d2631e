// Package seed loads the bundled restaurant dataset into the store.
package seed

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/idanaslund/final-project-backend/internal/models"
)

//go:embed restaurants.json
var restaurantsJSON []byte

type Upserter interface {
	Upsert(ctx context.Context, list []models.Restaurant) error
}

// Load decodes the embedded dataset and rejects duplicate ids or names.
func Load() ([]models.Restaurant, error) {
	var list []models.Restaurant
	if err := json.Unmarshal(restaurantsJSON, &list); err != nil {
		return nil, fmt.Errorf("decode restaurants: %w", err)
	}

	ids := make(map[uint]bool, len(list))
	names := make(map[string]bool, len(list))
	for _, r := range list {
		if r.ID == 0 || r.Name == "" {
			return nil, fmt.Errorf("restaurant without id or name: %+v", r)
		}
		if ids[r.ID] || names[r.Name] {
			return nil, fmt.Errorf("duplicate restaurant %d %q", r.ID, r.Name)
		}
		ids[r.ID] = true
		names[r.Name] = true
	}
	return list, nil
}

// Run upserts the dataset and returns how many restaurants it holds.
func Run(ctx context.Context, repo Upserter) (int, error) {
	list, err := Load()
	if err != nil {
		return 0, err
	}
	if err := repo.Upsert(ctx, list); err != nil {
		return 0, fmt.Errorf("upsert restaurants: %w", err)
	}
	return len(list), nil
}
