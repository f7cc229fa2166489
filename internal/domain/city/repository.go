package city

import (
	"context"

	"github.com/google/uuid"
)

// CityRepository defines the persistence contract for cities.
type CityRepository interface {
	// FindByID retrieves a city by its unique identifier.
	FindByID(ctx context.Context, id uuid.UUID) (*City, error)

	// FindBySlug retrieves a city by its URL slug.
	FindBySlug(ctx context.Context, slug string) (*City, error)

	// ListAll retrieves every city, alphabetically.
	ListAll(ctx context.Context) ([]*City, error)

	// Save persists a new city.
	Save(ctx context.Context, city *City) error
}
