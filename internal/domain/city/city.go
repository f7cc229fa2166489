package city

import (
	"time"

	"github.com/firstoffice/service-office/internal/domain/shared"
	"github.com/google/uuid"
)

// City is an aggregate describing a city offices are listed under.
type City struct {
	id        uuid.UUID
	name      string
	slug      string
	photo     string
	createdAt time.Time
	updatedAt time.Time
}

// NewCity creates a new City with validated fields.
func NewCity(name, slug, photo string) (*City, error) {
	if name == "" {
		return nil, shared.NewValidationError("city name is required")
	}
	if slug == "" {
		return nil, shared.NewValidationError("city slug is required")
	}

	now := time.Now().UTC()
	return &City{
		id:        uuid.New(),
		name:      name,
		slug:      slug,
		photo:     photo,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructCity rebuilds a City from persistence data (no validation).
func ReconstructCity(id uuid.UUID, name, slug, photo string, createdAt, updatedAt time.Time) *City {
	return &City{
		id:        id,
		name:      name,
		slug:      slug,
		photo:     photo,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// ID returns the city's unique identifier.
func (c *City) ID() uuid.UUID { return c.id }

// Name returns the display name.
func (c *City) Name() string { return c.name }

// Slug returns the URL slug used in listing links.
func (c *City) Slug() string { return c.slug }

// Photo returns the photo path relative to the asset base URL.
func (c *City) Photo() string { return c.photo }

// CreatedAt returns the creation timestamp.
func (c *City) CreatedAt() time.Time { return c.createdAt }

// UpdatedAt returns the last-updated timestamp.
func (c *City) UpdatedAt() time.Time { return c.updatedAt }
