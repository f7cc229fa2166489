package office

import (
	"context"

	"github.com/google/uuid"
)

// OfficeRepository defines the persistence contract for office spaces.
type OfficeRepository interface {
	// FindByID retrieves an office by its unique identifier.
	FindByID(ctx context.Context, id uuid.UUID) (*Office, error)

	// FindBySlug retrieves an office by its URL slug.
	FindBySlug(ctx context.Context, slug string) (*Office, error)

	// ListAll retrieves offices with pagination, newest first.
	ListAll(ctx context.Context, page, limit int) ([]*Office, int64, error)

	// ListByCityID retrieves all offices in a city.
	ListByCityID(ctx context.Context, cityID uuid.UUID) ([]*Office, error)

	// Save persists a new office.
	Save(ctx context.Context, office *Office) error
}
