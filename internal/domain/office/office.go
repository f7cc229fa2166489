package office

import (
	"time"

	"github.com/firstoffice/service-office/internal/domain/shared"
	"github.com/google/uuid"
)

// Office is the aggregate root for a rentable office space.
type Office struct {
	id     uuid.UUID
	cityID uuid.UUID

	name      string
	slug      string
	address   string
	about     string
	thumbnail string
	photos    []string
	benefits  []string

	pricePerDay  int64
	durationDays int

	isOpen       bool
	isFullBooked bool

	createdAt time.Time
	updatedAt time.Time
}

// NewOffice creates a new open office space with validated fields.
func NewOffice(
	cityID uuid.UUID,
	name, slug, address, about, thumbnail string,
	photos, benefits []string,
	pricePerDay int64,
	durationDays int,
) (*Office, error) {
	if cityID == uuid.Nil {
		return nil, shared.NewValidationError("city ID is required")
	}
	if name == "" {
		return nil, shared.NewValidationError("office name is required")
	}
	if slug == "" {
		return nil, shared.NewValidationError("office slug is required")
	}
	if pricePerDay <= 0 {
		return nil, shared.NewValidationError("price per day must be positive")
	}
	if durationDays <= 0 {
		return nil, shared.NewValidationError("duration must be positive")
	}

	now := time.Now().UTC()
	return &Office{
		id:           uuid.New(),
		cityID:       cityID,
		name:         name,
		slug:         slug,
		address:      address,
		about:        about,
		thumbnail:    thumbnail,
		photos:       photos,
		benefits:     benefits,
		pricePerDay:  pricePerDay,
		durationDays: durationDays,
		isOpen:       true,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructOffice rebuilds an Office from persistence data (no validation).
func ReconstructOffice(
	id, cityID uuid.UUID,
	name, slug, address, about, thumbnail string,
	photos, benefits []string,
	pricePerDay int64,
	durationDays int,
	isOpen, isFullBooked bool,
	createdAt, updatedAt time.Time,
) *Office {
	return &Office{
		id:           id,
		cityID:       cityID,
		name:         name,
		slug:         slug,
		address:      address,
		about:        about,
		thumbnail:    thumbnail,
		photos:       photos,
		benefits:     benefits,
		pricePerDay:  pricePerDay,
		durationDays: durationDays,
		isOpen:       isOpen,
		isFullBooked: isFullBooked,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// ID returns the office's unique identifier.
func (o *Office) ID() uuid.UUID { return o.id }

// CityID returns the identifier of the city this office is in.
func (o *Office) CityID() uuid.UUID { return o.cityID }

// Name returns the office name.
func (o *Office) Name() string { return o.name }

// Slug returns the URL slug used in listing links.
func (o *Office) Slug() string { return o.slug }

// Address returns the street address.
func (o *Office) Address() string { return o.address }

// About returns the marketing description.
func (o *Office) About() string { return o.about }

// Thumbnail returns the thumbnail path relative to the asset base URL.
func (o *Office) Thumbnail() string { return o.thumbnail }

// Photos returns the gallery photo paths relative to the asset base URL.
func (o *Office) Photos() []string { return o.photos }

// Benefits returns the bullet-point benefits shown on the details page.
func (o *Office) Benefits() []string { return o.benefits }

// PricePerDay returns the daily rate in whole rupiah.
func (o *Office) PricePerDay() int64 { return o.pricePerDay }

// DurationDays returns the booking package length in working days.
func (o *Office) DurationDays() int { return o.durationDays }

// IsOpen reports whether the office accepts bookings at all.
func (o *Office) IsOpen() bool { return o.isOpen }

// IsFullBooked reports whether the office has no capacity left.
func (o *Office) IsFullBooked() bool { return o.isFullBooked }

// CreatedAt returns the creation timestamp.
func (o *Office) CreatedAt() time.Time { return o.createdAt }

// UpdatedAt returns the last-updated timestamp.
func (o *Office) UpdatedAt() time.Time { return o.updatedAt }

// Bookable reports whether a new booking may be created for this office.
func (o *Office) Bookable() bool {
	return o.isOpen && !o.isFullBooked
}
