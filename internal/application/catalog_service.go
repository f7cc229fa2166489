package application

import (
	"context"
	"fmt"
	"time"

	cityDomain "github.com/firstoffice/service-office/internal/domain/city"
	officeDomain "github.com/firstoffice/service-office/internal/domain/office"
	"github.com/firstoffice/service-office/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CityDTO is the response representation of a city.
type CityDTO struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Slug             string    `json:"slug"`
	Photo            string    `json:"photo"`
	OfficeSpaceCount int       `json:"office_space_count"`
}

// CityDetailDTO is a city together with its office listings.
type CityDetailDTO struct {
	CityDTO
	OfficeSpaces []OfficeDTO `json:"office_spaces"`
}

// OfficeDTO is the response representation of an office space.
type OfficeDTO struct {
	ID           uuid.UUID  `json:"id"`
	CityID       uuid.UUID  `json:"city_id"`
	Name         string     `json:"name"`
	Slug         string     `json:"slug"`
	Address      string     `json:"address"`
	About        string     `json:"about"`
	Thumbnail    string     `json:"thumbnail"`
	Photos       []string   `json:"photos"`
	Benefits     []string   `json:"benefits"`
	Price        int64      `json:"price"`
	Duration     int        `json:"duration"`
	IsOpen       bool       `json:"is_open"`
	IsFullBooked bool       `json:"is_full_booked"`
	City         CityRefDTO `json:"city"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// CatalogService implements the browse side of the API: cities and
// office listings.
type CatalogService struct {
	offices officeDomain.OfficeRepository
	cities  cityDomain.CityRepository
	logger  *zap.Logger
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(
	offices officeDomain.OfficeRepository,
	cities cityDomain.CityRepository,
	logger *zap.Logger,
) *CatalogService {
	return &CatalogService{offices: offices, cities: cities, logger: logger}
}

// ListCities returns every city with its office count.
func (s *CatalogService) ListCities(ctx context.Context) ([]CityDTO, error) {
	cities, err := s.cities.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cities: %w", err)
	}

	dtos := make([]CityDTO, len(cities))
	for i, c := range cities {
		offices, err := s.offices.ListByCityID(ctx, c.ID())
		if err != nil {
			return nil, err
		}
		dtos[i] = toCityDTO(c, len(offices))
	}
	return dtos, nil
}

// GetCityBySlug returns a city and all its office listings.
func (s *CatalogService) GetCityBySlug(ctx context.Context, slug string) (*CityDetailDTO, error) {
	c, err := s.cities.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	offices, err := s.offices.ListByCityID(ctx, c.ID())
	if err != nil {
		return nil, err
	}

	officeDTOs := make([]OfficeDTO, len(offices))
	for i, o := range offices {
		officeDTOs[i] = toOfficeDTO(o, c)
	}

	return &CityDetailDTO{
		CityDTO:      toCityDTO(c, len(offices)),
		OfficeSpaces: officeDTOs,
	}, nil
}

// ListOffices returns a page of office listings, newest first.
func (s *CatalogService) ListOffices(ctx context.Context, page, limit int) (*shared.PaginatedResult[OfficeDTO], error) {
	offices, total, err := s.offices.ListAll(ctx, page, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list offices: %w", err)
	}

	// Cities are few; resolve each one once per page.
	cityCache := make(map[uuid.UUID]*cityDomain.City)
	dtos := make([]OfficeDTO, len(offices))
	for i, o := range offices {
		c, ok := cityCache[o.CityID()]
		if !ok {
			c, err = s.cities.FindByID(ctx, o.CityID())
			if err != nil {
				return nil, err
			}
			cityCache[o.CityID()] = c
		}
		dtos[i] = toOfficeDTO(o, c)
	}

	result := shared.NewPaginatedResult(dtos, total, page, limit)
	return &result, nil
}

// GetOfficeBySlug returns a single office listing with its city.
func (s *CatalogService) GetOfficeBySlug(ctx context.Context, slug string) (*OfficeDTO, error) {
	o, err := s.offices.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	c, err := s.cities.FindByID(ctx, o.CityID())
	if err != nil {
		return nil, err
	}
	dto := toOfficeDTO(o, c)
	return &dto, nil
}

// --- Helpers ---

func toCityDTO(c *cityDomain.City, officeCount int) CityDTO {
	return CityDTO{
		ID:               c.ID(),
		Name:             c.Name(),
		Slug:             c.Slug(),
		Photo:            c.Photo(),
		OfficeSpaceCount: officeCount,
	}
}

func toOfficeDTO(o *officeDomain.Office, c *cityDomain.City) OfficeDTO {
	return OfficeDTO{
		ID:           o.ID(),
		CityID:       o.CityID(),
		Name:         o.Name(),
		Slug:         o.Slug(),
		Address:      o.Address(),
		About:        o.About(),
		Thumbnail:    o.Thumbnail(),
		Photos:       o.Photos(),
		Benefits:     o.Benefits(),
		Price:        o.PricePerDay(),
		Duration:     o.DurationDays(),
		IsOpen:       o.IsOpen(),
		IsFullBooked: o.IsFullBooked(),
		City:         CityRefDTO{Name: c.Name()},
		CreatedAt:    o.CreatedAt(),
		UpdatedAt:    o.UpdatedAt(),
	}
}
