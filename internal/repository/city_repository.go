package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	cityDomain "github.com/firstoffice/service-office/internal/domain/city"
	"github.com/firstoffice/service-office/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CityModel is the GORM model for the cities table.
type CityModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"not null;size:255"`
	Slug      string    `gorm:"uniqueIndex;not null;size:255"`
	Photo     string    `gorm:"size:500"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (CityModel) TableName() string {
	return "cities"
}

// GormCityRepository is the GORM-based implementation of CityRepository.
type GormCityRepository struct {
	db *gorm.DB
}

// NewGormCityRepository creates a new GormCityRepository.
func NewGormCityRepository(db *gorm.DB) *GormCityRepository {
	return &GormCityRepository{db: db}
}

// FindByID retrieves a city by its unique identifier.
func (r *GormCityRepository) FindByID(ctx context.Context, id uuid.UUID) (*cityDomain.City, error) {
	var model CityModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("city", id.String())
		}
		return nil, fmt.Errorf("failed to find city by ID: %w", err)
	}
	return toDomainCity(&model), nil
}

// FindBySlug retrieves a city by its URL slug.
func (r *GormCityRepository) FindBySlug(ctx context.Context, slug string) (*cityDomain.City, error) {
	var model CityModel
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("city", slug)
		}
		return nil, fmt.Errorf("failed to find city by slug: %w", err)
	}
	return toDomainCity(&model), nil
}

// ListAll retrieves every city, alphabetically.
func (r *GormCityRepository) ListAll(ctx context.Context) ([]*cityDomain.City, error) {
	var models []CityModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list cities: %w", err)
	}

	cities := make([]*cityDomain.City, len(models))
	for i, m := range models {
		cities[i] = toDomainCity(&m)
	}
	return cities, nil
}

// Save persists a new city.
func (r *GormCityRepository) Save(ctx context.Context, c *cityDomain.City) error {
	model := toCityModel(c)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save city: %w", err)
	}
	return nil
}

// --- Conversion Helpers ---

func toCityModel(c *cityDomain.City) *CityModel {
	return &CityModel{
		ID:        c.ID(),
		Name:      c.Name(),
		Slug:      c.Slug(),
		Photo:     c.Photo(),
		CreatedAt: c.CreatedAt(),
		UpdatedAt: c.UpdatedAt(),
	}
}

func toDomainCity(m *CityModel) *cityDomain.City {
	return cityDomain.ReconstructCity(m.ID, m.Name, m.Slug, m.Photo, m.CreatedAt, m.UpdatedAt)
}
