package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	officeDomain "github.com/firstoffice/service-office/internal/domain/office"
	"github.com/firstoffice/service-office/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OfficeModel is the GORM model for the office_spaces table.
type OfficeModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CityID       uuid.UUID       `gorm:"type:uuid;index;not null"`
	Name         string          `gorm:"not null;size:255"`
	Slug         string          `gorm:"uniqueIndex;not null;size:255"`
	Address      string          `gorm:"size:500"`
	About        string          `gorm:"type:text"`
	Thumbnail    string          `gorm:"size:500"`
	Photos       json.RawMessage `gorm:"type:jsonb"`
	Benefits     json.RawMessage `gorm:"type:jsonb"`
	PricePerDay  int64           `gorm:"not null"`
	DurationDays int             `gorm:"not null"`
	IsOpen       bool            `gorm:"not null;default:true"`
	IsFullBooked bool            `gorm:"not null;default:false"`
	CreatedAt    time.Time       `gorm:"not null"`
	UpdatedAt    time.Time       `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (OfficeModel) TableName() string {
	return "office_spaces"
}

// GormOfficeRepository is the GORM-based implementation of OfficeRepository.
type GormOfficeRepository struct {
	db *gorm.DB
}

// NewGormOfficeRepository creates a new GormOfficeRepository.
func NewGormOfficeRepository(db *gorm.DB) *GormOfficeRepository {
	return &GormOfficeRepository{db: db}
}

// FindByID retrieves an office by its unique identifier.
func (r *GormOfficeRepository) FindByID(ctx context.Context, id uuid.UUID) (*officeDomain.Office, error) {
	var model OfficeModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("office space", id.String())
		}
		return nil, fmt.Errorf("failed to find office by ID: %w", err)
	}
	return toDomainOffice(&model)
}

// FindBySlug retrieves an office by its URL slug.
func (r *GormOfficeRepository) FindBySlug(ctx context.Context, slug string) (*officeDomain.Office, error) {
	var model OfficeModel
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("office space", slug)
		}
		return nil, fmt.Errorf("failed to find office by slug: %w", err)
	}
	return toDomainOffice(&model)
}

// ListAll retrieves offices with pagination, newest first.
func (r *GormOfficeRepository) ListAll(ctx context.Context, page, limit int) ([]*officeDomain.Office, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&OfficeModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count offices: %w", err)
	}

	var models []OfficeModel
	offset := (page - 1) * limit
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&models).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list offices: %w", err)
	}

	offices := make([]*officeDomain.Office, len(models))
	for i, m := range models {
		o, err := toDomainOffice(&m)
		if err != nil {
			return nil, 0, err
		}
		offices[i] = o
	}
	return offices, total, nil
}

// ListByCityID retrieves all offices in a city.
func (r *GormOfficeRepository) ListByCityID(ctx context.Context, cityID uuid.UUID) ([]*officeDomain.Office, error) {
	var models []OfficeModel
	if err := r.db.WithContext(ctx).
		Where("city_id = ?", cityID).
		Order("created_at DESC").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list offices by city: %w", err)
	}

	offices := make([]*officeDomain.Office, len(models))
	for i, m := range models {
		o, err := toDomainOffice(&m)
		if err != nil {
			return nil, err
		}
		offices[i] = o
	}
	return offices, nil
}

// Save persists a new office.
func (r *GormOfficeRepository) Save(ctx context.Context, o *officeDomain.Office) error {
	model, err := toOfficeModel(o)
	if err != nil {
		return fmt.Errorf("failed to convert office to model: %w", err)
	}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save office: %w", err)
	}
	return nil
}

// --- Conversion Helpers ---

func toOfficeModel(o *officeDomain.Office) (*OfficeModel, error) {
	photos, err := json.Marshal(o.Photos())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal photos: %w", err)
	}
	benefits, err := json.Marshal(o.Benefits())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal benefits: %w", err)
	}

	return &OfficeModel{
		ID:           o.ID(),
		CityID:       o.CityID(),
		Name:         o.Name(),
		Slug:         o.Slug(),
		Address:      o.Address(),
		About:        o.About(),
		Thumbnail:    o.Thumbnail(),
		Photos:       photos,
		Benefits:     benefits,
		PricePerDay:  o.PricePerDay(),
		DurationDays: o.DurationDays(),
		IsOpen:       o.IsOpen(),
		IsFullBooked: o.IsFullBooked(),
		CreatedAt:    o.CreatedAt(),
		UpdatedAt:    o.UpdatedAt(),
	}, nil
}

func toDomainOffice(m *OfficeModel) (*officeDomain.Office, error) {
	var photos []string
	if len(m.Photos) > 0 {
		if err := json.Unmarshal(m.Photos, &photos); err != nil {
			return nil, fmt.Errorf("failed to unmarshal photos: %w", err)
		}
	}
	var benefits []string
	if len(m.Benefits) > 0 {
		if err := json.Unmarshal(m.Benefits, &benefits); err != nil {
			return nil, fmt.Errorf("failed to unmarshal benefits: %w", err)
		}
	}

	return officeDomain.ReconstructOffice(
		m.ID,
		m.CityID,
		m.Name,
		m.Slug,
		m.Address,
		m.About,
		m.Thumbnail,
		photos,
		benefits,
		m.PricePerDay,
		m.DurationDays,
		m.IsOpen,
		m.IsFullBooked,
		m.CreatedAt,
		m.UpdatedAt,
	), nil
}
