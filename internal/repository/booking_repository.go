package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	bookingDomain "github.com/firstoffice/service-office/internal/domain/booking"
	"github.com/firstoffice/service-office/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BookingModel is the GORM model for the bookings table.
type BookingModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	BookingTrxID  string    `gorm:"uniqueIndex;not null;size:20"`
	OfficeSpaceID uuid.UUID `gorm:"type:uuid;index;not null"`
	Name          string    `gorm:"not null;size:255"`
	PhoneNumber   string    `gorm:"not null;size:30;index"`
	StartedAt     time.Time `gorm:"not null"`
	EndedAt       time.Time `gorm:"not null"`
	DurationDays  int       `gorm:"not null"`
	TotalAmount   int64     `gorm:"not null"`
	IsPaid        bool      `gorm:"not null;default:false"`
	Version       int64     `gorm:"not null;default:1"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (BookingModel) TableName() string {
	return "bookings"
}

// GormBookingRepository is the GORM-based implementation of BookingRepository.
type GormBookingRepository struct {
	db *gorm.DB
}

// NewGormBookingRepository creates a new GormBookingRepository.
func NewGormBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

// FindByID retrieves a booking by its unique identifier.
func (r *GormBookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*bookingDomain.Booking, error) {
	var model BookingModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("booking", id.String())
		}
		return nil, fmt.Errorf("failed to find booking by ID: %w", err)
	}
	return toDomainBooking(&model), nil
}

// FindByTrxIDAndPhone retrieves a booking by transaction number and phone number.
func (r *GormBookingRepository) FindByTrxIDAndPhone(ctx context.Context, trxID, phoneNumber string) (*bookingDomain.Booking, error) {
	var model BookingModel
	if err := r.db.WithContext(ctx).
		Where("booking_trx_id = ? AND phone_number = ?", trxID, phoneNumber).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("booking", trxID)
		}
		return nil, fmt.Errorf("failed to find booking by transaction number: %w", err)
	}
	return toDomainBooking(&model), nil
}

// ListAll retrieves all bookings with pagination, newest first.
func (r *GormBookingRepository) ListAll(ctx context.Context, page, limit int) ([]*bookingDomain.Booking, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&BookingModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count bookings: %w", err)
	}

	var models []BookingModel
	offset := (page - 1) * limit
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&models).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list bookings: %w", err)
	}

	bookings := make([]*bookingDomain.Booking, len(models))
	for i, m := range models {
		bookings[i] = toDomainBooking(&m)
	}
	return bookings, total, nil
}

// Save persists a new booking.
func (r *GormBookingRepository) Save(ctx context.Context, bk *bookingDomain.Booking) error {
	model := toBookingModel(bk)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save booking: %w", err)
	}
	return nil
}

// Update persists changes to an existing booking with optimistic locking.
func (r *GormBookingRepository) Update(ctx context.Context, bk *bookingDomain.Booking) error {
	model := toBookingModel(bk)

	// Only update if the version matches (current version - 1, since
	// IncrementVersion was called before persisting).
	expectedVersion := bk.Version() - 1
	result := r.db.WithContext(ctx).
		Model(&BookingModel{}).
		Where("id = ? AND version = ?", model.ID, expectedVersion).
		Updates(map[string]interface{}{
			"name":          model.Name,
			"phone_number":  model.PhoneNumber,
			"started_at":    model.StartedAt,
			"ended_at":      model.EndedAt,
			"duration_days": model.DurationDays,
			"total_amount":  model.TotalAmount,
			"is_paid":       model.IsPaid,
			"version":       model.Version,
			"updated_at":    model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update booking: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.NewConflictError("booking was modified by another transaction")
	}
	return nil
}

// Delete removes a booking permanently.
func (r *GormBookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&BookingModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete booking: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.NewNotFoundError("booking", id.String())
	}
	return nil
}

// --- Conversion Helpers ---

func toBookingModel(bk *bookingDomain.Booking) *BookingModel {
	return &BookingModel{
		ID:            bk.ID(),
		BookingTrxID:  bk.BookingTrxID(),
		OfficeSpaceID: bk.OfficeSpaceID(),
		Name:          bk.Name(),
		PhoneNumber:   bk.PhoneNumber(),
		StartedAt:     bk.StartedAt(),
		EndedAt:       bk.EndedAt(),
		DurationDays:  bk.DurationDays(),
		TotalAmount:   bk.TotalAmount(),
		IsPaid:        bk.IsPaid(),
		Version:       bk.Version(),
		CreatedAt:     bk.CreatedAt(),
		UpdatedAt:     bk.UpdatedAt(),
	}
}

func toDomainBooking(m *BookingModel) *bookingDomain.Booking {
	return bookingDomain.ReconstructBooking(
		m.ID,
		m.BookingTrxID,
		m.OfficeSpaceID,
		m.Name,
		m.PhoneNumber,
		m.StartedAt,
		m.EndedAt,
		m.DurationDays,
		m.TotalAmount,
		m.IsPaid,
		m.Version,
		m.CreatedAt,
		m.UpdatedAt,
	)
}
