package application

import (
	"context"
	"fmt"
	"time"

	bookingDomain "github.com/firstoffice/service-office/internal/domain/booking"
	cityDomain "github.com/firstoffice/service-office/internal/domain/city"
	officeDomain "github.com/firstoffice/service-office/internal/domain/office"
	"github.com/firstoffice/service-office/internal/domain/shared"
	"github.com/firstoffice/service-office/internal/events"
	"github.com/firstoffice/service-office/internal/platform/kafka"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DateLayout is the wire format for booking dates.
const DateLayout = "2006-01-02"

// CreateBookingRequest holds the data needed to create a new booking.
type CreateBookingRequest struct {
	Name          string    `json:"name" binding:"required"`
	PhoneNumber   string    `json:"phone_number" binding:"required"`
	StartedAt     string    `json:"started_at" binding:"required"`
	OfficeSpaceID uuid.UUID `json:"office_space_id" binding:"required"`
}

// CheckBookingRequest holds the lookup credentials for an existing booking.
type CheckBookingRequest struct {
	BookingTrxID string `json:"booking_trx_id" binding:"required"`
	PhoneNumber  string `json:"phone_number" binding:"required"`
}

// UpdateBookingRequest carries the full edited record. Derived fields
// (ended_at, duration, total_amount) are recomputed server-side and
// ignored if supplied.
type UpdateBookingRequest struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
	StartedAt   string `json:"started_at"`
}

// CityRefDTO is the nested city reference on an office.
type CityRefDTO struct {
	Name string `json:"name"`
}

// OfficeRefDTO is the nested office reference on a booking.
type OfficeRefDTO struct {
	Name      string     `json:"name"`
	Thumbnail string     `json:"thumbnail"`
	City      CityRefDTO `json:"city"`
}

// BookingDTO is the response representation of a booking.
type BookingDTO struct {
	ID            uuid.UUID    `json:"id"`
	BookingTrxID  string       `json:"booking_trx_id"`
	OfficeSpaceID uuid.UUID    `json:"office_space_id"`
	Name          string       `json:"name"`
	PhoneNumber   string       `json:"phone_number"`
	StartedAt     string       `json:"started_at"`
	EndedAt       string       `json:"ended_at"`
	Duration      int          `json:"duration"`
	TotalAmount   int64        `json:"total_amount"`
	IsPaid        bool         `json:"is_paid"`
	Office        OfficeRefDTO `json:"office"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// EventPublisher publishes CloudEvents to a topic. Satisfied by
// kafka.Producer.
type EventPublisher interface {
	PublishEvent(ctx context.Context, topic string, event kafka.CloudEvent) error
}

// BookingService is the application service orchestrating booking use cases.
type BookingService struct {
	bookings bookingDomain.BookingRepository
	offices  officeDomain.OfficeRepository
	cities   cityDomain.CityRepository
	pricing  bookingDomain.PricingStrategy
	producer EventPublisher
	logger   *zap.Logger
}

// NewBookingService creates a new BookingService.
func NewBookingService(
	bookings bookingDomain.BookingRepository,
	offices officeDomain.OfficeRepository,
	cities cityDomain.CityRepository,
	pricing bookingDomain.PricingStrategy,
	producer EventPublisher,
	logger *zap.Logger,
) *BookingService {
	return &BookingService{
		bookings: bookings,
		offices:  offices,
		cities:   cities,
		pricing:  pricing,
		producer: producer,
		logger:   logger,
	}
}

// CreateBooking reserves an office space for the requested start date.
// Duration and total amount are derived from the office's package.
func (s *BookingService) CreateBooking(ctx context.Context, req CreateBookingRequest) (*BookingDTO, error) {
	startedAt, err := time.Parse(DateLayout, req.StartedAt)
	if err != nil {
		return nil, shared.NewValidationError(fmt.Sprintf("invalid start date: %s", req.StartedAt))
	}

	off, err := s.offices.FindByID(ctx, req.OfficeSpaceID)
	if err != nil {
		return nil, err
	}
	if !off.Bookable() {
		return nil, shared.NewConflictError("office space is not accepting bookings")
	}

	total, err := s.pricing.Calculate(bookingDomain.PricingParams{
		PricePerDay:  off.PricePerDay(),
		DurationDays: off.DurationDays(),
	})
	if err != nil {
		return nil, shared.NewValidationError(fmt.Sprintf("pricing error: %v", err))
	}

	bk, err := bookingDomain.NewBooking(
		off.ID(),
		req.Name,
		req.PhoneNumber,
		startedAt,
		off.DurationDays(),
		total,
	)
	if err != nil {
		return nil, err
	}

	if err := s.bookings.Save(ctx, bk); err != nil {
		return nil, fmt.Errorf("failed to save booking: %w", err)
	}

	s.publishEvent(ctx, events.TopicBookingEvents, events.BookingCreated, events.BookingCreatedEvent{
		BookingID:     bk.ID(),
		BookingTrxID:  bk.BookingTrxID(),
		OfficeSpaceID: bk.OfficeSpaceID(),
		TotalAmount:   bk.TotalAmount(),
		OccurredAt:    time.Now().UTC(),
	})

	s.logger.Info("booking created",
		zap.String("booking_id", bk.ID().String()),
		zap.String("booking_trx_id", bk.BookingTrxID()),
	)
	return s.toBookingDTO(ctx, bk)
}

// CheckBooking retrieves a booking by its transaction number and the
// phone number it was booked under.
func (s *BookingService) CheckBooking(ctx context.Context, req CheckBookingRequest) (*BookingDTO, error) {
	bk, err := s.bookings.FindByTrxIDAndPhone(ctx, req.BookingTrxID, req.PhoneNumber)
	if err != nil {
		return nil, err
	}
	return s.toBookingDTO(ctx, bk)
}

// UpdateBooking amends the customer-editable fields of a booking and
// returns the record with server-recomputed derived fields.
func (s *BookingService) UpdateBooking(ctx context.Context, bookingID uuid.UUID, req UpdateBookingRequest) (*BookingDTO, error) {
	startedAt, err := time.Parse(DateLayout, req.StartedAt)
	if err != nil {
		return nil, shared.NewValidationError(fmt.Sprintf("invalid start date: %s", req.StartedAt))
	}

	bk, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if err := bk.AmendDetails(req.Name, req.PhoneNumber, startedAt); err != nil {
		return nil, err
	}

	bk.IncrementVersion()
	if err := s.bookings.Update(ctx, bk); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.TopicBookingEvents, events.BookingUpdated, events.BookingUpdatedEvent{
		BookingID:    bk.ID(),
		BookingTrxID: bk.BookingTrxID(),
		OccurredAt:   time.Now().UTC(),
	})

	s.logger.Info("booking updated", zap.String("booking_id", bk.ID().String()))
	return s.toBookingDTO(ctx, bk)
}

// CancelBooking deletes a booking permanently.
func (s *BookingService) CancelBooking(ctx context.Context, bookingID uuid.UUID) error {
	bk, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return err
	}

	if err := s.bookings.Delete(ctx, bk.ID()); err != nil {
		return err
	}

	s.publishEvent(ctx, events.TopicBookingEvents, events.BookingCancelled, events.BookingCancelledEvent{
		BookingID:    bk.ID(),
		BookingTrxID: bk.BookingTrxID(),
		OccurredAt:   time.Now().UTC(),
	})

	s.logger.Info("booking cancelled", zap.String("booking_id", bk.ID().String()))
	return nil
}

// MarkBookingPaid records a payment confirmation, typically triggered by
// a payment.events message rather than an API call.
func (s *BookingService) MarkBookingPaid(ctx context.Context, bookingID uuid.UUID) error {
	bk, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return err
	}

	if err := bk.MarkPaid(); err != nil {
		return err
	}

	bk.IncrementVersion()
	if err := s.bookings.Update(ctx, bk); err != nil {
		return err
	}

	s.logger.Info("booking marked paid", zap.String("booking_id", bk.ID().String()))
	return nil
}

// ListAllBookings returns a paginated list of all bookings (back office).
func (s *BookingService) ListAllBookings(ctx context.Context, page, limit int) (*shared.PaginatedResult[BookingDTO], error) {
	bookings, total, err := s.bookings.ListAll(ctx, page, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	dtos := make([]BookingDTO, len(bookings))
	for i, bk := range bookings {
		dto, err := s.toBookingDTO(ctx, bk)
		if err != nil {
			return nil, err
		}
		dtos[i] = *dto
	}

	result := shared.NewPaginatedResult(dtos, total, page, limit)
	return &result, nil
}

// --- Helpers ---

func (s *BookingService) toBookingDTO(ctx context.Context, bk *bookingDomain.Booking) (*BookingDTO, error) {
	off, err := s.offices.FindByID(ctx, bk.OfficeSpaceID())
	if err != nil {
		return nil, err
	}
	ct, err := s.cities.FindByID(ctx, off.CityID())
	if err != nil {
		return nil, err
	}

	return &BookingDTO{
		ID:            bk.ID(),
		BookingTrxID:  bk.BookingTrxID(),
		OfficeSpaceID: bk.OfficeSpaceID(),
		Name:          bk.Name(),
		PhoneNumber:   bk.PhoneNumber(),
		StartedAt:     bk.StartedAt().Format(DateLayout),
		EndedAt:       bk.EndedAt().Format(DateLayout),
		Duration:      bk.DurationDays(),
		TotalAmount:   bk.TotalAmount(),
		IsPaid:        bk.IsPaid(),
		Office: OfficeRefDTO{
			Name:      off.Name(),
			Thumbnail: off.Thumbnail(),
			City:      CityRefDTO{Name: ct.Name()},
		},
		CreatedAt: bk.CreatedAt(),
		UpdatedAt: bk.UpdatedAt(),
	}, nil
}

func (s *BookingService) publishEvent(ctx context.Context, topic, eventType string, data interface{}) {
	cloudEvent, err := kafka.NewCloudEvent("service-office", eventType, data)
	if err != nil {
		s.logger.Error("failed to create cloud event",
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return
	}

	if err := s.producer.PublishEvent(ctx, topic, cloudEvent); err != nil {
		s.logger.Error("failed to publish event",
			zap.String("topic", topic),
			zap.String("event_type", eventType),
			zap.Error(err),
		)
	}
}
