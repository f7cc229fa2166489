package booking

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/firstoffice/service-office/internal/domain/shared"
	"github.com/google/uuid"
)

// Alphabet for transaction numbers, without lookalike characters.
const trxNumberChars = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// Booking is the aggregate root for an office-space reservation.
type Booking struct {
	id            uuid.UUID
	bookingTrxID  string
	officeSpaceID uuid.UUID

	name        string
	phoneNumber string

	startedAt    time.Time
	endedAt      time.Time
	durationDays int
	totalAmount  int64

	isPaid bool

	version   int64
	createdAt time.Time
	updatedAt time.Time
}

// generateTrxID creates a transaction number in the format "FO-XXXXXX".
func generateTrxID() (string, error) {
	result := make([]byte, 6)
	for i := range result {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(trxNumberChars))))
		if err != nil {
			return "", fmt.Errorf("failed to generate transaction number: %w", err)
		}
		result[i] = trxNumberChars[n.Int64()]
	}
	return "FO-" + string(result), nil
}

// NewBooking creates a new unpaid Booking aggregate.
func NewBooking(
	officeSpaceID uuid.UUID,
	name string,
	phoneNumber string,
	startedAt time.Time,
	durationDays int,
	totalAmount int64,
) (*Booking, error) {
	if officeSpaceID == uuid.Nil {
		return nil, shared.NewValidationError("office space ID is required")
	}
	if name == "" {
		return nil, shared.NewValidationError("name is required")
	}
	if phoneNumber == "" {
		return nil, shared.NewValidationError("phone number is required")
	}
	if startedAt.IsZero() {
		return nil, shared.NewValidationError("start date is required")
	}
	if durationDays <= 0 {
		return nil, shared.NewValidationError("duration must be positive")
	}
	if totalAmount <= 0 {
		return nil, shared.NewValidationError("total amount must be positive")
	}

	trxID, err := generateTrxID()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Booking{
		id:            uuid.New(),
		bookingTrxID:  trxID,
		officeSpaceID: officeSpaceID,
		name:          name,
		phoneNumber:   phoneNumber,
		startedAt:     startedAt,
		endedAt:       endDateFor(startedAt, durationDays),
		durationDays:  durationDays,
		totalAmount:   totalAmount,
		version:       1,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// ReconstructBooking rebuilds a Booking from persistence data (no validation).
func ReconstructBooking(
	id uuid.UUID,
	bookingTrxID string,
	officeSpaceID uuid.UUID,
	name string,
	phoneNumber string,
	startedAt time.Time,
	endedAt time.Time,
	durationDays int,
	totalAmount int64,
	isPaid bool,
	version int64,
	createdAt time.Time,
	updatedAt time.Time,
) *Booking {
	return &Booking{
		id:            id,
		bookingTrxID:  bookingTrxID,
		officeSpaceID: officeSpaceID,
		name:          name,
		phoneNumber:   phoneNumber,
		startedAt:     startedAt,
		endedAt:       endedAt,
		durationDays:  durationDays,
		totalAmount:   totalAmount,
		isPaid:        isPaid,
		version:       version,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// endDateFor computes the checkout date: a one-day booking starts and
// ends on the same day.
func endDateFor(startedAt time.Time, durationDays int) time.Time {
	return startedAt.AddDate(0, 0, durationDays-1)
}

// --- Getters ---

// ID returns the booking's unique identifier.
func (b *Booking) ID() uuid.UUID { return b.id }

// BookingTrxID returns the human-readable transaction number.
func (b *Booking) BookingTrxID() string { return b.bookingTrxID }

// OfficeSpaceID returns the identifier of the booked office.
func (b *Booking) OfficeSpaceID() uuid.UUID { return b.officeSpaceID }

// Name returns the customer name on the booking.
func (b *Booking) Name() string { return b.name }

// PhoneNumber returns the customer phone number on the booking.
func (b *Booking) PhoneNumber() string { return b.phoneNumber }

// StartedAt returns the first day of the booking.
func (b *Booking) StartedAt() time.Time { return b.startedAt }

// EndedAt returns the last day of the booking.
func (b *Booking) EndedAt() time.Time { return b.endedAt }

// DurationDays returns the booking length in working days.
func (b *Booking) DurationDays() int { return b.durationDays }

// TotalAmount returns the total amount in whole rupiah.
func (b *Booking) TotalAmount() int64 { return b.totalAmount }

// IsPaid reports whether payment has been confirmed for this booking.
func (b *Booking) IsPaid() bool { return b.isPaid }

// Version returns the entity version for optimistic locking.
func (b *Booking) Version() int64 { return b.version }

// CreatedAt returns the creation timestamp.
func (b *Booking) CreatedAt() time.Time { return b.createdAt }

// UpdatedAt returns the last-updated timestamp.
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }

// --- Behavior ---

// AmendDetails applies the customer-editable fields. The end date is
// recomputed from the new start date; duration and amount stay derived
// server-side and are never taken from the caller.
func (b *Booking) AmendDetails(name, phoneNumber string, startedAt time.Time) error {
	if name == "" {
		return shared.NewValidationError("name is required")
	}
	if phoneNumber == "" {
		return shared.NewValidationError("phone number is required")
	}
	if startedAt.IsZero() {
		return shared.NewValidationError("start date is required")
	}

	b.name = name
	b.phoneNumber = phoneNumber
	b.startedAt = startedAt
	b.endedAt = endDateFor(startedAt, b.durationDays)
	b.updatedAt = time.Now().UTC()
	return nil
}

// MarkPaid records payment confirmation for this booking.
func (b *Booking) MarkPaid() error {
	if b.isPaid {
		return shared.NewConflictError("booking is already paid")
	}
	b.isPaid = true
	b.updatedAt = time.Now().UTC()
	return nil
}

// IncrementVersion bumps the version for optimistic locking.
func (b *Booking) IncrementVersion() {
	b.version++
	b.updatedAt = time.Now().UTC()
}
