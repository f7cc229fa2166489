package events

import (
	"time"

	"github.com/google/uuid"
)

// Kafka topics this service produces to and consumes from.
const (
	TopicBookingEvents = "booking.events"
	TopicPaymentEvents = "payment.events"
)

// Event types on booking.events.
const (
	BookingCreated   = "booking.created"
	BookingUpdated   = "booking.updated"
	BookingCancelled = "booking.cancelled"
)

// Event types on payment.events, produced by the payment service.
const (
	PaymentSucceeded = "payment.succeeded"
)

// BookingCreatedEvent is published when a new reservation is made.
type BookingCreatedEvent struct {
	BookingID     uuid.UUID `json:"booking_id"`
	BookingTrxID  string    `json:"booking_trx_id"`
	OfficeSpaceID uuid.UUID `json:"office_space_id"`
	TotalAmount   int64     `json:"total_amount"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// BookingUpdatedEvent is published when a customer amends a reservation.
type BookingUpdatedEvent struct {
	BookingID    uuid.UUID `json:"booking_id"`
	BookingTrxID string    `json:"booking_trx_id"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// BookingCancelledEvent is published when a reservation is deleted.
type BookingCancelledEvent struct {
	BookingID    uuid.UUID `json:"booking_id"`
	BookingTrxID string    `json:"booking_trx_id"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// PaymentSucceededEvent is the payment service's confirmation that a
// booking has been paid for.
type PaymentSucceededEvent struct {
	PaymentID  uuid.UUID `json:"payment_id"`
	BookingID  uuid.UUID `json:"booking_id"`
	Amount     int64     `json:"amount"`
	OccurredAt time.Time `json:"occurred_at"`
}
