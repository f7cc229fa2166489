package workflow

import (
	"time"

	"github.com/firstoffice/service-office/internal/client"
)

// FieldError is a single validation violation, keyed by the wire field path.
type FieldError struct {
	Path    string
	Message string
}

// ValidateLookupForm checks the booking lookup credentials. All
// violations are reported at once, in field order. Pure: no side effects.
func ValidateLookupForm(form client.LookupForm) []FieldError {
	var errs []FieldError
	if form.BookingTrxID == "" {
		errs = append(errs, FieldError{Path: "booking_trx_id", Message: "Booking transaction ID is required"})
	}
	if form.PhoneNumber == "" {
		errs = append(errs, FieldError{Path: "phone_number", Message: "Phone number is required"})
	}
	return errs
}

// BookingForm holds the fields for creating a new booking.
type BookingForm struct {
	Name          string
	PhoneNumber   string
	StartedAt     string
	OfficeSpaceID string
}

// ValidateBookingForm checks a booking-creation form. The start date
// must parse as a calendar date in wire format (YYYY-MM-DD).
func ValidateBookingForm(form BookingForm) []FieldError {
	var errs []FieldError
	if form.Name == "" {
		errs = append(errs, FieldError{Path: "name", Message: "Name is required"})
	}
	if form.PhoneNumber == "" {
		errs = append(errs, FieldError{Path: "phone_number", Message: "Phone number is required"})
	}
	if form.StartedAt == "" {
		errs = append(errs, FieldError{Path: "started_at", Message: "Start date is required"})
	} else if _, err := time.Parse("2006-01-02", form.StartedAt); err != nil {
		errs = append(errs, FieldError{Path: "started_at", Message: "Invalid Date"})
	}
	if form.OfficeSpaceID == "" {
		errs = append(errs, FieldError{Path: "office_space_id", Message: "Office space ID is required"})
	}
	return errs
}
