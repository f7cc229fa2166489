package client

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// LookupForm carries the credentials a customer identifies a booking with.
type LookupForm struct {
	BookingTrxID string `json:"booking_trx_id"`
	PhoneNumber  string `json:"phone_number"`
}

// BoolFlag is a bool that tolerates the numeric and string encodings
// some API deployments emit for boolean columns (0/1, "0"/"1").
type BoolFlag bool

// UnmarshalJSON accepts true/false, 0/1 and "0"/"1".
func (f *BoolFlag) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch string(data) {
	case "true", "1", `"1"`:
		*f = true
	case "false", "0", `"0"`, "null", `""`:
		*f = false
	default:
		return fmt.Errorf("invalid boolean flag: %s", data)
	}
	return nil
}

// MarshalJSON encodes the flag as a plain JSON bool.
func (f BoolFlag) MarshalJSON() ([]byte, error) {
	return json.Marshal(bool(f))
}

// CityRef is the nested city reference on an office.
type CityRef struct {
	Name string `json:"name"`
}

// OfficeRef is the nested office reference on a booking.
type OfficeRef struct {
	Name      string  `json:"name"`
	Thumbnail string  `json:"thumbnail"`
	City      CityRef `json:"city"`
}

// BookingDetails is the authoritative booking record as returned by the
// API. Dates stay in their wire form (YYYY-MM-DD); amounts are whole
// currency units with no minor-unit scaling.
type BookingDetails struct {
	ID            string    `json:"id"`
	BookingTrxID  string    `json:"booking_trx_id"`
	OfficeSpaceID string    `json:"office_space_id"`
	Name          string    `json:"name"`
	PhoneNumber   string    `json:"phone_number"`
	StartedAt     string    `json:"started_at"`
	EndedAt       string    `json:"ended_at"`
	Duration      int       `json:"duration"`
	TotalAmount   int64     `json:"total_amount"`
	IsPaid        BoolFlag  `json:"is_paid"`
	Office        OfficeRef `json:"office"`
}

// envelope is the API's response wrapper: the payload under "data".
type envelope struct {
	Data json.RawMessage `json:"data"`
}

// errorBody is the API's error response wrapper.
type errorBody struct {
	Message string `json:"message"`
}
