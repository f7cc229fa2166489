// Package workflow implements the check-booking flow: looking up a
// booking by transaction ID and phone number, then viewing, editing,
// or cancelling it. State moves through an explicit phase machine so
// callers never observe contradictory flags.
package workflow

import (
	"context"

	"github.com/firstoffice/service-office/internal/client"
)

// BookingAPI is the server surface the workflow drives. *client.Client
// satisfies it.
type BookingAPI interface {
	Lookup(ctx context.Context, form client.LookupForm) (*client.BookingDetails, error)
	Update(ctx context.Context, details client.BookingDetails) (*client.BookingDetails, error)
	Cancel(ctx context.Context, id string) error
}

// AssetResolver turns relative asset paths from the API into absolute
// URLs. *client.Client satisfies it.
type AssetResolver interface {
	ResolveAsset(path string) string
}

// Prompter asks the user for confirmation and shows blocking alerts.
type Prompter interface {
	Confirm(message string) bool
	Alert(message string)
}

// Navigator leaves the flow after a successful save.
type Navigator interface {
	NavigateHome()
}

const (
	cancelConfirmMessage = "Are you sure you want to cancel this booking?"
	cancelSuccessMessage = "Booking has been successfully canceled"
	saveFailureMessage   = "Failed to update booking information, Please try again"
)

// CheckBooking holds the state of one check-booking session. It is not
// safe for concurrent use; drive it from a single goroutine.
type CheckBooking struct {
	api    BookingAPI
	assets AssetResolver
	prompt Prompter
	nav    Navigator

	phase      Phase
	details    *client.BookingDetails
	editing    *client.BookingDetails
	errMsg     string
	formErrors []FieldError

	// seq guards against a slow lookup overwriting the result of a
	// newer one.
	seq uint64
}

// NewCheckBooking returns an idle workflow.
func NewCheckBooking(api BookingAPI, assets AssetResolver, prompt Prompter, nav Navigator) *CheckBooking {
	return &CheckBooking{
		api:    api,
		assets: assets,
		prompt: prompt,
		nav:    nav,
		phase:  PhaseIdle,
	}
}

// Phase returns the current workflow phase.
func (w *CheckBooking) Phase() Phase { return w.phase }

// IsLoading reports whether a lookup request is in flight.
func (w *CheckBooking) IsLoading() bool { return w.phase == PhaseLoading }

// Details returns the currently loaded booking, or nil.
func (w *CheckBooking) Details() *client.BookingDetails { return w.details }

// EditingDraft returns the draft under edit, or nil when not editing.
func (w *CheckBooking) EditingDraft() *client.BookingDetails { return w.editing }

// ErrorMessage returns the last request error message, if any.
func (w *CheckBooking) ErrorMessage() string { return w.errMsg }

// FormErrors returns the validation errors from the last lookup attempt.
func (w *CheckBooking) FormErrors() []FieldError { return w.formErrors }

// SubmitLookup validates the form and, if valid, fetches the booking.
// Invalid forms never reach the network. Starting a lookup discards any
// editing draft. A failed lookup keeps any previously loaded booking on
// screen alongside the error message.
func (w *CheckBooking) SubmitLookup(ctx context.Context, form client.LookupForm) error {
	w.formErrors = ValidateLookupForm(form)
	if len(w.formErrors) > 0 {
		return nil
	}

	w.seq++
	seq := w.seq
	w.phase = PhaseLoading
	w.editing = nil
	w.errMsg = ""

	details, err := w.api.Lookup(ctx, form)
	if seq != w.seq {
		// A newer lookup started while this one was in flight.
		return nil
	}
	if err != nil {
		w.phase = PhaseFailed
		w.errMsg = client.ErrorMessage(err)
		return err
	}

	w.details = details
	w.phase = PhaseLoaded
	return nil
}

// BeginEdit enters edit mode over the loaded booking. The draft is a
// copy; the loaded details stay untouched until SaveEdit succeeds.
func (w *CheckBooking) BeginEdit() bool {
	if !w.phase.CanTransitionTo(PhaseEditing) || w.details == nil {
		return false
	}
	draft := *w.details
	w.editing = &draft
	w.phase = PhaseEditing
	return true
}

// EditField sets a single editable field on the draft, addressed by its
// wire name. Unknown fields are ignored.
func (w *CheckBooking) EditField(field, value string) {
	if w.editing == nil {
		return
	}
	switch field {
	case "name":
		w.editing.Name = value
	case "phone_number":
		w.editing.PhoneNumber = value
	case "started_at":
		w.editing.StartedAt = value
	}
}

// SaveEdit submits the draft. On success the loaded booking is replaced
// with the server's response and the user is sent home. On failure the
// user is alerted and edit mode is exited either way, leaving the
// original booking displayed.
func (w *CheckBooking) SaveEdit(ctx context.Context) error {
	if w.phase != PhaseEditing || w.editing == nil {
		return nil
	}

	updated, err := w.api.Update(ctx, *w.editing)
	w.editing = nil
	w.phase = PhaseLoaded
	if err != nil {
		w.errMsg = client.ErrorMessage(err)
		w.prompt.Alert(saveFailureMessage)
		return err
	}

	w.details = updated
	w.errMsg = ""
	w.nav.NavigateHome()
	return nil
}

// DiscardEdit leaves edit mode without saving.
func (w *CheckBooking) DiscardEdit() {
	if w.phase != PhaseEditing {
		return
	}
	w.editing = nil
	w.phase = PhaseLoaded
}

// CancelBooking asks for confirmation and cancels the loaded booking.
// Declining the prompt is a no-op. A failed cancellation keeps the
// booking displayed.
func (w *CheckBooking) CancelBooking(ctx context.Context) error {
	if !w.phase.CanTransitionTo(PhaseIdle) || w.details == nil {
		return nil
	}
	if !w.prompt.Confirm(cancelConfirmMessage) {
		return nil
	}

	if err := w.api.Cancel(ctx, w.details.ID); err != nil {
		w.errMsg = client.ErrorMessage(err)
		return err
	}

	w.details = nil
	w.errMsg = ""
	w.phase = PhaseIdle
	w.prompt.Alert(cancelSuccessMessage)
	return nil
}

// Reset returns the workflow to idle, dropping any loaded state.
func (w *CheckBooking) Reset() {
	w.seq++
	w.phase = PhaseIdle
	w.details = nil
	w.editing = nil
	w.errMsg = ""
	w.formErrors = nil
}

// BookingView is a loaded booking formatted for display.
type BookingView struct {
	BookingTrxID  string
	Name          string
	PhoneNumber   string
	StartedAt     string
	EndedAt       string
	Duration      string
	TotalAmount   string
	PaymentStatus string
	OfficeName    string
	CityName      string
	ThumbnailURL  string
}

// View renders the loaded booking with the display rules applied:
// dot-grouped amount, working-days duration label, payment badge and
// resolved thumbnail URL. Returns false when nothing is loaded.
func (w *CheckBooking) View() (BookingView, bool) {
	if w.details == nil {
		return BookingView{}, false
	}
	d := w.details
	return BookingView{
		BookingTrxID:  d.BookingTrxID,
		Name:          d.Name,
		PhoneNumber:   d.PhoneNumber,
		StartedAt:     d.StartedAt,
		EndedAt:       d.EndedAt,
		Duration:      DurationLabel(d.Duration),
		TotalAmount:   FormatAmount(d.TotalAmount),
		PaymentStatus: PaymentStatusLabel(bool(d.IsPaid)),
		OfficeName:    d.Office.Name,
		CityName:      d.Office.City.Name,
		ThumbnailURL:  w.assets.ResolveAsset(d.Office.Thumbnail),
	}, true
}
