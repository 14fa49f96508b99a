// Package wizard is the booking wizard flow controller: step transitions,
// draft persistence and resume, and the submit-once guard around the
// create-booking call. It has no UI dependency; adapters feed it form values
// and render the Transition it returns.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"javaterra/internal/client"
	"javaterra/internal/domain/models"
	"javaterra/internal/drafts"
	"javaterra/internal/pricing"
	"javaterra/internal/utils"
	"javaterra/internal/validation"
)

// Submitter sends a finished booking to the backend and returns its id.
type Submitter interface {
	CreateBooking(ctx context.Context, req models.BookingRequest) (string, error)
}

// Controller owns the wizard State. All methods are safe for concurrent use;
// the create-booking call runs without the lock held.
type Controller struct {
	mu sync.Mutex

	state     State
	catalog   pricing.Catalog
	store     *drafts.Store
	submitter Submitter
	now       func() time.Time
	sessionID string

	trip    models.TripForm
	bio     models.Biodata
	offer   ResumeOffer
	receipt *Receipt
}

// Option customizes a Controller.
type Option func(*Controller)

// WithClock overrides time.Now, used for the default travel date.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// WithSessionID tags log lines with the browser/terminal session.
func WithSessionID(id string) Option {
	return func(c *Controller) { c.sessionID = id }
}

func New(store *drafts.Store, submitter Submitter, catalog pricing.Catalog, opts ...Option) *Controller {
	c := &Controller{
		catalog:   catalog,
		store:     store,
		submitter: submitter,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.reset()
	return c
}

// DefaultTripForm is the empty step-1 form: one passenger, departing tomorrow.
func DefaultTripForm(now time.Time) models.TripForm {
	return models.TripForm{Date: utils.Tomorrow(now), Quantity: 1}
}

func (c *Controller) reset() {
	c.state = State{Step: StepTrip}
	c.trip = DefaultTripForm(c.now())
	c.bio = models.Biodata{}
	c.offer = ResumeOffer{}
	c.receipt = nil
}

// State returns a snapshot of the wizard state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// TripForm returns the current step-1 values, repopulated on resume.
func (c *Controller) TripForm() models.TripForm {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.trip
}

// BiodataForm returns the current step-2 values, repopulated on resume.
func (c *Controller) BiodataForm() models.Biodata {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.bio
}

// Quote prices a form without touching state.
func (c *Controller) Quote(form models.TripForm) pricing.Quote {
	return c.catalog.Quote(pricing.Selection{
		Destination: form.Destination,
		Departure:   form.Departure,
		BusType:     form.BusType,
		Quantity:    form.Quantity,
	})
}

// UpdateTrip records edited step-1 values and returns the recomputed price.
func (c *Controller) UpdateTrip(form models.TripForm) pricing.Quote {
	c.mu.Lock()
	c.trip = form
	c.mu.Unlock()
	return c.Quote(form)
}

func (c *Controller) IncreaseQuantity() pricing.Quote {
	c.mu.Lock()
	c.trip.Quantity++
	form := c.trip
	c.mu.Unlock()
	return c.Quote(form)
}

// DecreaseQuantity never goes below one passenger.
func (c *Controller) DecreaseQuantity() pricing.Quote {
	c.mu.Lock()
	if c.trip.Quantity > 1 {
		c.trip.Quantity--
	}
	form := c.trip
	c.mu.Unlock()
	return c.Quote(form)
}

// SubmitTrip validates step 1, saves the trip draft and moves to step 2.
func (c *Controller) SubmitTrip(form models.TripForm) (Transition, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	tr := Transition{From: c.state.Step, To: c.state.Step}
	if c.state.Step != StepTrip {
		return tr, ErrWrongStep
	}
	c.trip = form

	quote := c.Quote(form)
	res := validation.Trip(form, quote)
	if !res.OK {
		tr.Reasons = res.Reasons
		tr.Notice = strings.Join(res.Reasons, "\n")
		return tr, res.Err()
	}

	if err := c.store.SaveTrip(form.Selection(quote.Display())); err != nil {
		tr.Notice = NoticeSaveFailed
		return tr, fmt.Errorf("save trip draft: %w", err)
	}
	c.state.Step = StepBiodata
	tr.To = StepBiodata
	return tr, nil
}

// SubmitBiodata validates step 2, saves the biodata draft and moves to the
// confirmation step. If either draft cannot be read back the wizard restarts
// at step 1.
func (c *Controller) SubmitBiodata(bio models.Biodata) (Transition, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	tr := Transition{From: c.state.Step, To: c.state.Step}
	if c.state.Step != StepBiodata {
		return tr, ErrWrongStep
	}
	c.bio = bio

	res := validation.Biodata(bio)
	if !res.OK {
		tr.Reasons = res.Reasons
		tr.Notice = strings.Join(res.Reasons, "\n")
		return tr, res.Err()
	}

	if err := c.store.SaveBiodata(bio.Trimmed()); err != nil {
		tr.Notice = NoticeSaveFailed
		return tr, fmt.Errorf("save biodata draft: %w", err)
	}
	c.state.Step = StepConfirm
	tr.To = StepConfirm

	if _, err := c.confirmationLocked(); err != nil {
		tr.To = c.state.Step
		tr.Notice = NoticeDraftMissing
		return tr, err
	}
	return tr, nil
}

// Confirmation reads both drafts back for the read-only step-3 view. A
// missing draft forces the wizard back to step 1.
func (c *Controller) Confirmation() (Confirmation, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.confirmationLocked()
}

func (c *Controller) confirmationLocked() (Confirmation, error) {
	trip, okTrip, err := c.store.Trip()
	if err != nil {
		return Confirmation{}, err
	}
	bio, okBio, err := c.store.Biodata()
	if err != nil {
		return Confirmation{}, err
	}
	if !okTrip || !okBio {
		utils.LogEvent(c.sessionID, "wizard", "confirmation", "draft missing, back to step 1")
		c.state.Step = StepTrip
		return Confirmation{}, ErrDraftMissing
	}
	return Confirmation{Trip: trip, Biodata: bio}, nil
}

// Confirm moves from confirmation to payment. No further validation happens here.
func (c *Controller) Confirm() (Transition, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	tr := Transition{From: c.state.Step, To: c.state.Step}
	if c.state.Step != StepConfirm {
		return tr, ErrWrongStep
	}
	c.state.Step = StepPayment
	tr.To = StepPayment
	return tr, nil
}

// Finish submits the booking once. A second call while one is in flight, or
// any call after completion, is rejected before touching the network.
// On failure the guard is released and the drafts stay for a retry.
func (c *Controller) Finish(ctx context.Context) (Transition, error) {
	c.mu.Lock()
	tr := Transition{From: c.state.Step, To: c.state.Step}
	switch {
	case c.state.Completed:
		c.mu.Unlock()
		tr.Notice = NoticeCompleted
		return tr, ErrBookingCompleted
	case c.state.Submitting:
		c.mu.Unlock()
		tr.Notice = NoticeSubmitting
		return tr, ErrSubmitInProgress
	case c.state.Step != StepPayment:
		c.mu.Unlock()
		return tr, ErrWrongStep
	}

	trip, okTrip, errTrip := c.store.Trip()
	bio, okBio, errBio := c.store.Biodata()
	if err := errors.Join(errTrip, errBio); err != nil {
		c.mu.Unlock()
		tr.Notice = NoticeSubmitFailed
		return tr, err
	}
	if !okTrip || !okBio {
		if err := c.store.ClearAll(); err != nil {
			utils.LogEvent(c.sessionID, "wizard", "finish", "clear after missing draft failed: "+err.Error())
		}
		c.reset()
		c.mu.Unlock()
		tr.To = StepTrip
		tr.Notice = NoticeRestart
		return tr, ErrDraftMissing
	}

	c.state.Submitting = true
	c.mu.Unlock()

	utils.LogEvent(c.sessionID, "wizard", "finish", "submitting booking")
	id, err := c.submitter.CreateBooking(ctx, models.NewBookingRequest(trip, bio))

	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Submitting = false

	if err != nil {
		var rejected *client.RejectedError
		if errors.As(err, &rejected) {
			tr.Notice = "Error: " + rejected.Message
		} else {
			tr.Notice = NoticeSubmitFailed
		}
		utils.LogEvent(c.sessionID, "wizard", "finish", "submit failed: "+err.Error())
		return tr, err
	}

	c.state.Completed = true
	c.state.Step = StepStatus
	c.receipt = &Receipt{BookingID: id, Trip: trip, Biodata: bio}

	// Drafts first, then the marker. A crash in between loses only the
	// marker, which the resume check tolerates.
	if err := c.store.ClearDrafts(); err != nil {
		utils.LogEvent(c.sessionID, "wizard", "finish", "clear drafts failed: "+err.Error())
	}
	if err := c.store.SaveLastBookingID(id); err != nil {
		utils.LogEvent(c.sessionID, "wizard", "finish", "save marker failed: "+err.Error())
	}
	utils.LogEvent(c.sessionID, "wizard", "finish", "booking_id="+id)

	tr.To = StepStatus
	tr.Notice = NoticeBookingSuccess
	return tr, nil
}

// Receipt returns the final summary once the booking is completed.
func (c *Controller) Receipt() (Receipt, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.receipt == nil {
		return Receipt{}, false
	}
	return *c.receipt, true
}

// Back moves one step backwards from steps 2 to 4. There is no way back out
// of the final step.
func (c *Controller) Back() (Transition, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	tr := Transition{From: c.state.Step, To: c.state.Step}
	switch {
	case c.state.Completed || c.state.Step == StepStatus:
		tr.Notice = NoticeBackFromFinal
		return tr, ErrBackFromFinal
	case c.state.Submitting:
		tr.Notice = NoticeSubmitting
		return tr, ErrSubmitInProgress
	case c.state.Step <= StepTrip:
		return tr, ErrWrongStep
	}
	c.state.Step--
	tr.To = c.state.Step
	return tr, nil
}

// StartNew discards drafts and the completion marker and starts over.
func (c *Controller) StartNew() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.Submitting {
		return ErrSubmitInProgress
	}
	err := c.store.ClearAll()
	c.reset()
	if err != nil {
		return fmt.Errorf("clear drafts: %w", err)
	}
	return nil
}
