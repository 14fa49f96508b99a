// Package validation gates forward navigation of the booking wizard.
//
// Each check is side-effect free. Field annotations are returned for the UI
// adapter to render; the OK flag is the only thing the controller acts on.
package validation

import (
	"regexp"

	"javaterra/internal/domain"
	"javaterra/internal/domain/models"
	"javaterra/internal/pricing"
	"javaterra/internal/utils"
)

// FieldState is the success/error annotation of a single input.
type FieldState string

const (
	FieldSuccess FieldState = "success"
	FieldError   FieldState = "error"
)

// Field keys, in form order.
const (
	FieldDeparture   = "departure"
	FieldDestination = "destination"
	FieldDate        = "date"
	FieldTime        = "time"
	FieldBusType     = "busType"

	FieldFullName  = "username"
	FieldBirthDate = "birth"
	FieldEmail     = "email"
	FieldAddress   = "address"
	FieldPhone     = "phone"
)

const (
	MsgTripIncomplete    = "Mohon lengkapi semua field!"
	MsgTotalInvalid      = "Total harga tidak valid! Pastikan semua field terisi."
	MsgBiodataIncomplete = "Mohon lengkapi semua data dengan benar!"
	MsgEmailInvalid      = "Format email tidak valid! Contoh: nama@gmail.com"
	MsgPhoneInvalid      = "Nomor telepon harus 9-13 digit!"
)

const (
	PhoneMinLen = 9
	PhoneMaxLen = 13
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Result is the outcome of validating one step.
type Result struct {
	OK      bool
	Fields  map[string]FieldState
	Reasons []string
}

// Err returns a domain.ValidationError with the reasons, or nil when OK.
func (r Result) Err() error {
	if r.OK {
		return nil
	}
	return domain.ValidationError{Reasons: r.Reasons}
}

func (r *Result) mark(field string, ok bool) {
	if ok {
		r.Fields[field] = FieldSuccess
		return
	}
	r.Fields[field] = FieldError
	r.OK = false
}

func (r *Result) reason(msg string) {
	for _, m := range r.Reasons {
		if m == msg {
			return
		}
	}
	r.Reasons = append(r.Reasons, msg)
}

func newResult() Result {
	return Result{OK: true, Fields: map[string]FieldState{}}
}

// Trip validates step 1: every trip field filled and a positive total.
// A selection that prices to zero counts as incomplete.
func Trip(form models.TripForm, quote pricing.Quote) Result {
	form = form.Trimmed()
	r := newResult()
	fields := []struct {
		key, value string
	}{
		{FieldDeparture, form.Departure},
		{FieldDestination, form.Destination},
		{FieldDate, form.Date},
		{FieldTime, form.Time},
		{FieldBusType, form.BusType},
	}
	for _, f := range fields {
		r.mark(f.key, f.value != "")
	}
	if !r.OK {
		r.reason(MsgTripIncomplete)
	}
	if !quote.Valid() {
		r.OK = false
		r.reason(MsgTotalInvalid)
	}
	return r
}

// Biodata validates step 2. Email shape and phone length are checked
// independently, so both reasons can appear together.
func Biodata(bio models.Biodata) Result {
	bio = bio.Trimmed()
	r := newResult()
	fields := []struct {
		key, value string
	}{
		{FieldFullName, bio.FullName},
		{FieldBirthDate, bio.BirthDate},
		{FieldEmail, bio.Email},
		{FieldAddress, bio.Address},
		{FieldPhone, bio.Phone},
	}
	empty := false
	for _, f := range fields {
		r.mark(f.key, f.value != "")
		if f.value == "" {
			empty = true
		}
	}
	if empty {
		r.reason(MsgBiodataIncomplete)
	}

	if bio.Email != "" && !ValidEmail(bio.Email) {
		r.mark(FieldEmail, false)
		r.reason(MsgEmailInvalid)
	}
	if bio.Phone != "" && !ValidPhone(bio.Phone) {
		r.mark(FieldPhone, false)
		r.reason(MsgPhoneInvalid)
	}
	return r
}

// ValidEmail checks the basic local@domain.tld shape.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidPhone checks the character length only; formatting is left to the user.
func ValidPhone(phone string) bool {
	n := utils.CharLen(phone)
	return n >= PhoneMinLen && n <= PhoneMaxLen
}
