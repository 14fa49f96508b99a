package validation

import (
	"testing"

	"javaterra/internal/domain"
	"javaterra/internal/domain/models"
	"javaterra/internal/pricing"
)

func completeTrip() models.TripForm {
	return models.TripForm{
		Departure:   "Jakarta",
		Destination: "Yogyakarta",
		Date:        "2026-10-15",
		Time:        "08:00",
		BusType:     "Bisnis",
		Quantity:    2,
	}
}

func completeBiodata() models.Biodata {
	return models.Biodata{
		FullName:  "Budi Santoso",
		BirthDate: "1990-05-17",
		Email:     "budi@gmail.com",
		Address:   "Jl. Merdeka 1, Jakarta",
		Phone:     "081234567890",
	}
}

func hasReason(r Result, msg string) bool {
	for _, m := range r.Reasons {
		if m == msg {
			return true
		}
	}
	return false
}

func TestTripBlockedIffFieldEmptyOrZeroTotal(t *testing.T) {
	positive := pricing.Quote{Total: 260_000}
	if r := Trip(completeTrip(), positive); !r.OK || len(r.Reasons) != 0 {
		t.Fatalf("complete trip should pass, got %+v", r)
	}

	blank := []func(*models.TripForm){
		func(f *models.TripForm) { f.Departure = "" },
		func(f *models.TripForm) { f.Destination = "  " },
		func(f *models.TripForm) { f.Date = "" },
		func(f *models.TripForm) { f.Time = "" },
		func(f *models.TripForm) { f.BusType = "" },
	}
	for i, clear := range blank {
		f := completeTrip()
		clear(&f)
		r := Trip(f, positive)
		if r.OK {
			t.Fatalf("case %d: empty field should block", i)
		}
		if !hasReason(r, MsgTripIncomplete) {
			t.Fatalf("case %d: missing incomplete reason: %v", i, r.Reasons)
		}
	}

	for _, total := range []int64{0, -1} {
		r := Trip(completeTrip(), pricing.Quote{Total: total})
		if r.OK || !hasReason(r, MsgTotalInvalid) {
			t.Fatalf("total %d should block with total reason, got %+v", total, r)
		}
		if hasReason(r, MsgTripIncomplete) {
			t.Fatalf("filled form should not report incomplete fields")
		}
	}
}

func TestTripAnnotatesFields(t *testing.T) {
	f := completeTrip()
	f.Time = ""
	r := Trip(f, pricing.Quote{Total: 1})
	if r.Fields[FieldTime] != FieldError {
		t.Fatalf("time should be annotated as error")
	}
	if r.Fields[FieldDeparture] != FieldSuccess {
		t.Fatalf("departure should be annotated as success")
	}
}

func TestBiodataPasses(t *testing.T) {
	r := Biodata(completeBiodata())
	if !r.OK || r.Err() != nil {
		t.Fatalf("complete biodata should pass, got %+v", r)
	}
}

func TestBiodataEmailAndPhoneReasonsTogether(t *testing.T) {
	b := completeBiodata()
	b.Email = "foo@bar"
	b.Phone = "12345678"
	r := Biodata(b)
	if r.OK {
		t.Fatalf("expected block")
	}
	if !hasReason(r, MsgEmailInvalid) || !hasReason(r, MsgPhoneInvalid) {
		t.Fatalf("expected both reasons, got %v", r.Reasons)
	}
	if hasReason(r, MsgBiodataIncomplete) {
		t.Fatalf("no field is empty, generic reason should be absent")
	}
	if r.Fields[FieldEmail] != FieldError || r.Fields[FieldPhone] != FieldError {
		t.Fatalf("email and phone should be annotated as error: %v", r.Fields)
	}

	err := r.Err()
	if !domain.IsValidation(err) {
		t.Fatalf("Err() should be a validation error, got %T", err)
	}
	if got := domain.Reasons(err); len(got) != 2 {
		t.Fatalf("reasons through error = %v", got)
	}
}

func TestBiodataPhoneBounds(t *testing.T) {
	cases := map[string]bool{
		"12345678":       false,
		"123456789":      true,
		"1234567890123":  true,
		"12345678901234": false,
	}
	for phone, ok := range cases {
		b := completeBiodata()
		b.Phone = phone
		if got := Biodata(b).OK; got != ok {
			t.Fatalf("phone %q: OK=%v want %v", phone, got, ok)
		}
	}
}

func TestBiodataEmailShapes(t *testing.T) {
	cases := map[string]bool{
		"nama@gmail.com": true,
		"a@b.c":          true,
		"foo@bar":        false,
		"foo bar@x.com":  false,
		"@x.com":         false,
		"foo@@x.com":     false,
	}
	for email, ok := range cases {
		if got := ValidEmail(email); got != ok {
			t.Fatalf("ValidEmail(%q) = %v want %v", email, got, ok)
		}
	}
}

func TestBiodataEmptyFieldsGetGenericReason(t *testing.T) {
	b := completeBiodata()
	b.Address = ""
	b.Phone = "123"
	r := Biodata(b)
	if len(r.Reasons) != 2 || r.Reasons[0] != MsgBiodataIncomplete || r.Reasons[1] != MsgPhoneInvalid {
		t.Fatalf("unexpected reasons order: %v", r.Reasons)
	}
}
