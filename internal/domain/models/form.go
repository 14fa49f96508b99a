package models

import "strings"

// TripForm holds the raw step-1 inputs before they become a TripSelection.
type TripForm struct {
	Departure   string
	Destination string
	Date        string
	Time        string
	BusType     string
	Quantity    int
}

// Trimmed returns a copy with surrounding whitespace removed.
func (f TripForm) Trimmed() TripForm {
	f.Departure = strings.TrimSpace(f.Departure)
	f.Destination = strings.TrimSpace(f.Destination)
	f.Date = strings.TrimSpace(f.Date)
	f.Time = strings.TrimSpace(f.Time)
	f.BusType = strings.TrimSpace(f.BusType)
	return f
}

// Selection returns the form as a stored draft with the given formatted total.
func (f TripForm) Selection(totalPrice string) TripSelection {
	f = f.Trimmed()
	return TripSelection{
		Departure:   f.Departure,
		Destination: f.Destination,
		Date:        f.Date,
		Time:        f.Time,
		BusType:     f.BusType,
		Quantity:    FlexInt(f.Quantity),
		TotalPrice:  totalPrice,
	}
}

// Form turns a stored draft back into form inputs (resume flow).
func (t TripSelection) Form() TripForm {
	q := int(t.Quantity)
	if q < 1 {
		q = 1
	}
	return TripForm{
		Departure:   t.Departure,
		Destination: t.Destination,
		Date:        t.Date,
		Time:        t.Time,
		BusType:     t.BusType,
		Quantity:    q,
	}
}

// Trimmed returns a copy with surrounding whitespace removed.
func (b Biodata) Trimmed() Biodata {
	b.FullName = strings.TrimSpace(b.FullName)
	b.BirthDate = strings.TrimSpace(b.BirthDate)
	b.Email = strings.TrimSpace(b.Email)
	b.Address = strings.TrimSpace(b.Address)
	b.Phone = strings.TrimSpace(b.Phone)
	return b
}
