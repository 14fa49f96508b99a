// Package pricing computes trip totals from the option catalog.
//
// Unselected or unknown options price as zero rather than failing; whether a
// zero total may proceed is decided by the step validator.
package pricing

import (
	"math"
	"math/big"

	"javaterra/internal/utils"
)

// MaxTotal is where ComputeTotal saturates. A quote at MaxTotal is never valid.
const MaxTotal = math.MaxInt64

// ComputeTotal scales every term by quantity. There is no volume discount.
// Totals outside int64 clamp to MaxTotal or math.MinInt64 instead of wrapping.
func ComputeTotal(basePrice, departureSurcharge, busMultiplier int64, quantity int) int64 {
	q := big.NewInt(int64(quantity))
	sum := new(big.Int)
	for _, price := range []int64{basePrice, busMultiplier, departureSurcharge} {
		sum.Add(sum, new(big.Int).Mul(big.NewInt(price), q))
	}
	switch {
	case sum.IsInt64():
		return sum.Int64()
	case sum.Sign() > 0:
		return MaxTotal
	default:
		return math.MinInt64
	}
}

// Selection is the subset of trip fields that affect price.
type Selection struct {
	Destination string
	Departure   string
	BusType     string
	Quantity    int
}

// Quote is a priced selection.
type Quote struct {
	BasePrice          int64
	DepartureSurcharge int64
	BusMultiplier      int64
	Quantity           int
	Total              int64
}

// Quote looks up the three options and totals them.
func (c Catalog) Quote(sel Selection) Quote {
	q := Quote{
		BasePrice:          c.DestinationPrice(sel.Destination),
		DepartureSurcharge: c.DepartureSurcharge(sel.Departure),
		BusMultiplier:      c.BusMultiplier(sel.BusType),
		Quantity:           sel.Quantity,
	}
	q.Total = ComputeTotal(q.BasePrice, q.DepartureSurcharge, q.BusMultiplier, q.Quantity)
	return q
}

// Valid reports whether the total can be booked.
func (q Quote) Valid() bool { return q.Total > 0 && q.Total < MaxTotal }

// Display renders the total; totals that cannot be booked show as Rp0.
func (q Quote) Display() string {
	if !q.Valid() {
		return utils.FormatRupiah(0)
	}
	return utils.FormatRupiah(q.Total)
}

// LineItems are the per-option hints shown under each selector.
type LineItems struct {
	Bus         string
	Departure   string
	Destination string
}

func (q Quote) LineItems() LineItems {
	return LineItems{
		Bus:         priceInfo("Tambah", q.BusMultiplier),
		Departure:   priceInfo("Tambah", q.DepartureSurcharge),
		Destination: priceInfo("Harga destinasi", q.BasePrice),
	}
}

func priceInfo(label string, price int64) string {
	if price <= 0 {
		return ""
	}
	return label + ": " + utils.FormatRupiahPerPerson(price)
}
