package pricing

import (
	"os"
	"path/filepath"
	"testing"
)

func TestComputeTotalScalesLinearly(t *testing.T) {
	const b, s, m = 100_000, 10_000, 20_000
	prev := int64(-1)
	for q := 1; q <= 10; q++ {
		got := ComputeTotal(b, s, m, q)
		if want := int64(q) * (b + s + m); got != want {
			t.Fatalf("q=%d: got %d want %d", q, got, want)
		}
		if got < prev {
			t.Fatalf("total decreased at q=%d", q)
		}
		prev = got
	}
}

func TestComputeTotalSaturatesAtOverflow(t *testing.T) {
	const b, s, m = 100_000, 10_000, 20_000
	// largest quantity whose total still fits in int64
	const last = 70_949_015_668_113

	if got := ComputeTotal(b, s, m, last); got != last*130_000 {
		t.Fatalf("q=%d: got %d", last, got)
	}
	prev := ComputeTotal(b, s, m, last-1)
	for _, q := range []int{last, last + 1, last + 2, 141_898_031_336_228} {
		got := ComputeTotal(b, s, m, q)
		if got < prev {
			t.Fatalf("total decreased at q=%d: %d < %d", q, got, prev)
		}
		prev = got
	}
	if got := ComputeTotal(b, s, m, last+1); got != MaxTotal {
		t.Fatalf("q=%d: got %d, want MaxTotal", last+1, got)
	}

	c := Catalog{
		Destinations: []Option{{Value: "Yogyakarta", Price: b}},
		Departures:   []Option{{Value: "Jakarta", Price: s}},
		BusTypes:     []Option{{Value: "Bisnis", Price: m}},
	}
	sel := Selection{Destination: "Yogyakarta", Departure: "Jakarta", BusType: "Bisnis", Quantity: last}
	if !c.Quote(sel).Valid() {
		t.Fatalf("largest representable total should be valid")
	}
	sel.Quantity = 141_898_031_336_228
	if q := c.Quote(sel); q.Valid() {
		t.Fatalf("overflowing quote should be invalid: %+v", q)
	}
}

func TestQuoteScenario(t *testing.T) {
	c := Catalog{
		Destinations: []Option{{Value: "Yogyakarta", Price: 100_000}},
		Departures:   []Option{{Value: "Jakarta", Price: 10_000}},
		BusTypes:     []Option{{Value: "Bisnis", Price: 20_000}},
	}
	q := c.Quote(Selection{Destination: "Yogyakarta", Departure: "Jakarta", BusType: "Bisnis", Quantity: 2})
	if q.Total != 260_000 {
		t.Fatalf("total = %d, want 260000", q.Total)
	}
	if q.Display() != "Rp260.000" {
		t.Fatalf("display = %q", q.Display())
	}
	li := q.LineItems()
	if li.Bus != "Tambah: Rp20.000/org" || li.Departure != "Tambah: Rp10.000/org" || li.Destination != "Harga destinasi: Rp100.000/org" {
		t.Fatalf("unexpected line items: %+v", li)
	}
}

func TestQuoteUnselectedOptionsAreFree(t *testing.T) {
	c := DefaultCatalog()
	q := c.Quote(Selection{Destination: "Bandung", Quantity: 1})
	if q.Total != 75_000 {
		t.Fatalf("total = %d, want 75000", q.Total)
	}
	if q.LineItems().Bus != "" {
		t.Fatalf("bus hint should be empty for unselected bus")
	}

	empty := c.Quote(Selection{Quantity: 3})
	if empty.Valid() || empty.Display() != "Rp0" {
		t.Fatalf("empty selection should be invalid Rp0, got %+v", empty)
	}
}

func TestLoadCatalog(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")
	body := `{"destinations":[{"value":"Solo","label":"Solo","price":90000}],"departures":[],"busTypes":[]}`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	c, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if c.DestinationPrice("solo") != 90_000 {
		t.Fatalf("lookup should be case-insensitive")
	}

	if err := os.WriteFile(path, []byte(`{"destinations":[]}`), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadCatalog(path); err == nil {
		t.Fatalf("expected error for empty destinations")
	}
}
