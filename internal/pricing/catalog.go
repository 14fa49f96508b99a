package pricing

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Option is one choice in a trip selector. Price means base price for a
// destination, surcharge for a departure point and multiplier for a bus type,
// always per passenger.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Price int64  `json:"price"`
}

// Catalog holds the selectable options of the trip form.
type Catalog struct {
	Destinations []Option `json:"destinations"`
	Departures   []Option `json:"departures"`
	BusTypes     []Option `json:"busTypes"`
}

// DefaultCatalog carries the built-in routes and fleet.
func DefaultCatalog() Catalog {
	return Catalog{
		Destinations: []Option{
			{Value: "Yogyakarta", Label: "Yogyakarta", Price: 100_000},
			{Value: "Bandung", Label: "Bandung", Price: 75_000},
			{Value: "Semarang", Label: "Semarang", Price: 120_000},
			{Value: "Malang", Label: "Malang", Price: 150_000},
			{Value: "Bali", Label: "Bali (Denpasar)", Price: 250_000},
		},
		Departures: []Option{
			{Value: "Jakarta", Label: "Jakarta (Pulo Gebang)", Price: 10_000},
			{Value: "Bogor", Label: "Bogor (Baranangsiang)", Price: 15_000},
			{Value: "Bekasi", Label: "Bekasi", Price: 5_000},
			{Value: "Tangerang", Label: "Tangerang (Poris Plawad)", Price: 12_000},
		},
		BusTypes: []Option{
			{Value: "Ekonomi", Label: "Ekonomi", Price: 0},
			{Value: "Bisnis", Label: "Bisnis", Price: 20_000},
			{Value: "Eksekutif", Label: "Eksekutif", Price: 50_000},
			{Value: "Sleeper", Label: "Sleeper", Price: 90_000},
		},
	}
}

// LoadCatalog reads a JSON catalog from path.
func LoadCatalog(path string) (Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalog: %w", err)
	}
	var c Catalog
	if err := json.Unmarshal(raw, &c); err != nil {
		return Catalog{}, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	if len(c.Destinations) == 0 {
		return Catalog{}, fmt.Errorf("catalog %s: destinations kosong", path)
	}
	return c, nil
}

// DestinationPrice returns 0 for an empty or unknown selection.
func (c Catalog) DestinationPrice(value string) int64 { return lookup(c.Destinations, value) }

func (c Catalog) DepartureSurcharge(value string) int64 { return lookup(c.Departures, value) }

func (c Catalog) BusMultiplier(value string) int64 { return lookup(c.BusTypes, value) }

func lookup(opts []Option, value string) int64 {
	v := strings.TrimSpace(value)
	if v == "" {
		return 0
	}
	for _, o := range opts {
		if strings.EqualFold(o.Value, v) {
			return o.Price
		}
	}
	return 0
}
