// Package drafts persists the in-progress booking between page loads:
// the trip selection, the biodata, and the id of the last completed booking.
package drafts

import (
	"encoding/json"
	"fmt"

	"javaterra/internal/domain/models"
)

// Storage keys, shared with the browser frontend's localStorage layout.
const (
	KeyTrip          = "bookingData"
	KeyBiodata       = "biodataData"
	KeyLastBookingID = "lastBookingID"
)

// Store reads and writes JSON-encoded drafts on a KV backend.
type Store struct {
	kv KV
}

func NewStore(kv KV) *Store {
	return &Store{kv: kv}
}

// Trip returns the step-1 draft. A value that no longer decodes is treated
// as absent.
func (s *Store) Trip() (models.TripSelection, bool, error) {
	var t models.TripSelection
	ok, err := s.get(KeyTrip, &t)
	return t, ok, err
}

func (s *Store) SaveTrip(t models.TripSelection) error { return s.set(KeyTrip, t) }

func (s *Store) ClearTrip() error { return s.kv.Delete(KeyTrip) }

func (s *Store) Biodata() (models.Biodata, bool, error) {
	var b models.Biodata
	ok, err := s.get(KeyBiodata, &b)
	return b, ok, err
}

func (s *Store) SaveBiodata(b models.Biodata) error { return s.set(KeyBiodata, b) }

func (s *Store) ClearBiodata() error { return s.kv.Delete(KeyBiodata) }

// LastBookingID returns the completion marker.
func (s *Store) LastBookingID() (string, bool, error) {
	var id string
	ok, err := s.get(KeyLastBookingID, &id)
	if ok && id == "" {
		ok = false
	}
	return id, ok, err
}

func (s *Store) SaveLastBookingID(id string) error { return s.set(KeyLastBookingID, id) }

func (s *Store) ClearLastBookingID() error { return s.kv.Delete(KeyLastBookingID) }

// ClearDrafts removes both drafts and leaves the marker alone.
func (s *Store) ClearDrafts() error {
	errTrip := s.ClearTrip()
	errBio := s.ClearBiodata()
	if errTrip != nil {
		return errTrip
	}
	return errBio
}

// ClearAll removes both drafts and the marker.
func (s *Store) ClearAll() error {
	errDrafts := s.ClearDrafts()
	errMarker := s.ClearLastBookingID()
	if errDrafts != nil {
		return errDrafts
	}
	return errMarker
}

func (s *Store) get(key string, dst any) (bool, error) {
	raw, ok, err := s.kv.Get(key)
	if err != nil {
		return false, fmt.Errorf("load %s: %w", key, err)
	}
	if !ok || len(raw) == 0 || string(raw) == "null" {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, nil
	}
	return true, nil
}

func (s *Store) set(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.kv.Set(key, raw); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
