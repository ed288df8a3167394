package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"turfBooker/internal/booking"
	"turfBooker/internal/models"
)

// schemaVersion is written into every document so a future layout change
// can be detected; the source medium had no versioning at all.
const schemaVersion = 1

// Storage keeps the whole booking history in one JSON document on disk.
// It is the direct analog of the original browser-local storage: a named
// bookings collection plus a separately keyed current-user record. The
// medium has no cross-process locking, so two processes sharing one file
// can still race between read and write; that residual risk is accepted
// here and eliminated only by the postgres backend.
type Storage struct {
	path string
	mu   sync.Mutex
}

type document struct {
	SchemaVersion int              `json:"schema_version"`
	Bookings      []models.Booking `json:"bookings"`
	CurrentUser   *models.User     `json:"current_user,omitempty"`
}

func New(path string) *Storage {
	return &Storage{path: path}
}

// LoadAll returns every persisted booking in insertion order. A missing
// or unreadable file reads as an empty history: the booking flow stays
// available even if the stored state is corrupt.
func (s *Storage) LoadAll() ([]models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.read()

	return doc.Bookings, nil
}

// Append validates the required fields and durably appends one booking.
// It is the only write path for the bookings collection.
func (s *Storage) Append(b models.Booking) error {
	const op = "storage.jsonfile.Append"

	if err := validateRecord(b); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.read()
	doc.Bookings = append(doc.Bookings, b)

	if err := s.write(doc); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// SaveCurrentUser replaces the single current-user record.
func (s *Storage) SaveCurrentUser(u models.User) error {
	const op = "storage.jsonfile.SaveCurrentUser"

	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.read()
	doc.CurrentUser = &u

	if err := s.write(doc); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// CurrentUser returns the stored user record, or nil if none exists.
func (s *Storage) CurrentUser() (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.read()

	return doc.CurrentUser, nil
}

// Close exists so the backends share one lifecycle; there is nothing to
// release for a file store.
func (s *Storage) Close() error {
	return nil
}

func (s *Storage) read() document {
	doc := document{SchemaVersion: schemaVersion}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return doc
	}

	if err = json.Unmarshal(data, &doc); err != nil {
		// Corrupt state degrades to empty rather than blocking bookings.
		return document{SchemaVersion: schemaVersion}
	}

	return doc
}

func (s *Storage) write(doc document) error {
	doc.SchemaVersion = schemaVersion

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	if err = os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}

	// Write-then-rename so a crash mid-write never leaves a torn document.
	tmp := s.path + ".tmp"
	if err = os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}

	return os.Rename(tmp, s.path)
}

func validateRecord(b models.Booking) error {
	switch {
	case b.Sport == "":
		return fmt.Errorf("%w: sport", booking.ErrMissingField)
	case b.Date == "":
		return fmt.Errorf("%w: date", booking.ErrMissingField)
	case len(b.Slots) == 0:
		return fmt.Errorf("%w: slots", booking.ErrMissingField)
	case b.FullName == "":
		return fmt.Errorf("%w: full_name", booking.ErrMissingField)
	case b.Phone == "":
		return fmt.Errorf("%w: phone", booking.ErrMissingField)
	}

	if _, err := models.ParseDate(b.Date); err != nil {
		return errors.New("malformed date")
	}

	return nil
}
