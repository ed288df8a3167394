package booking

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"turfBooker/internal/models"
)

// Notifier receives the completion signal for each created booking.
type Notifier interface {
	BookingCreated(booking models.Booking)
}

// SubmitInput is one slot-booking request from the outer UI. User, when
// present, pre-fills empty contact fields and tags the created booking.
type SubmitInput struct {
	User          *models.User
	FullName      string
	Phone         string
	Email         string
	Sport         string
	Date          string
	Slots         []string
	Players       int
	Notes         string
	PaymentMethod string
	PaymentAmount models.PaymentAmount
	DiscountCode  string
}

// Service runs the booking submission workflow: validate, re-check slot
// conflicts against a fresh store snapshot, price, persist. The mutex
// makes in-process submissions serial, so the re-check-then-append pair
// is atomic within one process. Cross-process races are the storage
// layer's problem: the postgres store appends conditionally, the file
// store documents the residual risk.
type Service struct {
	store    Store
	catalog  *Catalog
	discount DiscountPolicy
	notifier Notifier
	now      func() time.Time

	mu sync.Mutex
}

func NewService(store Store, catalog *Catalog, discount DiscountPolicy, now func() time.Time) *Service {
	if discount == nil {
		discount = NoDiscount{}
	}

	return &Service{
		store:    store,
		catalog:  catalog,
		discount: discount,
		now:      now,
	}
}

// SetNotifier attaches an optional completion-signal receiver.
func (s *Service) SetNotifier(n Notifier) {
	s.notifier = n
}

// Submit validates the request, writes the booking and returns it.
// Check order: past date, slot conflict, missing contact fields.
func (s *Service) Submit(input SubmitInput) (models.Booking, error) {
	const op = "booking.Service.Submit"

	sport, ok := s.catalog.Sport(input.Sport)
	if !ok {
		return models.Booking{}, fmt.Errorf("%s: %w: %s", op, ErrUnknownSport, input.Sport)
	}

	date, err := models.ParseDate(input.Date)
	if err != nil {
		return models.Booking{}, fmt.Errorf("%s: invalid date %q: %w", op, input.Date, err)
	}

	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if date.Before(today) {
		return models.Booking{}, fmt.Errorf("%s: %w", op, ErrPastDate)
	}

	if len(input.Slots) == 0 {
		return models.Booking{}, fmt.Errorf("%s: %w: slots", op, ErrMissingField)
	}

	seen := make(map[string]struct{}, len(input.Slots))
	for _, slot := range input.Slots {
		if !s.catalog.HasSlot(slot) {
			return models.Booking{}, fmt.Errorf("%s: %w: %s", op, ErrUnknownSlot, slot)
		}
		if _, dup := seen[slot]; dup {
			return models.Booking{}, fmt.Errorf("%s: %w: %s", op, ErrSlotConflict, slot)
		}
		seen[slot] = struct{}{}
	}

	b := models.Booking{
		FullName:      strings.TrimSpace(input.FullName),
		Phone:         strings.TrimSpace(input.Phone),
		Email:         strings.TrimSpace(input.Email),
		Sport:         input.Sport,
		Date:          input.Date,
		Slots:         append([]string(nil), input.Slots...),
		Players:       input.Players,
		Notes:         input.Notes,
		PaymentMethod: input.PaymentMethod,
		PaymentAmount: input.PaymentAmount,
		DiscountCode:  input.DiscountCode,
	}

	if input.User != nil {
		b.UserID = input.User.ID
		if b.FullName == "" {
			b.FullName = input.User.Name
		}
		if b.Phone == "" {
			b.Phone = input.User.Phone
		}
		if b.Email == "" {
			b.Email = input.User.Email
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Availability from an earlier read is never trusted: re-derive the
	// reserved set from the latest snapshot right before committing.
	bookings, err := s.store.LoadAll()
	if err != nil {
		return models.Booking{}, fmt.Errorf("%s: %w: %w", op, ErrPersistence, err)
	}

	reserved := reservedSlots(bookings, input.Sport, input.Date)
	for _, slot := range b.Slots {
		if _, taken := reserved[slot]; taken {
			return models.Booking{}, fmt.Errorf("%s: %w: %s", op, ErrSlotConflict, slot)
		}
	}

	if b.FullName == "" {
		return models.Booking{}, fmt.Errorf("%s: %w: full_name", op, ErrMissingField)
	}
	if b.Phone == "" {
		return models.Booking{}, fmt.Errorf("%s: %w: phone", op, ErrMissingField)
	}

	base := sport.PricePerHour * len(b.Slots)
	b.TotalPrice = s.discount.Apply(b.DiscountCode, base)

	b.ID = uuid.New().String()
	b.CreatedAt = now

	if err = s.store.Append(b); err != nil {
		if errors.Is(err, ErrSlotConflict) {
			return models.Booking{}, fmt.Errorf("%s: %w", op, ErrSlotConflict)
		}
		return models.Booking{}, fmt.Errorf("%s: %w: %w", op, ErrPersistence, err)
	}

	if s.notifier != nil {
		s.notifier.BookingCreated(b)
	}

	return b, nil
}

// SlotStatus reports availability for (sport, date) over the catalog.
func (s *Service) SlotStatus(sport, date string) ([]SlotStatus, error) {
	return NewEvaluator(s.store, s.catalog).SlotStatus(sport, date)
}

// Bookings lists persisted bookings; a non-empty phone narrows the result
// to that contact number ("track my booking").
func (s *Service) Bookings(phone string) ([]models.Booking, error) {
	const op = "booking.Service.Bookings"

	all, err := s.store.LoadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, ErrPersistence, err)
	}

	if phone == "" {
		return all, nil
	}

	var matched []models.Booking
	for _, b := range all {
		if b.Phone == phone {
			matched = append(matched, b)
		}
	}

	return matched, nil
}

// BookingByID returns one booking or ErrNotFound.
func (s *Service) BookingByID(id string) (models.Booking, error) {
	const op = "booking.Service.BookingByID"

	all, err := s.store.LoadAll()
	if err != nil {
		return models.Booking{}, fmt.Errorf("%s: %w: %w", op, ErrPersistence, err)
	}

	for _, b := range all {
		if b.ID == id {
			return b, nil
		}
	}

	return models.Booking{}, fmt.Errorf("%s: %w", op, ErrNotFound)
}
