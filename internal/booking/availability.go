package booking

import (
	"fmt"

	"turfBooker/internal/models"
)

// SlotStatus is the per-slot availability verdict for one (sport, date)
// query, in catalog order.
type SlotStatus struct {
	Slot   string `json:"slot"`
	Booked bool   `json:"booked"`
}

// Evaluator computes slot availability from the current store snapshot.
// Given the same snapshot and inputs it always returns the same result.
type Evaluator struct {
	store   Store
	catalog *Catalog
}

func NewEvaluator(store Store, catalog *Catalog) *Evaluator {
	return &Evaluator{
		store:   store,
		catalog: catalog,
	}
}

// SlotStatus reports, for every catalog slot, whether it is reserved by
// any booking for the given sport on the given calendar day.
func (e *Evaluator) SlotStatus(sport, date string) ([]SlotStatus, error) {
	const op = "booking.Evaluator.SlotStatus"

	if _, ok := e.catalog.Sport(sport); !ok {
		return nil, fmt.Errorf("%s: %w: %s", op, ErrUnknownSport, sport)
	}

	if _, err := models.ParseDate(date); err != nil {
		return nil, fmt.Errorf("%s: invalid date %q: %w", op, date, err)
	}

	bookings, err := e.store.LoadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, ErrPersistence, err)
	}

	reserved := reservedSlots(bookings, sport, date)

	statuses := make([]SlotStatus, 0, len(e.catalog.Slots()))
	for _, label := range e.catalog.Slots() {
		_, booked := reserved[label]
		statuses = append(statuses, SlotStatus{Slot: label, Booked: booked})
	}

	return statuses, nil
}

// reservedSlots unions the slot sets of every booking that matches the
// sport and the exact calendar day.
func reservedSlots(bookings []models.Booking, sport, date string) map[string]struct{} {
	reserved := make(map[string]struct{})

	for _, b := range bookings {
		if b.Sport != sport || b.Date != date {
			continue
		}

		for _, slot := range b.Slots {
			reserved[slot] = struct{}{}
		}
	}

	return reserved
}
