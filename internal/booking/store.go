package booking

import "turfBooker/internal/models"

// Store is the sole source of truth for persisted bookings. Append is the
// only mutation primitive: no edit, no delete. LoadAll reads missing or
// unreadable state as an empty history, never as an error.
type Store interface {
	LoadAll() ([]models.Booking, error)
	Append(booking models.Booking) error
}
