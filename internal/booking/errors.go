package booking

import "errors"

// Every rejection path returns one of these sentinels (possibly wrapped
// with operation context), so callers can map them to a corrective message.
var (
	ErrPastDate     = errors.New("date is in the past")
	ErrSlotConflict = errors.New("slot is already booked")
	ErrMissingField = errors.New("required field is missing")
	ErrUnknownSport = errors.New("unknown sport")
	ErrUnknownSlot  = errors.New("unknown time slot")
	ErrPersistence  = errors.New("storage failure")
	ErrNotFound     = errors.New("booking not found")
)
