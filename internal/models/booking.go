package models

import "time"

// DateLayout is the calendar-day format used everywhere a booking date is
// stored or compared. Dates carry no time-of-day component.
const DateLayout = "2006-01-02"

type PaymentAmount string

const (
	PaymentConfirmation PaymentAmount = "confirmation"
	PaymentFull         PaymentAmount = "full"
)

type Booking struct {
	ID            string        `json:"id"`
	UserID        string        `json:"user_id,omitempty"`
	FullName      string        `json:"full_name"`
	Phone         string        `json:"phone"`
	Email         string        `json:"email,omitempty"`
	Sport         string        `json:"sport"`
	Date          string        `json:"date"`
	Slots         []string      `json:"slots"`
	Players       int           `json:"players,omitempty"`
	Notes         string        `json:"notes,omitempty"`
	PaymentMethod string        `json:"payment_method"`
	PaymentAmount PaymentAmount `json:"payment_amount"`
	DiscountCode  string        `json:"discount_code,omitempty"`
	TotalPrice    int           `json:"total_price"`
	CreatedAt     time.Time     `json:"created_at"`
}

// ParseDate parses a calendar-day string in DateLayout.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
