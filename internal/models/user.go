package models

// User is the optional identity supplied by the outer UI. Bookings may be
// created without one.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`
}
