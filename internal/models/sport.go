package models

import "fmt"

type Sport struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	PricePerHour int    `json:"price_per_hour"`
}

// DefaultSports is the built-in facility catalog, used when the config
// does not override it.
func DefaultSports() []Sport {
	return []Sport{
		{ID: "football", Name: "Football", PricePerHour: 1500},
		{ID: "cricket", Name: "Cricket", PricePerHour: 1200},
		{ID: "swimming", Name: "Swimming", PricePerHour: 800},
	}
}

// HourlySlots builds the ordered slot-label catalog for a booking day,
// one label per hour from openHour to closeHour inclusive.
func HourlySlots(openHour, closeHour int) []string {
	if closeHour < openHour {
		return nil
	}

	slots := make([]string, 0, closeHour-openHour+1)
	for hour := openHour; hour <= closeHour; hour++ {
		slots = append(slots, fmt.Sprintf("%02d:00", hour))
	}

	return slots
}
