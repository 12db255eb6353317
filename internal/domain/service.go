package domain

import "time"

// Availability maps a lowercase weekday name to the hours a service can be
// booked on that day, e.g. {"monday": "09:00-17:00"}.
type Availability map[string]string

type Service struct {
	ID             int64        `json:"id"`
	Name           string       `json:"name"`
	Location       string       `json:"location"`
	ContactInfo    string       `json:"contact_info"`
	HourlyRate     float64      `json:"hourly_rate"`
	AvailableSlots Availability `json:"available_slots"`
	CreatedAt      time.Time    `json:"created_at"`
}

// ServiceFilter narrows a catalog listing. All fields are optional and
// compose conjunctively.
type ServiceFilter struct {
	// Location is matched as a case-insensitive substring.
	Location string
	// MaxRate is an inclusive upper bound on the hourly rate.
	MaxRate *float64
	// AvailableDay keeps only services whose availability has an entry for
	// that weekday.
	AvailableDay string
}
