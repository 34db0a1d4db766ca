package model

import "time"

// Appointment is an immutable record of a confirmed callback request.
// Created exactly once per successful form confirmation and never
// mutated afterward.
type Appointment struct {
	ID            string    // UUID assigned at creation
	Name          string    // Title-cased full name
	Email         string    // Lower-cased address
	Phone         string    // Digits only
	Date          string    // Preferred callback date, YYYY-MM-DD
	FormattedDate string    // Display form, e.g. "Monday, January 15, 2024"
	CreatedAt     time.Time // When the confirmation happened
}
